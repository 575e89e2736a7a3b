package env

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/jt05610/mocktails/comm/serial"
	"github.com/jt05610/mocktails/pour"
	"github.com/shopspring/decimal"
	"io/fs"
	"os"
	"strconv"
	"time"
)

const (
	DefaultSerialPort = "/dev/ttyACM0"
	DefaultExchange   = "mocktails"
	DefaultDeviceID   = "mocktails"
	DefaultCouchDB    = "drinks"
)

var (
	ErrInvalidBaud      = errors.New("SERIAL_BAUD must be a positive integer")
	ErrInvalidDrinkSize = errors.New("DRINK_SIZE must be a positive number")
	ErrInvalidPumpRate  = errors.New("PUMP_RATE must be a positive number")
	ErrInvalidUnit      = errors.New("POUR_UNIT must be a positive duration")
	ErrInvalidDryRun    = errors.New("DRY_RUN must be a boolean")
)

type Environment struct {
	SerialPort string
	Baud       int
	DrinkSize  decimal.Decimal
	PumpRate   decimal.Decimal
	// Unit is the wall-clock length of one scheduled second.
	Unit     time.Duration
	MenuFile string
	DryRun   bool

	URI      string
	Exchange string
	DeviceID string
	CouchURI string
	CouchDB  string
}

// Pour is the scheduling config described by the environment.
func (e *Environment) Pour() pour.Config {
	return pour.Config{
		DrinkSize: e.DrinkSize,
		PumpRate:  e.PumpRate,
		Unit:      e.Unit,
	}
}

type lookup struct {
	key   string
	parse func(string) error
}

func lookupString(into *string) func(string) error {
	return func(v string) error {
		*into = v
		return nil
	}
}

func lookupDecimal(into *decimal.Decimal, invalid error) func(string) error {
	return func(v string) error {
		d, err := decimal.NewFromString(v)
		if err != nil || !d.IsPositive() {
			return fmt.Errorf("%w: %q", invalid, v)
		}
		*into = d
		return nil
	}
}

// LoadEnv reads the given .env files (".env" when none are given) and then the process environment. Missing files
// are ignored; unset variables keep their defaults.
func LoadEnv(files ...string) (*Environment, error) {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	cfg := &Environment{
		SerialPort: DefaultSerialPort,
		Baud:       serial.DefaultBaud,
		DrinkSize:  pour.DefaultDrinkSize,
		PumpRate:   pour.DefaultPumpRate,
		Unit:       time.Second,
		Exchange:   DefaultExchange,
		DeviceID:   DefaultDeviceID,
		CouchDB:    DefaultCouchDB,
	}
	lookups := []lookup{
		{"SERIAL_PORT", lookupString(&cfg.SerialPort)},
		{"SERIAL_BAUD", func(v string) error {
			baud, err := strconv.Atoi(v)
			if err != nil || baud <= 0 {
				return fmt.Errorf("%w: %q", ErrInvalidBaud, v)
			}
			cfg.Baud = baud
			return nil
		}},
		{"DRINK_SIZE", lookupDecimal(&cfg.DrinkSize, ErrInvalidDrinkSize)},
		{"PUMP_RATE", lookupDecimal(&cfg.PumpRate, ErrInvalidPumpRate)},
		{"POUR_UNIT", func(v string) error {
			d, err := time.ParseDuration(v)
			if err != nil || d <= 0 {
				return fmt.Errorf("%w: %q", ErrInvalidUnit, v)
			}
			cfg.Unit = d
			return nil
		}},
		{"MENU_FILE", lookupString(&cfg.MenuFile)},
		{"DRY_RUN", func(v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidDryRun, v)
			}
			cfg.DryRun = b
			return nil
		}},
		{"RABBITMQ_URI", lookupString(&cfg.URI)},
		{"AMQP_EXCHANGE", lookupString(&cfg.Exchange)},
		{"DEVICE_ID", lookupString(&cfg.DeviceID)},
		{"COUCHDB_URI", lookupString(&cfg.CouchURI)},
		{"COUCHDB_DB", lookupString(&cfg.CouchDB)},
	}
	for _, l := range lookups {
		v, ok := os.LookupEnv(l.key)
		if !ok || v == "" {
			continue
		}
		if err := l.parse(v); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
