package serial

import (
	"github.com/jt05610/mocktails"
	"go.bug.st/serial"
	"sync"
	"time"
)

const DefaultBaud = 9600

// Port is the relay board's serial link.
type Port struct {
	port serial.Port
	mu   sync.Mutex
}

var _ mocktails.Sink = (*Port)(nil)

func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, err
	}
	return ports, nil
}

func OpenPort(port string, baud int) (*Port, error) {
	if baud <= 0 {
		baud = DefaultBaud
	}
	p, err := serial.Open(port, &serial.Mode{
		BaudRate: baud,
		Parity:   serial.NoParity,
		DataBits: 8,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, err
	}

	err = p.SetReadTimeout(time.Duration(500) * time.Millisecond)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	return &Port{port: p}, nil
}

// Send writes cmd to the board. Nothing is read back.
func (p *Port) Send(cmd mocktails.Command) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := p.port.Write(cmd.Bytes())
	return err
}

func (p *Port) Close() error {
	return p.port.Close()
}
