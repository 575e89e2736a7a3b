package pour

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/jt05610/mocktails"
	"github.com/shopspring/decimal"
	"sort"
	"time"
)

var (
	DefaultDrinkSize = decimal.NewFromInt(12)
	// DefaultPumpRate is 100 ml/min in ounces per second.
	DefaultPumpRate = decimal.RequireFromString("0.056356667")
)

var ErrInvalidConfig = errors.New("invalid pour config")

type Config struct {
	// DrinkSize is the cup volume in ounces.
	DrinkSize decimal.Decimal
	// PumpRate is the flow of one pump in ounces per second.
	PumpRate decimal.Decimal
	// Unit is the wall-clock length of one scheduled second.
	Unit time.Duration
}

func DefaultConfig() Config {
	return Config{
		DrinkSize: DefaultDrinkSize,
		PumpRate:  DefaultPumpRate,
		Unit:      time.Second,
	}
}

func (c Config) Validate() error {
	if !c.DrinkSize.IsPositive() {
		return fmt.Errorf("%w: drink size %s", ErrInvalidConfig, c.DrinkSize)
	}
	if !c.PumpRate.IsPositive() {
		return fmt.Errorf("%w: pump rate %s", ErrInvalidConfig, c.PumpRate)
	}
	if c.Unit <= 0 {
		return fmt.Errorf("%w: unit %s", ErrInvalidConfig, c.Unit)
	}
	return nil
}

// PourTime is the whole number of seconds a pump needs to dispense proportion/total of a drink.
func (c Config) PourTime(proportion, total int) int {
	volume := c.DrinkSize.Mul(decimal.NewFromInt(int64(proportion)))
	return int(volume.Div(c.PumpRate.Mul(decimal.NewFromInt(int64(total)))).Floor().IntPart())
}

// Pour is one bottle's slot in a plan, in seconds.
type Pour struct {
	Bottle   int `json:"bottle"`
	Duration int `json:"duration"`
	Delay    int `json:"delay"`
}

// End is when the pour finishes, relative to the start of the drink.
func (p Pour) End() int {
	return p.Delay + p.Duration
}

// Plan is the timing of every pour of one drink. Pours[0] is the dominant ingredient.
type Plan struct {
	ID            uuid.UUID `json:"id"`
	Recipe        string    `json:"recipe"`
	DrinkDuration int       `json:"drink_duration"`
	Pours         []Pour    `json:"pours"`
	CreatedAt     time.Time `json:"created_at"`
	done          chan struct{}
}

// Done is closed once every pour of the plan has finished or been cancelled.
func (p *Plan) Done() <-chan struct{} {
	return p.done
}

// NewPlan computes pour durations and start delays for r. Ingredients are ordered by proportion, largest first,
// keeping recipe order between equal proportions.
func NewPlan(r *mocktails.Recipe, cfg Config, rnd Randomizer) (*Plan, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	sorted := make([]mocktails.Ingredient, len(r.Ingredients))
	copy(sorted, r.Ingredients)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Proportion > sorted[j].Proportion
	})
	return Schedule(r.Name, sorted, cfg, rnd)
}

// Schedule plans lines in the order given, treating lines[0] as the dominant ingredient.
func Schedule(name string, lines []mocktails.Ingredient, cfg Config, rnd Randomizer) (*Plan, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: %w", name, mocktails.ErrEmptyRecipe)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	total := 0
	for _, ing := range lines {
		total += ing.Proportion
	}
	drinkTime := cfg.PourTime(lines[0].Proportion, total)
	plan := &Plan{
		ID:            uuid.New(),
		Recipe:        name,
		DrinkDuration: drinkTime,
		Pours:         make([]Pour, 0, len(lines)),
		CreatedAt:     time.Now(),
		done:          make(chan struct{}),
	}
	plan.Pours = append(plan.Pours, Pour{Bottle: lines[0].Bottle, Duration: drinkTime})
	for _, ing := range lines[1:] {
		pourTime := cfg.PourTime(ing.Proportion, total)
		latest := drinkTime - pourTime
		if latest < 0 {
			return nil, fmt.Errorf("%w: bottle %d pours %ds in a %ds drink", mocktails.ErrNegativeBound, ing.Bottle, pourTime, drinkTime)
		}
		delay := rnd.Draw(latest)
		if delay < 0 {
			delay = 0
		} else if delay > latest {
			delay = latest
		}
		plan.Pours = append(plan.Pours, Pour{
			Bottle:   ing.Bottle,
			Duration: pourTime,
			Delay:    delay,
		})
	}
	return plan, nil
}
