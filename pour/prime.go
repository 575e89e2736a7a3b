package pour

import (
	"fmt"
	"github.com/jt05610/mocktails"
	"go.uber.org/zap"
	"sync"
)

// Primer runs a single pump by hand, outside any recipe.
type Primer struct {
	Queue   *mocktails.CommandQueue
	logger  *zap.Logger
	mu      sync.Mutex
	priming *int
}

func NewPrimer(q *mocktails.CommandQueue, logger *zap.Logger) *Primer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Primer{Queue: q, logger: logger}
}

// Start opens bottle's relay. Only one pump primes at a time; starting another while one is running fails
// with ErrAlreadyPriming.
func (p *Primer) Start(bottle int) error {
	if err := mocktails.ValidateBottle(bottle); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.priming != nil {
		return fmt.Errorf("%w: bottle %d", mocktails.ErrAlreadyPriming, *p.priming)
	}
	p.logger.Info("Start priming pump", zap.Int("bottle", bottle))
	p.Queue.Enqueue(mocktails.RelayOn(bottle))
	p.priming = &bottle
	return nil
}

// Stop closes the priming pump's relay. It does nothing if no pump is priming.
func (p *Primer) Stop() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.priming == nil {
		return 0, false
	}
	bottle := *p.priming
	p.logger.Info("Stop priming pump", zap.Int("bottle", bottle))
	p.Queue.Enqueue(mocktails.RelayOff(bottle))
	p.priming = nil
	return bottle, true
}

// Priming returns the pump currently priming.
func (p *Primer) Priming() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.priming == nil {
		return 0, false
	}
	return *p.priming, true
}
