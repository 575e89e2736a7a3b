package pour_test

import (
	"errors"
	"github.com/jt05610/mocktails"
	"github.com/jt05610/mocktails/pour"
	"go.uber.org/zap/zaptest"
	"testing"
)

func TestPrimer(t *testing.T) {
	q := mocktails.NewCommandQueue()
	p := pour.NewPrimer(q, zaptest.NewLogger(t))
	if err := p.Start(3); err != nil {
		t.Fatal(err)
	}
	if b, ok := p.Priming(); !ok || b != 3 {
		t.Errorf("expected bottle 3 priming, got %d (%v)", b, ok)
	}
	if b, ok := p.Stop(); !ok || b != 3 {
		t.Errorf("expected to stop bottle 3, got %d (%v)", b, ok)
	}
	got := q.Drain()
	if len(got) != 2 || got[0] != "b3r!" || got[1] != "b3l!" {
		t.Errorf("expected [b3r! b3l!], got %v", got)
	}
}

func TestPrimer_StopIdle(t *testing.T) {
	q := mocktails.NewCommandQueue()
	p := pour.NewPrimer(q, zaptest.NewLogger(t))
	if _, ok := p.Stop(); ok {
		t.Error("expected nothing to stop")
	}
	if q.Len() != 0 {
		t.Errorf("expected no commands, got %v", q.Drain())
	}
}

func TestPrimer_Conflict(t *testing.T) {
	q := mocktails.NewCommandQueue()
	p := pour.NewPrimer(q, zaptest.NewLogger(t))
	if err := p.Start(1); err != nil {
		t.Fatal(err)
	}
	if err := p.Start(2); !errors.Is(err, mocktails.ErrAlreadyPriming) {
		t.Errorf("expected ErrAlreadyPriming, got %v", err)
	}
	if b, _ := p.Priming(); b != 1 {
		t.Errorf("expected bottle 1 to still be priming, got %d", b)
	}
	p.Stop()
	got := q.Drain()
	if len(got) != 2 || got[0] != "b1r!" || got[1] != "b1l!" {
		t.Errorf("expected [b1r! b1l!], got %v", got)
	}
}

func TestPrimer_InvalidBottle(t *testing.T) {
	q := mocktails.NewCommandQueue()
	p := pour.NewPrimer(q, zaptest.NewLogger(t))
	if err := p.Start(8); !errors.Is(err, mocktails.ErrInvalidBottle) {
		t.Errorf("expected ErrInvalidBottle, got %v", err)
	}
	if _, ok := p.Priming(); ok {
		t.Error("expected no pump priming")
	}
	if q.Len() != 0 {
		t.Errorf("expected no commands, got %v", q.Drain())
	}
}
