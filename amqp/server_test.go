package amqp_test

import (
	"context"
	"github.com/jt05610/mocktails"
	mamqp "github.com/jt05610/mocktails/amqp"
	"github.com/jt05610/mocktails/pour"
	"go.uber.org/zap/zaptest"
	"testing"
	"time"
)

type fakeBar struct {
	menu   mocktails.Menu
	primer *pour.Primer
	queue  *mocktails.CommandQueue
}

func newFakeBar() *fakeBar {
	q := mocktails.NewCommandQueue()
	return &fakeBar{
		menu: mocktails.NewMenu(&mocktails.Recipe{
			Name:        "SUNSET_COOLER",
			Ingredients: []mocktails.Ingredient{{Bottle: 0, Proportion: 4}, {Bottle: 1, Proportion: 8}},
		}),
		primer: pour.NewPrimer(q, nil),
		queue:  q,
	}
}

func (f *fakeBar) MakeDrink(_ context.Context, name string) (*pour.Plan, error) {
	r, err := f.menu.Lookup(name)
	if err != nil {
		return nil, err
	}
	cfg := pour.DefaultConfig()
	cfg.Unit = time.Millisecond
	return pour.NewPlan(r, cfg, new(pour.Uniform))
}

func (f *fakeBar) PrimeStart(bottle int) error { return f.primer.Start(bottle) }
func (f *fakeBar) PrimeEnd() (int, bool)       { return f.primer.Stop() }
func (f *fakeBar) Menu() mocktails.Menu        { return f.menu }

func TestServer_Handle(t *testing.T) {
	bar := newFakeBar()
	s := mamqp.NewHandler(bar, "mocktails", "bar1", zaptest.NewLogger(t))
	three := 3
	nine := 9
	testCases := []struct {
		name   string
		cmd    *mamqp.Command
		expect string
	}{
		{"make", &mamqp.Command{ID: "1", Name: mamqp.MakeDrink, Recipe: "SUNSET_COOLER"}, "pouring"},
		{"unknown recipe", &mamqp.Command{ID: "2", Name: mamqp.MakeDrink, Recipe: "NOT_A_DRINK"}, "error"},
		{"prime", &mamqp.Command{ID: "3", Name: mamqp.PrimeStart, Bottle: &three}, "priming"},
		{"prime again", &mamqp.Command{ID: "4", Name: mamqp.PrimeStart, Bottle: &three}, "error"},
		{"unprime", &mamqp.Command{ID: "5", Name: mamqp.PrimeEnd}, "primed"},
		{"bad bottle", &mamqp.Command{ID: "6", Name: mamqp.PrimeStart, Bottle: &nine}, "error"},
		{"no bottle", &mamqp.Command{ID: "7", Name: mamqp.PrimeStart}, "error"},
		{"menu", &mamqp.Command{ID: "8", Name: mamqp.ListMenu}, "menu"},
		{"unknown", &mamqp.Command{ID: "9", Name: "dance"}, "error"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ev := s.Handle(context.Background(), tc.cmd)
			if ev.Name != tc.expect {
				t.Errorf("expected %s event, got %s (%+v)", tc.expect, ev.Name, ev.Data)
			}
			if ev.ID != tc.cmd.ID {
				t.Errorf("expected reply id %s, got %s", tc.cmd.ID, ev.ID)
			}
		})
	}
	got := bar.queue.Drain()
	if len(got) != 2 || got[0] != "b3r!" || got[1] != "b3l!" {
		t.Errorf("expected [b3r! b3l!], got %v", got)
	}
}
