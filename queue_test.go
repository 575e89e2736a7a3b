package mocktails_test

import (
	"github.com/jt05610/mocktails"
	"sync"
	"testing"
)

func TestCommandQueue_FIFO(t *testing.T) {
	q := mocktails.NewCommandQueue()
	q.Enqueue(mocktails.RelayOn(3))
	q.Enqueue(mocktails.RelayOff(3))
	select {
	case <-q.Updated():
	default:
		t.Fatal("expected update notification")
	}
	if q.Len() != 2 {
		t.Fatalf("expected 2 commands, got %d", q.Len())
	}
	for _, want := range []mocktails.Command{"b3r!", "b3l!"} {
		got, ok := q.Dequeue()
		if !ok || got != want {
			t.Errorf("expected %s, got %s (ok=%v)", want, got, ok)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Error("expected empty queue")
	}
}

func TestCommandQueue_ConcurrentProducers(t *testing.T) {
	q := mocktails.NewCommandQueue()
	var wg sync.WaitGroup
	for b := 0; b < mocktails.NumBottles; b++ {
		wg.Add(1)
		go func(b int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Enqueue(mocktails.RelayOn(b), mocktails.RelayOff(b))
			}
		}(b)
	}
	wg.Wait()
	cmds := q.Drain()
	if len(cmds) != mocktails.NumBottles*200 {
		t.Fatalf("expected %d commands, got %d", mocktails.NumBottles*200, len(cmds))
	}
	open := make(map[mocktails.Command]bool)
	for _, c := range cmds {
		s := c.String()
		on := mocktails.Command(s[:2] + "r!")
		if s[2] == 'r' {
			if open[on] {
				t.Fatalf("%s opened twice without close", on)
			}
			open[on] = true
		} else {
			if !open[on] {
				t.Fatalf("%s closed before open", s)
			}
			open[on] = false
		}
	}
}

func TestMemorySink(t *testing.T) {
	s := mocktails.NewMemorySink()
	if err := s.Send(mocktails.RelayOn(1)); err != nil {
		t.Fatal(err)
	}
	if got := <-s.Sent(); got != "b1r!" {
		t.Errorf("expected b1r!, got %s", got)
	}
	if cc := s.Commands(); len(cc) != 1 || cc[0] != "b1r!" {
		t.Errorf("unexpected commands %v", cc)
	}
}
