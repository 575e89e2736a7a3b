package serial

import (
	"context"
	"github.com/jt05610/mocktails"
	"go.uber.org/zap"
	"time"
)

const DefaultIdle = 10 * time.Millisecond

// Writer is the only path from the command queue to the sink. It forwards commands one at a time in queue order.
type Writer struct {
	Queue  *mocktails.CommandQueue
	Sink   mocktails.Sink
	Logger *zap.Logger
	// Idle is how long the writer waits on an empty queue before checking again.
	Idle time.Duration
}

func NewWriter(q *mocktails.CommandQueue, sink mocktails.Sink, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		Queue:  q,
		Sink:   sink,
		Logger: logger,
		Idle:   DefaultIdle,
	}
}

// Run forwards commands until ctx is done. Anything still queued at that point is dropped.
func (w *Writer) Run(ctx context.Context) error {
	idle := w.Idle
	if idle <= 0 {
		idle = DefaultIdle
	}
	timer := time.NewTimer(idle)
	defer timer.Stop()
	w.Logger.Debug("serial writer started")
	for {
		select {
		case <-ctx.Done():
			if n := w.Queue.Len(); n > 0 {
				w.Logger.Warn("dropping queued commands", zap.Int("count", n))
			}
			w.Logger.Debug("serial writer stopped")
			return ctx.Err()
		default:
		}
		if cmd, ok := w.Queue.Dequeue(); ok {
			w.send(cmd)
			continue
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(idle)
		select {
		case <-ctx.Done():
		case <-w.Queue.Updated():
		case <-timer.C:
		}
	}
}

func (w *Writer) send(cmd mocktails.Command) {
	if err := w.Sink.Send(cmd); err != nil {
		w.Logger.Error("failed to send command", zap.Stringer("command", cmd), zap.Error(err))
		return
	}
	w.Logger.Debug("sent", zap.Stringer("command", cmd))
}
