// Package rig owns the pieces of a running pump rig: the command queue, the serial writer that drains it, the pour
// scheduler and the priming control.
package rig

import (
	"context"
	"errors"
	"github.com/jt05610/mocktails"
	"github.com/jt05610/mocktails/comm/serial"
	"github.com/jt05610/mocktails/pour"
	"go.uber.org/zap"
	"time"
)

type Rig struct {
	Queue     *mocktails.CommandQueue
	Writer    *serial.Writer
	Scheduler *pour.Scheduler
	Primer    *pour.Primer
	Sink      mocktails.Sink
	// CloseAllOnShutdown sends a relay off command for every bottle after the writer stops, so that pours cut
	// short by shutdown do not leave a valve open.
	CloseAllOnShutdown bool
	logger             *zap.Logger
}

func New(sink mocktails.Sink, menu mocktails.Menu, cfg pour.Config, logger *zap.Logger) *Rig {
	if logger == nil {
		logger = zap.NewNop()
	}
	q := mocktails.NewCommandQueue()
	return &Rig{
		Queue:              q,
		Writer:             serial.NewWriter(q, sink, logger.Named("writer")),
		Scheduler:          pour.NewScheduler(menu, q, cfg, logger.Named("scheduler")),
		Primer:             pour.NewPrimer(q, logger.Named("primer")),
		Sink:               sink,
		CloseAllOnShutdown: true,
		logger:             logger,
	}
}

// Run drains commands to the sink until ctx is done, then stops every pour in progress.
func (r *Rig) Run(ctx context.Context) error {
	r.logger.Info("Rig running")
	err := r.Writer.Run(ctx)
	r.Scheduler.Shutdown()
	if r.CloseAllOnShutdown {
		r.closeAll()
	}
	r.logger.Info("Goodbye!")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (r *Rig) closeAll() {
	for b := 0; b < mocktails.NumBottles; b++ {
		if err := r.Sink.Send(mocktails.RelayOff(b)); err != nil {
			r.logger.Error("failed to close relay", zap.Int("bottle", b), zap.Error(err))
		}
	}
}

func (r *Rig) MakeDrink(ctx context.Context, name string) (*pour.Plan, error) {
	return r.Scheduler.MakeDrink(ctx, name)
}

func (r *Rig) TriggerPour(ctx context.Context, bottle, duration, delay int) error {
	return r.Scheduler.TriggerPour(ctx, bottle, duration, delay)
}

func (r *Rig) PrimeStart(bottle int) error {
	return r.Primer.Start(bottle)
}

// PrimeEnd stops priming and returns the bottle that was priming. ok is false if none was.
func (r *Rig) PrimeEnd() (int, bool) {
	return r.Primer.Stop()
}

func (r *Rig) Menu() mocktails.Menu {
	return r.Scheduler.Menu
}

// Settle waits until every queued command has been handed to the writer.
func (r *Rig) Settle(ctx context.Context) error {
	idle := r.Writer.Idle
	if idle <= 0 {
		idle = serial.DefaultIdle
	}
	ticker := time.NewTicker(idle)
	defer ticker.Stop()
	for r.Queue.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(idle):
		return nil
	}
}
