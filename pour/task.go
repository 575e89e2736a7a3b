package pour

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/jt05610/mocktails"
	"go.uber.org/zap"
	"time"
)

// TriggerPour waits delay seconds, opens the bottle's relay, waits duration seconds and closes it again. A bad
// bottle returns immediately without queueing anything. The pour is held by the scheduler until it returns, so
// Cancel and Shutdown stop it like any drink. If ctx ends during a wait no further commands are queued.
func (s *Scheduler) TriggerPour(ctx context.Context, bottle, duration, delay int) error {
	if err := s.check(bottle, duration, delay); err != nil {
		return err
	}
	id := uuid.New()
	ctx, err := s.track(ctx, id)
	if err != nil {
		return err
	}
	defer s.wg.Done()
	defer s.untrack(id)
	return s.pour(ctx, bottle, duration, delay)
}

func (s *Scheduler) check(bottle, duration, delay int) error {
	if err := mocktails.ValidateBottle(bottle); err != nil {
		s.logger.Error("Bad bottle number", zap.Int("bottle", bottle), zap.Error(err))
		return err
	}
	if duration < 0 || delay < 0 {
		return fmt.Errorf("%w: bottle %d duration %d delay %d", mocktails.ErrNegativeBound, bottle, duration, delay)
	}
	return nil
}

func (s *Scheduler) pour(ctx context.Context, bottle, duration, delay int) error {
	s.logger.Info("Pouring",
		zap.Int("bottle", bottle),
		zap.Int("duration", duration),
		zap.Int("delay", delay),
	)
	if err := s.wait(ctx, delay); err != nil {
		return err
	}
	s.Queue.Enqueue(mocktails.RelayOn(bottle))
	if err := s.wait(ctx, duration); err != nil {
		s.logger.Warn("Pour abandoned", zap.Int("bottle", bottle), zap.Error(err))
		return err
	}
	s.Queue.Enqueue(mocktails.RelayOff(bottle))
	return nil
}

func (s *Scheduler) wait(ctx context.Context, seconds int) error {
	if seconds == 0 {
		return nil
	}
	timer := time.NewTimer(time.Duration(seconds) * s.Config.Unit)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
