package pour

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/jt05610/mocktails"
	"go.uber.org/zap"
	"sync"
	"time"
)

var ErrStopped = errors.New("scheduler stopped")

// Journal records drinks once all of their pours have finished.
type Journal interface {
	Record(ctx context.Context, plan *Plan) error
}

// Scheduler turns recipes into concurrent pour tasks. It keeps the cancel function of every drink in progress.
type Scheduler struct {
	Menu    mocktails.Menu
	Queue   *mocktails.CommandQueue
	Config  Config
	Rand    Randomizer
	Journal Journal
	logger  *zap.Logger
	mu      sync.Mutex
	running map[uuid.UUID]context.CancelFunc
	stopped bool
	wg      sync.WaitGroup
}

func NewScheduler(menu mocktails.Menu, q *mocktails.CommandQueue, cfg Config, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		Menu:    menu,
		Queue:   q,
		Config:  cfg,
		Rand:    new(Uniform),
		logger:  logger,
		running: make(map[uuid.UUID]context.CancelFunc),
	}
}

// MakeDrink plans the named recipe and starts one pour task per ingredient. Nothing is queued if the recipe is
// unknown or cannot be planned. The returned plan's Done channel closes when the drink is finished.
func (s *Scheduler) MakeDrink(ctx context.Context, name string) (*Plan, error) {
	r, err := s.Menu.Lookup(name)
	if err != nil {
		s.logger.Warn("Drink not in menu", zap.String("recipe", name))
		return nil, err
	}
	plan, err := NewPlan(r, s.Config, s.Rand)
	if err != nil {
		s.logger.Error("Failed to plan drink", zap.String("recipe", name), zap.Error(err))
		return nil, err
	}
	if err := s.launch(ctx, plan); err != nil {
		return nil, err
	}
	s.logger.Info("Making drink",
		zap.String("recipe", name),
		zap.Stringer("id", plan.ID),
		zap.Int("seconds", plan.DrinkDuration),
		zap.Any("pours", plan.Pours),
	)
	return plan, nil
}

// track stores a cancel handle for id and counts it as in progress. Callers must untrack and call s.wg.Done
// once the work has returned.
func (s *Scheduler) track(ctx context.Context, id uuid.UUID) (context.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil, ErrStopped
	}
	ctx, cancel := context.WithCancel(ctx)
	s.running[id] = cancel
	s.wg.Add(1)
	return ctx, nil
}

func (s *Scheduler) untrack(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cancel, found := s.running[id]; found {
		cancel()
		delete(s.running, id)
	}
}

func (s *Scheduler) launch(ctx context.Context, plan *Plan) error {
	ctx, err := s.track(ctx, plan.ID)
	if err != nil {
		return err
	}

	var pours sync.WaitGroup
	for _, p := range plan.Pours {
		pours.Add(1)
		go func(p Pour) {
			defer pours.Done()
			if err := s.check(p.Bottle, p.Duration, p.Delay); err != nil {
				return
			}
			err := s.pour(ctx, p.Bottle, p.Duration, p.Delay)
			if err != nil && ctx.Err() == nil {
				s.logger.Error("Pour failed", zap.Stringer("id", plan.ID), zap.Int("bottle", p.Bottle), zap.Error(err))
			}
		}(p)
	}
	go func() {
		defer s.wg.Done()
		pours.Wait()
		interrupted := ctx.Err() != nil
		s.untrack(plan.ID)
		defer close(plan.done)
		if interrupted {
			s.logger.Warn("Drink cancelled", zap.Stringer("id", plan.ID))
			return
		}
		s.logger.Info("Drink done", zap.Stringer("id", plan.ID), zap.String("recipe", plan.Recipe))
		s.record(plan)
	}()
	return nil
}

func (s *Scheduler) record(plan *Plan) {
	if s.Journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Journal.Record(ctx, plan); err != nil {
		s.logger.Error("Failed to record drink", zap.Stringer("id", plan.ID), zap.Error(err))
	}
}

// Cancel stops the pours of one drink. It reports whether the drink was still in progress.
func (s *Scheduler) Cancel(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cancel, found := s.running[id]
	if found {
		cancel()
	}
	return found
}

// Active is the number of drinks and standalone pours in progress.
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.running)
}

// Wait blocks until every drink and standalone pour in progress has finished.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// Shutdown cancels every drink and standalone pour in progress, waits for the pour tasks to return and refuses
// new work with ErrStopped.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	s.stopped = true
	for _, cancel := range s.running {
		cancel()
	}
	s.mu.Unlock()
	s.wg.Wait()
}
