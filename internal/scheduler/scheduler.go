// Package scheduler runs the daily streak sweep.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

//go:generate mockgen -source=scheduler.go -destination=expirer_mock.go -package=scheduler
type Expirer interface {
	ExpireStreak(ctx context.Context) (bool, error)
}

type Scheduler struct {
	scheduler *gocron.Scheduler
	expirer   Expirer
}

// New creates a scheduler whose daily times are read in loc.
func New(expirer Expirer, loc *time.Location) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(loc),
		expirer:   expirer,
	}
}

// Start schedules the sweep every day at the HH:MM time in at and returns
// without blocking. The job stops when ctx is done or Stop is called.
func (s *Scheduler) Start(ctx context.Context, at string) error {
	_, err := s.scheduler.Every(1).Day().At(at).Do(func() { s.Sweep(ctx) })
	if err != nil {
		return fmt.Errorf("scheduling streak sweep at %q: %w", at, err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
	}()

	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// Sweep expires a lapsed streak once.
func (s *Scheduler) Sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	expired, err := s.expirer.ExpireStreak(ctx)
	if err != nil {
		slog.Error("streak sweep failed", "error", err)
		return
	}

	if expired {
		slog.Info("streak sweep reset a lapsed streak")
	}
}
