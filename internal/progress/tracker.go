// Package progress tracks roadmap step completion and daily check-ins, and pays
// the coin bonuses that come with them.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/careercoin/internal/ledger"
	"github.com/MrJamesThe3rd/careercoin/internal/metrics"
	"github.com/MrJamesThe3rd/careercoin/internal/roadmap"
)

const (
	minStepBonus = 50
	maxStepBonus = 100
	CheckInBonus = 25

	minSessionBonus = 25
	maxSessionBonus = 75

	checkInDescription = "Daily check-in bonus"
)

var (
	ErrNoRoadmap        = errors.New("no roadmap selected")
	ErrStepNotFound     = errors.New("roadmap step not found")
	ErrAlreadyCheckedIn = errors.New("already checked in today")
)

//go:generate mockgen -source=tracker.go -destination=tracker_mock.go -package=progress
type Earner interface {
	EarnCoins(ctx context.Context, amount int64, description string) (*ledger.Transaction, error)
}

// Rand is the source of step bonuses. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type Repository interface {
	// LoadRoadmap returns nil when no roadmap was ever saved.
	LoadRoadmap(ctx context.Context) (*roadmap.Roadmap, error)
	SaveRoadmap(ctx context.Context, r roadmap.Roadmap) error
	LoadStreak(ctx context.Context) (Streak, error)
	SaveStreak(ctx context.Context, s Streak) error
}

// Streak counts consecutive calendar days with a check-in.
type Streak struct {
	Days        int       `json:"days"`
	LastCheckIn time.Time `json:"lastCheckIn"`
}

type Tracker struct {
	repo   Repository
	earner Earner
	rnd    Rand
	now    func() time.Time

	mu      sync.Mutex
	roadmap *roadmap.Roadmap
	streak  Streak
}

type Option func(*Tracker)

func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

func NewTracker(repo Repository, earner Earner, rnd Rand, opts ...Option) *Tracker {
	t := &Tracker{
		repo:   repo,
		earner: earner,
		rnd:    rnd,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *Tracker) Load(ctx context.Context) error {
	r, err := t.repo.LoadRoadmap(ctx)
	if err != nil {
		return fmt.Errorf("loading roadmap: %w", err)
	}

	streak, err := t.repo.LoadStreak(ctx)
	if err != nil {
		return fmt.Errorf("loading streak: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.roadmap = r
	t.streak = streak

	return nil
}

// SetRoadmap replaces the active roadmap, discarding any previous completion state.
func (t *Tracker) SetRoadmap(ctx context.Context, r roadmap.Roadmap) error {
	r = r.Clone()

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.repo.SaveRoadmap(ctx, r); err != nil {
		return fmt.Errorf("saving roadmap: %w", err)
	}

	t.roadmap = &r

	return nil
}

// Roadmap returns a copy of the active roadmap and whether one is set.
func (t *Tracker) Roadmap() (roadmap.Roadmap, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.roadmap == nil {
		return roadmap.Roadmap{}, false
	}

	return t.roadmap.Clone(), true
}

func (t *Tracker) Progress() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.roadmap == nil {
		return 0
	}

	return t.roadmap.Progress()
}

type ToggleResult struct {
	Step     roadmap.Step
	Progress int
	// Award is set only when the step went from incomplete to complete.
	Award *ledger.Transaction
}

// ToggleStepCompleted flips a step. Completing it earns a bonus between 50 and
// 100 coins; un-completing it takes nothing back. If the bonus cannot be paid
// the step is restored.
func (t *Tracker) ToggleStepCompleted(ctx context.Context, stepID int) (ToggleResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.roadmap == nil {
		return ToggleResult{}, ErrNoRoadmap
	}

	prev := t.roadmap.Clone()
	next := t.roadmap.Clone()

	step := next.Step(stepID)
	if step == nil {
		return ToggleResult{}, fmt.Errorf("%w: %d", ErrStepNotFound, stepID)
	}

	step.Completed = !step.Completed

	if err := t.repo.SaveRoadmap(ctx, next); err != nil {
		return ToggleResult{}, fmt.Errorf("saving roadmap: %w", err)
	}

	result := ToggleResult{Step: *step, Progress: next.Progress()}

	if step.Completed {
		bonus := int64(minStepBonus + t.rnd.IntN(maxStepBonus-minStepBonus+1))

		tx, err := t.earner.EarnCoins(ctx, bonus, "Completed: "+step.Title)
		if err != nil {
			if rbErr := t.repo.SaveRoadmap(ctx, prev); rbErr != nil {
				slog.Error("restoring roadmap after failed award", "step", stepID, "error", rbErr)
			}

			return ToggleResult{}, fmt.Errorf("awarding step bonus: %w", err)
		}

		result.Award = tx
		metrics.StepsCompleted.Inc()
	}

	t.roadmap = &next

	slog.Info("roadmap step toggled", "step", stepID, "completed", step.Completed, "progress", result.Progress)

	return result, nil
}

// IncrementDailyStreak records today's check-in and pays the fixed bonus. A
// second check-in on the same calendar day is refused with ErrAlreadyCheckedIn.
// Checking in the day after the last one extends the streak; any gap restarts it at one.
func (t *Tracker) IncrementDailyStreak(ctx context.Context) (Streak, *ledger.Transaction, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	prev := t.streak

	if !prev.LastCheckIn.IsZero() && sameDay(prev.LastCheckIn, now) {
		metrics.CheckIns.WithLabelValues(metrics.OutcomeRepeated).Inc()
		return prev, nil, ErrAlreadyCheckedIn
	}

	next := Streak{Days: 1, LastCheckIn: now}
	if !prev.LastCheckIn.IsZero() && sameDay(prev.LastCheckIn, now.AddDate(0, 0, -1)) {
		next.Days = prev.Days + 1
	}

	if err := t.repo.SaveStreak(ctx, next); err != nil {
		return prev, nil, fmt.Errorf("saving streak: %w", err)
	}

	tx, err := t.earner.EarnCoins(ctx, CheckInBonus, checkInDescription)
	if err != nil {
		if rbErr := t.repo.SaveStreak(ctx, prev); rbErr != nil {
			slog.Error("restoring streak after failed award", "error", rbErr)
		}

		return prev, nil, fmt.Errorf("awarding check-in bonus: %w", err)
	}

	t.streak = next
	metrics.CheckIns.WithLabelValues(metrics.OutcomeCheckedIn).Inc()

	return next, tx, nil
}

// AttendLearningSession pays a random 25 to 75 coins for a finished session.
func (t *Tracker) AttendLearningSession(ctx context.Context) (*ledger.Transaction, error) {
	t.mu.Lock()
	bonus := int64(minSessionBonus + t.rnd.IntN(maxSessionBonus-minSessionBonus+1))
	t.mu.Unlock()

	tx, err := t.earner.EarnCoins(ctx, bonus, "Attended learning session")
	if err != nil {
		return nil, fmt.Errorf("awarding session bonus: %w", err)
	}

	return tx, nil
}

func (t *Tracker) Streak() Streak {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.streak
}

// ExpireStreak resets the day count when the last check-in is older than yesterday.
// It reports whether anything changed.
func (t *Tracker) ExpireStreak(ctx context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.streak.Days == 0 {
		return false, nil
	}

	now := t.now()
	if sameDay(t.streak.LastCheckIn, now) || sameDay(t.streak.LastCheckIn, now.AddDate(0, 0, -1)) {
		return false, nil
	}

	next := Streak{LastCheckIn: t.streak.LastCheckIn}
	if err := t.repo.SaveStreak(ctx, next); err != nil {
		return false, fmt.Errorf("saving streak: %w", err)
	}

	slog.Info("streak expired", "days", t.streak.Days, "last_check_in", t.streak.LastCheckIn)
	t.streak = next

	return true, nil
}

// sameDay compares calendar dates in b's location.
func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())

	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}
