package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/MrJamesThe3rd/careercoin/internal/kv"
	"github.com/MrJamesThe3rd/careercoin/internal/progress"
	"github.com/MrJamesThe3rd/careercoin/internal/roadmap"
)

const (
	KeyRoadmap     = "Roadmap"
	KeyDailyStreak = "DailyStreak"
	KeyLastCheckIn = "LastCheckIn"
)

type Store struct {
	kv kv.Storage
}

func New(storage kv.Storage) *Store {
	return &Store{kv: storage}
}

func (s *Store) LoadRoadmap(ctx context.Context) (*roadmap.Roadmap, error) {
	raw, err := s.kv.Get(ctx, KeyRoadmap)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", KeyRoadmap, err)
	}

	var r roadmap.Roadmap
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		slog.Warn("discarding malformed roadmap", "error", err)
		return nil, nil
	}

	return &r, nil
}

func (s *Store) SaveRoadmap(ctx context.Context, r roadmap.Roadmap) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding roadmap: %w", err)
	}

	if err := s.kv.Set(ctx, KeyRoadmap, string(raw)); err != nil {
		return fmt.Errorf("persisting %s: %w", KeyRoadmap, err)
	}

	return nil
}

// LoadStreak reads the day count and last check-in. A malformed value counts as absent.
func (s *Store) LoadStreak(ctx context.Context) (progress.Streak, error) {
	var streak progress.Streak

	days, err := s.kv.Get(ctx, KeyDailyStreak)
	switch {
	case errors.Is(err, kv.ErrNotFound):
	case err != nil:
		return progress.Streak{}, fmt.Errorf("loading %s: %w", KeyDailyStreak, err)
	default:
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			slog.Warn("discarding malformed streak", "value", days)
			return progress.Streak{}, nil
		}

		streak.Days = n
	}

	last, err := s.kv.Get(ctx, KeyLastCheckIn)
	switch {
	case errors.Is(err, kv.ErrNotFound):
	case err != nil:
		return progress.Streak{}, fmt.Errorf("loading %s: %w", KeyLastCheckIn, err)
	default:
		ts, err := time.Parse(time.RFC3339, last)
		if err != nil {
			slog.Warn("discarding malformed last check-in", "value", last)
			return progress.Streak{}, nil
		}

		streak.LastCheckIn = ts
	}

	return streak, nil
}

func (s *Store) SaveStreak(ctx context.Context, streak progress.Streak) error {
	if err := s.kv.Set(ctx, KeyDailyStreak, strconv.Itoa(streak.Days)); err != nil {
		return fmt.Errorf("persisting %s: %w", KeyDailyStreak, err)
	}

	if streak.LastCheckIn.IsZero() {
		if err := s.kv.Delete(ctx, KeyLastCheckIn); err != nil {
			return fmt.Errorf("clearing %s: %w", KeyLastCheckIn, err)
		}

		return nil
	}

	if err := s.kv.Set(ctx, KeyLastCheckIn, streak.LastCheckIn.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("persisting %s: %w", KeyLastCheckIn, err)
	}

	return nil
}
