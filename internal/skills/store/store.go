package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/careercoin/internal/kv"
	"github.com/MrJamesThe3rd/careercoin/internal/skills"
)

const (
	KeySkills   = "Skills"
	KeyDreamJob = "DreamJob"
)

type Store struct {
	kv kv.Storage
}

func New(storage kv.Storage) *Store {
	return &Store{kv: storage}
}

func (s *Store) Load(ctx context.Context) (skills.Profile, error) {
	var p skills.Profile

	raw, err := s.kv.Get(ctx, KeySkills)
	switch {
	case errors.Is(err, kv.ErrNotFound):
	case err != nil:
		return skills.Profile{}, fmt.Errorf("loading %s: %w", KeySkills, err)
	default:
		if err := json.Unmarshal([]byte(raw), &p.Skills); err != nil {
			slog.Warn("discarding malformed skills", "error", err)
			p.Skills = nil
		}
	}

	job, err := s.kv.Get(ctx, KeyDreamJob)
	switch {
	case errors.Is(err, kv.ErrNotFound):
	case err != nil:
		return skills.Profile{}, fmt.Errorf("loading %s: %w", KeyDreamJob, err)
	default:
		p.DreamJob = job
	}

	return p, nil
}

func (s *Store) Save(ctx context.Context, p skills.Profile) error {
	list := p.Skills
	if list == nil {
		list = []string{}
	}

	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding skills: %w", err)
	}

	if err := s.kv.Set(ctx, KeySkills, string(raw)); err != nil {
		return fmt.Errorf("persisting %s: %w", KeySkills, err)
	}

	if p.DreamJob == "" {
		if err := s.kv.Delete(ctx, KeyDreamJob); err != nil {
			return fmt.Errorf("clearing %s: %w", KeyDreamJob, err)
		}

		return nil
	}

	if err := s.kv.Set(ctx, KeyDreamJob, p.DreamJob); err != nil {
		return fmt.Errorf("persisting %s: %w", KeyDreamJob, err)
	}

	return nil
}
