package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/careercoin/internal/kv"
)

const KeyLearnedCareers = "learnedCareers"

type Store struct {
	kv kv.Storage
}

func New(storage kv.Storage) *Store {
	return &Store{kv: storage}
}

func (s *Store) LearnedCareers(ctx context.Context) (map[string][]string, error) {
	raw, err := s.kv.Get(ctx, KeyLearnedCareers)
	if errors.Is(err, kv.ErrNotFound) {
		return map[string][]string{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading learned careers: %w", err)
	}

	learned := map[string][]string{}
	if err := json.Unmarshal([]byte(raw), &learned); err != nil {
		slog.Warn("discarding malformed learned careers", "error", err)
		return map[string][]string{}, nil
	}

	return learned, nil
}

func (s *Store) SaveLearned(ctx context.Context, learned map[string][]string) error {
	raw, err := json.Marshal(learned)
	if err != nil {
		return fmt.Errorf("encoding learned careers: %w", err)
	}

	if err := s.kv.Set(ctx, KeyLearnedCareers, string(raw)); err != nil {
		return fmt.Errorf("saving learned careers: %w", err)
	}

	return nil
}
