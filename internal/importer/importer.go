// Package importer turns award files sent by partner platforms into coin awards.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/MrJamesThe3rd/careercoin/internal/importer/awards"
	"github.com/MrJamesThe3rd/careercoin/internal/ledger"
)

type Parser interface {
	Parse(r io.Reader) ([]awards.Row, error)
}

//go:generate mockgen -source=importer.go -destination=importer_mock.go -package=importer
type Earner interface {
	EarnCoins(ctx context.Context, amount int64, description string) (*ledger.Transaction, error)
}

var (
	ErrInvalidFile     = errors.New("invalid award file")
	ErrNothingToImport = errors.New("file has no awards")
)

type Service struct {
	parser Parser
	earner Earner
}

func NewService(earner Earner) *Service {
	return &Service{parser: awards.NewParser(), earner: earner}
}

// Result reports what Import credited before it stopped.
type Result struct {
	Applied int
	Coins   int64
}

// Import parses r and earns every award in file order. Each award is committed on its
// own, so a failure part-way leaves the earlier awards credited; Result says how many.
func (s *Service) Import(ctx context.Context, r io.Reader) (Result, error) {
	list, err := s.parser.Parse(r)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	if len(list) == 0 {
		return Result{}, ErrNothingToImport
	}

	var res Result

	for i, a := range list {
		if _, err := s.earner.EarnCoins(ctx, a.Amount, Describe(a)); err != nil {
			return res, fmt.Errorf("award %d of %d: %w", i+1, len(list), err)
		}

		res.Applied++
		res.Coins += a.Amount
	}

	slog.Info("awards imported", "count", res.Applied, "coins", res.Coins)

	return res, nil
}

// Describe is the ledger description for an imported award.
func Describe(row awards.Row) string {
	return fmt.Sprintf("%s (%s, %s)", row.Description, row.Profile, row.Date.Format("2006-01-02"))
}
