package coin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/careercoin/internal/ledger"
	"github.com/MrJamesThe3rd/careercoin/internal/metrics"
	"github.com/MrJamesThe3rd/careercoin/internal/reward"
	"github.com/MrJamesThe3rd/careercoin/internal/settlement"
)

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrItemNotFound        = errors.New("reward item not found")
	ErrItemUnavailable     = errors.New("reward item unavailable")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=coin
type Repository interface {
	Load(ctx context.Context) (ledger.State, ledger.Wallet, error)
	Persist(ctx context.Context, state ledger.State) error
	SaveWallet(ctx context.Context, address string) error
	ClearWallet(ctx context.Context) error
}

// Service is the only writer of the ledger. Every mutation is persisted before it
// becomes visible, so a failed write leaves the in-memory ledger untouched.
type Service struct {
	repo    Repository
	catalog *reward.Catalog
	settler settlement.Provider
	now     func() time.Time

	mu     sync.RWMutex
	state  ledger.State
	wallet ledger.Wallet
}

type Option func(*Service)

// WithClock overrides the time source used to stamp transactions.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, catalog *reward.Catalog, settler settlement.Provider, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		catalog: catalog,
		settler: settler,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load replaces the in-memory ledger with what the repository holds.
func (s *Service) Load(ctx context.Context) error {
	state, wallet, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
	s.wallet = wallet
	metrics.Balance.Set(float64(state.Balance))

	return nil
}

// EarnCoins credits amount and records an earned transaction.
func (s *Service) EarnCoins(ctx context.Context, amount int64, description string) (*ledger.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}

	// The id and timestamp are taken under the lock so storage order matches them.
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.newTransaction(ctx, ledger.KindEarned, amount, description)
	if err != nil {
		return nil, err
	}

	if err := s.commit(ctx, s.state.Earn(tx)); err != nil {
		return nil, err
	}

	metrics.CoinsEarned.Add(float64(amount))
	slog.Debug("coins earned", "amount", amount, "description", description, "balance", s.state.Balance)

	return &tx, nil
}

// Redeem spends the cost of a catalog item. The reason for a refusal is reported
// as ErrItemNotFound, ErrItemUnavailable or ErrInsufficientBalance; the ledger is
// unchanged in every failure case.
func (s *Service) Redeem(ctx context.Context, itemID string) (*ledger.Transaction, error) {
	item, ok := s.catalog.Find(itemID)
	if !ok {
		metrics.Redemptions.WithLabelValues(metrics.OutcomeNotFound).Inc()
		return nil, fmt.Errorf("%w: %q", ErrItemNotFound, itemID)
	}

	if !item.Available {
		metrics.Redemptions.WithLabelValues(metrics.OutcomeUnavailable).Inc()
		return nil, fmt.Errorf("%w: %q", ErrItemUnavailable, itemID)
	}

	// Balance check and debit form one critical section.
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Balance < item.Cost {
		metrics.Redemptions.WithLabelValues(metrics.OutcomeInsufficient).Inc()
		slog.Info("redemption rejected", "item", itemID, "cost", item.Cost, "balance", s.state.Balance)

		return nil, fmt.Errorf("%w: %q costs %d, balance is %d", ErrInsufficientBalance, itemID, item.Cost, s.state.Balance)
	}

	tx, err := s.newTransaction(ctx, ledger.KindRedeemed, item.Cost, "Redeemed: "+item.Title)
	if err != nil {
		return nil, err
	}

	if err := s.commit(ctx, s.state.Redeem(tx)); err != nil {
		return nil, err
	}

	metrics.CoinsRedeemed.Add(float64(item.Cost))
	metrics.Redemptions.WithLabelValues(metrics.OutcomeRedeemed).Inc()
	slog.Info("reward redeemed", "item", itemID, "cost", item.Cost, "balance", s.state.Balance)

	return &tx, nil
}

// RedeemCoins reports a refused redemption as false rather than an error.
// The error is non-nil only when the ledger could not be written.
func (s *Service) RedeemCoins(ctx context.Context, itemID string) (bool, error) {
	_, err := s.Redeem(ctx, itemID)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrItemNotFound), errors.Is(err, ErrItemUnavailable), errors.Is(err, ErrInsufficientBalance):
		return false, nil
	default:
		return false, err
	}
}

// TransactionHistory returns every transaction, newest first.
func (s *Service) TransactionHistory() []ledger.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.History()
}

type HistoryFilter struct {
	Kind      *ledger.Kind
	StartDate *time.Time
	EndDate   *time.Time
}

// History returns the transactions matching filter, newest first.
func (s *Service) History(filter HistoryFilter) []ledger.Transaction {
	all := s.TransactionHistory()

	out := make([]ledger.Transaction, 0, len(all))

	for _, tx := range all {
		if filter.Kind != nil && tx.Kind != *filter.Kind {
			continue
		}

		if filter.StartDate != nil && tx.Timestamp.Before(*filter.StartDate) {
			continue
		}

		if filter.EndDate != nil && tx.Timestamp.After(*filter.EndDate) {
			continue
		}

		out = append(out, tx)
	}

	return out
}

func (s *Service) Balance() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Balance
}

func (s *Service) TotalEarned() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.TotalEarned
}

func (s *Service) Wallet() ledger.Wallet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.wallet
}

func (s *Service) Catalog() *reward.Catalog {
	return s.catalog
}

// Snapshot is a consistent read of the ledger counters.
type Snapshot struct {
	Balance       int64
	TotalEarned   int64
	TotalRedeemed int64
	Transactions  int
	Wallet        ledger.Wallet
}

func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Balance:       s.state.Balance,
		TotalEarned:   s.state.TotalEarned,
		TotalRedeemed: s.state.TotalRedeemed(),
		Transactions:  len(s.state.Transactions),
		Wallet:        s.wallet,
	}
}

// ConnectWallet runs the settlement handshake and stores the resulting address.
func (s *Service) ConnectWallet(ctx context.Context) (ledger.Wallet, error) {
	address, err := s.settler.Connect(ctx)
	if err != nil {
		return ledger.Wallet{}, fmt.Errorf("connecting wallet: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveWallet(ctx, address); err != nil {
		return ledger.Wallet{}, err
	}

	s.wallet = ledger.Wallet{Connected: true, Address: address}
	slog.Info("wallet connected", "address", address)

	return s.wallet, nil
}

func (s *Service) DisconnectWallet(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.ClearWallet(ctx); err != nil {
		return err
	}

	s.wallet = ledger.Wallet{}

	return nil
}

func (s *Service) newTransaction(ctx context.Context, kind ledger.Kind, amount int64, description string) (ledger.Transaction, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("generating transaction id: %w", err)
	}

	ref, err := s.settler.Reference(ctx)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("settlement reference: %w", err)
	}

	return ledger.Transaction{
		ID:          id.String(),
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Timestamp:   s.now(),
		Reference:   ref,
	}, nil
}

// commit persists next and then makes it current. Callers hold s.mu.
func (s *Service) commit(ctx context.Context, next ledger.State) error {
	if err := s.repo.Persist(ctx, next); err != nil {
		return fmt.Errorf("persisting ledger: %w", err)
	}

	s.state = next
	metrics.Balance.Set(float64(next.Balance))

	return nil
}
