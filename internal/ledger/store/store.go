package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/MrJamesThe3rd/careercoin/internal/kv"
	"github.com/MrJamesThe3rd/careercoin/internal/ledger"
)

// Storage keys. Each field is written on its own so a partial write never corrupts another key.
const (
	KeyVersion       = "Version"
	KeyBalance       = "Balance"
	KeyTotalEarned   = "TotalEarned"
	KeyTransactions  = "Transactions"
	KeyWalletAddress = "WalletAddress"
)

// FormatVersion is bumped whenever the stored transaction layout changes.
// A stored version that does not match resets the ledger.
const FormatVersion = "1"

type Store struct {
	kv kv.Storage
}

func New(storage kv.Storage) *Store {
	return &Store{kv: storage}
}

// Load hydrates the ledger. Absent keys default to zero, empty or disconnected.
// Malformed values are discarded with a warning; only storage failures are returned.
func (s *Store) Load(ctx context.Context) (ledger.State, ledger.Wallet, error) {
	version, ok, err := s.get(ctx, KeyVersion)
	if err != nil {
		return ledger.State{}, ledger.Wallet{}, err
	}

	if ok && version != FormatVersion {
		slog.Warn("ledger format version mismatch, starting fresh", "stored", version, "current", FormatVersion)
		return ledger.State{}, ledger.Wallet{}, nil
	}

	state, err := s.loadState(ctx)
	if err != nil {
		return ledger.State{}, ledger.Wallet{}, err
	}

	address, ok, err := s.get(ctx, KeyWalletAddress)
	if err != nil {
		return ledger.State{}, ledger.Wallet{}, err
	}

	var wallet ledger.Wallet
	if ok && address != "" {
		wallet = ledger.Wallet{Connected: true, Address: address}
	}

	return state, wallet, nil
}

func (s *Store) loadState(ctx context.Context) (ledger.State, error) {
	rawTxs, ok, err := s.get(ctx, KeyTransactions)
	if err != nil {
		return ledger.State{}, err
	}

	var txs []ledger.Transaction

	if ok {
		if err := json.Unmarshal([]byte(rawTxs), &txs); err != nil {
			slog.Warn("discarding malformed ledger key", "key", KeyTransactions, "error", err)
			return ledger.State{}, nil
		}
	}

	balance, err := s.getInt(ctx, KeyBalance)
	if err != nil {
		return ledger.State{}, err
	}

	totalEarned, err := s.getInt(ctx, KeyTotalEarned)
	if err != nil {
		return ledger.State{}, err
	}

	state := ledger.State{Balance: balance, TotalEarned: totalEarned, Transactions: txs}
	if err := state.Verify(); err != nil {
		// The log is written first, so it is the most recent complete record.
		slog.Warn("ledger counters disagree with log, rebuilding from log", "error", err)

		state = ledger.FromLog(txs)
		if err := state.Verify(); err != nil {
			slog.Warn("discarding inconsistent ledger log", "error", err)
			return ledger.State{}, nil
		}
	}

	return state, nil
}

// Persist writes the whole ledger: version, log, total earned and balance, in that order.
func (s *Store) Persist(ctx context.Context, state ledger.State) error {
	txs := state.Transactions
	if txs == nil {
		txs = []ledger.Transaction{}
	}

	raw, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("encoding transactions: %w", err)
	}

	writes := []struct{ key, value string }{
		{KeyVersion, FormatVersion},
		{KeyTransactions, string(raw)},
		{KeyTotalEarned, strconv.FormatInt(state.TotalEarned, 10)},
		{KeyBalance, strconv.FormatInt(state.Balance, 10)},
	}

	for _, w := range writes {
		if err := s.kv.Set(ctx, w.key, w.value); err != nil {
			return fmt.Errorf("persisting %s: %w", w.key, err)
		}
	}

	return nil
}

func (s *Store) SaveWallet(ctx context.Context, address string) error {
	if err := s.kv.Set(ctx, KeyWalletAddress, address); err != nil {
		return fmt.Errorf("persisting %s: %w", KeyWalletAddress, err)
	}

	return nil
}

func (s *Store) ClearWallet(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyWalletAddress); err != nil {
		return fmt.Errorf("clearing %s: %w", KeyWalletAddress, err)
	}

	return nil
}

func (s *Store) get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("loading %s: %w", key, err)
	}

	return v, true, nil
}

func (s *Store) getInt(ctx context.Context, key string) (int64, error) {
	raw, ok, err := s.get(ctx, key)
	if err != nil || !ok {
		return 0, err
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		slog.Warn("discarding malformed ledger key", "key", key, "error", err)
		return 0, nil
	}

	return n, nil
}
