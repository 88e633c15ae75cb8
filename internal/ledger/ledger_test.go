package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/careercoin/internal/ledger"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func earned(id string, amount int64, at time.Time) ledger.Transaction {
	return ledger.Transaction{ID: id, Kind: ledger.KindEarned, Amount: amount, Timestamp: at}
}

func redeemed(id string, amount int64, at time.Time) ledger.Transaction {
	return ledger.Transaction{ID: id, Kind: ledger.KindRedeemed, Amount: amount, Timestamp: at}
}

func TestState_EarnAndRedeem(t *testing.T) {
	var s ledger.State

	s = s.Earn(earned("a", 100, t0))
	assert.Equal(t, int64(100), s.Balance)
	assert.Equal(t, int64(100), s.TotalEarned)

	next := s.Redeem(redeemed("b", 80, t0.Add(time.Minute)))
	assert.Equal(t, int64(20), next.Balance)
	assert.Equal(t, int64(100), next.TotalEarned)
	assert.Equal(t, int64(80), next.TotalRedeemed())
	require.Len(t, next.Transactions, 2)
	assert.Equal(t, "b", next.Transactions[0].ID)

	// The receiver is never mutated.
	assert.Len(t, s.Transactions, 1)
	assert.Equal(t, int64(100), s.Balance)

	require.NoError(t, next.Verify())
}

func TestState_Verify(t *testing.T) {
	tests := []struct {
		name    string
		state   ledger.State
		wantErr bool
	}{
		{name: "Empty", state: ledger.State{}},
		{
			name: "Consistent",
			state: ledger.State{
				Balance:      30,
				TotalEarned:  50,
				Transactions: []ledger.Transaction{redeemed("b", 20, t0), earned("a", 50, t0)},
			},
		},
		{
			name:    "NegativeBalance",
			state:   ledger.State{Balance: -1},
			wantErr: true,
		},
		{
			name:    "TotalMismatch",
			state:   ledger.State{Balance: 50, TotalEarned: 60, Transactions: []ledger.Transaction{earned("a", 50, t0)}},
			wantErr: true,
		},
		{
			name:    "BalanceMismatch",
			state:   ledger.State{Balance: 50, TotalEarned: 50, Transactions: []ledger.Transaction{redeemed("b", 10, t0), earned("a", 50, t0)}},
			wantErr: true,
		},
		{
			name:    "NonPositiveAmount",
			state:   ledger.State{Transactions: []ledger.Transaction{earned("a", 0, t0)}},
			wantErr: true,
		},
		{
			name:    "UnknownKind",
			state:   ledger.State{Transactions: []ledger.Transaction{{ID: "x", Kind: "refund", Amount: 5}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.state.Verify()
			if tt.wantErr {
				assert.ErrorIs(t, err, ledger.ErrInvariant)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestFromLog(t *testing.T) {
	s := ledger.FromLog([]ledger.Transaction{
		redeemed("c", 150, t0.Add(2*time.Hour)),
		earned("b", 75, t0.Add(time.Hour)),
		earned("a", 100, t0),
	})

	assert.Equal(t, int64(25), s.Balance)
	assert.Equal(t, int64(175), s.TotalEarned)
	require.NoError(t, s.Verify())
}

func TestState_HistoryNewestFirstAndStable(t *testing.T) {
	s := ledger.State{Transactions: []ledger.Transaction{
		earned("old", 10, t0),
		earned("tie-1", 10, t0.Add(time.Hour)),
		earned("tie-2", 10, t0.Add(time.Hour)),
		earned("new", 10, t0.Add(2*time.Hour)),
	}}

	got := s.History()

	ids := make([]string, len(got))
	for i, tx := range got {
		ids[i] = tx.ID
	}

	assert.Equal(t, []string{"new", "tie-1", "tie-2", "old"}, ids)

	// Read-time sort only: stored order is untouched.
	assert.Equal(t, "old", s.Transactions[0].ID)
	assert.Equal(t, got, s.History())
}
