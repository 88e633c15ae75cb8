package ledger

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Kind tells whether coins entered or left the balance.
type Kind string

const (
	KindEarned   Kind = "earned"
	KindRedeemed Kind = "redeemed"
)

var ErrInvariant = errors.New("ledger invariant violated")

// Transaction is one entry of the coin log. Amount is always positive; Kind carries the sign.
// The JSON names match the layout the web client wrote to local storage.
type Transaction struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Reference   string    `json:"txHash,omitempty"`
}

// State is the balance/total/log aggregate. Transactions are kept newest first,
// in the order they were added.
type State struct {
	Balance      int64
	TotalEarned  int64
	Transactions []Transaction
}

// Wallet is the simulated settlement link. Address is empty while disconnected.
type Wallet struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address,omitempty"`
}

func (s State) TotalRedeemed() int64 {
	var total int64

	for _, tx := range s.Transactions {
		if tx.Kind == KindRedeemed {
			total += tx.Amount
		}
	}

	return total
}

// Earn returns a copy of s with tx credited. tx.Kind must be KindEarned.
func (s State) Earn(tx Transaction) State {
	return State{
		Balance:      s.Balance + tx.Amount,
		TotalEarned:  s.TotalEarned + tx.Amount,
		Transactions: prepend(s.Transactions, tx),
	}
}

// Redeem returns a copy of s with tx debited. TotalEarned is a lifetime counter and stays put.
func (s State) Redeem(tx Transaction) State {
	return State{
		Balance:      s.Balance - tx.Amount,
		TotalEarned:  s.TotalEarned,
		Transactions: prepend(s.Transactions, tx),
	}
}

// Verify checks balance >= 0 and balance == totalEarned - redeemed, with totalEarned
// equal to the sum of earned entries.
func (s State) Verify() error {
	var earned, redeemed int64

	for _, tx := range s.Transactions {
		if tx.Amount <= 0 {
			return fmt.Errorf("%w: transaction %s has amount %d", ErrInvariant, tx.ID, tx.Amount)
		}

		switch tx.Kind {
		case KindEarned:
			earned += tx.Amount
		case KindRedeemed:
			redeemed += tx.Amount
		default:
			return fmt.Errorf("%w: transaction %s has kind %q", ErrInvariant, tx.ID, tx.Kind)
		}
	}

	switch {
	case s.Balance < 0:
		return fmt.Errorf("%w: negative balance %d", ErrInvariant, s.Balance)
	case s.TotalEarned != earned:
		return fmt.Errorf("%w: total earned %d, log sums to %d", ErrInvariant, s.TotalEarned, earned)
	case s.Balance != earned-redeemed:
		return fmt.Errorf("%w: balance %d, log sums to %d", ErrInvariant, s.Balance, earned-redeemed)
	}

	return nil
}

// FromLog rebuilds the counters from a transaction log.
func FromLog(txs []Transaction) State {
	s := State{Transactions: slices.Clone(txs)}

	for _, tx := range txs {
		switch tx.Kind {
		case KindEarned:
			s.Balance += tx.Amount
			s.TotalEarned += tx.Amount
		case KindRedeemed:
			s.Balance -= tx.Amount
		}
	}

	return s
}

// History returns the log sorted by timestamp, newest first. Entries with equal
// timestamps keep their stored order.
func (s State) History() []Transaction {
	out := slices.Clone(s.Transactions)
	slices.SortStableFunc(out, func(a, b Transaction) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return out
}

func prepend(txs []Transaction, tx Transaction) []Transaction {
	out := make([]Transaction, 0, len(txs)+1)
	out = append(out, tx)

	return append(out, txs...)
}
