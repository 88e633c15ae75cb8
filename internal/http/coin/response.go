package coin

import (
	"time"

	"github.com/MrJamesThe3rd/careercoin/internal/coin"
	"github.com/MrJamesThe3rd/careercoin/internal/ledger"
)

type transactionResponse struct {
	ID          string      `json:"id"`
	Kind        ledger.Kind `json:"kind"`
	Amount      int64       `json:"amount"`
	Description string      `json:"description"`
	Timestamp   time.Time   `json:"timestamp"`
	Reference   string      `json:"reference,omitempty"`
}

type walletResponse struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address,omitempty"`
}

type summaryResponse struct {
	Balance       int64          `json:"balance"`
	TotalEarned   int64          `json:"total_earned"`
	TotalRedeemed int64          `json:"total_redeemed"`
	Transactions  int            `json:"transactions"`
	Wallet        walletResponse `json:"wallet"`
}

func toTransactionResponse(tx ledger.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Kind:        tx.Kind,
		Amount:      tx.Amount,
		Description: tx.Description,
		Timestamp:   tx.Timestamp,
		Reference:   tx.Reference,
	}
}

func toTransactionList(txs []ledger.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toTransactionResponse(tx)
	}

	return resp
}

func toSummaryResponse(s coin.Snapshot) summaryResponse {
	return summaryResponse{
		Balance:       s.Balance,
		TotalEarned:   s.TotalEarned,
		TotalRedeemed: s.TotalRedeemed,
		Transactions:  s.Transactions,
		Wallet:        walletResponse{Connected: s.Wallet.Connected, Address: s.Wallet.Address},
	}
}
