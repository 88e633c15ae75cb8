package coin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/careercoin/internal/coin"
	"github.com/MrJamesThe3rd/careercoin/internal/ledger"
	"github.com/MrJamesThe3rd/careercoin/internal/reward"
)

type Handler struct {
	svc *coin.Service
}

func NewHandler(svc *coin.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.summary)
	r.Get("/transactions", h.transactions)
	r.Post("/earn", h.earn)
	r.Post("/redeem/{itemID}", h.redeem)
	r.Get("/rewards", h.rewards)
	r.Post("/wallet", h.connectWallet)
	r.Delete("/wallet", h.disconnectWallet)
}

func (h *Handler) summary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toSummaryResponse(h.svc.Snapshot()))
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	filter := coin.HistoryFilter{}

	if s := r.URL.Query().Get("kind"); s != "" {
		kind := ledger.Kind(s)
		if kind != ledger.KindEarned && kind != ledger.KindRedeemed {
			http.Error(w, "kind must be earned or redeemed", http.StatusBadRequest)
			return
		}

		filter.Kind = new(kind)
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			// Inclusive of the whole end day.
			filter.EndDate = new(t.AddDate(0, 0, 1).Add(-time.Nanosecond))
		}
	}

	writeJSON(w, http.StatusOK, toTransactionList(h.svc.History(filter)))
}

type earnRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

func (h *Handler) earn(w http.ResponseWriter, r *http.Request) {
	var req earnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.EarnCoins(r.Context(), req.Amount, req.Description)
	if err != nil {
		if errors.Is(err, coin.ErrInvalidAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("failed to earn coins", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, toTransactionResponse(*tx))
}

type redeemResponse struct {
	Redeemed    bool                 `json:"redeemed"`
	Transaction *transactionResponse `json:"transaction,omitempty"`
	Balance     int64                `json:"balance"`
	Reason      string               `json:"reason,omitempty"`
}

func (h *Handler) redeem(w http.ResponseWriter, r *http.Request) {
	tx, err := h.svc.Redeem(r.Context(), chi.URLParam(r, "itemID"))

	var status int

	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, redeemResponse{
			Redeemed:    true,
			Transaction: new(toTransactionResponse(*tx)),
			Balance:     h.svc.Balance(),
		})

		return
	case errors.Is(err, coin.ErrItemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, coin.ErrItemUnavailable):
		status = http.StatusConflict
	case errors.Is(err, coin.ErrInsufficientBalance):
		status = http.StatusUnprocessableEntity
	default:
		slog.Error("failed to redeem", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, status, redeemResponse{Balance: h.svc.Balance(), Reason: err.Error()})
}

func (h *Handler) rewards(w http.ResponseWriter, r *http.Request) {
	items := h.svc.Catalog().Items()

	if s := r.URL.Query().Get("category"); s != "" {
		cat := reward.Category(s)
		if !cat.Valid() {
			http.Error(w, "unknown category", http.StatusBadRequest)
			return
		}

		items = h.svc.Catalog().ByCategory(cat)
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) connectWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.svc.ConnectWallet(r.Context())
	if err != nil {
		slog.Error("failed to connect wallet", "error", err)
		http.Error(w, "wallet connection failed", http.StatusBadGateway)

		return
	}

	writeJSON(w, http.StatusOK, wallet)
}

func (h *Handler) disconnectWallet(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DisconnectWallet(r.Context()); err != nil {
		slog.Error("failed to disconnect wallet", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
