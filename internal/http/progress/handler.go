package progress

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/careercoin/internal/ledger"
	"github.com/MrJamesThe3rd/careercoin/internal/progress"
	"github.com/MrJamesThe3rd/careercoin/internal/roadmap"
)

type Handler struct {
	tracker *progress.Tracker
}

func NewHandler(tracker *progress.Tracker) *Handler {
	return &Handler{tracker: tracker}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Post("/steps/{stepID}/toggle", h.toggle)
	r.Post("/checkin", h.checkIn)
	r.Get("/streak", h.streak)
	r.Post("/sessions", h.session)
}

type roadmapResponse struct {
	roadmap.Roadmap
	Progress int `json:"progress"`
}

type awardResponse struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

type toggleResponse struct {
	Step     roadmap.Step   `json:"step"`
	Progress int            `json:"progress"`
	Award    *awardResponse `json:"award,omitempty"`
}

type streakResponse struct {
	Days        int            `json:"days"`
	LastCheckIn *time.Time     `json:"last_check_in,omitempty"`
	Award       *awardResponse `json:"award,omitempty"`
}

func (h *Handler) get(w http.ResponseWriter, _ *http.Request) {
	r, ok := h.tracker.Roadmap()
	if !ok {
		http.Error(w, "no roadmap selected", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, roadmapResponse{Roadmap: r, Progress: r.Progress()})
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "stepID"))
	if err != nil {
		http.Error(w, "invalid step id", http.StatusBadRequest)
		return
	}

	res, err := h.tracker.ToggleStepCompleted(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, progress.ErrNoRoadmap), errors.Is(err, progress.ErrStepNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			slog.Error("failed to toggle step", "step", id, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusOK, toggleResponse{Step: res.Step, Progress: res.Progress, Award: toAward(res.Award)})
}

func (h *Handler) checkIn(w http.ResponseWriter, r *http.Request) {
	streak, tx, err := h.tracker.IncrementDailyStreak(r.Context())
	if err != nil {
		if errors.Is(err, progress.ErrAlreadyCheckedIn) {
			writeJSON(w, http.StatusConflict, toStreakResponse(streak, nil))
			return
		}

		slog.Error("failed to check in", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toStreakResponse(streak, tx))
}

func (h *Handler) streak(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toStreakResponse(h.tracker.Streak(), nil))
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	tx, err := h.tracker.AttendLearningSession(r.Context())
	if err != nil {
		slog.Error("failed to record learning session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, toAward(tx))
}

func toAward(tx *ledger.Transaction) *awardResponse {
	if tx == nil {
		return nil
	}

	return &awardResponse{Amount: tx.Amount, Description: tx.Description}
}

func toStreakResponse(s progress.Streak, tx *ledger.Transaction) streakResponse {
	resp := streakResponse{Days: s.Days, Award: toAward(tx)}
	if !s.LastCheckIn.IsZero() {
		resp.LastCheckIn = new(s.LastCheckIn)
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
