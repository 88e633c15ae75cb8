package skills

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/careercoin/internal/ledger"
	"github.com/MrJamesThe3rd/careercoin/internal/roadmap"
	"github.com/MrJamesThe3rd/careercoin/internal/skills"
)

type Handler struct {
	svc *skills.Service
}

func NewHandler(svc *skills.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.profile)
	r.Post("/", h.add)
	r.Delete("/{skill}", h.remove)
	r.Get("/careers", h.careers)
	r.Post("/careers/select", h.selectCareer)
	r.Get("/suggestions", h.suggestions)
	r.Post("/referrals", h.refer)
}

type profileResponse struct {
	Skills   []string `json:"skills"`
	DreamJob string   `json:"dream_job,omitempty"`
}

type awardResponse struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

func toAward(tx *ledger.Transaction) *awardResponse {
	if tx == nil {
		return nil
	}

	return &awardResponse{Amount: tx.Amount, Description: tx.Description}
}

func toProfileResponse(p skills.Profile) profileResponse {
	if p.Skills == nil {
		p.Skills = []string{}
	}

	return profileResponse{Skills: p.Skills, DreamJob: p.DreamJob}
}

func (h *Handler) profile(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toProfileResponse(h.svc.Profile()))
}

type addRequest struct {
	Skill string `json:"skill"`
}

type addResponse struct {
	profileResponse
	Award *awardResponse `json:"award,omitempty"`
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.AddSkill(r.Context(), req.Skill)
	if err != nil {
		if errors.Is(err, skills.ErrEmptySkill) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("failed to add skill", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	status := http.StatusCreated
	if tx == nil {
		status = http.StatusOK
	}

	writeJSON(w, status, addResponse{profileResponse: toProfileResponse(h.svc.Profile()), Award: toAward(tx)})
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.RemoveSkill(r.Context(), chi.URLParam(r, "skill"))
	if err != nil {
		slog.Error("failed to remove skill", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if !removed {
		http.Error(w, "skill not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) careers(w http.ResponseWriter, r *http.Request) {
	careers, err := h.svc.Matches(r.Context())
	if err != nil {
		slog.Error("failed to match careers", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if careers == nil {
		careers = []string{}
	}

	writeJSON(w, http.StatusOK, careers)
}

type selectRequest struct {
	Career string `json:"career"`
}

type selectResponse struct {
	Roadmap roadmap.Roadmap `json:"roadmap"`
	Award   *awardResponse  `json:"award,omitempty"`
}

func (h *Handler) selectCareer(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rm, tx, err := h.svc.SelectCareer(r.Context(), req.Career)
	if err != nil {
		if errors.Is(err, skills.ErrEmptyCareer) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("failed to select career", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, selectResponse{Roadmap: rm, Award: toAward(tx)})
}

func (h *Handler) suggestions(w http.ResponseWriter, r *http.Request) {
	s := h.svc.Suggestions(r.URL.Query().Get("job"))
	if s == nil {
		s = []string{}
	}

	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) refer(w http.ResponseWriter, r *http.Request) {
	tx, err := h.svc.ReferFriend(r.Context())
	if err != nil {
		slog.Error("failed to record referral", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, toAward(tx))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
