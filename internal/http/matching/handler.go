package matching

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/careercoin/internal/matching"
)

type Handler struct {
	svc *matching.Service
}

func NewHandler(svc *matching.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/careers", h.careers)
	r.Get("/skills", h.skills)
	r.Post("/", h.learn)
}

type careersResponse struct {
	Skills  []string `json:"skills"`
	Careers []string `json:"careers"`
}

// careers ranks careers for a comma separated skills query.
func (h *Handler) careers(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("skills")
	if raw == "" {
		http.Error(w, "skills query parameter is required", http.StatusBadRequest)
		return
	}

	var skills []string

	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	careers, err := h.svc.SuggestCareers(r.Context(), skills)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if careers == nil {
		careers = []string{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(careersResponse{Skills: skills, Careers: careers}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) skills(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.svc.SuggestSkills(r.URL.Query().Get("job"))); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type learnRequest struct {
	Skill  string `json:"skill"`
	Career string `json:"career"`
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	var req learnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Learn(r.Context(), req.Skill, req.Career); err != nil {
		if errors.Is(err, matching.ErrInvalidMapping) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusCreated)
}
