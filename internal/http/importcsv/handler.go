package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/careercoin/internal/importer"
)

const maxUpload = 10 << 20

type Handler struct {
	importSvc *importer.Service
}

func NewHandler(importSvc *importer.Service) *Handler {
	return &Handler{importSvc: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importResponse struct {
	Imported int   `json:"imported"`
	Coins    int64 `json:"coins"`
}

type partialResponse struct {
	importResponse
	Error string `json:"error"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	res, err := h.importSvc.Import(r.Context(), file)

	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, importResponse{Imported: res.Applied, Coins: res.Coins})
	case errors.Is(err, importer.ErrInvalidFile):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, importer.ErrNothingToImport):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		// Rows before the failing one stay credited, so report them.
		slog.Error("award import failed", "applied", res.Applied, "error", err)
		writeJSON(w, http.StatusInternalServerError, partialResponse{
			importResponse: importResponse{Imported: res.Applied, Coins: res.Coins},
			Error:          err.Error(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
