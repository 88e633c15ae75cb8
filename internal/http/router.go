package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MrJamesThe3rd/careercoin/internal/http/coin"
	"github.com/MrJamesThe3rd/careercoin/internal/http/export"
	"github.com/MrJamesThe3rd/careercoin/internal/http/importcsv"
	"github.com/MrJamesThe3rd/careercoin/internal/http/matching"
	"github.com/MrJamesThe3rd/careercoin/internal/http/progress"
	"github.com/MrJamesThe3rd/careercoin/internal/http/skills"
)

type Options struct {
	Metrics bool
	Timeout time.Duration
}

func New(
	coinsV1 *coin.Handler,
	roadmapV1 *progress.Handler,
	skillsV1 *skills.Handler,
	matchingV1 *matching.Handler,
	exportV1 *export.Handler,
	importV1 *importcsv.Handler,
	opts Options,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	if opts.Metrics {
		router.Handle("/metrics", promhttp.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/coins", coinsV1.Routes)
		r.Route("/roadmap", roadmapV1.Routes)
		r.Route("/skills", skillsV1.Routes)
		r.Route("/matching", matchingV1.Routes)
		r.Route("/import", importV1.Routes)

		r.Route("/export", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			exportV1.Routes(r)
		})
	})

	return router
}
