package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/careercoin/internal/app"
	"github.com/MrJamesThe3rd/careercoin/internal/config"
	careerHttp "github.com/MrJamesThe3rd/careercoin/internal/http"
	coinHandler "github.com/MrJamesThe3rd/careercoin/internal/http/coin"
	exportHandler "github.com/MrJamesThe3rd/careercoin/internal/http/export"
	importHandler "github.com/MrJamesThe3rd/careercoin/internal/http/importcsv"
	matchingHandler "github.com/MrJamesThe3rd/careercoin/internal/http/matching"
	progressHandler "github.com/MrJamesThe3rd/careercoin/internal/http/progress"
	skillsHandler "github.com/MrJamesThe3rd/careercoin/internal/http/skills"
	"github.com/MrJamesThe3rd/careercoin/internal/logging"
	"github.com/MrJamesThe3rd/careercoin/internal/scheduler"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to start services", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	sweeper := scheduler.New(a.Tracker, time.Local)
	if err := sweeper.Start(ctx, cfg.Streak.SweepAt); err != nil {
		slog.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sweeper.Stop()

	var (
		coinsH    = coinHandler.NewHandler(a.Coins)
		roadmapH  = progressHandler.NewHandler(a.Tracker)
		skillsH   = skillsHandler.NewHandler(a.Skills)
		matchingH = matchingHandler.NewHandler(a.Matching)
		exportH   = exportHandler.NewHandler(a.Export)
		importH   = importHandler.NewHandler(a.Importer)
	)

	router := careerHttp.New(coinsH, roadmapH, skillsH, matchingH, exportH, importH, careerHttp.Options{
		Metrics: cfg.Metrics.Enabled,
		Timeout: cfg.Server.Timeout,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "port", srv.Addr, "storage", cfg.Storage.Driver)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
