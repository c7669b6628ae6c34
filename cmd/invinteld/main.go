package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/paperfold/invoice-intel/internal/analysis"
	"github.com/paperfold/invoice-intel/internal/cache"
	"github.com/paperfold/invoice-intel/internal/common"
	"github.com/paperfold/invoice-intel/internal/export"
	"github.com/paperfold/invoice-intel/internal/logging"
	"github.com/paperfold/invoice-intel/internal/metrics"
	"github.com/paperfold/invoice-intel/internal/server"
)

func main() {
	cfg := common.LoadConfig()
	logger := logging.NewJSONLogger("invinteld", cfg.Logging.Level)
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	rules := analysis.DefaultRules()
	if cfg.Pipeline.RulesPath != "" {
		loaded, err := analysis.LoadRules(cfg.Pipeline.RulesPath)
		if err != nil {
			logger.Error("loading rules file", "path", cfg.Pipeline.RulesPath, "err", err)
			os.Exit(1)
		}
		rules = loaded
		logger.Info("rules loaded", "path", cfg.Pipeline.RulesPath)
	}

	var results cache.Cache
	if cfg.Pipeline.CacheEnabled {
		results = cache.NewMemory(cfg.Pipeline.CacheMaxEntries)
	}

	m := metrics.New("invinteld")
	exporter := export.NewService(logger)
	svc := server.NewService(logger, cfg.Pipeline, rules, results, m, exporter)

	httpServer := &http.Server{
		Addr:         cfg.Server.HTTPAddr,
		Handler:      svc.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	logger.Info("stopped")
}
