// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

// Package main runs the presence analyzer HTTP server.
//
// Startup order:
//
//  1. Configuration (koanf: defaults, config.yaml, environment)
//  2. Logging (zerolog)
//  3. Dataset cache and data source (CSV + XML behind a circuit breaker)
//  4. HTTP handler and chi router
//  5. Supervisor tree: dataset warmer in the data layer, HTTP server in the
//     api layer
//
// SIGINT and SIGTERM cancel the tree, which drains the HTTP server within
// server.shutdown_timeout.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/presence-analyzer/internal/api"
	"github.com/tomtom215/presence-analyzer/internal/cache"
	"github.com/tomtom215/presence-analyzer/internal/config"
	"github.com/tomtom215/presence-analyzer/internal/datasource"
	"github.com/tomtom215/presence-analyzer/internal/logging"
	"github.com/tomtom215/presence-analyzer/internal/supervisor"
	"github.com/tomtom215/presence-analyzer/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app holds the wired components the supervisor runs.
type app struct {
	cache  *cache.Cache
	source *datasource.Source
	server *http.Server
}

func newApp(cfg *config.Config) *app {
	datasetCache := cache.New(cfg.Data.CacheTTL)
	source := datasource.New(datasource.Config{
		CSVPath:          cfg.Data.CSVPath,
		XMLPath:          cfg.Data.XMLPath,
		BreakerThreshold: cfg.Data.BreakerThreshold,
		BreakerTimeout:   cfg.Data.BreakerTimeout,
	}, datasetCache)

	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled

	router := api.NewRouter(api.NewHandler(source, version), api.NewChiMiddleware(mw))

	return &app{
		cache:  datasetCache,
		source: source,
		server: &http.Server{
			Addr:              cfg.Server.Address(),
			Handler:           router.SetupChi(),
			ReadTimeout:       cfg.Server.Timeout,
			ReadHeaderTimeout: cfg.Server.Timeout,
			WriteTimeout:      cfg.Server.Timeout,
			IdleTimeout:       60 * time.Second,
		},
	}
}

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("version", version).
		Str("csv", cfg.Data.CSVPath).
		Str("xml", cfg.Data.XMLPath).
		Dur("cache_ttl", cfg.Data.CacheTTL).
		Msg("Starting presence analyzer")

	a := newApp(cfg)
	defer a.cache.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + time.Second,
	})
	tree.AddDataService(services.NewDatasetWarmer(a.source))
	tree.AddAPIService(services.NewHTTPServerService(a.server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree stopped with error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}
	logging.Info().Msg("Presence analyzer stopped")
}
