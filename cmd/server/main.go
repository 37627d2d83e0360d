// Toolscout - SaaS Tool Discovery and Recommendation Engine
// Copyright 2026 Toolscout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/toolscout/toolscout

// Package main is the entry point for the Toolscout server.
//
// Toolscout recommends SaaS tools to buyers based on their profile,
// observed behavior, and stated intent. The server initializes components
// in the following order:
//
//  1. Configuration: layered load from defaults, config file, and env vars (Koanf v2)
//  2. Logging: zerolog with configurable level and format
//  3. Snapshot store: BadgerDB for catalog persistence across restarts
//  4. Catalog: YAML seed file, falling back to the last persisted snapshot
//  5. Engine: the scoring and ranking pipeline
//  6. HTTP server: REST API under a suture supervisor tree
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (HTTP_PORT, LOG_LEVEL, CATALOG_SEED_PATH, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections, waits for in-flight requests to complete, and
// closes the snapshot database.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger/v4"

	"github.com/toolscout/toolscout/internal/api"
	"github.com/toolscout/toolscout/internal/catalog"
	"github.com/toolscout/toolscout/internal/config"
	"github.com/toolscout/toolscout/internal/logging"
	"github.com/toolscout/toolscout/internal/recommend"
	"github.com/toolscout/toolscout/internal/recommend/scoring"
	"github.com/toolscout/toolscout/internal/supervisor"
	"github.com/toolscout/toolscout/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config not yet available, use the default logger.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("seed_path", cfg.Catalog.SeedPath).
		Str("data_dir", cfg.Catalog.DataDir).
		Msg("Starting Toolscout")

	db, err := badger.Open(badger.DefaultOptions(cfg.Catalog.DataDir).WithLogger(nil))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open snapshot database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing snapshot database")
		}
	}()

	store := catalog.NewStore(logging.Logger())
	snapshots := catalog.NewSnapshotStore(db)
	loadCatalog(store, snapshots, cfg.Catalog.SeedPath)

	kn := recommend.DefaultKnowledge()
	engine, err := recommend.NewEngine(&cfg.Engine, kn, scoring.DefaultScorers(kn), logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	handler := api.NewHandler(engine, store, logging.Logger())
	router := api.NewRouter(handler, api.RouterOptions{
		CORSOrigins:       cfg.API.CORSOrigins,
		RateLimitRequests: cfg.API.RateLimitRequests,
		RateLimitWindow:   cfg.API.RateLimitWindow,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(logging.Logger()), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// loadCatalog fills the store from the YAML seed file, persisting a fresh
// snapshot on success. If the seed is unavailable it falls back to the last
// persisted snapshot; with neither, the server starts with an empty catalog
// and reports not-ready until one arrives.
func loadCatalog(store *catalog.Store, snapshots *catalog.SnapshotStore, seedPath string) {
	tools, err := catalog.LoadSeed(seedPath)
	if err == nil {
		accepted, skipped := store.Replace(tools)
		logging.Info().
			Int("accepted", accepted).
			Int("skipped", skipped).
			Str("seed_path", seedPath).
			Msg("Catalog loaded from seed")
		if err := snapshots.Save(store.Snapshot()); err != nil {
			logging.Warn().Err(err).Msg("Failed to persist catalog snapshot")
		}
		return
	}
	logging.Warn().Err(err).Str("seed_path", seedPath).Msg("Failed to load catalog seed, trying snapshot")

	tools, snapErr := snapshots.Load()
	if snapErr != nil {
		if errors.Is(snapErr, catalog.ErrNoSnapshot) {
			logging.Warn().Msg("No catalog snapshot available, starting with empty catalog")
		} else {
			logging.Error().Err(snapErr).Msg("Failed to load catalog snapshot")
		}
		return
	}

	accepted, skipped := store.Replace(tools)
	logging.Info().
		Int("accepted", accepted).
		Int("skipped", skipped).
		Msg("Catalog restored from snapshot")
}
