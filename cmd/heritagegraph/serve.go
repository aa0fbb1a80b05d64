package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/heritagegraph/internal/config"
	"github.com/kailas-cloud/heritagegraph/internal/db"
	"github.com/kailas-cloud/heritagegraph/internal/db/elastic"
	"github.com/kailas-cloud/heritagegraph/internal/db/sparql"
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/profile"
	logpkg "github.com/kailas-cloud/heritagegraph/internal/logger"
	"github.com/kailas-cloud/heritagegraph/internal/metrics"
	datasetrepo "github.com/kailas-cloud/heritagegraph/internal/repository/dataset"
	guiderepo "github.com/kailas-cloud/heritagegraph/internal/repository/guide"
	objectrepo "github.com/kailas-cloud/heritagegraph/internal/repository/object"
	personrepo "github.com/kailas-cloud/heritagegraph/internal/repository/person"
	provenancerepo "github.com/kailas-cloud/heritagegraph/internal/repository/provenance"
	searchrepo "github.com/kailas-cloud/heritagegraph/internal/repository/search"
	chiTransport "github.com/kailas-cloud/heritagegraph/internal/transport/chi"
	healthuc "github.com/kailas-cloud/heritagegraph/internal/usecase/health"
	searchuc "github.com/kailas-cloud/heritagegraph/internal/usecase/search"
	"github.com/kailas-cloud/heritagegraph/internal/version"
)

func newServeCmd() *cobra.Command {
	var env string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Loads config/<env>.yaml and serves the projection and search API until SIGINT or SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return serve(env)
		},
	}
	cmd.Flags().StringVar(&env, "env", config.GetEnv(), "config environment (local, dev, prod)")
	return cmd
}

func serve(env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting heritagegraph API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("graph_endpoint", cfg.Graph.Endpoint),
		zap.Bool("search_enabled", cfg.Search.Enabled()),
	)

	// Triple store
	graphStore, err := sparql.NewStore(sparql.Config{
		Endpoint: cfg.Graph.Endpoint,
		Timeout:  time.Duration(cfg.Graph.TimeoutSec) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create graph store: %w", err)
	}

	ctx := context.Background()
	readiness := time.Duration(cfg.Graph.ReadinessTimeout) * time.Second
	if err := db.WaitForReady(ctx, graphStore, readiness); err != nil {
		return fmt.Errorf("graph store not ready: %w", err)
	}
	logger.Info("Connected to triple store")

	// Register metrics explicitly (no init())
	metrics.RegisterGraphMetrics()

	objects := objectrepo.New(graphStore)
	persons := personrepo.New(graphStore)
	datasets := datasetrepo.New(graphStore)

	deps := chiTransport.Deps{
		Objects:          objects,
		Persons:          persons,
		Datasets:         datasets,
		ProvenanceEvents: provenancerepo.New(graphStore),
		ResearchGuides:   guiderepo.New(graphStore),
		DefaultLocale:    domain.Locale(cfg.Locale.Default),
		APIKeys:          cfg.Auth.APIKeys,
		Logger:           logger,
	}

	// Search index is optional; its routes answer 501 without it.
	// Pass nil interface (not typed nil pointer!) to the health service.
	var searchPinger healthuc.Pinger
	if cfg.Search.Enabled() {
		index, err := elastic.NewStore(elastic.Config{
			Addresses: cfg.Search.Addresses,
			Username:  cfg.Search.Username,
			Password:  cfg.Search.Password,
			APIKey:    cfg.Search.APIKey,
			Transport: &http.Transport{ResponseHeaderTimeout: time.Duration(cfg.Search.TimeoutSec) * time.Second},
		})
		if err != nil {
			return fmt.Errorf("failed to create search index: %w", err)
		}
		if err := db.WaitForReady(ctx, index, readiness); err != nil {
			return fmt.Errorf("search index not ready: %w", err)
		}
		logger.Info("Connected to search index", zap.String("index", cfg.Search.Index))

		searchRepo, err := searchrepo.New(index, cfg.Search.Index)
		if err != nil {
			return fmt.Errorf("failed to create search repository: %w", err)
		}
		deps.ObjectSearch = searchuc.New[domain.HeritageObject](profile.Objects, searchRepo, objects)
		deps.PersonSearch = searchuc.New[domain.Person](profile.Persons, searchRepo, persons)
		deps.DatasetSearch = searchuc.New[domain.Dataset](profile.Datasets, searchRepo, datasets)
		searchPinger = index
	}
	deps.Health = healthuc.New(graphStore, searchPinger)

	server := chiTransport.NewServer(deps)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Handler(),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-quit:
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	return nil
}
