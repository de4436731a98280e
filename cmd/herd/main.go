package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/herd-lab/follow-the-herd/internal/attribution"
	"github.com/herd-lab/follow-the-herd/internal/catalog"
	corecfg "github.com/herd-lab/follow-the-herd/internal/core/config"
	"github.com/herd-lab/follow-the-herd/internal/core/storage"
	"github.com/herd-lab/follow-the-herd/internal/core/storage/postgres"
	"github.com/herd-lab/follow-the-herd/internal/ingestion"
	"github.com/herd-lab/follow-the-herd/internal/migrations"
	"github.com/herd-lab/follow-the-herd/internal/popularity"
	"github.com/herd-lab/follow-the-herd/internal/rankings"
	"github.com/herd-lab/follow-the-herd/internal/reconcile"
	"github.com/herd-lab/follow-the-herd/internal/server"
)

func main() {
	configPath := flag.String("config", "herd.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config", "config", cfg)

	// 2. Initialize Storage (PostgreSQL)
	ledger, err := postgres.NewLedgerAdapter(
		cfg.Database.DSN,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
	)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer ledger.Close()

	// 2.1. Run Database Migrations
	if err := migrations.RunMigrations(ledger.DB(), cfg.Database.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	popularityStore := postgres.NewPopularityAdapter(ledger.DB())
	sessionStore := postgres.NewSessionAdapter(ledger.DB())

	// 3. Initialize Catalog Client
	markerDef, err := catalog.LoadMarkerDefinition(cfg.Catalog.DefinitionPath)
	if err != nil {
		slog.Error("Failed to load marker definition", "error", err)
		os.Exit(1)
	}

	catalogClient := catalog.NewClient(
		markerDef,
		cfg.Catalog.APIVersion,
		time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second,
		nil,
	)
	slog.Info("Catalog client initialized",
		"api_version", cfg.Catalog.APIVersion,
		"marker_namespace", markerDef.Namespace,
		"marker_key", markerDef.Key,
	)

	// 3.1. Ensure the marker definition exists for every installed shop.
	// Best-effort: the pipeline works without the definition, downstream
	// themes just won't see the flag until a later attempt succeeds.
	ensureMarkerDefinitions(context.Background(), sessionStore, catalogClient)

	// 4. Initialize Pipeline
	attributionEngine := attribution.NewEngine(ledger)
	popularityEngine := popularity.NewEngine(ledger, popularityStore)
	reconciler := reconcile.NewReconciler(catalogClient)

	ingestionSvc := ingestion.NewService(
		sessionStore,
		attributionEngine,
		popularityEngine,
		reconciler,
		cfg.Server.MaxBodySizeMB,
	)

	rankingsSvc := rankings.NewService(
		ledger,
		sessionStore,
		catalogClient,
		cfg.Popularity.RankingLimit,
		cfg.Popularity.TitleBatchSize,
	)

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), ledger.DB(), cfg.Server.Mode)
	ingestionSvc.RegisterRoutes(srv.Engine)
	rankingsSvc.RegisterRoutes(srv.Engine)

	// 6. Start
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler → triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// ensureMarkerDefinitions runs the startup definition check for the shops
// this instance serves. Sessions arrive via the external OAuth flow; with a
// single-shop deployment the HERD_CATALOG__BOOTSTRAP_SHOP env var names the
// shop to bootstrap. Missing session or failed call is logged, never fatal.
func ensureMarkerDefinitions(ctx context.Context, sessions storage.SessionStore, client *catalog.Client) {
	shop := os.Getenv("HERD_CATALOG__BOOTSTRAP_SHOP")
	if shop == "" {
		return
	}

	ensureCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	sess, err := sessions.Get(ensureCtx, shop)
	if err != nil {
		slog.Warn("Skipping marker definition bootstrap: no session", "shop", shop, "error", err)
		return
	}

	if err := client.EnsureMarkerDefinition(ensureCtx, catalog.AuthFromSession(sess)); err != nil {
		slog.Warn("Failed to ensure marker definition", "shop", shop, "error", err)
		return
	}

	slog.Info("Marker definition ensured", "shop", shop)
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
