package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/ReviewLottery_Go/docs"
	"github.com/osse101/ReviewLottery_Go/internal/bootstrap"
	"github.com/osse101/ReviewLottery_Go/internal/campaign"
	"github.com/osse101/ReviewLottery_Go/internal/claim"
	"github.com/osse101/ReviewLottery_Go/internal/claimcode"
	"github.com/osse101/ReviewLottery_Go/internal/config"
	"github.com/osse101/ReviewLottery_Go/internal/database"
	"github.com/osse101/ReviewLottery_Go/internal/handler"
	"github.com/osse101/ReviewLottery_Go/internal/lottery"
	"github.com/osse101/ReviewLottery_Go/internal/participation"
	"github.com/osse101/ReviewLottery_Go/internal/server"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 15 * time.Second
)

// @title ReviewLottery API
// @version 1.0
// @description Prize wheel for customer review campaigns
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Version == config.DefaultVersion {
		cfg.Version = handler.ResolveVersion()
	}
	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		// Load already applied defaults; only report what is missing
		slog.Warn("Environment incomplete, using defaults", "error", err)
	}
	for _, warning := range warnings {
		slog.Warn("Configuration warning", "detail", warning)
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStart()

	dbPool, err := database.NewPool(startCtx, cfg.GetDBConnString(), database.PoolConfig{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.Migrate(startCtx, dbPool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}
	if err := bootstrap.RegisterEventHandlers(publisher, cfg); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	participationSvc := participation.NewService(
		repos.Participation,
		lottery.NewEngine(lottery.DefaultSource()),
		claimcode.NewGenerator(),
		publisher,
	)
	claimSvc := claim.NewService(repos.Claim, publisher)
	campaignSvc := campaign.NewService(repos.Campaign, publisher, cfg.CampaignCacheSize, cfg.CampaignCacheTTL)

	sched, pool, err := bootstrap.StartBackgroundJobs(cfg, claimSvc, participationSvc, publisher)
	if err != nil {
		slog.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
	}, dbPool, server.Services{
		Participation: participationSvc,
		Claim:         claimSvc,
		Campaign:      campaignSvc,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
			exitCode = 1
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		ResilientPublisher: publisher,
	})

	if exitCode != 0 {
		dbPool.Close()
		os.Exit(exitCode)
	}
}
