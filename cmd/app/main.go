package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fantaschedina/backend/internal/achievement"
	"github.com/fantaschedina/backend/internal/config"
	"github.com/fantaschedina/backend/internal/database"
	"github.com/fantaschedina/backend/internal/database/postgres"
	"github.com/fantaschedina/backend/internal/domain"
	"github.com/fantaschedina/backend/internal/prize"
	"github.com/fantaschedina/backend/internal/ranking"
	"github.com/fantaschedina/backend/internal/scoring"
	"github.com/fantaschedina/backend/internal/server"
)

const (
	dbMaxConnections  = 10
	dbMaxIdleTime     = 5 * time.Minute
	dbMaxConnLifetime = 30 * time.Minute
	shutdownTimeout   = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	tournamentConfig, err := loadTournamentConfig(cfg)
	if err != nil {
		slog.Error("Tournament configuration failed", "error", err)
		os.Exit(1)
	}

	connString := cfg.GetDBConnString()

	if err := database.Migrate(connString); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(connString, dbMaxConnections, dbMaxIdleTime, dbMaxConnLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	schedinaRepo := postgres.NewSchedinaRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool)
	prizeRepo := postgres.NewPrizeRepository(dbPool)

	scoringService := scoring.NewService(schedinaRepo, matchRepo, tournamentConfig)
	prizeService := prize.NewService(prizeRepo, schedinaRepo, tournamentConfig)
	rankingService := ranking.NewService(schedinaRepo, tournamentConfig)
	achievementService := achievement.NewService(schedinaRepo, prizeRepo, tournamentConfig)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, scoringService, prizeService, rankingService, achievementService, tournamentConfig)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}

// loadTournamentConfig loads the season rules from the configured file,
// falling back to the built-in defaults when no file is set.
func loadTournamentConfig(cfg *config.Config) (*domain.TournamentConfig, error) {
	if cfg.TournamentConfigPath == "" {
		tc := domain.DefaultTournamentConfig()
		return tc, tc.Validate()
	}

	tc, err := domain.LoadTournamentConfig(cfg.TournamentConfigPath)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded tournament configuration", "path", cfg.TournamentConfigPath, "season", tc.Season)
	return tc, nil
}
