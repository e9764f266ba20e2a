package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/denizatesh/foosleague/internal/common/clock"
	"github.com/denizatesh/foosleague/internal/config"
	"github.com/denizatesh/foosleague/internal/handlers/rest"
	"github.com/denizatesh/foosleague/internal/matchup"
	fixtureRepo "github.com/denizatesh/foosleague/internal/repositories/fixture"
	gameRepo "github.com/denizatesh/foosleague/internal/repositories/game"
	tierRepo "github.com/denizatesh/foosleague/internal/repositories/leaguetier"
	playerRepo "github.com/denizatesh/foosleague/internal/repositories/player"
	standingRepo "github.com/denizatesh/foosleague/internal/repositories/standing"
	fixtureService "github.com/denizatesh/foosleague/internal/services/fixture"
	leagueService "github.com/denizatesh/foosleague/internal/services/league"
	rosterService "github.com/denizatesh/foosleague/internal/services/roster"
	"github.com/denizatesh/foosleague/pkg/metrics"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.WithField("log_level", cfg.LogLevel).Warn("Unknown log level, using info")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Fatal("Failed to connect to Redis")
	}

	gameRepository, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create game repository")
	}

	playerRepository, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create player repository")
	}

	fixtureRepository, err := fixtureRepo.NewRedis(&fixtureRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create fixture repository")
	}

	tierRepository, err := tierRepo.NewRedis(&tierRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create league tier repository")
	}

	standingRepository, err := standingRepo.NewRedis(&standingRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create standing repository")
	}

	serviceClock := clock.New()
	generator := matchup.New(&matchup.Config{})

	rosterSvc, err := rosterService.New(&rosterService.Config{
		GameRepo:   gameRepository,
		PlayerRepo: playerRepository,
		Clock:      serviceClock,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create roster service")
	}

	fixtureSvc, err := fixtureService.New(&fixtureService.Config{
		GameRepo:    gameRepository,
		PlayerRepo:  playerRepository,
		FixtureRepo: fixtureRepository,
		Generator:   generator,
		Clock:       serviceClock,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create fixture service")
	}

	leagueSvc, err := leagueService.New(&leagueService.Config{
		TierRepo:     tierRepository,
		StandingRepo: standingRepository,
		FixtureRepo:  fixtureRepository,
		Clock:        serviceClock,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create league service")
	}

	handler, err := rest.New(&rest.Config{
		RosterService:  rosterSvc,
		FixtureService: fixtureSvc,
		LeagueService:  leagueSvc,
		Logger:         logger,
		Metrics:        metrics.New(),
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create REST handler")
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.WithField("addr", cfg.Addr).Info("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed")
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Error shutting down server")
	}

	if err := redisClient.Close(); err != nil {
		logger.WithError(err).Error("Error closing Redis client")
	}

	logger.Info("Server has been shut down")
}
