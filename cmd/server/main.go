package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/loopcinemas/loop-api/internal/config"
	"github.com/loopcinemas/loop-api/internal/database"
	"github.com/loopcinemas/loop-api/internal/handler"
	"github.com/loopcinemas/loop-api/internal/logger"
	"github.com/loopcinemas/loop-api/internal/queue"
	"github.com/loopcinemas/loop-api/internal/repository"
	"github.com/loopcinemas/loop-api/internal/router"
	queuepublisher "github.com/loopcinemas/loop-api/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		lg := logger.Init(logger.Options{})
		lg.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	db, err := database.Open(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	movies := repository.NewMovieRepo(db)
	users := repository.NewUserRepo(db)
	reviews := repository.NewReviewRepo(db)
	sessions := repository.NewSessionRepo(db)
	reservations := repository.NewReservationRepo(db)

	seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if err := database.SeedMovies(seedCtx, movies); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("movie seed failed")
	}
	cancel()

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb == nil {
		log.Warn().Msg("redis unavailable, caching and rate limiting disabled")
	}

	events := queuepublisher.New(cfg.RabbitURL)

	h := router.Handlers{
		Users:        handler.NewUserHandler(cfg, users),
		Movies:       handler.NewMovieHandler(movies, reviews),
		Reviews:      handler.NewReviewHandler(reviews, events),
		Sessions:     handler.NewSessionHandler(movies, sessions),
		Reservations: handler.NewReservationHandler(sessions, movies, reservations, events),
	}

	e := router.New(cfg, h, rdb)

	go queue.StartReservationConsumer(cfg.RabbitURL)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
