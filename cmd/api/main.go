package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codearea/internal/config"
	httpx "codearea/internal/http"
	questionsvc "codearea/internal/services/question"
	"codearea/internal/store/memory"
	"codearea/internal/store/postgres"
	"codearea/internal/store/redisstore"
	"codearea/internal/store/repositories"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.MustLoad()
	setupLogging(cfg.App)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Question store
	var questionRepo repositories.QuestionRepository
	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Warn().Msg("using in-memory question store; data is lost on restart")
		questionRepo = memory.NewQuestionRepository()
	default:
		pool, err := postgres.Connect(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres setup failed")
		}
		defer pool.Close()
		questionRepo = postgres.NewQuestionRepository(pool)
	}

	// Sessions and view tracking (optional)
	var (
		sessions repositories.SessionStore
		views    repositories.ViewTracker
	)
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Open(ctx, cfg.Redis, cfg.DB.ConnectRetries)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect fail")
		}
		defer rdb.Close()
		sessions = redisstore.NewSessionStore(rdb)
		views = redisstore.NewViewTracker(rdb)
	} else {
		log.Warn().Msg("REDIS_ADDR not set; all requests are anonymous")
	}

	r := httpx.NewRouter(httpx.RouterDependencies{
		Config:          cfg,
		ListingService:  questionsvc.NewListingService(questionRepo, cfg.HTTP.MaxPageSize),
		QuestionService: questionsvc.NewService(questionRepo, views, cfg.Session.ViewWindow),
		Sessions:        sessions,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("env", cfg.App.Env).Str("store", cfg.DB.Driver).Msgf("codearea API listening on :%s", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	cancel()
	ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	log.Info().Msg("server stopped")
}

func setupLogging(app config.AppCfg) {
	level, err := zerolog.ParseLevel(app.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if app.Env == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
