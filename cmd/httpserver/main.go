package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moviecredits/actor"
	"moviecredits/credit"
	"moviecredits/httpserver"
	"moviecredits/movie"
	"moviecredits/pkg/config"
	"moviecredits/pkg/logger"
	"moviecredits/pkg/sentry"
	"moviecredits/pkg/storage"

	sentrygo "github.com/getsentry/sentry-go"
)

// @title Movie Credits API
// @version 1.0
// @description Movies, actors and the credits linking them.
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.New(logger.Options{}).Fatalw("cannot load config", "error", err)
	}

	log := logger.New(logger.Options{Debug: cfg.Debug, File: cfg.LogFile})
	defer log.Sync() // nolint: errcheck

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalw("cannot init sentry", "error", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalw("cannot open storage", "driver", cfg.DB.Driver, "error", err)
	}
	defer repos.Close()

	server := httpserver.Default(cfg)
	server.Logger = log
	server.MovieService = movie.NewUsecase(repos.Movies)
	server.ActorService = actor.NewUsecase(repos.Actors)
	server.CreditService = credit.NewUsecase(repos.Credits)

	go func() {
		log.Infow("server started", "addr", server.Addr, "driver", cfg.DB.Driver)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server stopped with error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
	}
	log.Info("server stopped")
}
