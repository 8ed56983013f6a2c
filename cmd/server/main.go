package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/db"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/metrics"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := LoadEnvironment()
	SetupLogging(cfg)

	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}
	defer db.DB.Close()

	if err := db.RunMigrations(db.DB, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	if err := metrics.Register(nil); err != nil {
		log.Fatal().Err(err).Msg("metrics register")
	}

	tmpl, err := LoadTemplates(templatesDir)
	if err != nil {
		log.Fatal().Err(err).Msg("load templates")
	}

	publisher := InitPublisher(cfg)
	defer publisher.Close()

	services := Services{
		Store:     db.NewStore(db.DB),
		Times:     InitPrayerTimes(cfg, InitCache(cfg), publisher),
		Storage:   InitStorage(cfg),
		Templates: tmpl,
	}

	engine := NewEngine()
	RegisterRoutes(engine, cfg, services)

	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           NewRouter(cfg).Handler(engine),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().
			Str("addr", cfg.ServerAddress).
			Str("root_domain", cfg.RootDomain).
			Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
