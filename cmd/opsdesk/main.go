package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"opsdesk/internal/activity"
	"opsdesk/internal/api"
	"opsdesk/internal/audit"
	"opsdesk/internal/bus"
	"opsdesk/internal/config"
	"opsdesk/internal/db"
	"opsdesk/internal/otel"
	"opsdesk/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	cleanup, err := otel.Init(ctx, "opsdesk", cfg.OTLPEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("init otel")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := cleanup(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown otel")
		}
	}()

	database, err := db.Connect(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer func() {
		if err := db.Close(database); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	if err := db.Migrate(ctx, cfg.DBDSN); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	pool, err := db.OpenPool(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("open pool")
	}
	defer pool.Close()

	changeBus, err := bus.Connect(cfg.NATSURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect bus")
	}
	defer changeBus.Close()
	if changeBus == nil {
		log.Warn().Msg("NATS_URL not set; change notifications disabled")
	}

	auditWriter := audit.NewWriter(database, changeBus, log.Logger)
	stores := store.New(store.Deps{
		DB:    database,
		Audit: auditWriter,
		Bus:   changeBus,
		Log:   log.Logger,
	})
	feed := activity.NewFeed(pool, log.Logger)

	apiLayer, err := api.New(api.Options{
		Stores:   stores,
		Feed:     feed,
		Audit:    auditWriter,
		AuditLog: audit.NewReader(database),
		Bus:      changeBus,
		Pool:     pool,
		Config:   cfg,
		Log:      log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init api")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           apiLayer.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("org", cfg.OrganizationName).Msg("starting opsdesk")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown server")
	}
}
