package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/openhuddle/huddle/internal/adapter/driven/conference/rest"
	"github.com/openhuddle/huddle/internal/adapter/driven/gateway/ws"
	repo "github.com/openhuddle/huddle/internal/adapter/driven/persistence/memory"
	handler "github.com/openhuddle/huddle/internal/adapter/driving/http"
	"github.com/openhuddle/huddle/internal/config"
	"github.com/openhuddle/huddle/internal/core/service"
	"github.com/openhuddle/huddle/internal/metrics"
)

func main() {
	_ = godotenv.Load()

	w := zerolog.ConsoleWriter{Out: os.Stdout}
	l := zerolog.New(w).With().Timestamp().Caller().Logger()
	log.Logger = l

	cfg, err := config.Load()
	if err != nil {
		l.Fatal().Err(err).Msg("Invalid configuration")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	store := repo.NewSessionStore()
	hub := ws.NewHub()
	go hub.Run()

	gateway := rest.NewClient(cfg.ConferenceEndpoint,
		rest.WithAPIKey(cfg.ConferenceAPIKey),
		rest.WithLogger(l),
	)

	sessions := service.NewSessionService(store, gateway, hub)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	accessLog := handler.NewAccessLogWriter(cfg.AccessLogPath)
	defer accessLog.Close()

	h := handler.NewHandler(sessions, hub, m, reg, handler.Options{
		IndexPath: cfg.IndexPath(),
		Debug:     cfg.Debug,
		AccessLog: accessLog,
	})

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: h.NewRouter(),
	}

	go func() {
		l.Info().Str("addr", cfg.ListenAddr).Str("variant", cfg.AppVariant).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	l.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		l.Error().Err(err).Msg("Server forced to shutdown")
	}

	hub.Stop()
	l.Info().Msg("Server exited")
}
