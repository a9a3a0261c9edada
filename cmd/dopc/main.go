// Command dopc serves the Delivery Order Price Calculator API.
//
// @title        Delivery Order Price Calculator API
// @version      1.0
// @description  Calculates delivery order prices from venue data.
// @host         localhost:8000
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/timbrist/backend-internship-2025/internal/api"
	"github.com/timbrist/backend-internship-2025/internal/api/handler"
	"github.com/timbrist/backend-internship-2025/internal/core/service"
	"github.com/timbrist/backend-internship-2025/internal/infrastructure/venueapi"
	"github.com/timbrist/backend-internship-2025/internal/pkg/config"
	"github.com/timbrist/backend-internship-2025/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "dopc",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	venues, err := venueapi.NewClient(venueapi.Config{
		BaseURL: cfg.VenueAPI.BaseURL,
		Timeout: cfg.VenueAPI.Timeout,
		Retries: cfg.VenueAPI.Retries,
	}, &http.Client{Timeout: cfg.VenueAPI.Timeout}, logger.Component("venueapi"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid venue provider configuration")
	}

	prices := service.NewPriceService(service.NewPricingEngine(), venues, logger.Component("pricing"))

	e := api.NewRouter(api.Dependencies{
		Prices: prices,
		Ready:  map[string]handler.Pinger{"venue_api": venues},
		Log:    logger.Component("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("dopc listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
	log.Info().Msg("stopped")
}
