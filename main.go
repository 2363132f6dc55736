package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/temidaradev/cryptotracker/internal/config"
	"github.com/temidaradev/cryptotracker/internal/dashboard"
	"github.com/temidaradev/cryptotracker/internal/market"
)

// handleTermination cancels the context on an interrupt or termination signal from the OS.
func handleTermination(ctx context.Context, cancel context.CancelFunc) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	select {
	case <-ctx.Done():
	case sig := <-interrupt:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		cancel()
	}
}

func main() {
	var cfg config.Config
	if err := config.Load(&cfg, ""); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.Level()).
		With().Timestamp().Str("app", "cryptotracker").Logger()
	log.Logger = logger

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := market.NewClient(&market.ClientConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout(),
	})

	tracker, err := market.NewTracker(&market.TrackerConfig{
		Fetcher: client,
		Images:  client,
		Logger:  &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("creating tracker")
	}
	defer tracker.Close()

	go handleTermination(ctx, cancel)
	go tracker.Run(ctx)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Crypto Tracker")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	dash, err := dashboard.New(&dashboard.Config{
		Source:      tracker,
		DeviceScale: ebiten.Monitor().DeviceScaleFactor(),
		Done:        ctx.Done(),
		Logger:      &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("creating dashboard")
	}

	if err := ebiten.RunGame(dash); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error().Err(err).Msg("running dashboard")
	}
}
