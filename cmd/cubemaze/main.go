// Package main is the entry point for the cube maze game.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/samdwyer/cubemaze/internal/game"
	"github.com/samdwyer/cubemaze/internal/telemetry"
)

func main() {
	// LoadConfig also loads .env, which may carry HONEYCOMB_CUBEMAZE_* keys.
	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, closeLog := setupLogging(cfg)
	defer closeLog()

	ctx := context.Background()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Error(err, "telemetry setup failed, running without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error(err, "telemetry shutdown failed")
				}
			}()
		}
	}

	// Create and run game
	g, err := game.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Printf("Game error: %v", err)
		closeLog()
		os.Exit(1)
	}
}

// setupLogging returns a logger writing to the configured file in debug mode.
// The terminal belongs to the game screen, so logs never go to stdout.
func setupLogging(cfg game.Config) (logr.Logger, func()) {
	if !cfg.Debug {
		return telemetry.NewLogger(io.Discard, 0), func() {}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		log.Printf("Unable to create log directory: %v", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Unable to open log file: %v", err)
		return telemetry.NewLogger(io.Discard, 0), func() {}
	}
	return telemetry.NewLogger(f, 1), func() { _ = f.Close() }
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	apiKey := os.Getenv("HONEYCOMB_CUBEMAZE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_CUBEMAZE_DATASET")
	if dataset == "" {
		dataset = "cubemaze"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
