// Package main is the entry point for HollowHex.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/hollowhex/internal/game"
	"github.com/samdwyer/hollowhex/internal/logger"
	"github.com/samdwyer/hollowhex/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_HOLLOWHEX_API_KEY available
	envErr := godotenv.Load()

	closer, err := logger.Init()
	if err != nil {
		log.Printf("Warning: log file not opened, logging disabled: %v", err)
	}
	defer closer.Close()

	if envErr != nil {
		// Not fatal - env vars might be set directly
		logger.Log.WithError(envErr).Debug(".env file not loaded")
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("telemetry setup failed, running without observability")
		telemetry.Disable()
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Log.WithError(err).Error("telemetry shutdown failed")
			}
		}()
	}

	// Create and run game
	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		logger.Log.WithError(err).Error("game error")
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may hold an unexpanded variable reference, so the
	// headers are built here from the key itself.
	apiKey := os.Getenv("HONEYCOMB_HOLLOWHEX_API_KEY")
	dataset := os.Getenv("HONEYCOMB_HOLLOWHEX_DATASET")
	if dataset == "" {
		dataset = "hollowhex"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
