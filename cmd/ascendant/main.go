// Package main is the entry point for Ascendant.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/samdwyer/ascendant/internal/game"
	"github.com/samdwyer/ascendant/internal/telemetry"
)

func main() {
	// tcell owns the terminal, so the standard logger writes to a rotating
	// file instead of stderr.
	log.SetOutput(&lumberjack.Logger{
		Filename:   "ascendant.log",
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	})

	// Load .env file for local development
	// This makes HONEYCOMB_ASCENDANT_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	// Load configuration (optional YAML file next to the binary)
	configPath := os.Getenv("ASCENDANT_CONFIG")
	if configPath == "" {
		configPath = "ascendant.yaml"
	}
	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Create and run game
	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_ASCENDANT_API_KEY")
	dataset := os.Getenv("HONEYCOMB_ASCENDANT_DATASET")
	if dataset == "" {
		dataset = "ascendant" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
