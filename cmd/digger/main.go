// Package main is the entry point for Santa's Little Digger.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/martin-jw/santas-little-digger/internal/config"
	"github.com/martin-jw/santas-little-digger/internal/game"
	"github.com/martin-jw/santas-little-digger/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_DIGGER_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	var configPath string
	flag.StringVar(&configPath, "config", "digger.yaml", "Path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, running without observability", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("error shutting down telemetry", zap.Error(err))
			}
		}()
	}

	// Create and run game
	g, err := game.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize game", zap.Error(err))
	}

	if err := g.Run(ctx); err != nil {
		g.Close()
		logger.Fatal("game error", zap.Error(err))
	}
}

// newLogger builds the zap logger from the logging config. Console format
// writes human-readable lines to stderr so it stays out of the tcell
// screen's way; json is for shipping elsewhere.
func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}

	return zapCfg.Build()
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_DIGGER_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DIGGER_DATASET")
	if dataset == "" {
		dataset = "santas-little-digger" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
