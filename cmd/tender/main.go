package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/avdanilov/tender/internal/cli"
	"github.com/avdanilov/tender/internal/intelligence"
	"github.com/avdanilov/tender/internal/llm"
	"github.com/avdanilov/tender/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env next to the binary; env vars already set win.
	_ = godotenv.Load()

	cfg := llm.LoadConfig()

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}

	client, err := llm.NewGeminiClient(context.Background(), cfg, observer)
	if err != nil {
		return fmt.Errorf("initializing capability client: %w", err)
	}

	session := service.NewEstimateSession(
		intelligence.NewExtractionService(client),
		intelligence.NewValidationService(client),
	)

	app := &cli.App{Session: session}
	return cli.NewRootCmd(app).Execute()
}
