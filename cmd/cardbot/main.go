// Command cardbot runs one reconciliation pass over the membership
// spreadsheet: it publishes requested cards, sends reminders and writes the
// outcome back to the sheet. It is meant to be started by a scheduler.
package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/clubcard/internal/app"
	"github.com/dmitrijs2005/clubcard/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()
	cfg := config.LoadConfig()

	if err := app.PromptKeyPassword(cfg.AppleKey, &cfg.AppleKeyPassword, os.Stderr); err != nil {
		log.Printf("%v", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("%v", err)
		return 1
	}

	logger, err := app.NewLogger(cfg, os.Stdout)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}

	a, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "init failed", "error", err)
		return 1
	}

	if _, err := a.Run(ctx); err != nil {
		return 1
	}
	return 0
}
