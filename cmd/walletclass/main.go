// Command walletclass creates the Google Wallet pass class used by member
// cards, or updates it when it already exists. Run it once per issuer and
// again after changing the class layout.
package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/clubcard/internal/app"
	"github.com/dmitrijs2005/clubcard/internal/config"
	"github.com/dmitrijs2005/clubcard/internal/passes/google"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := app.NewLogger(cfg, os.Stdout)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}

	if !cfg.GoogleWalletEnabled() {
		logger.Error(ctx, "GOOGLE_WALLET_SERVICE_ACCOUNT_CREDENTIALS and GOOGLE_WALLET_ISSUER_ID must be set")
		return 1
	}

	creds, err := config.DecodeCredentials(cfg.GoogleWalletCredentials)
	if err != nil {
		logger.Error(ctx, "bad wallet credentials", "error", err)
		return 1
	}
	svc, err := google.NewService(ctx, creds)
	if err != nil {
		logger.Error(ctx, "wallet service init failed", "error", err)
		return 1
	}

	class := google.NewClass(cfg.GoogleWalletIssuerID, cfg.GoogleWalletClassSuffix)
	created, err := google.EnsureClass(ctx, svc, class)
	if err != nil {
		logger.Error(ctx, "could not save class", "class_id", class.Id, "error", err)
		return 1
	}
	logger.Info(ctx, "class saved", "class_id", class.Id, "created", created)
	return 0
}
