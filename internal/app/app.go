// Package app wires the configured collaborators into a reconciliation
// pass and runs it with graceful shutdown on SIGINT/SIGTERM.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/clubcard/internal/awsx"
	"github.com/dmitrijs2005/clubcard/internal/cards"
	"github.com/dmitrijs2005/clubcard/internal/config"
	"github.com/dmitrijs2005/clubcard/internal/identity"
	"github.com/dmitrijs2005/clubcard/internal/logging"
	"github.com/dmitrijs2005/clubcard/internal/notify"
	"github.com/dmitrijs2005/clubcard/internal/passes/apple"
	"github.com/dmitrijs2005/clubcard/internal/passes/google"
	"github.com/dmitrijs2005/clubcard/internal/reconcile"
	"github.com/dmitrijs2005/clubcard/internal/sheets"
	"github.com/dmitrijs2005/clubcard/internal/storage"
	"github.com/google/uuid"
)

type App struct {
	config *config.Config
	logger logging.Logger
	deps   reconcile.Deps
	opts   reconcile.Options
}

// NewLogger builds the logger selected by c.
func NewLogger(c *config.Config, w io.Writer) (logging.Logger, error) {
	return logging.New(w, logging.Options{Backend: c.LogBackend, Level: c.LogLevel, Format: c.LogFormat})
}

// NewApp connects to the spreadsheet, S3, SES and (when enabled) SNS and
// Google Wallet, and loads the Apple pass signing material.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	identity.SetLogger(logger)

	creds, err := config.DecodeCredentials(c.GoogleCredentials)
	if err != nil {
		return nil, fmt.Errorf("sheets credentials: %w", err)
	}
	sheet, err := sheets.NewGoogle(ctx, creds, c.SpreadsheetID, c.SheetName)
	if err != nil {
		return nil, fmt.Errorf("sheets init error: %w", err)
	}

	awsCreds := awsx.Credentials{AccessKeyID: c.AWSAccessKeyID, SecretAccessKey: c.AWSSecretAccessKey}
	store, err := storage.NewS3Store(ctx, storage.S3Config{
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		Credentials:  awsCreds,
		BaseEndpoint: c.S3BaseEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 init error: %w", err)
	}

	builder, err := newPassBuilder(c)
	if err != nil {
		return nil, fmt.Errorf("apple pass init error: %w", err)
	}

	var linker cards.WalletLinker
	if c.GoogleWalletEnabled() {
		l, err := newWalletLinker(c)
		if err != nil {
			return nil, fmt.Errorf("google wallet init error: %w", err)
		}
		linker = l
	}

	email, err := notify.NewSES(ctx, notify.SESConfig{Region: c.SESRegion, Credentials: awsCreds, From: c.EmailSender})
	if err != nil {
		return nil, fmt.Errorf("ses init error: %w", err)
	}
	var sms notify.SMSSender
	if c.SMSEnabled {
		s, err := notify.NewSNS(ctx, notify.SNSConfig{Region: c.SNSRegion, Credentials: awsCreds, SenderID: c.SMSSenderID})
		if err != nil {
			return nil, fmt.Errorf("sns init error: %w", err)
		}
		sms = s
	}

	deps := reconcile.Deps{
		Sheet:     sheet,
		Publisher: cards.NewPublisher(store, builder, linker, c.CardBaseURL, logger),
		Notifier: notify.NewDispatcher(email, sms, notify.Options{
			ContactPhone: c.ContactPhone,
			SMSEnabled:   c.SMSEnabled,
		}, logger),
		Pacer: reconcile.NewPacer(c.PacingInterval),
	}

	return NewAppWithDeps(c, logger, deps), nil
}

// NewAppWithDeps builds an App around already constructed collaborators.
func NewAppWithDeps(c *config.Config, logger logging.Logger, deps reconcile.Deps) *App {
	return &App{config: c, logger: logger, deps: deps, opts: loopOptions(c)}
}

func loopOptions(c *config.Config) reconcile.Options {
	opts := reconcile.DefaultOptions()
	opts.MaxUpdates = c.MaxUpdates
	opts.RenewalPeriodDays = c.RenewalPeriodDays
	opts.RenewalTTLDays = c.RenewalTTLDays
	opts.Region = c.PhoneRegion
	opts.Location = c.Location()
	return opts
}

func newPassBuilder(c *config.Config) (*apple.Builder, error) {
	wwdr, err := os.ReadFile(c.WWDRPath())
	if err != nil {
		return nil, err
	}

	var signer *apple.Signer
	if c.AppleP12Path != "" {
		p12, err := os.ReadFile(c.AppleP12Path)
		if err != nil {
			return nil, err
		}
		signer, err = apple.NewSignerFromP12(p12, c.AppleKeyPassword, wwdr)
		if err != nil {
			return nil, err
		}
	} else {
		cert, err := os.ReadFile(c.CertPath())
		if err != nil {
			return nil, err
		}
		signer, err = apple.NewSignerFromPEM(cert, c.AppleKey, c.AppleKeyPassword, wwdr)
		if err != nil {
			return nil, err
		}
	}

	assets, err := apple.LoadAssets(c.ResourcesDir)
	if err != nil {
		return nil, err
	}

	ids := apple.Identifiers{
		TeamIdentifier:     c.AppleTeamID,
		PassTypeIdentifier: c.ApplePassTypeID,
		OrganizationName:   c.AppleOrganization,
	}
	return apple.NewBuilder(ids, assets, signer), nil
}

func newWalletLinker(c *config.Config) (*google.Linker, error) {
	raw, err := config.DecodeCredentials(c.GoogleWalletCredentials)
	if err != nil {
		return nil, err
	}
	sa, err := google.ParseServiceAccount(raw)
	if err != nil {
		return nil, err
	}
	return google.NewLinker(sa, c.GoogleWalletIssuerID, c.GoogleWalletClassSuffix, c.CardBaseURL)
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			app.logger.Warn(ctx, "signal received, stopping")
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run performs one reconciliation pass. A signal cancels the pass at the
// next pacing wait or API call.
func (app *App) Run(ctx context.Context) (reconcile.Report, error) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	app.initSignalHandler(ctx, cancelFunc)

	logger := app.logger.With("run_id", uuid.NewString())
	deps := app.deps
	deps.Logger = logger

	logger.Info(ctx, "starting pass", "max_updates", app.opts.MaxUpdates)
	report, err := reconcile.New(deps, app.opts).Run(ctx)
	if err != nil {
		logger.Error(ctx, "pass failed", "error", err)
		return report, err
	}
	logger.Info(ctx, "pass finished", report.LogArgs()...)
	return report, nil
}
