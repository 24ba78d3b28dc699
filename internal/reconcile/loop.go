// Package reconcile walks the membership spreadsheet once and brings the
// published cards and the notifications in line with it.
//
// For every row the loop publishes the card when the operator asked for an
// issue or an update, sends a renewal reminder when the membership is about
// to expire, and writes the outcome back to the row. Each sheet write counts
// as a mutation; writes are paced and a pass stops after a fixed number of
// mutations.
package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/clubcard/internal/cards"
	"github.com/dmitrijs2005/clubcard/internal/common"
	"github.com/dmitrijs2005/clubcard/internal/identity"
	"github.com/dmitrijs2005/clubcard/internal/logging"
	"github.com/dmitrijs2005/clubcard/internal/notify"
	"github.com/dmitrijs2005/clubcard/internal/sheets"
	"github.com/dmitrijs2005/clubcard/internal/timex"
)

const (
	DefaultMaxUpdates        = 25
	DefaultRenewalPeriodDays = 31
	DefaultRenewalTTLDays    = 15
	DefaultPacingInterval    = 5 * time.Second
)

// Publisher publishes the artifacts of a card.
type Publisher interface {
	Publish(ctx context.Context, card cards.Card, id identity.Identity) (cards.Published, error)
}

// Notifier delivers member notices. Delivery failures are its own concern.
type Notifier interface {
	NotifyIssued(ctx context.Context, n notify.IssueNotice)
	NotifyRenewal(ctx context.Context, n notify.RenewalNotice)
}

// Deps are the collaborators of a Loop.
type Deps struct {
	Sheet     sheets.Sheet
	Publisher Publisher
	Notifier  Notifier
	Pacer     Pacer
	Logger    logging.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

type Options struct {
	MaxUpdates        int
	RenewalPeriodDays int
	RenewalTTLDays    int
	// Region is the default region for phone numbers without a country code.
	Region   string
	Location *time.Location
	Columns  Columns
	Statuses Statuses
}

// DefaultOptions returns the production limits and the club sheet layout.
func DefaultOptions() Options {
	return Options{
		MaxUpdates:        DefaultMaxUpdates,
		RenewalPeriodDays: DefaultRenewalPeriodDays,
		RenewalTTLDays:    DefaultRenewalTTLDays,
		Region:            identity.DefaultRegion,
		Location:          time.Local,
		Columns:           DefaultColumns(),
		Statuses:          DefaultStatuses(),
	}
}

type Loop struct {
	deps Deps
	opts Options
}

func New(deps Deps, opts Options) *Loop {
	if deps.Logger == nil {
		deps.Logger = logging.Nop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Pacer == nil {
		deps.Pacer = NoPacer{}
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Region == "" {
		opts.Region = identity.DefaultRegion
	}
	return &Loop{deps: deps, opts: opts}
}

// Run performs one pass over the sheet. It returns an error only when the
// sheet cannot be loaded or ctx is done; row failures are recorded in the
// sheet and in the Report.
func (l *Loop) Run(ctx context.Context) (Report, error) {
	var report Report

	if err := l.deps.Sheet.Reload(ctx); err != nil {
		return report, fmt.Errorf("%w: %w", common.ErrSheetLoad, err)
	}

	records := l.deps.Sheet.Records()
	l.deps.Logger.Info(ctx, "loaded sheet", "rows", len(records))
	if len(records) > 0 {
		if missing := l.opts.Columns.Missing(records[0]); len(missing) > 0 {
			l.deps.Logger.Warn(ctx, "sheet is missing columns", "columns", missing)
		}
	}

	for _, rec := range records {
		if report.Mutations >= l.opts.MaxUpdates {
			report.CapReached = true
			l.deps.Logger.Info(ctx, "stopping, reached max document updates", "mutations", report.Mutations)
			break
		}

		res, err := l.processRow(ctx, rec)
		report.add(res)
		if err != nil {
			return report, err
		}
	}

	return report, nil
}

// processRow handles a single record. The returned error is non-nil only
// when pacing was interrupted by ctx.
func (l *Loop) processRow(ctx context.Context, rec sheets.Record) (RowResult, error) {
	res := RowResult{Index: rec.Index}
	logger := l.deps.Logger.With("row", rec.Row())

	m, ok := readMember(rec, l.opts.Columns, l.opts.Statuses, l.opts.Region, l.opts.Location)
	if !ok {
		res.Skipped = true
		logger.Debug(ctx, "skipping row, missing email or phone")
		return res, nil
	}
	logger = logger.With("member_id", m.Identity.MemberID)
	now := l.deps.Now().In(l.opts.Location)

	err := l.reconcile(ctx, logger, rec, m, now, &res)
	if err == nil || ctx.Err() != nil {
		return res, err
	}

	logger.Error(ctx, "failed processing row", "status", m.Status, "error", err)
	res.Err = &RowError{Index: rec.Index, Status: m.Status, Err: err}
	if werr := l.deps.Sheet.SetField(ctx, rec, l.opts.Columns.BotStatus, l.opts.Statuses.ErrorFor(m.Status)); werr != nil {
		logger.Error(ctx, "failed writing error status", "error", fmt.Errorf("%w: %w", common.ErrStatusWrite, werr))
	}
	res.Mutations++
	return res, l.pace(ctx)
}

func (l *Loop) reconcile(ctx context.Context, logger logging.Logger, rec sheets.Record, m Member, now time.Time, res *RowResult) error {
	st := l.opts.Statuses
	cols := l.opts.Columns
	revoked := m.Revoked(now)

	if st.Actionable(m.Status) {
		card := m.Card(now)
		published, err := l.deps.Publisher.Publish(ctx, card, m.Identity)
		if err != nil {
			return fmt.Errorf("%w: %w", common.ErrPublish, err)
		}
		res.Published = true
		if revoked {
			logger.Info(ctx, "revoked card")
		}

		if !revoked && m.Status != st.Update {
			l.deps.Notifier.NotifyIssued(ctx, notify.IssueNotice{
				Recipient:       m.recipient(),
				MemberCode:      m.MemberCode,
				CardURL:         published.CardURL,
				GoogleWalletURL: published.GoogleWalletURL,
				ValidMemberCode: card.HasValidMemberCode(),
			})
			res.Notified = true
		}

		if err := l.deps.Sheet.SetField(ctx, rec, cols.BotStatus, st.DoneFor(m.Status)); err != nil {
			return fmt.Errorf("%w: %w", common.ErrStatusWrite, err)
		}
		logger.Info(ctx, "issued card", "status", m.Status)
		res.Mutations++
		if err := l.pace(ctx); err != nil {
			return err
		}
	}

	if m.RenewalDue(now, l.opts.RenewalPeriodDays, l.opts.RenewalTTLDays) {
		days := m.DaysToExpiration(now)
		l.deps.Notifier.NotifyRenewal(ctx, notify.RenewalNotice{
			Recipient:       m.recipient(),
			MemberCode:      m.MemberCode,
			ValidMemberCode: m.Card(now).HasValidMemberCode(),
			Expiration:      m.Expiration,
			DaysLeft:        days,
		})
		if err := l.deps.Sheet.SetField(ctx, rec, cols.LastReminderDate, now.Format(timex.DateLayout)); err != nil {
			return fmt.Errorf("%w: %w", common.ErrStatusWrite, err)
		}
		logger.Info(ctx, "renewal notice sent", "days_left", days)
		res.Reminded = true
		res.Mutations++
		if err := l.pace(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (l *Loop) pace(ctx context.Context) error {
	if err := l.deps.Pacer.Wait(ctx); err != nil {
		return fmt.Errorf("pacing: %w", err)
	}
	return nil
}
