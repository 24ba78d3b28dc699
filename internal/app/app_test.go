package app

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/clubcard/internal/cards"
	"github.com/dmitrijs2005/clubcard/internal/config"
	"github.com/dmitrijs2005/clubcard/internal/identity"
	"github.com/dmitrijs2005/clubcard/internal/notify"
	"github.com/dmitrijs2005/clubcard/internal/reconcile"
	"github.com/dmitrijs2005/clubcard/internal/sheets"
	"github.com/dmitrijs2005/clubcard/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBuilder struct{}

func (stubBuilder) Build(cards.Card, identity.Identity) ([]byte, error) { return []byte("pass"), nil }

type nopNotifier struct{ issued int }

func (n *nopNotifier) NotifyIssued(context.Context, notify.IssueNotice)   { n.issued++ }
func (n *nopNotifier) NotifyRenewal(context.Context, notify.RenewalNotice) {}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.TimeZone = "UTC"
	c.LogLevel = "debug"
	return c
}

func TestApp_RunLogsReportWithRunID(t *testing.T) {
	c := testConfig()
	var buf bytes.Buffer
	logger, err := NewLogger(c, &buf)
	require.NoError(t, err)

	cols := reconcile.DefaultColumns()
	sheet := sheets.NewMemory(
		[]string{cols.Email, cols.Phone, cols.Expiration, cols.BotStatus},
		[]string{"a@example.com", "0505600011", "2030-01-01", "הנפקה"},
	)
	store := storage.NewMemory()
	notifier := &nopNotifier{}

	a := NewAppWithDeps(c, logger, reconcile.Deps{
		Sheet:     sheet,
		Publisher: cards.NewPublisher(store, stubBuilder{}, nil, c.CardBaseURL, logger),
		Notifier:  notifier,
		Pacer:     reconcile.NoPacer{},
		Now:       func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) },
	})

	report, err := a.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Published)
	assert.Equal(t, 1, notifier.issued)
	assert.Equal(t, "הנפקה - בוצע", sheet.Value(0, cols.BotStatus))
	assert.Len(t, store.Puts, 3)

	out := buf.String()
	assert.Contains(t, out, `"run_id"`)
	assert.Contains(t, out, "pass finished")
}

type failingSheet struct{ sheets.Sheet }

func (failingSheet) Reload(context.Context) error { return errors.New("quota exceeded") }

func TestApp_RunReturnsLoadError(t *testing.T) {
	c := testConfig()
	var buf bytes.Buffer
	logger, err := NewLogger(c, &buf)
	require.NoError(t, err)

	a := NewAppWithDeps(c, logger, reconcile.Deps{Sheet: failingSheet{}})

	_, err = a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, buf.String(), "pass failed")
}

func TestLoopOptions(t *testing.T) {
	c := testConfig()
	c.MaxUpdates = 3
	c.PhoneRegion = "US"

	opts := loopOptions(c)

	assert.Equal(t, 3, opts.MaxUpdates)
	assert.Equal(t, "US", opts.Region)
	assert.Equal(t, 31, opts.RenewalPeriodDays)
	assert.Equal(t, time.UTC, opts.Location)
	assert.Equal(t, reconcile.DefaultColumns(), opts.Columns)
}

func TestNewPassBuilder_MissingResources(t *testing.T) {
	c := testConfig()
	c.ResourcesDir = t.TempDir()

	_, err := newPassBuilder(c)
	require.Error(t, err)
}

func TestPromptKeyPassword(t *testing.T) {
	origRead, origTerm := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = origRead, origTerm })
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }

	var out bytes.Buffer

	isTerminal = func(int) bool { return true }
	pw := ""
	require.NoError(t, PromptKeyPassword("key", &pw, &out))
	assert.Equal(t, "s3cret", pw)
	assert.Contains(t, out.String(), "password")

	pw = "given"
	require.NoError(t, PromptKeyPassword("key", &pw, &out))
	assert.Equal(t, "given", pw)

	isTerminal = func(int) bool { return false }
	pw = ""
	require.NoError(t, PromptKeyPassword("key", &pw, &out))
	assert.Empty(t, pw)

	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return nil, errors.New("eof") }
	require.Error(t, PromptKeyPassword("key", &pw, &out))
}
