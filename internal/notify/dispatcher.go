package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/clubcard/internal/logging"
)

// Recipient identifies who a notice goes to.
type Recipient struct {
	Email          string
	Phone          string
	HebrewFullName string
}

// IssueNotice announces a freshly issued card.
type IssueNotice struct {
	Recipient
	MemberCode      string
	CardURL         string
	GoogleWalletURL string
	ValidMemberCode bool
}

// RenewalNotice asks a member to renew before Expiration.
type RenewalNotice struct {
	Recipient
	MemberCode      string
	ValidMemberCode bool
	Expiration      time.Time
	DaysLeft        int
}

type Options struct {
	ContactPhone string
	// SMSEnabled turns on SMS delivery. Email is always sent.
	SMSEnabled bool
	Templates  Templates
}

// Dispatcher renders notices and hands them to the senders. Delivery errors
// are logged and never returned: a failed notice must not fail the row.
type Dispatcher struct {
	email  EmailSender
	sms    SMSSender
	opts   Options
	logger logging.Logger
}

// NewDispatcher builds a Dispatcher. sms may be nil when SMS is disabled.
func NewDispatcher(email EmailSender, sms SMSSender, opts Options, logger logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Nop()
	}
	if opts.Templates == (Templates{}) {
		opts.Templates = DefaultTemplates()
	}
	return &Dispatcher{email: email, sms: sms, opts: opts, logger: logger}
}

// IssueMessage renders the email and SMS bodies of n.
func (d *Dispatcher) IssueMessage(n IssueNotice) (email, sms string) {
	subs := map[string]string{
		KeyHebrewFullName: n.HebrewFullName,
		KeyCardURL:        n.CardURL,
		KeyWalletLink:     n.GoogleWalletURL,
	}
	render := func(tmpl string) string {
		if n.GoogleWalletURL == "" {
			tmpl = StripLine(tmpl, KeyWalletLink)
		}
		out := Render(tmpl, subs)
		if !n.ValidMemberCode {
			out += "\n" + d.opts.Templates.MissingMemberCode
		}
		return out
	}
	return render(d.opts.Templates.EmailIssue), render(d.opts.Templates.SMSIssue)
}

// ExpirationText formats an expiration as "DD/MM/YYYY (בעוד N ימים)".
func ExpirationText(exp time.Time, daysLeft int) string {
	return fmt.Sprintf("%s (בעוד %d ימים)", exp.Format("02/01/2006"), daysLeft)
}

// RenewalMessage renders the email and SMS bodies of n.
func (d *Dispatcher) RenewalMessage(n RenewalNotice) (email, sms string) {
	subs := map[string]string{
		KeyHebrewFullName: n.HebrewFullName,
		KeyExpiration:     ExpirationText(n.Expiration, n.DaysLeft),
		KeyContactPhone:   d.opts.ContactPhone,
	}
	t := d.opts.Templates
	if !n.ValidMemberCode {
		return Render(t.EmailRenewalNoCode, subs), Render(t.SMSRenewalNoCode, subs)
	}
	subs[KeyMemberCode] = n.MemberCode
	return Render(t.EmailRenewal, subs), Render(t.SMSRenewal, subs)
}

func (d *Dispatcher) NotifyIssued(ctx context.Context, n IssueNotice) {
	email, sms := d.IssueMessage(n)
	d.deliver(ctx, "issue", n.Recipient, SubjectIssue, email, sms)
}

func (d *Dispatcher) NotifyRenewal(ctx context.Context, n RenewalNotice) {
	email, sms := d.RenewalMessage(n)
	d.deliver(ctx, "renewal", n.Recipient, SubjectRenewal, email, sms)
}

func (d *Dispatcher) deliver(ctx context.Context, kind string, to Recipient, subject, email, sms string) {
	if d.opts.SMSEnabled && d.sms != nil && to.Phone != "" {
		if err := d.sms.SendSMS(ctx, to.Phone, sms); err != nil {
			d.logger.Error(ctx, "could not send sms", "kind", kind, "error", err)
		}
	}

	if d.email == nil {
		return
	}
	if err := d.email.SendEmail(ctx, to.Email, subject, email, HTMLBody(email)); err != nil {
		d.logger.Error(ctx, "could not send email", "kind", kind, "error", err)
		return
	}
	d.logger.Debug(ctx, "sent notice", "kind", kind)
}
