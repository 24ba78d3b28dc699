package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/clubcard/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	to, subject, text, html string
}

type fakeEmail struct {
	sent []sentEmail
	err  error
}

func (f *fakeEmail) SendEmail(_ context.Context, to, subject, text, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentEmail{to, subject, text, html})
	return nil
}

type fakeSMS struct {
	phones []string
	texts  []string
	err    error
}

func (f *fakeSMS) SendSMS(_ context.Context, phone, text string) error {
	if f.err != nil {
		return f.err
	}
	f.phones = append(f.phones, phone)
	f.texts = append(f.texts, text)
	return nil
}

var recipient = Recipient{Email: "m@example.com", Phone: "+972505600011", HebrewFullName: "ישראל ישראלי"}

func TestIssueMessage(t *testing.T) {
	d := NewDispatcher(nil, nil, Options{}, nil)

	email, sms := d.IssueMessage(IssueNotice{
		Recipient:       recipient,
		CardURL:         "https://card.docil.co.il/#/abc",
		GoogleWalletURL: "https://pay.google.com/gp/v/save/tok",
		ValidMemberCode: true,
	})

	for _, body := range []string{email, sms} {
		assert.Contains(t, body, "היי ישראל ישראלי,")
		assert.Contains(t, body, "https://card.docil.co.il/#/abc")
		assert.Contains(t, body, "https://pay.google.com/gp/v/save/tok")
		assert.NotContains(t, body, "{{")
		assert.NotContains(t, body, "https://www.docil.co.il/newreg")
	}
}

func TestIssueMessage_NoWalletLinkAndMissingCode(t *testing.T) {
	d := NewDispatcher(nil, nil, Options{}, nil)

	email, sms := d.IssueMessage(IssueNotice{
		Recipient: recipient,
		CardURL:   "https://card.docil.co.il/#/abc",
	})

	for _, body := range []string{email, sms} {
		assert.NotContains(t, body, "Google Wallet")
		assert.NotContains(t, body, "{{")
		assert.True(t, strings.HasSuffix(body, "\n"+DefaultTemplates().MissingMemberCode))
	}
}

func TestExpirationText(t *testing.T) {
	exp := time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05/11/2026 (בעוד 17 ימים)", ExpirationText(exp, 17))
}

func TestRenewalMessage(t *testing.T) {
	d := NewDispatcher(nil, nil, Options{ContactPhone: "972501234567"}, nil)
	exp := time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC)

	email, sms := d.RenewalMessage(RenewalNotice{
		Recipient:       recipient,
		MemberCode:      "4242",
		ValidMemberCode: true,
		Expiration:      exp,
		DaysLeft:        17,
	})
	for _, body := range []string{email, sms} {
		assert.Contains(t, body, "05/11/2026 (בעוד 17 ימים)")
		assert.Contains(t, body, "מספר החבר שלך במועדון: 4242.")
		assert.Contains(t, body, "https://wa.me/972501234567")
		assert.NotContains(t, body, "{{")
	}
	assert.Contains(t, email, "preview.png")
	assert.NotContains(t, sms, "preview.png")

	email, sms = d.RenewalMessage(RenewalNotice{
		Recipient:  recipient,
		MemberCode: "pending",
		Expiration: exp,
		DaysLeft:   17,
	})
	for _, body := range []string{email, sms} {
		assert.NotContains(t, body, "pending")
		assert.Contains(t, body, "שמנו לב שעדיין לא סיפקת מספר חבר")
		assert.NotContains(t, body, "{{")
	}
}

func TestDispatcher_SMSDisabledByDefault(t *testing.T) {
	email, sms := &fakeEmail{}, &fakeSMS{}
	d := NewDispatcher(email, sms, Options{}, nil)

	d.NotifyIssued(context.Background(), IssueNotice{Recipient: recipient, CardURL: "u", ValidMemberCode: true})

	assert.Empty(t, sms.texts)
	require.Len(t, email.sent, 1)
	got := email.sent[0]
	assert.Equal(t, "m@example.com", got.to)
	assert.Equal(t, SubjectIssue, got.subject)
	assert.Equal(t, HTMLBody(got.text), got.html)
}

func TestDispatcher_SendsSMSWhenEnabled(t *testing.T) {
	email, sms := &fakeEmail{}, &fakeSMS{}
	d := NewDispatcher(email, sms, Options{SMSEnabled: true}, nil)

	d.NotifyRenewal(context.Background(), RenewalNotice{Recipient: recipient, MemberCode: "1", ValidMemberCode: true})

	assert.Equal(t, []string{"+972505600011"}, sms.phones)
	require.Len(t, email.sent, 1)
	assert.Equal(t, SubjectRenewal, email.sent[0].subject)
}

func TestDispatcher_NoSMSWithoutPhone(t *testing.T) {
	email, sms := &fakeEmail{}, &fakeSMS{}
	d := NewDispatcher(email, sms, Options{SMSEnabled: true}, nil)
	to := recipient
	to.Phone = ""

	d.NotifyIssued(context.Background(), IssueNotice{Recipient: to, CardURL: "u", ValidMemberCode: true})

	assert.Empty(t, sms.phones)
	require.Len(t, email.sent, 1)
}

func TestDispatcher_DeliveryFailuresAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, logging.Options{Level: "debug"})
	require.NoError(t, err)

	email := &fakeEmail{err: errors.New("throttled")}
	sms := &fakeSMS{err: errors.New("opted out")}
	d := NewDispatcher(email, sms, Options{SMSEnabled: true}, logger)

	d.NotifyIssued(context.Background(), IssueNotice{Recipient: recipient})

	out := buf.String()
	assert.Contains(t, out, "could not send sms")
	assert.Contains(t, out, "opted out")
	assert.Contains(t, out, "could not send email")
	assert.Contains(t, out, "throttled")
}
