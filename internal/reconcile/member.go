package reconcile

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/clubcard/internal/cards"
	"github.com/dmitrijs2005/clubcard/internal/identity"
	"github.com/dmitrijs2005/clubcard/internal/notify"
	"github.com/dmitrijs2005/clubcard/internal/sheets"
	"github.com/dmitrijs2005/clubcard/internal/timex"
)

// SentinelDate stands in for a missing or malformed date. It is far enough
// in the past to make a member expired and a reminder overdue.
var SentinelDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Member is a spreadsheet row read into typed fields.
type Member struct {
	Identity         identity.Identity
	HebrewFullName   string
	EnglishFullName  string
	MembershipYear   string
	MemberCode       string
	Role             string
	Tags             []string
	MotorcycleModel  string
	RegistrationType string
	Expiration       time.Time
	LastReminder     time.Time
	Left             bool
	Status           string
}

func sentinelIn(loc *time.Location) time.Time {
	return time.Date(SentinelDate.Year(), SentinelDate.Month(), SentinelDate.Day(), 0, 0, 0, 0, loc)
}

// readMember reads rec. ok is false when the email or phone cell is empty
// and the row must be skipped.
func readMember(rec sheets.Record, cols Columns, statuses Statuses, region string, loc *time.Location) (m Member, ok bool) {
	rawEmail, rawPhone := rec.Get(cols.Email), rec.Get(cols.Phone)
	if rawEmail == "" || rawPhone == "" {
		return m, false
	}
	// An unparsable phone leaves id.Phone empty; the row is still processed.
	id := identity.FromRaw(rawEmail, rawPhone, region)

	sentinel := sentinelIn(loc)
	expiration, _ := timex.ParseDate(rec.Get(cols.Expiration), loc, sentinel)
	lastReminder, _ := timex.ParseDate(rec.Get(cols.LastReminderDate), loc, sentinel)

	registration := RegistrationSingle
	if strings.EqualFold(rec.Get(cols.Couple), "y") {
		registration = RegistrationCouple
	}

	return Member{
		Identity:         id,
		HebrewFullName:   rec.Get(cols.HebrewName),
		EnglishFullName:  rec.Get(cols.EnglishName),
		MembershipYear:   rec.Get(cols.MembershipYear),
		MemberCode:       rec.Get(cols.MemberCode),
		Role:             rec.Get(cols.Role),
		Tags:             strings.Split(rec.Get(cols.Tags), ","),
		MotorcycleModel:  rec.Get(cols.Motorcycle),
		RegistrationType: registration,
		Expiration:       expiration,
		LastReminder:     lastReminder,
		Left:             hasLeft(rec.Get(cols.Left)),
		Status:           statuses.Canonical(rec.Get(cols.BotStatus)),
	}, true
}

// Revoked reports whether the member left or the membership expired.
func (m Member) Revoked(now time.Time) bool {
	return m.Left || now.After(m.Expiration)
}

// Card is the public card of m as of now.
func (m Member) Card(now time.Time) cards.Card {
	return cards.Card{
		HebrewFullName:       m.HebrewFullName,
		EnglishFullName:      m.EnglishFullName,
		MembershipYear:       m.MembershipYear,
		MembershipExpiration: m.Expiration.Format(timex.DateLayout),
		MemberCode:           m.MemberCode,
		Role:                 m.Role,
		Tags:                 m.Tags,
		MotorcycleModel:      m.MotorcycleModel,
		RegistrationType:     m.RegistrationType,
		Revoked:              m.Revoked(now),
	}
}

// DaysToExpiration is the number of whole days left, negative once expired.
func (m Member) DaysToExpiration(now time.Time) int {
	return timex.DaysBetween(now, m.Expiration)
}

// RenewalDue reports whether m is inside the renewal window and was not
// reminded within the last ttlDays.
func (m Member) RenewalDue(now time.Time, periodDays, ttlDays int) bool {
	if m.Revoked(now) {
		return false
	}
	days := m.DaysToExpiration(now)
	if days < 0 || days > periodDays {
		return false
	}
	return timex.DaysBetween(m.LastReminder, now) >= ttlDays
}

func (m Member) recipient() notify.Recipient {
	return notify.Recipient{
		Email:          m.Identity.Email,
		Phone:          m.Identity.Phone,
		HebrewFullName: m.HebrewFullName,
	}
}
