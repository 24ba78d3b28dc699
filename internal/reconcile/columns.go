package reconcile

import (
	"strings"

	"github.com/dmitrijs2005/clubcard/internal/sheets"
)

// Columns maps each member attribute to its spreadsheet header.
type Columns struct {
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	MembershipYear   string `json:"membership_year"`
	MemberCode       string `json:"member_code"`
	Role             string `json:"role"`
	HebrewName       string `json:"hebrew_name"`
	EnglishName      string `json:"english_name"`
	Tags             string `json:"tags"`
	Motorcycle       string `json:"motorcycle"`
	Expiration       string `json:"expiration"`
	LastReminderDate string `json:"last_reminder_date"`
	Couple           string `json:"couple"`
	Left             string `json:"left"`
	BotStatus        string `json:"bot_status"`
}

// DefaultColumns returns the headers of the club spreadsheet.
func DefaultColumns() Columns {
	return Columns{
		Email:            "כתובת אימייל",
		Phone:            "טלפון סלולרי",
		MembershipYear:   "חברות",
		MemberCode:       "קוד דוקאטי",
		Role:             "תפקיד",
		HebrewName:       "שם מלא בעברית",
		EnglishName:      "שם מלא באנגלית",
		Tags:             "אישור",
		Motorcycle:       "דגם אופנוע נוכחי",
		Expiration:       "תפוגה",
		LastReminderDate: "תאריך תזכורת חידוש אחרון",
		Couple:           "זוגי",
		Left:             "עזב",
		BotStatus:        "סטטוס בוט",
	}
}

// Missing returns the headers the loop cannot work without that rec lacks.
func (c Columns) Missing(rec sheets.Record) []string {
	var out []string
	for _, h := range []string{c.Email, c.Phone, c.BotStatus} {
		if !rec.Has(h) {
			out = append(out, h)
		}
	}
	return out
}

// Statuses are the bot status labels. An operator sets Issue or Update; the
// bot writes "<label> - <Done>" or "<label> - <Error>" back.
type Statuses struct {
	Issue      string `json:"issue"`
	Update     string `json:"update"`
	UpdateTypo string `json:"update_typo"`
	Done       string `json:"done"`
	Error      string `json:"error"`
}

func DefaultStatuses() Statuses {
	return Statuses{
		Issue:      "הנפקה",
		Update:     "עדכון",
		UpdateTypo: "עידכון",
		Done:       "בוצע",
		Error:      "שגיאה",
	}
}

// Canonical maps the common misspelling of Update to Update.
func (s Statuses) Canonical(status string) string {
	if status == s.UpdateTypo {
		return s.Update
	}
	return status
}

// Actionable reports whether status asks for artifacts to be published.
func (s Statuses) Actionable(status string) bool {
	return status == s.Issue || status == s.Update
}

func (s Statuses) DoneFor(status string) string {
	return status + " - " + s.Done
}

func (s Statuses) ErrorFor(status string) string {
	if status == "" {
		return s.Error
	}
	return status + " - " + s.Error
}

// Registration types written on the card.
const (
	RegistrationCouple = "זוגי"
	RegistrationSingle = "יחיד"
)

var leftMarkers = []string{"y", "rip"}

func hasLeft(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, m := range leftMarkers {
		if v == m {
			return true
		}
	}
	return false
}
