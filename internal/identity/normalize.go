// Package identity canonicalizes member contact data and derives the
// deterministic member identifiers used as object-storage keys.
package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/clubcard/internal/logging"
	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is the region assumed for numbers written without a
// country code.
const DefaultRegion = "IL"

var logger logging.Logger = logging.Nop()

// SetLogger sets the logger used to report unparsable phone numbers.
func SetLogger(l logging.Logger) {
	if l != nil {
		logger = l
	}
}

// NormalizePhone returns raw as "+<country code><national number>".
// Unparsable input yields "" and is logged; it never fails the caller.
func NormalizePhone(raw string, defaultRegion string) string {
	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		logger.Warn(context.Background(), "failed normalizing phone number", "phone", raw, "error", err)
		return ""
	}
	return fmt.Sprintf("+%d%d", num.GetCountryCode(), num.GetNationalNumber())
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
