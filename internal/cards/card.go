// Package cards publishes the artifacts of a membership card: the JSON card
// read by the card web page, the Apple Wallet pass, the optional Google
// Wallet save link and the short-URL pointer.
package cards

import (
	"regexp"
)

// Card is the public JSON document of a member. Its keys are read by the
// card web page and must stay stable.
type Card struct {
	HebrewFullName       string   `json:"hebrew_full_name"`
	EnglishFullName      string   `json:"english_full_name"`
	MembershipYear       string   `json:"membership_year"`
	MembershipExpiration string   `json:"membership_expiration"`
	MemberCode           string   `json:"ducati_member_code"`
	Role                 string   `json:"role"`
	Tags                 []string `json:"tags"`
	MotorcycleModel      string   `json:"motorcycle_model"`
	RegistrationType     string   `json:"registration_type"`
	Revoked              bool     `json:"revoked,omitempty"`
}

var memberCodeRe = regexp.MustCompile(`^\d+$`)

// HasValidMemberCode reports whether the member registered with the
// manufacturer and got a numeric code.
func (c Card) HasValidMemberCode() bool {
	return memberCodeRe.MatchString(c.MemberCode)
}

// ShortPointer is the document stored under short/<short_id>.json.
type ShortPointer struct {
	ID string `json:"id"`
}

// WalletLink is the document stored under google_wallet_links/<member_id>.json.
type WalletLink struct {
	ID      string `json:"id"`
	SaveURL string `json:"save_url"`
}
