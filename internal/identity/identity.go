package identity

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// ShortIDLength is the number of leading hex characters of MemberID kept in
// ShortID.
const ShortIDLength = 10

// Identity is the stable identity of a member. MemberID and ShortID depend
// only on the normalized email and phone.
type Identity struct {
	Email    string
	Phone    string
	MemberID string
	ShortID  string
}

// Derive computes the identity for an already normalized email and phone.
// MemberID is the hex SHA-1 of "<email>:<phone>".
func Derive(email, phone string) Identity {
	sum := sha1.Sum([]byte(email + ":" + phone))
	id := hex.EncodeToString(sum[:])
	return Identity{
		Email:    email,
		Phone:    phone,
		MemberID: id,
		ShortID:  id[:ShortIDLength],
	}
}

// FromRaw normalizes raw contact data and derives the identity from it.
func FromRaw(rawEmail, rawPhone, defaultRegion string) Identity {
	return Derive(NormalizeEmail(rawEmail), NormalizePhone(rawPhone, defaultRegion))
}

// ShortURL is the public card link, resolved client side through
// short/<short_id>.json.
func (i Identity) ShortURL(base string) string {
	return strings.TrimRight(base, "/") + "/#/" + i.ShortID
}
