// Package storage writes card artifacts to object storage.
//
// Keys are a public contract with the card web page and must not change:
//
//	card/<member_id>.json
//	apple_card/<member_id>.pkpass
//	google_wallet_links/<member_id>.json
//	short/<short_id>.json
package storage

const (
	ContentTypeJSON   = "application/json"
	ContentTypePKPass = "application/vnd.apple.pkpass"
)

func CardKey(memberID string) string {
	return "card/" + memberID + ".json"
}

func AppleCardKey(memberID string) string {
	return "apple_card/" + memberID + ".pkpass"
}

func GoogleWalletLinkKey(memberID string) string {
	return "google_wallet_links/" + memberID + ".json"
}

func ShortKey(shortID string) string {
	return "short/" + shortID + ".json"
}
