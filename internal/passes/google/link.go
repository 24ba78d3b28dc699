package google

import (
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/clubcard/internal/cards"
	"github.com/dmitrijs2005/clubcard/internal/identity"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/api/walletobjects/v1"
)

const (
	SaveURLPrefix = "https://pay.google.com/gp/v/save/"

	audience = "google"
	jwtType  = "savetowallet"
)

var ErrIncompleteServiceAccount = errors.New("service account credentials lack client_email or private_key")

// ServiceAccount holds the fields of a service account key file used to sign
// save links.
type ServiceAccount struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// ParseServiceAccount decodes a service account key file.
func ParseServiceAccount(credentialsJSON []byte) (ServiceAccount, error) {
	var sa ServiceAccount
	if err := json.Unmarshal(credentialsJSON, &sa); err != nil {
		return sa, fmt.Errorf("decode service account: %w", err)
	}
	if sa.ClientEmail == "" || sa.PrivateKey == "" {
		return sa, ErrIncompleteServiceAccount
	}
	return sa, nil
}

// Linker signs "save to wallet" links. It implements cards.WalletLinker.
type Linker struct {
	issuerID    string
	classSuffix string
	cardBaseURL string
	email       string
	key         *rsa.PrivateKey
}

func NewLinker(sa ServiceAccount, issuerID, classSuffix, cardBaseURL string) (*Linker, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(sa.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("parse service account key: %w", err)
	}
	return &Linker{
		issuerID:    issuerID,
		classSuffix: classSuffix,
		cardBaseURL: cardBaseURL,
		email:       sa.ClientEmail,
		key:         key,
	}, nil
}

// SaveURL returns a link that adds the member's object to Google Wallet.
// The object travels inside the token, so nothing is created upfront. No iat
// claim is set and RS256 is deterministic, so the same card yields the same
// link.
func (l *Linker) SaveURL(card cards.Card, id identity.Identity) (string, error) {
	obj := NewObject(l.issuerID, l.classSuffix, id.ShortURL(l.cardBaseURL), card, id)

	claims := jwt.MapClaims{
		"iss":     l.email,
		"aud":     audience,
		"typ":     jwtType,
		"origins": []string{},
		"payload": map[string][]*walletobjects.GenericObject{
			"genericObjects": {obj},
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(l.key)
	if err != nil {
		return "", fmt.Errorf("sign save link: %w", err)
	}
	return SaveURLPrefix + token, nil
}
