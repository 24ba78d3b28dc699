// Package apple builds signed Apple Wallet membership passes (.pkpass).
//
// A pass is a zip archive holding pass.json, the image and localization
// assets, manifest.json (SHA-1 of every other file) and signature, a
// detached PKCS#7 signature of the manifest made with the pass type
// certificate and chained to Apple's WWDR intermediate.
package apple

import (
	"fmt"

	"github.com/dmitrijs2005/clubcard/internal/cards"
	"github.com/dmitrijs2005/clubcard/internal/identity"
)

// Field is one label/value pair on the pass.
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// Structure groups the fields of a generic pass.
type Structure struct {
	HeaderFields    []Field `json:"headerFields,omitempty"`
	PrimaryFields   []Field `json:"primaryFields,omitempty"`
	SecondaryFields []Field `json:"secondaryFields,omitempty"`
	AuxiliaryFields []Field `json:"auxiliaryFields,omitempty"`
	BackFields      []Field `json:"backFields,omitempty"`
}

// Pass is the pass.json document.
type Pass struct {
	FormatVersion      int        `json:"formatVersion"`
	PassTypeIdentifier string     `json:"passTypeIdentifier"`
	SerialNumber       string     `json:"serialNumber"`
	TeamIdentifier     string     `json:"teamIdentifier"`
	OrganizationName   string     `json:"organizationName"`
	Description        string     `json:"description"`
	LogoText           string     `json:"logoText,omitempty"`
	BackgroundColor    string     `json:"backgroundColor,omitempty"`
	ForegroundColor    string     `json:"foregroundColor,omitempty"`
	LabelColor         string     `json:"labelColor,omitempty"`
	Generic            *Structure `json:"generic"`
}

// Identifiers name the issuer of the pass.
type Identifiers struct {
	TeamIdentifier     string
	PassTypeIdentifier string
	OrganizationName   string
}

const (
	backgroundColor = "rgb(204,0,0)"
	foregroundColor = "rgb(255,255,255)"
	labelColor      = "rgb(255,255,255)"
	logoText        = "DOC_Israel_Card"
)

// NewPass lays out card on a generic pass. Labels are localization keys
// resolved through the en.lproj and he.lproj pass.strings assets.
func NewPass(ids Identifiers, card cards.Card, id identity.Identity) Pass {
	note := fmt.Sprintf("Membership valid until %s", card.MembershipExpiration)
	if card.Revoked {
		note = "Membership expired - חברות לא בתוקף"
	}

	return Pass{
		FormatVersion:      1,
		PassTypeIdentifier: ids.PassTypeIdentifier,
		SerialNumber:       id.MemberID,
		TeamIdentifier:     ids.TeamIdentifier,
		OrganizationName:   ids.OrganizationName,
		Description:        ids.OrganizationName,
		LogoText:           logoText,
		BackgroundColor:    backgroundColor,
		ForegroundColor:    foregroundColor,
		LabelColor:         labelColor,
		Generic: &Structure{
			HeaderFields: []Field{
				{Key: "year", Value: card.MembershipYear, Label: "year"},
			},
			PrimaryFields: []Field{
				{Key: "code", Value: card.MemberCode, Label: "ducati_code"},
			},
			SecondaryFields: []Field{
				{Key: "Name", Value: card.EnglishFullName, Label: "Name"},
				{Key: "local_name", Value: card.HebrewFullName, Label: "שם"},
			},
			AuxiliaryFields: []Field{
				{Key: "type", Value: card.RegistrationType, Label: "membership_type"},
				{Key: "bike", Value: card.MotorcycleModel, Label: "bike"},
			},
			BackFields: []Field{
				{Key: "note", Value: note},
			},
		},
	}
}
