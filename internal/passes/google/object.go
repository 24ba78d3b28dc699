// Package google builds Google Wallet generic passes for members: the
// GenericObject describing a card, the signed "save to wallet" link that
// embeds it, and the GenericClass shared by every card.
package google

import (
	"github.com/dmitrijs2005/clubcard/internal/cards"
	"github.com/dmitrijs2005/clubcard/internal/identity"
	"google.golang.org/api/walletobjects/v1"
)

const (
	StateActive  = "ACTIVE"
	StateExpired = "EXPIRED"

	hexBackgroundColor = "#cc0000"
)

// Text module ids. The class template refers to them through
// object.textModulesData['<id>'].
const (
	ModuleEnglishName = "english_full_name"
	ModuleMemberCode  = "ducati_member_code"
	ModuleExpiration  = "membership_expiration"
	ModuleMotorcycle  = "motorcycle_model"
	ModuleYear        = "membership_year"
)

// ObjectID is the wallet object id of a member.
func ObjectID(issuerID, memberID string) string {
	return issuerID + "." + memberID
}

// ClassID is the id of the shared pass class.
func ClassID(issuerID, classSuffix string) string {
	return issuerID + "." + classSuffix
}

func localized(value string) *walletobjects.LocalizedString {
	return &walletobjects.LocalizedString{
		DefaultValue: &walletobjects.TranslatedString{Language: "en-US", Value: value},
	}
}

// NewObject lays out card as a GenericObject of class
// <issuerID>.<classSuffix>.
func NewObject(issuerID, classSuffix, cardURL string, card cards.Card, id identity.Identity) *walletobjects.GenericObject {
	state := StateActive
	if card.Revoked {
		state = StateExpired
	}

	obj := &walletobjects.GenericObject{
		Id:                 ObjectID(issuerID, id.MemberID),
		ClassId:            ClassID(issuerID, classSuffix),
		State:              state,
		CardTitle:          localized("DOC Israel"),
		Header:             localized(card.EnglishFullName),
		Subheader:          localized(card.HebrewFullName),
		HexBackgroundColor: hexBackgroundColor,
		TextModulesData: []*walletobjects.TextModuleData{
			{Id: ModuleEnglishName, Header: "Name", Body: card.EnglishFullName},
			{Id: ModuleMemberCode, Header: "Ducati code", Body: card.MemberCode},
			{Id: ModuleExpiration, Header: "Valid until", Body: card.MembershipExpiration},
			{Id: ModuleMotorcycle, Header: "Bike", Body: card.MotorcycleModel},
			{Id: ModuleYear, Header: "Year", Body: card.MembershipYear},
		},
	}
	if cardURL != "" {
		obj.Barcode = &walletobjects.Barcode{Type: "QR_CODE", Value: cardURL}
	}
	return obj
}
