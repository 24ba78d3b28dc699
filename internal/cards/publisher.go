package cards

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/clubcard/internal/identity"
	"github.com/dmitrijs2005/clubcard/internal/logging"
	"github.com/dmitrijs2005/clubcard/internal/storage"
)

// PassBuilder renders a signed Apple Wallet pass.
type PassBuilder interface {
	Build(card Card, id identity.Identity) ([]byte, error)
}

// WalletLinker produces a Google Wallet "save" URL.
type WalletLinker interface {
	SaveURL(card Card, id identity.Identity) (string, error)
}

// Published describes what a Publish call made available.
type Published struct {
	CardURL         string
	GoogleWalletURL string
}

type Publisher struct {
	store       storage.ObjectStore
	apple       PassBuilder
	google      WalletLinker
	cardBaseURL string
	logger      logging.Logger
}

// NewPublisher builds a Publisher. google may be nil, in which case no
// Google Wallet link is produced.
func NewPublisher(store storage.ObjectStore, apple PassBuilder, google WalletLinker, cardBaseURL string, logger logging.Logger) *Publisher {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Publisher{
		store:       store,
		apple:       apple,
		google:      google,
		cardBaseURL: cardBaseURL,
		logger:      logger,
	}
}

// Publish writes every artifact of card. Keys depend only on id, so
// publishing again overwrites the previous artifacts.
func (p *Publisher) Publish(ctx context.Context, card Card, id identity.Identity) (Published, error) {
	var out Published

	cardJSON, err := json.Marshal(card)
	if err != nil {
		return out, fmt.Errorf("marshal card: %w", err)
	}
	if err := p.store.Put(ctx, storage.CardKey(id.MemberID), cardJSON, storage.ContentTypeJSON); err != nil {
		return out, err
	}

	pass, err := p.apple.Build(card, id)
	if err != nil {
		return out, fmt.Errorf("build apple pass: %w", err)
	}
	if err := p.store.Put(ctx, storage.AppleCardKey(id.MemberID), pass, storage.ContentTypePKPass); err != nil {
		return out, err
	}

	if p.google != nil {
		url, err := p.google.SaveURL(card, id)
		if err != nil {
			return out, fmt.Errorf("build google wallet link: %w", err)
		}
		link, err := json.Marshal(WalletLink{ID: id.MemberID, SaveURL: url})
		if err != nil {
			return out, fmt.Errorf("marshal wallet link: %w", err)
		}
		if err := p.store.Put(ctx, storage.GoogleWalletLinkKey(id.MemberID), link, storage.ContentTypeJSON); err != nil {
			return out, err
		}
		out.GoogleWalletURL = url
	}

	short, err := json.Marshal(ShortPointer{ID: id.MemberID})
	if err != nil {
		return out, fmt.Errorf("marshal short pointer: %w", err)
	}
	if err := p.store.Put(ctx, storage.ShortKey(id.ShortID), short, storage.ContentTypeJSON); err != nil {
		return out, err
	}

	out.CardURL = id.ShortURL(p.cardBaseURL)
	p.logger.Debug(ctx, "published card", "member_id", id.MemberID, "short_id", id.ShortID, "revoked", card.Revoked)
	return out, nil
}
