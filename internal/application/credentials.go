package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/slack-tui/internal/domain"
	"github.com/bnema/slack-tui/internal/ports"
)

// Where a resolved token came from.
const (
	TokenFromSettings = "settings"
	TokenFromStore    = "store"
)

type ResolvedToken struct {
	Token  domain.Token
	Source string
}

// Credentials owns the stored workspace token.
type Credentials struct {
	store ports.SecretStore
}

func NewCredentials(store ports.SecretStore) *Credentials {
	return &Credentials{store: store}
}

// Resolve picks configured (flag, environment or settings file, already
// merged by the caller) over the stored token. App-level tokens are rejected
// because they cannot call the Web API.
func (c *Credentials) Resolve(ctx context.Context, configured string) (ResolvedToken, error) {
	if strings.TrimSpace(configured) != "" {
		token, err := parseWebToken(configured)
		if err != nil {
			return ResolvedToken{}, err
		}
		return ResolvedToken{Token: token, Source: TokenFromSettings}, nil
	}

	token, err := c.Stored(ctx)
	if err != nil {
		return ResolvedToken{}, err
	}
	if !token.Kind.SupportsWebAPI() {
		return ResolvedToken{}, unsupportedToken(token.Kind)
	}

	return ResolvedToken{Token: token, Source: TokenFromStore}, nil
}

// Stored returns the persisted token, or domain.ErrTokenMissing.
func (c *Credentials) Stored(ctx context.Context) (domain.Token, error) {
	raw, err := c.store.Get(ctx, ports.TokenSecretKey)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return domain.Token{}, domain.ErrTokenMissing
		}
		return domain.Token{}, fmt.Errorf("read stored token: %w", err)
	}

	token, err := domain.ParseToken(raw)
	if err != nil {
		return domain.Token{}, err
	}
	return token, nil
}

func (c *Credentials) Save(ctx context.Context, raw string) (domain.Token, error) {
	token, err := parseWebToken(raw)
	if err != nil {
		return domain.Token{}, err
	}

	if err := c.store.Put(ctx, ports.TokenSecretKey, token.Value); err != nil {
		return domain.Token{}, fmt.Errorf("store token: %w", err)
	}
	if err := c.store.Put(ctx, ports.TokenTypeSecretKey, string(token.Kind)); err != nil {
		return domain.Token{}, fmt.Errorf("store token type: %w", err)
	}

	return token, nil
}

// Clear removes the stored token. Clearing an empty store succeeds.
func (c *Credentials) Clear(ctx context.Context) error {
	for _, key := range []string{ports.TokenSecretKey, ports.TokenTypeSecretKey} {
		if err := c.store.Delete(ctx, key); err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return nil
}

func parseWebToken(raw string) (domain.Token, error) {
	token, err := domain.ParseToken(raw)
	if err != nil {
		return domain.Token{}, err
	}
	if !token.Kind.SupportsWebAPI() {
		return domain.Token{}, unsupportedToken(token.Kind)
	}
	return token, nil
}

func unsupportedToken(kind domain.TokenKind) error {
	return &domain.ValidationError{Field: "token", Reason: kind.Label() + " cannot call the Web API"}
}
