// Package chain stores the Slack token and its kind in pass when the pass
// command works, and in tokens.toml when it does not.
package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/slack-tui/internal/adapters/secrets/file"
	passstore "github.com/bnema/slack-tui/internal/adapters/secrets/pass"
	"github.com/bnema/slack-tui/internal/ports"
)

// Store holds ports.TokenSecretKey and ports.TokenTypeSecretKey. A login
// saved while pass was broken lands in the tokens file and is still found by
// later runs once pass works again, since a pass miss falls through to the
// file. A cancelled or timed out context is returned as is.
type Store struct {
	pass ports.SecretStore
	file ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{pass: primary, file: fallback}, nil
}

// NewPassFirstWithFileFallback is the default token store: entries live
// under passPrefix in pass, with tokensPath as the file copy. The file is
// only created on the first write that reaches it.
func NewPassFirstWithFileFallback(passPrefix string, tokensPath string) (*Store, error) {
	fallback, err := filestore.NewStore(tokensPath)
	if err != nil {
		return nil, err
	}

	return NewStoreChecked(passstore.NewStore(passPrefix), fallback)
}

// Put saves the token or its kind. The tokens file is written only when pass
// refuses the value.
func (s *Store) Put(ctx context.Context, key string, value string) error {
	return s.orFile("save", key, func(backend ports.SecretStore) error {
		return backend.Put(ctx, key, value)
	})
}

// Get reads the token or its kind, trying the tokens file after a pass
// failure. A token missing from both reports domain.ErrSecretNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.orFile("read", key, func(backend ports.SecretStore) error {
		var err error
		value, err = backend.Get(ctx, key)
		return err
	})
	if err != nil {
		return "", err
	}

	return value, nil
}

// Delete is the logout path. It clears the entry from pass and from the
// tokens file, so a token left in the file cannot answer a later Get, and it
// fails only when neither copy could be removed.
func (s *Store) Delete(ctx context.Context, key string) error {
	passErr := s.pass.Delete(ctx, key)
	if callerGaveUp(passErr) {
		return passErr
	}

	fileErr := s.file.Delete(ctx, key)
	if passErr == nil || fileErr == nil {
		return nil
	}

	return joinFailures("clear", key, passErr, fileErr)
}

// orFile runs op on pass and, when pass fails for a reason other than the
// caller giving up, on the tokens file.
func (s *Store) orFile(verb string, key string, op func(ports.SecretStore) error) error {
	passErr := op(s.pass)
	if passErr == nil || callerGaveUp(passErr) {
		return passErr
	}

	fileErr := op(s.file)
	if fileErr == nil {
		return nil
	}

	return joinFailures(verb, key, passErr, fileErr)
}

func joinFailures(verb string, key string, passErr error, fileErr error) error {
	return fmt.Errorf("%s %s: primary backend: %w; fallback backend: %w", verb, key, passErr, fileErr)
}

func callerGaveUp(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
