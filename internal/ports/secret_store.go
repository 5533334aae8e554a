package ports

import "context"

// Keys under which the workspace credential is stored.
const (
	TokenSecretKey     = "token"
	TokenTypeSecretKey = "type"
)

// SecretStore holds the workspace credential. Get returns an error matching
// domain.ErrSecretNotFound when the key is absent.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
