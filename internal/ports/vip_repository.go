package ports

import (
	"context"

	"github.com/bnema/slack-tui/internal/domain"
)

// VIPRepository persists the VIP set as one document.
type VIPRepository interface {
	Load(ctx context.Context) ([]domain.User, error)
	Save(ctx context.Context, users []domain.User) error
}
