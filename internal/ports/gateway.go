package ports

import (
	"context"

	"github.com/bnema/slack-tui/internal/domain"
)

// Gateway is the remote workspace API. Implementations report failures as
// *domain.RemoteError and own retry, timeout and pacing policy.
type Gateway interface {
	AuthTest(ctx context.Context) (domain.Identity, error)
	ListConversations(ctx context.Context, kinds []domain.ChannelKind) ([]domain.Channel, error)
	ListHistory(ctx context.Context, channelID string, limit int) ([]domain.HistoryRecord, error)
	// ListReplies returns a thread, parent first.
	ListReplies(ctx context.Context, channelID string, threadTS string, limit int) ([]domain.HistoryRecord, error)
	PostMessage(ctx context.Context, channelID string, text string) (domain.HistoryRecord, error)
	PostReply(ctx context.Context, channelID string, threadTS string, text string) (domain.HistoryRecord, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, userID string) (domain.User, error)
	Search(ctx context.Context, query string, count int) ([]domain.SearchHit, error)
}
