package application

import (
	"context"
	"sort"

	"github.com/bnema/slack-tui/internal/domain"
)

const (
	DefaultVIPLimitPerChannel = 50
	DefaultVIPFeedSize        = 20
)

// VIPFeed collects the VIP messages of every channel the user is in, newest
// first, keeping at most limit of them.
func VIPFeed(ctx context.Context, source RecapSource, checker VIPChecker, perChannel, limit int) ([]domain.Message, error) {
	if perChannel <= 0 {
		perChannel = DefaultVIPLimitPerChannel
	}
	if limit <= 0 {
		limit = DefaultVIPFeedSize
	}

	channels, err := source.Channels(ctx, false)
	if err != nil {
		return nil, err
	}

	var feed []domain.Message
	for _, ch := range channels {
		if !recapEligible(ch) {
			continue
		}

		messages, err := source.Messages(ctx, ch.ID, perChannel)
		if err != nil {
			return nil, err
		}
		feed = append(feed, FilterVIP(messages, checker)...)
	}

	sort.SliceStable(feed, func(i, j int) bool { return feed[i].Timestamp > feed[j].Timestamp })
	if len(feed) > limit {
		feed = feed[:limit]
	}

	return feed, nil
}
