package application

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/slack-tui/internal/domain"
)

const (
	DefaultRecapMessagesPerChannel = 10
	DefaultRecapPreviewSize        = 5
)

// RecapSource is the part of the session the recap is built from.
type RecapSource interface {
	Channels(ctx context.Context, forceRefresh bool) ([]domain.Channel, error)
	Messages(ctx context.Context, channelID string, limit int) ([]domain.Message, error)
}

type RecapConfig struct {
	MessagesPerChannel int
	PreviewSize        int
}

// RecapNavigator is a saturating cursor over per-channel summaries. While a
// Load is running every query fails with domain.ErrRecapNotReady; a failed
// Load keeps the previous entries and cursor.
type RecapNavigator struct {
	source     RecapSource
	perChannel int
	preview    int

	mu      sync.Mutex
	entries []domain.RecapEntry
	index   int
	loading bool
}

func NewRecapNavigator(source RecapSource, cfg RecapConfig) *RecapNavigator {
	perChannel := cfg.MessagesPerChannel
	if perChannel <= 0 {
		perChannel = DefaultRecapMessagesPerChannel
	}
	preview := cfg.PreviewSize
	if preview <= 0 {
		preview = DefaultRecapPreviewSize
	}

	return &RecapNavigator{source: source, perChannel: perChannel, preview: preview}
}

// Load rebuilds the entries from the session and moves the cursor to the
// first one.
func (n *RecapNavigator) Load(ctx context.Context) error {
	n.mu.Lock()
	if n.loading {
		n.mu.Unlock()
		return domain.ErrRecapNotReady
	}
	n.loading = true
	n.mu.Unlock()

	entries, err := n.build(ctx)

	n.mu.Lock()
	defer n.mu.Unlock()
	n.loading = false
	if err != nil {
		return fmt.Errorf("load recap: %w", err)
	}

	n.entries = entries
	n.index = 0
	return nil
}

func (n *RecapNavigator) Next() (domain.RecapEntry, error) {
	return n.move(1)
}

func (n *RecapNavigator) Previous() (domain.RecapEntry, error) {
	return n.move(-1)
}

func (n *RecapNavigator) Current() (domain.RecapEntry, error) {
	return n.move(0)
}

// Position reports the zero-based cursor and the number of entries.
func (n *RecapNavigator) Position() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.index, len(n.entries)
}

func (n *RecapNavigator) move(step int) (domain.RecapEntry, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.loading {
		return domain.RecapEntry{}, domain.ErrRecapNotReady
	}
	if len(n.entries) == 0 {
		return domain.RecapEntry{}, domain.ErrRecapEmpty
	}

	n.index = min(max(n.index+step, 0), len(n.entries)-1)
	return n.entries[n.index], nil
}

func (n *RecapNavigator) build(ctx context.Context) ([]domain.RecapEntry, error) {
	channels, err := n.source.Channels(ctx, false)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RecapEntry, 0, len(channels))
	for _, ch := range channels {
		if !recapEligible(ch) {
			continue
		}

		messages, err := n.source.Messages(ctx, ch.ID, n.perChannel)
		if err != nil {
			return nil, err
		}
		entries = append(entries, summarize(ch, messages, n.preview))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].LatestTimestamp, entries[j].LatestTimestamp
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return a > b
	})

	return entries, nil
}

func recapEligible(ch domain.Channel) bool {
	switch ch.Kind {
	case domain.ChannelDirect, domain.ChannelGroupDirect:
		return true
	default:
		return ch.IsMember
	}
}

func summarize(ch domain.Channel, messages []domain.Message, previewSize int) domain.RecapEntry {
	entry := domain.RecapEntry{Channel: ch, MessageCount: len(messages)}
	if len(messages) == 0 {
		entry.SummaryText = "No recent activity"
		return entry
	}

	senders := map[string]struct{}{}
	for _, msg := range messages {
		if msg.SenderID != "" {
			senders[msg.SenderID] = struct{}{}
		}
		if msg.ReplyCount > 0 {
			entry.Threads++
		}
	}
	entry.Participants = len(senders)
	entry.LatestTimestamp = messages[len(messages)-1].Timestamp

	start := max(len(messages)-previewSize, 0)
	entry.Preview = append([]domain.Message(nil), messages[start:]...)

	entry.SummaryText = fmt.Sprintf("%s from %s", plural(entry.MessageCount, "message"), plural(entry.Participants, "participant"))
	if entry.Threads > 0 {
		entry.SummaryText += ", " + plural(entry.Threads, "thread")
	}

	return entry
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
