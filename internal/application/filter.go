package application

import "github.com/bnema/slack-tui/internal/domain"

type VIPChecker interface {
	IsVIP(userID string) bool
}

// FilterVIP keeps the messages sent by VIP users, in their original order.
// The returned messages are copies with IsVIP set.
func FilterVIP(messages []domain.Message, checker VIPChecker) []domain.Message {
	out := make([]domain.Message, 0, len(messages))
	for _, msg := range messages {
		if !checker.IsVIP(msg.SenderID) {
			continue
		}
		msg.IsVIP = true
		out = append(out, msg)
	}
	return out
}

// MarkVIP returns copies of messages with IsVIP reflecting checker.
func MarkVIP(messages []domain.Message, checker VIPChecker) []domain.Message {
	out := make([]domain.Message, len(messages))
	for i, msg := range messages {
		msg.IsVIP = checker.IsVIP(msg.SenderID)
		out[i] = msg
	}
	return out
}
