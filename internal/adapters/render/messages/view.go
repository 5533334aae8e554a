package messages

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/slack-tui/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const stampLayout = "2006-01-02 15:04"

type RenderOptions struct {
	Title string
	// ShowChannel prefixes every line with the channel label, for feeds that
	// span channels.
	ShowChannel  bool
	UserName     func(userID string) string
	ChannelLabel func(channelID string) string
	Location     *time.Location
	Empty        string
}

func renderView(messages []domain.Message, opts RenderOptions, s styles) string {
	var lines []string
	if opts.Title != "" {
		lines = append(lines, s.title.Render(opts.Title), s.header.Render(fmt.Sprintf("messages: %d", len(messages))))
	}

	if len(messages) == 0 {
		empty := opts.Empty
		if empty == "" {
			empty = "No messages."
		}
		lines = append(lines, s.empty.Render(empty))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, msg := range messages {
		lines = append(lines, formatLine(msg, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// formatLine renders one message as
// "[localid] 2024-01-02 15:04 #channel @sender: text (n replies)".
func formatLine(msg domain.Message, opts RenderOptions, s styles) string {
	parts := []string{s.localID.Render("[" + msg.LocalID + "]")}

	if stamp := formatStamp(msg, opts.Location); stamp != "" {
		parts = append(parts, s.stamp.Render(stamp))
	}
	if opts.ShowChannel {
		parts = append(parts, s.channel.Render(channelLabel(msg.ChannelID, opts)))
	}

	sender := "@" + userName(msg.SenderID, opts) + ":"
	if msg.IsVIP {
		parts = append(parts, s.vip.Render("★ "+sender))
	} else {
		parts = append(parts, s.sender.Render(sender))
	}

	parts = append(parts, s.text.Render(singleLine(msg.Text)))

	if msg.ReplyCount > 0 {
		parts = append(parts, s.meta.Render("("+pluralReplies(msg.ReplyCount)+")"))
	}

	return strings.Join(parts, " ")
}

func formatStamp(msg domain.Message, loc *time.Location) string {
	t := msg.Time()
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(stampLayout)
}

func userName(userID string, opts RenderOptions) string {
	if userID == "" {
		return "unknown"
	}
	if opts.UserName != nil {
		if name := opts.UserName(userID); name != "" {
			return name
		}
	}
	return userID
}

func channelLabel(channelID string, opts RenderOptions) string {
	if opts.ChannelLabel != nil {
		if label := opts.ChannelLabel(channelID); label != "" {
			return label
		}
	}
	return channelID
}

func singleLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func pluralReplies(n int) string {
	if n == 1 {
		return "1 reply"
	}
	return strconv.Itoa(n) + " replies"
}

// FormatLine renders a single message without any surrounding header.
func FormatLine(msg domain.Message, opts RenderOptions) string {
	return formatLine(msg, opts, newStyles())
}
