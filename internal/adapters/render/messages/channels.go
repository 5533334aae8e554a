package messages

import (
	"fmt"
	"strings"

	"github.com/bnema/slack-tui/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderChannels lists channels as "#name  (N members)  topic".
func RenderChannels(channels []domain.Channel) string {
	s := newStyles()
	lines := []string{
		s.title.Render("Channels"),
		s.header.Render(fmt.Sprintf("channels: %d", len(channels))),
	}

	if len(channels) == 0 {
		lines = append(lines, s.empty.Render("No channels available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	width := 0
	for _, ch := range channels {
		width = max(width, lipgloss.Width(ch.DisplayName()))
	}

	for _, ch := range channels {
		name := ch.DisplayName()
		parts := []string{s.channel.Render(name + strings.Repeat(" ", width-lipgloss.Width(name)))}
		if ch.MemberCount != nil {
			parts = append(parts, s.meta.Render(fmt.Sprintf("(%d members)", *ch.MemberCount)))
		}
		if ch.Kind == domain.ChannelPrivate {
			parts = append(parts, s.meta.Render("private"))
		}
		if topic := singleLine(ch.Topic); topic != "" {
			parts = append(parts, s.text.Render(topic))
		}
		lines = append(lines, strings.Join(parts, "  "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
