package recap

import (
	"fmt"
	"time"

	"github.com/bnema/slack-tui/internal/adapters/render/messages"
	"github.com/bnema/slack-tui/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type Options struct {
	Now      time.Time
	UserName func(userID string) string
	Location *time.Location
}

// Render lays out one recap entry with its position footer "[index/total]".
// index is zero based.
func Render(entry domain.RecapEntry, index, total int, opts Options) string {
	return renderEntry(entry, index, total, opts, newStyles())
}

func renderEntry(entry domain.RecapEntry, index, total int, opts Options, s styles) string {
	lines := []string{
		s.title.Render(entry.Channel.DisplayName()),
		s.summary.Render(entry.SummaryText),
	}

	if active := lastActive(entry.LatestTimestamp, opts.Now); active != "" {
		lines = append(lines, s.meta.Render("last active "+active))
	}

	if len(entry.Preview) > 0 {
		lines = append(lines, "")
		lineOpts := messages.RenderOptions{UserName: opts.UserName, Location: opts.Location}
		for _, msg := range entry.Preview {
			lines = append(lines, messages.FormatLine(msg, lineOpts))
		}
	}

	lines = append(lines, "", s.footer.Render(fmt.Sprintf("[%d/%d]", index+1, total)))

	return s.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func lastActive(ts string, now time.Time) string {
	if ts == "" {
		return ""
	}
	t := domain.ParseTimestamp(ts)
	if t.IsZero() {
		return ""
	}
	if now.IsZero() {
		now = time.Now()
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
