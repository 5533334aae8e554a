package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/slack-tui/internal/adapters/render/messages"
	"github.com/bnema/slack-tui/internal/application"
	"github.com/bnema/slack-tui/internal/domain"
	"github.com/bnema/slack-tui/internal/logger"
	"github.com/spf13/cobra"
)

type messageView struct {
	ID         string    `json:"id"`
	Channel    string    `json:"channel"`
	ChannelID  string    `json:"channel_id"`
	Timestamp  string    `json:"ts"`
	ThreadTS   string    `json:"thread_ts,omitempty"`
	Time       time.Time `json:"time"`
	SenderID   string    `json:"sender_id"`
	Sender     string    `json:"sender,omitempty"`
	Text       string    `json:"text"`
	ReplyCount int       `json:"reply_count,omitempty"`
	VIP        bool      `json:"vip,omitempty"`
}

func writeMessagesOutput(cmd *cobra.Command, app *app, session *application.Session, list []domain.Message, opts messages.RenderOptions, asJSON bool) error {
	opts.UserName = userNames(cmd.Context(), session)
	if opts.ChannelLabel == nil {
		opts.ChannelLabel = session.ChannelLabel
	}

	if asJSON {
		views := make([]messageView, 0, len(list))
		for _, msg := range list {
			views = append(views, messageView{
				ID:         msg.LocalID,
				Channel:    opts.ChannelLabel(msg.ChannelID),
				ChannelID:  msg.ChannelID,
				Timestamp:  msg.Timestamp,
				ThreadTS:   msg.ThreadTS,
				Time:       msg.Time().UTC(),
				SenderID:   msg.SenderID,
				Sender:     opts.UserName(msg.SenderID),
				Text:       msg.Text,
				ReplyCount: msg.ReplyCount,
				VIP:        msg.IsVIP,
			})
		}
		return writeJSON(cmd, views)
	}

	rendered, err := app.renderer(list, opts)
	if err != nil {
		return fmt.Errorf("render messages: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// userNames maps sender ids to names from the workspace user list. Without
// users:read the ids are shown as they are.
func userNames(ctx context.Context, session *application.Session) func(string) string {
	users, err := session.Users(ctx)
	if err != nil {
		logger.Warn("user list unavailable, showing ids", "error", err)
		return func(string) string { return "" }
	}

	names := make(map[string]string, len(users))
	for _, user := range users {
		names[user.ID] = user.Name
	}
	return func(id string) string { return names[id] }
}
