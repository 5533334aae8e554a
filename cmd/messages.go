package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/slack-tui/internal/adapters/render/messages"
	"github.com/bnema/slack-tui/internal/application"
	"github.com/bnema/slack-tui/internal/domain"
	"github.com/spf13/cobra"
)

const defaultSearchCount = 20

func newShowCmd(app *app) *cobra.Command {
	var limit int
	var vipOnly bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <#channel|@user|id>",
		Short: "Show recent messages of a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := app.connect(ctx)
			if err != nil {
				return err
			}

			ch, err := resolveChannel(ctx, session, args[0])
			if err != nil {
				return err
			}

			if limit <= 0 {
				limit = app.cfg.MessagesPerPage
			}
			list, err := session.Messages(ctx, ch.ID, limit)
			if err != nil {
				return err
			}

			vips, err := app.vipRegistry(ctx)
			if err != nil {
				return err
			}
			if vipOnly {
				list = application.FilterVIP(list, vips)
			} else {
				list = application.MarkVIP(list, vips)
			}

			return writeMessagesOutput(cmd, app, session, list, messages.RenderOptions{
				Title:    ch.DisplayName(),
				Location: app.clock.Now().Location(),
			}, asJSON)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of messages (default messages_per_page)")
	cmd.Flags().BoolVar(&vipOnly, "vip", false, "Only show messages from VIPs")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newSendCmd(app *app) *cobra.Command {
	var thread string

	cmd := &cobra.Command{
		Use:   "send <#channel|@user|id> <text...>",
		Short: "Post a message, or a thread reply with --thread",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := app.connect(ctx)
			if err != nil {
				return err
			}

			ch, err := resolveChannel(ctx, session, args[0])
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")

			if thread == "" {
				msg, err := session.SendMessage(ctx, ch.ID, text)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "sent [%s] to %s\n", msg.LocalID, ch.DisplayName())
				return err
			}

			parent, err := threadParent(ctx, app, session, ch, thread)
			if err != nil {
				return err
			}
			msg, err := session.SendReply(ctx, parent.LocalID, text)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "sent [%s] to %s in thread [%s]\n", msg.LocalID, ch.DisplayName(), parent.LocalID)
			return err
		},
	}

	cmd.Flags().StringVar(&thread, "thread", "", "Reply in the thread of this message id")

	return cmd
}

func newThreadCmd(app *app) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "thread <#channel|@user|id> <message-id>",
		Short: "Show a message and its thread replies",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := app.connect(ctx)
			if err != nil {
				return err
			}

			ch, err := resolveChannel(ctx, session, args[0])
			if err != nil {
				return err
			}

			parent, err := threadParent(ctx, app, session, ch, args[1])
			if err != nil {
				return err
			}

			if limit <= 0 {
				limit = app.cfg.MessagesPerPage
			}
			list, err := session.Thread(ctx, parent.LocalID, limit)
			if err != nil {
				return err
			}

			vips, err := app.vipRegistry(ctx)
			if err != nil {
				return err
			}

			return writeMessagesOutput(cmd, app, session, application.MarkVIP(list, vips), messages.RenderOptions{
				Title:    fmt.Sprintf("thread in %s", ch.DisplayName()),
				Location: app.clock.Now().Location(),
			}, asJSON)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of messages (default messages_per_page)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

// threadParent finds a message id shown by an earlier run. Ids are only
// known for cached messages, so the channel's recent history is read first.
func threadParent(ctx context.Context, app *app, session *application.Session, ch domain.Channel, localID string) (domain.Message, error) {
	if _, err := session.Messages(ctx, ch.ID, app.cfg.MessagesPerPage); err != nil {
		return domain.Message{}, err
	}

	msg, err := session.Message(localID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && msg.ChannelID != ch.ID) {
		return domain.Message{}, &domain.NotFoundError{Kind: "message", Ref: localID + " in " + ch.DisplayName()}
	}
	if err != nil {
		return domain.Message{}, err
	}

	return msg, nil
}

func newSearchCmd(app *app) *cobra.Command {
	var count int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search messages (requires a user token)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := app.connect(ctx)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			list, err := session.SearchMessages(ctx, query, count)
			if err != nil {
				return err
			}

			vips, err := app.vipRegistry(ctx)
			if err != nil {
				return err
			}

			return writeMessagesOutput(cmd, app, session, application.MarkVIP(list, vips), messages.RenderOptions{
				Title:       fmt.Sprintf("search: %s", query),
				ShowChannel: true,
				Location:    app.clock.Now().Location(),
				Empty:       "No matches.",
			}, asJSON)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", defaultSearchCount, "Maximum number of results")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
