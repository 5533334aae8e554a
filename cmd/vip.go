package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/slack-tui/internal/adapters/render/messages"
	"github.com/bnema/slack-tui/internal/application"
	"github.com/bnema/slack-tui/internal/domain"
	"github.com/spf13/cobra"
)

func newVIPCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vip",
		Short: "Manage VIP senders",
	}

	cmd.AddCommand(
		newVIPListCmd(app),
		newVIPAddCmd(app),
		newVIPRemoveCmd(app),
		newVIPMessagesCmd(app),
	)

	return cmd
}

func newVIPListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List VIP senders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vips, err := app.vipRegistry(cmd.Context())
			if err != nil {
				return err
			}

			users := vips.List()
			if asJSON {
				return writeJSON(cmd, users)
			}

			out := cmd.OutOrStdout()
			if len(users) == 0 {
				_, err = fmt.Fprintln(out, "No VIPs yet. Add one with `slack-tui vip add @name`.")
				return err
			}
			for _, user := range users {
				if _, err := fmt.Fprintf(out, "@%s\t%s\n", user.Name, user.ID); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newVIPAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <@user|id>",
		Short: "Add a VIP sender",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return changeVIP(cmd, app, args[0], "added", (*application.VIPRegistry).Add)
		},
	}
}

func newVIPRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <@user|id>",
		Short: "Remove a VIP sender",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return changeVIP(cmd, app, args[0], "removed", (*application.VIPRegistry).Remove)
		},
	}
}

type vipChange func(*application.VIPRegistry, context.Context, string) (domain.User, error)

func changeVIP(cmd *cobra.Command, app *app, token, verb string, change vipChange) error {
	ctx := cmd.Context()
	vips, err := app.vipRegistry(ctx)
	if err != nil {
		return err
	}

	user, err := change(vips, ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) && app.session != nil {
			return userSuggestions(ctx, app.session, token, err)
		}
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s @%s (%s)\n", verb, user.Name, user.ID)
	return err
}

func newVIPMessagesCmd(app *app) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Show the latest messages from VIPs across member channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			session, err := app.connect(ctx)
			if err != nil {
				return err
			}
			vips, err := app.vipRegistry(ctx)
			if err != nil {
				return err
			}

			var feed []domain.Message
			err = app.withSpinner(ctx, cmd.ErrOrStderr(), "Scanning channels...", func(ctx context.Context) error {
				var feedErr error
				feed, feedErr = application.VIPFeed(ctx, session, vips, app.cfg.VIPLimitPerChannel, limit)
				return feedErr
			})
			if err != nil {
				return err
			}

			return writeMessagesOutput(cmd, app, session, feed, messages.RenderOptions{
				Title:       "VIP messages",
				ShowChannel: true,
				Location:    app.clock.Now().Location(),
				Empty:       "No VIP messages found.",
			}, asJSON)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", application.DefaultVIPFeedSize, "Maximum number of messages")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
