package cmd

import (
	"fmt"

	"github.com/bnema/slack-tui/internal/adapters/render/messages"
	"github.com/spf13/cobra"
)

type channelView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Members *int   `json:"members,omitempty"`
	Topic   string `json:"topic,omitempty"`
}

func newChannelsCmd(app *app) *cobra.Command {
	var refresh bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "channels",
		Short: "List conversations visible to the token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.connect(cmd.Context())
			if err != nil {
				return err
			}

			channels, err := session.Channels(cmd.Context(), refresh)
			if err != nil {
				return err
			}

			if asJSON {
				views := make([]channelView, 0, len(channels))
				for _, ch := range channels {
					views = append(views, channelView{
						ID:      ch.ID,
						Name:    ch.DisplayName(),
						Kind:    string(ch.Kind),
						Members: ch.MemberCount,
						Topic:   ch.Topic,
					})
				}
				return writeJSON(cmd, views)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), messages.RenderChannels(channels))
			return err
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Ignore the cached listing")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
