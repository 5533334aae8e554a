package cmd

import (
	"errors"
	"fmt"

	recapview "github.com/bnema/slack-tui/internal/adapters/render/recap"
	"github.com/bnema/slack-tui/internal/application"
	"github.com/bnema/slack-tui/internal/domain"
	"github.com/spf13/cobra"
)

func newRecapCmd(app *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "recap",
		Short: "Walk through recent activity channel by channel",
		Long:  "recap summarises the latest messages of every member channel, most recently active first. In a terminal it opens an interactive view: q/← previous, e/→ next, x/esc exit. Use --plain (or pipe the output) to print every entry.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			session, err := app.connect(ctx)
			if err != nil {
				return err
			}

			opts := recapview.Options{
				Now:      app.clock.Now(),
				UserName: userNames(ctx, session),
				Location: app.clock.Now().Location(),
			}

			out := cmd.OutOrStdout()
			if !plain && app.isTerminal(out) {
				return recapview.Run(ctx, app.navigator, opts, cmd.InOrStdin(), out)
			}

			if err := app.withSpinner(ctx, cmd.ErrOrStderr(), "Building recap...", app.navigator.Load); err != nil {
				return err
			}
			return writeRecap(cmd, app.navigator, opts)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print every entry instead of opening the interactive view")

	return cmd
}

func writeRecap(cmd *cobra.Command, nav *application.RecapNavigator, opts recapview.Options) error {
	out := cmd.OutOrStdout()

	entry, err := nav.Current()
	if errors.Is(err, domain.ErrRecapEmpty) {
		_, err = fmt.Fprintln(out, "No channels to recap.")
		return err
	}
	if err != nil {
		return err
	}

	_, total := nav.Position()
	for i := 0; i < total; i++ {
		if i > 0 {
			if entry, err = nav.Next(); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(out, recapview.Render(entry, i, total, opts)); err != nil {
			return err
		}
	}

	return nil
}
