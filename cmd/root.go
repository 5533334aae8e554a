package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/slack-tui/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", explainError(err))
	}
	return err
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(newApp(viper.New()))
}

func buildRootCmd(app *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "slack-tui",
		Short:         "Slack from the terminal: channels, VIP senders and recaps",
		Long:          "slack-tui reads and posts Slack messages from the terminal, keeps a list of VIP senders whose messages get highlighted, and walks through a per-channel recap of recent activity.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.configure(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("token", "", "Slack token (overrides SLACK_TOKEN and the stored token)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	_ = app.viper.BindPFlag(config.KeyToken, flags.Lookup("token"))
	_ = app.viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(app),
		newChannelsCmd(app),
		newShowCmd(app),
		newSendCmd(app),
		newThreadCmd(app),
		newSearchCmd(app),
		newVIPCmd(app),
		newRecapCmd(app),
	)

	return rootCmd
}

// skipConfigure marks commands that need neither settings nor credentials.
func skipConfigure(cmd *cobra.Command) {
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error { return nil }
}
