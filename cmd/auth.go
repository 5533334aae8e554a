package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/slack-tui/internal/application"
	"github.com/bnema/slack-tui/internal/domain"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the Slack token",
	}

	cmd.AddCommand(
		newAuthSaveCmd(app),
		newAuthStatusCmd(app),
		newAuthClearCmd(app),
		newAuthHelpCmd(),
	)

	return cmd
}

func newAuthSaveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save [token]",
		Short: "Store a token (read from stdin when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := ""
			if len(args) == 1 {
				raw = args[0]
			} else {
				line, err := readLine(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read token: %w", err)
				}
				raw = line
			}

			token, err := app.credentials.Save(cmd.Context(), raw)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved %s %s\n", token.Kind.Label(), maskToken(token.Value))
			return err
		},
	}
}

func newAuthStatusCmd(app *app) *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which token is used and who it belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			resolved, err := app.credentials.Resolve(ctx, app.cfg.Token)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			source := "stored token"
			if resolved.Source == application.TokenFromSettings {
				source = "flag, environment or settings file"
			}
			if _, err := fmt.Fprintf(out, "token: %s %s\nsource: %s\n", resolved.Token.Kind.Label(), maskToken(resolved.Token.Value), source); err != nil {
				return err
			}
			if offline {
				return nil
			}

			session, err := app.connect(ctx)
			if err != nil {
				return err
			}
			identity, err := session.Identity(ctx)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(out, "workspace: %s (%s)\nuser: @%s (%s)\n", identity.TeamName, identity.TeamID, identity.UserName, identity.UserID)
			return err
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Do not call auth.test")

	return cmd
}

func newAuthClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.credentials.Clear(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "stored token removed")
			return err
		},
	}
}

func newAuthHelpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "help",
		Short: "Explain where tokens come from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var b strings.Builder
			b.WriteString("Recognised tokens:\n")
			for _, prefix := range domain.KnownTokenPrefixes() {
				token, _ := domain.ParseToken(prefix + "x")
				note := ""
				if !token.Kind.SupportsWebAPI() {
					note = " (not usable, Socket Mode only)"
				}
				fmt.Fprintf(&b, "  %-6s %s%s\n", prefix, token.Kind.Label(), note)
			}
			b.WriteString("\nLookup order: --token, SLACK_TOKEN, SLACK_TUI_TOKEN, token in settings.toml, stored token.\n")
			b.WriteString("Store a token with `slack-tui auth save <token>`; the scopes needed are\n")
			b.WriteString("channels:read, groups:read, im:read, mpim:read, channels:history, groups:history,\n")
			b.WriteString("im:history, mpim:history, users:read, chat:write and search:read (user tokens only).\n")

			_, err := io.WriteString(cmd.OutOrStdout(), b.String())
			return err
		},
	}
	skipConfigure(cmd)

	return cmd
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// maskToken keeps the prefix and the last four characters.
func maskToken(value string) string {
	if len(value) <= 12 {
		return strings.Repeat("*", len(value))
	}
	return value[:5] + "…" + value[len(value)-4:]
}
