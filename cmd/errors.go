package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/slack-tui/internal/application"
	"github.com/bnema/slack-tui/internal/domain"
)

const maxSuggestions = 3

// hintError replaces the message shown to the user while keeping the cause
// available to errors.Is and errors.As.
type hintError struct {
	hint string
	err  error
}

func (e *hintError) Error() string {
	return e.hint
}

func (e *hintError) Unwrap() error {
	return e.err
}

// explainError turns domain failures into something the user can act on.
func explainError(err error) error {
	var hinted *hintError
	if errors.As(err, &hinted) {
		return err
	}

	var remote *domain.RemoteError
	switch {
	case errors.Is(err, domain.ErrTokenMissing):
		return &hintError{
			hint: "no Slack token configured: run `slack-tui auth save <token>` or set SLACK_TOKEN",
			err:  err,
		}
	case errors.As(err, &remote):
		return &hintError{hint: explainRemote(remote), err: err}
	case errors.Is(err, domain.ErrRecapEmpty):
		return &hintError{hint: "nothing to recap: no member channels were found", err: err}
	default:
		return err
	}
}

func explainRemote(remote *domain.RemoteError) string {
	switch remote.Kind {
	case domain.RemoteAuthorization:
		if remote.MissingScope != "" {
			return fmt.Sprintf("the token lacks the %s scope needed by %s; add it to the Slack app and reinstall", remote.MissingScope, remote.Op)
		}
		return fmt.Sprintf("Slack rejected the token (%s); check it with `slack-tui auth status`", remote.Detail)
	case domain.RemoteRateLimited:
		if remote.RetryAfter > 0 {
			return fmt.Sprintf("Slack rate limit reached; retry in %s", remote.RetryAfter)
		}
		return "Slack rate limit reached; retry shortly"
	default:
		return fmt.Sprintf("could not reach Slack: %v", remote)
	}
}

// resolveChannel adds close channel names to a failed lookup.
func resolveChannel(ctx context.Context, session *application.Session, token string) (domain.Channel, error) {
	ch, err := session.ResolveChannel(ctx, token)
	if err == nil || !errors.Is(err, domain.ErrNotFound) {
		return ch, err
	}
	if strings.HasPrefix(strings.TrimSpace(token), "@") {
		return ch, userSuggestions(ctx, session, token, err)
	}

	channels, listErr := session.Channels(ctx, false)
	if listErr != nil {
		return ch, err
	}

	var names []string
	for _, match := range application.MatchChannels(channels, token, maxSuggestions) {
		names = append(names, match.Channel.DisplayName())
	}
	return ch, withSuggestions(err, names)
}

func userSuggestions(ctx context.Context, session *application.Session, token string, err error) error {
	users, listErr := session.Users(ctx)
	if listErr != nil {
		return err
	}

	var names []string
	for _, match := range application.MatchUsers(users, token, maxSuggestions) {
		names = append(names, "@"+match.User.Name)
	}
	return withSuggestions(err, names)
}

func withSuggestions(err error, names []string) error {
	if len(names) == 0 {
		return err
	}
	return &hintError{hint: fmt.Sprintf("%v; did you mean %s?", err, strings.Join(names, ", ")), err: err}
}
