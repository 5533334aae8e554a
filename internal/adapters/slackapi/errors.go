package slackapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/bnema/slack-tui/internal/domain"
	"github.com/slack-go/slack"
)

// Slack error codes that mean the token cannot perform the call.
var authorizationCodes = map[string]bool{
	"invalid_auth":           true,
	"not_authed":             true,
	"token_revoked":          true,
	"token_expired":          true,
	"account_inactive":       true,
	"missing_scope":          true,
	"no_permission":          true,
	"not_allowed_token_type": true,
	"ekm_access_denied":      true,
}

// Scopes each method needs, reported when Slack answers missing_scope.
var scopeHints = map[string]string{
	"conversations.list":    "channels:read, groups:read, im:read, mpim:read",
	"conversations.history": "channels:history, groups:history, im:history, mpim:history",
	"conversations.replies": "channels:history, groups:history, im:history, mpim:history",
	"chat.postMessage":      "chat:write",
	"users.list":            "users:read",
	"users.info":            "users:read",
	"search.messages":       "search:read",
}

// mapError turns a slack-go failure into a *domain.RemoteError.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	remote := &domain.RemoteError{Kind: domain.RemoteTransport, Op: op, Detail: err.Error(), Err: err}

	var rateLimited *slack.RateLimitedError
	var response slack.SlackErrorResponse
	var status slack.StatusCodeError

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		remote.Detail = "request cancelled: " + err.Error()
	case errors.As(err, &rateLimited):
		remote.Kind = domain.RemoteRateLimited
		remote.Detail = "ratelimited"
		remote.RetryAfter = rateLimited.RetryAfter
	case errors.As(err, &response):
		remote.Detail = response.Err
		switch {
		case response.Err == "ratelimited":
			remote.Kind = domain.RemoteRateLimited
		case authorizationCodes[response.Err]:
			remote.Kind = domain.RemoteAuthorization
			if response.Err == "missing_scope" {
				remote.MissingScope = scopeHints[op]
			}
		}
	case errors.As(err, &status):
		switch status.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			remote.Kind = domain.RemoteAuthorization
		case http.StatusTooManyRequests:
			remote.Kind = domain.RemoteRateLimited
		}
	}

	return remote
}
