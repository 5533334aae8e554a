package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokenDetectsKind(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want TokenKind
	}{
		{name: "user", raw: "xoxp-123", want: TokenUser},
		{name: "bot", raw: "xoxb-123", want: TokenBot},
		{name: "enterprise", raw: "xoxe.xoxp-1-abc", want: TokenEnterprise},
		{name: "enterprise refresh", raw: "xoxe-1-abc", want: TokenEnterpriseRefresh},
		{name: "app level", raw: "xapp-1-abc", want: TokenAppLevel},
		{name: "unknown", raw: "abc", want: TokenUnknown},
		{name: "surrounding whitespace", raw: "  xoxb-123\n", want: TokenBot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseToken(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, token.Kind)
		})
	}
}

func TestParseTokenRejectsEmpty(t *testing.T) {
	_, err := ParseToken("   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestKnownTokenPrefixesMatchParsing(t *testing.T) {
	prefixes := KnownTokenPrefixes()
	require.Len(t, prefixes, 5)
	assert.Equal(t, "xoxe.", prefixes[2])

	for _, prefix := range prefixes {
		token, err := ParseToken(prefix + "abc")
		require.NoError(t, err)
		assert.NotEqual(t, TokenUnknown, token.Kind, prefix)
	}
}

func TestTokenKindSupportsWebAPI(t *testing.T) {
	assert.True(t, TokenUser.SupportsWebAPI())
	assert.True(t, TokenBot.SupportsWebAPI())
	assert.False(t, TokenAppLevel.SupportsWebAPI())
}

func TestParseTimestamp(t *testing.T) {
	got := ParseTimestamp("1700000000.000100")
	assert.Equal(t, time.Unix(1700000000, 100_000), got)

	assert.True(t, ParseTimestamp("").IsZero())
	assert.True(t, ParseTimestamp("not-a-ts").IsZero())
	assert.Equal(t, time.Unix(42, 0), ParseTimestamp("42"))
}

func TestParseChannelKindAcceptsSlackTypeNames(t *testing.T) {
	kind, err := ParseChannelKind("im")
	require.NoError(t, err)
	assert.Equal(t, ChannelDirect, kind)
	assert.Equal(t, "im", kind.APIType())

	kind, err = ParseChannelKind("private")
	require.NoError(t, err)
	assert.Equal(t, "private_channel", kind.APIType())

	_, err = ParseChannelKind("voice")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestChannelDisplayName(t *testing.T) {
	assert.Equal(t, "#general", Channel{Name: "general", Kind: ChannelPublic}.DisplayName())
	assert.Equal(t, "@U1", Channel{UserID: "U1", Kind: ChannelDirect}.DisplayName())
}

func TestRemoteErrorMatching(t *testing.T) {
	cause := context.DeadlineExceeded
	err := fmt.Errorf("load: %w", AsRemoteError("conversations.history", cause))

	assert.ErrorIs(t, err, ErrRemote)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var remote *RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, RemoteTransport, remote.Kind)
	assert.Equal(t, "conversations.history", remote.Op)
}

func TestAsRemoteErrorKeepsExistingTag(t *testing.T) {
	original := &RemoteError{Kind: RemoteRateLimited, Op: "search.messages", RetryAfter: 3 * time.Second}

	err := AsRemoteError("other", original)

	assert.Same(t, original, err)
	assert.Contains(t, err.Error(), "retry after 3s")
	assert.NoError(t, AsRemoteError("op", nil))
}

func TestNotFoundErrorMatchesSentinel(t *testing.T) {
	err := &NotFoundError{Kind: "channel", Ref: "#nope"}

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrRemote)
	assert.Equal(t, `channel "#nope" not found`, err.Error())
}
