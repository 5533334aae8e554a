package application

import (
	"context"
	"testing"

	"github.com/bnema/slack-tui/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVIPFeedNewestFirstAndCapped(t *testing.T) {
	source := &fakeRecapSource{
		channels: []domain.Channel{member("C1", "general"), member("C2", "ops"), {ID: "C3", Name: "lobby", Kind: domain.ChannelPublic}},
		messages: map[string][]domain.Message{
			"C1": {
				{ChannelID: "C1", Timestamp: "1.000001", SenderID: "U1", Text: "old"},
				{ChannelID: "C1", Timestamp: "4.000001", SenderID: "U2", Text: "noise"},
				{ChannelID: "C1", Timestamp: "5.000001", SenderID: "U1", Text: "newest"},
			},
			"C2": {
				{ChannelID: "C2", Timestamp: "3.000001", SenderID: "U1", Text: "middle"},
			},
			"C3": {
				{ChannelID: "C3", Timestamp: "9.000001", SenderID: "U1", Text: "not a member"},
			},
		},
	}

	feed, err := VIPFeed(context.Background(), source, vipSet{"U1": true}, 50, 2)
	require.NoError(t, err)

	require.Len(t, feed, 2)
	assert.Equal(t, "newest", feed[0].Text)
	assert.Equal(t, "middle", feed[1].Text)
	assert.True(t, feed[0].IsVIP)
}

func TestVIPFeedPropagatesRemoteErrors(t *testing.T) {
	source := abcSource()
	source.failOn = "CA"

	_, err := VIPFeed(context.Background(), source, vipSet{"U1": true}, 0, 0)
	assert.ErrorIs(t, err, domain.ErrRemote)
}
