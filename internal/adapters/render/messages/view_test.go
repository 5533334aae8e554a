package messages

import (
	"testing"
	"time"

	"github.com/bnema/slack-tui/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(id string) string {
	return map[string]string{"U1": "alice", "U2": "bob"}[id]
}

func TestRenderMessagesLines(t *testing.T) {
	ts := time.Date(2026, 2, 14, 11, 5, 0, 0, time.UTC)
	stamp := "1771067100.000100"
	require.Equal(t, ts.Unix(), domain.ParseTimestamp(stamp).Unix())

	output, err := Render([]domain.Message{
		{LocalID: "a1b2c3d4", ChannelID: "C1", Timestamp: stamp, SenderID: "U1", Text: "hello\nworld", ReplyCount: 2},
		{LocalID: "e5f6a7b8", ChannelID: "C1", Timestamp: stamp, SenderID: "U2", Text: "hi", IsVIP: true},
	}, RenderOptions{Title: "#general", UserName: names, Location: time.UTC})

	require.NoError(t, err)
	assert.Contains(t, output, "#general")
	assert.Contains(t, output, "messages: 2")
	assert.Contains(t, output, "[a1b2c3d4] 2026-02-14 11:05 @alice: hello world (2 replies)")
	assert.Contains(t, output, "★ @bob:")
	assert.Contains(t, output, "[e5f6a7b8]")
}

func TestRenderMessagesEmpty(t *testing.T) {
	output, err := Render(nil, RenderOptions{Empty: "No VIP messages found."})

	require.NoError(t, err)
	assert.Contains(t, output, "No VIP messages found.")
}

func TestFormatLineFallsBackToIDs(t *testing.T) {
	line := FormatLine(domain.Message{LocalID: "00000000", ChannelID: "C9", SenderID: "U9", Text: "x", ReplyCount: 1},
		RenderOptions{ShowChannel: true, UserName: names})

	assert.Equal(t, "[00000000] C9 @U9: x (1 reply)", line)
}

func TestFormatLineShowsChannelLabel(t *testing.T) {
	line := FormatLine(domain.Message{LocalID: "00000001", ChannelID: "C1", SenderID: "U1", Text: "deploy done"},
		RenderOptions{ShowChannel: true, UserName: names, ChannelLabel: func(string) string { return "#ops" }})

	assert.Equal(t, "[00000001] #ops @alice: deploy done", line)
}

func TestRenderChannels(t *testing.T) {
	members := 12
	output := RenderChannels([]domain.Channel{
		{ID: "C1", Name: "general", Kind: domain.ChannelPublic, MemberCount: &members, Topic: "company wide"},
		{ID: "C2", Name: "secret", Kind: domain.ChannelPrivate},
	})

	assert.Contains(t, output, "channels: 2")
	assert.Contains(t, output, "#general")
	assert.Contains(t, output, "(12 members)")
	assert.Contains(t, output, "company wide")
	assert.Contains(t, output, "private")
}

func TestRenderChannelsEmpty(t *testing.T) {
	assert.Contains(t, RenderChannels(nil), "No channels available.")
}
