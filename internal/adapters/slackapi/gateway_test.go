package slackapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bnema/slack-tui/internal/domain"
	"github.com/bnema/slack-tui/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlack struct {
	t *testing.T

	mu       sync.Mutex
	calls    map[string]int
	forms    map[string][]map[string]string
	handlers map[string]func(w http.ResponseWriter, r *http.Request)
}

func newFakeSlack(t *testing.T) (*fakeSlack, *Gateway) {
	t.Helper()

	fake := &fakeSlack{
		t:        t,
		calls:    map[string]int{},
		forms:    map[string][]map[string]string{},
		handlers: map[string]func(w http.ResponseWriter, r *http.Request){},
	}
	server := httptest.NewServer(http.HandlerFunc(fake.serve))
	t.Cleanup(server.Close)

	gateway := New(Config{
		Token:             "xoxp-test",
		APIURL:            server.URL + "/api",
		RequestsPerSecond: 1000,
		Burst:             100,
		Logger:            logger.Discard(),
	})
	return fake, gateway
}

func (f *fakeSlack) handle(method string, body any) {
	f.handlers[method] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(f.t, json.NewEncoder(w).Encode(body))
	}
}

func (f *fakeSlack) serve(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Path[len("/api/"):]
	_ = r.ParseForm()

	form := map[string]string{}
	for key := range r.Form {
		form[key] = r.Form.Get(key)
	}

	f.mu.Lock()
	f.calls[method]++
	f.forms[method] = append(f.forms[method], form)
	handler, ok := f.handlers[method]
	f.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	handler(w, r)
}

func (f *fakeSlack) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeSlack) form(method string, i int) map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.forms[method][i]
}

func TestGatewayAuthTest(t *testing.T) {
	fake, gateway := newFakeSlack(t)
	fake.handle("auth.test", map[string]any{
		"ok": true, "team": "Acme", "team_id": "T1", "user": "alice", "user_id": "U1",
	})

	identity, err := gateway.AuthTest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{TeamID: "T1", TeamName: "Acme", UserID: "U1", UserName: "alice"}, identity)
}

func TestGatewayListConversationsFollowsCursor(t *testing.T) {
	fake, gateway := newFakeSlack(t)
	fake.handlers["conversations.list"] = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Form.Get("cursor") == "" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"ok": true,
				"channels": []map[string]any{
					{"id": "C1", "name": "general", "is_channel": true, "is_member": true, "num_members": 12, "topic": map[string]any{"value": "company news"}},
					{"id": "G1", "name": "secret", "is_group": true, "is_private": true, "is_member": true, "num_members": 2},
				},
				"response_metadata": map[string]any{"next_cursor": "page2"},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok": true,
			"channels": []map[string]any{
				{"id": "D1", "is_im": true, "user": "U2"},
				{"id": "M1", "name": "mpdm-a--b", "is_mpim": true, "is_private": true},
			},
			"response_metadata": map[string]any{"next_cursor": ""},
		})
	}

	channels, err := gateway.ListConversations(context.Background(), []domain.ChannelKind{
		domain.ChannelPublic, domain.ChannelPrivate, domain.ChannelDirect, domain.ChannelGroupDirect,
	})
	require.NoError(t, err)
	require.Len(t, channels, 4)

	assert.Equal(t, 2, fake.count("conversations.list"))
	assert.Equal(t, "public_channel,private_channel,im,mpim", fake.form("conversations.list", 0)["types"])
	assert.Equal(t, "true", fake.form("conversations.list", 0)["exclude_archived"])

	assert.Equal(t, domain.ChannelPublic, channels[0].Kind)
	assert.Equal(t, "company news", channels[0].Topic)
	assert.True(t, channels[0].IsMember)
	require.NotNil(t, channels[0].MemberCount)
	assert.Equal(t, 12, *channels[0].MemberCount)

	assert.Equal(t, domain.ChannelPrivate, channels[1].Kind)

	assert.Equal(t, domain.ChannelDirect, channels[2].Kind)
	assert.Equal(t, "U2", channels[2].UserID)
	assert.Nil(t, channels[2].MemberCount)
	assert.True(t, channels[2].IsMember)

	assert.Equal(t, domain.ChannelGroupDirect, channels[3].Kind)
}

func TestGatewayListHistory(t *testing.T) {
	fake, gateway := newFakeSlack(t)
	fake.handle("conversations.history", map[string]any{
		"ok": true,
		"messages": []map[string]any{
			{"type": "message", "user": "U1", "text": "latest", "ts": "1700000002.000200", "reply_count": 3},
			{"type": "message", "bot_id": "B1", "text": "deploy bot", "ts": "1700000001.000100"},
		},
	})

	records, err := gateway.ListHistory(context.Background(), "C1", 10)
	require.NoError(t, err)

	assert.Equal(t, "C1", fake.form("conversations.history", 0)["channel"])
	assert.Equal(t, "10", fake.form("conversations.history", 0)["limit"])
	assert.Equal(t, []domain.HistoryRecord{
		{Timestamp: "1700000002.000200", SenderID: "U1", Text: "latest", ReplyCount: 3},
		{Timestamp: "1700000001.000100", SenderID: "B1", Text: "deploy bot"},
	}, records)
}

func TestGatewayPostMessageUsesAuthenticatedUser(t *testing.T) {
	fake, gateway := newFakeSlack(t)
	fake.handle("auth.test", map[string]any{"ok": true, "team": "Acme", "team_id": "T1", "user": "alice", "user_id": "U1"})
	fake.handle("chat.postMessage", map[string]any{"ok": true, "channel": "C1", "ts": "1700000009.000900"})

	first, err := gateway.PostMessage(context.Background(), "C1", "hello")
	require.NoError(t, err)
	assert.Equal(t, domain.HistoryRecord{Timestamp: "1700000009.000900", SenderID: "U1", Text: "hello"}, first)

	_, err = gateway.PostMessage(context.Background(), "C1", "hello again")
	require.NoError(t, err)

	assert.Equal(t, 1, fake.count("auth.test"))
	assert.Equal(t, 2, fake.count("chat.postMessage"))
	assert.Equal(t, "hello", fake.form("chat.postMessage", 0)["text"])
}

func TestGatewayListReplies(t *testing.T) {
	fake, gateway := newFakeSlack(t)
	fake.handle("conversations.replies", map[string]any{
		"ok": true,
		"messages": []map[string]any{
			{"type": "message", "user": "U2", "text": "ship it", "ts": "1700000300.000100", "thread_ts": "1700000300.000100", "reply_count": 1},
			{"type": "message", "bot_id": "B1", "text": "deployed", "ts": "1700000310.000100", "thread_ts": "1700000300.000100"},
		},
		"has_more":          false,
		"response_metadata": map[string]any{"next_cursor": ""},
	})

	records, err := gateway.ListReplies(context.Background(), "C1", "1700000300.000100", 15)
	require.NoError(t, err)
	assert.Equal(t, []domain.HistoryRecord{
		{Timestamp: "1700000300.000100", SenderID: "U2", Text: "ship it", ReplyCount: 1},
		{Timestamp: "1700000310.000100", ThreadTS: "1700000300.000100", SenderID: "B1", Text: "deployed"},
	}, records)

	form := fake.form("conversations.replies", 0)
	assert.Equal(t, "C1", form["channel"])
	assert.Equal(t, "1700000300.000100", form["ts"])
	assert.Equal(t, "15", form["limit"])
}

func TestGatewayPostReplySetsThread(t *testing.T) {
	fake, gateway := newFakeSlack(t)
	fake.handle("auth.test", map[string]any{"ok": true, "team": "Acme", "team_id": "T1", "user": "alice", "user_id": "U1"})
	fake.handle("chat.postMessage", map[string]any{"ok": true, "channel": "C1", "ts": "1700000320.000100"})

	record, err := gateway.PostReply(context.Background(), "C1", "1700000300.000100", "on it")
	require.NoError(t, err)
	assert.Equal(t, domain.HistoryRecord{
		Timestamp: "1700000320.000100",
		ThreadTS:  "1700000300.000100",
		SenderID:  "U1",
		Text:      "on it",
	}, record)
	assert.Equal(t, "1700000300.000100", fake.form("chat.postMessage", 0)["thread_ts"])

	_, err = gateway.PostMessage(context.Background(), "C1", "top level")
	require.NoError(t, err)
	assert.NotContains(t, fake.form("chat.postMessage", 1), "thread_ts")
}

func TestGatewayRepliesMissingScope(t *testing.T) {
	fake, gateway := newFakeSlack(t)
	fake.handle("conversations.replies", map[string]any{"ok": false, "error": "missing_scope"})

	_, err := gateway.ListReplies(context.Background(), "C1", "1.000001", 10)

	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, domain.RemoteAuthorization, remote.Kind)
	assert.Equal(t, "conversations.replies", remote.Op)
	assert.Contains(t, remote.MissingScope, "channels:history")
}

func TestGatewayUsers(t *testing.T) {
	fake, gateway := newFakeSlack(t)
	fake.handle("users.list", map[string]any{
		"ok": true,
		"members": []map[string]any{
			{"id": "U1", "name": "alice", "real_name": "Alice Liddell", "profile": map[string]any{"email": "alice@example.com"}},
			{"id": "U2", "name": "gone", "deleted": true, "profile": map[string]any{"real_name": "Gone Person"}},
			{"id": "B1", "name": "deploybot", "is_bot": true},
		},
		"response_metadata": map[string]any{"next_cursor": ""},
	})
	fake.handle("users.info", map[string]any{
		"ok":   true,
		"user": map[string]any{"id": "U3", "name": "carol", "real_name": "Carol"},
	})

	users, err := gateway.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, domain.User{ID: "U1", Name: "alice", RealName: "Alice Liddell", Email: "alice@example.com"}, users[0])
	assert.True(t, users[1].Deleted)
	assert.Equal(t, "Gone Person", users[1].RealName)
	assert.True(t, users[2].IsBot)

	user, err := gateway.GetUser(context.Background(), "U3")
	require.NoError(t, err)
	assert.Equal(t, "carol", user.Name)
	assert.Equal(t, "U3", fake.form("users.info", 0)["user"])
}

func TestGatewaySearch(t *testing.T) {
	fake, gateway := newFakeSlack(t)
	fake.handle("search.messages", map[string]any{
		"ok":    true,
		"query": "deploy",
		"messages": map[string]any{
			"total": 1,
			"matches": []map[string]any{
				{"type": "message", "channel": map[string]any{"id": "C2", "name": "ops"}, "user": "U1", "username": "alice", "ts": "1700000003.000300", "text": "deploy done"},
			},
			"paging":     map[string]any{"count": 5, "total": 1, "page": 1, "pages": 1},
			"pagination": map[string]any{"total_count": 1, "page": 1, "per_page": 5, "page_count": 1, "first": 1, "last": 1},
		},
	})

	hits, err := gateway.Search(context.Background(), "deploy", 5)
	require.NoError(t, err)

	assert.Equal(t, "5", fake.form("search.messages", 0)["count"])
	assert.Equal(t, []domain.SearchHit{
		{ChannelID: "C2", ChannelName: "ops", Timestamp: "1700000003.000300", SenderID: "U1", Text: "deploy done"},
	}, hits)
}

func TestGatewayMapsAuthorizationErrors(t *testing.T) {
	fake, gateway := newFakeSlack(t)
	fake.handle("conversations.history", map[string]any{"ok": false, "error": "missing_scope"})
	fake.handle("auth.test", map[string]any{"ok": false, "error": "invalid_auth"})

	_, err := gateway.ListHistory(context.Background(), "C1", 10)
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, domain.RemoteAuthorization, remote.Kind)
	assert.Equal(t, "conversations.history", remote.Op)
	assert.Equal(t, "missing_scope", remote.Detail)
	assert.Contains(t, remote.MissingScope, "channels:history")

	_, err = gateway.AuthTest(context.Background())
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, domain.RemoteAuthorization, remote.Kind)
	assert.Empty(t, remote.MissingScope)
}

func TestGatewayMapsRateLimit(t *testing.T) {
	fake, gateway := newFakeSlack(t)
	fake.handlers["users.info"] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}

	_, err := gateway.GetUser(context.Background(), "U1")
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, domain.RemoteRateLimited, remote.Kind)
	assert.Equal(t, 7*time.Second, remote.RetryAfter)
}

func TestGatewayMapsHTTPStatusAndTransportErrors(t *testing.T) {
	fake, gateway := newFakeSlack(t)
	fake.handlers["users.info"] = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}

	_, err := gateway.GetUser(context.Background(), "U1")
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, domain.RemoteTransport, remote.Kind)
	assert.ErrorIs(t, err, domain.ErrRemote)
}

func TestGatewayCancelledContext(t *testing.T) {
	_, gateway := newFakeSlack(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.ListHistory(ctx, "C1", 10)
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, domain.RemoteTransport, remote.Kind)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGatewayPacesRequests(t *testing.T) {
	fake, gateway := newFakeSlack(t)
	fake.handle("users.info", map[string]any{"ok": true, "user": map[string]any{"id": "U1", "name": "alice"}})
	gateway.limiter.SetLimit(20)
	gateway.limiter.SetBurst(1)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := gateway.GetUser(context.Background(), "U1")
		require.NoError(t, err)
	}

	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}
