// Package slackapi implements the workspace gateway on the Slack Web API.
package slackapi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bnema/slack-tui/internal/domain"
	"github.com/bnema/slack-tui/internal/logger"
	"github.com/bnema/slack-tui/internal/ports"
	"github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

const conversationsPageSize = 200

type Config struct {
	Token string
	// APIURL overrides https://slack.com/api/, mostly for tests.
	APIURL            string
	RequestsPerSecond float64
	Burst             int
	HTTPClient        *http.Client
	Logger            *slog.Logger
}

// Gateway paces every Web API call through one token bucket; Slack's tier 3
// methods allow roughly one call per second per workspace.
type Gateway struct {
	client  *slack.Client
	limiter *rate.Limiter
	logger  *slog.Logger

	mu   sync.Mutex
	self *domain.Identity
}

var _ ports.Gateway = (*Gateway)(nil)

func New(cfg Config) *Gateway {
	options := []slack.Option{}
	if url := strings.TrimSpace(cfg.APIURL); url != "" {
		if !strings.HasSuffix(url, "/") {
			url += "/"
		}
		options = append(options, slack.OptionAPIURL(url))
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	options = append(options, slack.OptionHTTPClient(httpClient))

	perSecond := cfg.RequestsPerSecond
	if perSecond <= 0 {
		perSecond = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	log := cfg.Logger
	if log == nil {
		log = logger.L
	}

	return &Gateway{
		client:  slack.New(cfg.Token, options...),
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		logger:  log.With("component", "slackapi"),
	}
}

func (g *Gateway) AuthTest(ctx context.Context) (domain.Identity, error) {
	if err := g.wait(ctx, "auth.test"); err != nil {
		return domain.Identity{}, err
	}

	resp, err := g.client.AuthTestContext(ctx)
	if err != nil {
		return domain.Identity{}, g.fail("auth.test", err)
	}

	identity := domain.Identity{
		TeamID:   resp.TeamID,
		TeamName: resp.Team,
		UserID:   resp.UserID,
		UserName: resp.User,
	}

	g.mu.Lock()
	g.self = &identity
	g.mu.Unlock()

	return identity, nil
}

func (g *Gateway) ListConversations(ctx context.Context, kinds []domain.ChannelKind) ([]domain.Channel, error) {
	types := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		if t := kind.APIType(); t != "" {
			types = append(types, t)
		}
	}

	params := &slack.GetConversationsParameters{
		Types:           types,
		Limit:           conversationsPageSize,
		ExcludeArchived: true,
	}

	var channels []domain.Channel
	for {
		if err := g.wait(ctx, "conversations.list"); err != nil {
			return nil, err
		}

		page, next, err := g.client.GetConversationsContext(ctx, params)
		if err != nil {
			return nil, g.fail("conversations.list", err)
		}
		for _, ch := range page {
			channels = append(channels, toChannel(ch))
		}

		if next == "" {
			return channels, nil
		}
		params.Cursor = next
	}
}

func (g *Gateway) ListHistory(ctx context.Context, channelID string, limit int) ([]domain.HistoryRecord, error) {
	if err := g.wait(ctx, "conversations.history"); err != nil {
		return nil, err
	}

	resp, err := g.client.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Limit:     limit,
	})
	if err != nil {
		return nil, g.fail("conversations.history", err)
	}

	records := make([]domain.HistoryRecord, 0, len(resp.Messages))
	for _, msg := range resp.Messages {
		if msg.Timestamp == "" {
			continue
		}
		records = append(records, toRecord(msg))
	}

	return records, nil
}

// ListReplies returns the thread rooted at threadTS, parent first. Only the
// first page of up to limit messages is read.
func (g *Gateway) ListReplies(ctx context.Context, channelID string, threadTS string, limit int) ([]domain.HistoryRecord, error) {
	if err := g.wait(ctx, "conversations.replies"); err != nil {
		return nil, err
	}

	msgs, _, _, err := g.client.GetConversationRepliesContext(ctx, &slack.GetConversationRepliesParameters{
		ChannelID: channelID,
		Timestamp: threadTS,
		Limit:     limit,
	})
	if err != nil {
		return nil, g.fail("conversations.replies", err)
	}

	records := make([]domain.HistoryRecord, 0, len(msgs))
	for _, msg := range msgs {
		if msg.Timestamp == "" {
			continue
		}
		records = append(records, toRecord(msg))
	}

	return records, nil
}

// PostMessage sends text as the token's user. It is never retried.
func (g *Gateway) PostMessage(ctx context.Context, channelID string, text string) (domain.HistoryRecord, error) {
	return g.post(ctx, channelID, "", text)
}

// PostReply sends text into the thread rooted at threadTS. It is never
// retried.
func (g *Gateway) PostReply(ctx context.Context, channelID string, threadTS string, text string) (domain.HistoryRecord, error) {
	return g.post(ctx, channelID, threadTS, text)
}

func (g *Gateway) post(ctx context.Context, channelID, threadTS, text string) (domain.HistoryRecord, error) {
	self, err := g.identity(ctx)
	if err != nil {
		return domain.HistoryRecord{}, err
	}

	if err := g.wait(ctx, "chat.postMessage"); err != nil {
		return domain.HistoryRecord{}, err
	}

	options := []slack.MsgOption{slack.MsgOptionText(text, false)}
	if threadTS != "" {
		options = append(options, slack.MsgOptionTS(threadTS))
	}

	_, ts, err := g.client.PostMessageContext(ctx, channelID, options...)
	if err != nil {
		return domain.HistoryRecord{}, g.fail("chat.postMessage", err)
	}

	return domain.HistoryRecord{Timestamp: ts, ThreadTS: threadTS, SenderID: self.UserID, Text: text}, nil
}

func (g *Gateway) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := g.wait(ctx, "users.list"); err != nil {
		return nil, err
	}

	members, err := g.client.GetUsersContext(ctx)
	if err != nil {
		return nil, g.fail("users.list", err)
	}

	users := make([]domain.User, 0, len(members))
	for _, member := range members {
		users = append(users, toUser(member))
	}

	return users, nil
}

func (g *Gateway) GetUser(ctx context.Context, userID string) (domain.User, error) {
	if err := g.wait(ctx, "users.info"); err != nil {
		return domain.User{}, err
	}

	member, err := g.client.GetUserInfoContext(ctx, userID)
	if err != nil {
		return domain.User{}, g.fail("users.info", err)
	}

	return toUser(*member), nil
}

func (g *Gateway) Search(ctx context.Context, query string, count int) ([]domain.SearchHit, error) {
	if err := g.wait(ctx, "search.messages"); err != nil {
		return nil, err
	}

	params := slack.NewSearchParameters()
	if count > 0 {
		params.Count = count
	}

	resp, err := g.client.SearchMessagesContext(ctx, query, params)
	if err != nil {
		return nil, g.fail("search.messages", err)
	}

	hits := make([]domain.SearchHit, 0, len(resp.Matches))
	for _, match := range resp.Matches {
		hits = append(hits, domain.SearchHit{
			ChannelID:   match.Channel.ID,
			ChannelName: match.Channel.Name,
			Timestamp:   match.Timestamp,
			SenderID:    match.User,
			Text:        match.Text,
		})
	}

	return hits, nil
}

func (g *Gateway) identity(ctx context.Context) (domain.Identity, error) {
	g.mu.Lock()
	self := g.self
	g.mu.Unlock()
	if self != nil {
		return *self, nil
	}

	return g.AuthTest(ctx)
}

func (g *Gateway) wait(ctx context.Context, op string) error {
	if g.limiter.Tokens() < 1 {
		g.logger.Debug("throttling request", "op", op)
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return mapError(op, err)
	}

	g.logger.Debug("calling slack", "op", op)
	return nil
}

func (g *Gateway) fail(op string, err error) error {
	mapped := mapError(op, err)
	if remote, ok := mapped.(*domain.RemoteError); ok && remote.Kind == domain.RemoteRateLimited {
		g.logger.Warn("slack rate limit reached", "op", op, "retry_after", remote.RetryAfter)
	} else {
		g.logger.Debug("slack call failed", "op", op, "err", err)
	}
	return mapped
}

func toChannel(ch slack.Channel) domain.Channel {
	out := domain.Channel{
		ID:       ch.ID,
		Name:     ch.Name,
		Topic:    ch.Topic.Value,
		IsMember: ch.IsMember,
	}

	switch {
	case ch.IsIM:
		out.Kind = domain.ChannelDirect
		out.UserID = ch.User
		out.IsMember = true
	case ch.IsMpIM:
		out.Kind = domain.ChannelGroupDirect
		out.IsMember = true
	case ch.IsPrivate:
		out.Kind = domain.ChannelPrivate
	default:
		out.Kind = domain.ChannelPublic
	}

	if !ch.IsIM {
		members := ch.NumMembers
		out.MemberCount = &members
	}

	return out
}

func toUser(member slack.User) domain.User {
	realName := member.RealName
	if realName == "" {
		realName = member.Profile.RealName
	}

	return domain.User{
		ID:       member.ID,
		Name:     member.Name,
		RealName: realName,
		Email:    member.Profile.Email,
		Deleted:  member.Deleted,
		IsBot:    member.IsBot,
	}
}

func toRecord(msg slack.Message) domain.HistoryRecord {
	record := domain.HistoryRecord{
		Timestamp:  msg.Timestamp,
		SenderID:   sender(msg.User, msg.BotID),
		Text:       msg.Text,
		ReplyCount: msg.ReplyCount,
	}
	// Slack stamps a thread parent with its own ts as thread_ts.
	if msg.ThreadTimestamp != "" && msg.ThreadTimestamp != msg.Timestamp {
		record.ThreadTS = msg.ThreadTimestamp
	}
	return record
}

func sender(userID, botID string) string {
	if userID != "" {
		return userID
	}
	return botID
}
