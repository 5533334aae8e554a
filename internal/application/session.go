package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/slack-tui/internal/domain"
	"github.com/bnema/slack-tui/internal/logger"
	"github.com/bnema/slack-tui/internal/ports"
	"golang.org/x/sync/singleflight"
)

// DefaultChannelKinds is the listing used when the session is not configured
// with an explicit set.
var DefaultChannelKinds = []domain.ChannelKind{domain.ChannelPublic, domain.ChannelPrivate}

type SessionConfig struct {
	ChannelKinds []domain.ChannelKind
	Logger       *slog.Logger
}

// Session is the read-through cache in front of the remote gateway. It is
// built once per process and handed to every consumer. Entries never expire;
// message caches only grow so that local ids stay stable.
//
// Concurrent misses on the same key share one remote fetch. History and
// thread fetches are keyed by conversation, so callers asking for different
// limits still wait on a single request.
type Session struct {
	gateway ports.Gateway
	ids     *IDRegistry
	kinds   []domain.ChannelKind
	logger  *slog.Logger
	flights singleflight.Group

	mu              sync.RWMutex
	identity        *domain.Identity
	channelList     []domain.Channel
	channelsLoaded  bool
	channelsByID    map[string]domain.Channel
	channelIDByName map[string]string
	channelHints    map[string]string
	usersByID       map[string]domain.User
	userIDByName    map[string]string
	usersListed     bool
	messages        map[string]domain.Message
	channelMessages map[string][]string
	historyLimits   map[string]int
	threads         map[string][]string
	threadLimits    map[string]int
	wants           map[string]int
	searches        map[string][]string
}

func NewSession(gateway ports.Gateway, ids *IDRegistry, cfg SessionConfig) *Session {
	if ids == nil {
		ids = NewIDRegistry()
	}
	kinds := cfg.ChannelKinds
	if len(kinds) == 0 {
		kinds = DefaultChannelKinds
	}
	log := cfg.Logger
	if log == nil {
		log = logger.L
	}

	return &Session{
		gateway:         gateway,
		ids:             ids,
		kinds:           append([]domain.ChannelKind(nil), kinds...),
		logger:          log.With("component", "session"),
		channelsByID:    map[string]domain.Channel{},
		channelIDByName: map[string]string{},
		channelHints:    map[string]string{},
		usersByID:       map[string]domain.User{},
		userIDByName:    map[string]string{},
		messages:        map[string]domain.Message{},
		channelMessages: map[string][]string{},
		historyLimits:   map[string]int{},
		threads:         map[string][]string{},
		threadLimits:    map[string]int{},
		wants:           map[string]int{},
		searches:        map[string][]string{},
	}
}

func (s *Session) IDs() *IDRegistry {
	return s.ids
}

// Identity returns the workspace principal behind the current credential.
func (s *Session) Identity(ctx context.Context) (domain.Identity, error) {
	s.mu.RLock()
	cached := s.identity
	s.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}

	err := s.flight(ctx, "identity", func(ctx context.Context) error {
		identity, err := s.gateway.AuthTest(ctx)
		if err != nil {
			return domain.AsRemoteError("auth.test", err)
		}

		s.mu.Lock()
		s.identity = &identity
		s.mu.Unlock()
		return nil
	})
	if err != nil {
		return domain.Identity{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.identity, nil
}

// Channels returns the channel listing for the configured kinds, in gateway
// order. forceRefresh bypasses the listing cache only.
func (s *Session) Channels(ctx context.Context, forceRefresh bool) ([]domain.Channel, error) {
	if !forceRefresh {
		if list, ok := s.cachedChannelList(); ok {
			s.logger.Debug("cache hit", "key", "channels")
			return list, nil
		}
	}

	if err := s.loadChannels(ctx, s.kinds, forceRefresh); err != nil {
		return nil, err
	}

	list, _ := s.cachedChannelList()
	return list, nil
}

// ResolveChannel accepts "#name", "@user" for the direct conversation with a
// user, or a raw channel id. Name matching is exact and case-sensitive.
func (s *Session) ResolveChannel(ctx context.Context, token string) (domain.Channel, error) {
	raw := strings.TrimSpace(token)
	if raw == "" {
		return domain.Channel{}, &domain.ValidationError{Field: "channel", Reason: "channel name is empty"}
	}

	if strings.HasPrefix(raw, "@") {
		return s.resolveDirect(ctx, raw)
	}

	if raw == "#" {
		return domain.Channel{}, &domain.ValidationError{Field: "channel", Reason: "channel name is empty"}
	}

	lookup := func() (domain.Channel, bool) {
		if name, ok := strings.CutPrefix(raw, "#"); ok {
			return s.channelByName(name)
		}
		if ch, ok := s.channelByID(raw); ok {
			return ch, true
		}
		return s.channelByName(raw)
	}

	if ch, ok := lookup(); ok {
		return ch, nil
	}

	s.logger.Debug("cache miss", "key", "channel", "ref", raw)
	if err := s.loadChannels(ctx, s.kinds, true); err != nil {
		return domain.Channel{}, err
	}

	if ch, ok := lookup(); ok {
		return ch, nil
	}

	return domain.Channel{}, &domain.NotFoundError{Kind: "channel", Ref: raw}
}

func (s *Session) resolveDirect(ctx context.Context, raw string) (domain.Channel, error) {
	user, err := s.ResolveUser(ctx, raw)
	if err != nil {
		return domain.Channel{}, err
	}

	if ch, ok := s.directChannel(user.ID); ok {
		return ch, nil
	}

	if err := s.loadChannels(ctx, []domain.ChannelKind{domain.ChannelDirect}, true); err != nil {
		return domain.Channel{}, err
	}

	if ch, ok := s.directChannel(user.ID); ok {
		return ch, nil
	}

	return domain.Channel{}, &domain.NotFoundError{Kind: "direct conversation", Ref: raw}
}

// ResolveUser accepts "@name", a bare name or a user id.
func (s *Session) ResolveUser(ctx context.Context, token string) (domain.User, error) {
	raw := strings.TrimSpace(token)
	name := strings.TrimPrefix(raw, "@")
	if name == "" {
		return domain.User{}, &domain.ValidationError{Field: "user", Reason: "user name is empty"}
	}

	lookup := func() (domain.User, bool) {
		if user, ok := s.userByID(name); ok {
			return user, true
		}
		return s.userByName(name)
	}

	if user, ok := lookup(); ok {
		return user, nil
	}

	s.logger.Debug("cache miss", "key", "user", "ref", raw)
	if err := s.loadUsers(ctx); err != nil {
		return domain.User{}, err
	}

	if user, ok := lookup(); ok {
		return user, nil
	}

	return domain.User{}, &domain.NotFoundError{Kind: "user", Ref: raw}
}

// User looks up a single user by id.
func (s *Session) User(ctx context.Context, userID string) (domain.User, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.User{}, &domain.ValidationError{Field: "user", Reason: "user id is empty"}
	}

	if user, ok := s.userByID(userID); ok {
		return user, nil
	}

	err := s.flight(ctx, "user:"+userID, func(ctx context.Context) error {
		if _, ok := s.userByID(userID); ok {
			return nil
		}

		user, err := s.gateway.GetUser(ctx, userID)
		if err != nil {
			return domain.AsRemoteError("users.info", err)
		}

		s.mu.Lock()
		s.indexUserLocked(user)
		s.mu.Unlock()
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	if user, ok := s.userByID(userID); ok {
		return user, nil
	}

	return domain.User{}, &domain.NotFoundError{Kind: "user", Ref: userID}
}

// Messages returns up to limit of the most recent messages of a channel,
// oldest first.
func (s *Session) Messages(ctx context.Context, channelID string, limit int) ([]domain.Message, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, &domain.ValidationError{Field: "channel", Reason: "channel id is empty"}
	}
	if limit <= 0 {
		return nil, &domain.ValidationError{Field: "limit", Reason: "limit must be positive"}
	}

	if messages, ok := s.cachedHistory(channelID, limit); ok {
		s.logger.Debug("cache hit", "key", "history", "channel", channelID, "limit", limit)
		return messages, nil
	}

	err := s.fill(ctx, "history:"+channelID, limit,
		func(n int) bool { return s.fetchedAtLeast(s.historyLimits, channelID, n) },
		func(ctx context.Context, want int) error {
			s.logger.Debug("cache miss", "key", "history", "channel", channelID, "limit", want)
			records, err := s.gateway.ListHistory(ctx, channelID, want)
			if err != nil {
				return domain.AsRemoteError("conversations.history", err)
			}

			s.mu.Lock()
			defer s.mu.Unlock()
			s.storeMessagesLocked(channelID, records)
			s.historyLimits[channelID] = max(s.historyLimits[channelID], want)
			return nil
		})
	if err != nil {
		return nil, err
	}

	messages, _ := s.cachedHistory(channelID, limit)
	return messages, nil
}

// Thread returns the first limit messages of the thread a cached message
// belongs to, parent first. The message may be the parent or any reply.
func (s *Session) Thread(ctx context.Context, localID string, limit int) ([]domain.Message, error) {
	if limit <= 0 {
		return nil, &domain.ValidationError{Field: "limit", Reason: "limit must be positive"}
	}

	msg, err := s.Message(localID)
	if err != nil {
		return nil, err
	}
	channelID, root := msg.ChannelID, msg.ThreadRoot()
	key := threadKey(channelID, root)

	if replies, ok := s.cachedThread(key, limit); ok {
		s.logger.Debug("cache hit", "key", "thread", "thread", key, "limit", limit)
		return replies, nil
	}

	err = s.fill(ctx, "thread:"+key, limit,
		func(n int) bool { return s.fetchedAtLeast(s.threadLimits, key, n) },
		func(ctx context.Context, want int) error {
			s.logger.Debug("cache miss", "key", "thread", "thread", key, "limit", want)
			records, err := s.gateway.ListReplies(ctx, channelID, root, want)
			if err != nil {
				return domain.AsRemoteError("conversations.replies", err)
			}

			s.mu.Lock()
			defer s.mu.Unlock()
			ids := make([]string, 0, len(records))
			for _, record := range records {
				ids = append(ids, s.recordLocked(channelID, record))
			}
			s.threads[key] = s.mergeLocked(s.threads[key], ids...)
			s.threadLimits[key] = max(s.threadLimits[key], want)
			return nil
		})
	if err != nil {
		return nil, err
	}

	replies, _ := s.cachedThread(key, limit)
	return replies, nil
}

// SendMessage posts text to a channel and caches the posted message. It is
// never retried here: two calls post two messages.
func (s *Session) SendMessage(ctx context.Context, channelID string, text string) (domain.Message, error) {
	if strings.TrimSpace(channelID) == "" {
		return domain.Message{}, &domain.ValidationError{Field: "channel", Reason: "channel id is empty"}
	}
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, &domain.ValidationError{Field: "message", Reason: "message text is empty"}
	}

	record, err := s.gateway.PostMessage(ctx, channelID, text)
	if err != nil {
		return domain.Message{}, domain.AsRemoteError("chat.postMessage", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.storeMessagesLocked(channelID, []domain.HistoryRecord{record})

	return s.messages[ids[0]], nil
}

// SendReply posts text into the thread of a cached message. Like
// SendMessage it is never retried.
func (s *Session) SendReply(ctx context.Context, localID string, text string) (domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, &domain.ValidationError{Field: "message", Reason: "message text is empty"}
	}

	parent, err := s.Message(localID)
	if err != nil {
		return domain.Message{}, err
	}
	channelID, root := parent.ChannelID, parent.ThreadRoot()

	record, err := s.gateway.PostReply(ctx, channelID, root, text)
	if err != nil {
		return domain.Message{}, domain.AsRemoteError("chat.postMessage", err)
	}
	if record.ThreadTS == "" {
		record.ThreadTS = root
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.recordLocked(channelID, record)
	key := threadKey(channelID, root)
	if seq, ok := s.threads[key]; ok {
		s.threads[key] = s.mergeLocked(seq, id)
	}
	rootID := s.ids.Assign(channelID, root)
	if head, ok := s.messages[rootID]; ok {
		head.ReplyCount++
		s.messages[rootID] = head
	}

	return s.messages[id], nil
}

// SearchMessages runs a full-text search. Results are cached per query and
// keep the gateway's relevance order.
func (s *Session) SearchMessages(ctx context.Context, query string, count int) ([]domain.Message, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &domain.ValidationError{Field: "query", Reason: "search query is empty"}
	}
	if count <= 0 {
		return nil, &domain.ValidationError{Field: "count", Reason: "count must be positive"}
	}

	key := fmt.Sprintf("search:%d:%s", count, query)
	if messages, ok := s.cachedSearch(key); ok {
		s.logger.Debug("cache hit", "key", "search", "query", query)
		return messages, nil
	}

	err := s.flight(ctx, key, func(ctx context.Context) error {
		if _, ok := s.cachedSearch(key); ok {
			return nil
		}

		hits, err := s.gateway.Search(ctx, query, count)
		if err != nil {
			return domain.AsRemoteError("search.messages", err)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		ids := make([]string, 0, len(hits))
		for _, hit := range hits {
			if hit.ChannelID == "" {
				continue
			}
			id := s.ids.Assign(hit.ChannelID, hit.Timestamp)
			if _, known := s.messages[id]; !known {
				s.messages[id] = domain.Message{
					LocalID:   id,
					ChannelID: hit.ChannelID,
					Timestamp: hit.Timestamp,
					SenderID:  hit.SenderID,
					Text:      hit.Text,
				}
			}
			if hit.ChannelName != "" {
				s.channelHints[hit.ChannelID] = hit.ChannelName
			}
			ids = append(ids, id)
		}
		s.searches[key] = ids
		return nil
	})
	if err != nil {
		return nil, err
	}

	messages, _ := s.cachedSearch(key)
	return messages, nil
}

// Message looks up a cached message by its local id.
func (s *Session) Message(localID string) (domain.Message, error) {
	localID = strings.TrimSpace(localID)
	if _, err := s.ids.Resolve(localID); err != nil {
		return domain.Message{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if msg, ok := s.messages[localID]; ok {
		return msg, nil
	}

	return domain.Message{}, &domain.NotFoundError{Kind: "message", Ref: localID}
}

// ChannelLabel renders a channel id for display without a remote call.
func (s *Session) ChannelLabel(channelID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ch, ok := s.channelsByID[channelID]; ok {
		if ch.Kind == domain.ChannelDirect {
			if user, ok := s.usersByID[ch.UserID]; ok {
				return "@" + user.Name
			}
		}
		return ch.DisplayName()
	}
	if name, ok := s.channelHints[channelID]; ok {
		return "#" + name
	}

	return channelID
}

// Users returns every known user, listing the workspace once if needed.
func (s *Session) Users(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	listed := s.usersListed
	s.mu.RUnlock()

	if !listed {
		if err := s.loadUsers(ctx); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.usersByID))
	for _, user := range s.usersByID {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

// flight runs fetch at most once per key at a time; concurrent callers wait
// for the running fetch. The fetch runs detached from every caller's
// cancellation and is bounded by the gateway's own request timeout, so a
// caller that gives up never fails the others.
func (s *Session) flight(ctx context.Context, key string, fetch func(context.Context) error) error {
	detached := context.WithoutCancel(ctx)
	result := s.flights.DoChan(key, func() (any, error) {
		return nil, fetch(detached)
	})

	select {
	case res := <-result:
		return res.Err
	case <-ctx.Done():
		return domain.AsRemoteError(key, ctx.Err())
	}
}

// fill fetches until covered(limit) holds. Callers register what they need
// before joining the flight and the leader asks for the largest registered
// limit. A caller that joined after the leader sent its request waits for it
// and then starts the next fetch, so one key never has two requests out.
func (s *Session) fill(ctx context.Context, key string, limit int, covered func(int) bool, fetch func(context.Context, int) error) error {
	for !covered(limit) {
		s.raiseWant(key, limit)
		err := s.flight(ctx, key, func(ctx context.Context) error {
			want := s.takeWant(key, limit)
			if covered(want) {
				return nil
			}
			return fetch(ctx, want)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) raiseWant(key string, limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wants[key] = max(s.wants[key], limit)
}

func (s *Session) takeWant(key string, limit int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := max(s.wants[key], limit)
	delete(s.wants, key)
	return want
}

// loadChannels shares one flight per kinds set between plain and forced
// loads. A forced load that joins a running fetch takes its result.
func (s *Session) loadChannels(ctx context.Context, kinds []domain.ChannelKind, force bool) error {
	primary := sameKinds(kinds, s.kinds)

	err := s.flight(ctx, "channels:"+kindsKey(kinds), func(ctx context.Context) error {
		if primary && !force {
			if _, ok := s.cachedChannelList(); ok {
				return nil
			}
		}

		s.logger.Debug("fetching conversations", "kinds", kindsKey(kinds))
		channels, err := s.gateway.ListConversations(ctx, kinds)
		if err != nil {
			return domain.AsRemoteError("conversations.list", err)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		for _, ch := range channels {
			s.indexChannelLocked(ch)
		}
		if primary {
			s.channelList = append([]domain.Channel(nil), channels...)
			s.channelsLoaded = true
		}
		return nil
	})

	return err
}

func (s *Session) loadUsers(ctx context.Context) error {
	err := s.flight(ctx, "users", func(ctx context.Context) error {
		users, err := s.gateway.ListUsers(ctx)
		if err != nil {
			return domain.AsRemoteError("users.list", err)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		for _, user := range users {
			s.indexUserLocked(user)
		}
		s.usersListed = true
		return nil
	})

	return err
}

// storeMessagesLocked stamps records with local ids and merges them into the
// channel's timestamp-ordered sequence. It returns the ids in record order.
func (s *Session) storeMessagesLocked(channelID string, records []domain.HistoryRecord) []string {
	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, s.recordLocked(channelID, record))
	}
	s.channelMessages[channelID] = s.mergeLocked(s.channelMessages[channelID], ids...)

	return ids
}

func (s *Session) recordLocked(channelID string, record domain.HistoryRecord) string {
	id := s.ids.Assign(channelID, record.Timestamp)
	s.messages[id] = domain.Message{
		LocalID:    id,
		ChannelID:  channelID,
		Timestamp:  record.Timestamp,
		ThreadTS:   record.ThreadTS,
		SenderID:   record.SenderID,
		Text:       record.Text,
		ReplyCount: record.ReplyCount,
	}
	return id
}

// mergeLocked adds ids missing from sequence and keeps it in timestamp order.
func (s *Session) mergeLocked(sequence []string, ids ...string) []string {
	present := make(map[string]struct{}, len(sequence))
	for _, id := range sequence {
		present[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			present[id] = struct{}{}
			sequence = append(sequence, id)
		}
	}

	sort.SliceStable(sequence, func(i, j int) bool {
		return s.messages[sequence[i]].Timestamp < s.messages[sequence[j]].Timestamp
	})
	return sequence
}

func (s *Session) indexChannelLocked(ch domain.Channel) {
	s.channelsByID[ch.ID] = ch
	if ch.Name != "" {
		s.channelIDByName[ch.Name] = ch.ID
	}
}

func (s *Session) indexUserLocked(user domain.User) {
	s.usersByID[user.ID] = user
	if user.Name != "" {
		s.userIDByName[user.Name] = user.ID
	}
}

func (s *Session) cachedChannelList() ([]domain.Channel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.channelsLoaded {
		return nil, false
	}
	return append([]domain.Channel(nil), s.channelList...), true
}

func (s *Session) cachedHistory(channelID string, limit int) ([]domain.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fetched, ok := s.historyLimits[channelID]
	if !ok || fetched < limit {
		return nil, false
	}

	sequence := s.channelMessages[channelID]
	if len(sequence) > limit {
		sequence = sequence[len(sequence)-limit:]
	}
	messages := make([]domain.Message, 0, len(sequence))
	for _, id := range sequence {
		messages = append(messages, s.messages[id])
	}
	return messages, true
}

func (s *Session) cachedThread(key string, limit int) ([]domain.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.threadLimits[key] < limit {
		return nil, false
	}

	sequence := s.threads[key]
	if len(sequence) > limit {
		sequence = sequence[:limit]
	}
	messages := make([]domain.Message, 0, len(sequence))
	for _, id := range sequence {
		messages = append(messages, s.messages[id])
	}
	return messages, true
}

func (s *Session) fetchedAtLeast(limits map[string]int, key string, n int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fetched, ok := limits[key]
	return ok && fetched >= n
}

func (s *Session) cachedSearch(key string) ([]domain.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, ok := s.searches[key]
	if !ok {
		return nil, false
	}
	messages := make([]domain.Message, 0, len(ids))
	for _, id := range ids {
		messages = append(messages, s.messages[id])
	}
	return messages, true
}

func (s *Session) channelByID(id string) (domain.Channel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ch, ok := s.channelsByID[id]
	return ch, ok
}

func (s *Session) channelByName(name string) (domain.Channel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.channelIDByName[name]
	if !ok {
		return domain.Channel{}, false
	}
	ch, ok := s.channelsByID[id]
	return ch, ok
}

func (s *Session) directChannel(userID string) (domain.Channel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ch := range s.channelsByID {
		if ch.Kind == domain.ChannelDirect && ch.UserID == userID {
			return ch, true
		}
	}
	return domain.Channel{}, false
}

func (s *Session) userByID(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByID[id]
	return user, ok
}

func (s *Session) userByName(name string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userIDByName[name]
	if !ok {
		return domain.User{}, false
	}
	user, ok := s.usersByID[id]
	return user, ok
}

func threadKey(channelID, root string) string {
	return channelID + ":" + root
}

func kindsKey(kinds []domain.ChannelKind) string {
	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		parts = append(parts, string(kind))
	}
	return strings.Join(parts, ",")
}

func sameKinds(a, b []domain.ChannelKind) bool {
	return kindsKey(a) == kindsKey(b)
}
