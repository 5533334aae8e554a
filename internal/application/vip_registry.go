package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/slack-tui/internal/domain"
	"github.com/bnema/slack-tui/internal/ports"
)

// UserResolver turns a human token ("@name", name or id) into a user.
type UserResolver interface {
	ResolveUser(ctx context.Context, token string) (domain.User, error)
}

// VIPRegistry is the persisted set of prioritised senders. Every mutation
// rewrites the whole set; the in-memory copy only changes once the write
// succeeded.
type VIPRegistry struct {
	repo     ports.VIPRepository
	resolver UserResolver

	mu    sync.Mutex
	users []domain.User
	ids   map[string]struct{}
}

func NewVIPRegistry(ctx context.Context, repo ports.VIPRepository, resolver UserResolver) (*VIPRegistry, error) {
	users, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vip set: %w", err)
	}

	registry := &VIPRegistry{repo: repo, resolver: resolver}
	registry.replaceLocked(dedupeUsers(users))
	return registry, nil
}

// Add marks the user behind token as VIP. Adding a present user succeeds
// without writing.
func (r *VIPRegistry) Add(ctx context.Context, token string) (domain.User, error) {
	user, err := r.resolver.ResolveUser(ctx, token)
	if err != nil {
		return domain.User{}, err
	}
	entry := domain.User{ID: user.ID, Name: user.Name}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[entry.ID]; ok {
		return entry, nil
	}

	next := append(append([]domain.User(nil), r.users...), entry)
	if err := r.repo.Save(ctx, next); err != nil {
		return domain.User{}, fmt.Errorf("save vip set: %w", err)
	}

	r.replaceLocked(next)
	return entry, nil
}

// Remove drops the user behind token from the set. A user the workspace no
// longer knows can still be removed by stored id or name; removing a user
// that is not VIP succeeds without writing.
func (r *VIPRegistry) Remove(ctx context.Context, token string) (domain.User, error) {
	user, err := r.resolver.ResolveUser(ctx, token)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, err
		}
		stored, ok := r.stored(token)
		if !ok {
			return domain.User{}, err
		}
		user = stored
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[user.ID]; !ok {
		return domain.User{ID: user.ID, Name: user.Name}, nil
	}

	next := make([]domain.User, 0, len(r.users)-1)
	var removed domain.User
	for _, entry := range r.users {
		if entry.ID == user.ID {
			removed = entry
			continue
		}
		next = append(next, entry)
	}

	if err := r.repo.Save(ctx, next); err != nil {
		return domain.User{}, fmt.Errorf("save vip set: %w", err)
	}

	r.replaceLocked(next)
	return removed, nil
}

// List returns the VIP users ordered by name.
func (r *VIPRegistry) List() []domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := append([]domain.User(nil), r.users...)
	sort.SliceStable(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users
}

func (r *VIPRegistry) IsVIP(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.ids[userID]
	return ok
}

func (r *VIPRegistry) stored(token string) (domain.User, bool) {
	ref := strings.TrimPrefix(strings.TrimSpace(token), "@")

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.users {
		if entry.ID == ref || (entry.Name != "" && entry.Name == ref) {
			return entry, true
		}
	}
	return domain.User{}, false
}

func (r *VIPRegistry) replaceLocked(users []domain.User) {
	r.users = users
	r.ids = make(map[string]struct{}, len(users))
	for _, user := range users {
		r.ids[user.ID] = struct{}{}
	}
}

func dedupeUsers(users []domain.User) []domain.User {
	seen := make(map[string]struct{}, len(users))
	out := make([]domain.User, 0, len(users))
	for _, user := range users {
		if user.ID == "" {
			continue
		}
		if _, ok := seen[user.ID]; ok {
			continue
		}
		seen[user.ID] = struct{}{}
		out = append(out, user)
	}
	return out
}
