package application

import (
	"encoding/hex"
	"strconv"
	"sync"

	"github.com/bnema/slack-tui/internal/domain"
	"github.com/zeebo/blake3"
)

// IDRegistry hands out the short local ids users type to refer to messages.
// An id, once issued, always maps to the same message for the lifetime of the
// registry.
type IDRegistry struct {
	digest func(input string) string

	mu    sync.Mutex
	byID  map[string]domain.MessageRef
	byRef map[domain.MessageRef]string
}

func NewIDRegistry() *IDRegistry {
	return newIDRegistry(blake3Digest)
}

func newIDRegistry(digest func(string) string) *IDRegistry {
	return &IDRegistry{
		digest: digest,
		byID:   map[string]domain.MessageRef{},
		byRef:  map[domain.MessageRef]string{},
	}
}

// Assign returns the local id of the message at (channelID, ts), issuing a new
// one on first sight. When the truncated digest is already taken by another
// message the input is perturbed with an attempt counter; the first message to
// claim an id keeps it.
func (r *IDRegistry) Assign(channelID, ts string) string {
	ref := domain.MessageRef{ChannelID: channelID, Timestamp: ts}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byRef[ref]; ok {
		return id
	}

	base := channelID + ":" + ts
	input := base
	for attempt := 1; ; attempt++ {
		id := truncateID(r.digest(input))
		if _, taken := r.byID[id]; !taken {
			r.byID[id] = ref
			r.byRef[ref] = id
			return id
		}
		input = base + "#" + strconv.Itoa(attempt)
	}
}

func (r *IDRegistry) Resolve(localID string) (domain.MessageRef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref, ok := r.byID[localID]
	if !ok {
		return domain.MessageRef{}, &domain.NotFoundError{Kind: "message", Ref: localID}
	}

	return ref, nil
}

func (r *IDRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.byID)
}

func blake3Digest(input string) string {
	sum := blake3.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

func truncateID(digest string) string {
	if len(digest) < domain.LocalIDLength {
		return digest + zeroPad[:domain.LocalIDLength-len(digest)]
	}
	return digest[:domain.LocalIDLength]
}

const zeroPad = "00000000"
