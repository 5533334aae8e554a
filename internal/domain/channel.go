package domain

import "strings"

type ChannelKind string

const (
	ChannelPublic      ChannelKind = "public"
	ChannelPrivate     ChannelKind = "private"
	ChannelDirect      ChannelKind = "direct"
	ChannelGroupDirect ChannelKind = "group_direct"
)

// Valid reports whether k is one of the known conversation kinds.
func (k ChannelKind) Valid() bool {
	switch k {
	case ChannelPublic, ChannelPrivate, ChannelDirect, ChannelGroupDirect:
		return true
	default:
		return false
	}
}

// APIType maps the kind to the Slack conversations.list type name.
func (k ChannelKind) APIType() string {
	switch k {
	case ChannelPublic:
		return "public_channel"
	case ChannelPrivate:
		return "private_channel"
	case ChannelDirect:
		return "im"
	case ChannelGroupDirect:
		return "mpim"
	default:
		return ""
	}
}

// ParseChannelKind accepts both the local kind names and the Slack type names.
func ParseChannelKind(raw string) (ChannelKind, error) {
	switch strings.TrimSpace(raw) {
	case "public", "public_channel":
		return ChannelPublic, nil
	case "private", "private_channel":
		return ChannelPrivate, nil
	case "direct", "im":
		return ChannelDirect, nil
	case "group_direct", "mpim":
		return ChannelGroupDirect, nil
	default:
		return "", &ValidationError{Field: "channel type", Reason: "unknown type " + quote(raw)}
	}
}

type Channel struct {
	ID          string
	Name        string
	Kind        ChannelKind
	MemberCount *int
	Topic       string
	IsMember    bool
	// UserID is the counterpart of a direct conversation.
	UserID string
}

// DisplayName renders the channel the way users type it.
func (c Channel) DisplayName() string {
	switch c.Kind {
	case ChannelDirect:
		if c.Name != "" {
			return "@" + c.Name
		}
		return "@" + c.UserID
	default:
		return "#" + c.Name
	}
}
