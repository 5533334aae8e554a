package domain

import (
	"strconv"
	"strings"
	"time"
)

const LocalIDLength = 8

// MessageRef is the remote identity of a message.
type MessageRef struct {
	ChannelID string
	Timestamp string
}

// Message is a cached message. ThreadTS holds the parent's timestamp for a
// thread reply and is empty otherwise.
type Message struct {
	LocalID    string
	ChannelID  string
	Timestamp  string
	ThreadTS   string
	SenderID   string
	Text       string
	ReplyCount int
	IsVIP      bool
}

func (m Message) Ref() MessageRef {
	return MessageRef{ChannelID: m.ChannelID, Timestamp: m.Timestamp}
}

// ThreadRoot is the timestamp of the thread parent, the message itself when
// it is not a reply.
func (m Message) ThreadRoot() string {
	if m.ThreadTS != "" {
		return m.ThreadTS
	}
	return m.Timestamp
}

func (m Message) Time() time.Time {
	return ParseTimestamp(m.Timestamp)
}

// HistoryRecord is a message as returned by the gateway, before it gets a local id.
type HistoryRecord struct {
	Timestamp  string
	ThreadTS   string
	SenderID   string
	Text       string
	ReplyCount int
}

type SearchHit struct {
	ChannelID   string
	ChannelName string
	Timestamp   string
	SenderID    string
	Text        string
}

// ParseTimestamp converts a Slack "seconds.micros" timestamp. Unparseable input
// yields the zero time.
func ParseTimestamp(ts string) time.Time {
	secPart, fracPart, _ := strings.Cut(ts, ".")
	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return time.Time{}
	}

	var nsec int64
	if fracPart != "" {
		if len(fracPart) > 9 {
			fracPart = fracPart[:9]
		}
		fracPart += strings.Repeat("0", 9-len(fracPart))
		nsec, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			nsec = 0
		}
	}

	return time.Unix(sec, nsec)
}
