package application

import (
	"sort"
	"strings"

	"github.com/bnema/slack-tui/internal/domain"
)

// Match scores.
const (
	scoreExact         = 100
	scoreRealNameExact = 95
	scorePrefix        = 90
	scoreSubstring     = 70
	scoreSubsequence   = 50
)

type ChannelMatch struct {
	Channel domain.Channel
	Score   int
}

type UserMatch struct {
	User  domain.User
	Score int
}

// MatchChannels ranks channels whose name resembles query, best first.
// Matching ignores case and a leading "#".
func MatchChannels(channels []domain.Channel, query string, limit int) []ChannelMatch {
	q := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(query), "#"))
	if q == "" {
		return nil
	}

	var matches []ChannelMatch
	for _, ch := range channels {
		if ch.Name == "" {
			continue
		}
		if score := nameScore(strings.ToLower(ch.Name), q, true); score > 0 {
			matches = append(matches, ChannelMatch{Channel: ch, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Channel.Name < matches[j].Channel.Name
	})

	return truncate(matches, limit)
}

// MatchUsers ranks users by name and real name, best first. Deleted users
// never match.
func MatchUsers(users []domain.User, query string, limit int) []UserMatch {
	q := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(query), "@"))
	if q == "" {
		return nil
	}

	var matches []UserMatch
	for _, user := range users {
		if user.Deleted {
			continue
		}

		score := nameScore(strings.ToLower(user.Name), q, false)
		if real := strings.ToLower(user.RealName); real != "" {
			if real == q {
				score = max(score, scoreRealNameExact)
			} else {
				score = max(score, nameScore(real, q, false))
			}
		}
		if score > 0 {
			matches = append(matches, UserMatch{User: user, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].User.Name < matches[j].User.Name
	})

	return truncate(matches, limit)
}

func nameScore(name, query string, subsequence bool) int {
	switch {
	case name == "":
		return 0
	case name == query:
		return scoreExact
	case strings.HasPrefix(name, query):
		return scorePrefix
	case strings.Contains(name, query):
		return scoreSubstring
	case subsequence && isSubsequence(query, name):
		return scoreSubsequence
	default:
		return 0
	}
}

func isSubsequence(needle, haystack string) bool {
	rest := []rune(needle)
	for _, r := range haystack {
		if len(rest) == 0 {
			break
		}
		if r == rest[0] {
			rest = rest[1:]
		}
	}
	return len(rest) == 0
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
