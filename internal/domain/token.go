package domain

import "strings"

type TokenKind string

const (
	TokenUser              TokenKind = "user"
	TokenBot               TokenKind = "bot"
	TokenEnterprise        TokenKind = "enterprise"
	TokenEnterpriseRefresh TokenKind = "enterprise_refresh"
	TokenAppLevel          TokenKind = "app_level"
	TokenUnknown           TokenKind = "unknown"
)

// Ordered so that "xoxe." is tested before "xoxe-".
var tokenPrefixes = []struct {
	prefix string
	kind   TokenKind
}{
	{prefix: "xoxp-", kind: TokenUser},
	{prefix: "xoxb-", kind: TokenBot},
	{prefix: "xoxe.", kind: TokenEnterprise},
	{prefix: "xoxe-", kind: TokenEnterpriseRefresh},
	{prefix: "xapp-", kind: TokenAppLevel},
}

type Token struct {
	Value string
	Kind  TokenKind
}

func ParseToken(raw string) (Token, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Token{}, &ValidationError{Field: "token", Reason: "token is empty"}
	}

	for _, candidate := range tokenPrefixes {
		if strings.HasPrefix(value, candidate.prefix) {
			return Token{Value: value, Kind: candidate.kind}, nil
		}
	}

	return Token{Value: value, Kind: TokenUnknown}, nil
}

// SupportsWebAPI is false for app-level tokens, which only open Socket Mode
// connections.
func (k TokenKind) SupportsWebAPI() bool {
	return k != TokenAppLevel
}

func (k TokenKind) Label() string {
	switch k {
	case TokenUser:
		return "User OAuth Token"
	case TokenBot:
		return "Bot User OAuth Token"
	case TokenEnterprise:
		return "Enterprise token"
	case TokenEnterpriseRefresh:
		return "Enterprise refresh token"
	case TokenAppLevel:
		return "App-Level Token (Socket Mode only)"
	default:
		return "Unknown token type"
	}
}

// KnownTokenPrefixes lists the recognised prefixes in match order.
func KnownTokenPrefixes() []string {
	prefixes := make([]string, 0, len(tokenPrefixes))
	for _, candidate := range tokenPrefixes {
		prefixes = append(prefixes, candidate.prefix)
	}
	return prefixes
}
