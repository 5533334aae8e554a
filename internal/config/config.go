// Package config loads settings from settings.toml, the environment and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/slack-tui/internal/domain"
	"github.com/spf13/viper"
)

const (
	appDirName = "slack-tui"
	configName = "settings"
	configType = "toml"
	envPrefix  = "SLACK_TUI"
)

// Setting keys.
const (
	KeyToken                   = "token"
	KeyChannelTypes            = "channel_types"
	KeyMessagesPerPage         = "messages_per_page"
	KeyRecapMessagesPerChannel = "recap.messages_per_channel"
	KeyVIPLimitPerChannel      = "vip.limit_per_channel"
	KeyVIPPath                 = "vip.path"
	KeyTokensPath              = "tokens.path"
	KeyTokensBackend           = "tokens.backend"
	KeyAPIURL                  = "api.url"
	KeyAPIRequestsPerSecond    = "api.requests_per_second"
	KeyAPIBurst                = "api.burst"
	KeyLogLevel                = "log.level"
	KeyLogFormat               = "log.format"
)

// Token storage backends.
const (
	BackendAuto = "auto"
	BackendFile = "file"
	BackendPass = "pass"
)

const defaultChannelTypes = "public_channel,private_channel"

type Config struct {
	Token                   string
	ChannelKinds            []domain.ChannelKind
	MessagesPerPage         int
	RecapMessagesPerChannel int
	VIPLimitPerChannel      int
	VIPPath                 string
	TokensPath              string
	TokensBackend           string
	APIURL                  string
	RequestsPerSecond       float64
	Burst                   int
	LogLevel                string
	LogFormat               string
	// File is the settings file that was read, empty when none exists.
	File string
}

// Dir returns $XDG_CONFIG_HOME/slack-tui, or ~/.config/slack-tui.
func Dir() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", appDirName), nil
}

// Load resolves every setting. Flags must already be bound on v; they win
// over SLACK_TOKEN, SLACK_TUI_TOKEN and the other environment variables,
// which win over settings.toml.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)

	v.SetDefault(KeyChannelTypes, defaultChannelTypes)
	v.SetDefault(KeyMessagesPerPage, 20)
	v.SetDefault(KeyRecapMessagesPerChannel, 10)
	v.SetDefault(KeyVIPLimitPerChannel, 50)
	v.SetDefault(KeyVIPPath, filepath.Join(dir, "vip.toml"))
	v.SetDefault(KeyTokensPath, filepath.Join(dir, "tokens.toml"))
	v.SetDefault(KeyTokensBackend, BackendAuto)
	v.SetDefault(KeyAPIURL, "")
	v.SetDefault(KeyAPIRequestsPerSecond, 1.0)
	v.SetDefault(KeyAPIBurst, 3)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")

	if err := bindEnvironment(v); err != nil {
		return Config{}, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read settings file: %w", err)
		}
	}

	kinds, err := NormalizeChannelTypes(strings.Join(v.GetStringSlice(KeyChannelTypes), ","))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Token:                   strings.TrimSpace(v.GetString(KeyToken)),
		ChannelKinds:            kinds,
		MessagesPerPage:         v.GetInt(KeyMessagesPerPage),
		RecapMessagesPerChannel: v.GetInt(KeyRecapMessagesPerChannel),
		VIPLimitPerChannel:      v.GetInt(KeyVIPLimitPerChannel),
		VIPPath:                 v.GetString(KeyVIPPath),
		TokensPath:              v.GetString(KeyTokensPath),
		TokensBackend:           strings.ToLower(strings.TrimSpace(v.GetString(KeyTokensBackend))),
		APIURL:                  strings.TrimSpace(v.GetString(KeyAPIURL)),
		RequestsPerSecond:       v.GetFloat64(KeyAPIRequestsPerSecond),
		Burst:                   v.GetInt(KeyAPIBurst),
		LogLevel:                v.GetString(KeyLogLevel),
		LogFormat:               v.GetString(KeyLogFormat),
		File:                    v.ConfigFileUsed(),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// envNames lists the variables read for each key, first match wins. Keys
// are bound one by one instead of through AutomaticEnv, which would consult
// SLACK_TUI_TOKEN before SLACK_TOKEN.
func envNames(key string) []string {
	prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	switch key {
	case KeyToken:
		return []string{"SLACK_TOKEN", prefixed}
	case KeyAPIURL:
		return []string{"SLACK_API_URL", prefixed}
	default:
		return []string{prefixed}
	}
}

func bindEnvironment(v *viper.Viper) error {
	keys := []string{
		KeyToken, KeyChannelTypes, KeyMessagesPerPage, KeyRecapMessagesPerChannel,
		KeyVIPLimitPerChannel, KeyVIPPath, KeyTokensPath, KeyTokensBackend, KeyAPIURL,
		KeyAPIRequestsPerSecond, KeyAPIBurst, KeyLogLevel, KeyLogFormat,
	}
	for _, key := range keys {
		if err := v.BindEnv(append([]string{key}, envNames(key)...)...); err != nil {
			return fmt.Errorf("bind %s environment: %w", key, err)
		}
	}
	return nil
}

func (c Config) validate() error {
	positive := map[string]int{
		KeyMessagesPerPage:         c.MessagesPerPage,
		KeyRecapMessagesPerChannel: c.RecapMessagesPerChannel,
		KeyVIPLimitPerChannel:      c.VIPLimitPerChannel,
		KeyAPIBurst:                c.Burst,
	}
	for key, value := range positive {
		if value <= 0 {
			return &domain.ValidationError{Field: key, Reason: fmt.Sprintf("must be positive, got %d", value)}
		}
	}
	if c.RequestsPerSecond <= 0 {
		return &domain.ValidationError{Field: KeyAPIRequestsPerSecond, Reason: "must be positive"}
	}

	switch c.TokensBackend {
	case BackendAuto, BackendFile, BackendPass:
	default:
		return &domain.ValidationError{Field: KeyTokensBackend, Reason: fmt.Sprintf("unknown backend %q", c.TokensBackend)}
	}

	if c.VIPPath == "" || c.TokensPath == "" {
		return errors.New("storage path is empty")
	}

	return nil
}

// NormalizeChannelTypes parses a comma separated list of conversation types,
// dropping blanks and duplicates. An empty list means public channels.
func NormalizeChannelTypes(raw string) ([]domain.ChannelKind, error) {
	var kinds []domain.ChannelKind
	seen := map[domain.ChannelKind]struct{}{}

	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		kind, err := domain.ParseChannelKind(part)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[kind]; ok {
			continue
		}
		seen[kind] = struct{}{}
		kinds = append(kinds, kind)
	}

	if len(kinds) == 0 {
		return []domain.ChannelKind{domain.ChannelPublic}, nil
	}

	return kinds, nil
}
