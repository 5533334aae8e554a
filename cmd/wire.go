package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/bnema/slack-tui/internal/adapters/render/messages"
	tomlrepo "github.com/bnema/slack-tui/internal/adapters/repo/toml"
	chainstore "github.com/bnema/slack-tui/internal/adapters/secrets/chain"
	filestore "github.com/bnema/slack-tui/internal/adapters/secrets/file"
	passstore "github.com/bnema/slack-tui/internal/adapters/secrets/pass"
	"github.com/bnema/slack-tui/internal/adapters/slackapi"
	"github.com/bnema/slack-tui/internal/application"
	"github.com/bnema/slack-tui/internal/config"
	"github.com/bnema/slack-tui/internal/domain"
	"github.com/bnema/slack-tui/internal/logger"
	"github.com/bnema/slack-tui/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

type app struct {
	viper       *viper.Viper
	cfg         config.Config
	credentials *application.Credentials
	clock       ports.Clock
	httpClient  *http.Client
	isTerminal  func(io.Writer) bool
	renderer    func([]domain.Message, messages.RenderOptions) (string, error)

	session   *application.Session
	navigator *application.RecapNavigator
	vips      *application.VIPRegistry
}

func newApp(v *viper.Viper) *app {
	return &app{
		viper:      v,
		clock:      ports.SystemClock{},
		httpClient: &http.Client{Timeout: 30 * time.Second},
		isTerminal: isTerminal,
		renderer:   messages.Render,
	}
}

// configure loads settings and the token store. It never talks to Slack.
func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := config.Load(a.viper)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	a.cfg = cfg

	logger.Init(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if cfg.File != "" {
		logger.Debug("settings loaded", "file", cfg.File)
	}

	store, err := newSecretStore(cfg)
	if err != nil {
		return fmt.Errorf("wire token store: %w", err)
	}
	a.credentials = application.NewCredentials(store)

	return nil
}

func newSecretStore(cfg config.Config) (ports.SecretStore, error) {
	switch cfg.TokensBackend {
	case config.BackendFile:
		store, err := filestore.NewStore(cfg.TokensPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendPass:
		return passstore.NewStore(""), nil
	default:
		store, err := chainstore.NewPassFirstWithFileFallback("", cfg.TokensPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

// connect builds the Slack session on first use. No request is sent until a
// command asks for data.
func (a *app) connect(ctx context.Context) (*application.Session, error) {
	if a.session != nil {
		return a.session, nil
	}

	resolved, err := a.credentials.Resolve(ctx, a.cfg.Token)
	if err != nil {
		return nil, err
	}
	logger.Debug("token resolved", "source", resolved.Source, "kind", string(resolved.Token.Kind))

	gateway := slackapi.New(slackapi.Config{
		Token:             resolved.Token.Value,
		APIURL:            a.cfg.APIURL,
		RequestsPerSecond: a.cfg.RequestsPerSecond,
		Burst:             a.cfg.Burst,
		HTTPClient:        a.httpClient,
		Logger:            logger.L,
	})

	a.session = application.NewSession(gateway, application.NewIDRegistry(), application.SessionConfig{
		ChannelKinds: a.cfg.ChannelKinds,
		Logger:       logger.L,
	})
	a.navigator = application.NewRecapNavigator(a.session, application.RecapConfig{
		MessagesPerChannel: a.cfg.RecapMessagesPerChannel,
	})

	return a.session, nil
}

func (a *app) vipRegistry(ctx context.Context) (*application.VIPRegistry, error) {
	if a.vips != nil {
		return a.vips, nil
	}

	repo, err := tomlrepo.NewVIPRepository(a.cfg.VIPPath)
	if err != nil {
		return nil, fmt.Errorf("wire vip repository: %w", err)
	}

	registry, err := application.NewVIPRegistry(ctx, repo, sessionResolver{app: a})
	if err != nil {
		return nil, err
	}
	a.vips = registry

	return registry, nil
}

// sessionResolver defers connecting until a VIP token actually needs
// resolving, so listing VIPs works without a token.
type sessionResolver struct {
	app *app
}

func (r sessionResolver) ResolveUser(ctx context.Context, token string) (domain.User, error) {
	session, err := r.app.connect(ctx)
	if err != nil {
		return domain.User{}, err
	}
	return session.ResolveUser(ctx, token)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
