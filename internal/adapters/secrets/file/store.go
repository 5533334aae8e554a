package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	tomlrepo "github.com/bnema/slack-tui/internal/adapters/repo/toml"
	"github.com/bnema/slack-tui/internal/domain"
	"github.com/bnema/slack-tui/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	currentSchemaVersion = 1
	tempFilePattern      = ".tokens-*.toml.tmp"
)

// tokenFileSchema is the on-disk layout of tokens.toml.
type tokenFileSchema struct {
	Version int    `toml:"version"`
	Token   string `toml:"token,omitempty"`
	Type    string `toml:"type,omitempty"`
}

// Store keeps the workspace credential in a single TOML document. Every Put
// and Delete rewrites the whole file.
type Store struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("tokens path is empty")
	}

	path, err := tomlrepo.NormalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Store{path: path, mu: tomlrepo.LockForPath(path)}, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}
	field, err := fieldFor(&file, key)
	if err != nil {
		return err
	}
	*field = value

	return s.write(file)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.read()
	if err != nil {
		return "", err
	}
	field, err := fieldFor(&file, key)
	if err != nil {
		return "", err
	}
	if *field == "" {
		return "", fmt.Errorf("file secret %q: %w", key, domain.ErrSecretNotFound)
	}

	return *field, nil
}

// Delete clears key. The file is removed once it holds nothing.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}
	field, err := fieldFor(&file, key)
	if err != nil {
		return err
	}
	if *field == "" {
		return nil
	}
	*field = ""

	if file.Token == "" && file.Type == "" {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("delete tokens file: %w", err)
		}
		return nil
	}

	return s.write(file)
}

func (s *Store) read() (tokenFileSchema, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return tokenFileSchema{Version: currentSchemaVersion}, nil
		}
		return tokenFileSchema{}, fmt.Errorf("read tokens file: %w", err)
	}

	var file tokenFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return tokenFileSchema{}, fmt.Errorf("decode tokens file: %w", err)
	}
	if file.Version > currentSchemaVersion {
		return tokenFileSchema{}, fmt.Errorf("unsupported tokens schema version %d (current %d)", file.Version, currentSchemaVersion)
	}

	return file, nil
}

func (s *Store) write(file tokenFileSchema) error {
	if file.Version == 0 {
		file.Version = currentSchemaVersion
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode tokens file: %w", err)
	}

	if err := tomlrepo.WriteFileAtomic(s.path, data, tempFilePattern); err != nil {
		return fmt.Errorf("write tokens file: %w", err)
	}

	return nil
}

func fieldFor(file *tokenFileSchema, key string) (*string, error) {
	switch strings.TrimSpace(key) {
	case ports.TokenSecretKey:
		return &file.Token, nil
	case ports.TokenTypeSecretKey:
		return &file.Type, nil
	case "":
		return nil, errors.New("secret key is empty")
	default:
		return nil, fmt.Errorf("invalid secret key %q", key)
	}
}
