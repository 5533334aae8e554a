package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/bnema/slack-tui/internal/domain"
	"github.com/bnema/slack-tui/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const vipTempFilePattern = ".vip-*.toml.tmp"

// VIPRepository stores the VIP set as one TOML document:
//
//	version = 1
//
//	[[users]]
//	id = "U012AB3CD"
//	name = "alice"
type VIPRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.VIPRepository = (*VIPRepository)(nil)

func NewVIPRepository(path string) (*VIPRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("vip path is empty")
	}

	path, err := NormalizePath(path)
	if err != nil {
		return nil, err
	}

	return &VIPRepository{path: path, mu: LockForPath(path)}, nil
}

func (r *VIPRepository) Path() string {
	return r.path
}

func (r *VIPRepository) Load(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(file.Users))
	for _, entry := range file.Users {
		users = append(users, domain.User{ID: entry.ID, Name: entry.Name})
	}

	return users, nil
}

func (r *VIPRepository) Save(ctx context.Context, users []domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := vipFileSchema{Users: make([]vipUserSchema, 0, len(users))}
	for _, user := range users {
		file.Users = append(file.Users, vipUserSchema{ID: user.ID, Name: user.Name})
	}
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode vip file: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := WriteFileAtomic(r.path, data, vipTempFilePattern); err != nil {
		return fmt.Errorf("write vip file: %w", err)
	}

	return nil
}

func (r *VIPRepository) readSchema() (vipFileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return vipFileSchema{}, nil
		}
		return vipFileSchema{}, fmt.Errorf("read vip file: %w", err)
	}

	var file vipFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return vipFileSchema{}, fmt.Errorf("decode vip file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return vipFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}
