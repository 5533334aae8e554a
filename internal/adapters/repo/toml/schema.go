package toml

import "fmt"

const currentSchemaVersion = 1

type vipFileSchema struct {
	Version int             `toml:"version"`
	Users   []vipUserSchema `toml:"users"`
}

type vipUserSchema struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

func (s *vipFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Users == nil {
		s.Users = []vipUserSchema{}
	}
}

func (s vipFileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported vip schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
