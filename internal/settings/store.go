package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-ini/ini"
)

// Store persists boolean preferences by key
type Store interface {
	Bool(key string, def bool) (bool, error)
	SetBool(key string, value bool) error
}

// IniStore keeps preferences in the default section of an ini file
type IniStore struct {
	mu   sync.Mutex
	path string
}

func NewIniStore(path string) *IniStore {
	return &IniStore{path: path}
}

func (s *IniStore) load() (*ini.File, error) {
	file, err := ini.LoadSources(ini.LoadOptions{Loose: true}, s.path)
	if err != nil {
		return nil, fmt.Errorf("load settings %s: %w", s.path, err)
	}
	return file, nil
}

// Bool returns def when the key is absent
func (s *IniStore) Bool(key string, def bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return def, err
	}
	k := file.Section("").Key(key)
	if k.String() == "" {
		return def, nil
	}
	v, err := k.Bool()
	if err != nil {
		return def, fmt.Errorf("settings %s=%q: %w", key, k.String(), err)
	}
	return v, nil
}

func (s *IniStore) SetBool(key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return err
	}
	file.Section("").Key(key).SetValue(fmt.Sprintf("%t", value))

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := file.SaveTo(tmp); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return os.Rename(tmp, s.path)
}

// MemoryStore keeps preferences in memory
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]bool)}
}

func (s *MemoryStore) Bool(key string, def bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	return def, nil
}

func (s *MemoryStore) SetBool(key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

var (
	_ Store = (*IniStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
