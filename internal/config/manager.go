package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/yunhoi129/adtax/internal/defs"
)

// Manager owns the settings of one data directory.
// It is thread-safe via sync.RWMutex.
type Manager struct {
	mu       sync.RWMutex
	dataDir  string
	settings *Settings
	file     *Settings
	loader   *Loader
}

// NewManager creates a Manager backed by loader. A nil loader reads the
// process environment.
func NewManager(loader *Loader) *Manager {
	if loader == nil {
		loader = NewLoader()
	}
	return &Manager{loader: loader}
}

// Load reads the settings of dataDir. The result includes environment
// overrides and is validated by the caller once flags are applied.
func (m *Manager) Load(dataDir string) (*Settings, error) {
	s, err := m.loader.Load(dataDir)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.dataDir = dataDir
	m.settings = s
	m.file = m.loader.FileLayer()
	return m.copyLocked(), nil
}

// File returns a copy of the settings as stored in settings.yaml, without
// environment overrides, or nil before Load. Edit this copy before Save.
func (m *Manager) File() *Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.file == nil {
		return nil
	}
	cp := *m.file
	return &cp
}

// Get returns a copy of the loaded settings, or nil before Load.
func (m *Manager) Get() *Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return nil
	}
	return m.copyLocked()
}

// Warnings returns the non-fatal problems found while loading.
func (m *Manager) Warnings() []string {
	return m.loader.Warnings()
}

// DataDir returns the directory passed to Load.
func (m *Manager) DataDir() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dataDir
}

// Save validates s and writes it to settings.yaml in the data directory.
// s replaces the file layer; the effective settings of this run are kept.
func (m *Manager) Save(s *Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.settings == nil {
		return ErrNotInitialized
	}
	if err := Validate(s); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.MkdirAll(m.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := atomicWrite(filepath.Join(m.dataDir, defs.SettingsYAML), data); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	cp := *s
	m.file = &cp
	return nil
}

func (m *Manager) copyLocked() *Settings {
	cp := *m.settings
	return &cp
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".adtax-settings-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
