package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yunhoi129/adtax/internal/defs"
)

// DataDirEnv names the environment variable that overrides the data directory.
const DataDirEnv = "ADTAX_DATA_DIR"

// Loader reads settings from the data directory.
// Problems that do not prevent startup are collected as warnings instead of
// failing, since the logger that would report them is configured from the
// loaded settings.
type Loader struct {
	mu       sync.RWMutex
	warnings []string
	environ  map[string]string
	file     *Settings
}

// NewLoader creates a new Loader that reads the process environment.
func NewLoader() *Loader {
	return &Loader{}
}

// NewLoaderWithEnv creates a Loader that reads overrides from environ instead
// of the process environment. A .env file is not consulted in that mode.
func NewLoaderWithEnv(environ map[string]string) *Loader {
	return &Loader{environ: environ}
}

// Load reads settings.yaml from dataDir, applies .env and ADTAX_* environment
// overrides, and returns the result. A missing, malformed or invalid settings
// file yields defaults plus a warning. Invalid environment values are an
// error. The returned settings are not validated, since command-line flags
// may still override them.
func (l *Loader) Load(dataDir string) (*Settings, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.warnings = nil
	file := NewDefaultSettings()

	path := filepath.Join(filepath.Clean(dataDir), defs.SettingsYAML)
	if err := loadYAMLFile(path, file); err != nil {
		l.warnings = append(l.warnings, fmt.Sprintf("settings file ignored, using defaults: %v", err))
		file = NewDefaultSettings()
	} else if err := Validate(file); err != nil {
		l.warnings = append(l.warnings, fmt.Sprintf("settings file ignored, using defaults: %v", err))
		file = NewDefaultSettings()
	}
	fileCopy := *file
	l.file = &fileCopy

	if l.environ == nil {
		dotenv := filepath.Join(filepath.Clean(dataDir), defs.DotEnv)
		if _, err := os.Stat(dotenv); err == nil {
			// godotenv.Load never overrides variables already set in the process.
			if err := godotenv.Load(dotenv); err != nil {
				l.warnings = append(l.warnings, fmt.Sprintf("load %s: %v", dotenv, err))
			}
		}
	}

	s := *file
	if err := l.applyEnv(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// FileLayer returns a copy of the settings read from settings.yaml by the
// last Load, before environment overrides. It is nil before Load.
func (l *Loader) FileLayer() *Settings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.file == nil {
		return nil
	}
	cp := *l.file
	return &cp
}

// Warnings returns the non-fatal problems found by the last Load.
func (l *Loader) Warnings() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.warnings)
}

func (l *Loader) applyEnv(s *Settings) error {
	var err error
	if l.environ != nil {
		err = env.ParseWithOptions(s, env.Options{Environment: l.environ})
	} else {
		err = env.Parse(s)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEnv, err)
	}
	return nil
}

// loadYAMLFile decodes path into target. A missing file is not an error.
func loadYAMLFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidYAML, filepath.Base(path), err)
	}
	return nil
}

// ResolveDataDir picks the data directory: the flag value, then
// ADTAX_DATA_DIR, then <user config dir>/adtax.
func ResolveDataDir(flagValue string) (string, error) {
	if flagValue != "" {
		return filepath.Clean(flagValue), nil
	}
	if v := os.Getenv(DataDirEnv); v != "" {
		return filepath.Clean(v), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoDataDir, err)
	}
	return filepath.Join(base, defs.AppDir), nil
}
