package naming

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/yunhoi129/adtax/internal/defs"
	"github.com/yunhoi129/adtax/internal/storage"
	"github.com/yunhoi129/adtax/pkg/models"
)

// ConfigStore persists the naming configuration as one JSON record.
type ConfigStore struct {
	store  storage.Store
	logger *zap.Logger
}

// NewConfigStore creates a ConfigStore over s. A nil logger discards output.
func NewConfigStore(s storage.Store, logger *zap.Logger) *ConfigStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfigStore{store: s, logger: logger.Named("config")}
}

// Load returns the stored configuration. A missing record, or one that is
// not valid JSON, yields DefaultConfiguration; decode failures are logged as
// a LoadError and never returned. Only storage I/O failures are errors.
func (c *ConfigStore) Load(ctx context.Context) (models.Configuration, error) {
	data, err := c.store.Get(ctx, defs.ConfigKey)
	if errors.Is(err, storage.ErrNotFound) {
		return DefaultConfiguration(), nil
	}
	if err != nil {
		return models.Configuration{}, fmt.Errorf("load configuration: %w", err)
	}

	cfg, err := decode(data)
	if err != nil {
		c.logger.Warn("stored configuration is unreadable, using defaults",
			zap.Error(&LoadError{Key: defs.ConfigKey, Cause: err}))
		return DefaultConfiguration(), nil
	}
	return cfg, nil
}

// Save validates cfg and replaces the stored record with it.
func (c *ConfigStore) Save(ctx context.Context, cfg models.Configuration) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	data, err := json.Marshal(normalize(cfg))
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	if err := c.store.Put(ctx, defs.ConfigKey, data); err != nil {
		return fmt.Errorf("save configuration: %w", err)
	}
	c.logger.Debug("configuration saved", zap.Int("variables", len(cfg.Variables)))
	return nil
}

// SetLocked stores the lock flag on the current record and returns the
// result. The rest of the record is written back as loaded, without
// validation, so a stored configuration that no longer validates can still
// be unlocked and repaired.
func (c *ConfigStore) SetLocked(ctx context.Context, locked bool) (models.Configuration, error) {
	cfg, err := c.Load(ctx)
	if err != nil {
		return models.Configuration{}, err
	}
	cfg.Locked = locked
	data, err := json.Marshal(normalize(cfg))
	if err != nil {
		return models.Configuration{}, fmt.Errorf("encode configuration: %w", err)
	}
	if err := c.store.Put(ctx, defs.ConfigKey, data); err != nil {
		return models.Configuration{}, fmt.Errorf("save configuration: %w", err)
	}
	c.logger.Debug("configuration lock changed", zap.Bool("locked", locked))
	return cfg, nil
}

// Reset deletes the stored record and returns the default configuration.
func (c *ConfigStore) Reset(ctx context.Context) (models.Configuration, error) {
	if err := c.store.Delete(ctx, defs.ConfigKey); err != nil {
		return models.Configuration{}, fmt.Errorf("reset configuration: %w", err)
	}
	c.logger.Debug("configuration reset")
	return DefaultConfiguration(), nil
}

// Export renders cfg as indented JSON with a trailing newline.
func (c *ConfigStore) Export(cfg models.Configuration) ([]byte, error) {
	return Export(cfg)
}

// Import parses and validates data, then stores it. On any parse or
// validation failure it returns an *ImportError and the stored record is
// unchanged.
func (c *ConfigStore) Import(ctx context.Context, data []byte) (models.Configuration, error) {
	cfg, err := decode(data)
	if err != nil {
		return models.Configuration{}, &ImportError{Cause: err}
	}
	if err := Validate(cfg); err != nil {
		return models.Configuration{}, &ImportError{Cause: err}
	}
	if err := c.Save(ctx, cfg); err != nil {
		return models.Configuration{}, err
	}
	return cfg, nil
}

// Export renders cfg as indented JSON with a trailing newline.
func Export(cfg models.Configuration) ([]byte, error) {
	data, err := json.MarshalIndent(normalize(cfg), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode configuration: %w", err)
	}
	return append(data, '\n'), nil
}

func decode(data []byte) (models.Configuration, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return models.Configuration{}, errors.New("empty document")
	}
	var cfg models.Configuration
	if err := json.Unmarshal(trimmed, &cfg); err != nil {
		return models.Configuration{}, err
	}
	return normalize(cfg), nil
}

// normalize replaces nil slices with empty ones so stored and exported JSON
// always carries arrays.
func normalize(cfg models.Configuration) models.Configuration {
	out := cfg.Clone()
	if out.Variables == nil {
		out.Variables = []models.Variable{}
	}
	for i := range out.Variables {
		if out.Variables[i].Values == nil {
			out.Variables[i].Values = []string{}
		}
	}
	return out
}
