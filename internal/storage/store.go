// Package storage is the local key-value layer behind every adtax record.
// Each key holds one JSON document that is read and replaced as a whole.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/yunhoi129/adtax/internal/config"
	"github.com/yunhoi129/adtax/internal/defs"
)

// Sentinel errors for storage operations.
var (
	// ErrNotFound indicates no value is stored under the key.
	ErrNotFound = errors.New("storage: key not found")

	// ErrInvalidKey indicates a key that the driver cannot address.
	ErrInvalidKey = errors.New("storage: invalid key")

	// ErrUnknownDriver indicates an unsupported driver name.
	ErrUnknownDriver = errors.New("storage: unknown driver")

	// ErrClosed indicates the store has been closed.
	ErrClosed = errors.New("storage: store closed")
)

// Store is a whole-value key-value store.
type Store interface {
	// Get returns the value under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put replaces the value under key.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the underlying resources.
	Close() error
}

// Open creates the store selected by driver. dir is the data directory;
// each driver places its files below it.
func Open(driver, dir string, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("storage")

	switch driver {
	case config.DriverFile:
		return NewFileStore(dir)
	case config.DriverBadger:
		s, err := NewBadgerStore(filepath.Join(dir, defs.BadgerSubdir), logger)
		if err != nil {
			return nil, err
		}
		return withRetry(s, logger), nil
	case config.DriverSQLite:
		s, err := NewSQLiteStore(filepath.Join(dir, defs.SQLiteDB))
		if err != nil {
			return nil, err
		}
		return withRetry(s, logger), nil
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

func checkKey(key string) error {
	if key == "" || key == "." || key == ".." || filepath.Base(key) != key {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
