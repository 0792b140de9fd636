package storage

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/yunhoi129/adtax/internal/resilience"
)

// retryStore retries writes that lost a race with another process.
type retryStore struct {
	Store
	policy resilience.RetryPolicy
	logger *zap.Logger
}

func withRetry(s Store, logger *zap.Logger) *retryStore {
	return &retryStore{
		Store:  s,
		policy: resilience.StoragePolicy(isTransient),
		logger: logger,
	}
}

// Put implements Store.
func (r *retryStore) Put(ctx context.Context, key string, value []byte) error {
	return r.retry(ctx, "put", key, func() error { return r.Store.Put(ctx, key, value) })
}

// Delete implements Store.
func (r *retryStore) Delete(ctx context.Context, key string) error {
	return r.retry(ctx, "delete", key, func() error { return r.Store.Delete(ctx, key) })
}

func (r *retryStore) retry(ctx context.Context, op, key string, fn func() error) error {
	attempt := 0
	return resilience.Retry(ctx, r.policy, func() error {
		attempt++
		err := fn()
		if err != nil && isTransient(err) {
			r.logger.Debug("storage write contended",
				zap.String("op", op), zap.String("key", key),
				zap.Int("attempt", attempt), zap.Error(err))
		}
		return err
	})
}

// isTransient reports whether err comes from lock contention: a badger
// transaction conflict or a busy or locked SQLite database.
func isTransient(err error) bool {
	if errors.Is(err, badger.ErrConflict) {
		return true
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return true
		}
	}
	return false
}
