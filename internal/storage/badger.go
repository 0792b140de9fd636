package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

var _ Store = (*BadgerStore)(nil)

// BadgerStore keeps values in a BadgerDB database.
type BadgerStore struct {
	db     *badger.DB
	path   string
	logger *zap.Logger
}

// NewBadgerStore opens (or creates) the database at path.
func NewBadgerStore(path string, logger *zap.Logger) (*BadgerStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = &badgerLogAdapter{logger: logger.Sugar()}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	logger.Debug("badger store opened", zap.String("path", path))
	return &BadgerStore{db: db, path: path, logger: logger}, nil
}

// Get implements Store.
func (s *BadgerStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkKey(key); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if errors.Is(err, badger.ErrDBClosed) {
		return nil, ErrClosed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// Put implements Store.
func (s *BadgerStore) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}
	return nil
}

// Delete implements Store.
func (s *BadgerStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Close implements Store.
func (s *BadgerStore) Close() error {
	if s.db == nil {
		return nil
	}
	s.logger.Debug("closing badger store", zap.String("path", s.path))
	return s.db.Close()
}

// badgerLogAdapter adapts zap to BadgerDB's logger interface.
type badgerLogAdapter struct {
	logger *zap.SugaredLogger
}

// Errorf implements badger.Logger.
func (l *badgerLogAdapter) Errorf(format string, args ...any) {
	l.logger.Errorf("badger: "+format, args...)
}

// Warningf implements badger.Logger.
func (l *badgerLogAdapter) Warningf(format string, args ...any) {
	l.logger.Warnf("badger: "+format, args...)
}

// Infof implements badger.Logger.
func (l *badgerLogAdapter) Infof(format string, args ...any) {
	l.logger.Debugf("badger: "+format, args...)
}

// Debugf implements badger.Logger.
func (l *badgerLogAdapter) Debugf(format string, args ...any) {
	l.logger.Debugf("badger: "+format, args...)
}
