// Package history keeps the append-only log of generated names and derives
// the usage breakdowns shown by the stats view.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/yunhoi129/adtax/internal/defs"
	"github.com/yunhoi129/adtax/internal/storage"
	"github.com/yunhoi129/adtax/pkg/models"
)

// Store persists the history log as one JSON array. The log is unbounded.
type Store struct {
	store  storage.Store
	logger *zap.Logger
}

// NewStore creates a Store over s. A nil logger discards output.
func NewStore(s storage.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{store: s, logger: logger.Named("history")}
}

// List returns every entry in the order recorded. A record that cannot be
// decoded is logged and treated as an empty log.
func (h *Store) List(ctx context.Context) ([]models.GeneratedNameRecord, error) {
	data, err := h.store.Get(ctx, defs.HistoryKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.GeneratedNameRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	var entries []models.GeneratedNameRecord
	if err := json.Unmarshal(data, &entries); err != nil {
		h.logger.Warn("stored history is unreadable, treating as empty",
			zap.String("key", defs.HistoryKey), zap.Error(err))
		return []models.GeneratedNameRecord{}, nil
	}
	if entries == nil {
		entries = []models.GeneratedNameRecord{}
	}
	return entries, nil
}

// Record appends entry to the log and persists the whole sequence.
func (h *Store) Record(ctx context.Context, entry models.GeneratedNameRecord) error {
	entries, err := h.List(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := h.store.Put(ctx, defs.HistoryKey, data); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	h.logger.Debug("history entry recorded",
		zap.String("file_name", entry.FileName), zap.Int("entries", len(entries)))
	return nil
}

// Clear deletes the whole log.
func (h *Store) Clear(ctx context.Context) error {
	if err := h.store.Delete(ctx, defs.HistoryKey); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
