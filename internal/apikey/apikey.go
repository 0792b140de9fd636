// Package apikey manages the placeholder API key list shown beside the
// configuration. Keys are records only; nothing authenticates with them.
package apikey

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/yunhoi129/adtax/internal/defs"
	"github.com/yunhoi129/adtax/internal/storage"
	"github.com/yunhoi129/adtax/pkg/models"
)

// DateLayout formats the created date of a key (month/day/year).
const DateLayout = "1/2/2006"

// ErrKeyNotFound indicates no key has the requested id.
var ErrKeyNotFound = errors.New("apikey: key not found")

// SeedKey returns the key listed before any key has been stored.
func SeedKey() models.APIKey {
	return models.APIKey{
		ID:      "figmapluginkey",
		Name:    "figmapluginkey",
		Status:  models.APIKeyLive,
		Created: "11/21/2025",
		Used:    0,
	}
}

// Store persists the key list as one JSON array.
type Store struct {
	store  storage.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewStore creates a Store over s. A nil logger discards output.
func NewStore(s storage.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{store: s, logger: logger.Named("apikey"), now: time.Now}
}

// List returns the stored keys, or the seed key when none are stored or
// the record is unreadable.
func (k *Store) List(ctx context.Context) ([]models.APIKey, error) {
	data, err := k.store.Get(ctx, defs.APIKeysKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.APIKey{SeedKey()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load api keys: %w", err)
	}

	var keys []models.APIKey
	if err := json.Unmarshal(data, &keys); err != nil {
		k.logger.Warn("stored api keys are unreadable, using seed",
			zap.String("key", defs.APIKeysKey), zap.Error(err))
		return []models.APIKey{SeedKey()}, nil
	}
	if keys == nil {
		keys = []models.APIKey{}
	}
	return keys, nil
}

// Create appends a new live key named after its id and returns it.
func (k *Store) Create(ctx context.Context) (models.APIKey, error) {
	keys, err := k.List(ctx)
	if err != nil {
		return models.APIKey{}, err
	}

	now := k.now()
	id := fmt.Sprintf("key_%d", now.UnixMilli())
	for slices.ContainsFunc(keys, func(x models.APIKey) bool { return x.ID == id }) {
		now = now.Add(time.Millisecond)
		id = fmt.Sprintf("key_%d", now.UnixMilli())
	}

	key := models.APIKey{
		ID:      id,
		Name:    id,
		Status:  models.APIKeyLive,
		Created: now.Format(DateLayout),
		Used:    0,
	}
	if err := k.save(ctx, append(keys, key)); err != nil {
		return models.APIKey{}, err
	}
	return key, nil
}

// Revoke marks the key with id as revoked.
func (k *Store) Revoke(ctx context.Context, id string) (models.APIKey, error) {
	keys, err := k.List(ctx)
	if err != nil {
		return models.APIKey{}, err
	}
	i := slices.IndexFunc(keys, func(x models.APIKey) bool { return x.ID == id })
	if i < 0 {
		return models.APIKey{}, fmt.Errorf("%w: %s", ErrKeyNotFound, id)
	}
	keys[i].Status = models.APIKeyRevoked
	if err := k.save(ctx, keys); err != nil {
		return models.APIKey{}, err
	}
	return keys[i], nil
}

// Delete removes the key with id.
func (k *Store) Delete(ctx context.Context, id string) error {
	keys, err := k.List(ctx)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(keys, func(x models.APIKey) bool { return x.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, id)
	}
	return k.save(ctx, slices.Delete(keys, i, i+1))
}

func (k *Store) save(ctx context.Context, keys []models.APIKey) error {
	data, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("encode api keys: %w", err)
	}
	if err := k.store.Put(ctx, defs.APIKeysKey, data); err != nil {
		return fmt.Errorf("save api keys: %w", err)
	}
	return nil
}
