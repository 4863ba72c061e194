package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/harborlane/storefront-api/internal/models"
)

// CacheRepository stores computed slot payloads and the per-device viewer
// timezone preference in Redis. A nil client degrades every operation to a
// no-op miss so the API works without Redis.
type CacheRepository struct {
	client  *redis.Client
	slotTTL time.Duration
}

// NewCacheRepository creates a cache repository.
func NewCacheRepository(client *redis.Client, slotTTL time.Duration) *CacheRepository {
	if slotTTL <= 0 {
		slotTTL = 5 * time.Minute
	}
	return &CacheRepository{client: client, slotTTL: slotTTL}
}

func slotKey(version uint64, date, timezone string) string {
	return fmt.Sprintf("slots:v%d:%s:%s", version, date, timezone)
}

func preferenceKey(deviceID string) string {
	return fmt.Sprintf("pref:alt_tz:%s", deviceID)
}

// GetSlots returns the cached slot payload for a snapshot version, date and
// display timezone. The second return reports a hit.
func (r *CacheRepository) GetSlots(ctx context.Context, version uint64, date, timezone string) ([]models.TimeSlot, bool, error) {
	if r.client == nil {
		return nil, false, nil
	}
	raw, err := r.client.Get(ctx, slotKey(version, date, timezone)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var slots []models.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false, err
	}
	return slots, true, nil
}

// SetSlots caches a slot payload.
func (r *CacheRepository) SetSlots(ctx context.Context, version uint64, date, timezone string, slots []models.TimeSlot) error {
	if r.client == nil {
		return nil
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, slotKey(version, date, timezone), raw, r.slotTTL).Err()
}

// GetPreference reads the persisted alternate-timezone toggle for a device.
// Missing keys default to false.
func (r *CacheRepository) GetPreference(ctx context.Context, deviceID string) (bool, error) {
	if r.client == nil {
		return false, nil
	}
	raw, err := r.client.Get(ctx, preferenceKey(deviceID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return raw == "1", nil
}

// SetPreference persists the alternate-timezone toggle for a device. This is
// the only piece of viewer selection state kept across sessions.
func (r *CacheRepository) SetPreference(ctx context.Context, deviceID string, useAlternate bool) error {
	if r.client == nil {
		return nil
	}
	value := "0"
	if useAlternate {
		value = "1"
	}
	return r.client.Set(ctx, preferenceKey(deviceID), value, 0).Err()
}
