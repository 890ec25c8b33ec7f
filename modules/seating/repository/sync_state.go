package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"planit-api/core/logger"
	"planit-api/modules/seating/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Expiry for ephemeral sync artifacts. Fingerprints are long-lived but
// replaceable; pending options go stale quickly and are re-derivable.
const (
	fingerprintTTL    = 0 // no expiry, replaced on every successful sync
	pendingOptionsTTL = 15 * time.Minute
	syncLockTTL       = 60 * time.Second
)

// SyncStateRepository holds the ephemeral reconciliation state in redis:
// roster fingerprints, pending sync options and the per-event sync lock.
type SyncStateRepository struct {
	rdb *redis.Client
}

// NewSyncStateRepository creates a new repository instance
func NewSyncStateRepository(rdb *redis.Client) *SyncStateRepository {
	return &SyncStateRepository{rdb: rdb}
}

// SyncStateRepositoryInterface defines the repository contract
type SyncStateRepositoryInterface interface {
	GetFingerprint(ctx context.Context, eventID uuid.UUID) ([]entity.GuestFingerprint, bool, error)
	SetFingerprint(ctx context.Context, eventID uuid.UUID, fps []entity.GuestFingerprint) error
	ClearFingerprint(ctx context.Context, eventID uuid.UUID) error
	GetPendingOptions(ctx context.Context, eventID uuid.UUID) ([]entity.SyncOption, error)
	SetPendingOptions(ctx context.Context, eventID uuid.UUID, options []entity.SyncOption) error
	ClearPendingOptions(ctx context.Context, eventID uuid.UUID) error
	SetPendingTriggers(ctx context.Context, eventID uuid.UUID, count int) error
	GetPendingTriggers(ctx context.Context, eventID uuid.UUID) (int, error)
	AcquireSyncLock(ctx context.Context, eventID uuid.UUID) (bool, error)
	ReleaseSyncLock(ctx context.Context, eventID uuid.UUID) error
}

func fingerprintKey(eventID uuid.UUID) string {
	return fmt.Sprintf("seating:fp:%s", eventID)
}

func optionsKey(eventID uuid.UUID) string {
	return fmt.Sprintf("seating:options:%s", eventID)
}

func triggersKey(eventID uuid.UUID) string {
	return fmt.Sprintf("seating:triggers:%s", eventID)
}

func lockKey(eventID uuid.UUID) string {
	return fmt.Sprintf("seating:lock:%s", eventID)
}

// GetFingerprint returns the stored fingerprint and whether one exists. A
// missing fingerprint means the next load establishes a fresh baseline.
func (r *SyncStateRepository) GetFingerprint(ctx context.Context, eventID uuid.UUID) ([]entity.GuestFingerprint, bool, error) {
	raw, err := r.rdb.Get(ctx, fingerprintKey(eventID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		logger.Error("SyncStateRepository:GetFingerprint", "eventId", eventID, "error", err)
		return nil, false, err
	}

	var fps []entity.GuestFingerprint
	if err := json.Unmarshal(raw, &fps); err != nil {
		return nil, false, err
	}
	return fps, true, nil
}

func (r *SyncStateRepository) SetFingerprint(ctx context.Context, eventID uuid.UUID, fps []entity.GuestFingerprint) error {
	raw, err := json.Marshal(fps)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, fingerprintKey(eventID), raw, fingerprintTTL).Err(); err != nil {
		logger.Error("SyncStateRepository:SetFingerprint", "eventId", eventID, "error", err)
		return err
	}
	return nil
}

func (r *SyncStateRepository) ClearFingerprint(ctx context.Context, eventID uuid.UUID) error {
	return r.rdb.Del(ctx, fingerprintKey(eventID)).Err()
}

func (r *SyncStateRepository) GetPendingOptions(ctx context.Context, eventID uuid.UUID) ([]entity.SyncOption, error) {
	raw, err := r.rdb.Get(ctx, optionsKey(eventID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var options []entity.SyncOption
	if err := json.Unmarshal(raw, &options); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *SyncStateRepository) SetPendingOptions(ctx context.Context, eventID uuid.UUID, options []entity.SyncOption) error {
	raw, err := json.Marshal(options)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, optionsKey(eventID), raw, pendingOptionsTTL).Err()
}

func (r *SyncStateRepository) ClearPendingOptions(ctx context.Context, eventID uuid.UUID) error {
	return r.rdb.Del(ctx, optionsKey(eventID)).Err()
}

func (r *SyncStateRepository) SetPendingTriggers(ctx context.Context, eventID uuid.UUID, count int) error {
	if count == 0 {
		return r.rdb.Del(ctx, triggersKey(eventID)).Err()
	}
	return r.rdb.Set(ctx, triggersKey(eventID), count, pendingOptionsTTL).Err()
}

func (r *SyncStateRepository) GetPendingTriggers(ctx context.Context, eventID uuid.UUID) (int, error) {
	count, err := r.rdb.Get(ctx, triggersKey(eventID)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	return count, err
}

// AcquireSyncLock guards against overlapping reconciliations for one event;
// the background poll skips the cycle when the lock is held.
func (r *SyncStateRepository) AcquireSyncLock(ctx context.Context, eventID uuid.UUID) (bool, error) {
	return r.rdb.SetNX(ctx, lockKey(eventID), 1, syncLockTTL).Result()
}

func (r *SyncStateRepository) ReleaseSyncLock(ctx context.Context, eventID uuid.UUID) error {
	return r.rdb.Del(ctx, lockKey(eventID)).Err()
}
