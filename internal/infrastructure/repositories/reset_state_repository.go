package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

// ResetStateRepositoryImpl implements domain.ResetStateRepository using Redis
type ResetStateRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewResetStateRepository creates a new reset-state repository. The TTL
// bounds the whole reset flow; the 5-minute OTP window inside it is a
// wall-clock comparison done by the service.
func NewResetStateRepository(client *redis.Client, ttl time.Duration) domain.ResetStateRepository {
	return &ResetStateRepositoryImpl{
		client: client,
		prefix: "pwreset:",
		ttl:    ttl,
	}
}

// Save implements domain.ResetStateRepository. Overwrites any prior state
// for the session (last write wins).
func (r *ResetStateRepositoryImpl) Save(ctx context.Context, sessionID string, state *domain.ResetState) error {
	key := r.prefix + sessionID
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal reset state: %w", err)
	}

	return r.client.Set(ctx, key, data, r.ttl).Err()
}

// Find implements domain.ResetStateRepository
func (r *ResetStateRepositoryImpl) Find(ctx context.Context, sessionID string) (*domain.ResetState, error) {
	key := r.prefix + sessionID
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoPendingReset
		}
		return nil, err
	}

	var state domain.ResetState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reset state: %w", err)
	}

	return &state, nil
}

// Delete implements domain.ResetStateRepository
func (r *ResetStateRepositoryImpl) Delete(ctx context.Context, sessionID string) error {
	key := r.prefix + sessionID
	return r.client.Del(ctx, key).Err()
}
