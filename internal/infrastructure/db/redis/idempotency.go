package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore remembers which idempotency keys have already produced a
// payment, backed by Redis. Key format: idem:payment:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the payment id previously recorded for key, if any.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (uint, bool, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("idempotency lookup: %w", err)
	}
	id, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: bad value %q", val)
	}
	return uint(id), true, nil
}

// Remember records that key produced paymentID (expires after idempotencyTTL).
func (s *IdempotencyStore) Remember(ctx context.Context, key string, paymentID uint) error {
	return s.client.Set(ctx, s.key(key), strconv.FormatUint(uint64(paymentID), 10), idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(key string) string {
	return "idem:payment:" + key
}
