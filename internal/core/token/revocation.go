package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked_token:"

// RevocationStore remembers logged-out token ids until the token would have
// expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type redisRevocationStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisRevocationStore keeps revoked token ids in Redis with a TTL matching
// each token's remaining lifetime.
func NewRedisRevocationStore(client *redis.Client) RevocationStore {
	return &redisRevocationStore{client: client, now: time.Now}
}

func (s *redisRevocationStore) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := until.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token %s: %w", jti, err)
	}
	return nil
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := s.client.Get(ctx, revokedKeyPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check revoked token %s: %w", jti, err)
	}
	return true, nil
}

type noopRevocationStore struct{}

// NewNoopRevocationStore is used when Redis is disabled. Logout then only
// succeeds client-side and tokens stay valid until they expire.
func NewNoopRevocationStore() RevocationStore {
	return noopRevocationStore{}
}

func (noopRevocationStore) Revoke(context.Context, string, time.Time) error { return nil }

func (noopRevocationStore) IsRevoked(context.Context, string) (bool, error) { return false, nil }

// NewRedisClient opens a Redis client and checks the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return client, nil
}
