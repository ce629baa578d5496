package tokens

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

// RedisRevocationStore backs RevocationStore with Redis SETEX, matching the
// Sadd/Sismember/Setex idioms of the teacher's
// services/gateway/services/auth/domain/cache package.
type RedisRevocationStore struct {
	client *redis.Redis
	prefix string
}

func NewRedisRevocationStore(client *redis.Redis) *RedisRevocationStore {
	return &RedisRevocationStore{client: client, prefix: "identity:revoked:"}
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	seconds := int(ttl / time.Second)
	if seconds <= 0 {
		seconds = 1
	}
	return s.client.SetexCtx(ctx, s.prefix+jti, "1", seconds)
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	val, err := s.client.GetCtx(ctx, s.prefix+jti)
	if err != nil {
		return false, err
	}
	return val != "", nil
}
