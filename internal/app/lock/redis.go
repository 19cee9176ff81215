package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// releaseScript deletes the key only if we still own it
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker guards keys across processes with SET NX PX. The TTL bounds
// how long a crashed holder can block a key.
type RedisLocker struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisLocker(client redis.UniversalClient, prefix string, ttl time.Duration, logger *zap.Logger) *RedisLocker {
	return &RedisLocker{client: client, prefix: prefix, ttl: ttl, logger: logger}
}

func (l *RedisLocker) TryLock(ctx context.Context, key string) (func(), bool, error) {
	fullKey := l.prefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, fullKey, token, l.ttl).Result()
	if err != nil {
		return func() {}, false, fmt.Errorf("acquire lock %s: %w", fullKey, err)
	}
	if !ok {
		return func() {}, false, nil
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// the request context may already be cancelled
			releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			l.release(releaseCtx, fullKey, token)
		})
	}, true, nil
}

func (l *RedisLocker) release(ctx context.Context, fullKey, token string) {
	deleted, err := releaseScript.Run(ctx, l.client, []string{fullKey}, token).Int()
	if err != nil {
		l.logger.Warn("Failed to release turn lock, it stays held until the TTL expires",
			zap.String("key", fullKey),
			zap.Duration("ttl", l.ttl),
			zap.Error(err))
		return
	}
	if deleted == 0 {
		l.logger.Warn("Turn lock expired before release", zap.String("key", fullKey), zap.Duration("ttl", l.ttl))
	}
}
