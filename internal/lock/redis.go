package lock

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	// lockTTL must exceed HoldTimeout: the key is never renewed while
	// held, so the locked section has to finish before it expires.
	lockTTL       = 2 * HoldTimeout
	retryInterval = 25 * time.Millisecond
)

// releaseScript deletes the key only when it still holds our token, so a
// holder that outlived the TTL cannot release somebody else's lock.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
    return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLocker is the multi-instance Locker: SET NX with a TTL, polled until
// acquired or ctx expires. The TTL bounds how long a crashed holder can
// block a professional's agenda.
type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	redisKey := "lock:" + key

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, lockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err()
			}, nil
		}

		select {
		case <-time.After(retryInterval):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

var _ Locker = (*RedisLocker)(nil)
