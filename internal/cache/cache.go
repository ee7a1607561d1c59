package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/salonworks/salon-scheduler/internal/config"
)

// NewClient connects to redis and fails fast when it is unreachable. Redis
// backs the webhook conversation store and, when enabled, the distributed
// booking lock.
func NewClient(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	return client
}
