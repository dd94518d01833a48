package redis

import (
	"context"
	"fmt"

	"realtime-client/config"
	pkgRedis "realtime-client/pkg/redis"
)

// Connect opens the Redis client used by the progress mirror.
func Connect(ctx context.Context, cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	client, err := pkgRedis.New(ctx, pkgRedis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}
