package redis

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultConnectTimeout bounds the ping New performs before returning.
const DefaultConnectTimeout = 5 * time.Second

// RedisConfig describes a standalone Redis server.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	// PoolSize of zero keeps the go-redis default.
	PoolSize int
}

type redisImpl struct {
	client *goredis.Client
}
