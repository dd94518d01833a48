package redis

import (
	"time"

	"realtime-client/internal/project"
	pkgLog "realtime-client/pkg/log"
	pkgRedis "realtime-client/pkg/redis"
)

type implRepository struct {
	l      pkgLog.Logger
	client pkgRedis.IRedis
	prefix string
	ttl    time.Duration
}

var _ project.Repository = &implRepository{}

// New mirrors progress into Redis hashes named <prefix>project:<id>.
func New(l pkgLog.Logger, client pkgRedis.IRedis, prefix string, ttl time.Duration) *implRepository {
	return &implRepository{
		l:      l,
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}
