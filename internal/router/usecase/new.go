package usecase

import (
	"sync/atomic"

	"realtime-client/internal/channel"
	"realtime-client/internal/router"
	"realtime-client/pkg/log"
)

type route struct {
	scope channel.Kind
	kind  router.Kind
}

type implUseCase struct {
	l        log.Logger
	handlers map[route]router.Handler

	decoded  atomic.Int64
	dropped  atomic.Int64
	routed   atomic.Int64
	unrouted atomic.Int64
}

// New creates a router with no handlers registered.
func New(l log.Logger) router.UseCase {
	return &implUseCase{
		l:        l,
		handlers: make(map[route]router.Handler),
	}
}
