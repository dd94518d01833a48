package usecase

import (
	"errors"
	"time"

	"realtime-client/internal/channel"
	"realtime-client/pkg/log"
	"realtime-client/pkg/loop"
)

const (
	// DefaultReconnectDelay is the fixed wait between a close and the next attempt.
	DefaultReconnectDelay = 5 * time.Second
	// DefaultDialTimeout bounds one dial attempt.
	DefaultDialTimeout = 10 * time.Second
)

// Config is the constructor input for the registry.
type Config struct {
	Endpoints channel.Endpoints
	Dialer    channel.Dialer
	Executor  loop.Executor
	Scheduler loop.Scheduler
	OnFrame   channel.FrameHandler

	// Supported reports whether push transport is available at all.
	Supported      bool
	ReconnectDelay time.Duration
	DialTimeout    time.Duration
	// JoinProjects makes project sessions announce themselves once open.
	JoinProjects bool
}

type registry struct {
	cfg    Config
	logger log.Logger
	conns  map[channel.Key]*connection
	order  []channel.Key

	// counters of connections that were released
	releasedSessions int64
	releasedCloses   int64
	releasedFrames   int64
}

// New creates a channel Registry.
func New(logger log.Logger, cfg Config) (channel.Registry, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.Executor == nil || cfg.Scheduler == nil {
		return nil, errors.New("executor and scheduler are required")
	}
	if cfg.OnFrame == nil {
		return nil, errors.New("frame handler is required")
	}
	if cfg.Supported && cfg.Dialer == nil {
		return nil, errors.New("dialer is required when transport is supported")
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = DefaultReconnectDelay
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = DefaultDialTimeout
	}

	return &registry{
		cfg:    cfg,
		logger: logger,
		conns:  make(map[channel.Key]*connection),
	}, nil
}
