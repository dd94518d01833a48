package middleware

import (
	"realtime-client/pkg/discord"
	"realtime-client/pkg/log"
)

type Middleware struct {
	l       log.Logger
	discord discord.IDiscord
}

// New creates the control server middleware. discord may be nil.
func New(l log.Logger, d discord.IDiscord) Middleware {
	return Middleware{l: l, discord: d}
}
