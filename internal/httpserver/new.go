package httpserver

import (
	"context"
	"errors"
	"net/http"

	"realtime-client/internal/app"
	"realtime-client/internal/channel"
	"realtime-client/internal/page"
	"realtime-client/pkg/discord"
	"realtime-client/pkg/log"

	"github.com/gin-gonic/gin"
)

// Controller is the part of the application the control surface drives.
type Controller interface {
	Status(ctx context.Context) (app.Status, error)
	Snapshot(ctx context.Context) (page.Snapshot, error)
	Channels(ctx context.Context) ([]channel.Info, error)
	AddProject(ctx context.Context, projectID string) (bool, error)
	RemoveProject(ctx context.Context, projectID string) (bool, error)
	Dismiss(ctx context.Context, elementID string) (bool, error)
}

// HTTPServer is the local control surface.
// New() only wires dependencies and validates them; Start() serves.
type HTTPServer struct {
	gin    *gin.Engine
	srv    *http.Server
	logger log.Logger
	addr   string

	ctl     Controller
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Addr       string
	Mode       string
	PageOrigin string

	Controller Controller
	Discord    discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Controller == nil {
		return nil, errors.New("controller is required")
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:     gin.New(),
		logger:  logger,
		addr:    cfg.Addr,
		ctl:     cfg.Controller,
		discord: cfg.Discord,
	}
	srv.mapHandlers(cfg.PageOrigin)
	srv.srv = &http.Server{Addr: cfg.Addr, Handler: srv.gin}
	return srv, nil
}
