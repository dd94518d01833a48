package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"realtime-client/config"
	configRedis "realtime-client/config/redis"
	"realtime-client/internal/autosave"
	"realtime-client/internal/autosave/delivery/watcher"
	autosaveUC "realtime-client/internal/autosave/usecase"
	"realtime-client/internal/channel"
	wsDelivery "realtime-client/internal/channel/delivery/websocket"
	channelUC "realtime-client/internal/channel/usecase"
	"realtime-client/internal/notification"
	"realtime-client/internal/notification/alerter"
	notificationDelivery "realtime-client/internal/notification/delivery/channel"
	notificationUC "realtime-client/internal/notification/usecase"
	"realtime-client/internal/page"
	"realtime-client/internal/project"
	projectDelivery "realtime-client/internal/project/delivery/channel"
	projectRepo "realtime-client/internal/project/repository/redis"
	projectUC "realtime-client/internal/project/usecase"
	"realtime-client/internal/router"
	routerUC "realtime-client/internal/router/usecase"
	"realtime-client/pkg/discord"
	"realtime-client/pkg/log"
	"realtime-client/pkg/loop"
	pkgRedis "realtime-client/pkg/redis"
)

const closeTimeout = 5 * time.Second

// Options overrides collaborators that New would otherwise build from config.
type Options struct {
	Dialer    channel.Dialer
	Alerter   notification.Alerter
	Scheduler loop.Scheduler
	Redis     pkgRedis.IRedis
	Discord   discord.IDiscord
	Document  page.Document
}

// App is the application context. It is built once at startup and owns every
// component; nothing is reachable through globals.
type App struct {
	cfg *config.Config
	l   log.Logger

	loop          *loop.Loop
	document      page.Document
	channels      channel.Registry
	router        router.UseCase
	notifications notification.UseCase
	projects      project.UseCase
	autosave      autosave.UseCase
	watcher       watcher.Watcher

	redis   pkgRedis.IRedis
	discord discord.IDiscord
	origin  string

	mu      sync.Mutex
	started bool
}

// New wires the application from cfg. Redis and Discord failures degrade to
// running without them. The page URL is validated before any client is
// opened, and clients New opened itself are closed again when it fails.
func New(ctx context.Context, l log.Logger, cfg *config.Config, opts Options) (_ *App, err error) {
	endpoints, err := channel.NewEndpoints(cfg.Page.URL)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		l:       l,
		loop:    loop.New(l, cfg.Channel.LoopBuffer),
		redis:   opts.Redis,
		discord: opts.Discord,
	}

	a.document = opts.Document
	if a.document == nil {
		a.document = page.NewMemory(cfg.Page.Regions...)
		for _, id := range cfg.Page.ProjectIDs {
			if id != "" {
				a.document.AddProject(id, true)
			}
		}
	}

	sched := opts.Scheduler
	if sched == nil {
		sched = a.loop
	}

	var ownDiscord, ownRedis bool
	defer func() {
		if err != nil {
			a.closeOwned(ownRedis, ownDiscord)
		}
	}()

	if a.discord == nil && cfg.Discord.WebhookURL != "" {
		d, err := discord.New(l, discord.Config{WebhookURL: cfg.Discord.WebhookURL, Username: cfg.Page.Title})
		if err != nil {
			l.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		} else {
			a.discord = d
			ownDiscord = true
			l.Info(ctx, "Discord webhook initialized")
		}
	}
	alert := opts.Alerter
	if alert == nil {
		if a.discord != nil {
			alert = alerter.NewDiscord(a.discord)
		} else {
			alert = alerter.NewLog(l)
		}
	}

	if a.redis == nil && cfg.Redis.Enabled {
		client, err := configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			l.Warnf(ctx, "progress mirror disabled: %v", err)
		} else {
			a.redis = client
			ownRedis = true
			l.Info(ctx, "Redis client initialized")
		}
	}
	a.notifications, err = notificationUC.New(l, notificationUC.Config{
		Document:      a.document,
		Scheduler:     sched,
		Alerter:       alert,
		Title:         cfg.Page.Title,
		DisplayWindow: cfg.Notification.DisplayWindow,
		Permission:    notification.Permission(cfg.Notification.Permission),
		AutoGrant:     cfg.Notification.AutoGrant,
	})
	if err != nil {
		return nil, fmt.Errorf("notification: %w", err)
	}

	var repo project.Repository
	if a.redis != nil {
		repo = projectRepo.New(l, a.redis, cfg.Redis.KeyPrefix, cfg.Redis.ProgressTTL)
	}
	a.projects, err = projectUC.New(l, projectUC.Config{Document: a.document, Repository: repo})
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}

	a.router = routerUC.New(l)
	notificationDelivery.Register(l, a.router, a.notifications)
	projectDelivery.Register(l, a.router, a.projects)

	a.origin = endpoints.Origin()
	dialer := opts.Dialer
	if dialer == nil {
		dialer = wsDelivery.NewDialer(l, wsDelivery.Config{
			PingInterval:    cfg.WebSocket.PingInterval,
			PongWait:        cfg.WebSocket.PongWait,
			WriteWait:       cfg.WebSocket.WriteWait,
			MaxMessageSize:  cfg.WebSocket.MaxMessageSize,
			ReadBufferSize:  cfg.WebSocket.ReadBufferSize,
			WriteBufferSize: cfg.WebSocket.WriteBufferSize,
			Header:          http.Header{"Origin": []string{endpoints.Origin()}},
		})
	}
	a.channels, err = channelUC.New(l, channelUC.Config{
		Endpoints:      endpoints,
		Dialer:         dialer,
		Executor:       a.loop,
		Scheduler:      sched,
		OnFrame:        a.router.Dispatch,
		Supported:      cfg.Channel.Enabled,
		ReconnectDelay: cfg.Channel.ReconnectDelay,
		DialTimeout:    cfg.Channel.DialTimeout,
		JoinProjects:   cfg.Channel.JoinProjects,
	})
	if err != nil {
		return nil, fmt.Errorf("channel: %w", err)
	}

	if cfg.AutoSave.Enabled {
		a.autosave, err = autosaveUC.New(l, autosaveUC.Config{
			PageURL:    cfg.Page.URL,
			Executor:   a.loop,
			Toaster:    a.notifications,
			RatePerSec: cfg.AutoSave.RatePerSec,
			Timeout:    cfg.AutoSave.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("autosave: %w", err)
		}
		a.watcher = watcher.New(cfg.AutoSave.FormsDir, cfg.AutoSave.Debounce, a.autosave, l)
	}

	return a, nil
}

// closeOwned undoes a failed New: the mirror worker is stopped and the
// clients New opened itself are closed. Clients passed in Options stay open.
func (a *App) closeOwned(ownRedis, ownDiscord bool) {
	if a.projects != nil {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		_ = a.projects.Close(ctx)
	}
	if ownRedis && a.redis != nil {
		_ = a.redis.Close()
		a.redis = nil
	}
	if ownDiscord && a.discord != nil {
		_ = a.discord.Close()
		a.discord = nil
	}
}
