package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"realtime-client/internal/notification"
	"realtime-client/internal/page"
	"realtime-client/pkg/log"
	"realtime-client/pkg/loop"
)

const (
	DefaultDisplayWindow = 5 * time.Second
	DefaultTitle         = "Inspora"
	alertTimeout         = 30 * time.Second
)

type Config struct {
	Document  page.Document
	Scheduler loop.Scheduler
	// Alerter may be nil, in which case permission can never be granted.
	Alerter notification.Alerter

	Title         string
	DisplayWindow time.Duration
	Permission    notification.Permission
	// AutoGrant resolves a permission request to granted when an alerter exists.
	AutoGrant bool

	// NewID generates element ids. Defaults to random UUIDs.
	NewID func() string
	Now   func() time.Time
}

type entry struct {
	record notification.Record
	expiry loop.Handle
}

type implUseCase struct {
	l   log.Logger
	cfg Config

	permission notification.Permission
	requested  bool
	live       map[string]*entry
	order      []string

	stats notification.Stats
}

func New(l log.Logger, cfg Config) (notification.UseCase, error) {
	if cfg.Document == nil {
		return nil, errors.New("document is required")
	}
	if cfg.Scheduler == nil {
		return nil, errors.New("scheduler is required")
	}
	if cfg.Permission == "" {
		cfg.Permission = notification.PermissionDefault
	}
	if _, err := notification.ParsePermission(string(cfg.Permission)); err != nil {
		return nil, err
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.DisplayWindow <= 0 {
		cfg.DisplayWindow = DefaultDisplayWindow
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &implUseCase{
		l:          l,
		cfg:        cfg,
		permission: cfg.Permission,
		live:       make(map[string]*entry),
	}, nil
}
