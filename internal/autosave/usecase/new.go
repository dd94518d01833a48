package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	"realtime-client/internal/autosave"
	"realtime-client/internal/notification"
	"realtime-client/pkg/log"
	"realtime-client/pkg/loop"
)

const DefaultTimeout = 10 * time.Second

// Toaster is the part of the presenter auto-save reports to.
type Toaster interface {
	Toast(ctx context.Context, message string, severity notification.Severity) string
}

type Config struct {
	PageURL string
	// Executor runs the success toast on the event loop.
	Executor loop.Executor
	Toaster  Toaster

	// RatePerSec throttles saves globally; zero disables throttling.
	RatePerSec int
	Timeout    time.Duration
	// Client is optional; the default keeps cookies per public suffix.
	Client *http.Client
}

type implUseCase struct {
	l       log.Logger
	page    *url.URL
	client  *http.Client
	exec    loop.Executor
	toaster Toaster
	limiter *rate.Limiter

	mu        sync.Mutex
	metaToken string

	saved    atomic.Int64
	rejected atomic.Int64
	failed   atomic.Int64
}

func New(l log.Logger, cfg Config) (autosave.UseCase, error) {
	page, err := url.Parse(cfg.PageURL)
	if err != nil || page.Host == "" || (page.Scheme != "http" && page.Scheme != "https") {
		return nil, fmt.Errorf("autosave: invalid page url %q", cfg.PageURL)
	}
	if cfg.Executor == nil || cfg.Toaster == nil {
		return nil, errors.New("executor and toaster are required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := cfg.Client
	if client == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, err
		}
		client = &http.Client{Jar: jar, Timeout: cfg.Timeout}
	}

	var limiter *rate.Limiter
	if cfg.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.RatePerSec)
	}

	return &implUseCase{
		l:       l,
		page:    page,
		client:  client,
		exec:    cfg.Executor,
		toaster: cfg.Toaster,
		limiter: limiter,
	}, nil
}
