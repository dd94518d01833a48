package usecase

import (
	"errors"
	"time"

	"realtime-client/internal/page"
	"realtime-client/internal/project"
	"realtime-client/pkg/log"
)

const mirrorTimeout = 5 * time.Second

type Config struct {
	Document page.Document
	// Repository is optional; without it progress is not mirrored.
	Repository project.Repository
	Now        func() time.Time
}

type implUseCase struct {
	l      log.Logger
	doc    page.Document
	mirror *mirrorWorker
	now    func() time.Time
	stats  project.Stats
}

func New(l log.Logger, cfg Config) (project.UseCase, error) {
	if cfg.Document == nil {
		return nil, errors.New("document is required")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	uc := &implUseCase{
		l:   l,
		doc: cfg.Document,
		now: cfg.Now,
	}
	if cfg.Repository != nil {
		uc.mirror = newMirrorWorker(l, cfg.Repository)
	}
	return uc, nil
}
