package usecase

import (
	"context"

	"realtime-client/internal/channel"
	"realtime-client/internal/project"
)

func (uc *implUseCase) Apply(ctx context.Context, key channel.Key, u project.Update) (project.Progress, error) {
	target := u.ProjectID
	if target == "" {
		target = key.ProjectID
	}

	view, ok := uc.doc.Progress(target)
	if !ok {
		uc.stats.Skipped++
		return project.Progress{}, project.ErrProjectNotRendered
	}
	if !view.HasBar {
		uc.stats.Skipped++
		return project.Progress{}, project.ErrNoIndicator
	}
	if u.Progress == nil {
		uc.stats.Skipped++
		return project.Progress{}, project.ErrNoProgress
	}

	p := project.Progress{
		ProjectID: target,
		Width:     project.Percent(*u.Progress),
		Label:     project.Percent(*u.Progress),
		UpdatedAt: uc.now(),
	}
	if !uc.doc.SetProgress(p.ProjectID, p.Width, p.Label) {
		uc.stats.Skipped++
		return project.Progress{}, project.ErrNoIndicator
	}
	uc.stats.Applied++
	if uc.mirror != nil {
		uc.stats.Mirrored++
		uc.mirror.save(p)
	}
	return p, nil
}

func (uc *implUseCase) Forget(ctx context.Context, projectID string) {
	if uc.mirror == nil {
		return
	}
	uc.mirror.delete(projectID)
}

func (uc *implUseCase) Stats() project.Stats {
	return uc.stats
}

// Close flushes the mirror queue.
func (uc *implUseCase) Close(ctx context.Context) error {
	if uc.mirror == nil {
		return nil
	}
	return uc.mirror.close(ctx)
}
