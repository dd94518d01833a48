package redis

import (
	"context"
	"time"

	"realtime-client/internal/project"
)

func (r *implRepository) key(projectID string) string {
	return r.prefix + "project:" + projectID
}

func (r *implRepository) SaveProgress(ctx context.Context, p project.Progress) error {
	key := r.key(p.ProjectID)
	if err := r.client.HSet(ctx, key, map[string]any{
		"width":      p.Width,
		"label":      p.Label,
		"updated_at": p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}); err != nil {
		r.l.Errorf(ctx, "internal.project.repository.redis.SaveProgress.HSet: %v", err)
		return err
	}

	if r.ttl > 0 {
		if err := r.client.Expire(ctx, key, r.ttl); err != nil {
			r.l.Errorf(ctx, "internal.project.repository.redis.SaveProgress.Expire: %v", err)
			return err
		}
	}
	return nil
}

func (r *implRepository) DeleteProgress(ctx context.Context, projectID string) error {
	if err := r.client.Delete(ctx, r.key(projectID)); err != nil {
		r.l.Errorf(ctx, "internal.project.repository.redis.DeleteProgress.Delete: %v", err)
		return err
	}
	return nil
}
