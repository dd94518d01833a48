package usecase

import (
	"context"

	"realtime-client/internal/notification"
)

func (uc *implUseCase) RequestPermission(ctx context.Context) notification.Permission {
	if uc.requested || uc.permission != notification.PermissionDefault {
		return uc.permission
	}
	uc.requested = true

	if uc.cfg.Alerter != nil && uc.cfg.AutoGrant {
		uc.permission = notification.PermissionGranted
	} else {
		uc.permission = notification.PermissionDenied
	}
	uc.l.Infof(ctx, "notification permission resolved to %s", uc.permission)
	return uc.permission
}

func (uc *implUseCase) Permission() notification.Permission {
	return uc.permission
}
