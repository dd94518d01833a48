package usecase

import (
	"context"

	"realtime-client/internal/notification"
	"realtime-client/internal/page"
	"realtime-client/pkg/log"
)

func (uc *implUseCase) Present(ctx context.Context, text, notificationID string) (string, error) {
	uc.stats.Presented++
	uc.alert(text)

	region := page.RegionMessages
	if !uc.cfg.Document.HasRegion(region) {
		region = page.RegionMain
	}
	if !uc.cfg.Document.HasRegion(region) {
		uc.l.Debugf(ctx, "notification %q not rendered: no notices region", notificationID)
		return "", notification.ErrNoRegion
	}

	id := notification.NoticeIDPrefix + uc.cfg.NewID()
	el := page.Element{
		ID:          id,
		Class:       notification.NoticeClass,
		Role:        "alert",
		Text:        text,
		Dismissible: true,
	}
	if err := uc.cfg.Document.Prepend(region, el); err != nil {
		uc.l.Warnf(ctx, "notification %q not rendered: %v", notificationID, err)
		return "", err
	}

	uc.track(notification.Record{
		ElementID:      id,
		Text:           text,
		NotificationID: notificationID,
		CreatedAt:      uc.cfg.Now(),
	})
	return id, nil
}

func (uc *implUseCase) Toast(ctx context.Context, message string, severity notification.Severity) string {
	if severity == "" {
		severity = notification.SeverityInfo
	}
	uc.cfg.Document.EnsureRegion(page.RegionToasts, page.PositionBottomEnd)

	id := notification.ToastIDPrefix + uc.cfg.NewID()
	el := page.Element{
		ID:    id,
		Class: notification.ToastClass(severity),
		Role:  "alert",
		Text:  message,
	}
	if err := uc.cfg.Document.Append(page.RegionToasts, el); err != nil {
		uc.l.Warnf(ctx, "toast not rendered: %v", err)
		return ""
	}
	uc.stats.Toasts++

	uc.track(notification.Record{
		ElementID: id,
		Text:      message,
		Toast:     true,
		CreatedAt: uc.cfg.Now(),
	})
	return id
}

func (uc *implUseCase) Dismiss(ctx context.Context, elementID string) bool {
	if !uc.remove(elementID) {
		return false
	}
	uc.stats.Dismissed++
	uc.l.Debugf(ctx, "element %s dismissed", elementID)
	return true
}

func (uc *implUseCase) Active() []notification.Record {
	out := make([]notification.Record, 0, len(uc.order))
	for _, id := range uc.order {
		out = append(out, uc.live[id].record)
	}
	return out
}

func (uc *implUseCase) Stats() notification.Stats {
	st := uc.stats
	st.Active = len(uc.live)
	st.Permission = uc.permission
	return st
}

// track keeps rec until it expires or is dismissed.
func (uc *implUseCase) track(rec notification.Record) {
	e := &entry{record: rec}
	id := rec.ElementID
	e.expiry = uc.cfg.Scheduler.AfterFunc(uc.cfg.DisplayWindow, func() {
		if uc.remove(id) {
			uc.stats.Expired++
		}
	})
	uc.live[id] = e
	uc.order = append(uc.order, id)
}

// remove deletes the element and its record. It reports false if either was
// already gone.
func (uc *implUseCase) remove(id string) bool {
	e, ok := uc.live[id]
	if !ok {
		return false
	}
	e.expiry.Cancel()
	delete(uc.live, id)
	for i, v := range uc.order {
		if v == id {
			uc.order = append(uc.order[:i], uc.order[i+1:]...)
			break
		}
	}
	return uc.cfg.Document.Remove(id)
}

// alert raises the OS-level alert off the loop when permitted.
func (uc *implUseCase) alert(text string) {
	if uc.permission != notification.PermissionGranted || uc.cfg.Alerter == nil {
		return
	}
	uc.stats.Alerts++

	alerter, title, l := uc.cfg.Alerter, uc.cfg.Title, uc.l
	go func() {
		actx, cancel := context.WithTimeout(context.Background(), alertTimeout)
		defer cancel()
		actx = log.WithContext(actx, l)
		if err := alerter.Alert(actx, title, text); err != nil {
			l.Warnf(actx, "os alert failed: %v", err)
		}
	}()
}
