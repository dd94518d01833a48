package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realtime-client/internal/notification"
	"realtime-client/internal/page"
	"realtime-client/pkg/log"
	"realtime-client/pkg/loop/looptest"
)

type alert struct{ title, text string }

type fakeAlerter struct {
	mu     sync.Mutex
	alerts chan alert
	err    error
}

func newFakeAlerter() *fakeAlerter {
	return &fakeAlerter{alerts: make(chan alert, 8)}
}

func (a *fakeAlerter) Alert(_ context.Context, title, text string) error {
	a.alerts <- alert{title: title, text: text}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

type mockDeps struct {
	doc     page.Document
	sched   *looptest.Scheduler
	alerter *fakeAlerter
}

func initUseCase(t *testing.T, doc page.Document, mutate func(*Config)) (notification.UseCase, mockDeps) {
	t.Helper()
	deps := mockDeps{doc: doc, sched: &looptest.Scheduler{}, alerter: newFakeAlerter()}

	n := 0
	cfg := Config{
		Document:  doc,
		Scheduler: deps.sched,
		Alerter:   deps.alerter,
		AutoGrant: true,
		NewID: func() string {
			n++
			return fmt.Sprint(n)
		},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	uc, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	return uc, deps
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(log.NewNop(), Config{})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{
		Document:   page.NewMemory(),
		Scheduler:  &looptest.Scheduler{},
		Permission: "maybe",
	})
	assert.ErrorIs(t, err, notification.ErrInvalidPermission)
}

func TestRequestPermission(t *testing.T) {
	tests := []struct {
		name      string
		initial   notification.Permission
		noAlerter bool
		autoGrant bool
		want      notification.Permission
	}{
		{name: "default with sink resolves granted", initial: notification.PermissionDefault, autoGrant: true, want: notification.PermissionGranted},
		{name: "default without sink resolves denied", initial: notification.PermissionDefault, noAlerter: true, autoGrant: true, want: notification.PermissionDenied},
		{name: "default without auto grant resolves denied", initial: notification.PermissionDefault, want: notification.PermissionDenied},
		{name: "denied is never re-prompted", initial: notification.PermissionDenied, autoGrant: true, want: notification.PermissionDenied},
		{name: "granted stays granted", initial: notification.PermissionGranted, want: notification.PermissionGranted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := initUseCase(t, page.NewMemory(), func(c *Config) {
				c.Permission = tc.initial
				c.AutoGrant = tc.autoGrant
				if tc.noAlerter {
					c.Alerter = nil
				}
			})
			assert.Equal(t, tc.want, uc.RequestPermission(context.Background()))
			assert.Equal(t, tc.want, uc.Permission())
		})
	}
}

func TestRequestPermissionOnlyOnce(t *testing.T) {
	uc, _ := initUseCase(t, page.NewMemory(), nil)

	require.Equal(t, notification.PermissionGranted, uc.RequestPermission(context.Background()))
	assert.Equal(t, notification.PermissionGranted, uc.RequestPermission(context.Background()))

	impl := uc.(*implUseCase)
	assert.True(t, impl.requested)
}

func TestPresentPrependsIntoMessages(t *testing.T) {
	doc := page.NewMemory(page.RegionMain, page.RegionMessages)
	uc, deps := initUseCase(t, doc, nil)

	first, err := uc.Present(context.Background(), "one", "1")
	require.NoError(t, err)
	second, err := uc.Present(context.Background(), "two", "2")
	require.NoError(t, err)

	snap := doc.Snapshot()
	var messages []page.Element
	for _, r := range snap.Regions {
		if r.Name == page.RegionMessages {
			messages = r.Elements
		}
	}
	require.Len(t, messages, 2)
	assert.Equal(t, second, messages[0].ID)
	assert.Equal(t, first, messages[1].ID)
	assert.Equal(t, notification.NoticeClass, messages[0].Class)
	assert.True(t, messages[0].Dismissible)
	assert.Equal(t, "two", messages[0].Text)

	timers := deps.sched.All()
	require.Len(t, timers, 2)
	assert.Equal(t, DefaultDisplayWindow, timers[0].Delay)
}

func TestPresentFallsBackToMain(t *testing.T) {
	doc := page.NewMemory(page.RegionMain)
	uc, _ := initUseCase(t, doc, nil)

	id, err := uc.Present(context.Background(), "hello", "")
	require.NoError(t, err)

	el, ok := doc.Element(id)
	require.True(t, ok)
	assert.Equal(t, "hello", el.Text)
}

func TestPresentWithoutRegionStillAlerts(t *testing.T) {
	doc := page.NewMemory()
	uc, deps := initUseCase(t, doc, func(c *Config) { c.Permission = notification.PermissionGranted })

	_, err := uc.Present(context.Background(), "hello", "3")
	assert.ErrorIs(t, err, notification.ErrNoRegion)
	assert.Empty(t, deps.sched.All())

	select {
	case a := <-deps.alerter.alerts:
		assert.Equal(t, alert{title: DefaultTitle, text: "hello"}, a)
	case <-time.After(time.Second):
		t.Fatal("alert not raised")
	}
}

func TestPresentWithoutPermissionDoesNotAlert(t *testing.T) {
	uc, deps := initUseCase(t, page.NewMemory(page.RegionMain), func(c *Config) { c.Permission = notification.PermissionDenied })

	_, err := uc.Present(context.Background(), "quiet", "")
	require.NoError(t, err)

	select {
	case <-deps.alerter.alerts:
		t.Fatal("alert raised without permission")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Zero(t, uc.Stats().Alerts)
}

func TestExpiryAndDismissAreIdempotent(t *testing.T) {
	doc := page.NewMemory(page.RegionMessages)
	uc, deps := initUseCase(t, doc, nil)

	id, err := uc.Present(context.Background(), "bye", "")
	require.NoError(t, err)
	timer := deps.sched.All()[0]

	// Timer first, then user.
	require.True(t, timer.Fire())
	_, ok := doc.Element(id)
	assert.False(t, ok)
	assert.False(t, uc.Dismiss(context.Background(), id))

	// User first, then timer.
	id, err = uc.Present(context.Background(), "again", "")
	require.NoError(t, err)
	timer = deps.sched.All()[1]

	assert.True(t, uc.Dismiss(context.Background(), id))
	assert.True(t, timer.Cancelled())
	assert.False(t, timer.Fire())
	assert.False(t, uc.Dismiss(context.Background(), id))

	st := uc.Stats()
	assert.Equal(t, int64(1), st.Expired)
	assert.Equal(t, int64(1), st.Dismissed)
	assert.Zero(t, st.Active)
}

func TestToastCreatesRegionLazily(t *testing.T) {
	doc := page.NewMemory(page.RegionMain)
	uc, deps := initUseCase(t, doc, nil)

	assert.False(t, doc.HasRegion(page.RegionToasts))

	first := uc.Toast(context.Background(), "Form auto-saved successfully", notification.SeveritySuccess)
	second := uc.Toast(context.Background(), "Heads up", "")
	require.NotEmpty(t, first)
	require.NotEmpty(t, second)

	var toasts page.RegionSnapshot
	for _, r := range doc.Snapshot().Regions {
		if r.Name == page.RegionToasts {
			toasts = r
		}
	}
	assert.Equal(t, page.PositionBottomEnd, toasts.Position)
	require.Len(t, toasts.Elements, 2)
	assert.Equal(t, first, toasts.Elements[0].ID)
	assert.Equal(t, "toast text-white bg-success", toasts.Elements[0].Class)
	assert.Equal(t, "toast text-white bg-info", toasts.Elements[1].Class)

	for _, timer := range deps.sched.All() {
		assert.Equal(t, DefaultDisplayWindow, timer.Delay)
		require.True(t, timer.Fire())
	}
	_, ok := doc.Element(first)
	assert.False(t, ok)
	assert.Equal(t, int64(2), uc.Stats().Toasts)
}

func TestActiveListsLiveRecords(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	uc, _ := initUseCase(t, page.NewMemory(page.RegionMessages), func(c *Config) {
		c.Now = func() time.Time { return now }
	})

	id, err := uc.Present(context.Background(), "Task done", "7")
	require.NoError(t, err)

	assert.Equal(t, []notification.Record{{
		ElementID:      id,
		Text:           "Task done",
		NotificationID: "7",
		CreatedAt:      now,
	}}, uc.Active())
}
