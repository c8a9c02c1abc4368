package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexaaagon/tugascollecter/internal/logger"
	"github.com/hexaaagon/tugascollecter/models"
)

type fakeNotifier struct {
	pending    map[string]Notification
	cancelled  []string
	cancelAlls int

	scheduleErr error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{pending: make(map[string]Notification)}
}

func (f *fakeNotifier) Schedule(_ context.Context, n Notification) error {
	if f.scheduleErr != nil {
		return f.scheduleErr
	}
	f.pending[n.ID] = n
	return nil
}

func (f *fakeNotifier) Cancel(_ context.Context, id string) error {
	f.cancelled = append(f.cancelled, id)
	delete(f.pending, id)
	return nil
}

func (f *fakeNotifier) CancelAll(context.Context) error {
	f.cancelAlls++
	f.pending = make(map[string]Notification)
	return nil
}

func (f *fakeNotifier) Scheduled(context.Context) ([]Notification, error) {
	out := make([]Notification, 0, len(f.pending))
	for _, n := range f.pending {
		out = append(out, n)
	}
	return out, nil
}

type fakeGate struct {
	status   bool
	request  bool
	requests int
}

func (f *fakeGate) Status(context.Context) (bool, error) { return f.status, nil }

func (f *fakeGate) Request(context.Context) (bool, error) {
	f.requests++
	return f.request, nil
}

type fakeHomeworkSource struct {
	items []models.Homework
}

func (f *fakeHomeworkSource) List(context.Context) ([]models.Homework, error) {
	return f.items, nil
}

type fakePrefSource struct {
	prefs models.Preferences
}

func (f *fakePrefSource) Preferences(context.Context) (models.Preferences, error) {
	return f.prefs, nil
}

type schedulerFixture struct {
	scheduler *Scheduler
	notifier  *fakeNotifier
	gate      *fakeGate
	homework  *fakeHomeworkSource
	prefs     *fakePrefSource
	now       time.Time
}

func newSchedulerFixture(t *testing.T) *schedulerFixture {
	t.Helper()

	f := &schedulerFixture{
		notifier: newFakeNotifier(),
		gate:     &fakeGate{status: true},
		homework: &fakeHomeworkSource{},
		prefs:    &fakePrefSource{prefs: models.DefaultPreferences()},
		now:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	f.scheduler = NewScheduler(f.notifier, f.gate, f.homework, f.prefs, testNotifyConfig(), logger.Nop())
	f.scheduler.now = func() time.Time { return f.now }
	f.scheduler.sleep = func(time.Duration) {}

	id := 0
	f.scheduler.newID = func() string {
		id++
		return string(rune('a' + id - 1))
	}

	require.NoError(t, f.scheduler.Initialize(context.Background()))
	return f
}

func pendingHomework(id string, due time.Time) models.Homework {
	return models.Homework{
		ID:      id,
		Title:   "Math worksheet",
		Status:  models.StatusPending,
		DueDate: &due,
	}
}

func TestScheduler_ScheduleHomeworkReminders(t *testing.T) {
	f := newSchedulerFixture(t)

	hw := pendingHomework("h1", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	scheduled, err := f.scheduler.ScheduleHomeworkReminders(context.Background(), hw, TextsFor("en"))

	require.NoError(t, err)
	assert.Len(t, scheduled, 11)
	assert.Len(t, f.notifier.pending, 11)
	for _, n := range scheduled {
		assert.Equal(t, "h1", n.Data[DataKeyHomeworkID])
		assert.NotEmpty(t, n.Title)
		assert.NotEmpty(t, n.Body)
	}
}

func TestScheduler_ScheduleCancelsPreviousCascade(t *testing.T) {
	f := newSchedulerFixture(t)
	ctx := context.Background()

	hw := pendingHomework("h1", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	first, err := f.scheduler.ScheduleHomeworkReminders(ctx, hw, TextsFor("en"))
	require.NoError(t, err)

	other := pendingHomework("h2", time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC))
	_, err = f.scheduler.ScheduleHomeworkReminders(ctx, other, TextsFor("en"))
	require.NoError(t, err)

	second, err := f.scheduler.ScheduleHomeworkReminders(ctx, hw, TextsFor("en"))
	require.NoError(t, err)

	// The first cascade for h1 is gone, the second one and h2's cascade
	// remain.
	for _, n := range first {
		assert.NotContains(t, f.notifier.pending, n.ID)
	}
	for _, n := range second {
		assert.Contains(t, f.notifier.pending, n.ID)
	}
	byHomework := map[string]int{}
	for _, n := range f.notifier.pending {
		byHomework[n.Data[DataKeyHomeworkID]]++
	}
	assert.Equal(t, 11, byHomework["h1"])
	assert.Positive(t, byHomework["h2"])
}

func TestScheduler_CompletedHomeworkOnlyCancels(t *testing.T) {
	f := newSchedulerFixture(t)
	ctx := context.Background()

	hw := pendingHomework("h1", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	_, err := f.scheduler.ScheduleHomeworkReminders(ctx, hw, TextsFor("en"))
	require.NoError(t, err)

	hw.Status = models.StatusCompleted
	scheduled, err := f.scheduler.ScheduleHomeworkReminders(ctx, hw, TextsFor("en"))

	require.NoError(t, err)
	assert.Empty(t, scheduled)
	assert.Empty(t, f.notifier.pending)
}

func TestScheduler_PastDueSchedulesNothing(t *testing.T) {
	f := newSchedulerFixture(t)

	hw := pendingHomework("h1", f.now.Add(-time.Hour))
	scheduled, err := f.scheduler.ScheduleHomeworkReminders(context.Background(), hw, TextsFor("en"))

	require.NoError(t, err)
	assert.Empty(t, scheduled)
}

func TestScheduler_NoDueDateSchedulesNothing(t *testing.T) {
	f := newSchedulerFixture(t)

	hw := models.Homework{ID: "h1", Status: models.StatusPending}
	scheduled, err := f.scheduler.ScheduleHomeworkReminders(context.Background(), hw, TextsFor("en"))

	require.NoError(t, err)
	assert.Empty(t, scheduled)
}

func TestScheduler_WithoutPermissionNoOp(t *testing.T) {
	f := newSchedulerFixture(t)
	f.gate.status = false
	require.NoError(t, f.scheduler.Initialize(context.Background()))

	hw := pendingHomework("h1", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	scheduled, err := f.scheduler.ScheduleHomeworkReminders(context.Background(), hw, TextsFor("en"))

	require.NoError(t, err)
	assert.Empty(t, scheduled)
	assert.Empty(t, f.notifier.pending)
}

func TestScheduler_RequestPermissionsSkippedWhenGranted(t *testing.T) {
	f := newSchedulerFixture(t)

	granted, err := f.scheduler.RequestPermissions(context.Background())

	require.NoError(t, err)
	assert.True(t, granted)
	assert.Zero(t, f.gate.requests)
}

func TestScheduler_RequestPermissionsPrompts(t *testing.T) {
	f := newSchedulerFixture(t)
	f.gate.status = false
	f.gate.request = true
	require.NoError(t, f.scheduler.Initialize(context.Background()))

	granted, err := f.scheduler.RequestPermissions(context.Background())

	require.NoError(t, err)
	assert.True(t, granted)
	assert.Equal(t, 1, f.gate.requests)
	assert.True(t, f.scheduler.Granted())
}

func TestScheduler_RescheduleAllPendingOnly(t *testing.T) {
	f := newSchedulerFixture(t)
	due := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	f.homework.items = []models.Homework{
		pendingHomework("h1", due),
		{ID: "h2", Status: models.StatusCompleted, DueDate: &due},
		{ID: "h3", Status: models.StatusInProgress, DueDate: &due},
		pendingHomework("h4", due),
	}

	err := f.scheduler.RescheduleAllHomeworkNotifications(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, f.notifier.cancelAlls)

	byHomework := map[string]int{}
	for _, n := range f.notifier.pending {
		byHomework[n.Data[DataKeyHomeworkID]]++
	}
	assert.Equal(t, 11, byHomework["h1"])
	assert.Equal(t, 11, byHomework["h4"])
	assert.NotContains(t, byHomework, "h2")
	assert.NotContains(t, byHomework, "h3")
}

func TestScheduler_RescheduleAllDisabledByPreference(t *testing.T) {
	f := newSchedulerFixture(t)
	f.prefs.prefs.NotificationsEnabled = false
	f.homework.items = []models.Homework{
		pendingHomework("h1", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)),
	}

	err := f.scheduler.RescheduleAllHomeworkNotifications(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, f.notifier.cancelAlls)
	assert.Empty(t, f.notifier.pending)
}

func TestScheduler_RescheduleAllUsesPreferredLanguage(t *testing.T) {
	f := newSchedulerFixture(t)
	f.prefs.prefs.Language = "id"
	f.homework.items = []models.Homework{
		pendingHomework("h1", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)),
	}

	err := f.scheduler.RescheduleAllHomeworkNotifications(context.Background())

	require.NoError(t, err)
	want := TextsFor("id").ReminderTitle(f.homework.items[0])
	found := false
	for _, n := range f.notifier.pending {
		if n.Title == want {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScheduler_RescheduleAllContinuesPastItemFailure(t *testing.T) {
	f := newSchedulerFixture(t)
	due := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	f.homework.items = []models.Homework{
		pendingHomework("h1", due),
		pendingHomework("h2", due),
	}

	// Fail while the first item schedules; the settle delay is sleep #1,
	// the first item's inter-item delay is sleep #2.
	calls := 0
	f.notifier.scheduleErr = errors.New("native layer unavailable")
	f.scheduler.sleep = func(time.Duration) {
		calls++
		if calls == 2 {
			f.notifier.scheduleErr = nil
		}
	}

	err := f.scheduler.RescheduleAllHomeworkNotifications(context.Background())

	require.NoError(t, err)
	byHomework := map[string]int{}
	for _, n := range f.notifier.pending {
		byHomework[n.Data[DataKeyHomeworkID]]++
	}
	assert.NotContains(t, byHomework, "h1")
	assert.Equal(t, 11, byHomework["h2"])
}

func TestScheduler_RescheduleAllWithoutPermissionNoOp(t *testing.T) {
	f := newSchedulerFixture(t)
	f.gate.status = false
	require.NoError(t, f.scheduler.Initialize(context.Background()))

	err := f.scheduler.RescheduleAllHomeworkNotifications(context.Background())

	require.NoError(t, err)
	assert.Zero(t, f.notifier.cancelAlls)
}
