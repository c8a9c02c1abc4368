package notify

import (
	"context"
	"sync"
	"time"

	"github.com/hexaaagon/tugascollecter/internal/config"
	"github.com/hexaaagon/tugascollecter/internal/logger"
	"github.com/hexaaagon/tugascollecter/internal/utils"
	"github.com/hexaaagon/tugascollecter/models"
)

// Scheduler manages the reminder lifecycle for homework items. Construct it
// once at process start; the OS permission state lives in an explicit field
// guarded by a mutex rather than module-level state.
type Scheduler struct {
	notifier Notifier
	gate     PermissionGate
	homework HomeworkSource
	prefs    PreferenceSource
	cfg      config.Notify
	logger   *logger.Logger

	now   func() time.Time
	sleep func(time.Duration)
	newID func() string

	mu      sync.Mutex
	granted bool
}

func NewScheduler(notifier Notifier, gate PermissionGate, homework HomeworkSource, prefs PreferenceSource, cfg config.Notify, log *logger.Logger) *Scheduler {
	return &Scheduler{
		notifier: notifier,
		gate:     gate,
		homework: homework,
		prefs:    prefs,
		cfg:      cfg,
		logger:   log,
		now:      time.Now,
		sleep:    time.Sleep,
		newID:    utils.NewUUIDGenerator().Generate,
	}
}

// Initialize checks the current OS permission state without prompting and
// records it. Call once at process start; scheduling calls are no-ops until
// permission is granted.
func (s *Scheduler) Initialize(ctx context.Context) error {
	granted, err := s.gate.Status(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.granted = granted
	s.mu.Unlock()

	s.logger.Debug().Bool("granted", granted).Msg("notification permission checked")
	return nil
}

// RequestPermissions prompts the user unless permission was already
// granted, and records the outcome.
func (s *Scheduler) RequestPermissions(ctx context.Context) (bool, error) {
	s.mu.Lock()
	granted := s.granted
	s.mu.Unlock()
	if granted {
		return true, nil
	}

	granted, err := s.gate.Request(ctx)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	s.granted = granted
	s.mu.Unlock()

	return granted, nil
}

// Granted reports the recorded permission state.
func (s *Scheduler) Granted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.granted
}

// ScheduleHomeworkReminders cancels any notifications already tagged with
// the homework id, then schedules the reminder cascade for its due date.
// The returned slice lists what was scheduled.
//
// Nothing is scheduled (and the cascade for the id stays cancelled) when
// permission was never granted, the item has no due date, the due date has
// passed, or the item is completed.
func (s *Scheduler) ScheduleHomeworkReminders(ctx context.Context, hw models.Homework, texts Texts) ([]Notification, error) {
	if !s.Granted() {
		return nil, nil
	}

	if err := s.CancelHomeworkReminders(ctx, hw.ID); err != nil {
		return nil, err
	}

	now := s.now()
	if hw.Status == models.StatusCompleted || hw.DueDate == nil || !hw.DueDate.After(now) {
		return nil, nil
	}

	var scheduled []Notification
	for _, reminder := range ComputeReminders(*hw.DueDate, now, s.cfg) {
		n := Notification{
			ID:    s.newID(),
			Data:  map[string]string{DataKeyHomeworkID: hw.ID},
			Delay: reminder.Delay,
		}
		if reminder.DueToday {
			n.Title = texts.DueTodayTitle(hw)
			n.Body = texts.DueTodayBody(hw)
		} else {
			n.Title = texts.ReminderTitle(hw)
			n.Body = texts.ReminderBody(hw, reminder)
		}

		if err := s.notifier.Schedule(ctx, n); err != nil {
			return scheduled, err
		}
		scheduled = append(scheduled, n)
	}

	s.logger.Debug().Str("homework", hw.ID).Int("count", len(scheduled)).Msg("reminders scheduled")
	return scheduled, nil
}

// CancelHomeworkReminders cancels every scheduled notification whose data
// tag matches the homework id, preventing duplicate cascades on repeated
// scheduling calls.
func (s *Scheduler) CancelHomeworkReminders(ctx context.Context, homeworkID string) error {
	pending, err := s.notifier.Scheduled(ctx)
	if err != nil {
		return err
	}

	for _, n := range pending {
		if n.Data[DataKeyHomeworkID] != homeworkID {
			continue
		}
		if err := s.notifier.Cancel(ctx, n.ID); err != nil {
			return err
		}
	}

	return nil
}

// RescheduleAllHomeworkNotifications rebuilds the reminder cascades from
// scratch: it cancels every outstanding notification, waits briefly so
// cancellation settles on the native layer, short-circuits when the user
// disabled notifications, then walks all homework with status pending —
// in-progress and completed items are deliberately excluded — scheduling
// each sequentially with a small delay between items to bound load on the
// native scheduler.
//
// A single item's scheduling failure is logged and does not abort the loop.
func (s *Scheduler) RescheduleAllHomeworkNotifications(ctx context.Context) error {
	if !s.Granted() {
		return nil
	}

	if err := s.notifier.CancelAll(ctx); err != nil {
		return err
	}
	s.sleep(s.cfg.SettleDelay)

	prefs, err := s.prefs.Preferences(ctx)
	if err != nil {
		return err
	}
	if !prefs.NotificationsEnabled {
		s.logger.Info().Msg("notifications disabled, skipping bulk reschedule")
		return nil
	}
	texts := TextsFor(prefs.Language)

	items, err := s.homework.List(ctx)
	if err != nil {
		return err
	}

	rescheduled := 0
	for _, hw := range items {
		if hw.Status != models.StatusPending {
			continue
		}

		if _, err := s.ScheduleHomeworkReminders(ctx, hw, texts); err != nil {
			s.logger.Err(err).Str("homework", hw.ID).Msg("reschedule failed for item")
		} else {
			rescheduled++
		}
		s.sleep(s.cfg.InterItemDelay)
	}

	s.logger.Info().Int("count", rescheduled).Msg("bulk reschedule finished")
	return nil
}
