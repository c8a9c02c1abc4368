// Package notify computes and schedules the cascade of local reminder
// notifications for homework due dates, and manages their lifecycle:
// cancellation on status change and bulk rescheduling.
//
// The native notification subsystem sits behind the [Notifier] and
// [PermissionGate] interfaces; the scheduler itself is a plain service
// object constructed once at process start.
package notify

import (
	"context"
	"time"

	"github.com/hexaaagon/tugascollecter/models"
)

// DataKeyHomeworkID is the data-map tag carried on every scheduled
// notification so an item's whole cascade can be found and cancelled later.
const DataKeyHomeworkID = "homeworkId"

// Notification is the payload handed to the native subsystem: content plus
// a time-interval trigger.
type Notification struct {
	// ID uniquely identifies one scheduled notification for cancellation.
	ID string

	Title string
	Body  string

	// Data is an arbitrary string map carried on the notification; the
	// scheduler always sets DataKeyHomeworkID here.
	Data map[string]string

	// Delay is the time-interval trigger: how long from now the
	// notification fires.
	Delay time.Duration
}

// Notifier is the native scheduling boundary.
type Notifier interface {
	// Schedule registers one notification with the given trigger.
	Schedule(ctx context.Context, n Notification) error

	// Cancel removes one scheduled notification by id. Unknown ids are
	// not an error.
	Cancel(ctx context.Context, id string) error

	// CancelAll removes every outstanding notification process-wide.
	CancelAll(ctx context.Context) error

	// Scheduled lists all currently scheduled notifications.
	Scheduled(ctx context.Context) ([]Notification, error)
}

// PermissionGate is the two-phase OS permission boundary: Status never
// prompts, Request does.
type PermissionGate interface {
	Status(ctx context.Context) (bool, error)
	Request(ctx context.Context) (bool, error)
}

// HomeworkSource supplies the homework collection for bulk rescheduling.
// *store.HomeworkStore satisfies it.
type HomeworkSource interface {
	List(ctx context.Context) ([]models.Homework, error)
}

// PreferenceSource supplies user preferences; the bulk reschedule gate and
// the notification language come from here. *store.PreferenceStore
// satisfies it.
type PreferenceSource interface {
	Preferences(ctx context.Context) (models.Preferences, error)
}
