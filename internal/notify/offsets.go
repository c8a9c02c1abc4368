package notify

import (
	"time"

	"github.com/hexaaagon/tugascollecter/internal/config"
)

// Offset is one step of the reminder cascade. Days > 0 marks a day-based
// offset whose reminder is anchored to the configured hour on the computed
// day; hour-based offsets use the exact time delta.
type Offset struct {
	Lead time.Duration
	Days int
}

// reminderOffsets is the fixed, ordered cascade evaluated for every
// homework item with a due date.
var reminderOffsets = []Offset{
	{Lead: 14 * 24 * time.Hour, Days: 14},
	{Lead: 7 * 24 * time.Hour, Days: 7},
	{Lead: 5 * 24 * time.Hour, Days: 5},
	{Lead: 3 * 24 * time.Hour, Days: 3},
	{Lead: 2 * 24 * time.Hour, Days: 2},
	{Lead: 24 * time.Hour, Days: 1},
	{Lead: 18 * time.Hour},
	{Lead: 12 * time.Hour},
	{Lead: 6 * time.Hour},
	{Lead: 3 * time.Hour},
	{Lead: 2 * time.Hour},
	{Lead: 1 * time.Hour},
}

// Reminder is one computed cascade entry: the offset it came from and the
// delay until it fires, after the minimum-lead clamp.
type Reminder struct {
	Offset   Offset
	DueToday bool
	Delay    time.Duration
}

// ComputeReminders evaluates the cascade for a due date at the given
// instant. A reminder is produced only when there is still more lead time
// than the offset spans and the target instant is in the future; targets
// already in the past are skipped outright, while near-future targets are
// clamped up to cfg.MinLead so nothing fires essentially immediately.
//
// An extra "due today" reminder is produced at cfg.DueTodayHour local time
// when the due date falls on today's calendar date and that hour has not
// passed yet.
func ComputeReminders(due, now time.Time, cfg config.Notify) []Reminder {
	var reminders []Reminder

	for _, offset := range reminderOffsets {
		if due.Sub(now) <= offset.Lead {
			continue
		}

		var target time.Time
		if offset.Days > 0 {
			day := due.In(now.Location()).AddDate(0, 0, -offset.Days)
			target = time.Date(day.Year(), day.Month(), day.Day(), cfg.DayAnchorHour, 0, 0, 0, now.Location())
		} else {
			target = due.Add(-offset.Lead)
		}

		if !target.After(now) {
			continue
		}

		delay := target.Sub(now)
		if delay < cfg.MinLead {
			delay = cfg.MinLead
		}

		reminders = append(reminders, Reminder{Offset: offset, Delay: delay})
	}

	localDue := due.In(now.Location())
	if sameDay(localDue, now) {
		target := time.Date(now.Year(), now.Month(), now.Day(), cfg.DueTodayHour, 0, 0, 0, now.Location())
		if target.After(now) {
			delay := target.Sub(now)
			if delay < cfg.MinLead {
				delay = cfg.MinLead
			}
			reminders = append(reminders, Reminder{DueToday: true, Delay: delay})
		}
	}

	return reminders
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
