package notify

import (
	"fmt"
	"time"

	"github.com/hexaaagon/tugascollecter/models"
)

// Texts formats notification content in one language. The language is
// threaded through explicitly: callers resolve a Texts value from the
// stored preference and pass it into the scheduling calls.
type Texts interface {
	ReminderTitle(hw models.Homework) string
	ReminderBody(hw models.Homework, r Reminder) string
	DueTodayTitle(hw models.Homework) string
	DueTodayBody(hw models.Homework) string
}

// TextsFor resolves a language code to its Texts implementation. Unknown
// codes fall back to English.
func TextsFor(lang string) Texts {
	switch lang {
	case "id":
		return indonesianTexts{}
	default:
		return englishTexts{}
	}
}

type englishTexts struct{}

func (englishTexts) ReminderTitle(hw models.Homework) string {
	return "Homework reminder"
}

func (englishTexts) ReminderBody(hw models.Homework, r Reminder) string {
	if r.Offset.Days > 0 {
		unit := "days"
		if r.Offset.Days == 1 {
			unit = "day"
		}
		return fmt.Sprintf("%q is due in %d %s", hw.Title, r.Offset.Days, unit)
	}

	hours := int(r.Offset.Lead / time.Hour)
	unit := "hours"
	if hours == 1 {
		unit = "hour"
	}
	return fmt.Sprintf("%q is due in %d %s", hw.Title, hours, unit)
}

func (englishTexts) DueTodayTitle(hw models.Homework) string {
	return "Due today"
}

func (englishTexts) DueTodayBody(hw models.Homework) string {
	return fmt.Sprintf("%q is due today", hw.Title)
}

type indonesianTexts struct{}

func (indonesianTexts) ReminderTitle(hw models.Homework) string {
	return "Pengingat tugas"
}

func (indonesianTexts) ReminderBody(hw models.Homework, r Reminder) string {
	if r.Offset.Days > 0 {
		return fmt.Sprintf("%q jatuh tempo dalam %d hari", hw.Title, r.Offset.Days)
	}
	return fmt.Sprintf("%q jatuh tempo dalam %d jam", hw.Title, int(r.Offset.Lead/time.Hour))
}

func (indonesianTexts) DueTodayTitle(hw models.Homework) string {
	return "Jatuh tempo hari ini"
}

func (indonesianTexts) DueTodayBody(hw models.Homework) string {
	return fmt.Sprintf("%q jatuh tempo hari ini", hw.Title)
}
