package models

// Preferences holds user-level settings persisted under a fixed storage key.
type Preferences struct {
	// NotificationsEnabled gates all reminder scheduling; when false a bulk
	// reschedule short-circuits without touching the native scheduler.
	NotificationsEnabled bool `json:"notificationsEnabled"`

	// Language selects the notification body texts (e.g. "en", "id").
	Language string `json:"language"`

	// DefaultPriority is applied to new homework created without an
	// explicit priority.
	DefaultPriority Priority `json:"defaultPriority,omitempty"`
}

// DefaultPreferences are the settings used before the user changes anything.
func DefaultPreferences() Preferences {
	return Preferences{
		NotificationsEnabled: true,
		Language:             "en",
		DefaultPriority:      PriorityMedium,
	}
}

// Theme is the persisted UI theme selection. The core only stores and
// round-trips it; rendering is out of scope.
type Theme struct {
	Mode        string `json:"mode"`
	AccentColor string `json:"accentColor,omitempty"`
}
