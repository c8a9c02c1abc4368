package models

// Weekday names a day of the week a subject is taught on.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Subject groups homework items under a named course. Name uniqueness
// (case-insensitive) is checked by the caller before persistence; the
// storage layer does not enforce it.
type Subject struct {
	ID string `json:"id"`

	// Name is the display name, unique among subjects ignoring case.
	Name string `json:"name"`

	// Color is a hex color string like "#4F8EF7".
	Color string `json:"color"`

	// Days lists the weekdays the subject is scheduled on.
	Days []Weekday `json:"day,omitempty"`

	Description string `json:"description,omitempty"`
}

// SubjectPatch carries a partial update for a subject. Nil fields are left
// untouched by Update.
type SubjectPatch struct {
	Name        *string    `json:"name,omitempty"`
	Color       *string    `json:"color,omitempty"`
	Days        *[]Weekday `json:"day,omitempty"`
	Description *string    `json:"description,omitempty"`
}
