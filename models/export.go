package models

import "time"

// ExportVersion is written into every export file and checked on import.
const ExportVersion = "1.0"

// ExportPayload is the JSON document produced by a data export and consumed
// by the import validator. Version and ExportedAt are the minimum required
// fields for an import to be accepted; everything else is optional.
type ExportPayload struct {
	Version     string       `json:"version"`
	ExportedAt  time.Time    `json:"exportedAt"`
	Homework    []Homework   `json:"homework"`
	Subjects    []Subject    `json:"subjects"`
	Preferences *Preferences `json:"preferences,omitempty"`
	Theme       *Theme       `json:"theme,omitempty"`
}
