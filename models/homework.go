package models

import (
	"strconv"
	"time"
)

// Priority expresses how urgent a homework item is, independent of its
// due date.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Status is the lifecycle state of a homework item. Transitions are always
// caller-driven: nothing in the storage or scheduling layers moves an item
// from Pending to Overdue when its due date passes.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusOverdue    Status = "overdue"
)

// Homework is a single tracked assignment. The whole homework collection is
// serialized as one JSON blob under a fixed storage key.
type Homework struct {
	// ID is a time-based unique identifier assigned at creation.
	ID string `json:"id"`

	// SubjectID references a Subject by id. The reference is not enforced:
	// a dangling id simply fails to resolve to a subject name in the UI.
	SubjectID string `json:"subjectId"`

	// Title is the non-empty display string.
	Title string `json:"title"`

	Description string   `json:"description,omitempty"`
	Details     []string `json:"details,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	// DueDate is the deadline; nil means the item has no deadline and
	// never receives reminder notifications.
	DueDate *time.Time `json:"dueDate,omitempty"`

	Priority Priority `json:"priority"`
	Status   Status   `json:"status"`

	Attachments []Attachment `json:"attachments,omitempty"`

	// CompletedAt is set when Status becomes StatusCompleted and cleared
	// on any other status.
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// HomeworkPatch carries a partial update for a homework item. Nil fields are
// left untouched by Update; non-nil fields overwrite the stored value.
type HomeworkPatch struct {
	SubjectID   *string       `json:"subjectId,omitempty"`
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Details     *[]string     `json:"details,omitempty"`
	Tags        *[]string     `json:"tags,omitempty"`
	DueDate     **time.Time   `json:"-"`
	Priority    *Priority     `json:"priority,omitempty"`
	Status      *Status       `json:"status,omitempty"`
	Attachments *[]Attachment `json:"attachments,omitempty"`
}

// NewHomeworkID returns a time-based identifier for a new homework item.
func NewHomeworkID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}
