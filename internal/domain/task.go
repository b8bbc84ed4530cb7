package domain

import (
	"fmt"
	"strings"
	"time"
)

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority accepts low/medium/high in any case.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("priority must be one of low, medium, high, got %q", s)
	}
	return p, nil
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities for display: high 0, medium 1, low 2.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Label is the capitalized display name.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	}
	return string(p)
}

// ChecklistItem is a sub-step of a task.
type ChecklistItem struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Task is the domain entity. Not tied to gin, Postgres or Redis.
// Field names in JSON match the persisted record.
type Task struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Completed   bool            `json:"completed" yaml:"completed"`
	Important   bool            `json:"important" yaml:"important"`
	Priority    Priority        `json:"priority" yaml:"priority"`
	DueDate     *Date           `json:"dueDate,omitempty" yaml:"due_date,omitempty"`
	CreatedAt   time.Time       `json:"createdAt" yaml:"created_at"`
	Checklist   []ChecklistItem `json:"checklist" yaml:"checklist"`
}

// Clone returns a copy that shares no mutable state with t.
func (t Task) Clone() Task {
	out := t
	if t.DueDate != nil {
		d := *t.DueDate
		out.DueDate = &d
	}
	if t.Checklist != nil {
		out.Checklist = make([]ChecklistItem, len(t.Checklist))
		copy(out.Checklist, t.Checklist)
	}
	return out
}

// ChecklistIndex returns the position of the item with the given id, or -1.
func (t Task) ChecklistIndex(itemID string) int {
	for i := range t.Checklist {
		if t.Checklist[i].ID == itemID {
			return i
		}
	}
	return -1
}

// Draft carries the caller-supplied fields of a new task.
type Draft struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     *Date
	Checklist   []ChecklistItem
}

// Patch is a partial update. nil means "no change".
// ClearDueDate removes the due date and wins over DueDate.
type Patch struct {
	Title        *string
	Description  *string
	Priority     *Priority
	DueDate      *Date
	ClearDueDate bool
	Checklist    *[]ChecklistItem
	Completed    *bool
	Important    *bool
}

// Suggestion is a generated task idea for a goal.
type Suggestion struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Draft turns an accepted suggestion into a new task with default fields.
func (s Suggestion) Draft() Draft {
	return Draft{
		Title:       strings.TrimSpace(s.Title),
		Description: strings.TrimSpace(s.Description),
		Priority:    PriorityMedium,
	}
}

// DueStatus classifies a due date relative to today.
type DueStatus string

const (
	DueNone     DueStatus = "none"
	DueOverdue  DueStatus = "overdue"
	DueToday    DueStatus = "today"
	DueTomorrow DueStatus = "tomorrow"
	DueUpcoming DueStatus = "upcoming"
)

// Stats are aggregate counts over the whole collection.
type Stats struct {
	Total               int `json:"total"`
	Completed           int `json:"completed"`
	Pending             int `json:"pending"`
	HighPriorityPending int `json:"high_priority_pending"`
}
