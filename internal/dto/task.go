package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
)

// DueDate parses due_date from JSON as a date ("2006-01-02") or an RFC3339
// datetime, of which only the calendar date is kept. null or "" clears it.
// Set reports whether the field was present at all.
type DueDate struct {
	set  bool
	date *dom.Date
}

func (d *DueDate) UnmarshalJSON(data []byte) error {
	d.set = true
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("due_date: use date (YYYY-MM-DD) or RFC3339 datetime")
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.date = nil
		return nil
	}
	date, err := ParseDueDate(*raw)
	if err != nil {
		return err
	}
	d.date = &date
	return nil
}

// ParseDueDate accepts "2006-01-02", RFC3339 or "2006-01-02T15:04:05".
func ParseDueDate(s string) (dom.Date, error) {
	s = strings.TrimSpace(s)
	if d, err := dom.ParseDate(s); err == nil {
		return d, nil
	}
	for _, layout := range []string{time.RFC3339, time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return dom.DateOf(t), nil
		}
	}
	return dom.Date{}, fmt.Errorf("due_date: use date (YYYY-MM-DD) or RFC3339 datetime")
}

func (d DueDate) Set() bool      { return d.set }
func (d DueDate) Ptr() *dom.Date { return d.date }

type ChecklistItemRequest struct {
	ID        string `json:"id"`
	Text      string `json:"text" binding:"max=500"`
	Completed bool   `json:"completed"`
}

type CreateTaskRequest struct {
	Title       string                 `json:"title" binding:"max=200"`
	Description string                 `json:"description" binding:"max=2000"`
	Priority    string                 `json:"priority"` // low, medium (default), high
	DueDate     DueDate                `json:"due_date" swaggertype:"string" example:"2026-10-20"`
	Checklist   []ChecklistItemRequest `json:"checklist"`
}

// UpdateTaskRequest is a partial update; absent fields are left alone.
// due_date: null clears the date.
type UpdateTaskRequest struct {
	Title       *string                 `json:"title" binding:"omitempty,max=200"`
	Description *string                 `json:"description" binding:"omitempty,max=2000"`
	Priority    *string                 `json:"priority"`
	DueDate     DueDate                 `json:"due_date" swaggertype:"string" example:"2026-10-20"`
	Checklist   *[]ChecklistItemRequest `json:"checklist"`
	Completed   *bool                   `json:"completed"`
	Important   *bool                   `json:"important"`
}

type ChecklistItemResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type TaskResponse struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Completed   bool                    `json:"completed"`
	Important   bool                    `json:"important"`
	Priority    string                  `json:"priority"`
	DueDate     *string                 `json:"due_date"`
	DueStatus   string                  `json:"due_status"`
	DueLabel    string                  `json:"due_label,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	Checklist   []ChecklistItemResponse `json:"checklist"`
}

type ListTasksResponse struct {
	Items []TaskResponse `json:"items"`
}

// UpcomingResponse carries the upcoming-deadlines panel. Visible is false
// when the panel is switched off or there is nothing due.
type UpcomingResponse struct {
	Visible     bool           `json:"visible"`
	ShowPanel   bool           `json:"show_panel"`
	AccentColor string         `json:"accent_color"`
	Items       []TaskResponse `json:"items"`
}

type ShareResponse struct {
	Text string `json:"text"`
}

type StatsResponse struct {
	Total               int `json:"total"`
	Completed           int `json:"completed"`
	Pending             int `json:"pending"`
	HighPriorityPending int `json:"high_priority_pending"`
}

// ChecklistFromRequest converts request items, trimming text and dropping
// blank entries.
func ChecklistFromRequest(items []ChecklistItemRequest) []dom.ChecklistItem {
	out := make([]dom.ChecklistItem, 0, len(items))
	for _, it := range items {
		text := strings.TrimSpace(it.Text)
		if text == "" {
			continue
		}
		out = append(out, dom.ChecklistItem{ID: strings.TrimSpace(it.ID), Text: text, Completed: it.Completed})
	}
	return out
}
