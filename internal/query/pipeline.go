// Package query derives the displayed views of the task collection.
// Every function here is pure: same inputs, same output, no I/O.
package query

import (
	"sort"
	"strings"
	"time"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
)

// PriorityAll disables the priority filter.
const PriorityAll = "all"

// UpcomingWindowDays is the length of the upcoming-deadlines window.
const UpcomingWindowDays = 7

// Filter is the list view state.
type Filter struct {
	ShowCompleted bool
	// Priority is "all", "" or one of the priority values.
	Priority string
	Search   string
}

// Key is a canonical string for the filter, used as a cache key.
func (f Filter) Key() string {
	p := strings.ToLower(strings.TrimSpace(f.Priority))
	if p == "" {
		p = PriorityAll
	}
	completed := "0"
	if f.ShowCompleted {
		completed = "1"
	}
	return completed + ":" + p + ":" + normalizeSearch(f.Search)
}

func normalizeSearch(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// VisibleTasks filters tasks by f and returns them in display order.
// The input slice is not modified.
func VisibleTasks(tasks []dom.Task, f Filter) []dom.Task {
	priority := strings.ToLower(strings.TrimSpace(f.Priority))
	q := normalizeSearch(f.Search)

	out := make([]dom.Task, 0, len(tasks))
	for _, t := range tasks {
		if !f.ShowCompleted && t.Completed {
			continue
		}
		if priority != "" && priority != PriorityAll && string(t.Priority) != priority {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			continue
		}
		out = append(out, t)
	}
	// Stable: collection order breaks ties on all four keys.
	sort.SliceStable(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// Less reports whether a is displayed before b: important first, then
// incomplete, then higher priority, then newest.
func Less(a, b dom.Task) bool {
	if a.Important != b.Important {
		return a.Important
	}
	if a.Completed != b.Completed {
		return !a.Completed
	}
	if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
		return ra < rb
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// Upcoming returns incomplete tasks due in [today, today+7d), soonest first.
// today is read in its own location.
func Upcoming(tasks []dom.Task, today time.Time) []dom.Task {
	out := make([]dom.Task, 0)
	for _, t := range tasks {
		if t.Completed || t.DueDate == nil {
			continue
		}
		days := DaysUntil(*t.DueDate, today)
		if days >= 0 && days < UpcomingWindowDays {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(*out[j].DueDate)
	})
	return out
}

// DaysUntil counts calendar days from today's date to due.
func DaysUntil(due dom.Date, today time.Time) int {
	return due.DaysSince(dom.DateOf(today))
}

// ClassifyDueDate buckets a due date for presentation.
func ClassifyDueDate(due *dom.Date, today time.Time, completed bool) dom.DueStatus {
	if due == nil || completed {
		return dom.DueNone
	}
	switch days := DaysUntil(*due, today); {
	case days < 0:
		return dom.DueOverdue
	case days == 0:
		return dom.DueToday
	case days == 1:
		return dom.DueTomorrow
	default:
		return dom.DueUpcoming
	}
}

// ComputeStats counts over the full, unfiltered collection.
func ComputeStats(tasks []dom.Task) dom.Stats {
	var s dom.Stats
	s.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
			continue
		}
		s.Pending++
		if t.Priority == dom.PriorityHigh {
			s.HighPriorityPending++
		}
	}
	return s
}
