package query

import (
	"fmt"
	"strings"
	"time"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
)

// RelativeDueLabel is the short label shown on the upcoming panel.
func RelativeDueLabel(due dom.Date, today time.Time) string {
	switch days := DaysUntil(due, today); days {
	case 0:
		return "Due Today"
	case 1:
		return "Due Tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", days)
	}
}

// ShareText renders a task as plain text for sharing or copying.
func ShareText(t dom.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 %s\n", t.Title)
	if t.Description != "" {
		fmt.Fprintf(&b, "📋 %s\n", t.Description)
	}
	fmt.Fprintf(&b, "🚩 Priority: %s\n", t.Priority.Label())
	if t.DueDate != nil {
		fmt.Fprintf(&b, "📅 Due: %s\n", t.DueDate.In(time.UTC).Format("Jan 2, 2006"))
	}
	if len(t.Checklist) > 0 {
		b.WriteString("\n✅ Checklist:\n")
		for i, item := range t.Checklist {
			mark := "☐"
			if item.Completed {
				mark = "☑"
			}
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%s %s", mark, item.Text)
		}
	}
	return b.String()
}
