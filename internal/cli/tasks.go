package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/dto"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/query"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/service"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/utils"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return errors.New("Title cannot be empty.")
			}
			desc, _ := cmd.Flags().GetString("desc")
			prio, _ := cmd.Flags().GetString("priority")
			dueRaw, _ := cmd.Flags().GetString("due")
			items, _ := cmd.Flags().GetStringArray("item")

			p, err := dom.ParsePriority(prio)
			if err != nil {
				return err
			}
			d := dom.Draft{Title: title, Description: strings.TrimSpace(desc), Priority: p}
			if dueRaw != "" {
				due, err := dto.ParseDueDate(dueRaw)
				if err != nil {
					return err
				}
				d.DueDate = &due
			}
			for _, it := range items {
				if it = strings.TrimSpace(it); it != "" {
					d.Checklist = append(d.Checklist, dom.ChecklistItem{Text: it})
				}
			}

			t, err := coreFrom(cmd).Tasks.Add(cmd.Context(), d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s  %s\n", shortID(t.ID), t.Title)
			return nil
		},
	}
	cmd.Flags().String("desc", "", "description")
	cmd.Flags().StringP("priority", "p", "medium", "low, medium or high")
	cmd.Flags().String("due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringArray("item", nil, "checklist item (repeatable)")
	return cmd
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks in display order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			prio, _ := cmd.Flags().GetString("priority")
			search, _ := cmd.Flags().GetString("search")

			f := query.Filter{ShowCompleted: all, Priority: query.PriorityAll, Search: search}
			if prio != "" && !strings.EqualFold(prio, query.PriorityAll) {
				p, err := dom.ParsePriority(prio)
				if err != nil {
					return err
				}
				f.Priority = string(p)
			}
			core := coreFrom(cmd)
			list, err := core.Queries.Visible(cmd.Context(), f)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
				return nil
			}
			printTasks(cmd.OutOrStdout(), list, core.Queries.Today())
			return nil
		},
	}
	cmd.Flags().BoolP("all", "a", false, "include completed tasks")
	cmd.Flags().StringP("priority", "p", "all", "all, low, medium or high")
	cmd.Flags().StringP("search", "s", "", "search title and description")
	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			core := coreFrom(cmd)
			id, err := resolveID(core.Tasks, args[0])
			if err != nil {
				return err
			}
			t, err := core.Tasks.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:        %s\n", t.ID)
			fmt.Fprintf(out, "Created:   %s\n", t.CreatedAt.In(core.Queries.Today().Location()).Format("2006-01-02 15:04"))
			fmt.Fprintf(out, "Status:    %s\n", statusWord(t))
			if t.DueDate != nil {
				fmt.Fprintf(out, "Due:       %s (%s)\n", t.DueDate, core.Queries.DueStatus(t))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, query.ShareText(t))
			return nil
		},
	}
}

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			core := coreFrom(cmd)
			id, err := resolveID(core.Tasks, args[0])
			if err != nil {
				return err
			}
			var p dom.Patch
			fl := cmd.Flags()
			if fl.Changed("title") {
				title, _ := fl.GetString("title")
				title = strings.TrimSpace(title)
				if title == "" {
					return errors.New("Title cannot be empty.")
				}
				p.Title = &title
			}
			if fl.Changed("desc") {
				desc, _ := fl.GetString("desc")
				desc = strings.TrimSpace(desc)
				p.Description = &desc
			}
			if fl.Changed("priority") {
				raw, _ := fl.GetString("priority")
				pr, err := dom.ParsePriority(raw)
				if err != nil {
					return err
				}
				p.Priority = &pr
			}
			if fl.Changed("due") {
				raw, _ := fl.GetString("due")
				if strings.TrimSpace(raw) == "" || strings.EqualFold(raw, "none") {
					p.ClearDueDate = true
				} else {
					due, err := dto.ParseDueDate(raw)
					if err != nil {
						return err
					}
					p.DueDate = &due
				}
			}
			if fl.Changed("item") {
				raw, _ := fl.GetStringArray("item")
				items := make([]dom.ChecklistItem, 0, len(raw))
				for _, it := range raw {
					if it = strings.TrimSpace(it); it != "" {
						items = append(items, dom.ChecklistItem{Text: it})
					}
				}
				p.Checklist = &items
			}

			t, err := core.Tasks.Update(cmd.Context(), id, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s  %s\n", shortID(t.ID), t.Title)
			return nil
		},
	}
	cmd.Flags().String("title", "", "new title")
	cmd.Flags().String("desc", "", "new description")
	cmd.Flags().StringP("priority", "p", "", "low, medium or high")
	cmd.Flags().String("due", "", `due date (YYYY-MM-DD), "none" clears it`)
	cmd.Flags().StringArray("item", nil, "replace the checklist (repeatable)")
	return cmd
}

func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			core := coreFrom(cmd)
			id, err := resolveID(core.Tasks, args[0])
			if err != nil {
				return err
			}
			t, err := core.Tasks.ToggleCompleted(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", statusWord(t), t.Title)
			return nil
		},
	}
}

func newStarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "star <id>",
		Short: "Toggle important",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			core := coreFrom(cmd)
			id, err := resolveID(core.Tasks, args[0])
			if err != nil {
				return err
			}
			t, err := core.Tasks.ToggleImportant(cmd.Context(), id)
			if err != nil {
				return err
			}
			state := "unstarred"
			if t.Important {
				state = "starred"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", state, t.Title)
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <id> <item>",
		Short: "Toggle a checklist item (by id or 1-based position)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			core := coreFrom(cmd)
			id, err := resolveID(core.Tasks, args[0])
			if err != nil {
				return err
			}
			t, err := core.Tasks.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			itemID := args[1]
			var pos int
			if _, err := fmt.Sscanf(itemID, "%d", &pos); err == nil && t.ChecklistIndex(itemID) < 0 {
				if pos < 1 || pos > len(t.Checklist) {
					return fmt.Errorf("task has %d checklist items", len(t.Checklist))
				}
				itemID = t.Checklist[pos-1].ID
			}
			t, err = core.Tasks.ToggleChecklistItem(cmd.Context(), id, itemID)
			if err != nil {
				return err
			}
			item := t.Checklist[t.ChecklistIndex(itemID)]
			mark := "☐"
			if item.Completed {
				mark = "☑"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, item.Text)
			return nil
		},
	}
}

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task permanently",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				return errors.New("deleting cannot be undone, pass --yes to confirm")
			}
			core := coreFrom(cmd)
			id, err := resolveID(core.Tasks, args[0])
			if err != nil {
				return err
			}
			if err := core.Tasks.Remove(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", shortID(id))
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "confirm deletion")
	return cmd
}

func newUpcomingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upcoming",
		Short: "Incomplete tasks due in the next 7 days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			core := coreFrom(cmd)
			list, err := core.Queries.Upcoming(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "Nothing due in the next 7 days.")
				return nil
			}
			today := core.Queries.Today()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, t := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\n", shortID(t.ID), query.RelativeDueLabel(*t.DueDate, today), t.Title)
			}
			return w.Flush()
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Task counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := coreFrom(cmd).Queries.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total %d  completed %d  pending %d  high-priority pending %d\n",
				s.Total, s.Completed, s.Pending, s.HighPriorityPending)
			return nil
		},
	}
}

func newShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share <id>",
		Short: "Print a task as shareable text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			core := coreFrom(cmd)
			id, err := resolveID(core.Tasks, args[0])
			if err != nil {
				return err
			}
			t, err := core.Tasks.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), query.ShareText(t))
			return nil
		},
	}
}

// resolveID accepts a full id or a unique prefix of one.
func resolveID(store *service.TaskService, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	tasks, _ := store.Snapshot()
	var match string
	for _, t := range tasks {
		if t.ID == arg {
			return arg, nil
		}
		if arg != "" && strings.HasPrefix(t.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", arg)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("task %q: %w", arg, service.ErrNotFound)
	}
	return match, nil
}

func printTasks(out io.Writer, list []dom.Task, today time.Time) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATE\tPRIORITY\tDUE\tTITLE")
	for _, t := range list {
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.String()
			if st := query.ClassifyDueDate(t.DueDate, today, t.Completed); st == dom.DueOverdue {
				due += " !"
			}
		}
		title := utils.Truncate(t.Title, 50)
		if n := len(t.Checklist); n > 0 {
			done := 0
			for _, it := range t.Checklist {
				if it.Completed {
					done++
				}
			}
			title = fmt.Sprintf("%s [%d/%d]", title, done, n)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", shortID(t.ID), stateMarks(t), t.Priority.Label(), due, title)
	}
	_ = w.Flush()
}

func stateMarks(t dom.Task) string {
	s := "[ ]"
	if t.Completed {
		s = "[x]"
	}
	if t.Important {
		s += "*"
	}
	return s
}

func statusWord(t dom.Task) string {
	if t.Completed {
		return "completed"
	}
	return "pending"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
