package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
)

func newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <goal>",
		Short: "Suggest tasks for a goal",
		Long: `Prints up to four task ideas for the goal. With a Gemini API key they are
generated remotely, otherwise they come from a built-in keyword table.

--accept adds the listed numbers as medium-priority tasks, e.g. --accept 1,3.
--accept all adds every suggestion.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			goal := strings.TrimSpace(strings.Join(args, " "))
			if goal == "" {
				return errors.New("Please enter a goal.")
			}
			accept, _ := cmd.Flags().GetString("accept")

			core := coreFrom(cmd)
			res := core.Engine.Resolve(cmd.Context(), goal)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Suggestions for %q (%s):\n", goal, res.Source)
			for i, s := range res.Suggestions {
				fmt.Fprintf(out, "  %d. %s\n", i+1, s.Title)
				if s.Description != "" {
					fmt.Fprintf(out, "     %s\n", s.Description)
				}
			}
			if accept == "" {
				return nil
			}

			picked, err := pickSuggestions(res.Suggestions, accept)
			if err != nil {
				return err
			}
			drafts := make([]dom.Draft, len(picked))
			for i, s := range picked {
				drafts[i] = s.Draft()
			}
			added, err := core.Tasks.AddMany(cmd.Context(), drafts)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Added %d task(s).\n", len(added))
			return nil
		},
	}
	cmd.Flags().String("accept", "", `numbers to add as tasks, e.g. "1,3", or "all"`)
	return cmd
}

// pickSuggestions selects suggestions by 1-based position, keeping the
// order they were shown in and ignoring repeats.
func pickSuggestions(list []dom.Suggestion, picks string) ([]dom.Suggestion, error) {
	if strings.EqualFold(strings.TrimSpace(picks), "all") {
		return list, nil
	}
	chosen := make([]bool, len(list))
	for _, part := range strings.Split(picks, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(part, "%d", &n); err != nil || n < 1 || n > len(list) {
			return nil, fmt.Errorf("no suggestion %q, pick 1-%d", part, len(list))
		}
		chosen[n-1] = true
	}
	var out []dom.Suggestion
	for i, ok := range chosen {
		if ok {
			out = append(out, list[i])
		}
	}
	if len(out) == 0 {
		return nil, errors.New("no suggestions selected")
	}
	return out, nil
}
