package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
)

type exportDoc struct {
	Tasks        []dom.Task   `json:"tasks" yaml:"tasks"`
	Settings     dom.Settings `json:"settings" yaml:"settings"`
	ShowUpcoming bool         `json:"showUpcoming" yaml:"show_upcoming"`
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump tasks and settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			core := coreFrom(cmd)

			tasks, _ := core.Tasks.Snapshot()
			settings, err := core.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			show, err := core.Settings.ShowUpcoming(cmd.Context())
			if err != nil {
				return err
			}
			doc := exportDoc{Tasks: tasks, Settings: settings, ShowUpcoming: show}

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "yaml", "yml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(doc); err != nil {
					return err
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			default:
				return fmt.Errorf("unknown format %q, use yaml or json", format)
			}
		},
	}
	cmd.Flags().StringP("format", "f", "yaml", "yaml or json")
	return cmd
}
