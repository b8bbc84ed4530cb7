package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change appearance settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			core := coreFrom(cmd)
			fl := cmd.Flags()

			var p dom.SettingsPatch
			changed := false
			if fl.Changed("font") {
				v, _ := fl.GetString("font")
				p.FontFamily = &v
				changed = true
			}
			if fl.Changed("text-color") {
				v, _ := fl.GetString("text-color")
				p.TextColor = &v
				changed = true
			}
			if fl.Changed("accent") {
				v, _ := fl.GetString("accent")
				p.AccentColor = &v
				changed = true
			}

			var (
				s   dom.Settings
				err error
			)
			if changed {
				s, err = core.Settings.Update(cmd.Context(), p)
			} else {
				s, err = core.Settings.Get(cmd.Context())
			}
			if err != nil {
				return err
			}
			if fl.Changed("show-upcoming") {
				v, _ := fl.GetBool("show-upcoming")
				if err := core.Settings.SetShowUpcoming(cmd.Context(), v); err != nil {
					return err
				}
			}
			show, err := core.Settings.ShowUpcoming(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "font           %s\n", s.FontFamily)
			fmt.Fprintf(out, "text color     %s\n", s.TextColor)
			fmt.Fprintf(out, "accent color   %s\n", s.AccentColor)
			fmt.Fprintf(out, "show upcoming  %t\n", show)
			return nil
		},
	}
	cmd.Flags().String("font", "", "font family")
	cmd.Flags().String("text-color", "", "text color, #rrggbb")
	cmd.Flags().String("accent", "", "accent color, #rrggbb")
	cmd.Flags().Bool("show-upcoming", true, "show the upcoming deadlines panel")
	return cmd
}
