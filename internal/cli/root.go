package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rishit-Ranjan/Task-Pallete/internal/app"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/config"
)

type coreKey struct{}

// NewRootCmd builds the taskctl command tree.
func NewRootCmd(version string) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "taskctl",
		Short: "Manage TaskPalette tasks from the terminal",
		Long: `taskctl works directly on the TaskPalette store.

Settings come from the environment (same variables as the API server),
then an optional YAML config file, then flags.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			core, err := app.NewCore(ctx, cfg)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(ctx, coreKey{}, core))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if core, ok := cmd.Context().Value(coreKey{}).(*app.Core); ok {
				core.Close()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.String("store", "", "store driver: sqlite, postgres, redis, memory")
	pf.String("db", "", "SQLite database path")
	pf.String("timezone", "", "time zone for due dates, e.g. Europe/Berlin")
	_ = v.BindPFlag("store.driver", pf.Lookup("store"))
	_ = v.BindPFlag("store.sqlite_path", pf.Lookup("db"))
	_ = v.BindPFlag("app.timezone", pf.Lookup("timezone"))
	_ = v.BindPFlag("config", pf.Lookup("config"))

	root.AddCommand(
		newAddCmd(),
		newListCmd(),
		newShowCmd(),
		newEditCmd(),
		newDoneCmd(),
		newStarCmd(),
		newCheckCmd(),
		newRemoveCmd(),
		newUpcomingCmd(),
		newStatsCmd(),
		newShareCmd(),
		newSuggestCmd(),
		newExportCmd(),
		newSettingsCmd(),
	)
	return root
}

// Execute runs taskctl with os.Args.
func Execute(version string) error {
	root := NewRootCmd(version)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// loadConfig reads the environment, then overlays the config file and flags.
func loadConfig(v *viper.Viper) (config.Config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	// Flags and file go through the environment so cleanenv validates them
	// the same way it does for the server.
	overlay := map[string]string{
		"store.driver":      "STORE_DRIVER",
		"store.sqlite_path": "SQLITE_PATH",
		"app.timezone":      "APP_TIMEZONE",
		"pg.dsn":            "PG_DSN",
		"redis.url":         "REDIS_URL",
		"suggest.api_key":   "GEMINI_API_KEY",
		"suggest.timeout":   "SUGGEST_TIMEOUT",
	}
	for key, env := range overlay {
		if val := strings.TrimSpace(v.GetString(key)); val != "" {
			if err := os.Setenv(env, val); err != nil {
				return config.Config{}, err
			}
		}
	}
	return config.Load()
}

func coreFrom(cmd *cobra.Command) *app.Core {
	return cmd.Context().Value(coreKey{}).(*app.Core)
}
