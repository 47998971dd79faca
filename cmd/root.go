package cmd

import (
	"github.com/prepdeck/prepdeck/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prepdeck",
	Short: "Mock interview practice in your terminal",
	Long:  "PrepDeck — timed mock interviews with AI-generated questions and feedback.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPDECK_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides PREPDECK_CONFIG env var)")
	rootCmd.PersistentFlags().String("api-url", "", "Backend base URL (empty runs offline)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PREPDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
