package cmd

import (
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a mock interview",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
