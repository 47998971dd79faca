package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed interviews from the local log",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sessions, err := st.Sessions().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No completed interviews yet.")
			return nil
		}

		fmt.Printf("%-12s  %-24s  %-12s  %-9s  %-9s  %-6s\n",
			"Date", "Role", "Type", "Answered", "Complete", "Grade")
		fmt.Println(strings.Repeat("─", 84))
		for _, s := range sessions {
			grade := s.Grade
			if grade == "" {
				grade = "—"
			}
			role := s.Role
			if len(role) > 24 {
				role = role[:24]
			}
			fmt.Printf("%-12s  %-24s  %-12s  %4d/%-4d  %7.0f%%  %-6s\n",
				s.CompletedAt.Local().Format("Jan 02, 2006"),
				role, s.InterviewType,
				s.Answered, s.TotalQuestions,
				s.CompletionRate, grade)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of sessions to list")
}
