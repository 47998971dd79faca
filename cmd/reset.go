package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the in-progress interview draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		draft, err := st.Drafts().Load(ctx)
		if err != nil {
			return fmt.Errorf("read draft: %w", err)
		}
		if draft == nil {
			fmt.Println("No draft to discard.")
			return nil
		}
		if err := st.Drafts().Clear(ctx); err != nil {
			return fmt.Errorf("clear draft: %w", err)
		}
		fmt.Printf("Discarded draft session %s (%d answers).\n",
			draft.SessionID, len(draft.Answers))
		return nil
	},
}
