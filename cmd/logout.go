package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/store"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored sign-in token",
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
		cred, err := st.Credentials().Get(ctx)
		if err != nil {
			return fmt.Errorf("read credential: %w", err)
		}
		if cred == nil {
			fmt.Println("Not signed in.")
			return nil
		}
		if err := st.Credentials().Clear(ctx); err != nil {
			return fmt.Errorf("clear credential: %w", err)
		}
		fmt.Println("Signed out", cred.Email)
		return nil
	},
}
