package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prepdeck/prepdeck/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer release",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker(releaseOwner, releaseRepo)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil {
			if errors.Is(err, selfupdate.ErrDevBuild) {
				fmt.Println("Cannot check updates for a development build.")
				return nil
			}
			return err
		}

		if !res.UpdateAvailable {
			fmt.Println("Already running the latest version.")
			return nil
		}
		fmt.Printf("Update available: %s → %s\n", res.CurrentVersion, res.LatestVersion)
		fmt.Println("Download:", res.ReleaseURL)
		return nil
	},
}
