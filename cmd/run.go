package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/app"
	"github.com/prepdeck/prepdeck/internal/capture"
	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/feedback"
	"github.com/prepdeck/prepdeck/internal/finalize"
	"github.com/prepdeck/prepdeck/internal/llm"
	"github.com/prepdeck/prepdeck/internal/questiongen"
	"github.com/prepdeck/prepdeck/internal/screens/home"
	"github.com/prepdeck/prepdeck/internal/selfupdate"
	"github.com/prepdeck/prepdeck/internal/store"
)

const (
	releaseOwner = "prepdeck"
	releaseRepo  = "prepdeck"
)

// loadConfig resolves configuration: file, env, then command flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if u, _ := cmd.Flags().GetString("api-url"); u != "" {
		cfg.APIURL = u
	}
	return cfg, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps := home.Deps{
		Config:    cfg,
		Creds:     st.Credentials(),
		Drafts:    st.Drafts(),
		Sessions:  st.Sessions(),
		Checker:   selfupdate.NewChecker(releaseOwner, releaseRepo),
		Version:   version,
		NewSource: func() capture.Source { return capture.NewTypedSource() },
	}

	if cfg.Offline() {
		// No backend configured: generate questions and feedback straight
		// from an LLM provider, and keep sessions local.
		provider, err := llm.NewProviderFromEnv(ctx, st.LLMLog())
		if err != nil {
			fmt.Fprintln(os.Stderr, "No backend URL and no LLM provider configured:", err)
			fmt.Fprintln(os.Stderr, "Set PREPDECK_API_URL or an LLM API key to generate interviews.")
			return err
		}
		deps.Source = questiongen.New(provider, questiongen.DefaultConfig())
		deps.Finalizer = finalize.New(
			finalize.LocalSaver{},
			feedback.NewLLMGenerator(provider, feedback.DefaultConfig()),
			st.Local(),
		)
	} else {
		client := api.NewClient(cfg.APIURL, &store.TokenProvider{Creds: st.Credentials()})
		deps.Client = client
		deps.Source = client
		deps.Finalizer = finalize.New(client, client, st.Local())
	}

	return app.Run(app.Options{
		Home:  deps,
		Creds: st.Credentials(),
	})
}
