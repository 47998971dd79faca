package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/llm"
	"github.com/prepdeck/prepdeck/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, storage and provider health",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Println("✗ config:", err)
			return err
		}
		if cfg.Offline() {
			fmt.Println("✓ config: offline mode (no backend URL)")
		} else {
			fmt.Println("✓ config: backend", cfg.APIURL)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			fmt.Println("✗ database:", err)
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			fmt.Println("✗ database:", err)
			return err
		}
		defer st.Close()
		fmt.Println("✓ database:", dbPath)

		if !cfg.Offline() {
			client := api.NewClient(cfg.APIURL, &store.TokenProvider{Creds: st.Credentials()})
			hctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := client.Health(hctx)
			cancel()
			if err != nil {
				fmt.Println("✗ backend:", err)
			} else {
				fmt.Println("✓ backend: reachable")
			}
		}

		llmCfg := llm.ConfigFromEnv()
		if err := llmCfg.Validate(); err != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				llmCfg = discovered
			} else if cfg.Offline() {
				fmt.Println("✗ llm:", err)
			} else {
				fmt.Println("- llm: not configured (backend handles generation)")
			}
		}
		model := ""
		if llmCfg.Validate() == nil {
			switch llmCfg.Provider {
			case "anthropic":
				model = llmCfg.Anthropic.Model
			case "openai":
				model = llmCfg.OpenAI.Model
			case "gemini":
				model = llmCfg.Gemini.Model
			case "openrouter":
				model = llmCfg.OpenRouter.Model
			}
			fmt.Printf("✓ llm: %s (%s)\n", llmCfg.Provider, model)
		}

		usage, err := st.LLMLog().Usage(ctx)
		if err != nil {
			return fmt.Errorf("read usage: %w", err)
		}
		fmt.Printf("  usage: %d calls (%d failed), %d in / %d out tokens\n",
			usage.Calls, usage.Failures, usage.InputTokens, usage.OutputTokens)
		if model != "" {
			if cost := llm.LookupCost(model); cost != nil {
				fmt.Printf("  estimated spend: $%.4f\n",
					cost.Cost(usage.InputTokens, usage.OutputTokens))
			}
		}
		return nil
	},
}
