package store

import (
	"context"
	"fmt"

	"github.com/prepdeck/prepdeck/ent"
)

type llmLogRepo struct {
	client *ent.Client
}

func (r *llmLogRepo) Append(ctx context.Context, data LLMCallData) error {
	builder := r.client.LLMCall.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage)
	if data.Purpose != "" {
		builder = builder.SetPurpose(data.Purpose)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("append llm call: %w", err)
	}
	return nil
}

func (r *llmLogRepo) Usage(ctx context.Context) (*LLMUsage, error) {
	rows, err := r.client.LLMCall.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm calls: %w", err)
	}

	usage := &LLMUsage{Calls: len(rows)}
	for _, row := range rows {
		if !row.Success {
			usage.Failures++
		}
		usage.InputTokens += row.InputTokens
		usage.OutputTokens += row.OutputTokens
	}
	return usage, nil
}
