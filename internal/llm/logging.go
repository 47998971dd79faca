package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prepdeck/prepdeck/internal/store"
)

// LoggingProvider is a decorator that records every LLM request in the local
// call log.
type LoggingProvider struct {
	inner    Provider
	provider string
	callLog  store.LLMLogRepo
}

// WithLogging wraps a Provider with call logging.
func WithLogging(p Provider, provider string, callLog store.LLMLogRepo) Provider {
	return &LoggingProvider{inner: p, provider: provider, callLog: callLog}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMCallData{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: latencyMs,
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the call but don't fail the request if logging fails.
	if logErr := l.callLog.Append(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM call: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
