package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// chatServer fakes an OpenAI-compatible chat completions endpoint.
func chatServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func openaiAgainst(t *testing.T, srv *httptest.Server) *OpenAIProvider {
	t.Helper()
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p
}

func TestOpenAIGenerate(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `{
		"model": "gpt-4o-mini",
		"choices": [{"message": {"role": "assistant", "content": "{\"answer\":42}"}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 20, "completion_tokens": 7, "total_tokens": 27}
	}`)
	defer srv.Close()

	resp, err := openaiAgainst(t, srv).Generate(context.Background(), Request{
		System:   "score this interview",
		Messages: []Message{{Role: RoleUser, Content: "answers attached"}},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(resp.Content) != `{"answer":42}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.TotalTokens != 27 {
		t.Errorf("total tokens = %d, want 27", resp.Usage.TotalTokens)
	}
	if resp.StopReason != StopEnd {
		t.Errorf("stop reason = %q, want %q", resp.StopReason, StopEnd)
	}
}

func TestOpenAITruncationMapsToMaxTokens(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `{
		"choices": [{"message": {"content": "{\"partial\":"}, "finish_reason": "length"}]
	}`)
	defer srv.Close()

	resp, err := openaiAgainst(t, srv).Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.StopReason != StopMaxTokens {
		t.Errorf("stop reason = %q, want %q", resp.StopReason, StopMaxTokens)
	}
}

func TestOpenAIRateLimitClassified(t *testing.T) {
	srv := chatServer(t, http.StatusTooManyRequests, `{"error": {"message": "slow down", "type": "rate_limit"}}`)
	defer srv.Close()

	_, err := openaiAgainst(t, srv).Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %v, want ErrRateLimit", err)
	}
}

func TestOpenAIServerErrorIsUnavailable(t *testing.T) {
	srv := chatServer(t, http.StatusBadGateway, `{"error": {"message": "upstream died"}}`)
	defer srv.Close()

	_, err := openaiAgainst(t, srv).Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestOpenAISchemaValidationRejectsBadOutput(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `{
		"choices": [{"message": {"content": "{\"score\":\"high\"}"}, "finish_reason": "stop"}]
	}`)
	defer srv.Close()

	_, err := openaiAgainst(t, srv).Generate(context.Background(), Request{
		Schema: &Schema{
			Name: "score-check",
			Definition: map[string]any{
				"type":       "object",
				"properties": map[string]any{"score": map[string]any{"type": "number"}},
				"required":   []any{"score"},
			},
		},
	})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestOpenAIRequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{}); err == nil {
		t.Error("expected error without an API key")
	}
	if _, err := NewOpenRouterProvider(OpenRouterConfig{}); err == nil {
		t.Error("expected error without an OpenRouter key")
	}
}

func TestChatMessagesPutSystemFirst(t *testing.T) {
	msgs := chatMessages(Request{
		System: "framing",
		Messages: []Message{
			{Role: RoleUser, Content: "q"},
			{Role: RoleAssistant, Content: "a"},
		},
	})
	if len(msgs) != 3 {
		t.Fatalf("messages = %d, want 3", len(msgs))
	}
	if msgs[0].Role != "system" || msgs[1].Role != "user" || msgs[2].Role != "assistant" {
		t.Errorf("roles = %s/%s/%s", msgs[0].Role, msgs[1].Role, msgs[2].Role)
	}
}

func TestAliasModelPassThrough(t *testing.T) {
	if got := aliasModel("gpt-4o-mini", openaiAliases); got != "gpt-4o-mini" {
		t.Errorf("alias = %q", got)
	}
	if got := aliasModel("ft:gpt-4o:custom", openaiAliases); got != "ft:gpt-4o:custom" {
		t.Errorf("unknown name must pass through, got %q", got)
	}
}

// Guard against the schema marshal path regressing: a definition that can't
// marshal surfaces as a plain error before any network call.
func TestOpenAIUnmarshalableSchema(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `{}`)
	defer srv.Close()

	_, err := openaiAgainst(t, srv).Generate(context.Background(), Request{
		Schema: &Schema{Name: "bad", Definition: map[string]any{"x": json.RawMessage(`{`)}},
	})
	if err == nil {
		t.Error("expected marshal error")
	}
}
