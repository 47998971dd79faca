package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockReplaysScriptInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"first":true}`), Usage: Usage{InputTokens: 12, OutputTokens: 3}},
		MockResponse{Content: json.RawMessage(`{"second":true}`)},
	)

	r1, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if string(r1.Content) != `{"first":true}` || r1.Usage.InputTokens != 12 {
		t.Errorf("first response = %s / %+v", r1.Content, r1.Usage)
	}
	if r1.StopReason != StopEnd {
		t.Errorf("stop reason = %q, want %q", r1.StopReason, StopEnd)
	}

	r2, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if string(r2.Content) != `{"second":true}` {
		t.Errorf("second response = %s", r2.Content)
	}
}

func TestMockExhaustedScriptIsUnavailable(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestMockRemembersRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(context.Background(), Request{
		System:   "you are an interviewer",
		Messages: []Message{{Role: RoleUser, Content: "generate questions"}},
	})

	if mock.CallCount() != 1 {
		t.Fatalf("call count = %d, want 1", mock.CallCount())
	}
	if mock.Calls[0].System != "you are an interviewer" {
		t.Errorf("recorded system = %q", mock.Calls[0].System)
	}
}

func TestMockScriptedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %v, want ErrRateLimit", err)
	}
}

func TestPurposeTravelsWithContext(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Errorf("bare context purpose = %q, want unknown", got)
	}
	ctx = WithPurpose(ctx, PurposeFeedbackGen)
	if got := PurposeFrom(ctx); got != PurposeFeedbackGen {
		t.Errorf("purpose = %q, want %q", got, PurposeFeedbackGen)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic needs key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"openai needs key", Config{Provider: "openai"}, true},
		{"gemini needs key", Config{Provider: "gemini"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "k"}}, false},
		{"mock never needs one", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llamafile"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
