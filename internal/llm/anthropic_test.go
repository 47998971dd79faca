package llm

import "testing"

func TestAnthropicRequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{}); err == nil {
		t.Error("expected error without an API key")
	}
}

func TestAnthropicModelAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-opus-4-5", "claude-opus-4-5"}, // exact IDs pass through
	}
	for _, tt := range tests {
		p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: tt.alias})
		if err != nil {
			t.Fatalf("%s: %v", tt.alias, err)
		}
		if p.ModelID() != tt.want {
			t.Errorf("%s resolved to %q, want %q", tt.alias, p.ModelID(), tt.want)
		}
	}
}
