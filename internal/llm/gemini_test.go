package llm

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiRequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{}); err == nil {
		t.Error("expected error without an API key")
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "a scored answer",
		"properties": map[string]any{
			"score":   map[string]any{"type": "number"},
			"grade":   map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
			"remarks": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []any{"score", "grade"},
	}

	s := geminiSchema(def)

	if s.Type != genai.TypeObject {
		t.Errorf("type = %v, want object", s.Type)
	}
	if s.Description != "a scored answer" {
		t.Errorf("description = %q", s.Description)
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %v", s.Required)
	}
	if s.Properties["score"].Type != genai.TypeNumber {
		t.Errorf("score type = %v", s.Properties["score"].Type)
	}
	if got := s.Properties["grade"].Enum; len(got) != 3 || got[0] != "A" {
		t.Errorf("grade enum = %v", got)
	}
	remarks := s.Properties["remarks"]
	if remarks.Type != genai.TypeArray || remarks.Items == nil || remarks.Items.Type != genai.TypeString {
		t.Errorf("remarks = %+v", remarks)
	}
}

func TestGeminiSchemaNestedObjects(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"breakdown": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"answered": map[string]any{"type": "integer"},
				},
			},
		},
	}

	s := geminiSchema(def)
	inner := s.Properties["breakdown"]
	if inner == nil || inner.Properties["answered"].Type != genai.TypeInteger {
		t.Errorf("nested schema = %+v", inner)
	}
}
