package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func answerSchema() *Schema {
	return &Schema{
		Name: "test-answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score": map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
				"notes": map[string]any{"type": "string"},
			},
			"required": []any{"score"},
		},
	}
}

func TestCheckAgainstSchemaAccepts(t *testing.T) {
	err := checkAgainstSchema(answerSchema(), json.RawMessage(`{"score": 85, "notes": "solid"}`))
	if err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}

func TestCheckAgainstSchemaNilSchemaPasses(t *testing.T) {
	if err := checkAgainstSchema(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema must pass anything: %v", err)
	}
}

func TestCheckAgainstSchemaRejectsNonJSON(t *testing.T) {
	err := checkAgainstSchema(answerSchema(), json.RawMessage(`the model wrote prose`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if string(invalid.Content) != `the model wrote prose` {
		t.Errorf("offending payload not kept: %s", invalid.Content)
	}
}

func TestCheckAgainstSchemaRejectsMissingRequired(t *testing.T) {
	err := checkAgainstSchema(answerSchema(), json.RawMessage(`{"notes": "no score"}`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestCheckAgainstSchemaRejectsOutOfRange(t *testing.T) {
	err := checkAgainstSchema(answerSchema(), json.RawMessage(`{"score": 400}`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestCompiledSchemaIsReused(t *testing.T) {
	s := answerSchema()
	if err := checkAgainstSchema(s, json.RawMessage(`{"score": 10}`)); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	// Second pass hits the cache; same result.
	if err := checkAgainstSchema(s, json.RawMessage(`{"score": 20}`)); err != nil {
		t.Fatalf("cached validation: %v", err)
	}
	if _, ok := compiled.Load(s.Name); !ok {
		t.Error("expected compiled schema cached by name")
	}
}
