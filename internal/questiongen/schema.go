package questiongen

import "github.com/prepdeck/prepdeck/internal/llm"

// SetSchema defines the JSON schema for LLM question-set responses.
var SetSchema = &llm.Schema{
	Name:        "interview-question-set",
	Description: "An ordered set of mock-interview questions for one session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The questions in the order they will be asked",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The full question as the interviewer would ask it",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"technical", "hr", "behavioral"},
							"description": "The interview category this question belongs to",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"easy", "medium", "hard"},
							"description": "Per-question difficulty",
						},
						"coding": map[string]any{
							"type":        "boolean",
							"description": "True for a live-coding exercise answered in an editor",
						},
					},
					"required":             []any{"text", "type", "difficulty", "coding"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
