package feedback

import "github.com/prepdeck/prepdeck/internal/llm"

// ReportSchema defines the JSON schema for LLM feedback responses.
var ReportSchema = &llm.Schema{
	Name:        "interview-feedback",
	Description: "Structured feedback for one completed mock-interview session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overallScore": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall performance score across all answered questions",
			},
			"overallStrengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "What the candidate did well, session-wide",
			},
			"overallImprovements": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Session-wide areas to improve",
			},
			"recommendations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concrete practice recommendations",
			},
			"nextSteps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Suggested next steps for the candidate",
			},
			"questionFeedbacks": map[string]any{
				"type":        "array",
				"description": "Per-question feedback, one entry per answered question",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionId": map[string]any{
							"type":        "string",
							"description": "Id of the question being assessed, copied from the input",
						},
						"questionText": map[string]any{"type": "string"},
						"score": map[string]any{
							"type":    "number",
							"minimum": 0,
							"maximum": 100,
						},
						"strengths":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"improvements": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"comment":      map[string]any{"type": "string"},
					},
					"required":             []any{"questionId", "questionText", "score"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"overallScore", "overallStrengths", "overallImprovements", "recommendations", "nextSteps", "questionFeedbacks"},
		"additionalProperties": false,
	},
}
