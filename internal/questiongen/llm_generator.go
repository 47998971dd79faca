package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/interview"
	"github.com/prepdeck/prepdeck/internal/llm"
)

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxResumeBytes caps how much of a resume file is read into the prompt.
	MaxResumeBytes int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:      4096,
		Temperature:    0.7,
		MaxResumeBytes: 32 * 1024,
	}
}

// LLMGenerator implements Source using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is one question of the raw LLM response before ids are
// assigned.
type questionOutput struct {
	Text       string `json:"text"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
	Coding     bool   `json:"coding"`
}

// GenerateQuestions produces a full question set for the setup form. A resume
// file, when attached, is read as plain text into the prompt.
func (g *LLMGenerator) GenerateQuestions(ctx context.Context, in api.GenerateQuestionsInput) (*api.QuestionSet, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	md := in.Metadata
	count := md.Duration.QuestionCount()

	resumeText, err := g.readResume(in.ResumePath)
	if err != nil {
		return nil, err
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(md, count, resumeText)},
		},
		Schema:      SetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw struct {
		Questions []questionOutput `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	questions := make([]interview.Question, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		questions = append(questions, interview.Question{
			ID:         uuid.NewString(),
			Text:       q.Text,
			Type:       interview.QuestionType(q.Type),
			Difficulty: interview.Difficulty(q.Difficulty),
			Coding:     q.Coding,
		})
	}

	if err := validateSet(questions, md, count); err != nil {
		return nil, err
	}

	return &api.QuestionSet{Questions: questions, Metadata: md}, nil
}

func (g *LLMGenerator) readResume(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read resume: %w", err)
	}
	if g.config.MaxResumeBytes > 0 && len(data) > g.config.MaxResumeBytes {
		data = data[:g.config.MaxResumeBytes]
	}
	return string(data), nil
}
