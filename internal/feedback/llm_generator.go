package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prepdeck/prepdeck/internal/interview"
	"github.com/prepdeck/prepdeck/internal/llm"
)

const systemPrompt = `You are an experienced interviewer writing feedback for a candidate who just finished a mock interview.

Rules:
- Score each answered question from 0 to 100 and justify the score in the comment.
- Skipped and unanswered questions get no questionFeedbacks entry; reflect them in overallImprovements instead.
- For coding answers, assess correctness and approach from the submitted code as written.
- For spoken answers, assess content and structure from the transcript; do not penalize transcription artifacts.
- The overallScore reflects answered questions only, weighted equally.
- Strengths and improvements must be specific to what the candidate actually said or wrote, never generic.
- Recommendations and next steps must be actionable.`

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.3,
	}
}

// LLMGenerator produces feedback reports directly from an LLM provider. It is
// the offline counterpart of the backend's generate-feedback endpoint.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewLLMGenerator creates an LLMGenerator with the given provider and config.
func NewLLMGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// GenerateFeedback builds the report for a completed session.
func (g *LLMGenerator) GenerateFeedback(ctx context.Context, sess *interview.Session, answers []interview.Answer) (*Report, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeFeedbackGen)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(sess, answers)},
		},
		Schema:      ReportSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var report Report
	if err := json.Unmarshal(resp.Content, &report); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return &report, nil
}

// buildUserMessage lays out the session for assessment: the setup, then each
// question with whatever the candidate produced for it.
func buildUserMessage(sess *interview.Session, answers []interview.Answer) string {
	byID := make(map[string]interview.Answer, len(answers))
	for _, a := range answers {
		byID[a.QuestionID] = a
	}

	var b strings.Builder
	md := sess.Metadata
	fmt.Fprintf(&b, "Role: %s\n", md.Role)
	if md.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", md.Company)
	}
	fmt.Fprintf(&b, "Interview type: %s\n", md.Type)
	fmt.Fprintf(&b, "Difficulty: %s\n", md.Difficulty)
	fmt.Fprintf(&b, "Completion rate: %.0f%%\n", sess.CompletionRate)

	for i, q := range sess.Questions {
		fmt.Fprintf(&b, "\nQuestion %d (id: %s, %s):\n%s\n", i+1, q.ID, q.Type, q.Text)

		a, ok := byID[q.ID]
		switch {
		case !ok:
			b.WriteString("Answer: (not answered)\n")
		case a.Skipped:
			b.WriteString("Answer: (skipped by the candidate)\n")
		case a.Code != "":
			fmt.Fprintf(&b, "Submitted code:\n%s\n", a.Code)
		case a.Transcription != nil && a.Transcription.Text != "":
			fmt.Fprintf(&b, "Transcript:\n%s\n", a.Transcription.Text)
		default:
			b.WriteString("Answer: (not answered)\n")
		}
	}

	return b.String()
}
