package feedback

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/interview"
	"github.com/prepdeck/prepdeck/internal/llm"
)

func feedbackSession() (*interview.Session, []interview.Answer) {
	sess := &interview.Session{
		ID: "sess-1",
		Metadata: interview.Metadata{
			Role:       "Backend Engineer",
			Type:       interview.TypeTechnical,
			Difficulty: interview.DifficultyMedium,
		},
		Questions: []interview.Question{
			{ID: "q1", Text: "Explain indexes.", Type: interview.TypeTechnical},
			{ID: "q2", Text: "Reverse a list.", Type: interview.TypeTechnical, Coding: true},
			{ID: "q3", Text: "Describe a conflict you resolved.", Type: interview.TypeBehavioral},
		},
		CompletionRate: 67,
	}
	answers := []interview.Answer{
		{QuestionID: "q1", Transcription: &interview.Transcript{Text: "B-tree lookup", Confidence: 1, Timestamp: time.Now()}},
		{QuestionID: "q2", Code: "func reverse(s []int) {}"},
		{QuestionID: "q3", Skipped: true},
	}
	return sess, answers
}

func TestGenerateFeedbackParsesReport(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"overallScore":        81.5,
		"overallStrengths":    []string{"clear explanations"},
		"overallImprovements": []string{"skipped the behavioral question"},
		"recommendations":     []string{"practice STAR answers"},
		"nextSteps":           []string{"book another session"},
		"questionFeedbacks": []map[string]any{
			{"questionId": "q1", "questionText": "Explain indexes.", "score": 85},
		},
	})

	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := NewLLMGenerator(mock, DefaultConfig())

	sess, answers := feedbackSession()
	report, err := gen.GenerateFeedback(context.Background(), sess, answers)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if report.OverallScore != 81.5 {
		t.Errorf("score = %v, want 81.5", report.OverallScore)
	}
	if len(report.QuestionFeedbacks) != 1 || report.QuestionFeedbacks[0].QuestionID != "q1" {
		t.Errorf("question feedbacks = %+v", report.QuestionFeedbacks)
	}
}

func TestGenerateFeedbackPromptLaysOutSession(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"overallScore": 70, "overallStrengths": []string{}, "overallImprovements": []string{},
		"recommendations": []string{}, "nextSteps": []string{}, "questionFeedbacks": []any{},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := NewLLMGenerator(mock, DefaultConfig())

	sess, answers := feedbackSession()
	if _, err := gen.GenerateFeedback(context.Background(), sess, answers); err != nil {
		t.Fatalf("generate: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"Backend Engineer",
		"Completion rate: 67%",
		"B-tree lookup",
		"func reverse",
		"(skipped by the candidate)",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
	if mock.Calls[0].Schema != ReportSchema {
		t.Error("expected the feedback schema on the request")
	}
}

func TestGenerateFeedbackProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := NewLLMGenerator(mock, DefaultConfig())

	sess, answers := feedbackSession()
	if _, err := gen.GenerateFeedback(context.Background(), sess, answers); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}
