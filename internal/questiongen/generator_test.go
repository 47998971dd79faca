package questiongen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/interview"
	"github.com/prepdeck/prepdeck/internal/llm"
)

func setMetadata() interview.Metadata {
	return interview.Metadata{
		Role:          "Backend Engineer",
		Company:       "Acme",
		Type:          interview.TypeTechnical,
		Difficulty:    interview.DifficultyMedium,
		IncludeCoding: true,
		Language:      "Go",
		Duration:      interview.LengthShort,
	}
}

func cannedSet(n int, coding int) json.RawMessage {
	type q struct {
		Text       string `json:"text"`
		Type       string `json:"type"`
		Difficulty string `json:"difficulty"`
		Coding     bool   `json:"coding"`
	}
	questions := make([]q, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, q{
			Text:       "Question number " + string(rune('1'+i)),
			Type:       "technical",
			Difficulty: "medium",
			Coding:     i < coding,
		})
	}
	raw, _ := json.Marshal(map[string]any{"questions": questions})
	return raw
}

func TestGenerateQuestionsAssignsIDs(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedSet(5, 1)})
	gen := New(mock, DefaultConfig())

	set, err := gen.GenerateQuestions(context.Background(), api.GenerateQuestionsInput{Metadata: setMetadata()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(set.Questions) != 5 {
		t.Fatalf("questions = %d, want 5", len(set.Questions))
	}

	seen := map[string]bool{}
	for i, q := range set.Questions {
		if q.ID == "" {
			t.Errorf("question %d has empty id", i)
		}
		if seen[q.ID] {
			t.Errorf("duplicate id %q", q.ID)
		}
		seen[q.ID] = true
	}
	if !set.Questions[0].Coding {
		t.Error("expected first question to keep its coding flag")
	}
	if set.Metadata.Role != "Backend Engineer" {
		t.Errorf("metadata not echoed: %+v", set.Metadata)
	}
}

func TestGenerateQuestionsPromptCarriesSetup(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedSet(5, 0)})
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateQuestions(context.Background(), api.GenerateQuestionsInput{Metadata: setMetadata()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != SetSchema {
		t.Error("expected the question-set schema on the request")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Backend Engineer", "Acme", "technical", "medium", "Number of questions: 5", "Coding language: Go"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerateQuestionsRejectsWrongCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedSet(3, 0)})
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateQuestions(context.Background(), api.GenerateQuestionsInput{Metadata: setMetadata()})
	if err == nil {
		t.Fatal("expected count mismatch error")
	}
	if !strings.Contains(err.Error(), "want 5") {
		t.Errorf("error = %v, want count mismatch", err)
	}
}

func TestGenerateQuestionsRejectsUnwantedCoding(t *testing.T) {
	md := setMetadata()
	md.IncludeCoding = false

	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedSet(5, 1)})
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateQuestions(context.Background(), api.GenerateQuestionsInput{Metadata: md})
	if err == nil {
		t.Fatal("expected coding-not-requested error")
	}
}

func TestGenerateQuestionsProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateQuestions(context.Background(), api.GenerateQuestionsInput{Metadata: setMetadata()})
	if err == nil {
		t.Fatal("expected provider error to propagate")
	}
}
