package feedback

import (
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/interview"
)

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "A+"},
		{90, "A+"},
		{89.9, "A"},
		{85, "A"},
		{80, "A-"},
		{75, "B+"},
		{70, "B"},
		{65, "B-"},
		{60, "C+"},
		{55, "C"},
		{50, "C-"},
		{49.9, "D"},
		{0, "D"},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.score); got != tt.want {
			t.Errorf("GradeFor(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestNormalizeFillsMissingFields(t *testing.T) {
	answers := []interview.Answer{
		{QuestionID: "q1", Transcription: &interview.Transcript{Text: "one two three", Confidence: 1, Timestamp: time.Now()}},
		{QuestionID: "q2", Code: "func main() {}"},
		{QuestionID: "q3", Skipped: true},
	}

	r := &Report{OverallScore: 72}
	Normalize(r, answers, 4)

	if r.OverallGrade != "B" {
		t.Errorf("grade = %q, want B", r.OverallGrade)
	}
	// 2 answered of 4 = 50.
	if r.CompletionRate != 50 {
		t.Errorf("completion rate = %v, want 50", r.CompletionRate)
	}
	if r.Metrics.TotalQuestions != 4 {
		t.Errorf("total questions = %d, want 4", r.Metrics.TotalQuestions)
	}
	if r.Metrics.QuestionsAnswered != 2 {
		t.Errorf("answered = %d, want 2", r.Metrics.QuestionsAnswered)
	}
	if r.Metrics.QuestionsWithTranscripts != 1 {
		t.Errorf("transcripts = %d, want 1", r.Metrics.QuestionsWithTranscripts)
	}
	if r.Metrics.TotalWordsSpoken != 3 {
		t.Errorf("words = %d, want 3", r.Metrics.TotalWordsSpoken)
	}
	if r.Metrics.AvgWordsPerResponse != 3 {
		t.Errorf("avg words = %v, want 3", r.Metrics.AvgWordsPerResponse)
	}
}

func TestNormalizeKeepsBackendValues(t *testing.T) {
	r := &Report{
		OverallScore:   88,
		OverallGrade:   "A",
		CompletionRate: 80,
		Metrics:        Metrics{TotalQuestions: 5, QuestionsAnswered: 4},
	}
	Normalize(r, nil, 5)

	if r.OverallGrade != "A" || r.CompletionRate != 80 {
		t.Errorf("backend values overwritten: grade=%q rate=%v", r.OverallGrade, r.CompletionRate)
	}
	if r.Metrics.QuestionsAnswered != 4 {
		t.Errorf("answered = %d, want 4", r.Metrics.QuestionsAnswered)
	}
}
