package interview

import (
	"math"
	"time"
)

// QuestionType classifies a question by interview category.
type QuestionType string

const (
	TypeTechnical  QuestionType = "technical"
	TypeHR         QuestionType = "hr"
	TypeBehavioral QuestionType = "behavioral"
)

// Difficulty is the interview difficulty level chosen at setup.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// SessionLength selects how many questions the backend generates.
type SessionLength string

const (
	LengthShort  SessionLength = "short"  // 5 questions
	LengthMedium SessionLength = "medium" // 10 questions
	LengthLong   SessionLength = "long"   // 15 questions
)

// QuestionCount returns the number of questions for a session length.
func (l SessionLength) QuestionCount() int {
	switch l {
	case LengthShort:
		return 5
	case LengthLong:
		return 15
	default:
		return 10
	}
}

// Question is a single interview question. The ordered question list is fixed
// when the session starts; questions are never reordered or inserted.
type Question struct {
	ID   string       `json:"id"`
	Text string       `json:"text"`
	Type QuestionType `json:"type"`

	// Difficulty is the per-question difficulty as generated.
	Difficulty Difficulty `json:"difficulty"`

	// Coding marks a live-coding question answered in the editor instead of
	// the transcript recorder.
	Coding bool `json:"coding"`

	// ExpectedDuration overrides the type-based timer default, in seconds.
	// Zero means "use the default".
	ExpectedDuration int `json:"expectedDuration,omitempty"`
}

// Timer defaults, in seconds. Coding questions get a difficulty-scaled
// window; spoken answers get a short fixed one.
const (
	SpokenAnswerSeconds = 30
	CodingEasySeconds   = 900
	CodingMediumSeconds = 1800
	CodingHardSeconds   = 2700
)

// DurationFor returns the countdown length for a question: its
// ExpectedDuration when set, otherwise the type-based default.
func DurationFor(q Question) int {
	if q.ExpectedDuration > 0 {
		return q.ExpectedDuration
	}
	if !q.Coding {
		return SpokenAnswerSeconds
	}
	switch q.Difficulty {
	case DifficultyMedium:
		return CodingMediumSeconds
	case DifficultyHard:
		return CodingHardSeconds
	default:
		// Unknown difficulty gets the shortest window, same as easy.
		return CodingEasySeconds
	}
}

// Transcript is the captured spoken-answer artifact. Feedback is computed
// from text, so the transcript — not raw audio — is what the session keeps.
type Transcript struct {
	Text       string    `json:"text"`
	Confidence float64   `json:"confidence,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Answer is the single record kept per question. Recording again replaces the
// record in place (upsert, never append).
type Answer struct {
	QuestionID   string       `json:"questionId"`
	QuestionText string       `json:"questionText"`
	QuestionType QuestionType `json:"questionType"`

	// Spoken path.
	Transcription *Transcript `json:"transcription,omitempty"`
	RecordedAt    time.Time   `json:"recordedAt,omitzero"`

	// Coding path.
	Code        string    `json:"code,omitempty"`
	SubmittedAt time.Time `json:"submittedAt,omitzero"`

	// Skip path.
	Skipped   bool      `json:"skipped,omitempty"`
	SkippedAt time.Time `json:"skippedAt,omitzero"`
}

// Present reports whether the answer counts as answered: a non-empty
// transcript or non-empty code. A skip marker never counts.
func (a Answer) Present() bool {
	if a.Skipped {
		return false
	}
	if a.Transcription != nil && a.Transcription.Text != "" {
		return true
	}
	return a.Code != ""
}

// Metadata is the setup captured once per session and carried unchanged into
// both the persistence and feedback requests.
type Metadata struct {
	Role           string        `json:"role"`
	Company        string        `json:"company"`
	JobDescription string        `json:"jobDescription"`
	Type           QuestionType  `json:"type"`
	Difficulty     Difficulty    `json:"difficulty"`
	IncludeCoding  bool          `json:"includeCoding"`
	Language       string        `json:"language,omitempty"`
	Duration       SessionLength `json:"duration"`
}

// Session is the sealed interview submitted to the backend. It is created
// when the question set loads and never mutated after submission.
type Session struct {
	ID             string     `json:"id"`
	Metadata       Metadata   `json:"metadata"`
	Questions      []Question `json:"questions"`
	StartedAt      time.Time  `json:"startedAt"`
	CompletedAt    time.Time  `json:"completedAt"`
	CompletionRate float64    `json:"completionRate"`
}

// Rate computes a completion percentage, rounded to the nearest integer.
func Rate(answered, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(answered) / float64(total) * 100)
}
