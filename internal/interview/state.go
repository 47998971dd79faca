package interview

import (
	"errors"
	"time"
)

// ErrNoQuestions is returned when a session is started with an empty
// question list; the caller reports a load error instead of rendering a
// broken progress state.
var ErrNoQuestions = errors.New("no questions loaded for this session")

// State is the runtime state of an active interview. It exclusively owns the
// answer map and the current-index cursor; the finalizer only ever takes a
// read-only snapshot at completion time.
type State struct {
	// SessionID is the client-generated UUID for this attempt.
	SessionID string

	// Metadata is the setup output, immutable through the session.
	Metadata Metadata

	// Questions is the fixed ordered question list.
	Questions []Question

	// Index is the current-question cursor. It only ever moves forward.
	Index int

	// Answers holds at most one record per question id.
	Answers map[string]Answer

	// Timer is the countdown for the current question.
	Timer *Timer

	// TimeUp is set when the current question's timer expired.
	TimeUp bool

	// StartedAt is when the question set finished loading.
	StartedAt time.Time
}

// NewState creates session state over a loaded question set and arms the
// first question's timer.
func NewState(sessionID string, md Metadata, questions []Question) (*State, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &State{
		SessionID: sessionID,
		Metadata:  md,
		Questions: questions,
		Answers:   make(map[string]Answer),
		Timer:     NewTimer(DurationFor(questions[0])),
		StartedAt: time.Now(),
	}, nil
}

// Current returns the active question.
func (s *State) Current() Question {
	return s.Questions[s.Index]
}

// Last reports whether the cursor is on the final question, where the
// primary action switches from advance to finish.
func (s *State) Last() bool {
	return s.Index == len(s.Questions)-1
}

// Answered reports whether the question has a present answer.
func (s *State) Answered(questionID string) bool {
	return s.Answers[questionID].Present()
}

// RecordTranscript upserts a spoken answer for the question. A nil transcript
// clears the slot (the recorder's "cleared" signal).
func (s *State) RecordTranscript(q Question, tr *Transcript) {
	if tr == nil {
		delete(s.Answers, q.ID)
		return
	}
	s.Answers[q.ID] = Answer{
		QuestionID:    q.ID,
		QuestionText:  q.Text,
		QuestionType:  q.Type,
		Transcription: tr,
		RecordedAt:    time.Now(),
	}
}

// RecordCode upserts a coding answer: the literal editor text at save time.
func (s *State) RecordCode(q Question, code string) {
	if code == "" {
		delete(s.Answers, q.ID)
		return
	}
	s.Answers[q.ID] = Answer{
		QuestionID:   q.ID,
		QuestionText: q.Text,
		QuestionType: q.Type,
		Code:         code,
		SubmittedAt:  time.Now(),
	}
}

// RecordSkip writes the skip marker for the current question. Called only
// after the user explicitly confirmed skipping.
func (s *State) RecordSkip() {
	q := s.Current()
	s.Answers[q.ID] = Answer{
		QuestionID:   q.ID,
		QuestionText: q.Text,
		QuestionType: q.Type,
		Skipped:      true,
		SkippedAt:    time.Now(),
	}
}

// CanAdvance is the gating rule: moving past a live question requires either
// its timer to have expired or a present answer. Anything else goes through
// the skip-confirmation path.
func (s *State) CanAdvance() bool {
	return s.TimeUp || s.Answered(s.Current().ID)
}

// Advance moves the cursor forward, tears down the previous question's timer
// and arms the next one. It returns false on the last question, where
// finishing takes over. Advance never decrements the cursor.
func (s *State) Advance() bool {
	if s.Last() {
		return false
	}
	s.Timer.Cancel()
	s.Index++
	s.TimeUp = false
	s.Timer.Rearm(DurationFor(s.Current()))
	return true
}

// Resume restores saved answers into a fresh state and positions the cursor
// on the first question with no record, rearming its timer. Used when
// continuing a persisted draft.
func (s *State) Resume(answers []Answer) {
	for _, a := range answers {
		s.Answers[a.QuestionID] = a
	}
	s.Index = len(s.Questions) - 1
	for i, q := range s.Questions {
		if _, ok := s.Answers[q.ID]; !ok {
			s.Index = i
			break
		}
	}
	s.TimeUp = false
	s.Timer.Rearm(DurationFor(s.Current()))
}

// AnswerList snapshots the answer map in question order.
func (s *State) AnswerList() []Answer {
	out := make([]Answer, 0, len(s.Answers))
	for _, q := range s.Questions {
		if a, ok := s.Answers[q.ID]; ok {
			out = append(out, a)
		}
	}
	return out
}

// AnsweredCount counts present answers; skips and empty slots count zero.
func (s *State) AnsweredCount() int {
	n := 0
	for _, q := range s.Questions {
		if s.Answered(q.ID) {
			n++
		}
	}
	return n
}

// SkippedCount counts explicit skip markers.
func (s *State) SkippedCount() int {
	n := 0
	for _, a := range s.Answers {
		if a.Skipped {
			n++
		}
	}
	return n
}

// CompletionRate is 100 * answered / total, rounded to the nearest integer.
func (s *State) CompletionRate() float64 {
	return Rate(s.AnsweredCount(), len(s.Questions))
}

// Seal stamps completion and freezes the session for submission.
func (s *State) Seal(now time.Time) *Session {
	s.Timer.Cancel()
	return &Session{
		ID:             s.SessionID,
		Metadata:       s.Metadata,
		Questions:      s.Questions,
		StartedAt:      s.StartedAt,
		CompletedAt:    now,
		CompletionRate: s.CompletionRate(),
	}
}
