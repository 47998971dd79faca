package interview

import (
	"testing"
	"time"
)

func testQuestions(n int) []Question {
	qs := make([]Question, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, Question{
			ID:   "q" + string(rune('0'+i)),
			Text: "Question " + string(rune('0'+i)),
			Type: TypeTechnical,
		})
	}
	return qs
}

func newTestState(t *testing.T, n int) *State {
	t.Helper()
	st, err := NewState("sess-1", Metadata{Role: "SRE", Type: TypeTechnical}, testQuestions(n))
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	return st
}

func TestNewStateRejectsEmptyQuestions(t *testing.T) {
	_, err := NewState("sess-1", Metadata{}, nil)
	if err != ErrNoQuestions {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestNewStateArmsFirstTimer(t *testing.T) {
	qs := testQuestions(2)
	qs[0].Coding = true
	qs[0].Difficulty = DifficultyEasy
	st, err := NewState("sess-1", Metadata{}, qs)
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	if !st.Timer.Running() || st.Timer.Total() != CodingEasySeconds {
		t.Errorf("timer total = %d running = %v, want %d running", st.Timer.Total(), st.Timer.Running(), CodingEasySeconds)
	}
}

func TestRecordTranscriptUpserts(t *testing.T) {
	st := newTestState(t, 3)
	q := st.Current()

	st.RecordTranscript(q, &Transcript{Text: "first take", Confidence: 0.9, Timestamp: time.Now()})
	st.RecordTranscript(q, &Transcript{Text: "second take", Confidence: 1, Timestamp: time.Now()})

	if len(st.Answers) != 1 {
		t.Fatalf("answers = %d, want 1 (upsert, never append)", len(st.Answers))
	}
	if st.Answers[q.ID].Transcription.Text != "second take" {
		t.Errorf("kept %q, want the replacement", st.Answers[q.ID].Transcription.Text)
	}

	// Nil transcript clears the slot.
	st.RecordTranscript(q, nil)
	if st.Answered(q.ID) {
		t.Error("expected slot cleared after nil transcript")
	}
}

func TestRecordCodeUpsertsAndClears(t *testing.T) {
	st := newTestState(t, 2)
	q := st.Current()

	st.RecordCode(q, "v1")
	st.RecordCode(q, "v2")
	if st.Answers[q.ID].Code != "v2" {
		t.Errorf("code = %q, want v2", st.Answers[q.ID].Code)
	}

	st.RecordCode(q, "")
	if st.Answered(q.ID) {
		t.Error("expected slot cleared after empty code")
	}
}

func TestGating(t *testing.T) {
	st := newTestState(t, 2)

	if st.CanAdvance() {
		t.Error("must not advance with no answer and time remaining")
	}

	st.RecordTranscript(st.Current(), &Transcript{Text: "an answer", Timestamp: time.Now()})
	if !st.CanAdvance() {
		t.Error("expected advance allowed with a present answer")
	}

	// A skip marker alone does not satisfy the gate; the skip path advances
	// explicitly after confirmation.
	st2 := newTestState(t, 2)
	st2.RecordSkip()
	if st2.CanAdvance() {
		t.Error("skip marker must not count as answered")
	}

	// Time-up opens the gate regardless of the answer slot.
	st3 := newTestState(t, 2)
	st3.TimeUp = true
	if !st3.CanAdvance() {
		t.Error("expected advance allowed after expiry")
	}
}

func TestAdvanceRearmsAndStopsAtLast(t *testing.T) {
	qs := testQuestions(2)
	qs[1].Coding = true
	qs[1].Difficulty = DifficultyHard
	st, err := NewState("sess-1", Metadata{}, qs)
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	st.TimeUp = true

	if !st.Advance() {
		t.Fatal("expected advance from question 1")
	}
	if st.Index != 1 {
		t.Errorf("index = %d, want 1", st.Index)
	}
	if st.TimeUp {
		t.Error("expected TimeUp reset on advance")
	}
	if st.Timer.Total() != CodingHardSeconds || !st.Timer.Running() {
		t.Errorf("timer not rearmed for next question: total=%d", st.Timer.Total())
	}
	if !st.Last() {
		t.Error("expected cursor on last question")
	}
	if st.Advance() {
		t.Error("advance must return false on the last question")
	}
}

func TestSkipRecordsMarker(t *testing.T) {
	st := newTestState(t, 3)
	st.RecordSkip()

	a := st.Answers[st.Current().ID]
	if !a.Skipped || a.SkippedAt.IsZero() {
		t.Errorf("skip marker = %+v", a)
	}
	if st.SkippedCount() != 1 {
		t.Errorf("skipped = %d, want 1", st.SkippedCount())
	}
	if st.AnsweredCount() != 0 {
		t.Errorf("answered = %d, want 0 (skips count zero)", st.AnsweredCount())
	}
}

func TestCompletionRate(t *testing.T) {
	st := newTestState(t, 10)

	// Answer 7 of 10; skip 1; leave 2 empty.
	for i := 0; i < 7; i++ {
		q := st.Questions[i]
		st.RecordTranscript(q, &Transcript{Text: "answer", Timestamp: time.Now()})
	}
	st.Index = 7
	st.RecordSkip()

	if got := st.CompletionRate(); got != 70 {
		t.Errorf("completion rate = %v, want 70", got)
	}
}

func TestRateRounds(t *testing.T) {
	tests := []struct {
		answered, total int
		want            float64
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{5, 5, 100},
		{1, 8, 13},
	}
	for _, tt := range tests {
		if got := Rate(tt.answered, tt.total); got != tt.want {
			t.Errorf("Rate(%d, %d) = %v, want %v", tt.answered, tt.total, got, tt.want)
		}
	}
}

func TestAnswerListFollowsQuestionOrder(t *testing.T) {
	st := newTestState(t, 3)

	// Record out of order.
	st.RecordCode(st.Questions[2], "late")
	st.RecordTranscript(st.Questions[0], &Transcript{Text: "early", Timestamp: time.Now()})

	list := st.AnswerList()
	if len(list) != 2 {
		t.Fatalf("answers = %d, want 2", len(list))
	}
	if list[0].QuestionID != st.Questions[0].ID || list[1].QuestionID != st.Questions[2].ID {
		t.Errorf("answer order = %s, %s", list[0].QuestionID, list[1].QuestionID)
	}
}

func TestSealFreezesSession(t *testing.T) {
	st := newTestState(t, 4)
	st.RecordCode(st.Questions[0], "code")
	st.RecordTranscript(st.Questions[1], &Transcript{Text: "talk", Timestamp: time.Now()})

	now := time.Now()
	sess := st.Seal(now)

	if sess.ID != "sess-1" {
		t.Errorf("id = %q", sess.ID)
	}
	if !sess.CompletedAt.Equal(now) {
		t.Errorf("completed at = %v, want %v", sess.CompletedAt, now)
	}
	if sess.CompletionRate != 50 {
		t.Errorf("completion rate = %v, want 50", sess.CompletionRate)
	}
	if st.Timer.Running() {
		t.Error("expected timer cancelled on seal")
	}
}

func TestDurationFor(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want int
	}{
		{"spoken", Question{Type: TypeTechnical}, SpokenAnswerSeconds},
		{"spoken ignores difficulty", Question{Difficulty: DifficultyHard}, SpokenAnswerSeconds},
		{"coding easy", Question{Coding: true, Difficulty: DifficultyEasy}, CodingEasySeconds},
		{"coding medium", Question{Coding: true, Difficulty: DifficultyMedium}, CodingMediumSeconds},
		{"coding hard", Question{Coding: true, Difficulty: DifficultyHard}, CodingHardSeconds},
		{"coding unknown difficulty gets the easy window", Question{Coding: true, Difficulty: "expert"}, CodingEasySeconds},
		{"coding no difficulty gets the easy window", Question{Coding: true}, CodingEasySeconds},
		{"explicit override wins", Question{Coding: true, Difficulty: DifficultyHard, ExpectedDuration: 120}, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationFor(tt.q); got != tt.want {
				t.Errorf("DurationFor = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResumePositionsOnFirstUnanswered(t *testing.T) {
	st := newTestState(t, 4)
	saved := []Answer{
		{QuestionID: "q0", QuestionText: "Question 0", QuestionType: TypeTechnical, Transcription: &Transcript{Text: "done", Timestamp: time.Now()}},
		{QuestionID: "q1", QuestionText: "Question 1", QuestionType: TypeTechnical, Skipped: true, SkippedAt: time.Now()},
	}

	st.Resume(saved)

	if st.Index != 2 {
		t.Errorf("index = %d, want 2 (q1 has a record even though skipped)", st.Index)
	}
	if len(st.Answers) != 2 {
		t.Errorf("answers = %d, want 2", len(st.Answers))
	}
	if st.TimeUp {
		t.Error("resume must start with a fresh clock")
	}
	if !st.Timer.Running() || st.Timer.Remaining() != SpokenAnswerSeconds {
		t.Errorf("timer = %d remaining, want rearmed to %d", st.Timer.Remaining(), SpokenAnswerSeconds)
	}
}

func TestResumeFullyRecordedDraftLandsOnLast(t *testing.T) {
	st := newTestState(t, 2)
	saved := []Answer{
		{QuestionID: "q0", Code: "a"},
		{QuestionID: "q1", Code: "b"},
	}

	st.Resume(saved)

	if st.Index != 1 {
		t.Errorf("index = %d, want last question", st.Index)
	}
}
