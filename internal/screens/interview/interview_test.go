package interview

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/prepdeck/prepdeck/internal/capture"
	"github.com/prepdeck/prepdeck/internal/feedback"
	"github.com/prepdeck/prepdeck/internal/finalize"
	iv "github.com/prepdeck/prepdeck/internal/interview"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screens/feedbackview"
)

type fakeSaver struct {
	id    string
	err   error
	calls int
}

func (f *fakeSaver) SaveSession(ctx context.Context, sess *iv.Session, answers []iv.Answer) (string, error) {
	f.calls++
	return f.id, f.err
}

type fakeGenerator struct {
	report *feedback.Report
	err    error
}

func (f *fakeGenerator) GenerateFeedback(ctx context.Context, sess *iv.Session, answers []iv.Answer) (*feedback.Report, error) {
	return f.report, f.err
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuestions(n int) []iv.Question {
	qs := make([]iv.Question, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, iv.Question{
			ID:   "q" + string(rune('0'+i)),
			Text: "Question " + string(rune('0'+i)),
			Type: iv.TypeTechnical,
		})
	}
	return qs
}

func newTestScreen(t *testing.T, n int, saver *fakeSaver, gen *fakeGenerator) *Screen {
	t.Helper()
	state, err := iv.NewState("sess-1", iv.Metadata{Role: "SRE"}, testQuestions(n))
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	if saver == nil {
		saver = &fakeSaver{id: "srv-1"}
	}
	if gen == nil {
		gen = &fakeGenerator{report: &feedback.Report{OverallScore: 80}}
	}
	src := &capture.ScriptedSource{
		Transcript: &iv.Transcript{Text: "spoken answer", Timestamp: time.Now()},
	}
	return New(state, nil, finalize.New(saver, gen, nil), func() capture.Source { return src })
}

func TestNextWithoutAnswerOpensSkipConfirm(t *testing.T) {
	s := newTestScreen(t, 2, nil, nil)

	s.Update(keyPress('n'))
	if !s.confirmSkip {
		t.Fatal("expected skip confirmation when advancing unanswered")
	}
	if s.state.Index != 0 {
		t.Errorf("index = %d, cursor must not move before confirmation", s.state.Index)
	}
}

func TestSkipConfirmYesAdvances(t *testing.T) {
	s := newTestScreen(t, 2, nil, nil)

	s.Update(keyPress('n'))
	s.Update(keyPress('y'))

	if s.confirmSkip {
		t.Error("confirmation should close after y")
	}
	if s.state.Index != 1 {
		t.Errorf("index = %d, want 1", s.state.Index)
	}
	if !s.state.Answers["q0"].Skipped {
		t.Error("expected skip marker on the question left behind")
	}
}

func TestSkipConfirmNoStaysPut(t *testing.T) {
	s := newTestScreen(t, 2, nil, nil)

	s.Update(keyPress('s'))
	s.Update(keyPress('n'))

	if s.confirmSkip {
		t.Error("confirmation should close after n")
	}
	if s.state.Index != 0 {
		t.Errorf("index = %d, want 0", s.state.Index)
	}
	if len(s.state.Answers) != 0 {
		t.Error("declining a skip must not record anything")
	}
}

func TestTimerExpiryOpensTheGate(t *testing.T) {
	s := newTestScreen(t, 2, nil, nil)

	for i := 0; i < iv.SpokenAnswerSeconds; i++ {
		s.Update(timerTickMsg(time.Now()))
	}
	if !s.state.TimeUp {
		t.Fatal("expected TimeUp after the countdown ran out")
	}

	s.Update(keyPress('n'))
	if s.confirmSkip {
		t.Error("no confirmation needed once time is up")
	}
	if s.state.Index != 1 {
		t.Errorf("index = %d, want 1", s.state.Index)
	}
}

func TestRecordingDeliversTranscript(t *testing.T) {
	s := newTestScreen(t, 2, nil, nil)

	s.Update(keyPress('r'))
	if !s.recording {
		t.Fatal("expected recording after r")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if s.recording {
		t.Fatal("expected recording stopped after esc")
	}
	a := s.state.Answers["q0"]
	if a.Transcription == nil || a.Transcription.Text != "spoken answer" {
		t.Errorf("answer = %+v, want the captured transcript", a)
	}
}

func TestFailedCaptureLeavesSlotEmpty(t *testing.T) {
	state, err := iv.NewState("sess-1", iv.Metadata{}, testQuestions(1))
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	s := New(state, nil, finalize.New(&fakeSaver{}, &fakeGenerator{}, nil),
		func() capture.Source { return &capture.ScriptedSource{FailStart: true} })

	s.Update(keyPress('r'))
	if s.recording {
		t.Error("recording must not start when the device fails")
	}
	if s.captureErr == "" {
		t.Error("expected the failure surfaced")
	}
	if len(s.state.Answers) != 0 {
		t.Error("answer slot must stay empty on capture failure")
	}
}

func TestFinishPushesFeedbackScreen(t *testing.T) {
	s := newTestScreen(t, 1, nil, nil)
	s.state.RecordCode(s.state.Current(), "solution")

	_, cmd := s.Update(keyPress('f'))
	if cmd == nil {
		t.Fatal("expected finalize command")
	}
	done, ok := cmd().(finalizeDoneMsg)
	if !ok {
		t.Fatalf("expected finalizeDoneMsg, got %T", cmd())
	}
	if done.Err != nil {
		t.Fatalf("finalize: %v", done.Err)
	}

	_, cmd = s.Update(done)
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*feedbackview.Screen); !ok {
		t.Errorf("pushed %T, want feedback screen", push.Screen)
	}
}

func TestSaveFailureKeepsSessionLiveForRetry(t *testing.T) {
	saver := &fakeSaver{err: errors.New("backend down")}
	s := newTestScreen(t, 1, saver, nil)
	s.state.RecordCode(s.state.Current(), "solution")

	_, cmd := s.Update(keyPress('f'))
	done := cmd().(finalizeDoneMsg)
	if done.Err == nil {
		t.Fatal("expected save failure")
	}
	s.Update(done)

	if s.finishing {
		t.Error("finishing flag must reset so the user can retry")
	}
	if s.saveErr == "" {
		t.Error("expected the save error surfaced")
	}

	// Retry succeeds this time.
	saver.err = nil
	_, cmd = s.Update(keyPress('f'))
	if cmd == nil {
		t.Fatal("expected retry command")
	}
	done = cmd().(finalizeDoneMsg)
	if done.Err != nil {
		t.Errorf("retry: %v", done.Err)
	}
	if saver.calls != 2 {
		t.Errorf("save calls = %d, want 2", saver.calls)
	}
}

func TestFinishGatedOnLastQuestion(t *testing.T) {
	s := newTestScreen(t, 1, nil, nil)

	_, _ = s.Update(keyPress('f'))
	if !s.confirmSkip {
		t.Error("finishing an unanswered last question must confirm the skip")
	}
}
