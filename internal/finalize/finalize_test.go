package finalize

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/feedback"
	"github.com/prepdeck/prepdeck/internal/interview"
)

type fakeSaver struct {
	id      string
	err     error
	calls   int
	answers []interview.Answer
}

func (f *fakeSaver) SaveSession(ctx context.Context, sess *interview.Session, answers []interview.Answer) (string, error) {
	f.calls++
	f.answers = answers
	return f.id, f.err
}

type fakeGenerator struct {
	report *feedback.Report
	err    error
	calls  int
	sess   *interview.Session
}

func (f *fakeGenerator) GenerateFeedback(ctx context.Context, sess *interview.Session, answers []interview.Answer) (*feedback.Report, error) {
	f.calls++
	f.sess = sess
	return f.report, f.err
}

type fakeLocal struct {
	currentID    string
	draftCleared bool
	logged       bool
	loggedReport *feedback.Report
	err          error
}

func (f *fakeLocal) SetCurrentSession(ctx context.Context, sessionID string) error {
	f.currentID = sessionID
	return f.err
}

func (f *fakeLocal) ClearDraft(ctx context.Context) error {
	f.draftCleared = true
	return f.err
}

func (f *fakeLocal) LogCompleted(ctx context.Context, sess *interview.Session, answered, skipped int, report *feedback.Report) error {
	f.logged = true
	f.loggedReport = report
	return f.err
}

func finalizeState(t *testing.T) *interview.State {
	t.Helper()
	st, err := interview.NewState("sess-1", interview.Metadata{Role: "SRE"}, []interview.Question{
		{ID: "q1", Text: "One", Type: interview.TypeTechnical},
		{ID: "q2", Text: "Two", Type: interview.TypeTechnical},
	})
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	st.RecordTranscript(st.Questions[0], &interview.Transcript{Text: "answer", Timestamp: time.Now()})
	return st
}

func TestFinalizeHappyPath(t *testing.T) {
	saver := &fakeSaver{id: "srv-42"}
	gen := &fakeGenerator{report: &feedback.Report{OverallScore: 80}}
	local := &fakeLocal{}
	f := New(saver, gen, local)

	res, err := f.Finalize(context.Background(), finalizeState(t))
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if res.SessionID != "srv-42" {
		t.Errorf("session id = %q, want srv-42", res.SessionID)
	}
	if res.Report == nil || res.FeedbackErr != nil {
		t.Fatalf("result = %+v, want report and no feedback error", res)
	}
	// Normalize filled the derived fields.
	if res.Report.OverallGrade != "A-" {
		t.Errorf("grade = %q, want A-", res.Report.OverallGrade)
	}
	if local.currentID != "srv-42" || !local.draftCleared || !local.logged {
		t.Errorf("local state = %+v, want current id set, draft cleared, logged", local)
	}
	if local.loggedReport == nil {
		t.Error("expected report passed to local log")
	}
}

func TestFinalizeSaveFailureDoesNothingElse(t *testing.T) {
	saver := &fakeSaver{err: errors.New("backend down")}
	gen := &fakeGenerator{}
	local := &fakeLocal{}
	f := New(saver, gen, local)

	_, err := f.Finalize(context.Background(), finalizeState(t))
	if err == nil {
		t.Fatal("expected save error")
	}
	// Feedback must never be requested when the save failed, and the draft
	// must survive for the retry.
	if gen.calls != 0 {
		t.Errorf("feedback calls = %d, want 0", gen.calls)
	}
	if local.draftCleared || local.logged || local.currentID != "" {
		t.Errorf("local state touched on save failure: %+v", local)
	}
}

func TestFinalizeRetryAfterSaveFailure(t *testing.T) {
	saver := &fakeSaver{err: errors.New("backend down")}
	gen := &fakeGenerator{report: &feedback.Report{OverallScore: 70}}
	f := New(saver, gen, &fakeLocal{})
	st := finalizeState(t)

	if _, err := f.Finalize(context.Background(), st); err == nil {
		t.Fatal("expected first attempt to fail")
	}

	saver.err = nil
	saver.id = "srv-7"
	res, err := f.Finalize(context.Background(), st)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if res.SessionID != "srv-7" {
		t.Errorf("session id = %q, want srv-7", res.SessionID)
	}
	if saver.calls != 2 || gen.calls != 1 {
		t.Errorf("save/feedback calls = %d/%d, want 2/1", saver.calls, gen.calls)
	}
}

func TestFinalizeFeedbackFailureStillSucceeds(t *testing.T) {
	saver := &fakeSaver{id: "srv-42"}
	gen := &fakeGenerator{err: errors.New("llm overloaded")}
	local := &fakeLocal{}
	f := New(saver, gen, local)

	res, err := f.Finalize(context.Background(), finalizeState(t))
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !errors.Is(res.FeedbackErr, ErrFeedbackUnavailable) {
		t.Errorf("feedback err = %v, want ErrFeedbackUnavailable", res.FeedbackErr)
	}
	if res.Report != nil {
		t.Error("expected no report")
	}
	// The save is durable: draft cleared and session logged without a report.
	if !local.draftCleared || !local.logged {
		t.Errorf("local state = %+v, want draft cleared and logged", local)
	}
	if local.loggedReport != nil {
		t.Error("expected nil report in local log")
	}
}

func TestFeedbackRetryNeverTouchesSaver(t *testing.T) {
	saver := &fakeSaver{id: "srv-42"}
	gen := &fakeGenerator{err: errors.New("llm overloaded")}
	f := New(saver, gen, &fakeLocal{})
	st := finalizeState(t)

	res, err := f.Finalize(context.Background(), st)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if res.FeedbackErr == nil {
		t.Fatal("expected feedback error")
	}

	gen.err = nil
	gen.report = &feedback.Report{OverallScore: 85}
	report, err := f.Feedback(context.Background(), st)
	if err != nil {
		t.Fatalf("feedback retry: %v", err)
	}
	if report.OverallGrade != "A" {
		t.Errorf("grade = %q, want A", report.OverallGrade)
	}
	if saver.calls != 1 {
		t.Errorf("save calls = %d, want 1 — retrying feedback must not duplicate the session", saver.calls)
	}
}

func TestFeedbackRetryStillFailing(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("llm overloaded")}
	f := New(&fakeSaver{id: "srv-42"}, gen, nil)

	_, err := f.Feedback(context.Background(), finalizeState(t))
	if !errors.Is(err, ErrFeedbackUnavailable) {
		t.Errorf("err = %v, want ErrFeedbackUnavailable", err)
	}
}

func TestFinalizeFallsBackToClientSessionID(t *testing.T) {
	saver := &fakeSaver{id: ""}
	gen := &fakeGenerator{report: &feedback.Report{}}
	f := New(saver, gen, nil)

	res, err := f.Finalize(context.Background(), finalizeState(t))
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if res.SessionID != "sess-1" {
		t.Errorf("session id = %q, want client id sess-1", res.SessionID)
	}
}

func TestFinalizeSurfacesLocalWriteFailures(t *testing.T) {
	saver := &fakeSaver{id: "srv-42"}
	gen := &fakeGenerator{report: &feedback.Report{OverallScore: 80}}
	local := &fakeLocal{err: errors.New("disk full")}
	f := New(saver, gen, local)

	res, err := f.Finalize(context.Background(), finalizeState(t))
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	// The flow still succeeds, but every failed write leaves a visible trace.
	if len(res.Warnings) != 3 {
		t.Fatalf("warnings = %v, want one per failed local write", res.Warnings)
	}
	if res.Report == nil {
		t.Error("expected the report despite local write failures")
	}
}

func TestFinalizeFullSession(t *testing.T) {
	qs := []interview.Question{
		{ID: "q1", Text: "One", Type: interview.TypeTechnical},
		{ID: "q2", Text: "Two", Type: interview.TypeTechnical},
		{ID: "q3", Text: "Three", Type: interview.TypeTechnical, Coding: true, Difficulty: interview.DifficultyMedium},
	}
	st, err := interview.NewState("sess-1", interview.Metadata{Role: "SRE"}, qs)
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	st.RecordTranscript(qs[0], &interview.Transcript{Text: "first", Timestamp: time.Now()})
	st.RecordTranscript(qs[1], &interview.Transcript{Text: "second", Timestamp: time.Now()})
	st.RecordCode(qs[2], "func main() {}")

	saver := &fakeSaver{id: "srv-3"}
	gen := &fakeGenerator{report: &feedback.Report{OverallScore: 90}}
	f := New(saver, gen, &fakeLocal{})

	res, err := f.Finalize(context.Background(), st)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if saver.calls != 1 || len(saver.answers) != 3 {
		t.Errorf("save calls = %d with %d answers, want one save carrying all three", saver.calls, len(saver.answers))
	}
	if gen.calls != 1 {
		t.Errorf("feedback calls = %d, want 1", gen.calls)
	}
	if gen.sess.CompletionRate != 100 {
		t.Errorf("completion rate = %v, want 100", gen.sess.CompletionRate)
	}
	if res.Report == nil {
		t.Error("expected a report")
	}
}

func TestLocalSaverHandsBackClientID(t *testing.T) {
	gen := &fakeGenerator{report: &feedback.Report{}}
	local := &fakeLocal{}
	f := New(LocalSaver{}, gen, local)

	res, err := f.Finalize(context.Background(), finalizeState(t))
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if res.SessionID != "sess-1" {
		t.Errorf("session id = %q, want sess-1", res.SessionID)
	}
	if !local.logged {
		t.Error("expected completed session logged locally")
	}
}
