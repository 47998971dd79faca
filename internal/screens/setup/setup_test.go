package setup

import (
	"context"
	"errors"
	"testing"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/capture"
	"github.com/prepdeck/prepdeck/internal/finalize"
	iv "github.com/prepdeck/prepdeck/internal/interview"
	"github.com/prepdeck/prepdeck/internal/router"
	interviewscreen "github.com/prepdeck/prepdeck/internal/screens/interview"
)

type fakeSource struct {
	set *api.QuestionSet
	err error
	in  api.GenerateQuestionsInput
}

func (f *fakeSource) GenerateQuestions(ctx context.Context, in api.GenerateQuestionsInput) (*api.QuestionSet, error) {
	f.in = in
	return f.set, f.err
}

func newTestSetup(src *fakeSource) *Screen {
	return New(src, nil, finalize.New(finalize.LocalSaver{}, nil, nil),
		func() capture.Source { return capture.NewTypedSource() }, "Go")
}

func TestSubmitRequiresRole(t *testing.T) {
	s := newTestSetup(&fakeSource{})

	s.submit()
	if s.formErr == "" {
		t.Error("expected validation error without a role")
	}
	if s.generating {
		t.Error("must not generate with an invalid form")
	}
}

func TestSubmitSendsFormMetadata(t *testing.T) {
	src := &fakeSource{set: &api.QuestionSet{
		Questions: []iv.Question{{ID: "q1", Text: "Tell me", Type: iv.TypeTechnical}},
	}}
	s := newTestSetup(src)
	s.role.Model.SetValue("Backend Engineer")
	s.company.Model.SetValue("Acme")

	cmd := s.submit()
	if cmd == nil {
		t.Fatal("expected generate command")
	}
	msg, ok := cmd().(questionsMsg)
	if !ok {
		t.Fatalf("expected questionsMsg, got %T", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("generate: %v", msg.Err)
	}
	if src.in.Metadata.Role != "Backend Engineer" || src.in.Metadata.Company != "Acme" {
		t.Errorf("metadata = %+v", src.in.Metadata)
	}
	if src.in.Metadata.Difficulty != iv.DifficultyMedium {
		t.Errorf("difficulty = %q, want the medium default", src.in.Metadata.Difficulty)
	}
}

func TestLanguageOnlySentWithCodingRound(t *testing.T) {
	src := &fakeSource{set: &api.QuestionSet{
		Questions: []iv.Question{{ID: "q1", Text: "Q", Type: iv.TypeTechnical}},
	}}
	s := newTestSetup(src)
	s.role.Model.SetValue("SRE")

	s.submit()
	if src.in.Metadata.Language != "" {
		t.Errorf("language = %q, want empty without a coding round", src.in.Metadata.Language)
	}

	s.coding.SetValue("yes")
	s.submit()
	if src.in.Metadata.Language != "Go" {
		t.Errorf("language = %q, want the configured default", src.in.Metadata.Language)
	}
}

func TestQuestionsStartTheInterview(t *testing.T) {
	s := newTestSetup(&fakeSource{})
	s.role.Model.SetValue("SRE")

	set := &api.QuestionSet{
		Questions: []iv.Question{{ID: "q1", Text: "Q", Type: iv.TypeTechnical}},
		Metadata:  iv.Metadata{Role: "SRE"},
	}
	_, cmd := s.handleQuestions(questionsMsg{Set: set})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*interviewscreen.Screen); !ok {
		t.Errorf("pushed %T, want the interview screen", push.Screen)
	}
}

func TestGenerateErrorStaysOnForm(t *testing.T) {
	s := newTestSetup(&fakeSource{err: errors.New("provider down")})
	s.role.Model.SetValue("SRE")

	cmd := s.submit()
	msg := cmd().(questionsMsg)
	_, navCmd := s.handleQuestions(msg)
	if navCmd != nil {
		t.Error("expected no navigation on generate failure")
	}
	if s.formErr == "" {
		t.Error("expected the error surfaced on the form")
	}
	if s.generating {
		t.Error("generating flag must reset")
	}
}

func TestEmptyQuestionSetRejected(t *testing.T) {
	s := newTestSetup(&fakeSource{})
	s.role.Model.SetValue("SRE")

	_, cmd := s.handleQuestions(questionsMsg{Set: &api.QuestionSet{}})
	if cmd != nil {
		t.Error("expected no navigation for an empty question set")
	}
	if s.formErr == "" {
		t.Error("expected a load error instead of a broken session")
	}
}
