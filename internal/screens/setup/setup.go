// Package setup is the interview configuration form: role, company, job
// description, question type, difficulty, length, and the optional coding
// round. Submitting generates the question set and starts the session.
package setup

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/capture"
	"github.com/prepdeck/prepdeck/internal/finalize"
	iv "github.com/prepdeck/prepdeck/internal/interview"
	"github.com/prepdeck/prepdeck/internal/questiongen"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	interviewscreen "github.com/prepdeck/prepdeck/internal/screens/interview"
	"github.com/prepdeck/prepdeck/internal/store"
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
)

// Form field indices, in focus order.
const (
	fieldRole = iota
	fieldCompany
	fieldJobDesc
	fieldType
	fieldDifficulty
	fieldDuration
	fieldCoding
	fieldLanguage
	fieldResume
	fieldCount
)

// Screen is the setup form.
type Screen struct {
	source    questiongen.Source
	drafts    store.DraftRepo
	finalizer *finalize.Finalizer
	newSource func() capture.Source

	role     components.TextInput
	company  components.TextInput
	jobDesc  components.TextArea
	qType    components.ChoiceGroup
	diff     components.ChoiceGroup
	duration components.ChoiceGroup
	coding   components.ChoiceGroup
	language components.TextInput
	resume   components.TextInput

	focus      int
	generating bool
	formErr    string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the setup screen. defaultLanguage pre-fills the coding language
// field from configuration.
func New(source questiongen.Source, drafts store.DraftRepo, finalizer *finalize.Finalizer, newSource func() capture.Source, defaultLanguage string) *Screen {
	lang := components.NewTextInput("Go", false, 40)
	lang.Model.SetValue(defaultLanguage)

	s := &Screen{
		source:    source,
		drafts:    drafts,
		finalizer: finalizer,
		newSource: newSource,

		role:     components.NewTextInput("e.g. Backend Engineer", false, 80),
		company:  components.NewTextInput("e.g. Acme Corp", false, 80),
		jobDesc:  components.NewTextArea("Paste the job description (optional)", 60, 4),
		qType:    components.NewChoiceGroup("Type", []string{"technical", "hr", "behavioral"}),
		diff:     components.NewChoiceGroup("Difficulty", []string{"easy", "medium", "hard"}),
		duration: components.NewChoiceGroup("Length", []string{"short", "medium", "long"}),
		coding:   components.NewChoiceGroup("Coding round", []string{"no", "yes"}),
		language: lang,
		resume:   components.NewTextInput("Path to resume file (optional)", false, 120),
	}
	s.diff.SetValue("medium")
	s.duration.SetValue("medium")
	s.company.Model.Blur()
	s.language.Model.Blur()
	s.resume.Model.Blur()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.role.Model.Focus()
}

func (s *Screen) Title() string {
	return "New Interview"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.generating {
		return []layout.KeyHint{}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←/→", Description: "Choose"},
		{Key: "Ctrl+S", Description: "Start interview"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsMsg:
		return s.handleQuestions(msg)

	case tea.KeyMsg:
		if s.generating {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "down":
			return s, s.setFocus(s.nextField(1))
		case "shift+tab", "up":
			return s, s.setFocus(s.nextField(-1))
		case "ctrl+s":
			return s, s.submit()
		case "enter":
			// Enter submits from any single-line field; the job description
			// area keeps it for newlines.
			if s.focus != fieldJobDesc {
				return s, s.submit()
			}
		}
		return s, s.updateFocused(msg)
	}

	return s, s.updateFocused(msg)
}

// nextField advances focus, skipping the language field when the coding
// round is off.
func (s *Screen) nextField(delta int) int {
	f := s.focus
	for {
		f = (f + delta + fieldCount) % fieldCount
		if f == fieldLanguage && s.coding.Value() != "yes" {
			continue
		}
		return f
	}
}

func (s *Screen) setFocus(f int) tea.Cmd {
	s.role.Model.Blur()
	s.company.Model.Blur()
	s.jobDesc.Blur()
	s.language.Model.Blur()
	s.resume.Model.Blur()

	s.focus = f
	switch f {
	case fieldRole:
		return s.role.Model.Focus()
	case fieldCompany:
		return s.company.Model.Focus()
	case fieldJobDesc:
		return s.jobDesc.Focus()
	case fieldLanguage:
		return s.language.Model.Focus()
	case fieldResume:
		return s.resume.Model.Focus()
	}
	return nil
}

func (s *Screen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case fieldRole:
		s.role, cmd = s.role.Update(msg)
	case fieldCompany:
		s.company, cmd = s.company.Update(msg)
	case fieldJobDesc:
		s.jobDesc, cmd = s.jobDesc.Update(msg)
	case fieldType:
		s.qType, cmd = s.qType.Update(msg)
	case fieldDifficulty:
		s.diff, cmd = s.diff.Update(msg)
	case fieldDuration:
		s.duration, cmd = s.duration.Update(msg)
	case fieldCoding:
		s.coding, cmd = s.coding.Update(msg)
	case fieldLanguage:
		s.language, cmd = s.language.Update(msg)
	case fieldResume:
		s.resume, cmd = s.resume.Update(msg)
	}
	return cmd
}

// metadata assembles the form into session metadata.
func (s *Screen) metadata() iv.Metadata {
	md := iv.Metadata{
		Role:           strings.TrimSpace(s.role.Value()),
		Company:        strings.TrimSpace(s.company.Value()),
		JobDescription: strings.TrimSpace(s.jobDesc.Value()),
		Type:           iv.QuestionType(s.qType.Value()),
		Difficulty:     iv.Difficulty(s.diff.Value()),
		Duration:       iv.SessionLength(s.duration.Value()),
		IncludeCoding:  s.coding.Value() == "yes",
	}
	if md.IncludeCoding {
		md.Language = strings.TrimSpace(s.language.Value())
	}
	return md
}

func (s *Screen) submit() tea.Cmd {
	md := s.metadata()
	if md.Role == "" {
		s.formErr = "Role is required"
		return s.setFocus(fieldRole)
	}
	if md.IncludeCoding && md.Language == "" {
		s.formErr = "Pick a language for the coding round"
		return s.setFocus(fieldLanguage)
	}
	s.formErr = ""
	s.generating = true

	in := api.GenerateQuestionsInput{
		Metadata:   md,
		ResumePath: strings.TrimSpace(s.resume.Value()),
	}
	source := s.source
	return func() tea.Msg {
		set, err := source.GenerateQuestions(context.Background(), in)
		return questionsMsg{Set: set, Err: err}
	}
}

func (s *Screen) handleQuestions(msg questionsMsg) (screen.Screen, tea.Cmd) {
	s.generating = false
	if msg.Err != nil {
		s.formErr = msg.Err.Error()
		return s, nil
	}

	// The backend echoes the setup metadata; fall back to the local form
	// values if the echo is missing.
	md := msg.Set.Metadata
	if md.Role == "" {
		md = s.metadata()
	}

	state, err := iv.NewState(uuid.NewString(), md, msg.Set.Questions)
	if err != nil {
		s.formErr = err.Error()
		return s, nil
	}
	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: interviewscreen.New(state, s.drafts, s.finalizer, s.newSource),
		}
	}
}
