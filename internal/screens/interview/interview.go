// Package interview is the live interview screen: one question at a time,
// a per-question countdown, answer capture and the finish flow.
package interview

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/prepdeck/prepdeck/internal/capture"
	"github.com/prepdeck/prepdeck/internal/finalize"
	iv "github.com/prepdeck/prepdeck/internal/interview"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/screens/feedbackview"
	"github.com/prepdeck/prepdeck/internal/store"
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
)

// Screen implements screen.Screen for an active interview session.
type Screen struct {
	state     *iv.State
	drafts    store.DraftRepo
	finalizer *finalize.Finalizer
	newSource func() capture.Source

	// source is the capture source for the current question, created on
	// record-start and discarded when the question changes.
	source  capture.Source
	pending *iv.Transcript

	area      components.TextArea
	recording bool
	editing   bool

	confirmSkip bool
	finishing   bool
	saveErr     string
	captureErr  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the interview screen over freshly started session state.
func New(state *iv.State, drafts store.DraftRepo, finalizer *finalize.Finalizer, newSource func() capture.Source) *Screen {
	return &Screen{
		state:     state,
		drafts:    drafts,
		finalizer: finalizer,
		newSource: newSource,
		area:      components.NewTextArea("", 70, 8),
	}
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.saveDraft(), tickCmd())
}

func (s *Screen) Title() string {
	return "Interview"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirmSkip {
		return []layout.KeyHint{
			{Key: "Y", Description: "Skip question"},
			{Key: "N", Description: "Keep answering"},
		}
	}
	if s.recording {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Stop recording"},
		}
	}
	if s.editing {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Save & close editor"},
		}
	}
	hints := []layout.KeyHint{}
	if s.state.Current().Coding {
		hints = append(hints, layout.KeyHint{Key: "E", Description: "Open editor"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Record answer"})
	}
	if s.state.Last() {
		hints = append(hints, layout.KeyHint{Key: "F", Description: "Finish"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "N", Description: "Next"})
	}
	hints = append(hints, layout.KeyHint{Key: "S", Description: "Skip"})
	return hints
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()

	case finalizeDoneMsg:
		return s.handleFinalizeDone(msg)

	case draftSavedMsg:
		// Best effort: a failed draft write never interrupts the session.
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.recording || s.editing {
		var cmd tea.Cmd
		s.area, cmd = s.area.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleTick() (screen.Screen, tea.Cmd) {
	if s.finishing {
		return s, tickCmd()
	}

	if s.state.Timer.Tick() {
		s.state.TimeUp = true
		// Expiry closes any open capture so the artifact isn't lost.
		if s.recording {
			s.stopRecording()
		}
		if s.editing {
			s.closeEditor()
		}
		return s, tea.Batch(s.saveDraft(), tickCmd())
	}
	return s, tickCmd()
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.finishing {
		return s, nil
	}

	if s.confirmSkip {
		switch key {
		case "y", "Y":
			s.confirmSkip = false
			s.state.RecordSkip()
			if s.state.Last() {
				return s, tea.Batch(s.saveDraft(), s.finish())
			}
			s.advance()
			return s, s.saveDraft()
		case "n", "N", "esc":
			s.confirmSkip = false
		}
		return s, nil
	}

	if s.recording {
		if key == "esc" {
			s.stopRecording()
			return s, s.saveDraft()
		}
		var cmd tea.Cmd
		s.area, cmd = s.area.Update(msg)
		if s.source != nil {
			if ts, ok := s.source.(*capture.TypedSource); ok {
				ts.SetText(s.area.Value())
			}
		}
		return s, cmd
	}

	if s.editing {
		if key == "esc" {
			s.closeEditor()
			return s, s.saveDraft()
		}
		var cmd tea.Cmd
		s.area, cmd = s.area.Update(msg)
		return s, cmd
	}

	switch key {
	case "r":
		if !s.state.Current().Coding {
			return s, s.startRecording()
		}
	case "e":
		if s.state.Current().Coding {
			s.openEditor()
			return s, s.area.Focus()
		}
	case "n", "enter":
		if s.state.Last() {
			break
		}
		if !s.state.CanAdvance() {
			// The gate: no answer and time still on the clock means the
			// only way forward is an explicit skip.
			s.confirmSkip = true
			return s, nil
		}
		s.advance()
		return s, s.saveDraft()
	case "s":
		s.confirmSkip = true
		return s, nil
	case "f":
		if !s.state.Last() {
			break
		}
		if !s.state.CanAdvance() {
			s.confirmSkip = true
			return s, nil
		}
		return s, s.finish()
	}

	if s.state.Last() && key == "enter" {
		if !s.state.CanAdvance() {
			s.confirmSkip = true
			return s, nil
		}
		return s, s.finish()
	}

	return s, nil
}

// startRecording opens a fresh capture source scoped to the current question.
func (s *Screen) startRecording() tea.Cmd {
	s.captureErr = ""
	s.source = s.newSource()
	s.pending = nil
	s.source.OnArtifact(func(tr *iv.Transcript) {
		s.pending = tr
	})
	if err := s.source.Start(); err != nil {
		// The slot stays empty; the user may retry, type instead, or skip.
		s.captureErr = err.Error()
		s.source = nil
		return nil
	}
	s.recording = true
	s.area = components.NewTextArea("Speak your answer (type it here)...", 70, 8)
	if a, ok := s.state.Answers[s.state.Current().ID]; ok && a.Transcription != nil {
		s.area.SetValue(a.Transcription.Text)
	}
	return s.area.Focus()
}

// stopRecording closes the source and upserts whatever artifact it produced.
func (s *Screen) stopRecording() {
	if s.source == nil {
		s.recording = false
		return
	}
	if ts, ok := s.source.(*capture.TypedSource); ok {
		ts.SetText(s.area.Value())
	}
	s.source.Stop()
	s.state.RecordTranscript(s.state.Current(), s.pending)
	s.source = nil
	s.pending = nil
	s.recording = false
	s.area.Blur()
}

func (s *Screen) openEditor() {
	s.editing = true
	s.area = components.NewTextArea("// write your solution here", 70, 12)
	if a, ok := s.state.Answers[s.state.Current().ID]; ok {
		s.area.SetValue(a.Code)
	}
}

// closeEditor records the literal editor contents; empty text clears the slot.
func (s *Screen) closeEditor() {
	s.state.RecordCode(s.state.Current(), s.area.Value())
	s.editing = false
	s.area.Blur()
}

// advance moves to the next question and resets per-question capture state.
func (s *Screen) advance() {
	s.state.Advance()
	s.source = nil
	s.pending = nil
	s.captureErr = ""
}

// finish runs the two-phase submit exactly once; repeated keys while the
// request is in flight are ignored.
func (s *Screen) finish() tea.Cmd {
	if s.finishing {
		return nil
	}
	s.finishing = true
	s.saveErr = ""
	if s.recording {
		s.stopRecording()
	}
	if s.editing {
		s.closeEditor()
	}

	state := s.state
	finalizer := s.finalizer
	return func() tea.Msg {
		res, err := finalizer.Finalize(context.Background(), state)
		return finalizeDoneMsg{Result: res, Err: err}
	}
}

func (s *Screen) handleFinalizeDone(msg finalizeDoneMsg) (screen.Screen, tea.Cmd) {
	s.finishing = false
	if msg.Err != nil {
		// Save failed: the session stays live and the same finish action
		// retries the whole submit.
		s.saveErr = msg.Err.Error()
		return s, nil
	}
	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: feedbackview.New(msg.Result, s.finalizer, s.state),
		}
	}
}

// saveDraft persists the in-progress snapshot in the background.
func (s *Screen) saveDraft() tea.Cmd {
	if s.drafts == nil {
		return nil
	}
	d := store.DraftData{
		SessionID: s.state.SessionID,
		Questions: s.state.Questions,
		Metadata:  s.state.Metadata,
		Answers:   s.state.AnswerList(),
	}
	drafts := s.drafts
	return func() tea.Msg {
		return draftSavedMsg{Err: drafts.Save(context.Background(), d)}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
