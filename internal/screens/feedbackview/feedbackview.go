// Package feedbackview shows the post-interview report: overall score and
// grade, response metrics and the per-question breakdown. When the session
// saved but feedback generation failed, it owns the retry.
package feedbackview

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/prepdeck/prepdeck/internal/feedback"
	"github.com/prepdeck/prepdeck/internal/finalize"
	iv "github.com/prepdeck/prepdeck/internal/interview"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
)

// retryDoneMsg is sent when a feedback retry returns.
type retryDoneMsg struct {
	Report *feedback.Report
	Err    error
}

// Screen displays a finalize.Result.
type Screen struct {
	result    *finalize.Result
	finalizer *finalize.Finalizer
	state     *iv.State

	retrying bool
	scroll   int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the feedback screen for a finalized session. state is kept so
// a failed feedback request can be retried over the same answers.
func New(result *finalize.Result, finalizer *finalize.Finalizer, state *iv.State) *Screen {
	return &Screen{result: result, finalizer: finalizer, state: state}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Feedback"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.result.FeedbackErr != nil && !s.retrying {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry feedback"},
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "Enter", Description: "Done"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case retryDoneMsg:
		s.retrying = false
		if msg.Err != nil {
			s.result.FeedbackErr = msg.Err
			return s, nil
		}
		s.result.Report = msg.Report
		s.result.FeedbackErr = nil
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			// Pop this screen and the interview screen beneath it.
			pop := func() tea.Msg { return router.PopScreenMsg{} }
			return s, tea.Batch(pop, pop)
		case "r":
			if s.result.FeedbackErr != nil && !s.retrying {
				return s, s.retry()
			}
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			s.scroll++
		}
	}
	return s, nil
}

func (s *Screen) retry() tea.Cmd {
	s.retrying = true
	finalizer := s.finalizer
	state := s.state
	return func() tea.Msg {
		report, err := finalizer.Feedback(context.Background(), state)
		return retryDoneMsg{Report: report, Err: err}
	}
}
