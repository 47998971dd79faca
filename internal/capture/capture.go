// Package capture abstracts answer-artifact capture behind a capability
// interface so the interview screen never talks to a device directly. One
// Source instance is scoped to exactly one question; switching questions
// creates a fresh instance, which is what prevents a prior artifact from
// leaking into the wrong slot.
package capture

import (
	"errors"
	"time"

	"github.com/prepdeck/prepdeck/internal/interview"
)

// ErrDeviceUnavailable is surfaced to the user when the capture device
// cannot be opened. The answer slot is left empty — never silently filled
// with a placeholder.
var ErrDeviceUnavailable = errors.New("capture device unavailable")

// Source produces zero or one transcript artifact for a single question and
// reports it through the artifact callback. A nil artifact means "cleared".
type Source interface {
	// Start begins capturing. Returns ErrDeviceUnavailable (possibly
	// wrapped) when the underlying device cannot be opened.
	Start() error

	// Stop ends capturing and delivers the artifact, if any, to the
	// callback registered with OnArtifact.
	Stop()

	// OnArtifact registers the delivery callback. Must be set before Start.
	OnArtifact(fn func(*interview.Transcript))
}

// TypedSource captures a transcript from typed text — the terminal analog of
// dictation. The caller accumulates text between Start and Stop and delivers
// it on Stop; confidence is always 1 since nothing was inferred.
type TypedSource struct {
	fn        func(*interview.Transcript)
	text      string
	recording bool
}

// NewTypedSource returns a keyboard-backed Source.
func NewTypedSource() *TypedSource {
	return &TypedSource{}
}

func (s *TypedSource) Start() error {
	s.recording = true
	s.text = ""
	return nil
}

// SetText replaces the pending transcript text while recording.
func (s *TypedSource) SetText(text string) {
	if s.recording {
		s.text = text
	}
}

func (s *TypedSource) Stop() {
	if !s.recording {
		return
	}
	s.recording = false
	if s.fn == nil {
		return
	}
	if s.text == "" {
		s.fn(nil)
		return
	}
	s.fn(&interview.Transcript{
		Text:       s.text,
		Confidence: 1,
		Timestamp:  time.Now(),
	})
}

func (s *TypedSource) OnArtifact(fn func(*interview.Transcript)) {
	s.fn = fn
}

// ScriptedSource is a deterministic Source for tests: it yields the canned
// transcript on Stop, or fails Start with ErrDeviceUnavailable.
type ScriptedSource struct {
	Transcript *interview.Transcript
	FailStart  bool

	fn      func(*interview.Transcript)
	started bool
	Starts  int
	Stops   int
}

func (s *ScriptedSource) Start() error {
	s.Starts++
	if s.FailStart {
		return ErrDeviceUnavailable
	}
	s.started = true
	return nil
}

func (s *ScriptedSource) Stop() {
	s.Stops++
	if !s.started {
		return
	}
	s.started = false
	if s.fn != nil {
		s.fn(s.Transcript)
	}
}

func (s *ScriptedSource) OnArtifact(fn func(*interview.Transcript)) {
	s.fn = fn
}
