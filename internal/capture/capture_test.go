package capture

import (
	"errors"
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/interview"
)

func TestTypedSourceDeliversTranscript(t *testing.T) {
	src := NewTypedSource()

	var got *interview.Transcript
	src.OnArtifact(func(tr *interview.Transcript) { got = tr })

	if err := src.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	src.SetText("my answer")
	src.Stop()

	if got == nil || got.Text != "my answer" {
		t.Fatalf("artifact = %+v, want text 'my answer'", got)
	}
	if got.Confidence != 1 {
		t.Errorf("confidence = %v, want 1", got.Confidence)
	}
	if got.Timestamp.IsZero() {
		t.Error("expected timestamp set")
	}
}

func TestTypedSourceEmptyTextClears(t *testing.T) {
	src := NewTypedSource()

	delivered := false
	var got *interview.Transcript
	src.OnArtifact(func(tr *interview.Transcript) {
		delivered = true
		got = tr
	})

	if err := src.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	src.Stop()

	if !delivered {
		t.Fatal("expected the cleared signal to be delivered")
	}
	if got != nil {
		t.Errorf("artifact = %+v, want nil (cleared)", got)
	}
}

func TestTypedSourceIgnoresTextWhenNotRecording(t *testing.T) {
	src := NewTypedSource()
	src.SetText("before start")

	var got *interview.Transcript
	src.OnArtifact(func(tr *interview.Transcript) { got = tr })

	if err := src.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	src.Stop()
	if got != nil {
		t.Errorf("artifact = %+v, want nil (text set before start discarded)", got)
	}

	// Stop without start delivers nothing further.
	got = &interview.Transcript{Text: "sentinel"}
	src.Stop()
	if got.Text != "sentinel" {
		t.Error("second stop must be a no-op")
	}
}

func TestScriptedSourceFailStart(t *testing.T) {
	src := &ScriptedSource{FailStart: true}
	err := src.Start()
	if !errors.Is(err, ErrDeviceUnavailable) {
		t.Errorf("err = %v, want ErrDeviceUnavailable", err)
	}

	// A failed start delivers no artifact on stop.
	delivered := false
	src.OnArtifact(func(*interview.Transcript) { delivered = true })
	src.Stop()
	if delivered {
		t.Error("no artifact expected after failed start")
	}
}

func TestScriptedSourceDelivers(t *testing.T) {
	want := &interview.Transcript{Text: "canned", Confidence: 0.8, Timestamp: time.Now()}
	src := &ScriptedSource{Transcript: want}

	var got *interview.Transcript
	src.OnArtifact(func(tr *interview.Transcript) { got = tr })

	if err := src.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	src.Stop()
	if got != want {
		t.Errorf("artifact = %+v, want the canned transcript", got)
	}
	if src.Starts != 1 || src.Stops != 1 {
		t.Errorf("starts/stops = %d/%d, want 1/1", src.Starts, src.Stops)
	}
}
