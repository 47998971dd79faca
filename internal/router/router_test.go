package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/prepdeck/prepdeck/internal/screen"
)

// stubScreen records lifecycle calls.
type stubScreen struct {
	name    string
	inited  bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.name }
func (s *stubScreen) Title() string                 { return s.name }

func TestPushInitsAndActivates(t *testing.T) {
	r := New(&stubScreen{name: "root"})
	next := &stubScreen{name: "next"}

	r.Push(next)

	if !next.inited {
		t.Error("pushed screen was not initialized")
	}
	if r.Active() != next {
		t.Errorf("active = %v, want the pushed screen", r.Active())
	}
	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
}

func TestPopReturnsToPrevious(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)
	r.Push(&stubScreen{name: "next"})

	r.Pop()

	if r.Active() != root {
		t.Errorf("active = %v, want root after pop", r.Active())
	}
}

func TestPopNeverEmptiesTheStack(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	r.Pop()
	r.Pop()

	if r.Depth() != 1 || r.Active() != root {
		t.Errorf("depth = %d active = %v, the last screen must survive", r.Depth(), r.Active())
	}
}

func TestReplaceSwapsInPlace(t *testing.T) {
	r := New(&stubScreen{name: "root"})
	r.Push(&stubScreen{name: "old"})
	repl := &stubScreen{name: "new"}

	r.Replace(repl)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, replace must not grow the stack", r.Depth())
	}
	if r.Active() != repl || !repl.inited {
		t.Errorf("active = %v inited = %v", r.Active(), repl.inited)
	}
}

func TestNavigationMessages(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)
	pushed := &stubScreen{name: "pushed"}

	r.Update(PushScreenMsg{Screen: pushed})
	if r.Active() != pushed {
		t.Fatalf("active = %v after PushScreenMsg", r.Active())
	}

	swapped := &stubScreen{name: "swapped"}
	r.Update(ReplaceScreenMsg{Screen: swapped})
	if r.Active() != swapped || r.Depth() != 2 {
		t.Fatalf("active = %v depth = %d after ReplaceScreenMsg", r.Active(), r.Depth())
	}

	r.Update(PopScreenMsg{})
	if r.Active() != root {
		t.Errorf("active = %v after PopScreenMsg, want root", r.Active())
	}
}

func TestOtherMessagesReachOnlyTheActiveScreen(t *testing.T) {
	root := &stubScreen{name: "root"}
	top := &stubScreen{name: "top"}
	r := New(root)
	r.Push(top)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	if top.updates != 1 {
		t.Errorf("top updates = %d, want 1", top.updates)
	}
	if root.updates != 0 {
		t.Errorf("root updates = %d, background screens must not see input", root.updates)
	}
}
