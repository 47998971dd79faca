package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
)

type homeStub struct{}

func (h *homeStub) Init() tea.Cmd                           { return nil }
func (h *homeStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return h, nil }
func (h *homeStub) View(int, int) string                    { return "home" }
func (h *homeStub) Title() string                           { return "Home" }

// splash returns a screen wired to a counting home factory.
func splash() (*WelcomeScreen, *int) {
	built := 0
	w := New(func() screen.Screen {
		built++
		return &homeStub{}
	})
	return w, &built
}

func advance(w *WelcomeScreen, ticks int) {
	for range ticks {
		w.Update(tickMsg(time.Now()))
	}
}

func hasTagline(view string) bool {
	return strings.Contains(view, "honest feedback")
}

func TestAnimationRevealsBannerOverTime(t *testing.T) {
	w, _ := splash()

	if hasTagline(w.View(80, 24)) {
		t.Error("tagline visible before the animation ran")
	}

	advance(w, 14) // just shy of bannerAt
	if hasTagline(w.View(80, 24)) {
		t.Error("tagline visible before its phase")
	}

	advance(w, 1)
	if !hasTagline(w.View(80, 24)) {
		t.Error("tagline missing after its phase")
	}
}

func TestClockStopsAtMaxAge(t *testing.T) {
	w, built := splash()

	advance(w, 100)

	if w.age != maxAge {
		t.Errorf("age = %v, want capped at %v", w.age, maxAge)
	}
	if *built != 0 {
		t.Errorf("home built %d times without a keypress", *built)
	}
}

func TestKeypressSkipsStraightToHome(t *testing.T) {
	w, built := splash()
	advance(w, 2) // mid-animation

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress produced no command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("command produced %T, want ReplaceScreenMsg", cmd())
	}
	if msg.Screen == nil {
		t.Error("replacement screen is nil")
	}
	if *built != 1 {
		t.Errorf("home built %d times, want 1", *built)
	}
}

func TestHomeIsBuiltExactlyOnce(t *testing.T) {
	w, built := splash()
	advance(w, 50)

	w.Update(tea.KeyPressMsg{Code: 'a'})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})

	if cmd != nil {
		t.Error("second keypress still produced a command")
	}
	if *built != 1 {
		t.Errorf("home built %d times, want 1", *built)
	}
}

func TestSplashHasNoHeaderTitle(t *testing.T) {
	w, _ := splash()
	if got := w.Title(); got != "" {
		t.Errorf("Title() = %q, want empty", got)
	}
}
