// Package router owns the screen stack. Screens never navigate directly;
// they emit one of the navigation messages below and the app's update loop
// routes it here.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/prepdeck/prepdeck/internal/screen"
)

// PushScreenMsg asks for a new screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks to return to the screen underneath.
type PopScreenMsg struct{}

// ReplaceScreenMsg asks to swap the top screen without growing the stack.
// Used for flows the user should not be able to back into, like the splash
// and a finished interview.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router is a stack of screens. Only the top screen receives input.
type Router struct {
	stack []screen.Screen
}

func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

// Push activates s and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop discards the top screen. The last screen never pops; the app must
// always have something to draw.
func (r *Router) Pop() tea.Cmd {
	if n := len(r.stack); n > 1 {
		r.stack = r.stack[:n-1]
	}
	return nil
}

// Replace swaps the top screen for s and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		r.stack = []screen.Screen{s}
		return s.Init()
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Active is the screen currently receiving input and being drawn.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int { return len(r.stack) }

// Update consumes navigation messages itself and forwards everything else
// to the active screen only. Background screens stay frozen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case PushScreenMsg:
		return r.Push(m.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(m.Screen)
	}

	top := r.Active()
	if top == nil {
		return nil
	}
	next, cmd := top.Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	if top := r.Active(); top != nil {
		return top.View(width, height)
	}
	return ""
}
