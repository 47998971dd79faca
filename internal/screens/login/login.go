// Package login is the sign-in / registration form. A successful exchange
// stores the bearer token locally; every later request reuses it.
package login

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/store"
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
)

// Form field indices, in focus order.
const (
	fieldName = iota
	fieldEmail
	fieldPassword
	fieldCount
)

type authDoneMsg struct {
	Result *api.AuthResult
	Err    error
}

// LoginScreen is the sign-in form, toggling into register mode.
type LoginScreen struct {
	client *api.Client
	creds  store.CredentialRepo

	name     components.TextInput
	email    components.TextInput
	password components.TextInput

	register bool
	focus    int
	busy     bool
	formErr  string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates the login screen.
func New(client *api.Client, creds store.CredentialRepo) *LoginScreen {
	pw := components.NewTextInput("password", false, 80)
	pw.Model.EchoMode = textinput.EchoPassword
	pw.Model.Blur()

	name := components.NewTextInput("your name", false, 80)
	name.Model.Blur()

	return &LoginScreen{
		client:   client,
		creds:    creds,
		name:     name,
		email:    components.NewTextInput("you@example.com", false, 120),
		password: pw,
		focus:    fieldEmail,
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.email.Model.Focus()
}

func (s *LoginScreen) Title() string {
	if s.register {
		return "Create Account"
	}
	return "Sign In"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	toggle := "Register instead"
	if s.register {
		toggle = "Sign in instead"
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+R", Description: toggle},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		return s.handleAuthDone(msg)

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "ctrl+r":
			s.register = !s.register
			s.formErr = ""
			if !s.register && s.focus == fieldName {
				return s, s.setFocus(fieldEmail)
			}
			return s, nil
		case "tab", "down":
			return s, s.setFocus(s.nextField(1))
		case "shift+tab", "up":
			return s, s.setFocus(s.nextField(-1))
		case "enter":
			return s, s.submit()
		}
		return s, s.updateFocused(msg)
	}
	return s, s.updateFocused(msg)
}

// nextField advances focus, skipping the name field in sign-in mode.
func (s *LoginScreen) nextField(delta int) int {
	f := s.focus
	for {
		f = (f + delta + fieldCount) % fieldCount
		if f == fieldName && !s.register {
			continue
		}
		return f
	}
}

func (s *LoginScreen) setFocus(f int) tea.Cmd {
	s.name.Model.Blur()
	s.email.Model.Blur()
	s.password.Model.Blur()

	s.focus = f
	switch f {
	case fieldName:
		return s.name.Model.Focus()
	case fieldEmail:
		return s.email.Model.Focus()
	case fieldPassword:
		return s.password.Model.Focus()
	}
	return nil
}

func (s *LoginScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	case fieldEmail:
		s.email, cmd = s.email.Update(msg)
	case fieldPassword:
		s.password, cmd = s.password.Update(msg)
	}
	return cmd
}

func (s *LoginScreen) submit() tea.Cmd {
	name := strings.TrimSpace(s.name.Value())
	email := strings.TrimSpace(s.email.Value())
	password := s.password.Value()

	if email == "" || !strings.Contains(email, "@") {
		s.formErr = "Enter a valid email address"
		return s.setFocus(fieldEmail)
	}
	if password == "" {
		s.formErr = "Password is required"
		return s.setFocus(fieldPassword)
	}
	if s.register && name == "" {
		s.formErr = "Name is required"
		return s.setFocus(fieldName)
	}

	s.formErr = ""
	s.busy = true

	client := s.client
	register := s.register
	return func() tea.Msg {
		ctx := context.Background()
		var res *api.AuthResult
		var err error
		if register {
			res, err = client.Register(ctx, name, email, password)
		} else {
			res, err = client.Login(ctx, email, password)
		}
		return authDoneMsg{Result: res, Err: err}
	}
}

func (s *LoginScreen) handleAuthDone(msg authDoneMsg) (screen.Screen, tea.Cmd) {
	s.busy = false
	if msg.Err != nil {
		s.formErr = msg.Err.Error()
		return s, nil
	}

	if s.creds != nil {
		_ = s.creds.Save(context.Background(), store.StoredCredential{
			Token:   msg.Result.Token,
			UserID:  msg.Result.UserID,
			Email:   msg.Result.Email,
			SavedAt: time.Now(),
		})
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}
