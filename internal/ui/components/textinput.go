package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// TextInput is a single-line field. NumericOnly fields swallow any printable
// key that is not a digit, which is how the duration field stays clean.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	MaxWidth    int
	submitted   bool
	valid       bool
}

func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	m.Focus()
	if maxWidth > 0 {
		m.CharLimit = maxWidth
	}
	return TextInput{Model: m, NumericOnly: numericOnly, MaxWidth: maxWidth}
}

func (t TextInput) Init() tea.Cmd { return t.Model.Focus() }

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly && isNonDigitKey(msg) {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// isNonDigitKey reports whether msg is a single printable key outside 0-9.
// Multi-rune keys (backspace, arrows, paste) always pass through.
func isNonDigitKey(msg tea.Msg) bool {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	s := key.String()
	return len(s) == 1 && (s[0] < '0' || s[0] > '9')
}

// View renders the field, with a ✓ or ✗ suffix once Submit has been called.
func (t TextInput) View() string {
	out := t.Model.View()
	switch {
	case !t.submitted:
		return out
	case t.valid:
		return out + " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	default:
		return out + " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
}

func (t TextInput) Value() string { return t.Model.Value() }

func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Submit records the validation outcome so View can show it.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
