// Package history lists past interview feedback: the paginated server
// history when signed in, the local completed-session log otherwise.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/screens/login"
	"github.com/prepdeck/prepdeck/internal/store"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

type historyLoadedMsg struct {
	Page  *api.HistoryPage
	Local []store.CompletedSession
	Err   error
}

// HistoryScreen displays past sessions and their grades.
type HistoryScreen struct {
	client   *api.Client // nil in offline mode
	sessions store.SessionRepo
	creds    store.CredentialRepo
	pageSize int

	page     *api.HistoryPage
	local    []store.CompletedSession
	pageNum  int
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(client *api.Client, sessions store.SessionRepo, creds store.CredentialRepo, pageSize int) *HistoryScreen {
	return &HistoryScreen{
		client:   client,
		sessions: sessions,
		creds:    creds,
		pageSize: pageSize,
		pageNum:  1,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

// load fetches the server page when a client is available, falling back to
// the local log offline or when not signed in.
func (s *HistoryScreen) load() tea.Cmd {
	client := s.client
	sessions := s.sessions
	pageNum := s.pageNum
	pageSize := s.pageSize
	return func() tea.Msg {
		ctx := context.Background()

		if client != nil {
			page, err := client.FeedbackHistory(ctx, pageNum, pageSize)
			if err == nil {
				return historyLoadedMsg{Page: page}
			}
			// A server 401 means the stored token expired and needs a fresh
			// sign-in; a missing token just means local-only browsing.
			var apiErr *api.APIError
			if errors.As(err, &apiErr) || !errors.Is(err, api.ErrUnauthorized) {
				return historyLoadedMsg{Err: err}
			}
		}

		if sessions == nil {
			return historyLoadedMsg{}
		}
		local, err := sessions.Recent(ctx, 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Local: local}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
	}
	if s.page != nil && s.page.Pagination.TotalPages > 1 {
		hints = append(hints, layout.KeyHint{Key: "←/→", Description: "Page"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.loaded = true
		s.selected = 0
		if msg.Err != nil {
			// An expired token means the stored credential is useless: drop
			// it and route to sign-in.
			if errors.Is(msg.Err, api.ErrUnauthorized) {
				if s.creds != nil {
					_ = s.creds.Clear(context.Background())
				}
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: login.New(s.client, s.creds)}
				}
			}
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.page = msg.Page
		s.local = msg.Local
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *HistoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < s.rowCount()-1 {
			s.selected++
		}
	case "right", "l":
		if s.page != nil && s.pageNum < s.page.Pagination.TotalPages {
			return s, s.turnPage(s.pageNum + 1)
		}
	case "left", "h":
		if s.page != nil && s.pageNum > 1 {
			return s, s.turnPage(s.pageNum - 1)
		}
	}
	return s, nil
}

func (s *HistoryScreen) turnPage(n int) tea.Cmd {
	s.pageNum = n
	s.loaded = false
	return s.load()
}

func (s *HistoryScreen) rowCount() int {
	if s.page != nil {
		return len(s.page.Feedback)
	}
	return len(s.local)
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if s.rowCount() == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No interviews yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.page != nil {
		for i, e := range s.page.Feedback {
			line := fmt.Sprintf("%s  %s (%s)  %.0f/100 %s  %.0f%% complete",
				e.CreatedAt.Format("Jan 02, 2006"), e.Role, e.InterviewType,
				e.OverallScore, e.OverallGrade, e.CompletionRate)
			b.WriteString(s.renderRow(line, i == s.selected, width))
		}
		if s.page.Pagination.TotalPages > 1 {
			b.WriteString("\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(
					fmt.Sprintf("Page %d/%d (%d total)",
						s.page.Pagination.Page, s.page.Pagination.TotalPages,
						s.page.Pagination.TotalItems))))
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Local sessions")))
	b.WriteString("\n\n")
	for i, sess := range s.local {
		grade := sess.Grade
		if grade == "" {
			grade = "—"
		}
		line := fmt.Sprintf("%s  %s (%s)  %d/%d answered  %.0f%%  %s",
			sess.CompletedAt.Format("Jan 02, 2006"), sess.Role, sess.InterviewType,
			sess.Answered, sess.TotalQuestions, sess.CompletionRate, grade)
		b.WriteString(s.renderRow(line, i == s.selected, width))
	}
	return b.String()
}

func (s *HistoryScreen) renderRow(line string, selected bool, width int) string {
	prefix := "  "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		prefix = "> "
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		style.Render(prefix+line)) + "\n"
}
