// Package home is the main menu: start or resume an interview, browse
// feedback history, manage the signed-in account and check for updates.
package home

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/capture"
	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/finalize"
	iv "github.com/prepdeck/prepdeck/internal/interview"
	"github.com/prepdeck/prepdeck/internal/questiongen"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/screens/history"
	interviewscreen "github.com/prepdeck/prepdeck/internal/screens/interview"
	"github.com/prepdeck/prepdeck/internal/screens/login"
	"github.com/prepdeck/prepdeck/internal/screens/setup"
	"github.com/prepdeck/prepdeck/internal/selfupdate"
	"github.com/prepdeck/prepdeck/internal/store"
	"github.com/prepdeck/prepdeck/internal/ui/components"
)

// Deps is everything the menu hands down to the screens it launches.
type Deps struct {
	Config    config.Config
	Client    *api.Client // nil in offline mode
	Source    questiongen.Source
	Finalizer *finalize.Finalizer
	NewSource func() capture.Source

	Creds    store.CredentialRepo
	Drafts   store.DraftRepo
	Sessions store.SessionRepo

	Checker *selfupdate.Checker
	Version string
}

// updateCheckMsg is sent when the release check returns.
type updateCheckMsg struct {
	Result *selfupdate.CheckResult
	Err    error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps  Deps
	menu  components.Menu
	stats store.SessionStats
	email string

	updateStatus string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen, loading local stats and the signed-in
// credential for display.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	ctx := context.Background()
	if deps.Sessions != nil {
		if st, err := deps.Sessions.Stats(ctx); err == nil {
			h.stats = st
		}
	}
	if deps.Creds != nil {
		if cred, err := deps.Creds.Get(ctx); err == nil && cred != nil {
			h.email = cred.Email
		}
	}

	var draft *store.DraftData
	if deps.Drafts != nil {
		draft, _ = deps.Drafts.Load(ctx)
	}

	h.menu = components.NewMenu(h.buildItems(draft))
	return h
}

func (h *HomeScreen) buildItems(draft *store.DraftData) []components.MenuItem {
	items := []components.MenuItem{}

	if draft != nil {
		d := *draft
		items = append(items, components.MenuItem{
			Label: "RESUME INTERVIEW",
			Action: func() tea.Cmd {
				return h.resumeDraft(d)
			},
		})
	}

	items = append(items,
		components.MenuItem{
			Label: "START INTERVIEW",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: setup.New(h.deps.Source, h.deps.Drafts, h.deps.Finalizer,
							h.deps.NewSource, h.deps.Config.DefaultLanguage),
					}
				}
			},
		},
		components.MenuItem{
			Label: "HISTORY",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: history.New(h.deps.Client, h.deps.Sessions, h.deps.Creds,
							h.deps.Config.HistoryPageSize),
					}
				}
			},
		},
	)

	if h.deps.Client != nil {
		if h.email == "" {
			items = append(items, components.MenuItem{
				Label: "SIGN IN",
				Action: func() tea.Cmd {
					return func() tea.Msg {
						return router.PushScreenMsg{
							Screen: login.New(h.deps.Client, h.deps.Creds),
						}
					}
				},
			})
		} else {
			items = append(items, components.MenuItem{
				Label: "SIGN OUT",
				Action: func() tea.Cmd {
					if h.deps.Creds != nil {
						_ = h.deps.Creds.Clear(context.Background())
					}
					h.email = ""
					h.menu = components.NewMenu(h.buildItems(nil))
					return nil
				},
			})
		}
	}

	if h.deps.Checker != nil {
		items = append(items, components.MenuItem{
			Label: "CHECK FOR UPDATES",
			Action: func() tea.Cmd {
				h.updateStatus = "Checking for updates..."
				checker := h.deps.Checker
				version := h.deps.Version
				return func() tea.Msg {
					res, err := checker.Check(context.Background(),
						&selfupdate.CheckInput{Version: version})
					return updateCheckMsg{Result: res, Err: err}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label: "QUIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})
	return items
}

// resumeDraft rebuilds session state from the persisted draft and opens the
// interview on the first unanswered question.
func (h *HomeScreen) resumeDraft(d store.DraftData) tea.Cmd {
	state, err := iv.NewState(d.SessionID, d.Metadata, d.Questions)
	if err != nil {
		return nil
	}
	state.Resume(d.Answers)
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: interviewscreen.New(state, h.deps.Drafts, h.deps.Finalizer, h.deps.NewSource),
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case updateCheckMsg:
		switch {
		case msg.Err != nil:
			h.updateStatus = "Update check failed: " + msg.Err.Error()
		case msg.Result.UpdateAvailable:
			h.updateStatus = fmt.Sprintf("Update available: %s → %s (%s)",
				msg.Result.CurrentVersion, msg.Result.LatestVersion, msg.Result.ReleaseURL)
		default:
			h.updateStatus = "You're on the latest version."
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}
