package store

import (
	"context"

	"github.com/prepdeck/prepdeck/internal/feedback"
	"github.com/prepdeck/prepdeck/internal/interview"
)

// LocalState is the finalizer-facing slice of the store: retaining the
// session id handback, clearing the draft and appending to the local log.
type LocalState struct {
	drafts   DraftRepo
	sessions SessionRepo
	settings SettingRepo
}

// SetCurrentSession retains the id of the most recently submitted session so
// the feedback view can fetch by it later.
func (l *LocalState) SetCurrentSession(ctx context.Context, sessionID string) error {
	return l.settings.Set(ctx, KeyCurrentSession, sessionID)
}

// CurrentSession returns the retained session id, or "".
func (l *LocalState) CurrentSession(ctx context.Context) (string, error) {
	return l.settings.Get(ctx, KeyCurrentSession)
}

// ClearDraft removes the in-progress draft after a successful save.
func (l *LocalState) ClearDraft(ctx context.Context) error {
	return l.drafts.Clear(ctx)
}

// LogCompleted appends the completed session to the local log.
func (l *LocalState) LogCompleted(ctx context.Context, sess *interview.Session, answered, skipped int, report *feedback.Report) error {
	return l.sessions.Log(ctx, sess, answered, skipped, report)
}
