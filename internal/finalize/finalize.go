// Package finalize packages a completed interview and submits it in two
// phases: persist the session, then request feedback over the same payload.
// The phases share one logical attempt — feedback is never requested before
// the save returns successfully, and a feedback failure after a successful
// save still routes the user forward.
package finalize

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prepdeck/prepdeck/internal/feedback"
	"github.com/prepdeck/prepdeck/internal/interview"
)

// ErrFeedbackUnavailable marks a completed save whose feedback request
// failed. The session is persisted; the feedback view owns the retry.
var ErrFeedbackUnavailable = errors.New("feedback unavailable")

// Saver persists a sealed session. It returns the durable session id the
// feedback view later fetches by.
type Saver interface {
	SaveSession(ctx context.Context, sess *interview.Session, answers []interview.Answer) (string, error)
}

// Generator produces the feedback report for a persisted session.
type Generator interface {
	GenerateFeedback(ctx context.Context, sess *interview.Session, answers []interview.Answer) (*feedback.Report, error)
}

// LocalStore is the slice of local persistence the finalizer owns: it is the
// sole writer allowed to clear the in-progress draft, and it retains the
// session id handback plus the completed-session log entry.
type LocalStore interface {
	SetCurrentSession(ctx context.Context, sessionID string) error
	ClearDraft(ctx context.Context) error
	LogCompleted(ctx context.Context, sess *interview.Session, answered, skipped int, report *feedback.Report) error
}

// LocalSaver satisfies Saver without a backend: the handback is the
// client-generated id and persistence is the local completed-session log.
type LocalSaver struct{}

func (LocalSaver) SaveSession(ctx context.Context, sess *interview.Session, answers []interview.Answer) (string, error) {
	return sess.ID, nil
}

// Finalizer runs the two-phase submit.
type Finalizer struct {
	saver     Saver
	generator Generator
	local     LocalStore
}

// New creates a Finalizer. local may be nil in tests.
func New(saver Saver, generator Generator, local LocalStore) *Finalizer {
	return &Finalizer{saver: saver, generator: generator, local: local}
}

// Result is the finalization outcome. FeedbackErr is set when the save
// succeeded but the feedback request did not. Warnings carry local
// bookkeeping failures that did not stop the flow.
type Result struct {
	SessionID string
	Report    *feedback.Report

	FeedbackErr error
	Warnings    []string
}

// Finalize seals the state and submits it. A save failure is returned as an
// error with nothing else done — the caller surfaces it with a retry action.
// No idempotency key is generated, so a user retry after a partial failure
// may persist a duplicate session; that risk is accepted rather than masked.
func (f *Finalizer) Finalize(ctx context.Context, st *interview.State) (*Result, error) {
	sess := st.Seal(time.Now())
	answers := st.AnswerList()

	id, err := f.saver.SaveSession(ctx, sess, answers)
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	if id == "" {
		id = sess.ID
	}
	res := &Result{SessionID: id}

	// The save is durable from here on: retain the handback id and clear
	// the draft so a new session cannot read stale answers. Local write
	// failures must not strand the user after a successful save, but they
	// are reported on the result instead of disappearing.
	if f.local != nil {
		if err := f.local.SetCurrentSession(ctx, id); err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("record session id: %v", err))
		}
		if err := f.local.ClearDraft(ctx); err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("clear draft: %v", err))
		}
	}

	report, genErr := f.generator.GenerateFeedback(ctx, sess, answers)
	if genErr != nil {
		res.FeedbackErr = fmt.Errorf("%w: %v", ErrFeedbackUnavailable, genErr)
	} else {
		feedback.Normalize(report, answers, len(sess.Questions))
		res.Report = report
	}

	if f.local != nil {
		if err := f.local.LogCompleted(ctx, sess, st.AnsweredCount(), st.SkippedCount(), res.Report); err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("log completed session: %v", err))
		}
	}
	return res, nil
}

// Feedback re-requests the report for a session whose save already succeeded.
// It never touches the saver, so retrying feedback can't duplicate a session.
func (f *Finalizer) Feedback(ctx context.Context, st *interview.State) (*feedback.Report, error) {
	sess := st.Seal(time.Now())
	answers := st.AnswerList()

	report, err := f.generator.GenerateFeedback(ctx, sess, answers)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedbackUnavailable, err)
	}
	feedback.Normalize(report, answers, len(sess.Questions))
	return report, nil
}
