package store

import (
	"context"
	"time"

	"github.com/prepdeck/prepdeck/internal/feedback"
	"github.com/prepdeck/prepdeck/internal/interview"
)

// StoredCredential is the persisted auth token plus what was decodable from
// it at save time.
type StoredCredential struct {
	Token   string
	UserID  string
	Email   string
	SavedAt time.Time
}

// CredentialRepo stores at most one bearer token. Save replaces any existing
// row; Clear deletes it.
type CredentialRepo interface {
	Save(ctx context.Context, cred StoredCredential) error

	// Get returns the stored credential, or nil when signed out.
	Get(ctx context.Context) (*StoredCredential, error)

	Clear(ctx context.Context) error
}

// DraftData is the in-progress interview snapshot as stored.
type DraftData struct {
	SessionID string
	Questions []interview.Question
	Metadata  interview.Metadata
	Answers   []interview.Answer
	UpdatedAt time.Time
}

// DraftRepo holds at most one in-progress draft. The interview screen is the
// only writer; the finalizer is the only caller of Clear.
type DraftRepo interface {
	// Save replaces the draft with the given snapshot.
	Save(ctx context.Context, d DraftData) error

	// Load returns the draft, or nil when no session is in progress.
	Load(ctx context.Context) (*DraftData, error)

	Clear(ctx context.Context) error
}

// CompletedSession is one row of the local completed-session log.
type CompletedSession struct {
	SessionID      string
	Role           string
	Company        string
	InterviewType  string
	Difficulty     string
	TotalQuestions int
	Answered       int
	Skipped        int
	CompletionRate float64
	OverallScore   float64
	Grade          string
	StartedAt      time.Time
	CompletedAt    time.Time
}

// SessionStats aggregates the local log for the welcome screen.
type SessionStats struct {
	Completed    int
	AvgScore     float64
	AvgRate      float64
	BestGrade    string
	LastComplete time.Time
}

// SessionRepo appends to and reads the local completed-session log.
type SessionRepo interface {
	// Log appends one completed session. report may be nil when feedback
	// was unavailable.
	Log(ctx context.Context, sess *interview.Session, answered, skipped int, report *feedback.Report) error

	// Recent returns up to limit sessions, newest first.
	Recent(ctx context.Context, limit int) ([]CompletedSession, error)

	// Stats aggregates the full log.
	Stats(ctx context.Context) (*SessionStats, error)
}

// Setting keys.
const (
	KeyCurrentSession = "current_session_id"
)

// SettingRepo is a key/value store for small client-side state.
type SettingRepo interface {
	Set(ctx context.Context, key, value string) error

	// Get returns the value, or "" when the key is unset.
	Get(ctx context.Context, key string) (string, error)

	Delete(ctx context.Context, key string) error
}

// LLMCallData captures one offline-mode LLM request for the call log.
type LLMCallData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsage aggregates the call log for the doctor command.
type LLMUsage struct {
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// LLMLogRepo appends to and summarizes the LLM call log.
type LLMLogRepo interface {
	Append(ctx context.Context, data LLMCallData) error
	Usage(ctx context.Context) (*LLMUsage, error)
}
