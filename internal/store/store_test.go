package store

import (
	"context"
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/feedback"
	"github.com/prepdeck/prepdeck/internal/interview"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCredentialSaveGetClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.Credentials()
	ctx := context.Background()

	// Signed out: no credential.
	cred, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if cred != nil {
		t.Fatal("expected nil credential when signed out")
	}

	err = repo.Save(ctx, StoredCredential{Token: "tok-1", UserID: "u1", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	cred, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cred == nil || cred.Token != "tok-1" || cred.UserID != "u1" {
		t.Fatalf("got %+v, want token tok-1 user u1", cred)
	}

	// A second save replaces, never appends.
	err = repo.Save(ctx, StoredCredential{Token: "tok-2", UserID: "u1", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("save replacement: %v", err)
	}
	count, err := s.Client().Credential.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("credential rows = %d, want 1", count)
	}
	cred, _ = repo.Get(ctx)
	if cred.Token != "tok-2" {
		t.Errorf("token = %q, want tok-2", cred.Token)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	cred, _ = repo.Get(ctx)
	if cred != nil {
		t.Error("expected nil credential after clear")
	}
}

func TestDraftRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Drafts()
	ctx := context.Background()

	d, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if d != nil {
		t.Fatal("expected nil draft when none in progress")
	}

	draft := DraftData{
		SessionID: "sess-1",
		Questions: []interview.Question{
			{ID: "q1", Text: "Explain indexes.", Type: interview.TypeTechnical},
			{ID: "q2", Text: "Reverse a list.", Type: interview.TypeTechnical, Coding: true},
		},
		Metadata: interview.Metadata{Role: "Backend Engineer", Type: interview.TypeTechnical},
		Answers: []interview.Answer{
			{QuestionID: "q1", Code: "", Transcription: &interview.Transcript{Text: "B-tree", Confidence: 1, Timestamp: time.Now()}},
		},
	}
	if err := repo.Save(ctx, draft); err != nil {
		t.Fatalf("save: %v", err)
	}

	d, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d.SessionID != "sess-1" {
		t.Errorf("session id = %q, want sess-1", d.SessionID)
	}
	if len(d.Questions) != 2 || d.Questions[1].Coding != true {
		t.Errorf("questions did not round-trip: %+v", d.Questions)
	}
	if len(d.Answers) != 1 || d.Answers[0].Transcription.Text != "B-tree" {
		t.Errorf("answers did not round-trip: %+v", d.Answers)
	}

	// A new session's draft replaces the old one.
	draft.SessionID = "sess-2"
	if err := repo.Save(ctx, draft); err != nil {
		t.Fatalf("save replacement: %v", err)
	}
	count, err := s.Client().Draft.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("draft rows = %d, want 1", count)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	d, _ = repo.Load(ctx)
	if d != nil {
		t.Error("expected nil draft after clear")
	}
}

func TestSettingSetGetDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Settings()
	ctx := context.Background()

	v, err := repo.Get(ctx, KeyCurrentSession)
	if err != nil {
		t.Fatalf("get (unset): %v", err)
	}
	if v != "" {
		t.Errorf("unset value = %q, want empty", v)
	}

	if err := repo.Set(ctx, KeyCurrentSession, "sess-1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, KeyCurrentSession, "sess-2"); err != nil {
		t.Fatalf("set again: %v", err)
	}

	v, err = repo.Get(ctx, KeyCurrentSession)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "sess-2" {
		t.Errorf("value = %q, want sess-2", v)
	}

	if err := repo.Delete(ctx, KeyCurrentSession); err != nil {
		t.Fatalf("delete: %v", err)
	}
	v, _ = repo.Get(ctx, KeyCurrentSession)
	if v != "" {
		t.Errorf("value after delete = %q, want empty", v)
	}
}

func testCompletedSession(id string, completed time.Time) *interview.Session {
	return &interview.Session{
		ID: id,
		Metadata: interview.Metadata{
			Role:       "Backend Engineer",
			Type:       interview.TypeTechnical,
			Difficulty: interview.DifficultyMedium,
		},
		Questions: []interview.Question{
			{ID: "q1"}, {ID: "q2"}, {ID: "q3"},
		},
		StartedAt:      completed.Add(-20 * time.Minute),
		CompletedAt:    completed,
		CompletionRate: 67,
	}
}

func TestSessionLogAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	report := &feedback.Report{OverallScore: 82, OverallGrade: "A-"}

	for i := 0; i < 3; i++ {
		sess := testCompletedSession("sess-"+string(rune('a'+i)), base.Add(time.Duration(i)*time.Hour))
		var r *feedback.Report
		if i == 2 {
			r = report
		}
		if err := repo.Log(ctx, sess, 2, 1, r); err != nil {
			t.Fatalf("log %d: %v", i, err)
		}
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent rows = %d, want 2", len(recent))
	}
	// Newest first.
	if recent[0].SessionID != "sess-c" {
		t.Errorf("recent[0] = %q, want sess-c", recent[0].SessionID)
	}
	if recent[0].Grade != "A-" || recent[0].OverallScore != 82 {
		t.Errorf("recent[0] feedback fields = %q/%v, want A-/82", recent[0].Grade, recent[0].OverallScore)
	}
	if recent[1].Grade != "" {
		t.Errorf("recent[1] grade = %q, want empty (no report)", recent[1].Grade)
	}
}

func TestSessionStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats (empty): %v", err)
	}
	if stats.Completed != 0 {
		t.Errorf("completed = %d, want 0", stats.Completed)
	}

	base := time.Now().UTC().Truncate(time.Second)
	if err := repo.Log(ctx, testCompletedSession("s1", base), 2, 1, &feedback.Report{OverallScore: 70, OverallGrade: "B"}); err != nil {
		t.Fatalf("log s1: %v", err)
	}
	if err := repo.Log(ctx, testCompletedSession("s2", base.Add(time.Hour)), 3, 0, &feedback.Report{OverallScore: 90, OverallGrade: "A+"}); err != nil {
		t.Fatalf("log s2: %v", err)
	}

	stats, err = repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Completed != 2 {
		t.Errorf("completed = %d, want 2", stats.Completed)
	}
	if stats.AvgScore != 80 {
		t.Errorf("avg score = %v, want 80", stats.AvgScore)
	}
	if stats.BestGrade != "A+" {
		t.Errorf("best grade = %q, want A+", stats.BestGrade)
	}
	if !stats.LastComplete.Equal(base.Add(time.Hour)) {
		t.Errorf("last complete = %v, want %v", stats.LastComplete, base.Add(time.Hour))
	}
}

func TestLLMLogAppendAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMLog()
	ctx := context.Background()

	calls := []LLMCallData{
		{Provider: "openai", Model: "gpt-4o", Purpose: "question-gen", InputTokens: 100, OutputTokens: 400, LatencyMs: 900, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "feedback-gen", InputTokens: 300, OutputTokens: 700, LatencyMs: 1500, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "feedback-gen", Success: false, ErrorMessage: "rate limited"},
	}
	for i, c := range calls {
		if err := repo.Append(ctx, c); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.Usage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if usage.Calls != 3 || usage.Failures != 1 {
		t.Errorf("calls/failures = %d/%d, want 3/1", usage.Calls, usage.Failures)
	}
	if usage.InputTokens != 400 || usage.OutputTokens != 1100 {
		t.Errorf("tokens = %d/%d, want 400/1100", usage.InputTokens, usage.OutputTokens)
	}
}

func TestLocalStateFinalizerFlow(t *testing.T) {
	s := openTestStore(t)
	local := s.Local()
	ctx := context.Background()

	if err := s.Drafts().Save(ctx, DraftData{
		SessionID: "sess-1",
		Questions: []interview.Question{{ID: "q1"}},
		Metadata:  interview.Metadata{Role: "SRE"},
	}); err != nil {
		t.Fatalf("seed draft: %v", err)
	}

	sess := testCompletedSession("sess-1", time.Now().UTC())
	if err := local.SetCurrentSession(ctx, "srv-42"); err != nil {
		t.Fatalf("set current session: %v", err)
	}
	if err := local.ClearDraft(ctx); err != nil {
		t.Fatalf("clear draft: %v", err)
	}
	if err := local.LogCompleted(ctx, sess, 2, 1, nil); err != nil {
		t.Fatalf("log completed: %v", err)
	}

	id, err := local.CurrentSession(ctx)
	if err != nil {
		t.Fatalf("current session: %v", err)
	}
	if id != "srv-42" {
		t.Errorf("current session = %q, want srv-42", id)
	}

	d, err := s.Drafts().Load(ctx)
	if err != nil {
		t.Fatalf("load draft: %v", err)
	}
	if d != nil {
		t.Error("expected draft cleared after finalize")
	}

	recent, err := s.Sessions().Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].SessionID != "sess-1" {
		t.Errorf("recent = %+v, want one sess-1 row", recent)
	}
}
