package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepdeck/prepdeck/internal/interview"
)

type staticTokens string

func (s staticTokens) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

func makeToken(t *testing.T, claims map[string]string) string {
	t.Helper()
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	seg := base64.RawURLEncoding.EncodeToString
	return seg([]byte(`{"alg":"HS256"}`)) + "." + seg(payload) + ".sig"
}

func testSession() (*interview.Session, []interview.Answer) {
	sess := &interview.Session{
		ID: "sess-1",
		Metadata: interview.Metadata{
			Role:       "Backend Engineer",
			Type:       interview.TypeTechnical,
			Difficulty: interview.DifficultyMedium,
			Duration:   interview.LengthShort,
		},
		Questions: []interview.Question{
			{ID: "q1", Text: "Explain indexes.", Type: interview.TypeTechnical},
			{ID: "q2", Text: "Reverse a list.", Type: interview.TypeTechnical, Coding: true},
		},
		StartedAt:      time.Now().Add(-10 * time.Minute),
		CompletedAt:    time.Now(),
		CompletionRate: 50,
	}
	answers := []interview.Answer{
		{
			QuestionID:    "q1",
			QuestionText:  "Explain indexes.",
			QuestionType:  interview.TypeTechnical,
			Transcription: &interview.Transcript{Text: "B-tree lookup", Confidence: 1, Timestamp: time.Now()},
			RecordedAt:    time.Now(),
		},
	}
	return sess, answers
}

func TestGenerateQuestionsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/generate-questions", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Backend Engineer", r.FormValue("role"))
		assert.Equal(t, "technical", r.FormValue("type"))
		assert.Equal(t, "medium", r.FormValue("difficulty"))
		assert.Equal(t, "true", r.FormValue("includeCoding"))
		assert.Equal(t, "short", r.FormValue("duration"))

		json.NewEncoder(w).Encode(map[string]any{
			"questions": []map[string]any{
				{"id": "q1", "text": "Explain indexes.", "type": "technical"},
			},
			"metadata": map[string]any{"role": "Backend Engineer"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	set, err := c.GenerateQuestions(context.Background(), GenerateQuestionsInput{
		Metadata: interview.Metadata{
			Role:          "Backend Engineer",
			Type:          interview.TypeTechnical,
			Difficulty:    interview.DifficultyMedium,
			IncludeCoding: true,
			Duration:      interview.LengthShort,
		},
	})
	require.NoError(t, err)
	require.Len(t, set.Questions, 1)
	assert.Equal(t, "q1", set.Questions[0].ID)
	assert.Equal(t, "Backend Engineer", set.Metadata.Role)
}

func TestSaveSessionSendsBearerAndPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/save-session", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		var body struct {
			SessionData interview.Session  `json:"sessionData"`
			Answers     []interview.Answer `json:"answers"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sess-1", body.SessionData.ID)
		assert.Len(t, body.Answers, 1)

		json.NewEncoder(w).Encode(map[string]any{"ok": true, "sessionId": "srv-42"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticTokens("tok-123"))
	sess, answers := testSession()
	id, err := c.SaveSession(context.Background(), sess, answers)
	require.NoError(t, err)
	assert.Equal(t, "srv-42", id)
}

func TestGenerateFeedbackIncludesCompletionRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate-feedback", r.URL.Path)

		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		for _, key := range []string{"sessionData", "answers", "questions", "metadata", "completionRate"} {
			assert.Contains(t, body, key)
		}
		assert.Equal(t, "50", string(body["completionRate"]))

		json.NewEncoder(w).Encode(map[string]any{
			"feedback": map[string]any{"overallScore": 78.5, "overallGrade": "B+"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticTokens("tok-123"))
	sess, answers := testSession()
	report, err := c.GenerateFeedback(context.Background(), sess, answers)
	require.NoError(t, err)
	assert.Equal(t, 78.5, report.OverallScore)
	assert.Equal(t, "B+", report.OverallGrade)
}

func TestUnauthorizedUnwrapsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticTokens("stale"))
	sess, answers := testSession()
	_, err := c.SaveSession(context.Background(), sess, answers)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "token expired", apiErr.Message)
}

func TestServerErrorIsNotUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	err := c.Health(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestFeedbackHistoryUsesTokenUserID(t *testing.T) {
	token := makeToken(t, map[string]string{"_id": "user-9"})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/feedback/user/user-9", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		json.NewEncoder(w).Encode(map[string]any{
			"feedback": []map[string]any{
				{"sessionId": "s1", "overallScore": 90, "overallGrade": "A+"},
			},
			"pagination": map[string]any{"page": 2, "limit": 10, "totalPages": 3, "totalItems": 25},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticTokens(token))
	page, err := c.FeedbackHistory(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, page.Feedback, 1)
	assert.Equal(t, "A+", page.Feedback[0].OverallGrade)
	assert.Equal(t, 3, page.Pagination.TotalPages)
}

func TestFeedbackHistoryWithoutToken(t *testing.T) {
	c := NewClient("http://localhost:0", nil)
	_, err := c.FeedbackHistory(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUserIDFromToken(t *testing.T) {
	tests := []struct {
		name   string
		claims map[string]string
		want   string
	}{
		{"id claim", map[string]string{"id": "u1"}, "u1"},
		{"_id claim", map[string]string{"_id": "u2"}, "u2"},
		{"userId claim", map[string]string{"userId": "u3"}, "u3"},
		{"id wins over userId", map[string]string{"id": "u1", "userId": "u3"}, "u1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UserIDFromToken(makeToken(t, tt.claims))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("malformed", func(t *testing.T) {
		_, err := UserIDFromToken("not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("no id claim", func(t *testing.T) {
		_, err := UserIDFromToken(makeToken(t, map[string]string{"email": "x@y.z"}))
		assert.Error(t, err)
	})
}
