// Package api is the HTTP client for the interview backend. Every call is a
// single attempt — there is no automatic retry or backoff anywhere; retries
// are always user-initiated.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/prepdeck/prepdeck/internal/feedback"
	"github.com/prepdeck/prepdeck/internal/interview"
)

// DefaultTimeout bounds a single backend call. Question and feedback
// generation run an LLM server-side, so this is generous.
const DefaultTimeout = 90 * time.Second

// TokenSource supplies the stored bearer token. An empty token means the
// anonymous flow.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client talks to the interview backend.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient creates a Client for the given base URL. tokens may be nil for
// a purely anonymous client.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
		tokens:  tokens,
	}
}

// QuestionSet is the question-generation response: the generated ordered
// questions plus the echoed setup metadata.
type QuestionSet struct {
	Questions []interview.Question `json:"questions"`
	Metadata  interview.Metadata   `json:"metadata"`
}

// GenerateQuestionsInput is the setup form output plus an optional resume
// file attached to the multipart request.
type GenerateQuestionsInput struct {
	Metadata   interview.Metadata
	ResumePath string
}

// GenerateQuestions posts the setup form and returns the generated set.
func (c *Client) GenerateQuestions(ctx context.Context, in GenerateQuestionsInput) (*QuestionSet, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	md := in.Metadata
	fields := map[string]string{
		"role":           md.Role,
		"company":        md.Company,
		"jobDescription": md.JobDescription,
		"type":           string(md.Type),
		"difficulty":     string(md.Difficulty),
		"includeCoding":  strconv.FormatBool(md.IncludeCoding),
		"language":       md.Language,
		"duration":       string(md.Duration),
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", k, err)
		}
	}

	if in.ResumePath != "" {
		f, err := os.Open(in.ResumePath)
		if err != nil {
			return nil, fmt.Errorf("open resume: %w", err)
		}
		defer f.Close()
		part, err := w.CreateFormFile("resume", filepath.Base(in.ResumePath))
		if err != nil {
			return nil, fmt.Errorf("create resume part: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, fmt.Errorf("copy resume: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate-questions", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out QuestionSet
	if err := c.do(req, &out, false); err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}
	return &out, nil
}

// SaveSession persists the sealed session and its answers. Requires the
// authenticated flow when a token is stored.
func (c *Client) SaveSession(ctx context.Context, sess *interview.Session, answers []interview.Answer) (string, error) {
	body := map[string]any{
		"sessionData": sess,
		"answers":     answers,
	}
	var out struct {
		OK        bool   `json:"ok"`
		SessionID string `json:"sessionId"`
	}
	if err := c.postJSON(ctx, "/api/save-session", body, &out, true); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return out.SessionID, nil
}

// GenerateFeedback requests the feedback report for a persisted session.
// Callers must not invoke this before SaveSession has returned successfully.
func (c *Client) GenerateFeedback(ctx context.Context, sess *interview.Session, answers []interview.Answer) (*feedback.Report, error) {
	body := map[string]any{
		"sessionData":    sess,
		"answers":        answers,
		"questions":      sess.Questions,
		"metadata":       sess.Metadata,
		"completionRate": sess.CompletionRate,
	}
	var out struct {
		Feedback feedback.Report `json:"feedback"`
	}
	if err := c.postJSON(ctx, "/api/generate-feedback", body, &out, true); err != nil {
		return nil, fmt.Errorf("generate feedback: %w", err)
	}
	return &out.Feedback, nil
}

// HistoryEntry is one row of the paginated feedback history.
type HistoryEntry struct {
	SessionID      string    `json:"sessionId"`
	Role           string    `json:"role"`
	InterviewType  string    `json:"interviewType"`
	OverallScore   float64   `json:"overallScore"`
	OverallGrade   string    `json:"overallGrade"`
	CompletionRate float64   `json:"completionRate"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Pagination describes the history page window.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// HistoryPage is one page of feedback history.
type HistoryPage struct {
	Feedback   []HistoryEntry `json:"feedback"`
	Pagination Pagination     `json:"pagination"`
}

// FeedbackHistory fetches a page of the caller's feedback history. The user
// id is decoded from the stored token's payload.
func (c *Client) FeedbackHistory(ctx context.Context, page, limit int) (*HistoryPage, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrUnauthorized
	}
	userID, err := UserIDFromToken(token)
	if err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	path := fmt.Sprintf("/api/feedback/user/%s?%s", url.PathEscape(userID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	var out HistoryPage
	if err := c.do(req, &out, true); err != nil {
		return nil, fmt.Errorf("feedback history: %w", err)
	}
	return &out, nil
}

// AuthResult is the credential returned by login and register.
type AuthResult struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResult
	if err := c.postJSON(ctx, "/api/auth/login", body, &out, false); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if out.UserID == "" {
		out.UserID, _ = UserIDFromToken(out.Token)
	}
	if out.Email == "" {
		out.Email = email
	}
	return &out, nil
}

// Register creates an account and returns its first token.
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var out AuthResult
	if err := c.postJSON(ctx, "/api/auth/register", body, &out, false); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if out.UserID == "" {
		out.UserID, _ = UserIDFromToken(out.Token)
	}
	if out.Email == "" {
		out.Email = email
	}
	return &out, nil
}

// User is the authenticated account as reported by the backend.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Me returns the account for the stored token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/me", nil)
	if err != nil {
		return nil, err
	}
	var out User
	if err := c.do(req, &out, true); err != nil {
		return nil, fmt.Errorf("me: %w", err)
	}
	return &out, nil
}

// Health pings the backend health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil, false); err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any, auth bool) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out, auth)
}

func (c *Client) token(ctx context.Context) (string, error) {
	if c.tokens == nil {
		return "", nil
	}
	return c.tokens.Token(ctx)
}

// do sends the request, attaching the bearer token when auth is set and one
// is stored, and decodes the JSON response into out (when non-nil).
func (c *Client) do(req *http.Request, out any, auth bool) error {
	if auth {
		token, err := c.token(req.Context())
		if err != nil {
			return fmt.Errorf("load token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err == nil {
		if body.Error != "" {
			apiErr.Message = body.Error
		} else {
			apiErr.Message = body.Message
		}
	}
	return apiErr
}
