package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// fastRetry keeps test sleeps negligible.
func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Microsecond,
		MaxWait:     10 * time.Microsecond,
		Multiplier:  2,
	}
}

func TestRetryRecoversFromTransientFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, fastRetry(3))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("content = %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryStopsAtAttemptBudget(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want the full budget of 3", mock.CallCount())
	}
}

func TestRetryNeverRetriesTruncation(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{}})
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	var trunc *ErrMaxTokensExceeded
	if !errors.As(err, &trunc) {
		t.Fatalf("err = %v, want ErrMaxTokensExceeded", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1 — the same request would truncate again", mock.CallCount())
	}
}

func TestRetryGrantsInvalidResponseOneReroll(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("schema miss")}},
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("schema miss again")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2 — one re-roll, not unlimited", mock.CallCount())
	}
}

func TestRetryRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockProvider(MockResponse{Err: ctx.Err()})
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestWaitHonorsVendorRetryAfter(t *testing.T) {
	r := &retrier{cfg: fastRetry(3)}
	got := r.wait(0, &ErrRateLimit{RetryAfter: 42 * time.Millisecond})
	if got != 42*time.Millisecond {
		t.Errorf("wait = %v, want the vendor's 42ms", got)
	}
}

func TestWaitBacksOffWithinBounds(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts: 5,
		InitialWait: 100 * time.Millisecond,
		MaxWait:     time.Second,
		Multiplier:  2,
	}
	r := &retrier{cfg: cfg}

	for attempt := 0; attempt < 5; attempt++ {
		w := r.wait(attempt, &ErrProviderUnavailable{})
		// Doubling from 100ms, capped at 1s, jittered ±20%.
		if w < 0 || w > time.Duration(float64(cfg.MaxWait)*1.2) {
			t.Errorf("attempt %d: wait %v outside bounds", attempt, w)
		}
	}
}
