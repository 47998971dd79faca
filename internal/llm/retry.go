package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retryVerdict is what the classifier decides about a failed attempt.
type retryVerdict int

const (
	giveUp     retryVerdict = iota
	retryOnce               // one more attempt, total, across the call
	retryAgain              // keep going until attempts run out
)

// retrier wraps a Provider and re-issues transient failures with capped,
// jittered backoff.
type retrier struct {
	next Provider
	cfg  RetryConfig
}

// WithRetry adds retry behavior in front of p.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{next: p, cfg: cfg}
}

func (r *retrier) ModelID() string { return r.next.ModelID() }

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	onceUsed := false

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch verdict(err) {
		case giveUp:
			return nil, err
		case retryOnce:
			if onceUsed {
				return nil, err
			}
			onceUsed = true
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

// verdict classifies a failure. Cancellation and truncation are final; a
// schema miss earns a single re-roll; everything else (rate limits, vendor
// outages, plain network errors) is assumed transient.
func verdict(err error) retryVerdict {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return giveUp
	}
	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		return giveUp
	}
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return retryOnce
	}
	return retryAgain
}

// wait picks the sleep before the next attempt: the vendor's Retry-After
// when given, otherwise doubling backoff with ±20% jitter.
func (r *retrier) wait(attempt int, err error) time.Duration {
	var limited *ErrRateLimit
	if errors.As(err, &limited) && limited.RetryAfter > 0 {
		return limited.RetryAfter
	}

	d := r.cfg.InitialWait
	for i := 0; i < attempt && d < r.cfg.MaxWait; i++ {
		d = time.Duration(float64(d) * r.cfg.Multiplier)
	}
	if d > r.cfg.MaxWait {
		d = r.cfg.MaxWait
	}

	jittered := float64(d) * (0.8 + 0.4*rand.Float64())
	return time.Duration(jittered)
}
