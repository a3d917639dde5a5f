package analyzer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/petpsych/behavior-analysis-api/internal/utils"
)

// ErrUnavailable is the terminal state after all generation attempts failed or
// returned empty text.
var ErrUnavailable = errors.New("generation service unavailable")

const (
	defaultAttempts = 3
	defaultDelay    = time.Second
)

// Retrier wraps a TextGenerator with a bounded retry loop. An empty result
// counts as a failed attempt.
type Retrier struct {
	gen      TextGenerator
	attempts int
	delay    time.Duration
	logger   *utils.Logger
}

func NewRetrier(gen TextGenerator, logger *utils.Logger) *Retrier {
	return &Retrier{
		gen:      gen,
		attempts: defaultAttempts,
		delay:    defaultDelay,
		logger:   logger,
	}
}

func (r *Retrier) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= r.attempts; attempt++ {
		text, err := r.gen.Generate(ctx, prompt)
		if err == nil && text != "" {
			return text, nil
		}
		if err == nil {
			err = errors.New("empty response from model")
		}
		lastErr = err
		r.logger.Warn("Generation attempt failed", "attempt", attempt, "error", err)

		if attempt < r.attempts {
			select {
			case <-time.After(r.delay):
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
			}
		}
	}

	return "", fmt.Errorf("%w after %d attempts: %v", ErrUnavailable, r.attempts, lastErr)
}
