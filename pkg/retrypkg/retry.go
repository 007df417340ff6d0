// Package retrypkg provides a bounded retry helper with linear backoff.
package retrypkg

import (
	"context"
	"time"
)

// Options configures how many times Do attempts the call and the base
// delay between attempts. The delay grows linearly: backoff * attempt.
type Options struct {
	Attempts int
	Backoff  time.Duration
}

// Do calls fn up to opts.Attempts times, sleeping between attempts.
// It returns the last error when every attempt fails. The context cancels
// the wait between attempts, not the call itself.
func Do(ctx context.Context, opts Options, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= opts.Attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt == opts.Attempts {
			break
		}

		timer := time.NewTimer(opts.Backoff * time.Duration(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return lastErr
}
