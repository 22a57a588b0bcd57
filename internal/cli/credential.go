package cli

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrCredentialTimeout indicates no session token became available in time
var ErrCredentialTimeout = errors.New("timed out waiting for session token")

// WaitOptions controls credential waiting behaviour
type WaitOptions struct {
	// Timeout is the total time to wait before giving up
	Timeout time.Duration
	// Interval is the poll interval (defaults to 1s)
	Interval time.Duration
}

// WaitForCredential polls for a session token to become available, either
// already set on the config or appearing in the token file. It gives up with
// ErrCredentialTimeout once the timeout elapses, and returns early if the
// context is cancelled. Waiting indefinitely is deliberately not supported.
func WaitForCredential(ctx context.Context, cfg *Config, opts WaitOptions) error {
	if opts.Timeout <= 0 {
		return errors.New("wait timeout must be positive")
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = time.Second
	}

	deadline := time.Now().Add(opts.Timeout)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := cfg.LoadToken(); err != nil {
			return fmt.Errorf("failed to load token: %w", err)
		}
		if cfg.Token != "" {
			return nil
		}

		if time.Now().After(deadline) {
			return ErrCredentialTimeout
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
