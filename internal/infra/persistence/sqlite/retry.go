package sqlite

import (
	"context"
	"strings"
	"time"

	"simbridge/config"
	"simbridge/internal/domain/repository"
	"simbridge/internal/errors"
)

// retrier applies bounded exponential backoff to transient SQLITE_BUSY
// failures. Exhaustion surfaces repository.ErrBusy loudly; a lost write
// here would desynchronize Hub-visible state from bridge-visible state.
type retrier struct {
	maxRetries int
	backoff    time.Duration
}

func newRetrier(cfg config.SqliteConfig) retrier {
	return retrier{
		maxRetries: cfg.MaxRetries,
		backoff:    cfg.RetryBackoff,
	}
}

// Do runs op, retrying while the store reports lock contention.
func (r retrier) Do(ctx context.Context, op func() error) error {
	backoff := r.backoff

	var err error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return errors.WithStack(ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		err = op()
		if err == nil {
			return nil
		}
		if !isBusyError(err) {
			return err
		}
	}

	return errors.Wrapf(repository.ErrBusy, "after %d retries: %v", r.maxRetries, err)
}

// isBusyError matches the transient lock conditions sqlite reports
// (SQLITE_BUSY / SQLITE_LOCKED) across driver error wrappings.
func isBusyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "sqlite_busy")
}
