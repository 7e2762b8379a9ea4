package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simbridge/internal/domain/repository"
	"simbridge/internal/errors"
)

func testRetrier() retrier {
	return retrier{maxRetries: 3, backoff: time.Millisecond}
}

func TestRetrierRecoversFromTransientLock(t *testing.T) {
	var attempts int
	err := testRetrier().Do(context.Background(), func() error {
		attempts++
		if attempts <= 2 {
			return errors.New("database is locked (5) (SQLITE_BUSY)")
		}

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetrierReturnsNonBusyErrorImmediately(t *testing.T) {
	fatal := errors.New("UNIQUE constraint failed: number_usage.phone_number")

	var attempts int
	err := testRetrier().Do(context.Background(), func() error {
		attempts++

		return fatal
	})

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, attempts)
}

func TestRetrierExhaustionSurfacesErrBusy(t *testing.T) {
	var attempts int
	err := testRetrier().Do(context.Background(), func() error {
		attempts++

		return errors.New("database table is locked")
	})

	assert.ErrorIs(t, err, repository.ErrBusy)
	// Retry budget of 3 means four attempts in total.
	assert.Equal(t, 4, attempts)
}

func TestRetrierStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var attempts int
	err := retrier{maxRetries: 10, backoff: 50 * time.Millisecond}.Do(ctx, func() error {
		attempts++
		cancel()

		return errors.New("database is locked")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}
