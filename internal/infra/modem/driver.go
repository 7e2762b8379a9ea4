// Package modem talks AT over a serial line. Everything AT-specific
// (command strings, response parsing, unsolicited notifications) stays
// inside this package; callers see commands in, text out.
package modem

import (
	"context"
	"time"

	"simbridge/internal/domain/entity"
	"simbridge/internal/errors"
)

var (
	// ErrCommandTimeout is returned when a command got no terminal OK/ERROR
	// within its deadline. The command may still complete on the device.
	ErrCommandTimeout = errors.New("modem command timed out")

	// ErrDriverClosed is returned once Close has been called.
	ErrDriverClosed = errors.New("modem driver closed")

	// ErrCommandFailed is returned when the modem answered ERROR.
	ErrCommandFailed = errors.New("modem command failed")
)

// Driver is the capability a modem session needs from one physical device.
type Driver interface {
	// SendCommand writes one AT command and blocks until the modem answers
	// with a terminal OK or ERROR, the timeout elapses, or ctx is done.
	// The returned string contains every response line before the terminator.
	SendCommand(ctx context.Context, cmd string, timeout time.Duration) (string, error)

	// ReadNotification blocks until the device emits an unsolicited
	// notification line (such as +CMTI) and returns it raw.
	ReadNotification(ctx context.Context) (string, error)

	// GetTelemetry reads the current signal, operator and identity of the device.
	GetTelemetry(ctx context.Context) (entity.Telemetry, error)

	Close() error
}
