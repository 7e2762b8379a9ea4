package usecase

import (
	"context"

	"simbridge/internal/domain/entity"
)

// SMSForwardUsecase moves captured messages from modem sessions to the Hub.
type SMSForwardUsecase interface {
	// Forward persists one message and, when it maps to a bound activation,
	// pushes it to the Hub with bounded retries. Messages without a binding
	// are persisted as orphans and never pushed.
	Forward(ctx context.Context, sms entity.InboundSMS) error

	// Run consumes the event stream with a worker pool until ctx is done.
	Run(ctx context.Context, events <-chan entity.InboundSMS)
}
