package repository

import (
	"context"
	"time"

	"simbridge/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSMSNotFound is returned when an SMS record does not exist.
var ErrSMSNotFound = errors.New("sms record not found")

// SMSRepository defines the interface for the received-message log.
// Records are created the instant a session observes a message and
// updated after every Hub push attempt; they are never deleted.
type SMSRepository interface {
	// Create persists a new SMS record before any delivery attempt.
	Create(ctx context.Context, record *entity.SMSRecord) error

	// RecordAttempt bumps the attempt counter and stores the last error.
	RecordAttempt(ctx context.Context, id string, attempt int, lastError string) error

	// MarkDelivered flags the record as delivered to the Hub.
	MarkDelivered(ctx context.Context, id string, deliveredAt time.Time) error

	// FindByID retrieves one SMS record.
	FindByID(ctx context.Context, id string) (*entity.SMSRecord, error)

	// List retrieves records newest first, bounded by limit.
	List(ctx context.Context, limit int) ([]*entity.SMSRecord, error)

	// CountUndelivered returns how many records have exhausted delivery.
	CountUndelivered(ctx context.Context) (int64, error)
}
