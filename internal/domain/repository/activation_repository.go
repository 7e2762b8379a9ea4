// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"simbridge/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for activation persistence.
var (
	// ErrActivationNotFound is returned when an activation does not exist.
	ErrActivationNotFound = errors.New("activation not found")
	// ErrBusy is returned after the bounded retry of transient lock errors
	// has been exhausted. Callers must surface it, never swallow it.
	ErrBusy = errors.New("persistence busy")
)

// ActivationRepository defines the interface for activation history.
// The table is append-only: rows are created and updated, never deleted.
type ActivationRepository interface {
	// Create persists a new activation and fills in its generated ID.
	Create(ctx context.Context, activation *entity.Activation) error

	// UpdateStatus writes the Hub-instructed status for an activation.
	UpdateStatus(ctx context.Context, id int64, status entity.ActivationStatus) error

	// FindByID retrieves an activation by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Activation, error)

	// FindLatestByPhoneAndService retrieves the most recent activation
	// for a (phone, service) pair, used by the reuse rule.
	FindLatestByPhoneAndService(ctx context.Context, phone, service string) (*entity.Activation, error)

	// ListActive retrieves every activation still in the active set,
	// used to restore modem bindings after a restart.
	ListActive(ctx context.Context) ([]*entity.Activation, error)

	// List retrieves activations newest first, bounded by limit.
	List(ctx context.Context, limit int) ([]*entity.Activation, error)

	// CountByStatus aggregates activation counts per status for reporting.
	CountByStatus(ctx context.Context) (map[entity.ActivationStatus]int64, error)
}
