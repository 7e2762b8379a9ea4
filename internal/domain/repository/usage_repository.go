package repository

import (
	"context"

	"simbridge/internal/domain/entity"
)

// NumberUsageRepository persists the reuse counters behind the
// cancelled-reusable rule. One row per phone number: binding a
// different service to a phone discards the prior count permanently.
type NumberUsageRepository interface {
	// Get returns the usage row for a phone, or nil when none exists.
	Get(ctx context.Context, phone string) (*entity.NumberUsage, error)

	// BindService points the phone at a service. A service change
	// resets the counter to zero; rebinding the same service keeps it.
	BindService(ctx context.Context, phone, service string) error

	// Increment bumps the counter for the phone's current service.
	// Called only on a transition into the cancelled-reusable status.
	Increment(ctx context.Context, phone, service string) error
}
