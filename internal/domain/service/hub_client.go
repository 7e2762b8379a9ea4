// Package service defines the outbound capabilities the use cases depend on.
package service

import (
	"context"

	"simbridge/internal/domain/entity"
)

// HubClient pushes captured messages to the remote activation service.
type HubClient interface {
	// PushSMS performs a single delivery attempt. It returns nil only when
	// the Hub explicitly acknowledged the message; retry policy is the
	// caller's concern.
	PushSMS(ctx context.Context, record *entity.SMSRecord) error
}
