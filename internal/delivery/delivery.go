// Package delivery defines the contract every inbound transport satisfies.
package delivery

import "context"

// Delivery is a long-running inbound surface of the bridge, started by
// the application container and stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
