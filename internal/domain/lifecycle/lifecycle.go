// Package lifecycle holds shared process lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps.
const DefaultTimeout = 10 * time.Second
