// Package lifecycle holds constants shared by shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful-shutdown work such as draining the HTTP
// server or closing the database pool.
const DefaultTimeout = 10 * time.Second
