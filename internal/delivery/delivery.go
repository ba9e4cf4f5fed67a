// Package delivery defines the contract every transport (HTTP, worker, ...)
// implements so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a serving transport. Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
