// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) that blocks until stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
