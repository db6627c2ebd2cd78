// Package delivery holds the outer surfaces of the waiter client.
package delivery

import "context"

// Delivery is a surface that runs until it is stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
