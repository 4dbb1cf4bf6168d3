package delivery

import "context"

// Delivery is a long-running inbound surface started by the fx app.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
