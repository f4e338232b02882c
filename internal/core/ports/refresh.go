package ports

import "context"

// RefreshSignal asks the task board to reload its collection.
type RefreshSignal interface {
	Signal(ctx context.Context) error
}
