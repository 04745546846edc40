package activity

import "context"

// Store persists activity events. Append-only; there is no delete.
type Store interface {
	Append(ctx context.Context, event Event) error
	// ListByPrincipal returns a principal's events ordered oldest first.
	ListByPrincipal(ctx context.Context, principal string) ([]Event, error)
}
