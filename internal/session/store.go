package session

import "context"

// Store persists sessions. Implementations must treat an expired session the
// same as a missing one.
type Store interface {
	Save(ctx context.Context, s Session) error
	Find(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}
