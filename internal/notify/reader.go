// Package notify fetches a user's pending alerts from the remote service.
//
// Notifications are ephemeral and polled, never pushed. The package exposes a
// single idempotent fetch plus a caller-owned repeating task, so scheduling
// stays with the caller and the core is tied to no particular event loop.
package notify

import (
	"context"
	"log/slog"

	dErrors "givegate/pkg/domain-errors"
)

// Notification is one pending per-user alert.
type Notification struct {
	EventType string `json:"eventType"`
	Details   string `json:"details"`
	// Timestamp is a nanosecond epoch value.
	Timestamp int64 `json:"timestamp"`
}

// Source is the upstream call shape this reader depends on.
type Source interface {
	Notifications(ctx context.Context, principal string) ([]Notification, error)
}

// Reader performs single notification fetches.
type Reader struct {
	src    Source
	logger *slog.Logger
}

func NewReader(src Source, logger *slog.Logger) *Reader {
	return &Reader{src: src, logger: logger}
}

// Poll fetches the pending notifications for principal. Idempotent; an empty
// result is the normal quiet state, not an error.
func (r *Reader) Poll(ctx context.Context, principal string) ([]Notification, error) {
	notifications, err := r.src.Notifications(ctx, principal)
	if err != nil {
		r.logger.ErrorContext(ctx, "notification poll failed", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "notifications unavailable")
	}
	return notifications, nil
}
