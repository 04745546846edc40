// Package auditlog reads the remote service's structured audit trail.
//
// The trail is append-only and server-ordered: entries arrive sorted by
// timestamp ascending and the gateway never re-sorts them. All filtering
// happens upstream; this package's job is constructing well-formed filters
// and passing absent constraints through as explicit absence.
package auditlog

import (
	"context"
	"log/slog"
	"time"

	"givegate/internal/identity"
	dErrors "givegate/pkg/domain-errors"
)

// Entry is one historical event. Read-only from the gateway's perspective.
type Entry struct {
	// Timestamp is a nanosecond epoch value, the upstream time unit.
	Timestamp int64  `json:"timestamp"`
	EventType string `json:"eventType"`
	User      string `json:"user"`
	Details   string `json:"details"`
}

// Filter narrows an audit query. Nil fields mean "no constraint" and must stay
// nil on the wire: an empty string is a different, more restrictive query
// upstream. Time bounds are the half-open range [Start, End).
type Filter struct {
	EventType *string
	Start     *int64
	End       *int64
	User      *string
}

// Source is the upstream call shape this reader depends on.
type Source interface {
	AuditLog(ctx context.Context, filter Filter) ([]Entry, error)
}

// Reader validates filters and delegates to the upstream source.
type Reader struct {
	src    Source
	logger *slog.Logger
}

func NewReader(src Source, logger *slog.Logger) *Reader {
	return &Reader{src: src, logger: logger}
}

// Query fetches entries matching filter. A present time range must be
// well-formed (Start < End) and a present user must parse as a principal;
// both are rejected locally before any upstream call.
func (r *Reader) Query(ctx context.Context, filter Filter) ([]Entry, error) {
	if filter.Start != nil && filter.End != nil && *filter.Start >= *filter.End {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "audit time range must satisfy start < end")
	}
	if filter.User != nil {
		if _, err := identity.Parse(*filter.User); err != nil {
			return nil, err
		}
	}

	entries, err := r.src.AuditLog(ctx, filter)
	if err != nil {
		r.logger.ErrorContext(ctx, "audit log query failed", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "audit log unavailable")
	}
	return entries, nil
}

// RangeFromTimes converts caller-local times into the upstream nanosecond epoch
// unit. Zero times mean "unbounded" on that side and stay absent.
func RangeFromTimes(start, end time.Time) (*int64, *int64) {
	var s, e *int64
	if !start.IsZero() {
		v := start.UnixNano()
		s = &v
	}
	if !end.IsZero() {
		v := end.UnixNano()
		e = &v
	}
	return s, e
}
