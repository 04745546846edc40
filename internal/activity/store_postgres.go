package activity

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Registers the postgres driver for database/sql.
	_ "github.com/lib/pq"
)

// PostgresStore persists activity events to the activity_events table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an open connection. Schema management is the
// deployment's job; EnsureSchema exists for tests and development.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the events table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS activity_events (
			id         UUID PRIMARY KEY,
			occurred_at TIMESTAMPTZ NOT NULL,
			principal  TEXT NOT NULL,
			action     TEXT NOT NULL,
			subject    TEXT NOT NULL DEFAULT '',
			request_id TEXT NOT NULL DEFAULT '',
			details    TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS activity_events_principal_idx
			ON activity_events (principal, occurred_at);
	`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure activity schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	const query = `
		INSERT INTO activity_events (id, occurred_at, principal, action, subject, request_id, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		event.ID, event.Timestamp, event.Principal, string(event.Action),
		event.Subject, event.RequestID, event.Details,
	)
	if err != nil {
		return fmt.Errorf("append activity event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByPrincipal(ctx context.Context, principal string) ([]Event, error) {
	const query = `
		SELECT id, occurred_at, principal, action, subject, request_id, details
		FROM activity_events
		WHERE principal = $1
		ORDER BY occurred_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query, principal)
	if err != nil {
		return nil, fmt.Errorf("list activity events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var action string
		var ts time.Time
		if err := rows.Scan(&e.ID, &ts, &e.Principal, &action, &e.Subject, &e.RequestID, &e.Details); err != nil {
			return nil, fmt.Errorf("scan activity event: %w", err)
		}
		e.Timestamp = ts
		e.Action = Action(action)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity events: %w", err)
	}
	return events, nil
}
