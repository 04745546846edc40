package activity

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Sink receives events after persistence, e.g. the Kafka producer. Optional.
type Sink interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

// Recorder accepts events from domain services without blocking them and
// hands them to a background worker. Emission is fire-and-forget: a full
// buffer drops the event with a log line rather than stalling a request.
type Recorder struct {
	inbox  chan Event
	logger *slog.Logger
}

const defaultBuffer = 256

func NewRecorder(logger *slog.Logger) *Recorder {
	return &Recorder{
		inbox:  make(chan Event, defaultBuffer),
		logger: logger,
	}
}

// Record enqueues an event, filling in ID and timestamp when absent.
func (r *Recorder) Record(ctx context.Context, event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case r.inbox <- event:
	default:
		r.logger.WarnContext(ctx, "activity buffer full, dropping event",
			"action", string(event.Action),
			"principal", event.Principal,
		)
	}
}

// Inbox exposes the receive side for the worker.
func (r *Recorder) Inbox() <-chan Event {
	return r.inbox
}

// Worker drains the recorder's inbox, persisting each event and fanning it
// out to the optional sink. Persistence failures are logged, not fatal: the
// activity trail is best-effort and must never take the gateway down.
type Worker struct {
	store  Store
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, sink: sink, inbox: inbox, logger: logger}
}

// Run consumes until ctx is cancelled, then returns ctx.Err().
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			w.handle(ctx, event)
		}
	}
}

func (w *Worker) handle(ctx context.Context, event Event) {
	if err := w.store.Append(ctx, event); err != nil {
		w.logger.ErrorContext(ctx, "activity append failed",
			"error", err,
			"action", string(event.Action),
		)
		return
	}
	if w.sink == nil {
		return
	}

	payload, err := json.Marshal(wirePayload(event))
	if err != nil {
		w.logger.ErrorContext(ctx, "activity encode failed", "error", err)
		return
	}
	if err := w.sink.Publish(ctx, event.Principal, payload); err != nil {
		w.logger.ErrorContext(ctx, "activity publish failed",
			"error", err,
			"action", string(event.Action),
		)
	}
}

// wire is the JSON structure downstream consumers see. Field names are part
// of the topic contract.
type wire struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Principal string `json:"principal"`
	Action    string `json:"action"`
	Subject   string `json:"subject,omitempty"`
	RequestID string `json:"requestId,omitempty"`
	Details   string `json:"details,omitempty"`
}

func wirePayload(event Event) wire {
	return wire{
		ID:        event.ID,
		Timestamp: event.Timestamp.Format(time.RFC3339Nano),
		Principal: event.Principal,
		Action:    string(event.Action),
		Subject:   event.Subject,
		RequestID: event.RequestID,
		Details:   event.Details,
	}
}
