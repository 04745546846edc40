// Package handler serves the dashboard's read-only views: the remote audit
// log, the caller's notifications, and the aggregate overview.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"givegate/internal/activity"
	"givegate/internal/aggregate"
	"givegate/internal/auditlog"
	"givegate/internal/notify"
	"givegate/internal/platform/middleware"
	dErrors "givegate/pkg/domain-errors"
	"givegate/pkg/platform/httputil"
)

// AuditQuerier runs filtered audit queries against the remote service.
type AuditQuerier interface {
	Query(ctx context.Context, filter auditlog.Filter) ([]auditlog.Entry, error)
}

// NotificationPoller fetches the caller's pending notifications once.
type NotificationPoller interface {
	Poll(ctx context.Context, principal string) ([]notify.Notification, error)
}

// OverviewFetcher assembles the aggregate landing view.
type OverviewFetcher interface {
	Overview(ctx context.Context, window aggregate.Range) (aggregate.Overview, error)
}

// ActivityLister reads the gateway's own trail of the caller's actions.
type ActivityLister interface {
	ListByPrincipal(ctx context.Context, principal string) ([]activity.Event, error)
}

type Handler struct {
	audit         AuditQuerier
	notifications NotificationPoller
	aggregates    OverviewFetcher
	trail         ActivityLister
	logger        *slog.Logger
}

func New(audit AuditQuerier, notifications NotificationPoller, aggregates OverviewFetcher, trail ActivityLister, logger *slog.Logger) *Handler {
	return &Handler{
		audit:         audit,
		notifications: notifications,
		aggregates:    aggregates,
		trail:         trail,
		logger:        logger,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/audit-log", h.handleAuditLog)
	r.Get("/notifications", h.handleNotifications)
	r.Get("/dashboard/overview", h.handleOverview)
	r.Get("/activity", h.handleActivity)
}

// handleAuditLog serves GET /audit-log. Absent query parameters stay absent
// on the upstream wire; an empty parameter value is treated the same way, as
// the dashboard never sends deliberately empty filters.
func (h *Handler) handleAuditLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var filter auditlog.Filter
	if v := q.Get("event"); v != "" {
		filter.EventType = &v
	}
	if v := q.Get("user"); v != "" {
		filter.User = &v
	}
	var err error
	if filter.Start, err = nanosParam(q.Get("start")); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if filter.End, err = nanosParam(q.Get("end")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	entries, err := h.audit.Query(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "audit query failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notifications, err := h.notifications.Poll(ctx, middleware.GetPrincipal(ctx))
	if err != nil {
		h.logger.ErrorContext(ctx, "notification poll failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, notifications)
}

// handleOverview serves GET /dashboard/overview. The window defaults to the
// trailing eight weeks when the caller does not bound it.
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	window, err := overviewWindow(q.Get("start"), q.Get("end"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	overview, err := h.aggregates.Overview(ctx, window)
	if err != nil {
		h.logger.ErrorContext(ctx, "overview fetch failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, overview)
}

// handleActivity serves GET /activity: the caller's own gateway-side trail,
// oldest first. Distinct from /audit-log, which queries the remote service.
func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	events, err := h.trail.ListByPrincipal(ctx, middleware.GetPrincipal(ctx))
	if err != nil {
		h.logger.ErrorContext(ctx, "activity list failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load activity"))
		return
	}

	views := make([]activityView, 0, len(events))
	for _, e := range events {
		views = append(views, activityView{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			Action:    string(e.Action),
			Subject:   e.Subject,
			Details:   e.Details,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, views)
}

type activityView struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject,omitempty"`
	Details   string    `json:"details,omitempty"`
}

const defaultOverviewSpan = 8 * 7 * 24 * time.Hour

func overviewWindow(startParam, endParam string) (aggregate.Range, error) {
	if startParam == "" && endParam == "" {
		end := time.Now()
		return aggregate.NewRange(end.Add(-defaultOverviewSpan), end)
	}

	start, err := nanosParam(startParam)
	if err != nil {
		return aggregate.Range{}, err
	}
	end, err := nanosParam(endParam)
	if err != nil {
		return aggregate.Range{}, err
	}
	if start == nil || end == nil {
		return aggregate.Range{}, dErrors.New(dErrors.CodeInvalidInput,
			"start and end must be supplied together")
	}
	return aggregate.Range{Start: *start, End: *end}, nil
}

// nanosParam parses an optional nanosecond epoch query value; empty means nil.
func nanosParam(v string) (*int64, error) {
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput,
			"time bounds must be nanosecond epoch integers")
	}
	return &n, nil
}
