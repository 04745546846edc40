// Package chain is the HTTP client for the remote case-management service.
//
// The service owns persistence, vote tallying, approval policy, and fund
// movement; this client only speaks its call shape. Every method honors
// context cancellation and performs no retries: retryability is the caller's
// decision. Timeouts belong to the injected http.Client.
package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"givegate/internal/aggregate"
	"givegate/internal/auditlog"
	"givegate/internal/caserecord"
	"givegate/internal/notify"
	"givegate/pkg/platform/sentinel"
)

const tracerName = "givegate/internal/chain"

// Client implements the case-management boundary over HTTP/JSON.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  trace.Tracer
	observe func(operation string, d time.Duration)
}

// Option configures a Client.
type Option func(*Client)

// WithObserver records per-operation round-trip latency, e.g. into the
// upstream histogram.
func WithObserver(observe func(operation string, d time.Duration)) Option {
	return func(c *Client) {
		c.observe = observe
	}
}

// New builds a client for the service at baseURL. httpClient may carry
// transport-level timeouts; pass nil for http.DefaultClient.
func New(baseURL string, httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		baseURL: baseURL,
		http:    httpClient,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// ListRecords fetches the full accessible record set. Ownership filtering is
// deliberately absent here: callers must filter by identity equality
// themselves rather than trust upstream pre-filtering.
func (c *Client) ListRecords(ctx context.Context) ([]caserecord.CaseRecord, error) {
	var records []caserecord.CaseRecord
	err := c.call(ctx, "ListRecords", http.MethodGet, "/requests", nil, nil, &records)
	return records, err
}

// SubmitRecord creates a new case. The service assigns id, creation time,
// zero votes, zero raised, and Pending status.
func (c *Client) SubmitRecord(ctx context.Context, sub caserecord.Submission) (caserecord.CaseRecord, error) {
	var record caserecord.CaseRecord
	err := c.call(ctx, "SubmitRecord", http.MethodPost, "/requests", nil, sub, &record)
	return record, err
}

// UpdateRecord is the plain, unversioned field update the service also
// exposes. The gateway's edit flow uses EditRecord instead; this call exists
// for parity with the service surface.
func (c *Client) UpdateRecord(ctx context.Context, id uint64, fields caserecord.EditFields) (caserecord.CaseRecord, error) {
	body := struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		ProofURL    string `json:"proofUrl"`
	}{fields.Title, fields.Description, fields.Category, fields.ProofURL}

	var record caserecord.CaseRecord
	err := c.call(ctx, "UpdateRecord", http.MethodPut, "/requests/"+strconv.FormatUint(id, 10), nil, body, &record)
	return record, err
}

// EditRecord is the versioned edit. The witnessed version travels unmodified
// so the service can detect staleness; a conflict comes back as
// sentinel.ErrConflict.
func (c *Client) EditRecord(ctx context.Context, id uint64, fields caserecord.EditFields) (caserecord.CaseRecord, error) {
	var record caserecord.CaseRecord
	err := c.call(ctx, "EditRecord", http.MethodPost, "/requests/"+strconv.FormatUint(id, 10)+"/edit", nil, fields, &record)
	return record, err
}

func (c *Client) DonationSummary(ctx context.Context) (aggregate.Summary, error) {
	var summary aggregate.Summary
	err := c.call(ctx, "DonationSummary", http.MethodGet, "/donations/summary", nil, nil, &summary)
	return summary, err
}

func (c *Client) RequestStatistics(ctx context.Context) (aggregate.Statistics, error) {
	var stats aggregate.Statistics
	err := c.call(ctx, "RequestStatistics", http.MethodGet, "/requests/statistics", nil, nil, &stats)
	return stats, err
}

func (c *Client) WeeklyDonations(ctx context.Context, r aggregate.Range) ([]aggregate.WeeklyBucket, error) {
	query := url.Values{}
	query.Set("start", strconv.FormatInt(r.Start, 10))
	query.Set("end", strconv.FormatInt(r.End, 10))

	var buckets []aggregate.WeeklyBucket
	err := c.call(ctx, "WeeklyDonations", http.MethodGet, "/donations/weekly", query, nil, &buckets)
	return buckets, err
}

func (c *Client) Notifications(ctx context.Context, principal string) ([]notify.Notification, error) {
	var notifications []notify.Notification
	err := c.call(ctx, "Notifications", http.MethodGet, "/users/"+url.PathEscape(principal)+"/notifications", nil, nil, &notifications)
	return notifications, err
}

// AuditLog queries the structured audit trail. Absent filter fields produce
// absent query parameters: an empty string would be a different, more
// restrictive query on the service side.
func (c *Client) AuditLog(ctx context.Context, filter auditlog.Filter) ([]auditlog.Entry, error) {
	query := url.Values{}
	if filter.EventType != nil {
		query.Set("eventType", *filter.EventType)
	}
	if filter.Start != nil {
		query.Set("start", strconv.FormatInt(*filter.Start, 10))
	}
	if filter.End != nil {
		query.Set("end", strconv.FormatInt(*filter.End, 10))
	}
	if filter.User != nil {
		query.Set("user", *filter.User)
	}

	var entries []auditlog.Entry
	err := c.call(ctx, "AuditLog", http.MethodGet, "/audit-log", query, nil, &entries)
	return entries, err
}

// call performs one upstream round trip inside a span, encoding body as JSON
// when present and decoding the 2xx response into out.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	ctx, span := c.tracer.Start(ctx, "chain."+op)
	defer span.End()

	if c.observe != nil {
		start := time.Now()
		defer func() { c.observe(op, time.Since(start)) }()
	}

	err := c.do(ctx, method, path, query, body, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// fall through to decode
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, sentinel.ErrNotFound)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s %s: %w", method, path, sentinel.ErrConflict)
	default:
		// Opaque upstream fault; drain a bounded amount for the message.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s: %w", method, path, resp.StatusCode, snippet, sentinel.ErrUnavailable)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
