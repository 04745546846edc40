// Package aggregate reads derived donation and request statistics.
//
// Every number here is computed upstream over the full record set. The gateway
// renders what it receives as evidence of the value at query time; it never
// recomputes aggregates from raw records, and an all-zero or empty result is
// the valid "no data yet" state.
package aggregate

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	dErrors "givegate/pkg/domain-errors"
)

// Summary aggregates a donor-facing view of giving activity.
type Summary struct {
	TotalDonated       int64    `json:"totalDonated"`
	TotalContributions uint64   `json:"totalContributions"`
	CasesSupported     []uint64 `json:"casesSupported"`
}

// Statistics counts cases per lifecycle status.
type Statistics struct {
	Total     uint64 `json:"total"`
	Pending   uint64 `json:"pending"`
	Approved  uint64 `json:"approved"`
	Rejected  uint64 `json:"rejected"`
	Completed uint64 `json:"completed"`
}

// WeeklyBucket is one week's donation total. WeekStart is a nanosecond epoch
// value marking the bucket's inclusive lower bound.
type WeeklyBucket struct {
	WeekStart int64 `json:"weekStart"`
	Total     int64 `json:"total"`
}

// Range is a half-open [Start, End) window in nanosecond epoch units.
type Range struct {
	Start int64
	End   int64
}

// NewRange builds a well-formed window from caller-local times.
func NewRange(start, end time.Time) (Range, error) {
	r := Range{Start: start.UnixNano(), End: end.UnixNano()}
	if r.Start >= r.End {
		return Range{}, dErrors.New(dErrors.CodeInvalidInput, "range must satisfy start < end")
	}
	return r, nil
}

// Source is the upstream call shape this reader depends on.
type Source interface {
	DonationSummary(ctx context.Context) (Summary, error)
	RequestStatistics(ctx context.Context) (Statistics, error)
	WeeklyDonations(ctx context.Context, r Range) ([]WeeklyBucket, error)
}

// Reader is a pass-through query layer over upstream aggregates.
type Reader struct {
	src    Source
	logger *slog.Logger
}

func NewReader(src Source, logger *slog.Logger) *Reader {
	return &Reader{src: src, logger: logger}
}

func (r *Reader) Summary(ctx context.Context) (Summary, error) {
	summary, err := r.src.DonationSummary(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "donation summary fetch failed", "error", err)
		return Summary{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "donation summary unavailable")
	}
	return summary, nil
}

func (r *Reader) Statistics(ctx context.Context) (Statistics, error) {
	stats, err := r.src.RequestStatistics(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "request statistics fetch failed", "error", err)
		return Statistics{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "request statistics unavailable")
	}
	return stats, nil
}

// WeeklyDonations fetches time-bucketed totals for a well-formed window.
func (r *Reader) WeeklyDonations(ctx context.Context, window Range) ([]WeeklyBucket, error) {
	if window.Start >= window.End {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "range must satisfy start < end")
	}
	buckets, err := r.src.WeeklyDonations(ctx, window)
	if err != nil {
		r.logger.ErrorContext(ctx, "weekly donations fetch failed", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "weekly donations unavailable")
	}
	return buckets, nil
}

// Overview is the dashboard landing view: all three aggregates at once.
type Overview struct {
	Summary    Summary        `json:"summary"`
	Statistics Statistics     `json:"statistics"`
	Weekly     []WeeklyBucket `json:"weekly"`
}

// Overview fetches the three aggregates concurrently with shared cancellation:
// the first failure cancels the rest.
func (r *Reader) Overview(ctx context.Context, window Range) (Overview, error) {
	if window.Start >= window.End {
		return Overview{}, dErrors.New(dErrors.CodeInvalidInput, "range must satisfy start < end")
	}

	g, ctx := errgroup.WithContext(ctx)
	var overview Overview

	g.Go(func() error {
		summary, err := r.src.DonationSummary(ctx)
		if err != nil {
			return err
		}
		overview.Summary = summary
		return nil
	})
	g.Go(func() error {
		stats, err := r.src.RequestStatistics(ctx)
		if err != nil {
			return err
		}
		overview.Statistics = stats
		return nil
	})
	g.Go(func() error {
		buckets, err := r.src.WeeklyDonations(ctx, window)
		if err != nil {
			return err
		}
		overview.Weekly = buckets
		return nil
	})

	if err := g.Wait(); err != nil {
		r.logger.ErrorContext(ctx, "overview fetch failed", "error", err)
		return Overview{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "overview unavailable")
	}
	return overview, nil
}
