package notify

import (
	"context"
	"log/slog"
	"time"
)

// DefaultInterval matches the dashboard's observed refresh cadence.
const DefaultInterval = 30 * time.Second

// Poller re-fetches notifications on a fixed interval and hands each batch to
// a sink. The owning context is the only stop mechanism: cancellation stops
// the ticker deterministically, leaving no leaked timers.
//
// Fetch failures are soft: the sink keeps its previous view and the poller
// keeps ticking.
type Poller struct {
	reader    *Reader
	principal string
	interval  time.Duration
	sink      func([]Notification)
	logger    *slog.Logger
}

func NewPoller(reader *Reader, principal string, interval time.Duration, sink func([]Notification), logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		reader:    reader,
		principal: principal,
		interval:  interval,
		sink:      sink,
		logger:    logger,
	}
}

// Run polls until ctx is cancelled, then returns ctx.Err(). An immediate first
// fetch runs before the ticker so the sink is not empty for a whole interval.
func (p *Poller) Run(ctx context.Context) error {
	p.fetch(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.fetch(ctx)
		}
	}
}

func (p *Poller) fetch(ctx context.Context) {
	notifications, err := p.reader.Poll(ctx, p.principal)
	if err != nil {
		// Already logged by the reader; keep the previous view.
		return
	}
	p.sink(notifications)
}
