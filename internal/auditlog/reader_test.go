package auditlog

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "givegate/pkg/domain-errors"
)

// capturingSource records the filter it was handed so tests can assert that
// absent constraints stay absent across the boundary.
type capturingSource struct {
	lastFilter Filter
	calls      int
	entries    []Entry
	err        error
}

func (c *capturingSource) AuditLog(_ context.Context, filter Filter) ([]Entry, error) {
	c.calls++
	c.lastFilter = filter
	return c.entries, c.err
}

type ReaderSuite struct {
	suite.Suite
	src    *capturingSource
	reader *Reader
}

func TestReaderSuite(t *testing.T) {
	suite.Run(t, new(ReaderSuite))
}

func (s *ReaderSuite) SetupTest() {
	s.src = &capturingSource{}
	s.reader = NewReader(s.src, slog.New(slog.DiscardHandler))
}

func (s *ReaderSuite) TestQuery() {
	ctx := context.Background()

	s.Run("absent fields pass through as nil, not empty strings", func() {
		start := int64(1_000)
		end := int64(2_000)
		_, err := s.reader.Query(ctx, Filter{Start: &start, End: &end})
		s.Require().NoError(err)

		s.Nil(s.src.lastFilter.EventType)
		s.Nil(s.src.lastFilter.User)
		s.Require().NotNil(s.src.lastFilter.Start)
		s.Equal(start, *s.src.lastFilter.Start)
		s.Require().NotNil(s.src.lastFilter.End)
		s.Equal(end, *s.src.lastFilter.End)
	})

	s.Run("rejects inverted time range before any upstream call", func() {
		s.src.calls = 0
		start := int64(2_000)
		end := int64(1_000)
		_, err := s.reader.Query(ctx, Filter{Start: &start, End: &end})
		s.Require().Error(err)
		s.Equal(dErrors.CodeInvalidInput, dErrors.CodeOf(err))
		s.Zero(s.src.calls)
	})

	s.Run("rejects malformed user principal before any upstream call", func() {
		s.src.calls = 0
		bad := "not-a-principal"
		_, err := s.reader.Query(ctx, Filter{User: &bad})
		s.Require().Error(err)
		s.Equal(dErrors.CodeInvalidIdentity, dErrors.CodeOf(err))
		s.Zero(s.src.calls)
	})

	s.Run("accepts a fully unconstrained filter", func() {
		s.src.entries = []Entry{{Timestamp: 1, EventType: "vote_cast"}}
		entries, err := s.reader.Query(ctx, Filter{})
		s.Require().NoError(err)
		s.Len(entries, 1)
	})

	s.Run("preserves upstream ordering as received", func() {
		s.src.entries = []Entry{{Timestamp: 3}, {Timestamp: 1}, {Timestamp: 2}}
		entries, err := s.reader.Query(ctx, Filter{})
		s.Require().NoError(err)
		s.Equal([]Entry{{Timestamp: 3}, {Timestamp: 1}, {Timestamp: 2}}, entries)
	})

	s.Run("wraps upstream failure as unavailable", func() {
		s.src.err = errors.New("connection refused")
		_, err := s.reader.Query(ctx, Filter{})
		s.Require().Error(err)
		s.Equal(dErrors.CodeUnavailable, dErrors.CodeOf(err))
		s.src.err = nil
	})
}

func (s *ReaderSuite) TestRangeFromTimes() {
	s.Run("zero times stay absent", func() {
		start, end := RangeFromTimes(time.Time{}, time.Time{})
		s.Nil(start)
		s.Nil(end)
	})

	s.Run("set times convert to nanosecond epoch", func() {
		t0 := time.Unix(10, 500)
		start, end := RangeFromTimes(t0, t0.Add(time.Hour))
		s.Require().NotNil(start)
		s.Require().NotNil(end)
		s.Equal(t0.UnixNano(), *start)
		s.Equal(t0.Add(time.Hour).UnixNano(), *end)
	})
}
