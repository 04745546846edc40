package activity

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type captureSink struct {
	mu       sync.Mutex
	keys     []string
	payloads [][]byte
}

func (c *captureSink) Publish(_ context.Context, key string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys = append(c.keys, key)
	c.payloads = append(c.payloads, payload)
	return nil
}

func (c *captureSink) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.keys)
}

type RecorderSuite struct {
	suite.Suite
	store    *InMemoryStore
	sink     *captureSink
	recorder *Recorder
}

func TestRecorderSuite(t *testing.T) {
	suite.Run(t, new(RecorderSuite))
}

func (s *RecorderSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.sink = &captureSink{}
	s.recorder = NewRecorder(slog.New(slog.DiscardHandler))
}

func (s *RecorderSuite) runWorker() (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	worker := NewWorker(s.store, s.sink, s.recorder.Inbox(), slog.New(slog.DiscardHandler))
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = worker.Run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}

func (s *RecorderSuite) TestRecordAndDrain() {
	stop := s.runWorker()
	defer stop()

	ctx := context.Background()
	s.recorder.Record(ctx, Event{Principal: "2vxsx-fae", Action: ActionCaseSubmitted, Subject: "1"})
	s.recorder.Record(ctx, Event{Principal: "2vxsx-fae", Action: ActionCaseEdited, Subject: "1"})

	s.Eventually(func() bool { return s.sink.count() == 2 }, time.Second, time.Millisecond)

	events, err := s.store.ListByPrincipal(ctx, "2vxsx-fae")
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(ActionCaseSubmitted, events[0].Action)
	s.NotEmpty(events[0].ID, "recorder must assign an event ID")
	s.False(events[0].Timestamp.IsZero(), "recorder must stamp the event")

	s.Run("sink payload carries the topic contract fields", func() {
		var w wire
		s.Require().NoError(json.Unmarshal(s.sink.payloads[0], &w))
		s.Equal("case_submitted", w.Action)
		s.Equal("2vxsx-fae", w.Principal)
		s.Equal("1", w.Subject)
	})

	s.Run("events are keyed by principal", func() {
		s.Equal("2vxsx-fae", s.sink.keys[0])
	})
}

func (s *RecorderSuite) TestWorkerStopsOnCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	worker := NewWorker(s.store, nil, s.recorder.Inbox(), slog.New(slog.DiscardHandler))

	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		s.Require().ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		s.Fail("worker did not stop on context cancellation")
	}
}

func (s *RecorderSuite) TestFullBufferDropsInsteadOfBlocking() {
	// No worker draining: fill the buffer past capacity and ensure Record
	// returns promptly every time.
	ctx := context.Background()
	doneIn := make(chan struct{})
	go func() {
		defer close(doneIn)
		for i := 0; i < defaultBuffer+10; i++ {
			s.recorder.Record(ctx, Event{Principal: "aaaaa-aa", Action: ActionLogin})
		}
	}()

	select {
	case <-doneIn:
	case <-time.After(time.Second):
		s.Fail("Record blocked on a full buffer")
	}
}

func (s *RecorderSuite) TestMemoryStoreFiltersByPrincipal() {
	ctx := context.Background()
	s.Require().NoError(s.store.Append(ctx, Event{ID: "1", Principal: "aaaaa-aa", Action: ActionLogin}))
	s.Require().NoError(s.store.Append(ctx, Event{ID: "2", Principal: "2vxsx-fae", Action: ActionLogin}))

	events, err := s.store.ListByPrincipal(ctx, "aaaaa-aa")
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal("1", events[0].ID)
}
