package session

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"givegate/internal/activity"
	"givegate/internal/platform/metrics"
	dErrors "givegate/pkg/domain-errors"
	"givegate/pkg/platform/sentinel"
)

type recordedActivity struct {
	mu     sync.Mutex
	events []activity.Event
}

func (r *recordedActivity) Record(_ context.Context, event activity.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordedActivity) actions() []activity.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]activity.Action, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Action)
	}
	return out
}

type SessionSuite struct {
	suite.Suite

	store    *InMemoryStore
	activity *recordedActivity
	service  *Service
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.activity = &recordedActivity{}
	tokens := NewTokenService("test-signing-key", "givegate-test")
	m := metrics.New(prometheus.NewRegistry())
	s.service = NewService(s.store, tokens, s.activity, m, slog.Default(), time.Hour)
}

func (s *SessionSuite) TestLoginIssuesValidToken() {
	ctx := context.Background()

	token, sess, err := s.service.Login(ctx, "2vxsx-fae")
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.Equal("2vxsx-fae", sess.Principal)
	s.NotEmpty(sess.ID)

	claims, err := s.service.ValidateToken(ctx, token)
	s.Require().NoError(err)
	s.Equal("2vxsx-fae", claims.Principal)
	s.Equal(sess.ID, claims.SessionID)

	s.Equal([]activity.Action{activity.ActionLogin}, s.activity.actions())
}

func (s *SessionSuite) TestLoginTrimsSurroundingWhitespace() {
	_, sess, err := s.service.Login(context.Background(), "  2vxsx-fae\n")
	s.Require().NoError(err)
	s.Equal("2vxsx-fae", sess.Principal)
}

func (s *SessionSuite) TestLoginRejectsInvalidPrincipal() {
	cases := []string{
		"",
		"not a principal",
		"2vxsx-fag", // damaged checksum
		"2VXSX-FAE", // uppercase is not canonical
	}
	for _, text := range cases {
		s.Run(text, func() {
			_, _, err := s.service.Login(context.Background(), text)
			s.Require().Error(err)
			s.Equal(dErrors.CodeInvalidIdentity, dErrors.CodeOf(err))
		})
	}
	s.Empty(s.activity.actions())
}

func (s *SessionSuite) TestLogoutRevokesSession() {
	ctx := context.Background()

	token, sess, err := s.service.Login(ctx, "2vxsx-fae")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Logout(ctx, sess.ID, sess.Principal))

	// The token is still well-signed but its session is gone.
	_, err = s.service.ValidateToken(ctx, token)
	s.Require().Error(err)
	s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(err))

	s.Equal([]activity.Action{activity.ActionLogin, activity.ActionLogout}, s.activity.actions())
}

func (s *SessionSuite) TestLogoutIsIdempotent() {
	ctx := context.Background()
	s.NoError(s.service.Logout(ctx, "never-existed", "2vxsx-fae"))
}

func (s *SessionSuite) TestValidateRejectsGarbageToken() {
	_, err := s.service.ValidateToken(context.Background(), "not.a.jwt")
	s.Require().Error(err)
	s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(err))
}

func (s *SessionSuite) TestValidateRejectsForeignSignature() {
	foreign := NewTokenService("other-key", "givegate-test")
	token, err := foreign.Generate("2vxsx-fae", "some-session", time.Hour)
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(context.Background(), token)
	s.Require().Error(err)
	s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(err))
}

func (s *SessionSuite) TestValidateRejectsExpiredSessionInStore() {
	ctx := context.Background()

	token, sess, err := s.service.Login(ctx, "2vxsx-fae")
	s.Require().NoError(err)

	// Advance the store's clock past the session's expiry.
	s.store.now = func() time.Time { return sess.ExpiresAt.Add(time.Second) }

	_, err = s.service.ValidateToken(ctx, token)
	s.Require().Error(err)
	s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(err))
}

func (s *SessionSuite) TestMemoryStoreExpiryBehavesAsMissing() {
	ctx := context.Background()
	store := NewInMemoryStore()

	sess := Session{
		ID:        "sid",
		Principal: "2vxsx-fae",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Minute),
	}
	s.Require().NoError(store.Save(ctx, sess))

	found, err := store.Find(ctx, "sid")
	s.Require().NoError(err)
	s.Equal(sess.Principal, found.Principal)

	store.now = func() time.Time { return sess.ExpiresAt }
	_, err = store.Find(ctx, "sid")
	s.Require().ErrorIs(err, sentinel.ErrExpired)

	// A second lookup sees the lazily deleted entry as plainly missing.
	_, err = store.Find(ctx, "sid")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
