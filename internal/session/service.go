package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"givegate/internal/activity"
	"givegate/internal/identity"
	"givegate/internal/platform/metrics"
	"givegate/internal/platform/middleware"
	dErrors "givegate/pkg/domain-errors"
	"givegate/pkg/platform/sentinel"
)

// Activity receives session events for the gateway's own trail.
type Activity interface {
	Record(ctx context.Context, event activity.Event)
}

// Service issues and validates the dashboard's logged-in identity. A login
// binds one principal to one session; the token carries both, and logout
// revokes the session server-side so a stolen token dies with it.
type Service struct {
	store    Store
	tokens   *TokenService
	activity Activity
	metrics  *metrics.Metrics
	logger   *slog.Logger
	ttl      time.Duration
	now      func() time.Time
}

func NewService(store Store, tokens *TokenService, act Activity, m *metrics.Metrics, logger *slog.Logger, ttl time.Duration) *Service {
	return &Service{
		store:    store,
		tokens:   tokens,
		activity: act,
		metrics:  m,
		logger:   logger,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Login validates the supplied principal text, opens a session and returns a
// signed bearer token for it. The principal is stored in canonical form, so
// the rest of the gateway never re-normalizes identity text.
func (s *Service) Login(ctx context.Context, principalText string) (string, Session, error) {
	principal, err := identity.Parse(strings.TrimSpace(principalText))
	if err != nil {
		return "", Session{}, dErrors.Wrap(err, dErrors.CodeInvalidIdentity, "principal is not valid")
	}

	now := s.now()
	sess := Session{
		ID:        uuid.NewString(),
		Principal: principal.String(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return "", Session{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save session")
	}

	token, err := s.tokens.Generate(sess.Principal, sess.ID, s.ttl)
	if err != nil {
		return "", Session{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign token")
	}

	s.metrics.Logins.Inc()
	s.activity.Record(ctx, activity.Event{
		Principal: sess.Principal,
		Action:    activity.ActionLogin,
		RequestID: middleware.GetRequestID(ctx),
	})
	s.logger.InfoContext(ctx, "session opened",
		"session_id", sess.ID,
		"principal", sess.Principal,
	)
	return token, sess, nil
}

// Logout revokes the session. Deleting an already-absent session succeeds:
// logout is idempotent from the dashboard's point of view.
func (s *Service) Logout(ctx context.Context, sessionID string, principal string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete session")
	}

	s.activity.Record(ctx, activity.Event{
		Principal: principal,
		Action:    activity.ActionLogout,
		RequestID: middleware.GetRequestID(ctx),
	})
	s.logger.InfoContext(ctx, "session closed", "session_id", sessionID)
	return nil
}

// ValidateToken checks the token signature and confirms the session it names
// is still live. A well-signed token for a logged-out session is rejected.
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*middleware.TokenClaims, error) {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	sess, err := s.store.Find(ctx, claims.SessionID)
	if errors.Is(err, sentinel.ErrNotFound) || errors.Is(err, sentinel.ErrExpired) {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "session revoked or expired")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load session")
	}
	if sess.Principal != claims.Principal {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "token does not match session")
	}

	return &middleware.TokenClaims{
		Principal: sess.Principal,
		SessionID: sess.ID,
	}, nil
}
