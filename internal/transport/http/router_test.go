package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"givegate/internal/activity"
	"givegate/internal/caserecord"
	dashboardHandler "givegate/internal/dashboard/handler"
	dashboardMocks "givegate/internal/dashboard/handler/mocks"
	lifecycleHandler "givegate/internal/lifecycle/handler"
	lifecycleMocks "givegate/internal/lifecycle/handler/mocks"
	"givegate/internal/platform/metrics"
	"givegate/internal/session"
	sessionHandler "givegate/internal/session/handler"
)

type noopActivity struct{}

func (noopActivity) Record(context.Context, activity.Event) {}

// RouterSuite exercises the wired surface end to end: login issues a token
// that opens the gated routes, logout closes them again.
type RouterSuite struct {
	suite.Suite

	cases   *lifecycleMocks.MockService
	handler http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New(prometheus.NewRegistry())

	sessions := session.NewService(
		session.NewInMemoryStore(),
		session.NewTokenService("router-test-key", "givegate-test"),
		noopActivity{},
		m,
		logger,
		time.Hour,
	)

	s.cases = lifecycleMocks.NewMockService(ctrl)
	audit := dashboardMocks.NewMockAuditQuerier(ctrl)
	notifications := dashboardMocks.NewMockNotificationPoller(ctrl)
	aggregates := dashboardMocks.NewMockOverviewFetcher(ctrl)
	trail := dashboardMocks.NewMockActivityLister(ctrl)

	s.handler = NewRouter(Deps{
		Logger:    logger,
		Metrics:   m,
		Validator: sessions,
		Sessions:  sessionHandler.New(sessions, logger),
		Cases:     lifecycleHandler.New(s.cases, logger),
		Dashboard: dashboardHandler.New(audit, notifications, aggregates, trail, logger),
		Checks: map[string]func(ctx context.Context) error{
			"upstream": func(context.Context) error { return nil },
		},
	})
}

func (s *RouterSuite) login() string {
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login",
		bytes.NewReader([]byte(`{"principal":"2vxsx-fae"}`))))
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func (s *RouterSuite) TestHealthIsOpen() {
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	s.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("ok", resp["checks"].(map[string]any)["upstream"])
}

func (s *RouterSuite) TestHealthReportsFailingCheck() {
	handler := NewRouter(Deps{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:   metrics.New(prometheus.NewRegistry()),
		Validator: nil,
		Sessions:  sessionHandler.New(nil, slog.Default()),
		Cases:     lifecycleHandler.New(nil, slog.Default()),
		Dashboard: dashboardHandler.New(nil, nil, nil, nil, slog.Default()),
		Checks: map[string]func(ctx context.Context) error{
			"redis": func(context.Context) error { return errors.New("connection refused") },
		},
	})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	s.Equal(http.StatusServiceUnavailable, w.Code)
}

func (s *RouterSuite) TestMetricsIsOpen() {
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) TestGatedRoutesRejectMissingToken() {
	for _, target := range []string{"/cases", "/audit-log", "/notifications", "/dashboard/overview", "/activity"} {
		s.Run(target, func() {
			w := httptest.NewRecorder()
			s.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
			s.Equal(http.StatusUnauthorized, w.Code)
		})
	}
}

func (s *RouterSuite) TestLoginThenAccessThenLogout() {
	token := s.login()

	s.cases.EXPECT().FetchAll(gomock.Any()).
		Return([]caserecord.CaseRecord{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/cases", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	s.Equal(http.StatusNoContent, w.Code)

	// The same token no longer opens the gate.
	req = httptest.NewRequest(http.MethodGet, "/cases", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterSuite) TestTamperedTokenRejected() {
	token := s.login()

	req := httptest.NewRequest(http.MethodGet, "/cases", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)
}
