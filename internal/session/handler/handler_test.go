package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"givegate/internal/platform/middleware"
	"givegate/internal/session"
	"givegate/internal/session/handler/mocks"
	dErrors "givegate/pkg/domain-errors"
)

type HandlerSuite struct {
	suite.Suite

	service *mocks.MockService
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := New(s.service, logger)
	s.router = chi.NewRouter()
	h.RegisterPublic(s.router)
	h.RegisterProtected(s.router)
}

func (s *HandlerSuite) TestLoginReturnsTokenAndExpiry() {
	expires := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	s.service.EXPECT().Login(gomock.Any(), "2vxsx-fae").
		Return("signed.jwt.token", session.Session{
			ID:        "sid-1",
			Principal: "2vxsx-fae",
			ExpiresAt: expires,
		}, nil)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login",
		bytes.NewReader([]byte(`{"principal":"2vxsx-fae"}`))))

	s.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("signed.jwt.token", resp["token"])
	s.Equal("2vxsx-fae", resp["principal"])
	s.Contains(resp["expiresAt"], "2026-08-30")
}

func (s *HandlerSuite) TestLoginRefusedForBadPrincipal() {
	s.service.EXPECT().Login(gomock.Any(), "garbage").
		Return("", session.Session{}, dErrors.New(dErrors.CodeInvalidIdentity, "principal is not valid"))

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login",
		bytes.NewReader([]byte(`{"principal":"garbage"}`))))

	s.Equal(http.StatusBadRequest, w.Code)
	var envelope map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	s.Equal("invalid_identity", envelope["error"])
}

func (s *HandlerSuite) TestLoginMalformedBody() {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login",
		bytes.NewReader([]byte(`{`))))

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerSuite) TestLogoutUsesContextSession() {
	s.service.EXPECT().Logout(gomock.Any(), "sid-1", "2vxsx-fae").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	ctx := middleware.WithPrincipal(req.Context(), "2vxsx-fae")
	ctx = middleware.WithSessionID(ctx, "sid-1")
	req = req.WithContext(ctx)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNoContent, w.Code)
}
