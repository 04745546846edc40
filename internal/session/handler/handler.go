// Package handler exposes the login and logout endpoints.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"givegate/internal/platform/middleware"
	"givegate/internal/session"
	dErrors "givegate/pkg/domain-errors"
	"givegate/pkg/platform/httputil"
)

// Service defines the session operations the transport needs.
type Service interface {
	Login(ctx context.Context, principalText string) (string, session.Session, error)
	Logout(ctx context.Context, sessionID string, principal string) error
}

type Handler struct {
	sessions Service
	logger   *slog.Logger
}

func New(sessions Service, logger *slog.Logger) *Handler {
	return &Handler{sessions: sessions, logger: logger}
}

// RegisterPublic mounts the routes reachable without a token.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
}

// RegisterProtected mounts the routes that require a live session.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Post("/auth/logout", h.handleLogout)
}

type loginRequest struct {
	Principal string `json:"principal"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	Principal string    `json:"principal"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	token, sess, err := h.sessions.Login(ctx, req.Principal)
	if err != nil {
		h.logger.WarnContext(ctx, "login refused",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		Principal: sess.Principal,
		ExpiresAt: sess.ExpiresAt,
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.sessions.Logout(ctx, middleware.GetSessionID(ctx), middleware.GetPrincipal(ctx))
	if err != nil {
		h.logger.ErrorContext(ctx, "logout failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
