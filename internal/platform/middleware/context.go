// Package middleware holds the HTTP middleware chain shared by all routers.
package middleware

import "context"

type contextKeyRequestID struct{}
type contextKeyPrincipal struct{}
type contextKeySessionID struct{}

// GetRequestID retrieves the correlation ID set by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(contextKeyRequestID{}).(string)
	return v
}

// WithRequestID is exported for tests that need a pre-populated context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID{}, id)
}

// GetPrincipal retrieves the authenticated principal text set by RequireAuth,
// or "" when the request is unauthenticated.
func GetPrincipal(ctx context.Context) string {
	v, _ := ctx.Value(contextKeyPrincipal{}).(string)
	return v
}

// WithPrincipal is exported for handler tests.
func WithPrincipal(ctx context.Context, principal string) context.Context {
	return context.WithValue(ctx, contextKeyPrincipal{}, principal)
}

// GetSessionID retrieves the session ID bound to the bearer token, or "".
func GetSessionID(ctx context.Context) string {
	v, _ := ctx.Value(contextKeySessionID{}).(string)
	return v
}

// WithSessionID is exported for handler tests.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, contextKeySessionID{}, sessionID)
}
