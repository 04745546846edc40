// Package session keeps the single logged-in identity the dashboard runs
// under. One principal per session; its presence gates every dashboard route
// and logout clears it. No other per-user state is persisted gateway-side.
package session

import "time"

// Session binds a dashboard login to a principal for a bounded lifetime.
type Session struct {
	ID        string    `json:"id"`
	Principal string    `json:"principal"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session has outlived its TTL.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
