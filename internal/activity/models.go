// Package activity records the gateway's own trail of user-visible actions.
//
// This is distinct from the remote service's audit log: the service records
// what happened to cases, this package records what users did through the
// gateway (logins, submissions, edit attempts). Events are append-only and
// transport-agnostic so stores and sinks can fan out.
package activity

import "time"

// Action names one user-visible gateway action.
type Action string

const (
	ActionLogin         Action = "login"
	ActionLogout        Action = "logout"
	ActionCaseSubmitted Action = "case_submitted"
	ActionCaseEdited    Action = "case_edited"
	// ActionEditRejected records an edit the upstream refused after the local
	// eligibility check passed; the record's lifecycle moved underneath us.
	ActionEditRejected Action = "edit_rejected"
)

// Event is emitted from domain logic to capture one action.
type Event struct {
	ID        string
	Timestamp time.Time
	// Principal is the acting user's canonical identity text.
	Principal string
	Action    Action
	// Subject names the acted-on entity, e.g. a case ID. Empty for session
	// actions.
	Subject string
	// RequestID correlates the event with the HTTP request that caused it.
	RequestID string
	Details   string
}
