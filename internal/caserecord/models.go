// Package caserecord defines the aid-case entity, its status state machine,
// and the edit-eligibility rule that gates owner mutations.
package caserecord

import "encoding/json"

// Status is the lifecycle tag of a case. Exactly one tag is active at a time;
// the remote case-management service owns every transition, the gateway only
// interprets the tag it receives.
//
// Transitions: Pending -> Approved | Rejected; Approved -> Completed.
// Rejected and Completed are terminal.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCompleted Status = "Completed"
	// StatusUnknown absorbs tags the upstream schema may grow later. Records
	// carrying it render, they just never count as editable.
	StatusUnknown Status = "Unknown"
)

// ParseStatus maps an upstream tag onto the closed enum. Unrecognized tags map
// to StatusUnknown rather than failing: status is sourced from an external
// system whose schema may evolve.
func ParseStatus(tag string) Status {
	switch Status(tag) {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return Status(tag)
	default:
		return StatusUnknown
	}
}

// UnmarshalJSON decodes a status tag, degrading unknown tags to StatusUnknown.
// Decoding is total so a schema change upstream cannot fail a whole list fetch.
func (st *Status) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		*st = StatusUnknown
		return nil
	}
	*st = ParseStatus(tag)
	return nil
}

// CaseRecord is a single aid request tracked through its lifecycle.
//
// The remote service assigns ID, CreatedAt, and Version at creation and owns
// AmountRaised, VotesFor, VotesAgainst, and Status thereafter. The gateway
// treats those fields as read-only evidence of the value at fetch time.
type CaseRecord struct {
	ID          uint64 `json:"id"`
	Owner       string `json:"owner"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ProofURL    string `json:"proofUrl"`
	// AmountRequested is fixed at creation; edits never carry it.
	AmountRequested int64 `json:"amountRequested"`
	// AmountRaised is monotonically non-decreasing, updated only upstream.
	AmountRaised int64  `json:"amountRaised"`
	Status       Status `json:"status"`
	VotesFor     uint64 `json:"votesFor"`
	VotesAgainst uint64 `json:"votesAgainst"`
	// CreatedAt is a nanosecond epoch timestamp, the upstream time unit.
	CreatedAt int64 `json:"createdAt"`
	// Version increases on every accepted edit. The gateway passes it through
	// untouched so the upstream can detect staleness; it is never incremented
	// locally.
	Version uint64 `json:"version"`
}

// Draft carries the owner-supplied fields of a new submission. Amount arrives
// as the raw form string so validation stays in one place.
type Draft struct {
	Title            string
	Description      string
	Category         string
	ProofURL         string
	AmountRequested  string
	RecipientAddress string
}

// Submission is a validated draft ready for the remote service: trimmed text
// fields, a parsed positive amount, and a canonical recipient principal.
type Submission struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	ProofURL        string `json:"proofUrl"`
	AmountRequested int64  `json:"amountRequested"`
	Recipient       string `json:"recipient"`
}

// EditFields is the mutable subset of a record plus the version witnessed by
// the editor. Amount and owner are immutable after creation.
type EditFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ProofURL    string `json:"proofUrl"`
	Version     uint64 `json:"version"`
}
