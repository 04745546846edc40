package caserecord

// FilterAll is the sentinel label that selects every record regardless of status.
const FilterAll = "all"

// IsEditable implements the edit-eligibility invariant: a record may be edited
// by its owner iff it is still Pending and no vote has been cast in either
// direction. Any vote, or any transition away from Pending, permanently locks
// the text fields for the record's current lifetime.
//
// Pure function of three fields; the upstream service remains the final
// authority and may still reject an edit that raced with a vote.
func IsEditable(r CaseRecord) bool {
	return r.Status == StatusPending && r.VotesFor == 0 && r.VotesAgainst == 0
}

// DisplayStatus maps the status tag onto exactly one canonical label. The
// switch is exhaustive over the enum; anything else renders as Unknown rather
// than failing.
func DisplayStatus(r CaseRecord) string {
	switch r.Status {
	case StatusPending:
		return string(StatusPending)
	case StatusApproved:
		return string(StatusApproved)
	case StatusRejected:
		return string(StatusRejected)
	case StatusCompleted:
		return string(StatusCompleted)
	default:
		return string(StatusUnknown)
	}
}

// FilterByStatus returns the subsequence of records whose display label equals
// label, preserving relative order. The FilterAll sentinel returns the input
// unchanged.
func FilterByStatus(records []CaseRecord, label string) []CaseRecord {
	if label == FilterAll {
		return records
	}
	filtered := make([]CaseRecord, 0, len(records))
	for _, r := range records {
		if DisplayStatus(r) == label {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
