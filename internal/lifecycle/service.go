// Package lifecycle drives case submission and editing against the remote
// case service. All local preconditions (field validation, edit eligibility,
// ownership) are checked before any network call; the upstream remains the
// final authority and its refusals are surfaced as typed errors, never
// retried automatically.
package lifecycle

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"givegate/internal/activity"
	"givegate/internal/caserecord"
	"givegate/internal/identity"
	"givegate/internal/platform/metrics"
	"givegate/internal/platform/middleware"
	dErrors "givegate/pkg/domain-errors"
	"givegate/pkg/platform/sentinel"
)

// CaseService is the port to the remote case-management service.
type CaseService interface {
	ListRecords(ctx context.Context) ([]caserecord.CaseRecord, error)
	SubmitRecord(ctx context.Context, sub caserecord.Submission) (caserecord.CaseRecord, error)
	EditRecord(ctx context.Context, id uint64, fields caserecord.EditFields) (caserecord.CaseRecord, error)
	UpdateRecord(ctx context.Context, id uint64, fields caserecord.EditFields) (caserecord.CaseRecord, error)
}

// Activity receives case events for the gateway's own trail.
type Activity interface {
	Record(ctx context.Context, event activity.Event)
}

type Service struct {
	cases    CaseService
	activity Activity
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewService(cases CaseService, act Activity, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		cases:    cases,
		activity: act,
		metrics:  m,
		logger:   logger,
	}
}

// Submit validates a draft locally and forwards it upstream. Validation
// failures cost zero network calls. The returned record is the upstream's
// view: Pending status, zero votes, nothing raised.
func (s *Service) Submit(ctx context.Context, owner string, draft caserecord.Draft) (caserecord.CaseRecord, error) {
	sub, err := validateDraft(draft)
	if err != nil {
		return caserecord.CaseRecord{}, err
	}

	record, err := s.cases.SubmitRecord(ctx, sub)
	if err != nil {
		return caserecord.CaseRecord{}, mapUpstream(err, "failed to submit case")
	}

	s.metrics.CasesSubmitted.Inc()
	s.activity.Record(ctx, activity.Event{
		Principal: owner,
		Action:    activity.ActionCaseSubmitted,
		Subject:   strconv.FormatUint(record.ID, 10),
		RequestID: middleware.GetRequestID(ctx),
	})
	s.logger.InfoContext(ctx, "case submitted",
		"case_id", record.ID,
		"principal", owner,
	)
	return record, nil
}

// FetchAll returns every record the upstream exposes, most recent state
// included. Ordering is whatever the upstream returned.
func (s *Service) FetchAll(ctx context.Context) ([]caserecord.CaseRecord, error) {
	records, err := s.cases.ListRecords(ctx)
	if err != nil {
		return nil, mapUpstream(err, "failed to list cases")
	}
	return records, nil
}

// FetchForOwner filters the full record set down to the given principal's
// own cases. The comparison is done gateway-side on canonical identity so a
// differently formatted owner string upstream cannot hide a record. No
// matches is an empty slice, not an error.
func (s *Service) FetchForOwner(ctx context.Context, principalText string) ([]caserecord.CaseRecord, error) {
	principal, err := identity.Parse(principalText)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidIdentity, "principal is not valid")
	}

	records, err := s.cases.ListRecords(ctx)
	if err != nil {
		return nil, mapUpstream(err, "failed to list cases")
	}

	owned := make([]caserecord.CaseRecord, 0)
	for _, r := range records {
		other, err := identity.Parse(r.Owner)
		if err != nil {
			continue
		}
		if principal.Equal(other) {
			owned = append(owned, r)
		}
	}
	return owned, nil
}

// Fetch returns the single record with the given ID. The upstream exposes
// only the full listing, so the lookup happens here.
func (s *Service) Fetch(ctx context.Context, id uint64) (caserecord.CaseRecord, error) {
	records, err := s.cases.ListRecords(ctx)
	if err != nil {
		return caserecord.CaseRecord{}, mapUpstream(err, "failed to list cases")
	}
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return caserecord.CaseRecord{}, dErrors.New(dErrors.CodeNotFound, "case not found")
}

// Edit applies an eligibility-gated edit. The record is re-fetched so the
// gate runs against the latest visible state; the upstream may still refuse
// when a vote or a newer version raced in, and that refusal is surfaced as a
// conflict for the caller to resolve by re-fetching. The version in fields
// passes through untouched.
func (s *Service) Edit(ctx context.Context, owner string, id uint64, fields caserecord.EditFields) (caserecord.CaseRecord, error) {
	if err := validateEditFields(&fields); err != nil {
		return caserecord.CaseRecord{}, err
	}

	current, err := s.Fetch(ctx, id)
	if err != nil {
		return caserecord.CaseRecord{}, err
	}
	if err := s.authorizeEdit(ctx, owner, current); err != nil {
		return caserecord.CaseRecord{}, err
	}

	record, err := s.cases.EditRecord(ctx, id, fields)
	if errors.Is(err, sentinel.ErrConflict) {
		s.metrics.EditConflicts.Inc()
		s.activity.Record(ctx, activity.Event{
			Principal: owner,
			Action:    activity.ActionEditRejected,
			Subject:   strconv.FormatUint(id, 10),
			RequestID: middleware.GetRequestID(ctx),
			Details:   "upstream rejected edit",
		})
		return caserecord.CaseRecord{}, dErrors.Wrap(err, dErrors.CodeConflict, "case changed since last fetch")
	}
	if err != nil {
		return caserecord.CaseRecord{}, mapUpstream(err, "failed to edit case")
	}

	s.metrics.CasesEdited.Inc()
	s.activity.Record(ctx, activity.Event{
		Principal: owner,
		Action:    activity.ActionCaseEdited,
		Subject:   strconv.FormatUint(id, 10),
		RequestID: middleware.GetRequestID(ctx),
	})
	s.logger.InfoContext(ctx, "case edited",
		"case_id", id,
		"version", fields.Version,
		"principal", owner,
	)
	return record, nil
}

// Update is the unversioned write path kept for upstreams without version
// tracking. The same ownership and eligibility gates apply; without a version
// the upstream cannot detect staleness, so last write wins.
func (s *Service) Update(ctx context.Context, owner string, id uint64, fields caserecord.EditFields) (caserecord.CaseRecord, error) {
	if err := validateEditFields(&fields); err != nil {
		return caserecord.CaseRecord{}, err
	}

	current, err := s.Fetch(ctx, id)
	if err != nil {
		return caserecord.CaseRecord{}, err
	}
	if err := s.authorizeEdit(ctx, owner, current); err != nil {
		return caserecord.CaseRecord{}, err
	}

	record, err := s.cases.UpdateRecord(ctx, id, fields)
	if err != nil {
		return caserecord.CaseRecord{}, mapUpstream(err, "failed to update case")
	}

	s.metrics.CasesEdited.Inc()
	s.activity.Record(ctx, activity.Event{
		Principal: owner,
		Action:    activity.ActionCaseEdited,
		Subject:   strconv.FormatUint(id, 10),
		RequestID: middleware.GetRequestID(ctx),
	})
	return record, nil
}

// authorizeEdit enforces the two local gates: only the owner may write, and
// only while the record is still pending and unvoted.
func (s *Service) authorizeEdit(ctx context.Context, owner string, current caserecord.CaseRecord) error {
	ownerID, err := identity.Parse(owner)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidIdentity, "principal is not valid")
	}
	recordOwner, err := identity.Parse(current.Owner)
	if err != nil || !ownerID.Equal(recordOwner) {
		return dErrors.New(dErrors.CodeUnauthorized, "only the case owner may edit it")
	}

	if !caserecord.IsEditable(current) {
		s.metrics.EditsRefused.Inc()
		s.activity.Record(ctx, activity.Event{
			Principal: owner,
			Action:    activity.ActionEditRejected,
			Subject:   strconv.FormatUint(current.ID, 10),
			RequestID: middleware.GetRequestID(ctx),
			Details:   "case is no longer editable",
		})
		return dErrors.New(dErrors.CodeNotEditable,
			"case can no longer be edited: review has started or votes were cast")
	}
	return nil
}

// validateDraft trims and checks every owner-supplied field. All checks are
// local; a draft that fails here never reaches the network.
func validateDraft(draft caserecord.Draft) (caserecord.Submission, error) {
	title := strings.TrimSpace(draft.Title)
	description := strings.TrimSpace(draft.Description)
	category := strings.TrimSpace(draft.Category)
	proofURL := strings.TrimSpace(draft.ProofURL)

	switch {
	case title == "":
		return caserecord.Submission{}, dErrors.New(dErrors.CodeInvalidInput, "title is required")
	case description == "":
		return caserecord.Submission{}, dErrors.New(dErrors.CodeInvalidInput, "description is required")
	case category == "":
		return caserecord.Submission{}, dErrors.New(dErrors.CodeInvalidInput, "category is required")
	case proofURL == "":
		return caserecord.Submission{}, dErrors.New(dErrors.CodeInvalidInput, "proof URL is required")
	}

	amount, err := strconv.ParseInt(strings.TrimSpace(draft.AmountRequested), 10, 64)
	if err != nil || amount <= 0 {
		return caserecord.Submission{}, dErrors.New(dErrors.CodeInvalidInput,
			"amount must be a positive whole number")
	}

	recipient, err := identity.Parse(strings.TrimSpace(draft.RecipientAddress))
	if err != nil {
		return caserecord.Submission{}, dErrors.Wrap(err, dErrors.CodeInvalidIdentity,
			"recipient address is not a valid principal")
	}

	return caserecord.Submission{
		Title:           title,
		Description:     description,
		Category:        category,
		ProofURL:        proofURL,
		AmountRequested: amount,
		Recipient:       recipient.String(),
	}, nil
}

// validateEditFields trims the mutable text fields in place and rejects
// blanks. The version is left exactly as the caller witnessed it.
func validateEditFields(fields *caserecord.EditFields) error {
	fields.Title = strings.TrimSpace(fields.Title)
	fields.Description = strings.TrimSpace(fields.Description)
	fields.Category = strings.TrimSpace(fields.Category)
	fields.ProofURL = strings.TrimSpace(fields.ProofURL)

	switch {
	case fields.Title == "":
		return dErrors.New(dErrors.CodeInvalidInput, "title is required")
	case fields.Description == "":
		return dErrors.New(dErrors.CodeInvalidInput, "description is required")
	case fields.Category == "":
		return dErrors.New(dErrors.CodeInvalidInput, "category is required")
	case fields.ProofURL == "":
		return dErrors.New(dErrors.CodeInvalidInput, "proof URL is required")
	}
	return nil
}

// mapUpstream translates transport sentinels to domain error codes.
func mapUpstream(err error, msg string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, "case not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, "case changed since last fetch")
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "case service unavailable")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, msg)
	}
}
