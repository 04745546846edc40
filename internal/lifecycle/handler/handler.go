// Package handler exposes the case endpoints: listing, submission, and the
// two write paths. Responses wrap the upstream record with the presentation
// fields the dashboard needs, so clients never re-derive eligibility.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"givegate/internal/caserecord"
	"givegate/internal/platform/middleware"
	dErrors "givegate/pkg/domain-errors"
	"givegate/pkg/platform/httputil"
)

// Service defines the case operations the transport needs.
type Service interface {
	Submit(ctx context.Context, owner string, draft caserecord.Draft) (caserecord.CaseRecord, error)
	FetchAll(ctx context.Context) ([]caserecord.CaseRecord, error)
	FetchForOwner(ctx context.Context, principal string) ([]caserecord.CaseRecord, error)
	Fetch(ctx context.Context, id uint64) (caserecord.CaseRecord, error)
	Edit(ctx context.Context, owner string, id uint64, fields caserecord.EditFields) (caserecord.CaseRecord, error)
	Update(ctx context.Context, owner string, id uint64, fields caserecord.EditFields) (caserecord.CaseRecord, error)
}

type Handler struct {
	cases  Service
	logger *slog.Logger
}

func New(cases Service, logger *slog.Logger) *Handler {
	return &Handler{cases: cases, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/cases", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleSubmit)
		r.Get("/{id}", h.handleGet)
		r.Patch("/{id}", h.handleEdit)
		r.Put("/{id}", h.handleUpdate)
	})
}

// caseView is the dashboard's rendering of a record: the raw upstream fields
// plus the label and eligibility verdict derived gateway-side.
type caseView struct {
	caserecord.CaseRecord
	DisplayStatus string `json:"displayStatus"`
	Editable      bool   `json:"editable"`
}

func viewOf(r caserecord.CaseRecord) caseView {
	return caseView{
		CaseRecord:    r,
		DisplayStatus: caserecord.DisplayStatus(r),
		Editable:      caserecord.IsEditable(r),
	}
}

func viewsOf(records []caserecord.CaseRecord) []caseView {
	views := make([]caseView, 0, len(records))
	for _, r := range records {
		views = append(views, viewOf(r))
	}
	return views
}

type draftRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	ProofURL         string `json:"proofUrl"`
	AmountRequested  string `json:"amountRequested"`
	RecipientAddress string `json:"recipientAddress"`
}

type editRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ProofURL    string `json:"proofUrl"`
	Version     uint64 `json:"version"`
}

// handleList serves GET /cases. ?mine=true restricts to the caller's own
// cases; ?status=<label> filters client-side labels, "all" or absent being
// the identity.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		records []caserecord.CaseRecord
		err     error
	)
	if r.URL.Query().Get("mine") == "true" {
		records, err = h.cases.FetchForOwner(ctx, middleware.GetPrincipal(ctx))
	} else {
		records, err = h.cases.FetchAll(ctx)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list cases",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	if label := r.URL.Query().Get("status"); label != "" {
		records = caserecord.FilterByStatus(records, label)
	}

	httputil.WriteJSON(w, http.StatusOK, viewsOf(records))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	record, err := h.cases.Submit(ctx, middleware.GetPrincipal(ctx), caserecord.Draft{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		ProofURL:         req.ProofURL,
		AmountRequested:  req.AmountRequested,
		RecipientAddress: req.RecipientAddress,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "case submission refused",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, viewOf(record))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := caseID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	record, err := h.cases.Fetch(ctx, id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, viewOf(record))
}

func (h *Handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	h.handleWrite(w, r, h.cases.Edit)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	h.handleWrite(w, r, h.cases.Update)
}

func (h *Handler) handleWrite(
	w http.ResponseWriter,
	r *http.Request,
	write func(ctx context.Context, owner string, id uint64, fields caserecord.EditFields) (caserecord.CaseRecord, error),
) {
	ctx := r.Context()

	id, err := caseID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	record, err := write(ctx, middleware.GetPrincipal(ctx), id, caserecord.EditFields{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ProofURL:    req.ProofURL,
		Version:     req.Version,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "case write refused",
			"request_id", middleware.GetRequestID(ctx),
			"case_id", id,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, viewOf(record))
}

func caseID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "case id must be a non-negative integer")
	}
	return id, nil
}
