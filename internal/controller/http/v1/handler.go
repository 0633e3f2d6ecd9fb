package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/dealer_notifier/internal/domain"
)

const (
	formRoster    = "roster"
	formDocuments = "documents"

	formatJSON = "json"
	formatHTML = "html"
)

type BatchRunner interface {
	Run(ctx context.Context, campaign string, batch *domain.Batch) (*domain.Report, error)
	Campaigns() []domain.CampaignInfo
}

type ReportRenderer interface {
	Render(w io.Writer, format string, report *domain.Report) error
	ContentType(format string) (string, error)
}

type CampaignsHandler struct {
	log           *slog.Logger
	maxUploadSize int64
	runner        BatchRunner
	renderer      ReportRenderer
}

func NewCampaignsHandler(
	log *slog.Logger,
	maxUploadSize int64,
	runner BatchRunner,
	renderer ReportRenderer,
) *CampaignsHandler {
	return &CampaignsHandler{
		log:           log,
		maxUploadSize: maxUploadSize,
		runner:        runner,
		renderer:      renderer,
	}
}

type ListCampaignsResponse struct {
	Campaigns []domain.CampaignInfo `json:"campaigns"`
}

func (h *CampaignsHandler) ListCampaigns(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ListCampaignsResponse{Campaigns: h.runner.Campaigns()})
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Kind    string   `json:"kind"`
	Missing []string `json:"missing_columns,omitempty"`
	Rows    []int    `json:"rows,omitempty"`
	Keys    []string `json:"keys,omitempty"`
}

// Dispatch runs a batch from a multipart upload: one "roster" spreadsheet and
// any number of "documents". The report format is picked with ?format=.
func (h *CampaignsHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	campaign := chi.URLParam(r, "campaign")

	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatJSON
	}

	contentType, err := h.renderer.ContentType(format)
	if err != nil {
		h.writeError(w, format, http.StatusBadRequest, err)
		return
	}

	batch, err := h.readBatch(w, r)
	if err != nil {
		h.writeError(w, format, http.StatusBadRequest, err)
		return
	}

	log := h.log.With(
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("campaign", campaign),
	)

	// a started batch runs to completion even if the client goes away
	report, err := h.runner.Run(context.WithoutCancel(r.Context()), campaign, batch)
	if err != nil {
		log.InfoContext(r.Context(), "batch rejected", slog.String("err", err.Error()))
		h.writeError(w, format, statusCode(err), err)
		return
	}

	buf := &bytes.Buffer{}
	if err := h.renderer.Render(buf, format, report); err != nil {
		log.ErrorContext(r.Context(), "failed to render report", slog.String("err", err.Error()))
		h.writeError(w, format, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	if format != formatJSON && format != formatHTML {
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("%s-%s.%s", campaign, report.BatchID, format)))
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.ErrorContext(r.Context(), "failed to write report",
			slog.String("batch_id", report.BatchID),
			slog.String("err", err.Error()),
		)
	}
}

func (h *CampaignsHandler) readBatch(w http.ResponseWriter, r *http.Request) (*domain.Batch, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		return nil, fmt.Errorf("%w: file too large or invalid form", domain.ErrInvalidUpload)
	}
	defer r.MultipartForm.RemoveAll()

	batch := &domain.Batch{}

	if headers := r.MultipartForm.File[formRoster]; len(headers) > 0 {
		roster, err := readUpload(headers[0])
		if err != nil {
			return nil, err
		}

		batch.Roster = roster
	}

	for _, header := range r.MultipartForm.File[formDocuments] {
		doc, err := readUpload(header)
		if err != nil {
			return nil, err
		}

		batch.Documents = append(batch.Documents, doc)
	}

	return batch, nil
}

func readUpload(header *multipart.FileHeader) (_ *domain.UploadedDocument, err error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %q: %w", domain.ErrInvalidUpload, header.Filename, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %q: %w", domain.ErrInvalidUpload, header.Filename, err)
	}

	return &domain.UploadedDocument{
		Filename: header.Filename,
		Content:  content,
	}, nil
}

func statusCode(err error) int {
	switch domain.ErrorKind(err) {
	case "unknown_campaign":
		return http.StatusNotFound
	case "parse_error", "bad_request":
		return http.StatusBadRequest
	case "missing_columns", "incomplete_rows", "unmatched_invoices":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *CampaignsHandler) writeError(w http.ResponseWriter, format string, status int, err error) {
	if format == formatHTML {
		h.renderDashboard(w, status, err.Error())
		return
	}

	resp := ErrorResponse{
		Error: err.Error(),
		Kind:  domain.ErrorKind(err),
	}

	var (
		missingErr    *domain.MissingColumnsError
		incompleteErr *domain.IncompleteRowError
		unmatchedErr  *domain.UnmatchedInvoiceError
	)

	switch {
	case errors.As(err, &missingErr):
		resp.Missing = missingErr.Missing
	case errors.As(err, &incompleteErr):
		resp.Rows = incompleteErr.Rows
	case errors.As(err, &unmatchedErr):
		resp.Keys = unmatchedErr.Keys
	}

	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
