package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports that the uploaded roster is not a readable spreadsheet.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to read spreadsheet %q: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type MissingColumnsError struct {
	Required []string
	Missing  []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("spreadsheet must have columns: %s (missing: %s)",
		strings.Join(e.Required, ", "),
		strings.Join(e.Missing, ", "),
	)
}

// IncompleteRowError lists 0-based data row indices with an empty required cell.
type IncompleteRowError struct {
	Rows []int
}

func (e *IncompleteRowError) Error() string {
	rows := make([]string, len(e.Rows))
	for i, r := range e.Rows {
		rows[i] = strconv.Itoa(r)
	}

	return fmt.Sprintf("rows with missing values: [%s]; fill all required fields and re-upload",
		strings.Join(rows, ", "))
}

type UnmatchedInvoiceError struct {
	Keys []string
}

func (e *UnmatchedInvoiceError) Error() string {
	return fmt.Sprintf("invoice numbers in spreadsheet but not in files: [%s]; upload the missing invoice files and try again",
		strings.Join(e.Keys, ", "))
}

type ProviderUploadError struct {
	StatusCode int
	Body       string
}

func (e *ProviderUploadError) Error() string {
	if e.StatusCode == 200 {
		return fmt.Sprintf("no media id returned: %s", e.Body)
	}

	return fmt.Sprintf("failed to upload document: status %d: %s", e.StatusCode, e.Body)
}

type ProviderSendError struct {
	StatusCode int
	Body       string
}

func (e *ProviderSendError) Error() string {
	return fmt.Sprintf("whatsapp api error: status %d: %s", e.StatusCode, e.Body)
}

// UnexpectedError wraps anything that went wrong while processing a single
// item other than a provider rejection.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return e.Err.Error()
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

var (
	ErrUnknownCampaign = errors.New("unknown campaign")
	ErrNoDocuments     = errors.New("upload at least one document")
	ErrNoRoster        = errors.New("upload the spreadsheet first")
	ErrInvalidUpload   = errors.New("invalid upload")
)

// ErrorKind names the class of a batch-level error for API responses and metrics.
func ErrorKind(err error) string {
	var (
		parseErr      *ParseError
		missingErr    *MissingColumnsError
		incompleteErr *IncompleteRowError
		unmatchedErr  *UnmatchedInvoiceError
	)

	switch {
	case err == nil:
		return "none"
	case errors.As(err, &parseErr):
		return "parse_error"
	case errors.As(err, &missingErr):
		return "missing_columns"
	case errors.As(err, &incompleteErr):
		return "incomplete_rows"
	case errors.As(err, &unmatchedErr):
		return "unmatched_invoices"
	case errors.Is(err, ErrUnknownCampaign):
		return "unknown_campaign"
	case errors.Is(err, ErrNoDocuments), errors.Is(err, ErrNoRoster), errors.Is(err, ErrInvalidUpload):
		return "bad_request"
	default:
		return "internal"
	}
}
