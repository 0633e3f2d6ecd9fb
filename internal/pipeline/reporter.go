package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/kurochkinivan/dealer_notifier/internal/domain"
)

var ErrUnknownFormat = errors.New("unknown report format")

type Reporter struct {
	log        *slog.Logger
	generators map[string]ReportGenerator
}

func NewReporter(log *slog.Logger, generators map[string]ReportGenerator) *Reporter {
	return &Reporter{
		log:        log,
		generators: generators,
	}
}

func (r *Reporter) Build(
	batchID string,
	campaign string,
	startedAt time.Time,
	results []domain.DispatchResult,
) *domain.Report {
	report := &domain.Report{
		BatchID:    batchID,
		Campaign:   campaign,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
		Summary:    domain.Summarize(results),
		Results:    results,
	}

	r.log.Info("report built",
		slog.String("batch_id", batchID),
		slog.String("campaign", campaign),
		slog.Int("total", report.Summary.Total),
		slog.Int("sent", report.Summary.Sent),
		slog.Int("failed", report.Summary.Failed),
		slog.Int("skipped", report.Summary.Skipped),
		slog.Int("errored", report.Summary.Errored),
	)

	return report
}

func (r *Reporter) Render(w io.Writer, format string, report *domain.Report) error {
	generator, ok := r.generators[format]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	if err := generator.GenerateReport(w, report); err != nil {
		return fmt.Errorf("failed to generate %s report: %w", format, err)
	}

	return nil
}

func (r *Reporter) ContentType(format string) (string, error) {
	generator, ok := r.generators[format]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	return generator.ContentType(), nil
}

func (r *Reporter) Formats() []string {
	formats := make([]string, 0, len(r.generators))
	for f := range r.generators {
		formats = append(formats, f)
	}

	slices.Sort(formats)

	return formats
}
