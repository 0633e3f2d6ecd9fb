package pipeline_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/kurochkinivan/dealer_notifier/internal/domain"
	"github.com/kurochkinivan/dealer_notifier/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReporter_Build(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	results := []domain.DispatchResult{
		{Phone: "1", Status: domain.StatusSent},
		{Phone: "2", Status: domain.StatusFailed},
		{Phone: "3", Status: domain.StatusSkipped},
		{Phone: "4", Status: domain.Status("error: timeout")},
		{Phone: "5", Status: domain.StatusSent},
	}

	startedAt := time.Now().Add(-time.Second)

	report := pipeline.NewReporter(log, nil).Build("batch-1", pipeline.CampaignNewUser, startedAt, results)

	assert.Equal(t, "batch-1", report.BatchID)
	assert.Equal(t, pipeline.CampaignNewUser, report.Campaign)
	assert.Equal(t, startedAt, report.StartedAt)
	assert.True(t, report.FinishedAt.After(startedAt))
	assert.Equal(t, domain.Summary{Total: 5, Sent: 2, Failed: 1, Skipped: 1, Errored: 1}, report.Summary)
	assert.Equal(t, results, report.Results)
}

func TestReporter_Render(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	report := &domain.Report{BatchID: "batch-1"}

	generator := NewMockReportGenerator(t)
	generator.EXPECT().ContentType().Return("text/csv")
	generator.EXPECT().
		GenerateReport(mock.Anything, report).
		RunAndReturn(func(w io.Writer, r *domain.Report) error {
			_, err := io.WriteString(w, r.BatchID)
			return err
		}).
		Once()

	reporter := pipeline.NewReporter(log, map[string]pipeline.ReportGenerator{"csv": generator})

	var buf bytes.Buffer
	require.NoError(t, reporter.Render(&buf, "csv", report))
	assert.Equal(t, "batch-1", buf.String())

	contentType, err := reporter.ContentType("csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	assert.Equal(t, []string{"csv"}, reporter.Formats())
}

func TestReporter_Render_Errors(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	generatorErr := errors.New("disk full")

	generator := NewMockReportGenerator(t)
	generator.EXPECT().GenerateReport(mock.Anything, mock.Anything).Return(generatorErr).Once()

	reporter := pipeline.NewReporter(log, map[string]pipeline.ReportGenerator{"pdf": generator})

	err := reporter.Render(io.Discard, "pdf", &domain.Report{})
	require.ErrorIs(t, err, generatorErr)

	err = reporter.Render(io.Discard, "xml", &domain.Report{})
	require.ErrorIs(t, err, pipeline.ErrUnknownFormat)

	_, err = reporter.ContentType("xml")
	require.ErrorIs(t, err, pipeline.ErrUnknownFormat)
}
