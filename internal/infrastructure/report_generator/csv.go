package report_generator

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/dealer_notifier/internal/domain"
)

type CSVGenerator struct{}

func NewCSV() *CSVGenerator {
	return &CSVGenerator{}
}

func (g *CSVGenerator) ContentType() string {
	return "text/csv; charset=utf-8"
}

// GenerateReport writes one line per dispatch result. The header is written
// even when there are no results.
func (g *CSVGenerator) GenerateReport(w io.Writer, report *domain.Report) error {
	writer := csv.NewWriter(w)
	enc := csvutil.NewEncoder(writer)

	if err := enc.EncodeHeader(domain.DispatchResult{}); err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}

	for _, result := range report.Results {
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}
