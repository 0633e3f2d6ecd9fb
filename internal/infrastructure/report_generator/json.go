package report_generator

import (
	"encoding/json"
	"io"

	"github.com/kurochkinivan/dealer_notifier/internal/domain"
)

type JSONGenerator struct{}

func NewJSON() *JSONGenerator {
	return &JSONGenerator{}
}

func (g *JSONGenerator) ContentType() string {
	return "application/json"
}

func (g *JSONGenerator) GenerateReport(w io.Writer, report *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}
