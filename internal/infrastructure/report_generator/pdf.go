package report_generator

import (
	"fmt"
	"io"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/dealer_notifier/internal/domain"
)

const (
	titleHeight  = 12
	headerHeight = 8
	rowHeight    = 7
)

var (
	titleStyle   = props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}
	captionStyle = props.Text{Size: 8, Align: align.Center}
	headerStyle  = props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left, Top: 1}
	cellStyle    = props.Text{Size: 8, Align: align.Left, Top: 1}
)

type PDFGenerator struct{}

func NewPDF() *PDFGenerator {
	return &PDFGenerator{}
}

func (g *PDFGenerator) ContentType() string {
	return "application/pdf"
}

func (g *PDFGenerator) GenerateReport(w io.Writer, report *domain.Report) error {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		text.NewRow(titleHeight, "Dispatch report: "+report.Campaign, titleStyle),
		text.NewRow(rowHeight, fmt.Sprintf("Batch %s, finished %s",
			report.BatchID, report.FinishedAt.Format(time.DateTime)), captionStyle),
		text.NewRow(rowHeight, fmt.Sprintf("Total %d, sent %d, failed %d, skipped %d, errors %d",
			report.Summary.Total,
			report.Summary.Sent,
			report.Summary.Failed,
			report.Summary.Skipped,
			report.Summary.Errored,
		), captionStyle),
	)

	m.AddRow(headerHeight, resultCols(headerStyle, "File", "Key", "Phone", "Dealer", "Status")...)

	for _, r := range report.Results {
		m.AddRow(rowHeight, resultCols(cellStyle, r.File, r.Key, r.Phone, r.Dealer, string(r.Status))...)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if _, err := w.Write(doc.GetBytes()); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}

	return nil
}

func resultCols(style props.Text, file, key, phone, dealer, status string) []core.Col {
	return []core.Col{
		text.NewCol(3, file, style),
		text.NewCol(2, key, style),
		text.NewCol(2, phone, style),
		text.NewCol(2, dealer, style),
		text.NewCol(3, status, style),
	}
}
