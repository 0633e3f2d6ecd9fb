package pipeline

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/kurochkinivan/dealer_notifier/internal/domain"
	"github.com/xuri/excelize/v2"
)

// maxXLSColumns is the BIFF8 column limit.
const maxXLSColumns = 256

var (
	errNoSheets = errors.New("workbook has no sheets")
	errNoHeader = errors.New("header row is empty")
)

type Loader struct {
	log *slog.Logger
}

func NewLoader(log *slog.Logger) *Loader {
	return &Loader{
		log: log,
	}
}

// Load reads the first sheet of a spreadsheet. The format is picked by the
// filename extension: .csv, .xls, anything else is treated as xlsx.
func (l *Loader) Load(filename string, r io.Reader) (*domain.Table, error) {
	log := l.log.With(slog.String("filename", filename))

	log.Debug("loading spreadsheet")

	records, err := readRecords(filename, r)
	if err != nil {
		return nil, &domain.ParseError{Filename: filename, Err: err}
	}

	table, err := normalize(records)
	if err != nil {
		return nil, &domain.ParseError{Filename: filename, Err: err}
	}

	log.Debug("successfully loaded spreadsheet",
		slog.Int("columns_count", len(table.Columns)),
		slog.Int("rows_count", len(table.Rows)),
	)

	return table, nil
}

func readRecords(filename string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(r)
	case ".xls":
		return readXLS(r)
	default:
		return readXLSX(r)
	}
}

func readXLSX(r io.Reader) (_ [][]string, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errNoSheets
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return rows, nil
}

func readXLS(r io.Reader) (_ [][]string, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}

	// the xls decoder panics on some malformed inputs
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("malformed xls workbook: %v", p)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errNoSheets
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := xlsRow(sheet, i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}

		// rows without a ROW record report no last column
		last := row.LastCol()
		if last == 0 {
			last = maxXLSColumns
		}

		cells := make([]string, 0, last)
		for c := 0; c < last; c++ {
			cells = append(cells, row.Col(c))
		}

		rows = append(rows, trimTrailingBlanks(cells))
	}

	return rows, nil
}

// xlsRow returns nil for rows the sheet does not contain; WorkSheet.Row
// dereferences them.
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()

	return sheet.Row(i)
}

func trimTrailingBlanks(cells []string) []string {
	n := len(cells)
	for n > 0 && strings.TrimSpace(cells[n-1]) == "" {
		n--
	}

	return cells[:n]
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}

	return records, nil
}

// normalize lower-cases and trims column names, trims cells, pads short rows
// and drops rows with no values at all.
func normalize(records [][]string) (*domain.Table, error) {
	if len(records) == 0 {
		return nil, errNoHeader
	}

	columns := make([]string, len(records[0]))
	blank := true
	for i, c := range records[0] {
		columns[i] = strings.ToLower(strings.TrimSpace(c))
		if columns[i] != "" {
			blank = false
		}
	}

	if blank {
		return nil, errNoHeader
	}

	table := &domain.Table{
		Columns: columns,
		Rows:    make([][]string, 0, len(records)-1),
	}

	for _, record := range records[1:] {
		row := make([]string, len(columns))
		empty := true

		for i := range row {
			if i < len(record) {
				row[i] = strings.TrimSpace(record[i])
			}

			if row[i] != "" {
				empty = false
			}
		}

		if empty {
			continue
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
