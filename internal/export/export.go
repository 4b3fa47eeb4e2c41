// Package export renders aggregated report tables as a spreadsheet workbook
// and as a paginated plain-text PDF. It formats rows it is given and does no
// aggregation of its own.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Section is one table of a report: a heading, a header row, and data rows.
type Section struct {
	Heading string
	Columns []string
	Rows    [][]string
}

type Report struct {
	Title    string
	Sections []Section
}

// Workbook renders the report as an xlsx file, one sheet per section with
// the column names as the first row.
func Workbook(report Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, section := range report.Sections {
		name := sheetName(section.Heading, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("add sheet %q: %w", name, err)
			}
		}

		header := make([]interface{}, len(section.Columns))
		for j, col := range section.Columns {
			header[j] = col
		}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}

		for r, row := range section.Rows {
			cells := make([]interface{}, len(row))
			for j, v := range row {
				cells[j] = v
			}
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(name, cell, &cells); err != nil {
				return nil, fmt.Errorf("write row %d: %w", r, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Document renders the report as a paginated PDF: monospaced rows grouped
// under section headings, no charts or images.
func Document(report Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, report.Title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, section := range report.Sections {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, section.Heading, "", 1, "L", false, 0, "")

		pdf.SetFont("Courier", "", 9)
		widths := columnWidths(section)
		pdf.CellFormat(0, 5, formatLine(section.Columns, widths), "", 1, "L", false, 0, "")
		for _, row := range section.Rows {
			pdf.CellFormat(0, 5, formatLine(row, widths), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidths sizes each column to its widest value, header included.
func columnWidths(section Section) []int {
	widths := make([]int, len(section.Columns))
	for i, col := range section.Columns {
		widths[i] = len(col)
	}
	for _, row := range section.Rows {
		for i, v := range row {
			if i < len(widths) && len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}
	return widths
}

func formatLine(values []string, widths []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		w := len(v)
		if i < len(widths) {
			w = widths[i]
		}
		parts[i] = fmt.Sprintf("%-*s", w, v)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// sheetName keeps sheet names inside the 31-character xlsx limit and never
// empty.
func sheetName(heading string, index int) string {
	name := strings.TrimSpace(heading)
	if name == "" {
		name = fmt.Sprintf("Sheet%d", index+1)
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
