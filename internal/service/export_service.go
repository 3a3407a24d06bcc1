package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"

	"surveyforge/internal/model"
)

// Supported export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ExportResult is a rendered report ready to be served as a download.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportReport renders a report into the requested format. Serialization
// failures come back as *ExportError carrying the format.
func ExportReport(report *model.ReportData, format string) (*ExportResult, error) {
	switch format {
	case FormatCSV:
		return exportCSV(report)
	case FormatXLSX:
		return exportXLSX(report)
	case FormatPDF:
		return exportPDF(report)
	default:
		return nil, NewInvalidError(fmt.Sprintf("unsupported export format %q", format))
	}
}

// statRow is one flattened line of the per-question stats table.
type statRow struct {
	Question string
	Type     string
	Stat     string
	Value    string
}

// flattenStats turns the type-specific aggregates into a uniform
// question/type/stat/value table shared by all three exporters.
func flattenStats(report *model.ReportData) []statRow {
	var rows []statRow
	for _, st := range report.QuestionStats {
		qtype := string(st.Type)
		switch st.Type {
		case model.QuestionMultipleChoice, model.QuestionDropdown:
			// OptionCounts is keyed by option text; emit rows in a stable
			// order by walking the stat's recorded options.
			for _, opt := range sortedOptionNames(st.OptionCounts) {
				rows = append(rows, statRow{st.Question, qtype, opt, fmt.Sprintf("%d", st.OptionCounts[opt])})
			}
		case model.QuestionRating, model.QuestionScale:
			rows = append(rows, statRow{st.Question, qtype, "average", fmt.Sprintf("%.2f", st.Average)})
			for i, count := range st.Distribution {
				rows = append(rows, statRow{st.Question, qtype, fmt.Sprintf("rating %d", i+1), fmt.Sprintf("%d", count)})
			}
		default:
			rows = append(rows, statRow{st.Question, qtype, "responses", fmt.Sprintf("%d", st.Responses)})
			for _, answer := range st.Answers {
				rows = append(rows, statRow{st.Question, qtype, "answer", answer})
			}
		}
	}
	return rows
}

func sortedOptionNames(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func exportCSV(report *model.ReportData) (*ExportResult, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Survey Title", report.Title},
		{"Total Responses", fmt.Sprintf("%d", report.TotalResponses)},
		{"Completion Rate", fmt.Sprintf("%.1f%%", report.CompletionRate)},
		{""},
		{"Question Stats"},
		{"Question", "Type", "Stat", "Value"},
	}
	for _, row := range flattenStats(report) {
		records = append(records, []string{row.Question, row.Type, row.Stat, row.Value})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, &ExportError{Format: FormatCSV, Cause: err}
	}
	return &ExportResult{
		Filename:    exportFilename(report.Title, FormatCSV),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

func exportXLSX(report *model.ReportData) (*ExportResult, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Survey Report"
	f.SetSheetName("Sheet1", sheet)

	cells := map[string]interface{}{
		"A1": "Survey Title", "B1": report.Title,
		"A2": "Total Responses", "B2": report.TotalResponses,
		"A3": "Completion Rate", "B3": fmt.Sprintf("%.1f%%", report.CompletionRate),
		"A5": "Question", "B5": "Type", "C5": "Stat", "D5": "Value",
	}
	for cell, value := range cells {
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return nil, &ExportError{Format: FormatXLSX, Cause: err}
		}
	}

	row := 6
	for _, r := range flattenStats(report) {
		values := []string{r.Question, r.Type, r.Stat, r.Value}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, &ExportError{Format: FormatXLSX, Cause: err}
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, &ExportError{Format: FormatXLSX, Cause: err}
			}
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, &ExportError{Format: FormatXLSX, Cause: err}
	}
	return &ExportResult{
		Filename:    exportFilename(report.Title, FormatXLSX),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func exportPDF(report *model.ReportData) (*ExportResult, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 10, report.Title, "", "L", false)
	if report.Description != "" {
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 6, report.Description, "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total Responses: %d", report.TotalResponses), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Completion Rate: %.1f%%", report.CompletionRate), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Avg Completion Time: %.1f min", report.AverageCompletionTime), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, st := range report.QuestionStats {
		if pdf.GetY() > 250 {
			pdf.AddPage()
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 7, st.Question, "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 5, fmt.Sprintf("Type: %s    Responses: %d", st.Type, st.Responses), "", 1, "L", false, 0, "")

		switch st.Type {
		case model.QuestionMultipleChoice, model.QuestionDropdown:
			for _, opt := range sortedOptionNames(st.OptionCounts) {
				pdf.CellFormat(0, 5, fmt.Sprintf("  %s: %d", opt, st.OptionCounts[opt]), "", 1, "L", false, 0, "")
			}
		case model.QuestionRating, model.QuestionScale:
			pdf.CellFormat(0, 5, fmt.Sprintf("  Average: %.2f", st.Average), "", 1, "L", false, 0, "")
			for i, count := range st.Distribution {
				pdf.CellFormat(0, 5, fmt.Sprintf("  Rating %d: %d", i+1, count), "", 1, "L", false, 0, "")
			}
		default:
			for _, answer := range st.Answers {
				if pdf.GetY() > 270 {
					pdf.AddPage()
				}
				pdf.MultiCell(0, 5, "  - "+answer, "", "L", false)
			}
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &ExportError{Format: FormatPDF, Cause: err}
	}
	return &ExportResult{
		Filename:    exportFilename(report.Title, FormatPDF),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}

// exportFilename builds "<Title>_Report.<ext>" with filesystem-hostile
// characters stripped.
func exportFilename(title, ext string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, title)
	if cleaned == "" {
		cleaned = "Survey"
	}
	return fmt.Sprintf("%s_Report.%s", cleaned, ext)
}
