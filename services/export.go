package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pipetrak/models"
)

// ExportFormat is a supported export file type.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
	FormatPDF  ExportFormat = "pdf"
)

// ParseExportFormat accepts the format names used in query strings.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unsupported export format %q (want csv, xlsx or pdf)", s)
}

func (f ExportFormat) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// ExportTable is the rendered form of a ProgressReport shared by every
// exporter: one label column plus seven data columns, and a trailing grand
// total. Exporters only lay these strings out; they never touch numbers.
type ExportTable struct {
	Title    string
	Subtitle string
	Header   []string
	Rows     [][]string
	Total    []string
	Empty    bool
	Notes    []string
}

// ExportColumns is the number of columns every export row has.
const ExportColumns = 8

var printer = message.NewPrinter(language.English)

// FormatBudget renders a component count with thousands separators.
func FormatBudget(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatPct renders a rounded percentage, e.g. "75%".
func FormatPct(p int) string {
	return strconv.Itoa(p) + "%"
}

// BuildExportTable turns a report into display strings.
func BuildExportTable(report models.ProgressReport) ExportTable {
	header := make([]string, 0, ExportColumns)
	header = append(header, report.GroupingDimension.Label(), "Budget")
	for _, c := range models.StandardCategories {
		header = append(header, c.Label())
	}
	header = append(header, "% Complete")

	t := ExportTable{
		Title:    report.Title,
		Subtitle: fmt.Sprintf("Generated %s UTC", report.GeneratedAt.UTC().Format("2006-01-02 15:04")),
		Header:   header,
		Rows:     make([][]string, 0, len(report.Rows)),
		Total:    exportRow(report.GrandTotal),
		Empty:    report.IsEmpty(),
	}
	for _, r := range report.Rows {
		t.Rows = append(t.Rows, exportRow(r))
	}
	if report.SkippedComponents > 0 {
		t.Notes = append(t.Notes, fmt.Sprintf("%d component(s) skipped due to invalid data", report.SkippedComponents))
	}
	return t
}

func exportRow(r models.ReportRow) []string {
	row := make([]string, 0, ExportColumns)
	row = append(row, r.GroupName, FormatBudget(r.Budget))
	for _, c := range models.StandardCategories {
		row = append(row, FormatPct(r.Pct(c)))
	}
	return append(row, FormatPct(r.PctTotal))
}

// ExportFilename builds "<prefix>_<project>_<dimension>_<YYYY-MM-DD>.<ext>".
// The date is taken from the report's generation time in UTC.
func ExportFilename(prefix string, report models.ProgressReport, format ExportFormat) string {
	project := sanitizeFilenamePart(report.ProjectName)
	if project == "" {
		project = "Project"
	}
	return fmt.Sprintf("%s_%s_%s_%s.%s",
		sanitizeFilenamePart(prefix),
		project,
		string(report.GroupingDimension),
		report.GeneratedAt.UTC().Format("2006-01-02"),
		string(format))
}

// sanitizeFilenamePart keeps [A-Za-z0-9.-], turns everything else into a
// single '-', and trims dashes and dots from both ends.
func sanitizeFilenamePart(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			if r == '-' {
				if dash {
					continue
				}
				dash = true
			} else {
				dash = false
			}
			b.WriteRune(r)
		default:
			if !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.Trim(b.String(), "-.")
}

// Exporter renders a report in one file format.
type Exporter interface {
	Format() ExportFormat
	Export(w io.Writer, report models.ProgressReport) error
}

// ExportOptions carries branding shared by all exporters.
type ExportOptions struct {
	ProductPrefix string
}

// NewExporter returns the exporter for a format.
func NewExporter(format ExportFormat, opts ExportOptions) (Exporter, error) {
	switch format {
	case FormatCSV:
		return CSVExporter{}, nil
	case FormatXLSX:
		return XLSXExporter{}, nil
	case FormatPDF:
		return PDFExporter{ProductPrefix: opts.ProductPrefix}, nil
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}
