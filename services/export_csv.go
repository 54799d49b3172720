package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"pipetrak/models"
)

// CSVExporter writes the header, one line per group and the grand total.
type CSVExporter struct{}

func (CSVExporter) Format() ExportFormat { return FormatCSV }

func (CSVExporter) Export(w io.Writer, report models.ProgressReport) error {
	table := BuildExportTable(report)
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	if err := cw.Write(table.Total); err != nil {
		return fmt.Errorf("write csv total: %w", err)
	}
	cw.Flush()
	return cw.Error()
}
