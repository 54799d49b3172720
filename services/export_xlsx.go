package services

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"pipetrak/models"
)

const progressSheet = "Progress"

// XLSXExporter writes a single "Progress" sheet: title, subtitle, the table
// with a bold header and a bold, top-bordered grand total.
type XLSXExporter struct{}

func (XLSXExporter) Format() ExportFormat { return FormatXLSX }

func (XLSXExporter) Export(w io.Writer, report models.ProgressReport) error {
	table := BuildExportTable(report)

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", progressSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"323232"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    cellBorders(1),
	})
	if err != nil {
		return err
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    cellBorders(1),
	})
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Border: cellBorders(1)})
	if err != nil {
		return err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    cellBorders(2),
	})
	if err != nil {
		return err
	}

	lastCol, _ := excelize.ColumnNumberToName(ExportColumns)
	if err := f.SetCellValue(progressSheet, "A1", table.Title); err != nil {
		return err
	}
	if err := f.MergeCell(progressSheet, "A1", lastCol+"1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(progressSheet, "A1", "A1", titleStyle); err != nil {
		return err
	}
	if err := f.SetCellValue(progressSheet, "A2", table.Subtitle); err != nil {
		return err
	}

	row := 4
	if err := writeXLSXRow(f, row, table.Header, headerStyle, headerStyle); err != nil {
		return err
	}
	for _, r := range table.Rows {
		row++
		if err := writeXLSXRow(f, row, r, labelStyle, bodyStyle); err != nil {
			return err
		}
	}
	if table.Empty {
		row++
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(progressSheet, cell, "No data for this selection"); err != nil {
			return err
		}
	}
	row++
	if err := writeXLSXRow(f, row, table.Total, totalStyle, totalStyle); err != nil {
		return err
	}
	for _, note := range table.Notes {
		row += 2
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(progressSheet, cell, note); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(progressSheet, "A", "A", 32); err != nil {
		return err
	}
	if err := f.SetColWidth(progressSheet, "B", lastCol, 13); err != nil {
		return err
	}
	if err := f.SetPanes(progressSheet, &excelize.Panes{
		Freeze: true, YSplit: 4, TopLeftCell: "A5", ActivePane: "bottomLeft",
	}); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func writeXLSXRow(f *excelize.File, row int, values []string, labelStyle, dataStyle int) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(progressSheet, cell, v); err != nil {
			return err
		}
		style := dataStyle
		if i == 0 {
			style = labelStyle
		}
		if err := f.SetCellStyle(progressSheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

// cellBorders draws thin grey borders; topStyle 2 gives the medium rule
// that separates the grand total.
func cellBorders(topStyle int) []excelize.Border {
	topColor := "BFBFBF"
	if topStyle > 1 {
		topColor = "000000"
	}
	return []excelize.Border{
		{Type: "left", Color: "BFBFBF", Style: 1},
		{Type: "right", Color: "BFBFBF", Style: 1},
		{Type: "top", Color: topColor, Style: topStyle},
		{Type: "bottom", Color: "BFBFBF", Style: 1},
	}
}
