package services

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"pipetrak/models"
)

// PDF table geometry, A4 portrait in millimetres.
const (
	pdfLabelWidth = 50.0
	pdfDataWidth  = 20.0
	pdfRowHeight  = 7.0
	pdfPageBreakY = 265.0
)

// PDFExporter renders the report table with a title block, a QR stamp and
// a page footer.
type PDFExporter struct {
	ProductPrefix string
}

func (PDFExporter) Format() ExportFormat { return FormatPDF }

func (e PDFExporter) Export(w io.Writer, report models.ProgressReport) error {
	table := BuildExportTable(report)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 15)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	footer := fmt.Sprintf("%s  |  %s", e.ProductPrefix, table.Subtitle)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(95, 10, tr(footer), "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	stamp, err := ReportStampPNG(e.ProductPrefix, report)
	if err != nil {
		return err
	}
	pdf.RegisterImageOptionsReader("stamp", gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(stamp))
	pdf.ImageOptions("stamp", 172, 8, 28, 0, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetXY(10, 12)
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(158, 8, tr(table.Title), "", "L", false)
	pdf.SetX(10)
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(158, 6, tr(table.Subtitle), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(45)

	writeHeader := func() {
		pdf.SetFillColor(50, 50, 50)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Arial", "B", 9)
		for i, h := range table.Header {
			pdf.CellFormat(pdfColumnWidth(i), 8, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFillColor(255, 255, 255)
		pdf.SetTextColor(0, 0, 0)
	}
	writeRow := func(cells []string, bold, fill bool) {
		if pdf.GetY() > pdfPageBreakY {
			pdf.AddPage()
			writeHeader()
		}
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 9)
		for i, v := range cells {
			align := "R"
			text := tr(v)
			if i == 0 {
				align = "L"
				text = fitText(pdf, text, pdfLabelWidth-2)
			}
			pdf.CellFormat(pdfColumnWidth(i), pdfRowHeight, text, "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	writeHeader()
	for _, r := range table.Rows {
		writeRow(r, false, false)
	}
	if table.Empty {
		pdf.SetFont("Arial", "I", 9)
		pdf.CellFormat(pdfLabelWidth+pdfDataWidth*(ExportColumns-1), pdfRowHeight, "No data for this selection", "1", 1, "C", false, 0, "")
	}
	pdf.SetFillColor(230, 230, 230)
	writeRow(table.Total, true, true)
	pdf.SetFillColor(255, 255, 255)

	if len(table.Notes) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 8)
		for _, n := range table.Notes {
			pdf.CellFormat(0, 5, tr(n), "", 1, "L", false, 0, "")
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func pdfColumnWidth(i int) float64 {
	if i == 0 {
		return pdfLabelWidth
	}
	return pdfDataWidth
}

// fitText shortens s with an ellipsis until it fits in width.
func fitText(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}
