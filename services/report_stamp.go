package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"pipetrak/models"
)

// stampPayload is what the QR code on a printed report encodes, so a paper
// copy can be traced back to the data it was generated from.
type stampPayload struct {
	Product     string `json:"product"`
	Project     string `json:"project"`
	Dimension   string `json:"dimension"`
	GeneratedAt string `json:"generated_at"`
	Components  int    `json:"components"`
	PctComplete int    `json:"pct_complete"`
}

const (
	stampQRSize    = 256
	stampCaptionPx = 28
)

// ReportStampPNG renders a QR code of the report's identity with a short
// caption underneath, as PNG.
func ReportStampPNG(prefix string, report models.ProgressReport) ([]byte, error) {
	payload, err := json.Marshal(stampPayload{
		Product:     prefix,
		Project:     report.ProjectName,
		Dimension:   string(report.GroupingDimension),
		GeneratedAt: report.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Components:  report.GrandTotal.Budget,
		PctComplete: report.GrandTotal.PctTotal,
	})
	if err != nil {
		return nil, err
	}
	qr, err := qrcode.New(string(payload), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr code generation failed: %w", err)
	}
	qrImg := qr.Image(stampQRSize)
	size := qrImg.Bounds().Dx()

	canvas := image.NewRGBA(image.Rect(0, 0, size, size+stampCaptionPx))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(canvas, qrImg.Bounds(), qrImg, image.Point{}, draw.Src)

	caption := fmt.Sprintf("%s %s", prefix, report.GeneratedAt.UTC().Format("2006-01-02"))
	drawCaption(canvas, caption, size, size+stampCaptionPx-8)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode stamp: %w", err)
	}
	return buf.Bytes(), nil
}

// drawCaption centres label horizontally with its baseline at y.
func drawCaption(img *image.RGBA, label string, width, y int) {
	face := inconsolata.Regular8x16
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{40, 40, 40, 255}),
		Face: face,
	}
	for d.MeasureString(label).Ceil() > width-8 && len(label) > 1 {
		label = label[:len(label)-1]
	}
	x := (width - d.MeasureString(label).Ceil()) / 2
	d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	d.DrawString(label)
}
