package document

import (
	"context"
	"fmt"

	"github.com/signintech/gopdf"
	qrcode "github.com/skip2/go-qrcode"
)

// defaultFontPaths are tried in order when no explicit font is configured.
var defaultFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
}

// PDFGenerator renders forms with gopdf and codes with go-qrcode.
type PDFGenerator struct {
	fontPath string
}

// NewPDFGenerator builds a generator. fontPath may be empty, in which case
// the common DejaVu locations are tried when a form is first rendered.
func NewPDFGenerator(fontPath string) *PDFGenerator {
	return &PDFGenerator{fontPath: fontPath}
}

func (g *PDFGenerator) Form(_ context.Context, title string, fields []Field) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if err := g.loadFont(&pdf); err != nil {
		return nil, err
	}

	if err := pdf.SetFont("form", "", 18); err != nil {
		return nil, fmt.Errorf("set title font: %w", err)
	}
	pdf.SetXY(40, 40)
	if err := pdf.Cell(nil, title); err != nil {
		return nil, fmt.Errorf("write title: %w", err)
	}

	if err := pdf.SetFont("form", "", 11); err != nil {
		return nil, fmt.Errorf("set body font: %w", err)
	}
	y := 80.0
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		pdf.SetXY(40, y)
		if err := pdf.Cell(nil, f.Label+": "+f.Value); err != nil {
			return nil, fmt.Errorf("write field %s: %w", f.Label, err)
		}
		y += 20
		if y > 780 {
			pdf.AddPage()
			y = 40
		}
	}

	return pdf.GetBytesPdf(), nil
}

func (g *PDFGenerator) loadFont(pdf *gopdf.GoPdf) error {
	paths := defaultFontPaths
	if g.fontPath != "" {
		paths = []string{g.fontPath}
	}
	var lastErr error
	for _, p := range paths {
		if err := pdf.AddTTFFont("form", p); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return fmt.Errorf("no usable TTF font found: %w", lastErr)
}

func (g *PDFGenerator) Code(_ context.Context, payload string) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
