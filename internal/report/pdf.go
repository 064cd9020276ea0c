package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// DocumentFilename is the fixed name of the downloadable artifact.
const DocumentFilename = "informe_vocacional.pdf"

type fontSpec struct {
	style string
	size  float64
}

var fonts = map[LineStyle]fontSpec{
	StyleTitle:    {style: "B", size: 20},
	StyleSubtitle: {style: "I", size: 12},
	StyleHeading:  {style: "B", size: 13},
	StyleBody:     {style: "", size: 10},
	StyleSpacer:   {style: "", size: 10},
}

// EncodePDF walks the paginated document and emits it as PDF bytes. All
// layout decisions were already made by BuildDocument; this is encoding
// glue only.
func EncodePDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range doc.Pages {
		pdf.AddPage()
		y := float64(topMargin)
		for _, line := range page.Lines {
			h := lineHeights[line.Style]
			if line.Style != StyleSpacer && line.Text != "" {
				spec := fonts[line.Style]
				pdf.SetFont("Helvetica", spec.style, spec.size)
				pdf.Text(leftMargin, y+spec.size, tr(line.Text))
			}
			y += h
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("encode pdf: %w", err)
	}
	return buf.Bytes(), nil
}
