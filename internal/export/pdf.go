package export

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf"

	"classkit/internal/models"
)

// pdfEpoch pins the embedded creation date so re-rendering the same poster
// yields byte-identical output.
var pdfEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Poster renders an A4 PDF: centered title, one filled heading bar per
// section with its bullets underneath, and a centered footer combining the
// callout with the attribution line.
func Poster(p *models.Poster) ([]byte, error) {
	if p == nil {
		p = &models.Poster{}
	}

	title := p.PosterTitle
	if title == "" {
		title = "Class Poster"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(0, 0, 139)
	pdf.MultiCell(0, 12, tr(title), "", "C", false)
	pdf.Ln(6)

	for _, sec := range p.Sections {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFillColor(70, 130, 180)
		pdf.MultiCell(0, 9, tr(sec.Heading), "", "L", true)
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "", 12)
		pdf.SetTextColor(0, 0, 0)
		for _, b := range sec.BodyBullets {
			pdf.MultiCell(0, 6, tr("• "+b), "", "L", false)
		}
		pdf.Ln(5)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(128, 128, 128)
	if p.FooterCallout != "" {
		pdf.MultiCell(0, 5, tr(p.FooterCallout), "", "C", false)
	}
	pdf.MultiCell(0, 5, tr(Attribution), "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
