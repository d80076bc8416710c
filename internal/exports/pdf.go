package exports

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"interviewdeck/internal/models"
)

const reportTitle = "Interview / OA Questions"

// WritePDF renders a title and a four column table. The Question cell links
// to the title text rather than the question's link field.
func WritePDF(w io.Writer, qs []models.Question) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, reportTitle, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(columns))

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(229, 231, 235)
	for _, c := range columns {
		pdf.CellFormat(colW, 8, c, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	for _, q := range qs {
		cells := row(q)

		pdf.SetFont("Helvetica", "U", 10)
		pdf.SetTextColor(0, 0, 255)
		pdf.CellFormat(colW, 8, tr(cells[0]), "1", 0, "L", false, 0, cells[0])

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		for _, c := range cells[1:] {
			pdf.CellFormat(colW, 8, tr(c), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}
