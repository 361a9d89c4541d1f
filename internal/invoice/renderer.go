package invoice

import (
	"fmt"
	"io"
	"strings"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/phpdave11/gofpdf"
)

const dateLayout = "January 2, 2006"

// Renderer lays out booking invoices as single-page A4 PDFs.
type Renderer struct {
	compress bool
}

func NewRenderer() *Renderer {
	return &Renderer{compress: true}
}

func (r *Renderer) Render(w io.Writer, inv *domain.Invoice) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetTitle("Natours invoice "+inv.Number, false)
	pdf.SetAuthor("Natours", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice no.: "+inv.Number)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date:        "+inv.IssuedAt.Format(dateLayout))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, orDash(inv.CustomerName))
	pdf.Ln(7)
	pdf.Cell(0, 7, orDash(inv.CustomerEmail))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Tour:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, orDash(inv.TourName))
	pdf.Ln(7)
	if len(inv.StartDates) > 0 {
		dates := make([]string, 0, len(inv.StartDates))
		for _, d := range inv.StartDates {
			dates = append(dates, d.Format(dateLayout))
		}
		pdf.MultiCell(0, 6, "Start dates: "+strings.Join(dates, ", "), "", "", false)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Total: $%.2f", inv.Price))
	pdf.Ln(8)

	status := "UNPAID"
	if inv.Paid {
		status = "PAID"
	}
	pdf.SetFont("Helvetica", "I", 11)
	pdf.Cell(0, 7, "Status: "+status)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write invoice pdf: %w", err)
	}
	return nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
