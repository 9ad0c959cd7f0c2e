package report

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/tinoosan/txnledger/internal/ledger"
)

// PDF writes a one-table account statement.
type PDF struct{}

func (PDF) Write(w io.Writer, sums []ledger.AccountSummary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Account Summaries")
	pdf.Ln(10)

	widths := []float64{25, 40, 40, 40, 25}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range Header {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, s := range sums {
		for i, v := range Row(s) {
			align := "R"
			if i == 0 || i == len(Header)-1 {
				align = "C"
			}
			pdf.CellFormat(widths[i], 6, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf.Output(w)
}
