package receipt

import (
	"os"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"github.com/Sanjidh090/SmartBuy/pkg/domain/model"
)

// PDFRenderer writes the PDF variant of a receipt. It is fed the same order
// tuple as the text receipt and is always best-effort.
type PDFRenderer struct {
	path     string
	logoPath string
}

func NewPDFRenderer(path, logoPath string) *PDFRenderer {
	return &PDFRenderer{path: path, logoPath: logoPath}
}

func (r *PDFRenderer) Path() string { return r.path }

func (r *PDFRenderer) Render(order *model.Order) error {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	if _, err := os.Stat(r.logoPath); err == nil {
		pdf.ImageOptions(r.logoPath, 15, 12, 35, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		pdf.SetY(50)
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, banner, "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "Date: "+order.CreatedAt.Format(timeLayout), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := [4]float64{70, 30, 38, 38}
	headers := [4]string{"Item", "Quantity", "Price (USD)", "Total (USD)"}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(173, 216, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range order.Lines {
		pdf.CellFormat(widths[0], 8, line.Name, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 8, strconv.Itoa(line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 8, "$"+line.UnitPrice.StringFixed(2), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 8, "$"+line.LineTotal.StringFixed(2), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(widths[0], 8, "", "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[1], 8, "", "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[2], 8, "Total", "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[3], 8, "$"+order.GrandTotal.StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(0, 8, "Thank you for shopping with us!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(r.path); err != nil {
		return errors.Wrapf(err, "could not write %s", r.path)
	}
	return nil
}
