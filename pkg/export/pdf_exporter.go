package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders slot sheets into a printable PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates the PDF form of the sheet: the date as the title, the
// display timezone beneath it, then the slot table. A sheet with no rows
// renders as a closed day rather than an empty table.
func (e *PDFExporter) Render(sheet SlotSheet) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Slots for "+sheet.Date, "", 1, "C", false, 0, "")
	if sheet.Timezone != "" {
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 6, "Times shown in "+sheet.Timezone, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	// Column widths sized to the content: slot ids are the widest cells.
	widths := []float64{60, 30, 40, 30}
	pdf.SetFont("Arial", "B", 10)
	for i, header := range sheetColumns {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	if len(sheet.Rows) == 0 {
		pdf.CellFormat(160, 7, "Closed all day", "1", 1, "C", false, 0, "")
	}
	for _, row := range sheet.Rows {
		cells := []string{row.ID, row.StartTime, row.Label, row.availability()}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render slot sheet pdf: %w", err)
	}
	return buf.Bytes(), nil
}
