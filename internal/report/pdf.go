package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
)

const (
	pageMargin = 14.0
	rowHeight  = 5.0
)

// RenderPDF lays the document out on landscape A4 pages. Text goes through
// the cp1252 translator so Spanish accents survive the core fonts.
func RenderPDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("COBA", false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, tr(doc.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 6, tr(doc.Period), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Generado: "+doc.GeneratedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	if strings.TrimSpace(doc.Description) != "" {
		pdf.MultiCell(0, rowHeight, tr(doc.Description), "", "L", false)
	}
	pdf.Ln(3)

	if len(doc.Summary) > 0 {
		for _, f := range doc.Summary {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(30, 30, 30)
			pdf.CellFormat(70, rowHeight+0.5, tr(f.Label+":"), "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, rowHeight+0.5, tr(f.Value), "", "L", false)
		}
		pdf.Ln(3)
	}

	writeTable(pdf, tr, doc.Table)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(pdf *gofpdf.Fpdf, tr func(string) string, t Table) {
	if len(t.Columns) == 0 {
		return
	}
	if len(t.Rows) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(0, rowHeight, tr("Sin registros en el periodo."), "", 1, "L", false, 0, "")
		return
	}

	pageW, _ := pdf.GetPageSize()
	colW := (pageW - 2*pageMargin) / float64(len(t.Columns))

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 236, 245)
		pdf.SetTextColor(20, 20, 20)
		for _, c := range t.Columns {
			pdf.CellFormat(colW, rowHeight+1, tr(c), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
	header()

	pdf.SetFont("Helvetica", "", 8)
	_, pageH := pdf.GetPageSize()
	for _, row := range t.Rows {
		if pdf.GetY()+rowHeight > pageH-pageMargin {
			pdf.AddPage()
			header()
			pdf.SetFont("Helvetica", "", 8)
		}
		for _, cell := range row {
			pdf.CellFormat(colW, rowHeight, fit(pdf, tr(strings.Join(strings.Fields(cell), " ")), colW), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// fit truncates an already translated (single byte) string so it fits in
// a cell of width w.
func fit(pdf *gofpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w-2 {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > w-2 {
		s = s[:len(s)-1]
	}
	return s + "..."
}
