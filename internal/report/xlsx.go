package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Reporte"

// RenderXLSX writes the document to a single sheet: title block, summary
// lines, then the table with a bold header row.
func RenderXLSX(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6ECF5"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	w := &sheetWriter{f: f}
	w.set(1, doc.Title, title)
	w.row++
	w.set(1, doc.Period, 0)
	w.row++
	w.set(1, "Generado: "+doc.GeneratedAt.Format("2006-01-02 15:04"), 0)
	if doc.Description != "" {
		w.row++
		w.set(1, doc.Description, 0)
	}
	w.row += 2

	for _, fl := range doc.Summary {
		w.set(1, fl.Label, bold)
		w.set(2, fl.Value, 0)
		w.row++
	}
	if len(doc.Summary) > 0 {
		w.row++
	}

	if len(doc.Table.Columns) > 0 {
		for i, c := range doc.Table.Columns {
			w.set(i+1, c, header)
		}
		for _, r := range doc.Table.Rows {
			w.row++
			for i, v := range r {
				w.set(i+1, v, 0)
			}
		}
		if err := f.SetColWidth(sheetName, "A", colName(len(doc.Table.Columns)), 22); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}
	if w.err != nil {
		return nil, w.err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter keeps the current row and the first error so the layout code
// reads top to bottom.
type sheetWriter struct {
	f   *excelize.File
	row int
	err error
}

func (w *sheetWriter) set(col int, v string, style int) {
	if w.err != nil {
		return
	}
	if w.row == 0 {
		w.row = 1
	}
	cell, err := excelize.CoordinatesToCellName(col, w.row)
	if err != nil {
		w.err = fmt.Errorf("cell name: %w", err)
		return
	}
	if err := w.f.SetCellStr(sheetName, cell, v); err != nil {
		w.err = fmt.Errorf("set %s: %w", cell, err)
		return
	}
	if style != 0 {
		if err := w.f.SetCellStyle(sheetName, cell, cell, style); err != nil {
			w.err = fmt.Errorf("style %s: %w", cell, err)
		}
	}
}

func colName(n int) string {
	name, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return "A"
	}
	return name
}
