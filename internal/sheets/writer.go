// =============================================================================
// POS to XLSX Export - Workbook Writer
// =============================================================================
//
// This module wraps excelize with the small tabular-output surface the
// importers need:
//
//   - Open-or-create the output workbook
//   - Clear-or-create a named sheet (idempotent rewrites)
//   - Write a header row
//   - Write a data row at a 1-based data index (data row 1 lands on
//     worksheet row 2, under the header)
//   - Auto-size columns from their content after all writes
//   - Save the workbook
//
// The writer tracks the header width of each sheet it resets and rejects data
// rows of any other width, so a schema drift between the flatteners and the
// header definitions fails loudly instead of writing ragged sheets.
//
// =============================================================================

package sheets

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize creates in a brand-new workbook. It is
// removed as soon as a real sheet exists.
const defaultSheet = "Sheet1"

// Column widths are clamped so one oversized JSON blob cannot stretch a
// column across the screen.
const (
	minColWidth = 10
	maxColWidth = 60
)

// Writer writes flat rows into sheets of a single XLSX workbook.
type Writer struct {
	file *excelize.File
	path string

	// columns is the header width per sheet, recorded by WriteHeader.
	columns map[string]int

	// widths is the running max content length per column per sheet,
	// used by AutoSize.
	widths map[string][]int
}

// Open opens the workbook at path, creating a new one if the file does not
// exist yet. The caller must Save to persist any changes.
func Open(path string) (*Writer, error) {
	var f *excelize.File
	if _, err := os.Stat(path); err == nil {
		f, err = excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("opening workbook %s: %w", path, err)
		}
	} else {
		f = excelize.NewFile()
	}

	return &Writer{
		file:    f,
		path:    path,
		columns: make(map[string]int),
		widths:  make(map[string][]int),
	}, nil
}

// ResetSheet clears-or-creates the named sheet. An existing sheet is replaced
// wholesale rather than cell-cleared, which is what makes re-running an
// import idempotent.
func (w *Writer) ResetSheet(name string) error {
	idx, err := w.file.GetSheetIndex(name)
	if err != nil {
		return fmt.Errorf("resetting sheet %s: %w", name, err)
	}

	if idx != -1 {
		// A workbook must keep at least one sheet, so the old sheet is
		// renamed aside before its replacement is created.
		tmp := name + " (old)"
		if err := w.file.SetSheetName(name, tmp); err != nil {
			return fmt.Errorf("resetting sheet %s: %w", name, err)
		}
		if _, err := w.file.NewSheet(name); err != nil {
			return fmt.Errorf("resetting sheet %s: %w", name, err)
		}
		if err := w.file.DeleteSheet(tmp); err != nil {
			return fmt.Errorf("resetting sheet %s: %w", name, err)
		}
	} else {
		if _, err := w.file.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	// Drop the placeholder sheet from a brand-new workbook once a real
	// sheet exists.
	if name != defaultSheet {
		if di, _ := w.file.GetSheetIndex(defaultSheet); di != -1 {
			_ = w.file.DeleteSheet(defaultSheet)
		}
	}

	delete(w.columns, name)
	delete(w.widths, name)
	return nil
}

// WriteHeader writes the header row and pins the sheet's column count.
func (w *Writer) WriteHeader(sheet string, headers []string) error {
	if err := w.writeAt(sheet, 1, headers); err != nil {
		return err
	}
	w.columns[sheet] = len(headers)
	return nil
}

// WriteRow writes one data row. index is 1-based: the first data row is 1 and
// lands on worksheet row 2.
func (w *Writer) WriteRow(sheet string, index int, row []string) error {
	if index < 1 {
		return fmt.Errorf("sheet %s: data row index %d is not 1-based", sheet, index)
	}
	if want, ok := w.columns[sheet]; ok && len(row) != want {
		return fmt.Errorf("sheet %s: row has %d cells, header has %d", sheet, len(row), want)
	}
	return w.writeAt(sheet, index+1, row)
}

// writeAt writes cells on an absolute worksheet row and records their widths.
func (w *Writer) writeAt(sheet string, worksheetRow int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, worksheetRow)
	if err != nil {
		return err
	}

	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := w.file.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing row %d of sheet %s: %w", worksheetRow, sheet, err)
	}

	widths := w.widths[sheet]
	for len(widths) < len(cells) {
		widths = append(widths, 0)
	}
	for i, c := range cells {
		if len(c) > widths[i] {
			widths[i] = len(c)
		}
	}
	w.widths[sheet] = widths
	return nil
}

// AutoSize sets every column of the sheet to fit its widest cell, clamped to
// [minColWidth, maxColWidth]. Call after all rows are written.
func (w *Writer) AutoSize(sheet string) error {
	for i, width := range w.widths[sheet] {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}

		target := float64(width + 2)
		if target < minColWidth {
			target = minColWidth
		}
		if target > maxColWidth {
			target = maxColWidth
		}
		if err := w.file.SetColWidth(sheet, col, col, target); err != nil {
			return fmt.Errorf("sizing column %s of sheet %s: %w", col, sheet, err)
		}
	}
	return nil
}

// Rows returns the sheet contents as strings, header row included.
func (w *Writer) Rows(sheet string) ([][]string, error) {
	return w.file.GetRows(sheet)
}

// Save persists the workbook to its path.
func (w *Writer) Save() error {
	if err := w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", w.path, err)
	}
	return nil
}

// Close releases the underlying file resources.
func (w *Writer) Close() error {
	return w.file.Close()
}
