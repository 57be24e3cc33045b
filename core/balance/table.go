package balance

import "strings"

// Row is a single labelled row of a sheet. Cells are aligned with the
// owning Table's Columns slice; missing cells are 0.0.
type Row struct {
	// Label is the trimmed sector/technology label from the first column.
	Label string
	// Cells holds one value per commodity column.
	Cells []float64
}

// Table is one normalized sheet: commodity columns plus labelled rows.
type Table struct {
	// Columns are the trimmed commodity/fuel column labels.
	Columns []string
	// Rows are the sector/technology rows in sheet order.
	Rows []Row
}

// Dataset maps the raw sheet name (e.g. "01 - Costa Rica") to its table.
type Dataset map[string]Table

// Cell returns the value at the given row and column index.
// Out-of-range lookups return 0.0, matching the fill-missing-with-zero
// normalization contract.
func (t Table) Cell(row, col int) float64 {
	if row < 0 || row >= len(t.Rows) {
		return 0
	}
	cells := t.Rows[row].Cells
	if col < 0 || col >= len(cells) {
		return 0
	}
	return cells[col]
}

// SheetCountry extracts the country name from a sheet key of the form
// "<prefix> - <country>". The second return is false when the key does not
// follow that convention; such sheets are skipped by the builders.
func SheetCountry(sheetKey string) (string, bool) {
	parts := strings.SplitN(sheetKey, " - ", 2)
	if len(parts) != 2 {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
