// Package dataset loads the adverse-events CSV into an immutable in-memory
// table. The table is read wholesale at startup and never mutated, so it is
// safe to share across any number of sequential queries.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Table is an immutable, column-named table of adverse-event records.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// LoadCSV reads a table from a CSV file. The first row names the columns.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return t, nil
}

// Load reads a table from CSV data. Rows shorter than the header are kept,
// with the absent cells treated as missing values.
func Load(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("CSV has no columns")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate CSV column %q", name)
		}
		index[name] = i
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, row)
	}

	return &Table{columns: header, index: index, rows: rows}, nil
}

// Columns returns the column names in file order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Value returns the cell at (row, column). ok is false for an unknown
// column, a row too short to reach the column, or an empty cell — all of
// which count as missing values.
func (t *Table) Value(row int, column string) (string, bool) {
	i, found := t.index[column]
	if !found || row < 0 || row >= len(t.rows) {
		return "", false
	}
	cells := t.rows[row]
	if i >= len(cells) || cells[i] == "" {
		return "", false
	}
	return cells[i], true
}

// RowMap returns one row as a column-name-to-value map, for sample output.
// Missing cells appear as empty strings so every sample row has the full
// column set.
func (t *Table) RowMap(row int) map[string]string {
	if row < 0 || row >= len(t.rows) {
		return nil
	}
	cells := t.rows[row]
	m := make(map[string]string, len(t.columns))
	for i, name := range t.columns {
		if i < len(cells) {
			m[name] = cells[i]
		} else {
			m[name] = ""
		}
	}
	return m
}
