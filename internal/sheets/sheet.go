// Package sheets exposes a spreadsheet as a list of header-keyed records.
//
// The first row holds the headers, every following row is a record. A
// record's position doubles as its write address: record i lives on sheet
// row i+2. Writing a field whose header does not exist yet appends a new
// column. Every write is followed by a full reload.
package sheets

import (
	"context"
	"strings"
)

// Record is one data row of the sheet.
type Record struct {
	Index  int
	Fields map[string]string
}

// Get returns the trimmed value of header, or "" when the column is absent.
func (r Record) Get(header string) string {
	return strings.TrimSpace(r.Fields[header])
}

// Has reports whether the record carries a column named header.
func (r Record) Has(header string) bool {
	_, ok := r.Fields[header]
	return ok
}

// Row is the 1-based sheet row of the record.
func (r Record) Row() int {
	return r.Index + 2
}

// Sheet is the spreadsheet as seen by the reconciliation loop.
type Sheet interface {
	// Reload fetches the whole sheet again.
	Reload(ctx context.Context) error
	// Records returns the records of the last load.
	Records() []Record
	// SetField writes a single cell of rec and reloads the sheet.
	SetField(ctx context.Context, rec Record, header, value string) error
}

// ColumnName converts a 0-based column index to A1 letters: 0 → A, 26 → AA.
func ColumnName(col int) string {
	var b []byte
	for col >= 0 {
		b = append([]byte{byte('A' + col%26)}, b...)
		col = col/26 - 1
	}
	return string(b)
}

// grid is the in-memory shape shared by the implementations.
type grid struct {
	headers []string
	rows    [][]string
}

func newGrid(values [][]string) grid {
	if len(values) == 0 {
		return grid{}
	}
	g := grid{headers: append([]string(nil), values[0]...)}
	for _, r := range values[1:] {
		g.rows = append(g.rows, append([]string(nil), r...))
	}
	return g
}

func (g grid) records() []Record {
	out := make([]Record, 0, len(g.rows))
	for i, row := range g.rows {
		fields := make(map[string]string, len(g.headers))
		for c, h := range g.headers {
			if c < len(row) {
				fields[h] = row[c]
			} else {
				fields[h] = ""
			}
		}
		out = append(out, Record{Index: i, Fields: fields})
	}
	return out
}

// column returns the index of header and whether it exists. A missing
// header reports the index it would get once appended.
func (g grid) column(header string) (int, bool) {
	for i, h := range g.headers {
		if h == header {
			return i, true
		}
	}
	return len(g.headers), false
}

func (g *grid) appendHeader(header string) {
	g.headers = append(g.headers, header)
}

func (g *grid) set(index, col int, value string) {
	for len(g.rows) <= index {
		g.rows = append(g.rows, nil)
	}
	row := g.rows[index]
	for len(row) <= col {
		row = append(row, "")
	}
	row[col] = value
	g.rows[index] = row
}
