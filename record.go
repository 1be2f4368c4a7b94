package wxhist

import (
	"strings"
	"time"
)

// Separators used when formatting day records.
const (
	FieldSeparator  = ","
	LineSeparator   = "<br />"
	RecordSeparator = "\n"
)

// Table is the observation table of one page: the header cell texts and, for
// every body row, its cells.
type Table struct {
	Header []string
	Rows   [][]*Node
}

// DayRecord is the extracted observations of one day.
type DayRecord struct {
	Date   time.Time
	Header []string
	Rows   [][]string
}

// String formats the record as the header line followed by one line per
// row. Every line after the header is terminated by LineSeparator.
func (r *DayRecord) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(r.Header, FieldSeparator))
	b.WriteString(LineSeparator)
	for _, row := range r.Rows {
		b.WriteString(strings.Join(row, FieldSeparator))
		b.WriteString(LineSeparator)
	}
	return b.String()
}

// Assemble builds the day record for a parsed table.
//
// The column mapping is derived from the table's own header. Fields the page
// does not carry are left out of the header and every row, so the number of
// columns varies between days. A row too short for the mapping makes the
// whole page unusable.
func Assemble(date time.Time, t *Table) (*DayRecord, error) {
	if t == nil {
		return nil, Errorf(EUNUSABLE, "no observation table")
	}

	m := ResolveColumns(t.Header)
	out := m.Output()

	rec := &DayRecord{
		Date:   date,
		Header: make([]string, 0, len(out)),
		Rows:   make([][]string, 0, len(t.Rows)),
	}
	for _, f := range out {
		rec.Header = append(rec.Header, strings.TrimSpace(t.Header[m[f]]))
	}

	for i, cells := range t.Rows {
		row := make([]string, 0, len(out))
		for _, f := range out {
			idx := m[f]
			if idx >= len(cells) {
				return nil, Errorf(EUNUSABLE, "row %d has %d cells, %s is in column %d", i, len(cells), f, idx)
			}
			row = append(row, Normalize(CellText(cells[idx]), f))
		}
		rec.Rows = append(rec.Rows, row)
	}

	return rec, nil
}
