package wxhist

import "strings"

// NotPresent is the column index of a field the page does not carry.
const NotPresent = -1

// ColumnMapping holds the physical column index of every field on one page.
// It is a value; each page gets its own.
type ColumnMapping [fieldCount]int

// DefaultColumnMapping maps every field to its own ordinal. Wind chill is
// never mapped.
func DefaultColumnMapping() ColumnMapping {
	var m ColumnMapping
	for f := Field(0); f < fieldCount; f++ {
		m[f] = int(f)
	}
	m[FieldWindChill] = NotPresent
	return m
}

// Index returns the column of f, or NotPresent.
func (m ColumnMapping) Index(f Field) int {
	if !f.Valid() {
		return NotPresent
	}
	return m[f]
}

// Present reports whether f was found on the page.
func (m ColumnMapping) Present(f Field) bool {
	return m.Index(f) != NotPresent
}

// Output returns the fields that appear in a day record for this mapping, in
// output order: present and not excluded.
func (m ColumnMapping) Output() []Field {
	var a []Field
	for f := Field(0); f < fieldCount; f++ {
		if m[f] != NotPresent && !f.Excluded() {
			a = append(a, f)
		}
	}
	return a
}

// ResolveColumns derives a mapping from a page's header cell texts.
//
// For each field the keywords are tried in priority order and, for each
// keyword, the headers left to right. The first case-insensitive match wins,
// so an earlier keyword beats a later one even when the later keyword sits in
// an earlier column. Two fields resolving to the same column is not checked.
func ResolveColumns(headers []string) ColumnMapping {
	var m ColumnMapping
	for f := Field(0); f < fieldCount; f++ {
		m[f] = findColumn(fields[f].keywords, headers)
	}
	return m
}

func findColumn(keywords, headers []string) int {
	for _, kw := range keywords {
		for i, h := range headers {
			if strings.EqualFold(kw, strings.TrimSpace(h)) {
				return i
			}
		}
	}
	return NotPresent
}
