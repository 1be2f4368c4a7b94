package wxhist

// TableParser locates the observation table in an HTML page.
type TableParser interface {
	// ParseTable returns the header texts and body rows of the page's
	// observation table. Returns EUNUSABLE if the table, its header row or
	// its body is missing.
	ParseTable(html string) (*Table, error)
}
