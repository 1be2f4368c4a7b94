package mock

import "github.com/fwojciec/wxhist"

var _ wxhist.TableParser = (*TableParser)(nil)

// TableParser is a mock implementation of wxhist.TableParser.
type TableParser struct {
	ParseTableFn func(html string) (*wxhist.Table, error)
}

func (p *TableParser) ParseTable(html string) (*wxhist.Table, error) {
	return p.ParseTableFn(html)
}
