// Package goquery implements wxhist.TableParser on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wxhist"
	"golang.org/x/net/html"
)

// Ensure Parser implements wxhist.TableParser at compile time.
var _ wxhist.TableParser = (*Parser)(nil)

// TableSelector matches the observation table of a daily history page.
const TableSelector = `table[id*="obsTable"]`

// Parser extracts the observation table from daily history pages.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseTable parses the page and returns the first observation table.
// Header texts come from the th cells of the first thead row; rows are
// every tr in the first tbody.
func (p *Parser) ParseTable(s string) (*wxhist.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return nil, wxhist.Errorf(wxhist.EINVALID, "failed to parse HTML: %v", err)
	}

	table := doc.Find(TableSelector).First()
	if table.Length() == 0 {
		return nil, wxhist.Errorf(wxhist.EUNUSABLE, "no observation table")
	}

	headRow := table.Find("thead").First().Find("tr").First()
	if headRow.Length() == 0 {
		return nil, wxhist.Errorf(wxhist.EUNUSABLE, "observation table has no header row")
	}

	body := table.Find("tbody").First()
	if body.Length() == 0 {
		return nil, wxhist.Errorf(wxhist.EUNUSABLE, "observation table has no body")
	}

	t := &wxhist.Table{}
	headRow.Find("th").Each(func(_ int, th *goquery.Selection) {
		t.Header = append(t.Header, th.Text())
	})

	body.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		row := make([]*wxhist.Node, 0, len(t.Header))
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			row = append(row, toNode(td.Get(0)))
		})
		t.Rows = append(t.Rows, row)
	})

	return t, nil
}

// toNode copies an HTML subtree into a wxhist.Node tree, keeping elements
// and text and dropping comments.
func toNode(n *html.Node) *wxhist.Node {
	switch n.Type {
	case html.TextNode:
		return wxhist.Text(n.Data)
	case html.ElementNode:
		el := wxhist.Element(n.Data, attr(n, "class"))
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := toNode(c); child != nil {
				el.Children = append(el.Children, child)
			}
		}
		return el
	default:
		return nil
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
