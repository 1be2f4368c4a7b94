package wxhist

import "strings"

// Node is a minimal element tree for one table cell. Element nodes have a
// Tag; text nodes have an empty Tag and carry Text.
type Node struct {
	Tag      string
	Class    string
	Text     string
	Children []*Node
}

// Element returns an element node.
func Element(tag, class string, children ...*Node) *Node {
	return &Node{Tag: tag, Class: class, Children: children}
}

// Text returns a text node.
func Text(s string) *Node {
	return &Node{Text: s}
}

// InnerText concatenates the text of n and all of its descendants in
// document order.
func (n *Node) InnerText() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	b.WriteString(n.Text)
	for _, c := range n.Children {
		c.writeText(b)
	}
}

// valueClass marks the span that carries just the measurement.
const valueClass = "wx-value"

// ValueText returns the text of the cell's value element. It succeeds only
// when the cell has exactly one descendant span whose class contains
// "wx-value"; zero or several give ("", false).
func ValueText(cell *Node) (string, bool) {
	if cell == nil {
		return "", false
	}
	var found []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.Children {
			if c.Tag == "span" && strings.Contains(c.Class, valueClass) {
				found = append(found, c)
			}
			walk(c)
		}
	}
	walk(cell)
	if len(found) != 1 {
		return "", false
	}
	return found[0].InnerText(), true
}

// CellText returns the authoritative raw text of a cell: the value element
// when there is exactly one, otherwise the whole cell.
func CellText(cell *Node) string {
	if s, ok := ValueText(cell); ok {
		return s
	}
	return cell.InnerText()
}
