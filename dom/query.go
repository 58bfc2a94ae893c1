package dom

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/markup/dom/attr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// QueryAll returns e and all descendants of e matching a CSS selector, in
// document order.
func (e *Element) QueryAll(selector string) ([]*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", selector, err)
	}
	m := mirror(e)
	nodes := sel.MatchAll(m.root)
	found := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if el, ok := m.elements[n]; ok {
			found = append(found, el)
		}
	}
	tracer().Debugf("query %q on %s: %d matches", selector, e, len(found))
	return found, nil
}

// Query returns the first element at or below e matching a CSS selector,
// or nil.
func (e *Element) Query(selector string) (*Element, error) {
	found, err := e.QueryAll(selector)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return found[0], nil
}

// htmlMirror is a throw-away copy of an element tree in terms of
// golang.org/x/net/html nodes, as needed for selector matching.
type htmlMirror struct {
	root     *html.Node
	elements map[*html.Node]*Element
}

func mirror(e *Element) htmlMirror {
	m := htmlMirror{elements: make(map[*html.Node]*Element)}
	m.root = m.node(e)
	return m
}

func (m htmlMirror) node(e *Element) *html.Node {
	if e.kind == commentNode {
		return &html.Node{Type: html.CommentNode, Data: e.text}
	}
	tag := strings.ToLower(e.tag)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, a := range e.attrs {
		if val, ok := mirrorValue(a); ok {
			n.Attr = append(n.Attr, html.Attribute{Key: a.Name(), Val: val})
		}
	}
	if e.text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: e.text})
	}
	for _, ch := range e.Children() {
		n.AppendChild(m.node(ch))
	}
	m.elements[n] = e
	return n
}

// mirrorValue returns the unescaped attribute value as seen by a parser.
func mirrorValue(a *attr.Attribute) (string, bool) {
	switch v := a.Value().(type) {
	case nil:
		return "", false
	case attr.Flag:
		return "", bool(v)
	case attr.String:
		return string(v), true
	default:
		return v.Format(), true
	}
}
