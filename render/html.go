package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/ordtree/btree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes the tree as a fragment of nested HTML lists. Every node becomes
// a <li> with its keys in a <span>; the children of inner nodes are nested in
// a <ul> below the keys.
func HTML[K, V any](w io.Writer, tree *btree.Tree[K, V]) error {
	top := element(atom.Ul, "class", "btree")
	lists := map[int]*html.Node{} // node ID -> list receiving the node
	tree.Walk(func(v btree.NodeView[K, V]) bool {
		parent := top
		if ul, ok := lists[v.ID()]; ok {
			parent = ul
		}
		class := "inner"
		if v.IsLeaf() {
			class = "leaf"
		}
		li := element(atom.Li, "class", class)
		span := element(atom.Span, "class", "keys")
		span.AppendChild(&html.Node{Type: html.TextNode, Data: htmlKeys(v.Keys())})
		li.AppendChild(span)
		parent.AppendChild(li)
		if !v.IsLeaf() {
			ul := element(atom.Ul)
			li.AppendChild(ul)
			for _, child := range v.ChildIDs() {
				lists[child] = ul
			}
		}
		return true
	})
	if err := html.Render(w, top); err != nil {
		tracer().Errorf("render: HTML output failed: %v", err)
		return err
	}
	return nil
}

// element creates an element node with attributes given as name/value pairs.
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func htmlKeys[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return strings.Join(parts, " ")
}
