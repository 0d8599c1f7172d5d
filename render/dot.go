package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/ordtree/btree"
)

// Dot outputs the internal structure of a tree in Graphviz DOT format.
// Every node becomes a record showing its keys; edges connect nodes in child
// order.
func Dot[K, V any](w io.Writer, tree *btree.Tree[K, V]) error {
	var nodelist, edgelist strings.Builder
	tree.Walk(func(v btree.NodeView[K, V]) bool {
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\",%s];\n", v.ID(), dotLabel(v.Keys()), nodeDotStyles(v.IsLeaf()))
		for _, child := range v.ChildIDs() {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", v.ID(), child)
		}
		return true
	})
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// dotEscaper escapes characters with a special meaning inside quoted DOT strings.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func dotLabel[K any](keys []K) string {
	if len(keys) == 0 {
		return "∅"
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = dotEscaper.Replace(fmt.Sprint(k))
	}
	return strings.Join(parts, " | ")
}

func nodeDotStyles(leaf bool) string {
	if leaf {
		return "shape=box,style=filled,fillcolor=\"#e0f0e0\""
	}
	return "shape=box,style=\"filled,rounded\",fillcolor=\"#f0e0f0\""
}
