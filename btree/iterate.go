package btree

import "iter"

// All returns an iterator over all key/value pairs in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil || t.root == nil {
			return
		}
		forEachPair(t.root, yield)
	}
}

func forEachPair[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	for i := range n.keys {
		if !n.isLeaf() && !forEachPair(n.children[i], yield) {
			return false
		}
		if !yield(n.keys[i], n.values[i]) {
			return false
		}
	}
	if !n.isLeaf() {
		return forEachPair(n.children[len(n.children)-1], yield)
	}
	return true
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Len())
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// NodeView is a read-only view of a tree node, handed out during Walk.
// Views must not be retained after the walk callback returns.
type NodeView[K, V any] struct {
	n     *node[K, V]
	id    int
	depth int
	first int // id of the first child
}

// ID is a number unique for the node within a single walk. The root has ID 0,
// other nodes are numbered in breadth-first order.
func (v NodeView[K, V]) ID() int { return v.id }

// Depth returns the depth of the node, with the root at depth 0.
func (v NodeView[K, V]) Depth() int { return v.depth }

// IsLeaf reports whether the node has no children.
func (v NodeView[K, V]) IsLeaf() bool { return v.n.isLeaf() }

// Keys returns the node's keys. The slice must not be modified.
func (v NodeView[K, V]) Keys() []K { return v.n.keys }

// Values returns the node's values, aligned with Keys. The slice must not be modified.
func (v NodeView[K, V]) Values() []V { return v.n.values }

// ChildIDs returns the IDs of the node's children, in order.
func (v NodeView[K, V]) ChildIDs() []int {
	ids := make([]int, len(v.n.children))
	for i := range ids {
		ids[i] = v.first + i
	}
	return ids
}

// Walk calls fn for every node of the tree in depth-first pre-order, children
// left to right. Walking stops early if fn returns false.
func (t *Tree[K, V]) Walk(fn func(NodeView[K, V]) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	ids := numberNodes(t.root)
	walkNode(t.root, 0, ids, fn)
}

// numberNodes assigns breadth-first IDs and records, for every node, the ID of
// its first child.
func numberNodes[K, V any](root *node[K, V]) map[*node[K, V]][2]int {
	ids := make(map[*node[K, V]][2]int)
	queue := []*node[K, V]{root}
	next := 1
	for i := 0; i < len(queue); i++ {
		n := queue[i]
		ids[n] = [2]int{i, next}
		next += len(n.children)
		queue = append(queue, n.children...)
	}
	return ids
}

func walkNode[K, V any](n *node[K, V], depth int, ids map[*node[K, V]][2]int, fn func(NodeView[K, V]) bool) bool {
	id := ids[n]
	if !fn(NodeView[K, V]{n: n, id: id[0], depth: depth, first: id[1]}) {
		return false
	}
	for _, child := range n.children {
		if !walkNode(child, depth+1, ids, fn) {
			return false
		}
	}
	return true
}
