package btree

import "slices"

// node is the recursive unit of storage. keys are strictly increasing and
// values[i] belongs to keys[i]. A leaf has no children, an internal node has
// exactly len(keys)+1 children, each exclusively owned by this node.
type node[K, V any] struct {
	keys     []K
	values   []V
	children []*node[K, V]
}

func (n *node[K, V]) isLeaf() bool { return len(n.children) == 0 }

// shape carries the per-tree parameters every node insertion needs.
type shape[K any] struct {
	compare  func(a, b K) int
	nodeSize int
	split    int // last position a splitting node keeps
	observer Observer
}

// search returns the position of key within n.keys, or the position where it
// would have to be inserted. For internal nodes the latter coincides with the
// index of the child to descend into.
func (n *node[K, V]) search(key K, compare func(a, b K) int) (int, bool) {
	return slices.BinarySearchFunc(n.keys, key, compare)
}

// insert puts key/value into the subtree rooted at n.
//
// It returns false if key is already present on the search path; nothing is
// changed in this case. If n had to split, the new right sibling is returned
// as overflow. Its first key/value pair is the separator the caller has to
// strip and promote.
func (n *node[K, V]) insert(key K, value V, sh *shape[K], depth int) (bool, *node[K, V]) {
	idx, found := n.search(key, sh.compare)
	if found {
		return false, nil
	}
	if n.isLeaf() {
		n.keys = slices.Insert(n.keys, idx, key)
		n.values = slices.Insert(n.values, idx, value)
		return true, n.splitIfFull(sh, depth)
	}
	assert(idx < len(n.children), "internal node is missing a child for insert position")
	ok, sibling := n.children[idx].insert(key, value, sh, depth+1)
	if !ok {
		return false, nil
	}
	if sibling == nil {
		return true, nil
	}
	sepKey, sepValue := sibling.popFirst()
	n.keys = slices.Insert(n.keys, idx, sepKey)
	n.values = slices.Insert(n.values, idx, sepValue)
	n.children = slices.Insert(n.children, idx+1, sibling)
	return true, n.splitIfFull(sh, depth)
}

// splitIfFull splits n if it holds more than sh.nodeSize keys. n keeps the
// keys [0, split], the returned sibling receives the rest. For internal nodes
// n keeps children [0, split+1], leaving the sibling with as many children as
// keys. Fanout is consistent again once the caller strips the separator.
func (n *node[K, V]) splitIfFull(sh *shape[K], depth int) *node[K, V] {
	if len(n.keys) <= sh.nodeSize {
		return nil
	}
	at := sh.split + 1
	sibling := &node[K, V]{
		keys:   slices.Clone(n.keys[at:]),
		values: slices.Clone(n.values[at:]),
	}
	clear(n.keys[at:])
	clear(n.values[at:])
	n.keys = slices.Clip(n.keys[:at])
	n.values = slices.Clip(n.values[:at])
	if !n.isLeaf() {
		sibling.children = slices.Clone(n.children[at+1:])
		clear(n.children[at+1:])
		n.children = slices.Clip(n.children[:at+1])
	}
	tracer().Debugf("btree: split node at depth %d, kept %d, moved %d", depth, len(n.keys), len(sibling.keys))
	if sh.observer != nil {
		sh.observer.Split(SplitEvent{
			Depth: depth,
			Leaf:  n.isLeaf(),
			Kept:  len(n.keys),
			Moved: len(sibling.keys),
		})
	}
	return sibling
}

// popFirst removes and returns the first key/value pair of n.
func (n *node[K, V]) popFirst() (K, V) {
	assert(len(n.keys) > 0, "popFirst called on node without keys")
	key, value := n.keys[0], n.values[0]
	n.keys = slices.Delete(n.keys, 0, 1)
	n.values = slices.Delete(n.values, 0, 1)
	return key, value
}

// count returns the number of keys stored in the subtree rooted at n.
func (n *node[K, V]) count() int {
	c := len(n.keys)
	for _, child := range n.children {
		c += child.count()
	}
	return c
}
