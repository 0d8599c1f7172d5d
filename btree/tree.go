package btree

import (
	"cmp"
	"fmt"
)

// Tree is an ordered key/value container organized as a B-tree.
//
// K is the key type, ordered by the tree's comparison function, V is the value
// type. A tree always owns a root node; an empty tree is a single empty leaf.
type Tree[K, V any] struct {
	cfg    Config
	shape  shape[K]
	root   *node[K, V]
	height int // 1 means a leaf root
	size   int
}

// New creates an empty tree for naturally ordered keys.
func New[K cmp.Ordered, V any](cfg Config) (*Tree[K, V], error) {
	return NewWithCompare[K, V](cfg, cmp.Compare[K])
}

// NewWithCompare creates an empty tree ordering keys by compare, which has to
// establish a total order and return a negative number for a < b, zero for
// a == b and a positive number for a > b.
func NewWithCompare[K, V any](cfg Config, compare func(a, b K) int) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if compare == nil {
		return nil, fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{
		cfg: cfg,
		shape: shape[K]{
			compare:  compare,
			nodeSize: cfg.NodeSize,
			split:    cfg.splitPoint(),
			observer: cfg.Observer,
		},
		root:   &node[K, V]{},
		height: 1,
	}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config {
	return t.cfg
}

// NodeSize returns the maximum number of keys a node holds before it splits.
func (t *Tree[K, V]) NodeSize() int {
	return t.shape.nodeSize
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.Len() == 0
}

// Height returns the number of levels of the tree. A tree consisting of a
// single (possibly empty) leaf has height 1.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Insert adds key with value to the tree and reports whether it did so.
//
// Duplicate keys are rejected: if key is already present, Insert returns false
// and neither the tree nor the value stored for key is changed.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	assert(t != nil && t.root != nil, "Insert called on uninitialized tree")
	ok, sibling := t.root.insert(key, value, &t.shape, 0)
	if !ok {
		tracer().Debugf("btree: rejected duplicate key %v", key)
		return false
	}
	t.size++
	if sibling != nil {
		t.growRoot(sibling)
	}
	return true
}

// growRoot replaces the root by a new one holding the separator stripped from
// sibling, with the old root and sibling as its two children. This is the only
// place where the tree gets taller.
func (t *Tree[K, V]) growRoot(sibling *node[K, V]) {
	sepKey, sepValue := sibling.popFirst()
	t.root = &node[K, V]{
		keys:     []K{sepKey},
		values:   []V{sepValue},
		children: []*node[K, V]{t.root, sibling},
	}
	t.height++
	tracer().Debugf("btree: grew root, height is now %d", t.height)
	if t.shape.observer != nil {
		t.shape.observer.Grow(GrowEvent{Height: t.height})
	}
}
