package btree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and should be used in tests.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.root == nil {
		return fmt.Errorf("%w: tree has no root", ErrInvariant)
	}
	b := bounds[K]{}
	count, height, err := t.checkNode(t.root, b)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariant, height, t.height)
	}
	if count != t.size {
		return fmt.Errorf("%w: key count mismatch (%d != %d)", ErrInvariant, count, t.size)
	}
	return nil
}

// bounds are the exclusive key limits a subtree inherits from its ancestors'
// separators.
type bounds[K any] struct {
	lower, upper       K
	hasLower, hasUpper bool
}

func (t *Tree[K, V]) checkNode(n *node[K, V], b bounds[K]) (count int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariant)
	}
	if len(n.values) != len(n.keys) {
		return 0, 0, fmt.Errorf("%w: %d values for %d keys", ErrInvariant, len(n.values), len(n.keys))
	}
	if len(n.keys) > t.shape.nodeSize {
		return 0, 0, fmt.Errorf("%w: key count %d exceeds node size %d",
			ErrInvariant, len(n.keys), t.shape.nodeSize)
	}
	cmp := t.shape.compare
	for i, key := range n.keys {
		if i > 0 && cmp(n.keys[i-1], key) >= 0 {
			return 0, 0, fmt.Errorf("%w: keys not strictly increasing at index %d", ErrInvariant, i)
		}
		if b.hasLower && cmp(key, b.lower) <= 0 {
			return 0, 0, fmt.Errorf("%w: key %v not above separator %v", ErrInvariant, key, b.lower)
		}
		if b.hasUpper && cmp(key, b.upper) >= 0 {
			return 0, 0, fmt.Errorf("%w: key %v not below separator %v", ErrInvariant, key, b.upper)
		}
	}
	if n.isLeaf() {
		return len(n.keys), 1, nil
	}
	if len(n.children) != len(n.keys)+1 {
		return 0, 0, fmt.Errorf("%w: internal node has %d children for %d keys",
			ErrInvariant, len(n.children), len(n.keys))
	}
	count = len(n.keys)
	var childHeight int
	for i, child := range n.children {
		cb := b
		if i > 0 {
			cb.lower, cb.hasLower = n.keys[i-1], true
		}
		if i < len(n.keys) {
			cb.upper, cb.hasUpper = n.keys[i], true
		}
		cCount, cHeight, cErr := t.checkNode(child, cb)
		if cErr != nil {
			return 0, 0, cErr
		}
		count += cCount
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvariant)
		}
	}
	return count, childHeight + 1, nil
}
