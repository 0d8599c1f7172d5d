package btree

// Observer receives structural events from tree insertions.
//
// Events are delivered synchronously, in the order splits happen: bottom-up
// along the insertion path, followed by at most one Grow event.
type Observer interface {
	Split(SplitEvent)
	Grow(GrowEvent)
}

// SplitEvent describes a single node split.
type SplitEvent struct {
	Depth int  // depth of the split node, 0 is the root
	Leaf  bool // true if the split node is a leaf
	Kept  int  // number of keys the node kept
	Moved int  // number of keys moved to the new right sibling, including the separator
}

// GrowEvent describes a root split, making the tree one level taller.
type GrowEvent struct {
	Height int // tree height after growing
}

// ObserverFuncs adapts plain functions to the Observer interface.
// Nil members are ignored.
type ObserverFuncs struct {
	OnSplit func(SplitEvent)
	OnGrow  func(GrowEvent)
}

// Split calls OnSplit, if set (part of interface Observer).
func (o ObserverFuncs) Split(e SplitEvent) {
	if o.OnSplit != nil {
		o.OnSplit(e)
	}
}

// Grow calls OnGrow, if set (part of interface Observer).
func (o ObserverFuncs) Grow(e GrowEvent) {
	if o.OnGrow != nil {
		o.OnGrow(e)
	}
}

var _ Observer = ObserverFuncs{}
