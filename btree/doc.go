/*
Package btree provides an in-memory, ordered key/value container organized as a
classic B-tree.

Every key lives at exactly one level of the tree: a key promoted into an
internal node during a split is removed from the subtree it came from. This is
different from a B+ tree, where leaves hold all keys and inner keys are copies.

The package currently concentrates on insertion:
  - ordered single-key insert with duplicate rejection (the first value wins),
  - node splitting at a configurable capacity, with a tunable split point,
  - root growth as the only event increasing the tree height,
  - an in-order walk and a structural walk for verification and rendering,
  - an invariants checker (`Check`) intended for tests,
  - optional structural events (`Observer`) for splits and root growth.

Lookup, range scans, deletion and persistence are not part of the package.
A Tree is not safe for concurrent use; clients have to provide external
synchronization if they share a tree between goroutines.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
