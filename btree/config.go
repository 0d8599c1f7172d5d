package btree

import "fmt"

// DefaultNodeSize is a reasonable node capacity for general purpose trees.
const DefaultNodeSize = 16

// DefaultSplitPoint returns the index of the last key an over-full node keeps
// when it splits. The key at the following position is promoted to the parent.
//
// For a capacity of n the node keeps n/2+1 keys, which results in a slightly
// left-heavy split.
func DefaultSplitPoint(nodeSize int) int {
	return nodeSize / 2
}

// Config configures a B-tree.
type Config struct {
	// NodeSize is the maximum number of key/value pairs a node may hold before
	// it has to split. It is fixed for the lifetime of a tree and must be >= 1.
	NodeSize int
	// SplitPoint selects the last position a splitting node keeps. Results are
	// clamped to [0, NodeSize-1]. Defaults to DefaultSplitPoint.
	SplitPoint func(nodeSize int) int
	// Observer, if set, is notified synchronously about splits and root growth.
	Observer Observer
}

func (cfg Config) normalized() Config {
	if cfg.SplitPoint == nil {
		cfg.SplitPoint = DefaultSplitPoint
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.NodeSize < 1 {
		return fmt.Errorf("%w: node size must be >= 1, is %d", ErrInvalidConfig, cfg.NodeSize)
	}
	return nil
}

// splitPoint returns the clamped split position for the configured capacity.
func (cfg Config) splitPoint() int {
	s := cfg.SplitPoint(cfg.NodeSize)
	if s < 0 {
		return 0
	}
	if s > cfg.NodeSize-1 {
		return cfg.NodeSize - 1
	}
	return s
}
