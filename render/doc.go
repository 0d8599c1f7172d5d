/*
Package render outputs the internal structure of a B-tree for debugging
purposes.

Three formats are supported: an indented plain-text dump (colorized when
written to a terminal), Graphviz DOT, and an HTML fragment of nested lists.
None of them is meant to be parsed back.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}
