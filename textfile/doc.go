/*
Package textfile provides API helpers to load UTF-8 text files of key/value
lines into B-trees.

Every non-empty line not starting with '#' holds a key, optionally followed by
whitespace and a value. Lines are inserted in file order, one key at a time;
repeated keys keep their first value and are counted as duplicates.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}
