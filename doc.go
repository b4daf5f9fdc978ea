/*
Package flattree implements a general purpose flat tree container.

Flat trees

A flat tree stores every node of a tree in one contiguous sequence, side by
side with a second sequence of equal length holding each node's parent
position. Node number 0 is the root; it is always present and its parent
entry is 0 by convention. Every other entry i carries the position of the
node it hangs under.

This layout trades pointer-chasing for index arithmetic. All node values
live in a single slice, so iterating over the complete node set is a linear
walk, bulk operations vectorize naturally, and the whole structure is
trivially cheap to copy. Child lookups are linear scans over the parent
sequence; above a size threshold the scans fan out over several goroutines.

The price of contiguity is identity: removal uses a swap-with-last strategy,
so deleting a node in the middle relocates whatever node held the last
position. A node's index is a transient handle, not a stable id. Callers
must not keep indices across a call to Remove; re-derive them from the tree
afterwards. If stable identity is required, put an indirection layer (a
dense id-to-slot map) on top of this package.

A tree is never empty. It is created with a root value, or in bulk from two
equal-length slices, and always retains at least the root: Clear shrinks
back to a single-node tree, and Remove refuses to touch position 0.

Concurrency

The tree is a passive data structure with single-writer discipline: no
mutating operation is internally synchronized. The read-only scans and the
parallel mode of Traverse dispatch work over an index snapshot taken up
front, so concurrent callback invocations touch disjoint elements. But
interleaving external writers with any other operation is undefined.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package flattree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer. The accessor cannot carry the
// customary single-letter name here: inside generic code it would be
// shadowed by the type parameter T.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the flattree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrLengthMismatch signals bulk construction from two slices of differing
// length.
const ErrLengthMismatch = TreeError("value and parent-index slices differ in length")

// ErrRootConvention signals bulk construction input whose first parent entry
// is not 0. The root must be the first node and is self-referential by
// convention.
const ErrRootConvention = TreeError("root node must be the first node in tree")

// ErrEmptyInput signals bulk construction from empty slices. A flat tree
// always holds at least a root node.
const ErrEmptyInput = TreeError("a tree cannot be empty; it needs at least a root node")

// ensure panics on violated preconditions. Contract violations are
// programming errors, not recoverable runtime conditions.
func ensure(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
