package flattree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"slices"

	"github.com/guiguan/caster"
)

// sizeForParallelScan is the node count above which linear scans over the
// parent-index sequence are spread over several goroutines. Both paths
// produce identical results.
const sizeForParallelScan = 2000

// Tree is a flat tree container for values of type T.
//
// Nodes are held in two lock-step slices: one for values, one for parent
// positions. The root is the node at position 0 and is always present.
// Positions are transient handles; see the package documentation for the
// relocation caused by Remove.
//
// A Tree must be created by New or FromSlices; the zero value is not a
// valid tree (it would have no root).
type Tree[T any] struct {
	values  []T            // node values
	parents []int          // parent position per node, parents[0] == 0
	cast    *caster.Caster // change feed broadcaster, nil until Subscribe
}

// New creates a tree holding just a root node with the given value.
func New[T any](root T) *Tree[T] {
	return &Tree[T]{
		values:  []T{root},
		parents: []int{0},
	}
}

// FromSlices creates a tree in bulk from a slice of node values and a slice
// of parent positions. Both slices must have the same, non-zero length and
// parents[0] must be 0.
//
// The entries beyond position 0 are taken at face value: FromSlices does not
// verify that every parent position refers to an existing node. That part of
// the invariant remains the caller's responsibility, matching the contract
// of incremental insertion where every parent must already be present.
//
// The input slices are copied; the tree does not alias caller memory.
func FromSlices[T any](values []T, parents []int) (*Tree[T], error) {
	if len(values) != len(parents) {
		tracer().Errorf("flattree.FromSlices: %d values vs %d parent indices", len(values), len(parents))
		return nil, ErrLengthMismatch
	}
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	if parents[0] != 0 {
		return nil, ErrRootConvention
	}
	return &Tree[T]{
		values:  slices.Clone(values),
		parents: slices.Clone(parents),
	}, nil
}

// Size returns the number of nodes in the tree, including the root.
func (t *Tree[T]) Size() int {
	return len(t.values)
}

// IsEmpty reports whether the tree holds only its root node.
func (t *Tree[T]) IsEmpty() bool {
	return len(t.values) == 1
}

// Cap returns the number of nodes the tree can hold without re-allocating.
func (t *Tree[T]) Cap() int {
	return cap(t.values)
}

// Reserve grows the underlying storage to hold at least n nodes.
func (t *Tree[T]) Reserve(n int) {
	t.values = slices.Grow(t.values, max(0, n-len(t.values)))
	t.parents = slices.Grow(t.parents, max(0, n-len(t.parents)))
}

// ShrinkToFit releases unused storage capacity.
func (t *Tree[T]) ShrinkToFit() {
	t.values = slices.Clip(t.values)
	t.parents = slices.Clip(t.parents)
}

// Clear resets the tree to a single-node tree, retaining the current root
// value.
func (t *Tree[T]) Clear() {
	root := t.values[0]
	t.values = t.values[:0]
	t.parents = t.parents[:0]
	t.values = append(t.values, root)
	t.parents = append(t.parents, 0)
	t.publish(Event{Op: OpClear, Index: 0, Count: 1})
}

// Resize truncates or extends both backing slices to hold exactly n nodes.
//
// This is a low-level escape hatch, not a safe append: extension produces
// zero values with unspecified parent wiring, and callers must treat the new
// positions as not yet part of the tree until they assign a parent via Set
// semantics of their own. Resizing to 0 is a contract violation, as a tree
// always keeps its root.
func (t *Tree[T]) Resize(n int) {
	ensure(n > 0, "flat tree cannot be resized below its root node")
	if n <= len(t.values) {
		t.values = t.values[:n]
		t.parents = t.parents[:n]
	} else {
		t.values = append(t.values, make([]T, n-len(t.values))...)
		t.parents = append(t.parents, make([]int, n-len(t.parents))...)
	}
	t.publish(Event{Op: OpResize, Index: 0, Count: n})
}

// At returns the value of the node at position i.
//
// This is element access on existing positions only; i out of range is a
// contract violation.
func (t *Tree[T]) At(i int) T {
	ensure(t.isValid(), "flat tree structure is invalid")
	ensure(i >= 0 && i < len(t.values), "node index is invalid")
	return t.values[i]
}

// Set overwrites the value of the node at position i. Like At, it is not an
// insertion path: i must refer to an existing node.
func (t *Tree[T]) Set(i int, value T) {
	ensure(t.isValid(), "flat tree structure is invalid")
	ensure(i >= 0 && i < len(t.values), "node index is invalid")
	t.values[i] = value
}

// isValid checks structural tree invariants: both backing slices agree in
// length and the root convention is intact. Operations re-check this
// defensively and refuse to act on a corrupted tree; a violation cannot be
// produced through the public API and indicates a prior invariant breach.
func (t *Tree[T]) isValid() bool {
	return len(t.values) == len(t.parents) &&
		len(t.parents) > 0 && t.parents[0] == 0
}

// IndexSink collects node positions produced by the descendant queries.
// Implementations only need to support appending at the end; the queries
// never read a sink back.
type IndexSink interface {
	Append(index int)
}

// IndexSlice adapts a plain int slice to the IndexSink interface.
//
//	var kids flattree.IndexSlice
//	tree.Descendants(2, &kids)
type IndexSlice []int

// Append collects one node position. Part of interface IndexSink.
func (s *IndexSlice) Append(index int) {
	*s = append(*s, index)
}
