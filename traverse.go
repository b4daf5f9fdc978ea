package flattree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ExecutionMode selects how Traverse applies its callback.
type ExecutionMode int

const (
	// Sequential applies the callback one descendant at a time, in the order
	// the descendants have been collected.
	Sequential ExecutionMode = iota
	// Parallel applies the callback concurrently with no ordering guarantee
	// between invocations.
	Parallel
)

// Traverse collects all transitive descendants of startIdx and applies fn to
// each descendant's value. The start node's own value is not visited.
//
// The descendant set is materialized as an index snapshot before the first
// callback runs, so fn never observes a partially collected traversal. With
// startIdx 0 the snapshot covers the whole tree except the root; a start
// node without descendants makes Traverse a no-op, mirroring Remove.
//
// fn receives a pointer to the stored value and may mutate it in place. In
// Parallel mode fn must be safe for concurrent invocation on distinct
// elements: the tree guarantees that every invocation touches a disjoint
// value, so data races can only arise from shared state captured by fn
// itself. The traversal is synchronous either way: all descendants are
// processed before Traverse returns.
func (t *Tree[T]) Traverse(startIdx int, mode ExecutionMode, fn func(value *T)) {
	descendants := make(IndexSlice, 0, len(t.values))
	if !t.AllDescendants(startIdx, &descendants) {
		return
	}
	if mode == Sequential {
		for _, idx := range descendants {
			fn(&t.values[idx])
		}
		return
	}
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, idx := range descendants {
		idx := idx
		g.Go(func() error {
			fn(&t.values[idx])
			return nil
		})
	}
	_ = g.Wait() // callbacks do not fail
}
