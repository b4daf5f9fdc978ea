package flattree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"runtime"
	"slices"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DoesIndexExist reports whether some node currently claims index as its
// parent, i.e. whether index appears anywhere in the parent-index sequence.
//
// Note that this is not a range check against Size: a freshly inserted leaf
// exists as a position but no node points to it yet. The root's
// self-referential entry makes DoesIndexExist(0) hold for every tree.
func (t *Tree[T]) DoesIndexExist(index int) bool {
	if len(t.parents) < sizeForParallelScan {
		return slices.Contains(t.parents, index)
	}
	return t.containsParallel(index)
}

// IsLeaf reports whether the node at position index has no immediate
// children. index out of range is a contract violation.
func (t *Tree[T]) IsLeaf(index int) bool {
	ensure(index >= 0 && index < len(t.parents), "node index is invalid")
	return t.NumOfDescendants(index) == 0
}

// NumOfDescendants returns the number of first-generation descendants of the
// node at parentIdx. The root's self-referential entry at position 0 is
// exempt from the scan, so NumOfDescendants(0) counts the root's actual
// children.
func (t *Tree[T]) NumOfDescendants(parentIdx int) int {
	if len(t.parents) < sizeForParallelScan {
		return t.countSequential(parentIdx)
	}
	return t.countParallel(parentIdx)
}

// ParentIndex returns the position of the parent of node index. For the root
// it returns 0 by convention; the root has no meaningful parent.
func (t *Tree[T]) ParentIndex(index int) int {
	ensure(t.isValid(), "flat tree structure is invalid")
	ensure(index >= 0 && index < len(t.parents), "node index is invalid")
	if index == 0 {
		return 0
	}
	return t.parents[index]
}

// Descendants appends the positions of all first-generation descendants of
// parentIdx to out, in ascending position order. It reports whether at least
// one child has been found.
//
// The root's immediate children are not enumerable through this call:
// parentIdx 0 always fails (use AllDescendants for the root). The call also
// fails on a structurally invalid tree.
func (t *Tree[T]) Descendants(parentIdx int, out IndexSink) bool {
	if !t.isValid() {
		tracer().Errorf("flattree.Descendants called on invalid tree")
		return false
	}
	if parentIdx == 0 {
		return false
	}
	found := false
	for i := 1; i < len(t.parents); i++ {
		if t.parents[i] != parentIdx {
			continue
		}
		found = true
		out.Append(i)
	}
	return found
}

// AllDescendants appends the positions of every transitive descendant of
// parentIdx to out and reports whether any have been found.
//
// parentIdx 0 is special-cased to mean "every node except the root": the
// positions 1..Size-1 are appended in order, regardless of tree shape.
//
// For any other node the output order is relaxed: a parent is always
// appended before any of its own descendants, but siblings interleave with
// cousins from earlier branches. Callers get some valid topological listing,
// nothing more specific.
func (t *Tree[T]) AllDescendants(parentIdx int, out IndexSink) bool {
	if !t.isValid() {
		tracer().Errorf("flattree.AllDescendants called on invalid tree")
		return false
	}
	if parentIdx == 0 {
		if len(t.values) <= 1 {
			return false
		}
		for i := 1; i < len(t.values); i++ {
			out.Append(i)
		}
		return true
	}
	var collected IndexSlice
	seen := make([]bool, len(t.parents))
	seen[parentIdx] = true
	if !t.collectDescendants(parentIdx, &collected, seen) {
		return false
	}
	for _, idx := range collected {
		out.Append(idx)
	}
	return true
}

// collectDescendants appends the first-generation children of parentIdx to
// out, then expands each newly discovered child in place. Only the indices
// appended by the current step are expanded and the seen mask keeps every
// position from being collected twice, so the expansion terminates even on
// degenerate parent links left behind by stale-index removals.
func (t *Tree[T]) collectDescendants(parentIdx int, out *IndexSlice, seen []bool) bool {
	from := len(*out)
	found := false
	for i := 1; i < len(t.parents); i++ {
		if t.parents[i] != parentIdx || seen[i] {
			continue
		}
		seen[i] = true
		found = true
		*out = append(*out, i)
	}
	if !found {
		return false
	}
	for _, kid := range (*out)[from:] {
		t.collectDescendants(kid, out, seen)
	}
	return true
}

// scanShards splits the parent-index sequence into one shard per available
// CPU and runs scan on each shard concurrently. scan receives the starting
// offset and the shard contents.
func (t *Tree[T]) scanShards(scan func(offset int, shard []int)) {
	n := len(t.parents)
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	step := (n + workers - 1) / workers
	g := new(errgroup.Group)
	for lo := 0; lo < n; lo += step {
		lo := lo
		hi := min(lo+step, n)
		g.Go(func() error {
			scan(lo, t.parents[lo:hi])
			return nil
		})
	}
	_ = g.Wait() // shard scans never fail
}

func (t *Tree[T]) containsParallel(index int) bool {
	var found atomic.Bool
	t.scanShards(func(_ int, shard []int) {
		if slices.Contains(shard, index) {
			found.Store(true)
		}
	})
	return found.Load()
}

func (t *Tree[T]) countSequential(parentIdx int) int {
	count := 0
	for i := 1; i < len(t.parents); i++ {
		if t.parents[i] == parentIdx {
			count++
		}
	}
	return count
}

func (t *Tree[T]) countParallel(parentIdx int) int {
	var count atomic.Int64
	t.scanShards(func(offset int, shard []int) {
		local := 0
		for i, p := range shard {
			if offset+i == 0 {
				continue // root's self-referential entry is exempt
			}
			if p == parentIdx {
				local++
			}
		}
		count.Add(int64(local))
	})
	return int(count.Load())
}
