package flattree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Insert appends one or more new nodes under the parent at position
// parentID and reports whether the tree has been mutated.
//
// The new nodes receive the positions Size, Size+1, … in argument order.
// Insertion is append-only, O(1) per node, no shifting. It fails without
// mutation if parentID does not refer to an existing position or the tree
// is structurally invalid. Inserting zero values is a successful no-op.
func (t *Tree[T]) Insert(parentID int, values ...T) bool {
	if parentID < 0 || parentID >= len(t.parents) || !t.isValid() {
		tracer().Errorf("flattree.Insert: no node at parent position %d", parentID)
		return false
	}
	if len(values) == 0 {
		return true
	}
	first := len(t.values)
	t.values = append(t.values, values...)
	for range values {
		t.parents = append(t.parents, parentID)
	}
	tracer().Debugf("flattree: inserted %d node(s) under %d at position %d", len(values), parentID, first)
	t.publish(Event{Op: OpInsert, Parent: parentID, Index: first, Count: len(values)})
	return true
}

// Remove deletes the node at nodeIdx together with all of its transitive
// descendants and reports whether the tree has been mutated.
//
// Remove first collects the transitive descendants of nodeIdx and refuses to
// act when none are found. A childless node therefore cannot be removed
// through Remove; the call is a failed no-op. This surprising contract is
// retained for compatibility with the collect-then-delete algorithm this
// container descends from.
//
// Every collected position is deleted by swap-remove, in the order
// collected, followed by nodeIdx itself. The root can never be removed; the
// low-level removal step skips position 0. After a successful Remove, every
// previously held index must be considered stale.
func (t *Tree[T]) Remove(nodeIdx int) bool {
	if nodeIdx < 0 || nodeIdx >= len(t.parents) || !t.isValid() {
		tracer().Errorf("flattree.Remove: no node at position %d", nodeIdx)
		return false
	}
	descendants := make(IndexSlice, 0, len(t.values))
	if !t.AllDescendants(nodeIdx, &descendants) {
		tracer().Debugf("flattree.Remove: node %d has no descendants, nothing removed", nodeIdx)
		return false
	}
	before := len(t.values)
	targets := append(descendants, nodeIdx)
	for k, idx := range targets {
		if idx == 0 {
			continue // the root can never be removed
		}
		last := len(t.values) - 1
		t.removeNode(idx)
		if idx == last {
			continue
		}
		// The node from the last position now lives at idx. If it is still
		// scheduled for removal, its collected position has gone stale and
		// must follow the relocation.
		for j := k + 1; j < len(targets); j++ {
			if targets[j] == last {
				targets[j] = idx
			}
		}
	}
	removed := before - len(t.values)
	tracer().Debugf("flattree: removed %d node(s), starting at node %d", removed, nodeIdx)
	t.publish(Event{Op: OpRemove, Index: nodeIdx, Count: removed})
	return true
}

// removeNode deletes a single position by overwriting it with the current
// last position and shrinking both slices by one. The node previously held
// in the last position is relocated to index. The step is a no-op on the
// root; callers keep their position lists in step with the relocations.
func (t *Tree[T]) removeNode(index int) {
	if index == 0 || index >= len(t.values) {
		return
	}
	last := len(t.values) - 1
	t.values[index] = t.values[last]
	t.parents[index] = t.parents[last]
	t.values = t.values[:last]
	t.parents = t.parents[:last]
	ensure(t.isValid(), "flat tree removal broke structural invariants")
}
