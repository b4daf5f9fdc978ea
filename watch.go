package flattree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "github.com/guiguan/caster"

// Op classifies a mutation reported through the change feed.
type Op int

const (
	// OpInsert reports nodes appended by Insert.
	OpInsert Op = iota
	// OpRemove reports a subtree deletion by Remove.
	OpRemove
	// OpResize reports a call to Resize.
	OpResize
	// OpClear reports a reset to the single-node tree.
	OpClear
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpResize:
		return "resize"
	case OpClear:
		return "clear"
	}
	return "unknown"
}

// Event describes one completed mutation of a tree.
//
// For OpInsert, Parent is the parent position, Index the first new position
// and Count the number of appended nodes. For OpRemove, Index is the removed
// node's former position and Count the total number of deleted nodes. For
// OpResize, Count is the new size. Positions in an event are snapshots from
// the moment of mutation and go stale like any other held index.
type Event struct {
	Op     Op
	Parent int
	Index  int
	Count  int
}

// Subscribe returns a channel on which future mutations of the tree are
// broadcast as Events, to this and every other subscriber.
//
// Delivery is best-effort: mutating operations never block on the feed, so
// a subscriber that does not drain its channel may miss events. The feed is
// for observation: monitoring, debug views, cache invalidation triggers. It
// makes no synchronization promise beyond the tree's single-writer
// discipline: an event tells the subscriber that a mutation has happened,
// not that the tree still looks like the event suggests.
//
// Subscribe must be synchronized with mutating calls like any other
// operation on the tree.
func (t *Tree[T]) Subscribe() <-chan interface{} {
	if t.cast == nil {
		t.cast = caster.New(nil)
	}
	ch, _ := t.cast.Sub(nil, 1)
	return ch
}

// CloseFeed shuts down the change feed and closes all subscriber channels.
// The tree remains usable; later mutations simply go unobserved.
func (t *Tree[T]) CloseFeed() {
	if t.cast == nil {
		return
	}
	t.cast.Close()
	t.cast = nil
}

// publish broadcasts a mutation event to all subscribers, if any. Mutating
// operations call this after their invariants hold again. The non-blocking
// variant keeps mutations independent of subscriber progress, at the price
// of best-effort delivery.
func (t *Tree[T]) publish(e Event) {
	if t.cast == nil {
		return
	}
	t.cast.TryPub(e)
}
