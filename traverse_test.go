package flattree

import (
	"sync/atomic"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTraverseSequential(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildFamilyTree(t)
	visited := []string{}
	tree.Traverse(1, Sequential, func(value *string) {
		visited = append(visited, *value)
		*value = *value + "_"
	})
	if len(visited) != 3 {
		t.Fatalf("expected 3 visited descendants of child1, got %d", len(visited))
	}
	if tree.At(3) != "gc0_" || tree.At(4) != "gc1_" || tree.At(5) != "gc2_" {
		t.Errorf("expected callback to mutate descendant values in place")
	}
	if tree.At(1) != "child1" {
		t.Errorf("start node value must not be visited, got '%s'", tree.At(1))
	}
}

func TestTraverseParallelCoverage(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := New(0)
	for i := 1; i <= 500; i++ {
		if !tree.Insert((i-1)/2, i) {
			t.Fatalf("insert of node %d failed", i)
		}
	}
	var count atomic.Int64
	tree.Traverse(0, Parallel, func(value *int) {
		count.Add(1)
		*value = -*value
	})
	if int(count.Load()) != tree.Size()-1 {
		t.Errorf("expected %d callback invocations, got %d", tree.Size()-1, count.Load())
	}
	// every descendant value touched exactly once, root untouched
	if tree.At(0) != 0 {
		t.Errorf("root value must not be visited")
	}
	for i := 1; i < tree.Size(); i++ {
		if tree.At(i) != -i {
			t.Errorf("expected node %d to hold %d, got %d", i, -i, tree.At(i))
			break
		}
	}
}

func TestTraverseModesAgree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildFamilyTree(t)
	var seq atomic.Int64
	tree.Traverse(2, Sequential, func(*string) { seq.Add(1) })
	var par atomic.Int64
	tree.Traverse(2, Parallel, func(*string) { par.Add(1) })
	if seq.Load() != par.Load() {
		t.Errorf("sequential and parallel traversal disagree: %d vs %d", seq.Load(), par.Load())
	}
}

func TestTraverseWithoutDescendantsIsANoOp(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildFamilyTree(t)
	called := false
	tree.Traverse(3, Sequential, func(*string) { called = true })
	if called {
		t.Errorf("traversal from a leaf must not invoke the callback")
	}
	// single-node tree: root has no descendants either
	single := New("root")
	single.Traverse(0, Parallel, func(*string) { called = true })
	if called {
		t.Errorf("traversal over a single-node tree must not invoke the callback")
	}
}
