package format

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/flattree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildTree(t *testing.T) *flattree.Tree[string] {
	tree := flattree.New("root")
	if !tree.Insert(0, "child1", "child2") {
		t.Fatal("cannot insert children")
	}
	if !tree.Insert(1, "gc0", "gc1") {
		t.Fatal("cannot insert grandchildren")
	}
	return tree
}

func TestFlatListing(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	color.NoColor = true
	//
	tree := buildTree(t)
	var sb strings.Builder
	if err := Flat(&sb, tree, &Config{LineWidth: 80}); err != nil {
		t.Fatal(err.Error())
	}
	out := sb.String()
	t.Logf("flat dump:\n%s", out)
	expected := "root {0}, child1 {0}, child2 {0}, gc0 {1}, gc1 {1}\n"
	if out != expected {
		t.Errorf("unexpected flat listing:\n got %q\nwant %q", out, expected)
	}
}

func TestFlatListingWraps(t *testing.T) {
	color.NoColor = true
	tree := buildTree(t)
	var sb strings.Builder
	if err := Flat(&sb, tree, &Config{LineWidth: 20}); err != nil {
		t.Fatal(err.Error())
	}
	out := sb.String()
	t.Logf("wrapped dump:\n%s", out)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if len(line) > 20+2 { // trailing separator may overhang
			t.Errorf("line exceeds configured width: %q", line)
		}
	}
}

func TestGroupedListing(t *testing.T) {
	color.NoColor = true
	tree := buildTree(t)
	var sb strings.Builder
	if err := Grouped(&sb, tree, &Config{}); err != nil {
		t.Fatal(err.Error())
	}
	out := sb.String()
	t.Logf("grouped dump:\n%s", out)
	if !strings.Contains(out, "root: child1,child2") {
		t.Errorf("expected root line with both children, got:\n%s", out)
	}
	if !strings.Contains(out, "child1: gc0,gc1") {
		t.Errorf("expected child1 line with grandchildren, got:\n%s", out)
	}
	if strings.Contains(out, "child2:") {
		t.Errorf("childless nodes must not produce a line, got:\n%s", out)
	}
}

func TestSingleNodeTreeDumps(t *testing.T) {
	color.NoColor = true
	tree := flattree.New(42)
	var sb strings.Builder
	if err := Flat(&sb, tree, &Config{LineWidth: 80}); err != nil {
		t.Fatal(err.Error())
	}
	if sb.String() != "42 {0}\n" {
		t.Errorf("unexpected single-node flat dump: %q", sb.String())
	}
	sb.Reset()
	if err := Grouped(&sb, tree, &Config{}); err != nil {
		t.Fatal(err.Error())
	}
	if sb.String() != "" {
		t.Errorf("expected empty grouped dump for single-node tree, got %q", sb.String())
	}
}
