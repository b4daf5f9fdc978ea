/*
Package htmltree flattens the node hierarchy of an HTML fragment into a
flattree.Tree. Element nodes contribute their tag name, text nodes their
trimmed content; comments, doctypes and whitespace-only text are dropped.
The synthetic root carries "#document".

The resulting tree is a structural snapshot for inspection and bulk
processing. It does not retain attributes or allow round-tripping back
to markup.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package htmltree

import (
	"io"
	"strings"

	"github.com/npillmayer/flattree"
	"golang.org/x/net/html"
)

// FromHTML parses an HTML fragment and returns its element/text hierarchy
// as a flat tree.
func FromHTML(input io.Reader) (*flattree.Tree[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	tree := flattree.New("#document")
	for _, n := range nodes {
		flatten(tree, 0, n)
	}
	return tree, nil
}

// flatten inserts n under the node at parent and recurses over n's
// children. The position of a freshly appended node is the tree size just
// before insertion, as insertion is append-only.
func flatten(tree *flattree.Tree[string], parent int, n *html.Node) {
	label, ok := nodeLabel(n)
	if !ok {
		return
	}
	pos := tree.Size()
	if !tree.Insert(parent, label) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flatten(tree, pos, c)
	}
}

func nodeLabel(n *html.Node) (string, bool) {
	switch n.Type {
	case html.ElementNode:
		return n.Data, true
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return "", false
		}
		return text, true
	}
	return "", false
}
