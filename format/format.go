/*
Package format renders flat trees as diagnostic text. It is a thin
presentation layer on top of the tree's public query surface: node count,
indexed value access and parent/descendant lookups. The exact text format
is not part of any contract.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/flattree"
	"golang.org/x/term"
)

// Config collects presentation options for the dump functions.
type Config struct {
	// LineWidth is the target line length for the flat listing; long
	// listings wrap before exceeding it. 0 means no wrapping.
	LineWidth int
	// Colors maps output roles to colors. Nil selects a default palette;
	// colors degrade automatically on non-terminal writers.
	Colors *Palette
}

// Palette holds the colors used by the dump functions.
type Palette struct {
	Value  *color.Color
	Parent *color.Color
}

func defaultPalette() *Palette {
	return &Palette{
		Value:  color.New(color.FgBlue),
		Parent: color.New(color.Faint),
	}
}

// ConfigFromTerminal creates a Config with heuristics from the current
// terminal's properties, if stdout is interactive.
func ConfigFromTerminal() *Config {
	config := &Config{
		Colors: defaultPalette(),
	}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil && w > 0 {
			config.LineWidth = w
		}
	}
	if config.LineWidth == 0 {
		config.LineWidth = 80
	}
	return config
}

func (c *Config) normalized() *Config {
	if c == nil {
		return ConfigFromTerminal()
	}
	cfg := *c
	if cfg.Colors == nil {
		cfg.Colors = defaultPalette()
	}
	return &cfg
}

// Flat writes the tree as a single comma-separated listing of
// "value {parent}" entries, in storage order.
func Flat[T any](w io.Writer, tree *flattree.Tree[T], config *Config) error {
	cfg := config.normalized()
	col := 0
	for i := 0; i < tree.Size(); i++ {
		entry := fmt.Sprintf("%v", tree.At(i))
		parent := fmt.Sprintf(" {%d}", tree.ParentIndex(i))
		n := len(entry) + len(parent)
		if i > 0 {
			n += 2
			if cfg.LineWidth > 0 && col+n > cfg.LineWidth {
				if _, err := io.WriteString(w, ",\n"); err != nil {
					return err
				}
				col = 0
			} else {
				if _, err := io.WriteString(w, ", "); err != nil {
					return err
				}
			}
		}
		if _, err := cfg.Colors.Value.Fprint(w, entry); err != nil {
			return err
		}
		if _, err := cfg.Colors.Parent.Fprint(w, parent); err != nil {
			return err
		}
		col += n
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Grouped writes the tree as a parent → children multimap, one line per
// node that has at least one immediate child. Children appear in storage
// order, which is insertion order until the first removal.
func Grouped[T any](w io.Writer, tree *flattree.Tree[T], config *Config) error {
	cfg := config.normalized()
	size := tree.Size()
	children := make(map[int][]int, size)
	order := make([]int, 0, size)
	for i := 1; i < size; i++ {
		p := tree.ParentIndex(i)
		if _, ok := children[p]; !ok {
			order = append(order, p)
		}
		children[p] = append(children[p], i)
	}
	for _, p := range order {
		if _, err := cfg.Colors.Parent.Fprintf(w, "%v: ", tree.At(p)); err != nil {
			return err
		}
		kids := make([]string, 0, len(children[p]))
		for _, k := range children[p] {
			kids = append(kids, fmt.Sprintf("%v", tree.At(k)))
		}
		if _, err := cfg.Colors.Value.Fprint(w, strings.Join(kids, ",")); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
