// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
)

// Tree pointer and continuation glyphs.
const (
	treePointerMid  = "├── "
	treePointerLast = "└── "
	treeIndentMid   = "│   "
	treeIndentLast  = "    "
)

// TreeRenderer renders the included subset of a tree as connector-drawn text.
//
// Output starts with a ". (<rootname>)" line, one line per kept entry after
// it. Directories kept only by the content-only exemption appear with nothing
// beneath them.
type TreeRenderer struct {
	walker *Walker
}

// treeNode is one kept entry with its kept children.
type treeNode struct {
	entry    PathEntry
	children []*treeNode
}

// NewTreeRenderer creates a renderer over one walker.
func NewTreeRenderer(walker *Walker) *TreeRenderer {
	return &TreeRenderer{walker: walker}
}

// Render walks the root and writes the tree text to out.
//
// Unreadable directories stay in the output as bare nodes; their read errors
// do not abort rendering.
func (r *TreeRenderer) Render(ctx context.Context, out io.Writer) error {
	root, err := r.collect(ctx)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(out, ". (%s)\n", filepath.Base(r.walker.Root())); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}

	return renderNodes(out, root.children, "")
}

// Lines walks the root and returns the rendered tree lines.
func (r *TreeRenderer) Lines(ctx context.Context) ([]string, error) {
	root, err := r.collect(ctx)
	if err != nil {
		return nil, err
	}

	lines := []string{fmt.Sprintf(". (%s)", filepath.Base(r.walker.Root()))}
	return appendNodeLines(lines, root.children, ""), nil
}

// collect builds the kept-entry tree for one walk pass.
func (r *TreeRenderer) collect(ctx context.Context) (*treeNode, error) {
	root := &treeNode{}
	dirs := map[string]*treeNode{"": root}

	err := r.walker.Walk(ctx, func(entry PathEntry, decision Decision, err error) (WalkAction, error) {
		if err != nil {
			// Keep the unreadable directory node, elide its contents.
			return WalkSkip, nil
		}

		if decision.Ignored {
			return WalkSkip, nil
		}

		node := &treeNode{entry: entry}
		parent := dirs[pathParent(entry.RelPath)]
		if parent == nil {
			return WalkSkip, nil
		}

		parent.children = append(parent.children, node)
		if entry.IsDir {
			dirs[entry.RelPath] = node
		}

		return WalkRecurse, nil
	})
	if err != nil {
		return nil, err
	}

	return root, nil
}

// renderNodes writes one level of tree nodes with connector prefixes.
func renderNodes(out io.Writer, nodes []*treeNode, prefix string) error {
	for i, node := range nodes {
		pointer, indent := treeGlyphs(i == len(nodes)-1)

		if _, err := fmt.Fprintf(out, "%s%s%s\n", prefix, pointer, node.entry.Name); err != nil {
			return fmt.Errorf("write tree: %w", err)
		}

		if err := renderNodes(out, node.children, prefix+indent); err != nil {
			return err
		}
	}

	return nil
}

// appendNodeLines appends one level of tree nodes as lines.
func appendNodeLines(lines []string, nodes []*treeNode, prefix string) []string {
	for i, node := range nodes {
		pointer, indent := treeGlyphs(i == len(nodes)-1)
		lines = append(lines, prefix+pointer+node.entry.Name)
		lines = appendNodeLines(lines, node.children, prefix+indent)
	}

	return lines
}

// treeGlyphs returns pointer and child-indent glyphs for one sibling position.
func treeGlyphs(last bool) (string, string) {
	if last {
		return treePointerLast, treeIndentLast
	}

	return treePointerMid, treeIndentMid
}
