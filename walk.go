// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// WalkAction tells the walker how to proceed after visiting one entry.
type WalkAction uint8

const (
	// WalkRecurse descends into a visited directory.
	WalkRecurse WalkAction = iota
	// WalkSkip skips a visited directory subtree.
	WalkSkip
)

// WalkFunc is called once per visited entry.
//
// err is non-nil when the entry's directory could not be read; the walk
// continues with siblings. A directory that fails to read after its clean
// visit is reported through a second call carrying the error, so callbacks
// that count directories should treat the error call as a report, not a new
// entry. Returning a non-nil error stops the whole walk.
type WalkFunc func(entry PathEntry, decision Decision, err error) (WalkAction, error)

// WalkOptions configures one walker.
type WalkOptions struct {
	// Patterns are ordered ignore rules consulted for every entry.
	Patterns []Pattern `json:"patterns,omitempty" yaml:"patterns,omitempty"`
	// MatcherOptions controls pattern matching behavior.
	MatcherOptions MatcherOptions `json:"matcher_options" yaml:"matcher_options"`
	// DirsFirst lists directories before files on each level.
	// Entries stay byte-sorted inside each group.
	DirsFirst bool `json:"dirs_first,omitempty" yaml:"dirs_first,omitempty"`
}

// Walker performs deterministic depth-first sorted traversal of a directory,
// consulting ignore rules at each node and pruning ignored subtrees.
//
// Every child is visited with its verdict; the walker itself never recurses
// into an ignored directory or follows a symlink. A symlink resolving outside
// the walk root is skipped entirely and never visited, the same treatment the
// replication and snapshot consumers need to keep escaping links out of their
// output.
type Walker struct {
	root         string
	resolvedRoot string
	opts         WalkOptions
}

// NewWalker creates a walker rooted at rootDir.
func NewWalker(rootDir string, opts WalkOptions) (*Walker, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("abs root: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, absRoot)
	}

	resolvedRoot, err := resolvePathOrAbs(absRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	return &Walker{
		root:         absRoot,
		resolvedRoot: resolvedRoot,
		opts:         opts,
	}, nil
}

// Root returns the absolute walk root.
func (w *Walker) Root() string {
	return w.root
}

// Walk traverses the root depth-first and invokes visit for every entry.
//
// A fresh decider is compiled per call, so ancestor verdicts are memoized for
// exactly one pass and never shared across runs.
func (w *Walker) Walk(ctx context.Context, visit WalkFunc) error {
	if w == nil {
		return ErrNilWalker
	}

	decider := NewDecider(w.opts.Patterns, w.opts.MatcherOptions)
	return w.walkDir(ctx, "", decider, visit)
}

// walkDir lists one directory and visits its children.
func (w *Walker) walkDir(ctx context.Context, relDir string, decider *Decider, visit WalkFunc) error {
	fullDir := filepath.Join(w.root, filepath.FromSlash(relDir))

	entries, err := os.ReadDir(fullDir)
	if err != nil {
		// Report the failure on the directory node and keep walking siblings.
		dirEntry := PathEntry{
			RelPath: relDir,
			Name:    pathBase(relDir),
			IsDir:   true,
		}

		_, verr := visit(dirEntry, decider.Decide(relDir, true), err)
		return verr
	}

	w.sortEntries(entries)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := entry.Name()
		rel := joinRel(relDir, name)
		isDir := entry.IsDir()
		isLink := entry.Type()&fs.ModeSymlink != 0

		if isLink && w.escapesRoot(rel) {
			continue
		}

		decision := decider.Decide(rel, isDir)
		pathEntry := PathEntry{
			RelPath: rel,
			Name:    name,
			IsDir:   isDir,
		}

		action, err := visit(pathEntry, decision, nil)
		if err != nil {
			return err
		}

		if !isDir || isLink || decision.Ignored || action == WalkSkip {
			continue
		}

		if err := w.walkDir(ctx, rel, decider, visit); err != nil {
			return err
		}
	}

	return nil
}

// sortEntries orders one directory listing deterministically.
func (w *Walker) sortEntries(entries []fs.DirEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if w.opts.DirsFirst && entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}

		return entries[i].Name() < entries[j].Name()
	})
}

// escapesRoot reports whether a symlink entry resolves outside the walk root.
func (w *Walker) escapesRoot(rel string) bool {
	full := filepath.Join(w.root, filepath.FromSlash(rel))

	resolved, err := resolvePathOrAbs(full)
	if err != nil {
		return true
	}

	return !isPathWithinRoot(w.resolvedRoot, resolved)
}
