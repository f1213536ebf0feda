// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func replicateTestTree(t *testing.T, root string, rules string) (string, *ReplicaSummary) {
	t.Helper()

	w, err := NewWalker(root, WalkOptions{Patterns: testPatterns(t, rules)})
	require.NoError(t, err)

	dest := t.TempDir()
	r, err := NewReplicator(w, dest)
	require.NoError(t, err)

	summary, err := r.Replicate(context.Background())
	require.NoError(t, err)
	require.Empty(t, summary.Errors)
	return dest, summary
}

func enumerate(t *testing.T, root string) []string {
	t.Helper()

	w, err := NewWalker(root, WalkOptions{})
	require.NoError(t, err)

	var paths []string
	err = w.Walk(context.Background(), func(entry PathEntry, decision Decision, err error) (WalkAction, error) {
		require.NoError(t, err)
		paths = append(paths, entry.RelPath)
		return WalkRecurse, nil
	})
	require.NoError(t, err)
	return paths
}

func TestReplicateRoundTrip(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestTree(t, root, map[string]string{
		"a.py":           "print()",
		"a.pyc":          "bin",
		"build/out.o":    "o",
		"build/notes.md": "n",
		"src/main.go":    "package main",
	})

	dest, summary := replicateTestTree(t, root, "*.pyc\nbuild/*\n!build/notes.md\n")

	// Re-walking the replica with no rules yields exactly the included set.
	require.Equal(t,
		[]string{"a.py", "build", "build/notes.md", "src", "src/main.go"},
		enumerate(t, dest))
	require.Equal(t, 3, summary.Files)

	content, err := os.ReadFile(filepath.Join(dest, "build", "notes.md"))
	require.NoError(t, err)
	require.Equal(t, "n", string(content))
}

func TestReplicateKeepsEmptyFilteredDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestTree(t, root, map[string]string{
		"cache/blob.bin": "b",
		"main.go":        "m",
	})

	dest, _ := replicateTestTree(t, root, "*.bin\n")

	info, err := os.Stat(filepath.Join(dest, "cache"))
	require.NoError(t, err)
	require.True(t, info.IsDir(), "empty-after-filtering directory must still exist")
}

func TestReplicatePreservesModTime(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestTree(t, root, map[string]string{"old.txt": "x"})

	mtime := time.Date(2020, 4, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(filepath.Join(root, "old.txt"), mtime, mtime))

	dest, _ := replicateTestTree(t, root, "")

	info, err := os.Stat(filepath.Join(dest, "old.txt"))
	require.NoError(t, err)
	require.True(t, info.ModTime().Equal(mtime), "modification time must be preserved")
}

func TestReplicateCollectsWriteFailures(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestTree(t, root, map[string]string{
		"a.txt": "one",
		"b.txt": "two",
	})

	w, err := NewWalker(root, WalkOptions{})
	require.NoError(t, err)

	dest := t.TempDir()
	// A directory squatting on the destination file path makes that one
	// copy fail while the rest of the pass proceeds.
	require.NoError(t, os.MkdirAll(filepath.Join(dest, "a.txt"), 0o755))

	r, err := NewReplicator(w, dest)
	require.NoError(t, err)

	summary, err := r.Replicate(context.Background())
	require.NoError(t, err, "a per-file failure must not abort the pass")

	require.Len(t, summary.Errors, 1)
	require.Equal(t, "a.txt", summary.Errors[0].RelPath)
	require.Equal(t, 1, summary.Files)

	content, err := os.ReadFile(filepath.Join(dest, "b.txt"))
	require.NoError(t, err)
	require.Equal(t, "two", string(content))
}

func TestReplicateIdempotent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestTree(t, root, map[string]string{
		"a.txt":     "one",
		"sub/b.txt": "two",
	})

	w, err := NewWalker(root, WalkOptions{})
	require.NoError(t, err)

	dest := t.TempDir()
	r, err := NewReplicator(w, dest)
	require.NoError(t, err)

	first, err := r.Replicate(context.Background())
	require.NoError(t, err)

	second, err := r.Replicate(context.Background())
	require.NoError(t, err)
	require.Empty(t, second.Errors)
	require.Equal(t, first.Files, second.Files)

	require.Equal(t, enumerate(t, root), enumerate(t, dest),
		"second pass must overwrite, not duplicate")
}
