// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReplicaError is one per-entry replication failure.
type ReplicaError struct {
	// RelPath is the failed entry path relative to the source root.
	RelPath string `json:"rel_path" yaml:"rel_path"`
	// Err is the underlying failure.
	Err error `json:"-" yaml:"-"`
}

// Error implements the error interface.
func (e ReplicaError) Error() string {
	return fmt.Sprintf("replicate %s: %v", e.RelPath, e.Err)
}

// Unwrap returns the underlying failure.
func (e ReplicaError) Unwrap() error {
	return e.Err
}

// ReplicaSummary reports one replication pass.
type ReplicaSummary struct {
	// Files is the number of files copied.
	Files int `json:"files" yaml:"files"`
	// Dirs is the number of directories created or confirmed.
	Dirs int `json:"dirs" yaml:"dirs"`
	// Bytes is the total copied payload size.
	Bytes int64 `json:"bytes" yaml:"bytes"`
	// Errors holds per-entry failures; the pass itself still completes.
	Errors []ReplicaError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Replicator copies the included subset of a tree under a destination root.
//
// Included directories are created even when empty after filtering, file
// modification times are preserved, and a second pass into the same
// destination overwrites rather than duplicates.
type Replicator struct {
	walker *Walker
	dest   string
}

// NewReplicator creates a replicator from one walker into destRoot.
func NewReplicator(walker *Walker, destRoot string) (*Replicator, error) {
	absDest, err := filepath.Abs(destRoot)
	if err != nil {
		return nil, fmt.Errorf("abs destination: %w", err)
	}

	return &Replicator{
		walker: walker,
		dest:   absDest,
	}, nil
}

// Replicate walks the source and copies every included entry.
//
// Per-entry failures are collected in the summary and never abort the pass.
func (r *Replicator) Replicate(ctx context.Context) (*ReplicaSummary, error) {
	summary := &ReplicaSummary{}

	if err := os.MkdirAll(r.dest, 0o755); err != nil {
		return nil, fmt.Errorf("create destination root: %w", err)
	}

	err := r.walker.Walk(ctx, func(entry PathEntry, decision Decision, err error) (WalkAction, error) {
		if err != nil {
			summary.Errors = append(summary.Errors, ReplicaError{RelPath: entry.RelPath, Err: err})
			return WalkSkip, nil
		}

		if decision.Ignored {
			return WalkSkip, nil
		}

		if entry.IsDir {
			if err := r.makeDir(entry.RelPath); err != nil {
				summary.Errors = append(summary.Errors, ReplicaError{RelPath: entry.RelPath, Err: err})
				return WalkSkip, nil
			}

			summary.Dirs++
			return WalkRecurse, nil
		}

		n, err := r.copyFile(entry.RelPath)
		if err != nil {
			summary.Errors = append(summary.Errors, ReplicaError{RelPath: entry.RelPath, Err: err})
			return WalkRecurse, nil
		}

		summary.Files++
		summary.Bytes += n
		return WalkRecurse, nil
	})
	if err != nil {
		return summary, err
	}

	return summary, nil
}

// makeDir creates one destination directory, tolerating existing ones.
func (r *Replicator) makeDir(rel string) error {
	return os.MkdirAll(filepath.Join(r.dest, filepath.FromSlash(rel)), 0o755)
}

// copyFile copies one source file's bytes and modification time.
func (r *Replicator) copyFile(rel string) (int64, error) {
	srcPath := filepath.Join(r.walker.Root(), filepath.FromSlash(rel))
	dstPath := filepath.Join(r.dest, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return 0, fmt.Errorf("create parent: %w", err)
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return 0, fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = src.Close() }()

	info, err := src.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat source: %w", err)
	}

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, fmt.Errorf("open destination: %w", err)
	}

	n, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("copy: %w", err)
	}

	if err := os.Chtimes(dstPath, info.ModTime(), info.ModTime()); err != nil {
		return n, fmt.Errorf("preserve mtime: %w", err)
	}

	return n, nil
}
