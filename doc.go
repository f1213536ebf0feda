// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

/*
Package treesnap decides which files and directories under a project root are
ignored by gitignore-style rules, and drives deterministic traversals on top
of that decision: tree rendering, filtered replication, and content
collection.

Basic flow:
  - parse rules from text (`ParseRules`, `CompileLines`)
  - optionally load rules from file (`LoadRulesFile`)
  - append always-on rules last (`MergePatterns`, `DefaultExcludeLines`)
  - create a walker over the project root (`NewWalker`)
  - walk with a visit callback, or hand the walker to a consumer

Decision semantics:
  - the last matching pattern wins
  - a path inside an ignored directory stays ignored unless a negation
    pattern names that exact path
  - a trailing "/" scopes a rule to directories only
  - a trailing "/*" scopes a rule to a directory's contents, never the
    directory node itself, so the directory stays visible in a rendered tree
    while its contents are elided

Consumers:
  - `TreeRenderer` emits connector-drawn tree text of the included subset
  - `Replicator` copies the included subset under a destination root,
    preserving modification times
  - `Collector` concatenates included file contents into one text bundle
    with per-file headers and a trailing manifest

Traversal is single-threaded and sorted, so output is reproducible across
runs and platforms. Symlinks are never followed, and a symlink resolving
outside the walk root is skipped entirely.
*/
package treesnap
