// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

// Pattern is one compiled ignore rule.
type Pattern struct {
	// Text is the rule body with leading "!" and trailing "/" or "/*" stripped.
	Text string `json:"text" yaml:"text"`
	// Negate reports whether the source line began with "!".
	Negate bool `json:"negate,omitempty" yaml:"negate,omitempty"`
	// DirOnly reports whether the source line ended with "/" (directories only).
	DirOnly bool `json:"dir_only,omitempty" yaml:"dir_only,omitempty"`
	// ContentOnly reports whether the source line ended with "/*":
	// the rule applies to entries inside the named directory, never to the
	// directory node itself.
	ContentOnly bool `json:"content_only,omitempty" yaml:"content_only,omitempty"`
}

// MatcherOptions controls pattern matching behavior.
type MatcherOptions struct {
	// CaseInsensitive enables ASCII case-insensitive matching.
	// Default is false, matching POSIX filesystem conventions.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
}

// PathEntry is one visited filesystem node, relative to a traversal root.
type PathEntry struct {
	// RelPath is slash-separated path relative to the root, no leading "/".
	RelPath string `json:"rel_path" yaml:"rel_path"`
	// Name is the final path component.
	Name string `json:"name" yaml:"name"`
	// IsDir reports whether the entry is a directory.
	IsDir bool `json:"is_dir,omitempty" yaml:"is_dir,omitempty"`
}

// Decision is one deterministic ignore verdict.
type Decision struct {
	// Ignored reports the final verdict.
	Ignored bool `json:"ignored" yaml:"ignored"`
	// Matched reports whether any pattern matched the path directly.
	Matched bool `json:"matched" yaml:"matched"`
	// PatternIndex is the decisive pattern index in rule order, -1 when the
	// verdict came from no match or from an ignored ancestor.
	PatternIndex int `json:"pattern_index" yaml:"pattern_index"`
	// Cascaded reports whether the verdict was forced by an ignored ancestor
	// directory rather than a direct match.
	Cascaded bool `json:"cascaded,omitempty" yaml:"cascaded,omitempty"`
}
