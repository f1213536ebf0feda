// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

import "strings"

// ParseExtensions normalizes an extension allow-list.
//
// Accepted extension forms:
//   - "txt"
//   - ".txt"
//   - "*.txt"
//
// Empty values are skipped. Returned values are lower-case ".ext" forms and
// preserve input order without duplicates.
func ParseExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	seen := make(map[string]bool, len(exts))

	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = asciiLower(ext)
		if ext == "" {
			continue
		}

		ext = "." + ext
		if seen[ext] {
			continue
		}

		seen[ext] = true
		out = append(out, ext)
	}

	return out
}

// extensionSet builds a lookup set from normalized extensions.
func extensionSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range ParseExtensions(exts) {
		set[ext] = true
	}

	return set
}

// extensionAllowed reports whether a path passes the allow-list.
// An empty allow-list passes everything.
func extensionAllowed(set map[string]bool, relPath string) bool {
	if len(set) == 0 {
		return true
	}

	base := pathBase(relPath)
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return false
	}

	return set[asciiLower(base[i:])]
}
