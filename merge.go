// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

// MergePatterns merges pattern slices preserving input order.
//
// Callers append always-on rules last so they win last-match tie-breaks.
func MergePatterns(patternSets ...[]Pattern) []Pattern {
	total := 0
	for _, set := range patternSets {
		total += len(set)
	}

	out := make([]Pattern, 0, total)
	for _, set := range patternSets {
		out = append(out, set...)
	}

	return out
}
