// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

import "testing"

func TestMergePatternsPreservesOrder(t *testing.T) {
	t.Parallel()

	user := CompileLines([]string{"*.tmp", "!keep.tmp"})
	always := CompileLines(DefaultExcludeLines)

	merged := MergePatterns(user, always)
	if len(merged) != 3 {
		t.Fatalf("len(merged)=%d, want 3", len(merged))
	}

	if merged[0].Text != "*.tmp" || merged[2].Text != ".git" {
		t.Fatalf("merge order broken: %+v", merged)
	}

	if !merged[2].DirOnly {
		t.Fatalf("always-on .git/ must stay dir-only: %+v", merged[2])
	}
}

func TestMergePatternsEmptySets(t *testing.T) {
	t.Parallel()

	merged := MergePatterns(nil, CompileLines(nil), nil)
	if len(merged) != 0 {
		t.Fatalf("len(merged)=%d, want 0", len(merged))
	}
}
