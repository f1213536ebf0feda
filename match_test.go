// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

import "testing"

func match(t *testing.T, pattern Pattern, rel string, isDir bool, opts MatcherOptions) bool {
	t.Helper()
	return Match(pattern, PathEntry{RelPath: rel, Name: pathBase(rel), IsDir: isDir}, opts)
}

func TestMatchBasename(t *testing.T) {
	t.Parallel()

	p := Pattern{Text: "*.pyc"}

	if !match(t, p, "a.pyc", false, MatcherOptions{}) {
		t.Fatalf("*.pyc must match a.pyc")
	}

	if !match(t, p, "deep/nested/a.pyc", false, MatcherOptions{}) {
		t.Fatalf("*.pyc must match nested basename")
	}

	if match(t, p, "a.py", false, MatcherOptions{}) {
		t.Fatalf("*.pyc must not match a.py")
	}
}

func TestMatchQuestionMark(t *testing.T) {
	t.Parallel()

	p := Pattern{Text: "a?.log"}

	if !match(t, p, "a1.log", false, MatcherOptions{}) {
		t.Fatalf("a?.log must match a1.log")
	}

	if match(t, p, "a12.log", false, MatcherOptions{}) {
		t.Fatalf("? must match exactly one character")
	}
}

func TestMatchWildcardNeverCrossesSlash(t *testing.T) {
	t.Parallel()

	p := Pattern{Text: "src/*.go"}

	if !match(t, p, "src/main.go", false, MatcherOptions{}) {
		t.Fatalf("src/*.go must match src/main.go")
	}

	if match(t, p, "src/sub/main.go", false, MatcherOptions{}) {
		t.Fatalf("* must not cross path segments")
	}
}

func TestMatchAnchoredWholePath(t *testing.T) {
	t.Parallel()

	p := Pattern{Text: "/build"}

	if !match(t, p, "build", true, MatcherOptions{}) {
		t.Fatalf("/build must match top-level build")
	}

	if match(t, p, "sub/build", true, MatcherOptions{}) {
		t.Fatalf("/build must not match nested build")
	}
}

func TestMatchDoubleStar(t *testing.T) {
	t.Parallel()

	p := Pattern{Text: "**/logs/debug.log"}

	for _, rel := range []string{"logs/debug.log", "a/logs/debug.log", "a/b/logs/debug.log"} {
		if !match(t, p, rel, false, MatcherOptions{}) {
			t.Fatalf("**/logs/debug.log must match %s", rel)
		}
	}

	if match(t, p, "logs/other.log", false, MatcherOptions{}) {
		t.Fatalf("**/logs/debug.log must not match logs/other.log")
	}

	mid := Pattern{Text: "a/**/z"}
	for _, rel := range []string{"a/z", "a/b/z", "a/b/c/z"} {
		if !match(t, mid, rel, false, MatcherOptions{}) {
			t.Fatalf("a/**/z must match %s", rel)
		}
	}
}

func TestMatchDirOnly(t *testing.T) {
	t.Parallel()

	p := Pattern{Text: "logs", DirOnly: true}

	if !match(t, p, "logs", true, MatcherOptions{}) {
		t.Fatalf("logs/ must match directory logs")
	}

	if match(t, p, "logs", false, MatcherOptions{}) {
		t.Fatalf("logs/ must not match plain file logs")
	}

	if !match(t, p, "var/logs", true, MatcherOptions{}) {
		t.Fatalf("logs/ must match nested directory logs")
	}
}

func TestMatchContentOnly(t *testing.T) {
	t.Parallel()

	p := Pattern{Text: "build", ContentOnly: true}

	if match(t, p, "build", true, MatcherOptions{}) {
		t.Fatalf("build/* must never match the build node itself")
	}

	if !match(t, p, "build/out.o", false, MatcherOptions{}) {
		t.Fatalf("build/* must match build/out.o")
	}

	if !match(t, p, "build/sub/deep.o", false, MatcherOptions{}) {
		t.Fatalf("build/* must match deeper descendants")
	}

	if match(t, p, "builder/out.o", false, MatcherOptions{}) {
		t.Fatalf("build/* must not match builder contents")
	}
}

func TestMatchContentOnlyWithGlobDir(t *testing.T) {
	t.Parallel()

	p := Pattern{Text: "**/Books", ContentOnly: true}

	if !match(t, p, "shelf/Books/title.pdf", false, MatcherOptions{}) {
		t.Fatalf("**/Books/* must match nested Books contents")
	}

	if match(t, p, "shelf/Books", true, MatcherOptions{}) {
		t.Fatalf("**/Books/* must not match the Books directory itself")
	}
}

func TestMatchCaseSensitivity(t *testing.T) {
	t.Parallel()

	p := Pattern{Text: "*.PYC"}

	if match(t, p, "a.pyc", false, MatcherOptions{}) {
		t.Fatalf("matching is case-sensitive by default")
	}

	if !match(t, p, "a.pyc", false, MatcherOptions{CaseInsensitive: true}) {
		t.Fatalf("case-insensitive option must fold ASCII case")
	}
}

func TestMatchLiteralBracketByte(t *testing.T) {
	t.Parallel()

	p := Pattern{Text: "[unclosed"}

	if !match(t, p, "[unclosed", false, MatcherOptions{}) {
		t.Fatalf("malformed glob must behave as literal text")
	}
}
