// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

// Decider evaluates ignore verdicts against compiled ordered patterns.
//
// Decision policy:
// - a path inside an ignored directory is ignored unless a negation pattern
//   matches that exact path
// - otherwise the last matching pattern wins
// - if no pattern matched, the path is not ignored
//
// Ancestor verdicts are memoized for the lifetime of one Decider. Create a
// fresh Decider per traversal pass; there is no cross-run cache.
type Decider struct {
	matcher *Matcher
	dirMemo map[string]bool
}

// NewDecider compiles ordered patterns into a decider.
func NewDecider(patterns []Pattern, opts MatcherOptions) *Decider {
	return &Decider{
		matcher: NewMatcher(patterns, opts),
		dirMemo: make(map[string]bool),
	}
}

// Decide returns the deterministic ignore verdict for one path.
//
// Decide never fails: an empty pattern list simply ignores nothing.
func (d *Decider) Decide(relPath string, isDir bool) Decision {
	if d == nil {
		return Decision{PatternIndex: -1}
	}

	candidate := d.matcher.normalize(relPath)
	if candidate == "" {
		// The traversal root itself is never ignored.
		return Decision{PatternIndex: -1}
	}

	return d.decide(candidate, isDir)
}

// IsIgnored reports whether path is ignored by decision policy.
func (d *Decider) IsIgnored(relPath string, isDir bool) bool {
	return d.Decide(relPath, isDir).Ignored
}

// decide evaluates one normalized candidate.
func (d *Decider) decide(candidate string, isDir bool) Decision {
	if parent := pathParent(candidate); parent != "" && d.dirIgnored(parent) {
		// A path under an ignored directory can only be pulled back in by a
		// negation that names this exact path.
		if !d.directNegation(candidate, isDir) {
			return Decision{Ignored: true, Cascaded: true, PatternIndex: -1}
		}
	}

	last := -1
	for i := 0; i < d.matcher.Len(); i++ {
		if d.matcher.matchAt(i, candidate, isDir) {
			last = i
		}
	}

	if last < 0 {
		return Decision{PatternIndex: -1}
	}

	return Decision{
		Ignored:      !d.matcher.Pattern(last).Negate,
		Matched:      true,
		PatternIndex: last,
	}
}

// dirIgnored reports the memoized verdict for one ancestor directory.
func (d *Decider) dirIgnored(dir string) bool {
	if ignored, ok := d.dirMemo[dir]; ok {
		return ignored
	}

	ignored := d.decide(dir, true).Ignored
	d.dirMemo[dir] = ignored
	return ignored
}

// directNegation reports whether any negation pattern matches the exact path.
func (d *Decider) directNegation(candidate string, isDir bool) bool {
	for i := 0; i < d.matcher.Len(); i++ {
		if d.matcher.Pattern(i).Negate && d.matcher.matchAt(i, candidate, isDir) {
			return true
		}
	}

	return false
}
