// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

import "strings"

// Matcher evaluates paths against compiled ordered patterns.
type Matcher struct {
	compiled        []compiledPattern
	caseInsensitive bool
}

// compiledPattern is matcher-internal compiled representation of one pattern.
type compiledPattern struct {
	// source is the original pattern record.
	source Pattern
	// text is normalized rule body, case-folded when requested, leading "/" stripped.
	text string
	// segments are precompiled slash-separated parts for path patterns.
	segments []segmentPattern
	// base is the precompiled basename matcher for component patterns.
	base segmentPattern
	// hasSlash means pattern matches the whole relative path, not the basename.
	hasSlash bool
}

// segmentPattern is precompiled component/path segment matcher.
type segmentPattern struct {
	// text is raw segment pattern source.
	text string
	// wildcard reports whether text contains "*" or "?".
	wildcard bool
}

// NewMatcher compiles ordered patterns into a matcher.
func NewMatcher(patterns []Pattern, opts MatcherOptions) *Matcher {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, compilePattern(p, opts.CaseInsensitive))
	}

	return &Matcher{
		compiled:        compiled,
		caseInsensitive: opts.CaseInsensitive,
	}
}

// Match reports whether one pattern matches one path entry.
func Match(p Pattern, entry PathEntry, opts MatcherOptions) bool {
	cp := compilePattern(p, opts.CaseInsensitive)

	candidate := normalizePath(entry.RelPath)
	if opts.CaseInsensitive {
		candidate = asciiLower(candidate)
	}

	return cp.matches(candidate, entry.IsDir)
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int {
	return len(m.compiled)
}

// Pattern returns the source pattern at index i.
func (m *Matcher) Pattern(i int) Pattern {
	return m.compiled[i].source
}

// normalize prepares one candidate path for matching.
func (m *Matcher) normalize(relPath string) string {
	candidate := normalizePath(relPath)
	if m.caseInsensitive {
		candidate = asciiLower(candidate)
	}

	return candidate
}

// matchAt reports whether compiled pattern i matches a normalized candidate.
func (m *Matcher) matchAt(i int, candidate string, isDir bool) bool {
	return m.compiled[i].matches(candidate, isDir)
}

// compilePattern compiles one pattern record.
func compilePattern(p Pattern, caseInsensitive bool) compiledPattern {
	text := p.Text
	if caseInsensitive {
		text = asciiLower(text)
	}

	cp := compiledPattern{source: p}

	anchored := strings.HasPrefix(text, "/")
	text = strings.TrimPrefix(text, "/")
	cp.text = text

	// Anchored patterns ("/name") match the full path from root even without
	// further slashes.
	cp.hasSlash = anchored || strings.Contains(text, "/")
	if cp.hasSlash {
		cp.segments = compilePathSegments(text)
		return cp
	}

	cp.base = newSegmentPattern(text)
	return cp
}

// matches reports whether compiled pattern matches normalized candidate path.
//
// Content-only patterns match strict descendants of the named directory and
// never the directory node itself.
func (cp *compiledPattern) matches(candidate string, isDir bool) bool {
	if candidate == "" {
		return false
	}

	if cp.source.DirOnly && !isDir {
		return false
	}

	if cp.source.ContentOnly {
		return cp.matchesDescendant(candidate)
	}

	return cp.matchesNode(candidate)
}

// matchesNode matches the pattern body against one path node.
func (cp *compiledPattern) matchesNode(candidate string) bool {
	if cp.text == "" {
		return false
	}

	if cp.hasSlash {
		return matchPathSegments(cp.segments, candidate)
	}

	return matchSegmentPattern(cp.base, pathBase(candidate))
}

// matchesDescendant reports whether candidate lies strictly inside a directory
// matched by the pattern body.
func (cp *compiledPattern) matchesDescendant(candidate string) bool {
	// Empty body ("/*") scopes to the root: every entry is a descendant.
	if cp.text == "" {
		return true
	}

	for i := 0; i < len(candidate); i++ {
		if candidate[i] != '/' {
			continue
		}

		if cp.matchesNode(candidate[:i]) {
			return true
		}
	}

	return false
}

// newSegmentPattern precompiles one segment pattern.
func newSegmentPattern(pattern string) segmentPattern {
	return segmentPattern{
		text:     pattern,
		wildcard: strings.ContainsAny(pattern, "*?"),
	}
}

// compilePathSegments precompiles slash-separated path pattern segments.
func compilePathSegments(pattern string) []segmentPattern {
	segments := make([]segmentPattern, 0, strings.Count(pattern, "/")+1)
	start := 0

	for i := 0; i <= len(pattern); i++ {
		if i != len(pattern) && pattern[i] != '/' {
			continue
		}

		segments = append(segments, newSegmentPattern(pattern[start:i]))
		start = i + 1
	}

	return segments
}

// matchSegmentPattern matches one precompiled segment pattern.
func matchSegmentPattern(pattern segmentPattern, segment string) bool {
	if !pattern.wildcard {
		return segment == pattern.text
	}

	return matchSimpleWildcard(pattern.text, segment)
}

// matchSimpleWildcard matches "*" and "?" wildcard pattern against one segment.
func matchSimpleWildcard(pattern string, input string) bool {
	pIdx := 0
	sIdx := 0
	starPattern := -1
	starInput := 0

	for sIdx < len(input) {
		if pIdx < len(pattern) && (pattern[pIdx] == '?' || pattern[pIdx] == input[sIdx]) {
			pIdx++
			sIdx++
			continue
		}

		if pIdx < len(pattern) && pattern[pIdx] == '*' {
			// Remember star position and continue greedily from current input index.
			starPattern = pIdx
			pIdx++
			starInput = sIdx
			continue
		}

		if starPattern >= 0 {
			// Mismatch after a previous star: backtrack pattern to token after '*'
			// and let '*' consume one more input byte.
			pIdx = starPattern + 1
			starInput++
			sIdx = starInput
			continue
		}

		return false
	}

	for pIdx < len(pattern) && pattern[pIdx] == '*' {
		pIdx++
	}

	return pIdx == len(pattern)
}

// matchPathSegments matches a slash pattern against the whole relative path.
// A "**" segment matches zero or more path segments.
func matchPathSegments(pattern []segmentPattern, candidate string) bool {
	if len(pattern) == 0 || candidate == "" {
		return false
	}

	return matchSegmentsFrom(pattern, strings.Split(candidate, "/"))
}

// matchSegmentsFrom matches pattern segments against candidate segments with
// backtracking over "**".
func matchSegmentsFrom(pattern []segmentPattern, segs []string) bool {
	if len(pattern) == 0 {
		return len(segs) == 0
	}

	if pattern[0].text == "**" {
		for i := 0; i <= len(segs); i++ {
			if matchSegmentsFrom(pattern[1:], segs[i:]) {
				return true
			}
		}

		return false
	}

	if len(segs) == 0 {
		return false
	}

	if !matchSegmentPattern(pattern[0], segs[0]) {
		return false
	}

	return matchSegmentsFrom(pattern[1:], segs[1:])
}
