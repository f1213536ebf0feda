// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// CompileLines compiles ordered ignore rule lines into patterns.
//
// Semantics:
// - blank lines and "#" comments are skipped
// - "!" marks a negation (re-include) rule
// - trailing "/" scopes the rule to directories only
// - trailing "/*" scopes the rule to directory contents, never the directory itself
// - "\#" and "\!" escape leading comment/negation tokens
//
// Malformed lines degrade to literal path patterns; compilation never fails.
func CompileLines(lines []string) []Pattern {
	patterns := make([]Pattern, 0, len(lines))
	for _, line := range lines {
		p, ok := compileLine(line)
		if !ok {
			continue
		}

		patterns = append(patterns, p)
	}

	return patterns
}

// ParseRules parses ignore rules from reader.
func ParseRules(r io.Reader) ([]Pattern, error) {
	s := bufio.NewScanner(r)
	patterns := make([]Pattern, 0, 16)

	for s.Scan() {
		p, ok := compileLine(s.Text())
		if !ok {
			continue
		}

		patterns = append(patterns, p)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan rules: %w", err)
	}

	return patterns, nil
}

// ParseRulesString parses rules from string input.
func ParseRulesString(src string) ([]Pattern, error) {
	return ParseRules(strings.NewReader(src))
}

// compileLine compiles one source line, reporting whether it produced a pattern.
func compileLine(raw string) (Pattern, bool) {
	line := strings.TrimRight(raw, "\r")
	if line == "" {
		return Pattern{}, false
	}

	line = trimTrailingSpaces(line)
	line = strings.TrimLeft(line, " \t")
	if line == "" {
		return Pattern{}, false
	}

	if strings.HasPrefix(line, "#") {
		return Pattern{}, false
	}

	if strings.HasPrefix(line, `\#`) {
		line = line[1:]
	}

	p := Pattern{}
	if strings.HasPrefix(line, "!") {
		p.Negate = true
		line = line[1:]
	} else if strings.HasPrefix(line, `\!`) {
		line = line[1:]
	}

	if line == "" {
		return Pattern{}, false
	}

	// "/*" takes precedence over "/": a pattern is never both content-only
	// and dir-only.
	if rest, ok := strings.CutSuffix(line, "/*"); ok {
		p.ContentOnly = true
		line = rest
	} else if rest, ok := strings.CutSuffix(line, "/"); ok {
		p.DirOnly = true
		line = rest
	}

	p.Text = line
	return p, true
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
