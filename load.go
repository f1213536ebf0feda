// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

import (
	"fmt"
	"os"
)

// DefaultExcludeLines are always-on rules callers append after user rules,
// so they participate in precedence as last and win tie-breaks.
var DefaultExcludeLines = []string{".git/"}

// LoadRulesFile reads and parses rules from a file.
//
// A missing file is not an error and yields no patterns.
func LoadRulesFile(path string) ([]Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer func() { _ = f.Close() }()

	patterns, err := ParseRules(f)
	if err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}

	return patterns, nil
}

// LoadRulesFiles reads and merges rules from files in the given order.
//
// Returned patterns preserve file order and rule order inside each file.
func LoadRulesFiles(paths ...string) ([]Pattern, error) {
	out := make([]Pattern, 0, len(paths)*8)
	for _, path := range paths {
		patterns, err := LoadRulesFile(path)
		if err != nil {
			return nil, err
		}

		out = append(out, patterns...)
	}

	return out, nil
}
