// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// normalizePath normalizes matching path to slash-separated relative clean form.
func normalizePath(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, `\`) {
		raw = strings.ReplaceAll(raw, `\`, `/`)
	}

	raw = strings.TrimPrefix(raw, "./")
	raw = strings.TrimPrefix(raw, "/")
	if raw == "" {
		return ""
	}

	// Fast path for already-normalized relative paths.
	if isSimpleNormalizedPath(raw) {
		return raw
	}

	raw = path.Clean("/" + raw)
	raw = strings.TrimPrefix(raw, "/")
	if raw == "." {
		return ""
	}

	return strings.TrimSuffix(raw, "/")
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}

// isSimpleNormalizedPath reports whether path is already normalized enough to skip path.Clean.
func isSimpleNormalizedPath(path string) bool {
	if path == "" ||
		path == "." ||
		path == ".." ||
		strings.HasPrefix(path, "/") ||
		strings.HasSuffix(path, "/") ||
		strings.HasPrefix(path, "./") ||
		strings.HasPrefix(path, "../") ||
		strings.Contains(path, "//") ||
		strings.Contains(path, "/./") ||
		strings.Contains(path, "/../") ||
		strings.HasSuffix(path, "/..") {
		return false
	}

	return true
}

// pathBase returns final path component using slash separator.
func pathBase(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}

	return path
}

// pathParent returns slash-separated parent directory path, "" for top-level entries.
func pathParent(relPath string) string {
	if i := strings.LastIndexByte(relPath, '/'); i >= 0 {
		return relPath[:i]
	}

	return ""
}

// joinRel joins a relative directory prefix with one entry name.
func joinRel(dir string, name string) string {
	if dir == "" {
		return name
	}

	return dir + "/" + name
}

// resolvePathOrAbs resolves symlinks/junctions and falls back to absolute path for non-link paths.
func resolvePathOrAbs(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}

	abs, absErr := filepath.Abs(path)
	if absErr != nil {
		return "", absErr
	}

	if os.IsNotExist(err) {
		return abs, nil
	}

	return "", err
}

// isPathWithinRoot reports whether target path is inside root path.
func isPathWithinRoot(root string, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}

	if rel == "." {
		return true
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}

	return true
}
