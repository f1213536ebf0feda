// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sectionRule = "================"

// CollectorOptions configures content collection.
type CollectorOptions struct {
	// Extensions is the file extension allow-list ("py", ".py" and "*.py"
	// forms accepted). Empty list collects every included file.
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	// Timestamp overrides the snapshot generation time. Zero means now.
	Timestamp time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// CollectSummary reports one collection pass.
type CollectSummary struct {
	// Manifest lists included relative paths in output order.
	Manifest []string `json:"manifest" yaml:"manifest"`
	// Unreadable counts files whose content was replaced by an error marker.
	Unreadable int `json:"unreadable,omitempty" yaml:"unreadable,omitempty"`
}

// Collector concatenates included file contents into one text bundle with
// per-file headers, a manifest, and a summary count.
//
// File bytes are decoded best-effort: UTF-8 passes through, UTF-16 with BOM
// is converted, undecodable bytes become replacement runes. Unreadable files
// keep their section with an inline error marker.
type Collector struct {
	walker *Walker
	opts   CollectorOptions
	allow  map[string]bool
}

// NewCollector creates a collector over one walker.
func NewCollector(walker *Walker, opts CollectorOptions) *Collector {
	return &Collector{
		walker: walker,
		opts:   opts,
		allow:  extensionSet(opts.Extensions),
	}
}

// Collect walks the root and writes per-file sections plus the manifest.
func (c *Collector) Collect(ctx context.Context, out io.Writer) (*CollectSummary, error) {
	files, err := c.listFiles(ctx)
	if err != nil {
		return nil, err
	}

	summary := &CollectSummary{Manifest: files}
	if err := c.writeFileSections(out, summary); err != nil {
		return nil, err
	}

	if err := c.writeManifest(out, summary); err != nil {
		return nil, err
	}

	return summary, nil
}

// WriteSnapshot writes the full snapshot document: header, rendered tree,
// file sections, manifest and summary count.
func (c *Collector) WriteSnapshot(ctx context.Context, out io.Writer) (*CollectSummary, error) {
	ts := c.opts.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := fmt.Fprintf(out, "# Codebase Summary\n- **Project:** %s\n- **Generated:** %s\n\n",
		filepath.Base(c.walker.Root()), ts.Format("2006-01-02 15:04:05"))
	if err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	if _, err := fmt.Fprintf(out, "%s\nDirectory Tree\n%s\n\n", sectionRule, sectionRule); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	if err := NewTreeRenderer(c.walker).Render(ctx, out); err != nil {
		return nil, err
	}

	if _, err := io.WriteString(out, "\n"); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	return c.Collect(ctx, out)
}

// listFiles walks the root and returns included files passing the allow-list.
func (c *Collector) listFiles(ctx context.Context) ([]string, error) {
	var files []string

	err := c.walker.Walk(ctx, func(entry PathEntry, decision Decision, err error) (WalkAction, error) {
		if err != nil || decision.Ignored {
			return WalkSkip, nil
		}

		if entry.IsDir {
			return WalkRecurse, nil
		}

		if extensionAllowed(c.allow, entry.RelPath) {
			files = append(files, entry.RelPath)
		}

		return WalkRecurse, nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// writeFileSections writes the delimited per-file content sections.
func (c *Collector) writeFileSections(out io.Writer, summary *CollectSummary) error {
	if _, err := fmt.Fprintf(out, "%s\nFiles\n%s\n\n", sectionRule, sectionRule); err != nil {
		return fmt.Errorf("write sections: %w", err)
	}

	for _, rel := range summary.Manifest {
		if _, err := fmt.Fprintf(out, "%s\nFile: %s\n%s\n", sectionRule, rel, sectionRule); err != nil {
			return fmt.Errorf("write section %s: %w", rel, err)
		}

		full := filepath.Join(c.walker.Root(), filepath.FromSlash(rel))
		raw, err := os.ReadFile(full)
		if err != nil {
			summary.Unreadable++
			if _, err := fmt.Fprintf(out, "[Error reading content: %v]", err); err != nil {
				return fmt.Errorf("write section %s: %w", rel, err)
			}
		} else if _, err := io.WriteString(out, decodeText(raw)); err != nil {
			return fmt.Errorf("write section %s: %w", rel, err)
		}

		if _, err := io.WriteString(out, "\n\n"); err != nil {
			return fmt.Errorf("write section %s: %w", rel, err)
		}
	}

	return nil
}

// writeManifest writes the trailing manifest list and summary count.
func (c *Collector) writeManifest(out io.Writer, summary *CollectSummary) error {
	if _, err := io.WriteString(out, "List of Included Files\n====================\n"); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	for _, rel := range summary.Manifest {
		if _, err := fmt.Fprintln(out, rel); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
	}

	if _, err := fmt.Fprintf(out, "\nSummary: %d files included.\n", len(summary.Manifest)); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// decodeText decodes file bytes to UTF-8 text best-effort.
func decodeText(raw []byte) string {
	t := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(t, raw)
	if err != nil {
		return string(raw)
	}

	return string(decoded)
}
