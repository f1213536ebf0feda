// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

import (
	"reflect"
	"testing"
)

func TestParseExtensions(t *testing.T) {
	t.Parallel()

	got := ParseExtensions([]string{"txt", ".md", "*.PY", " ", "", "md"})
	want := []string{".txt", ".md", ".py"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseExtensions=%v, want %v", got, want)
	}
}

func TestExtensionAllowed(t *testing.T) {
	t.Parallel()

	set := extensionSet([]string{"py", "md"})

	if !extensionAllowed(set, "src/main.py") {
		t.Fatalf("main.py must pass allow-list")
	}

	if !extensionAllowed(set, "README.MD") {
		t.Fatalf("extension check must be case-insensitive")
	}

	if extensionAllowed(set, "binary.o") {
		t.Fatalf("binary.o must not pass allow-list")
	}

	if extensionAllowed(set, "Makefile") {
		t.Fatalf("extension-less file must not pass a non-empty allow-list")
	}

	if !extensionAllowed(nil, "anything.bin") {
		t.Fatalf("empty allow-list must pass everything")
	}
}
