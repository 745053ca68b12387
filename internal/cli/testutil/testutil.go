// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// IndexXML builds a minimal Doxygen index document containing one
// <compound> per refid, in the given order. Repeating a refid yields
// the duplicate shape Doxygen produces.
func IndexXML(refids ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<doxygenindex version="1.9.8" xml:lang="en-US">` + "\n")
	for _, refid := range refids {
		fmt.Fprintf(&b, "  <compound refid=%q kind=\"class\"><name>%s</name></compound>\n", refid, refid)
	}
	b.WriteString("</doxygenindex>\n")
	return b.String()
}

// WriteIndex writes an index document with the given refids into a
// fresh temp directory and returns its path.
func WriteIndex(t *testing.T, refids ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "index.xml")
	if err := os.WriteFile(path, []byte(IndexXML(refids...)), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// ReadFile reads a file or fails the test.
func ReadFile(t *testing.T, path string) []byte {
	t.Helper()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return b
}
