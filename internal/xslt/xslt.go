// Package xslt compiles and applies XSLT 1.0 stylesheets through
// libxslt. A standard compound-deduplication stylesheet is embedded so
// the tool works without any external files; projects can still supply
// their own sheet.
package xslt

import (
	_ "embed"
	"fmt"
	"os"

	xsltproc "github.com/wamuir/go-xslt"
)

//go:embed dedup_index.xsl
var dedupIndexXSL []byte

// Stylesheet is a compiled transform. It holds libxslt resources and
// must be closed after use. Not safe for concurrent use.
type Stylesheet struct {
	xs     *xsltproc.Stylesheet
	source string
}

// Default compiles the embedded deduplication stylesheet: an identity
// transform plus a template that drops every <compound> whose refid
// equals a preceding sibling's, keeping the first occurrence.
func Default() (*Stylesheet, error) {
	xs, err := xsltproc.NewStylesheet(dedupIndexXSL)
	if err != nil {
		return nil, fmt.Errorf("compile embedded stylesheet: %w", err)
	}
	return &Stylesheet{xs: xs, source: "embedded dedup_index.xsl"}, nil
}

// Load reads and compiles the stylesheet file at path.
func Load(path string) (*Stylesheet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	xs, err := xsltproc.NewStylesheet(b)
	if err != nil {
		return nil, fmt.Errorf("compile stylesheet %s: %w", path, err)
	}
	return &Stylesheet{xs: xs, source: path}, nil
}

// Source describes where the stylesheet came from, for diagnostics.
func (s *Stylesheet) Source() string { return s.source }

// Apply transforms doc and returns the serialized result.
func (s *Stylesheet) Apply(doc []byte) ([]byte, error) {
	out, err := s.xs.Transform(doc)
	if err != nil {
		return nil, fmt.Errorf("apply %s: %w", s.source, err)
	}
	return out, nil
}

// Close releases the compiled transform. Safe to call twice.
func (s *Stylesheet) Close() {
	if s.xs != nil {
		s.xs.Close()
		s.xs = nil
	}
}
