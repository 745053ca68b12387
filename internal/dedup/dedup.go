// Package dedup removes duplicated <compound> entries from a Doxygen
// index file by applying an XSLT stylesheet and replacing the file
// with the result.
package dedup

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/doxutil/doxdedup/internal/index"
	"github.com/doxutil/doxdedup/internal/xslt"
)

// Options configures a Deduplicator.
type Options struct {
	// StylesheetPath selects an external XSLT file. Empty means the
	// embedded default stylesheet.
	StylesheetPath string

	// DryRun computes the result without touching the input file.
	DryRun bool

	// Logger receives debug diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Result describes one dedup run.
type Result struct {
	Path       string `json:"path"`
	Before     int    `json:"compounds_before"`
	After      int    `json:"compounds_after"`
	Removed    int    `json:"removed"`
	Changed    bool   `json:"changed"`
	Stylesheet string `json:"stylesheet"`
}

// Deduplicator applies a compound-deduplication stylesheet to index
// files. The stylesheet is compiled once and reused across runs;
// callers own Close.
type Deduplicator struct {
	sheet  *xslt.Stylesheet
	dryRun bool
	log    *slog.Logger
}

// New compiles the configured stylesheet. A missing or malformed
// stylesheet fails here, before any input file is touched.
func New(opts Options) (*Deduplicator, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var (
		sheet *xslt.Stylesheet
		err   error
	)
	if opts.StylesheetPath != "" {
		sheet, err = xslt.Load(opts.StylesheetPath)
	} else {
		sheet, err = xslt.Default()
	}
	if err != nil {
		return nil, err
	}

	log.Debug("stylesheet compiled", "source", sheet.Source())
	return &Deduplicator{sheet: sheet, dryRun: opts.DryRun, log: log}, nil
}

// Close releases the compiled stylesheet.
func (d *Deduplicator) Close() { d.sheet.Close() }

// Run deduplicates the index file at path in place and reports what
// changed. The transform result is staged in a temporary file and
// renamed over path, so on any failure the file keeps its original
// content. The final path always equals the input path.
func (d *Deduplicator) Run(ctx context.Context, path string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	before, err := index.ParseBytes(in)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	out, err := d.sheet.Apply(in)
	if err != nil {
		return nil, err
	}

	after, err := index.ParseBytes(out)
	if err != nil {
		return nil, fmt.Errorf("transform of %s produced malformed XML: %w", path, err)
	}

	res := &Result{
		Path:       path,
		Before:     len(before.Compounds()),
		After:      len(after.Compounds()),
		Changed:    !bytes.Equal(in, out),
		Stylesheet: d.sheet.Source(),
	}
	res.Removed = res.Before - res.After

	d.log.Debug("transform complete",
		"path", path,
		"compounds_before", res.Before,
		"compounds_after", res.After,
		"removed", res.Removed,
		"changed", res.Changed)

	if d.dryRun || !res.Changed {
		return res, nil
	}

	if err := replaceFile(path, out); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return res, nil
}
