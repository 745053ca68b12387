package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doxutil/doxdedup/internal/cli/output"
	"github.com/doxutil/doxdedup/internal/dedup"
)

// RunDedup deduplicates the index file at path in place and renders
// the outcome. This is the root command's action; watch reuses it per
// change event.
func RunDedup(cmd *cobra.Command, path string) error {
	cfg := GetConfig(cmd.Context())
	r := GetRenderer(cmd)

	d, err := dedup.New(dedup.Options{
		StylesheetPath: cfg.StylesheetPath(),
		Logger:         newLogger(cfg, cmd.ErrOrStderr()),
	})
	if err != nil {
		return err
	}
	defer d.Close()

	res, err := d.Run(cmd.Context(), path)
	if err != nil {
		return err
	}

	return renderResult(r, res)
}

func renderResult(r *output.Renderer, res *dedup.Result) error {
	if r.JSONMode() {
		return r.JSON(res)
	}
	if res.Removed > 0 {
		r.Success(fmt.Sprintf("Removed %d duplicated <compound> element(s) in %s", res.Removed, res.Path))
	} else {
		r.Success(fmt.Sprintf("No duplicated <compound> elements in %s", res.Path))
	}
	return nil
}
