package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/doxutil/doxdedup/internal/cli/output"
	"github.com/doxutil/doxdedup/internal/index"
)

// CheckOutput is the JSON output for the check command.
type CheckOutput struct {
	Path       string                 `json:"path"`
	Compounds  int                    `json:"compounds"`
	Duplicates []index.DuplicateGroup `json:"duplicates"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <index.xml>",
		Short: "Report duplicated <compound> entries without modifying the file",
		Long: `Parse a Doxygen index.xml and list every refid that occurs in more
than one <compound> element. The file is never written.

The command exits non-zero when duplicates are present, so it can act
as a CI gate verifying that the dedup build step ran.`,
		Example: `  # Human-readable report
  doxdedup check xml/index.xml

  # Machine-readable, for scripting
  doxdedup -o json check xml/index.xml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0])
		},
	}
}

func runCheck(cmd *cobra.Command, path string) error {
	r := GetRenderer(cmd)

	ix, err := index.ParseFile(path)
	if err != nil {
		return err
	}

	out := &CheckOutput{
		Path:       path,
		Compounds:  len(ix.Compounds()),
		Duplicates: ix.DuplicateGroups(),
	}

	switch {
	case r.JSONMode():
		if err := r.JSON(out); err != nil {
			return err
		}
	case len(out.Duplicates) == 0:
		r.Success(fmt.Sprintf("No duplicated <compound> elements in %s (%d compounds)", path, out.Compounds))
	default:
		renderCheckTable(r, out)
	}

	if len(out.Duplicates) > 0 {
		return fmt.Errorf("%d duplicated refid(s) in %s", len(out.Duplicates), path)
	}
	return nil
}

func renderCheckTable(r *output.Renderer, out *CheckOutput) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"REFID", "KIND", "NAME", "COUNT"})
	for _, g := range out.Duplicates {
		t.AppendRow(table.Row{g.RefID, g.Kind, g.Name, g.Count})
	}
	t.Render()
}
