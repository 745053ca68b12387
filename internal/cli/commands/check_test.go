package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doxutil/doxdedup/internal/cli/output"
	"github.com/doxutil/doxdedup/internal/cli/testutil"
)

func executeCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewCheckCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestCheckClean(t *testing.T) {
	path := testutil.WriteIndex(t, "A", "B", "C")
	original := testutil.ReadFile(t, path)

	out, err := executeCheck(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "No duplicated <compound> elements")
	assert.Contains(t, out, "3 compounds")

	assert.Equal(t, original, testutil.ReadFile(t, path), "check must never write")
}

func TestCheckReportsDuplicates(t *testing.T) {
	path := testutil.WriteIndex(t, "A", "A", "B", "A", "B")
	original := testutil.ReadFile(t, path)

	out, err := executeCheck(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 duplicated refid(s)")

	// Table lists each duplicated group with its occurrence count.
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "B")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "REFID")

	assert.Equal(t, original, testutil.ReadFile(t, path), "check must never write")
}

// executeCheckJSON runs check with a JSON renderer wired into the
// command context, as the root command does for -o json.
func executeCheckJSON(t *testing.T, path string) (*bytes.Buffer, error) {
	t.Helper()

	out := new(bytes.Buffer)
	r := output.NewRendererWithTTY(out, io.Discard, false, output.ModeJSON)

	cmd := NewCheckCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{path})
	cmd.SetContext(WithRenderer(context.Background(), r))

	return out, cmd.Execute()
}

func TestCheckJSONOutput(t *testing.T) {
	path := testutil.WriteIndex(t, "A", "A", "B")

	out, err := executeCheckJSON(t, path)
	require.Error(t, err, "duplicates must still fail the command in JSON mode")

	var got CheckOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, path, got.Path)
	assert.Equal(t, 3, got.Compounds)
	require.Len(t, got.Duplicates, 1)
	assert.Equal(t, "A", got.Duplicates[0].RefID)
	assert.Equal(t, 2, got.Duplicates[0].Count)
}

func TestCheckJSONOutputClean(t *testing.T) {
	path := testutil.WriteIndex(t, "A", "B")

	out, err := executeCheckJSON(t, path)
	require.NoError(t, err)

	var got CheckOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 2, got.Compounds)
	assert.Empty(t, got.Duplicates)
}

func TestCheckMissingFile(t *testing.T) {
	_, err := executeCheck(t, filepath.Join(t.TempDir(), "nope.xml"))
	require.Error(t, err)
}

func TestCheckMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.xml")
	require.NoError(t, os.WriteFile(path, []byte("<doxygenindex><compound"), 0o644))

	_, err := executeCheck(t, path)
	require.Error(t, err)
}
