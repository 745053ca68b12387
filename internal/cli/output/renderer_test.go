package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeValid(t *testing.T) {
	tests := []struct {
		mode Mode
		want bool
	}{
		{ModeAuto, true},
		{ModeText, true},
		{ModeJSON, true},
		{Mode(""), true},
		{Mode("yaml"), false},
		{Mode("markdown"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.Valid())
		})
	}
}

func TestRendererStreams(t *testing.T) {
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	r := NewRendererWithTTY(out, errOut, false, ModeText)

	r.Success("done")
	r.Info("detail")
	r.Warning("careful")
	r.Error("broken")

	assert.Contains(t, out.String(), "done")
	assert.Contains(t, out.String(), "detail")
	assert.NotContains(t, out.String(), "careful")
	assert.Contains(t, errOut.String(), "careful")
	assert.Contains(t, errOut.String(), "broken")
}

func TestRendererNoStylingWithoutTTY(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRendererWithTTY(out, new(bytes.Buffer), false, ModeText)

	r.Success("plain")
	assert.Equal(t, "plain\n", out.String(), "non-TTY output must carry no escape sequences")
}

func TestRendererJSON(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRendererWithTTY(out, new(bytes.Buffer), false, ModeJSON)

	assert.True(t, r.JSONMode())
	require.NoError(t, r.JSON(map[string]int{"removed": 2}))

	var got map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 2, got["removed"])
}

func TestRendererAutoResolvesToText(t *testing.T) {
	r := NewRendererWithTTY(new(bytes.Buffer), new(bytes.Buffer), false, ModeAuto)
	assert.False(t, r.JSONMode())

	r = NewRendererWithTTY(new(bytes.Buffer), new(bytes.Buffer), false, "")
	assert.False(t, r.JSONMode())
}
