package ui_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/karabuild/pkg/errors"
	"github.com/arthur-debert/karabuild/pkg/karabiner"
	"github.com/arthur-debert/karabuild/pkg/modifiers"
	"github.com/arthur-debert/karabuild/pkg/ui"
	"github.com/arthur-debert/karabuild/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func sampleResolutions() *display.ResolveResult {
	return &display.ResolveResult{Results: []display.Resolution{
		{Input: "hyper", Modifiers: &karabiner.FromModifiers{
			Mandatory: []string{"command", "option", "control", "shift"},
		}},
		{Input: "⌘ ??", Modifiers: &karabiner.FromModifiers{
			Mandatory: []string{"command"},
			Optional:  []string{"any"},
		}},
		{Input: "cmmd", Error: `[UNKNOWN_ALIAS] unknown modifier alias "cmmd"`},
	}}
}

func TestNewRendererFormats(t *testing.T) {
	for _, f := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		r, err := ui.NewRenderer(f, &bytes.Buffer{})
		require.NoError(t, err, f.String())
		assert.NotNil(t, r)
	}

	_, err := ui.NewRenderer(ui.Format(42), &bytes.Buffer{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResolutions()))
	out := buf.String()
	assert.Contains(t, out, "hyper\tmandatory: command option control shift\n")
	assert.Contains(t, out, "⌘ ??\tmandatory: command  optional: any\n")
	assert.Contains(t, out, "cmmd\terror: [UNKNOWN_ALIAS]")

	buf.Reset()
	require.NoError(t, r.RenderResult(&display.AliasTable{Aliases: modifiers.Vocabulary()}))
	assert.Contains(t, buf.String(), "hyper")
	assert.Contains(t, buf.String(), "combination")

	buf.Reset()
	require.NoError(t, r.RenderResult(&display.ProfileList{Profiles: []string{"Default profile", "Work"}, Current: "Work"}))
	assert.Equal(t, "  Default profile\n* Work\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrProfileNotFound, "no such profile")))
	assert.Equal(t, "Error: [PROFILE_NOT_FOUND] no such profile\n", buf.String())
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResolutions()))
	doc := gjson.Parse(buf.String())
	assert.Equal(t, "hyper", doc.Get("results.0.input").String())
	assert.Equal(t, "any", doc.Get("results.1.modifiers.optional.0").String())
	assert.True(t, doc.Get("results.2.modifiers").Type == gjson.Null)
	assert.Contains(t, doc.Get("results.2.error").String(), "UNKNOWN_ALIAS")

	buf.Reset()
	err = errors.New(errors.ErrProfileNotFound, "no such profile").WithDetail("profile", "Gaming")
	require.NoError(t, r.RenderError(err))
	doc = gjson.Parse(buf.String())
	assert.Equal(t, "PROFILE_NOT_FOUND", doc.Get("code").String())
	assert.Equal(t, "Gaming", doc.Get("details.profile").String())

	buf.Reset()
	require.NoError(t, r.RenderError(assert.AnError))
	doc = gjson.Parse(buf.String())
	assert.Equal(t, assert.AnError.Error(), doc.Get("error").String())
	assert.False(t, doc.Get("code").Exists())

	buf.Reset()
	require.NoError(t, r.RenderMessage("done"))
	assert.Equal(t, "{\n  \"message\": \"done\"\n}\n", buf.String())
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResolutions()))
	out := buf.String()
	assert.Contains(t, out, "hyper")
	assert.Contains(t, out, "command option control shift")
	assert.Contains(t, out, "UNKNOWN_ALIAS")

	buf.Reset()
	require.NoError(t, r.RenderResult(&display.AliasTable{Aliases: modifiers.Vocabulary()}))
	assert.Contains(t, buf.String(), "Modifier aliases")
	assert.Contains(t, buf.String(), "⌘⌥⌃⇧")
}
