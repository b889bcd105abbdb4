package style

import (
	"strings"
	"testing"

	"github.com/arthur-debert/karabuild/pkg/modifiers"
	"github.com/stretchr/testify/assert"
)

func TestIndent(t *testing.T) {
	assert.Equal(t, "    x", Indent("x", 2))
	assert.Equal(t, "x", Indent("x", 0))
}

func TestIndicatorsKeepGlyphs(t *testing.T) {
	assert.True(t, strings.Contains(SuccessIndicator, "✓"))
	assert.True(t, strings.Contains(ErrorIndicator, "✗"))
	assert.True(t, strings.Contains(WarningIndicator, "!"))
}

func TestAliasStylePads(t *testing.T) {
	out := AliasStyle.Width(6).Render("cmd")
	assert.Contains(t, out, "cmd")
	assert.GreaterOrEqual(t, len(out), 6)
}

func TestKindStyle(t *testing.T) {
	for kind, color := range kindColors {
		assert.Equal(t, color, KindStyle(kind).GetForeground(), kind)
	}
	assert.Equal(t, MutedStyle, KindStyle(modifiers.AliasKind("other")))
	assert.Contains(t, KindStyle(modifiers.KindWildcard).Render("??"), "??")
}
