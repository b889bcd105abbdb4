package style

import (
	"github.com/arthur-debert/karabuild/pkg/modifiers"
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	NormalStyle = lipgloss.NewStyle().Foreground(TextColor)
	MutedStyle  = lipgloss.NewStyle().Foreground(MutedColor)
	PathStyle   = lipgloss.NewStyle().Foreground(SubtleColor).Italic(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
)

// Modifier expressions and their resolution
var (
	AliasStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true).
			PaddingRight(1)

	MandatoryStyle = lipgloss.NewStyle().Foreground(MandatoryColor).Bold(true)
	OptionalStyle  = lipgloss.NewStyle().Foreground(OptionalColor).Italic(true)
)

var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
)

// KindStyle returns the style for an alias kind in the aliases table.
// Unknown kinds get MutedStyle.
func KindStyle(kind modifiers.AliasKind) lipgloss.Style {
	color, ok := kindColors[kind]
	if !ok {
		return MutedStyle
	}
	return lipgloss.NewStyle().Foreground(color)
}

// Indent pads s by two spaces per level.
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
