package style

import (
	"github.com/arthur-debert/karabuild/pkg/modifiers"
	"github.com/charmbracelet/lipgloss"
)

// Palette. Every color has a light and a dark terminal variant.
var (
	AccentColor  = lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"}
	SubtleColor  = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#A0A8B0"}
	HeadingColor = lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"}
	TextColor    = lipgloss.AdaptiveColor{Light: "#495057", Dark: "#E9ECEF"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}

	SuccessColor = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD54F"}
)

// Resolved modifiers: purple for mandatory, sky blue for optional
var (
	MandatoryColor = lipgloss.AdaptiveColor{Light: "#8B5CF6", Dark: "#A78BFA"}
	OptionalColor  = lipgloss.AdaptiveColor{Light: "#0EA5E9", Dark: "#38BDF8"}
)

// kindColors colors the kind column of the aliases table
var kindColors = map[modifiers.AliasKind]lipgloss.AdaptiveColor{
	modifiers.KindModifier:    MandatoryColor,
	modifiers.KindSide:        AccentColor,
	modifiers.KindCombination: SuccessColor,
	modifiers.KindWildcard:    OptionalColor,
}
