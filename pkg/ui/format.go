package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/karabuild/pkg/errors"
	"github.com/muesli/termenv"
)

// Format selects a Renderer
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText from the output's capabilities
	FormatAuto Format = iota
	FormatTerminal
	FormatText
	FormatJSON
)

// formatNames maps every accepted --format spelling, lower case
var formatNames = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

// String returns the canonical name, as listed in the --format help
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat accepts any spelling in formatNames, case-insensitively
func ParseFormat(s string) (Format, error) {
	if f, ok := formatNames[strings.ToLower(s)]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s (use auto, term, text or json)", s).
		WithDetail("format", s)
}

// DetectFormat resolves FormatAuto for output. Styling needs a terminal
// with color support and NO_COLOR unset; CLICOLOR_FORCE overrides.
func DetectFormat(output *os.File) Format {
	if termenv.NewOutput(output).EnvColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
