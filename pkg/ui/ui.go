// Package ui renders command results as styled terminal output, plain text
// or JSON. Result types live in pkg/ui/display.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/karabuild/pkg/errors"
	"github.com/arthur-debert/karabuild/pkg/ui/json"
	"github.com/arthur-debert/karabuild/pkg/ui/terminal"
	"github.com/arthur-debert/karabuild/pkg/ui/text"
)

// Renderer is implemented by each output format
type Renderer interface {
	// RenderResult renders a *display.ResolveResult, *display.AliasTable
	// or *display.ProfileList
	RenderResult(result interface{}) error
	RenderError(err error) error
	RenderMessage(msg string) error
}

// NewRenderer returns the renderer for format. FormatAuto inspects output
// when it is a file; any other writer gets plain text.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	if format == FormatAuto {
		format = FormatText
		if f, ok := output.(*os.File); ok {
			format = DetectFormat(f)
		}
	}

	switch format {
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
