// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arthur-debert/karabuild/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.ResolveResult:
		for _, res := range v.Results {
			line := res.Summary()
			if res.Error != "" {
				line = "error: " + res.Error
			}
			if _, err := fmt.Fprintf(r.output, "%s\t%s\n", res.Input, line); err != nil {
				return err
			}
		}
		return nil
	case *display.AliasTable:
		tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
		for _, e := range v.Aliases {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Alias, e.Kind, e.Meaning); err != nil {
				return err
			}
		}
		return tw.Flush()
	case *display.ProfileList:
		for _, name := range v.Profiles {
			marker := " "
			if name == v.Current {
				marker = "*"
			}
			if _, err := fmt.Fprintf(r.output, "%s %s\n", marker, name); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintf(r.output, "%v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
