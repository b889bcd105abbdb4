// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/karabuild/pkg/style"
	"github.com/arthur-debert/karabuild/pkg/ui/display"
	"github.com/charmbracelet/lipgloss"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.ResolveResult:
		return r.renderResolutions(v)
	case *display.AliasTable:
		return r.renderAliases(v)
	case *display.ProfileList:
		return r.renderProfiles(v)
	default:
		_, err := fmt.Fprintf(r.output, "%v\n", result)
		return err
	}
}

func (r *Renderer) renderResolutions(v *display.ResolveResult) error {
	width := 0
	for _, res := range v.Results {
		width = max(width, lipgloss.Width(res.Input))
	}
	inputStyle := style.AliasStyle.Width(width)

	for _, res := range v.Results {
		var line string
		switch {
		case res.Error != "":
			line = fmt.Sprintf("%s %s %s", style.ErrorIndicator, inputStyle.Render(res.Input), style.ErrorStyle.Render(res.Error))
		case res.Modifiers == nil:
			line = fmt.Sprintf("%s %s %s", style.SuccessIndicator, inputStyle.Render(res.Input), style.MutedStyle.Render("(no modifiers)"))
		default:
			var parts []string
			if len(res.Modifiers.Mandatory) > 0 {
				parts = append(parts, style.MandatoryStyle.Render(strings.Join(res.Modifiers.Mandatory, " ")))
			}
			if len(res.Modifiers.Optional) > 0 {
				parts = append(parts, style.MutedStyle.Render("optional")+" "+style.OptionalStyle.Render(strings.Join(res.Modifiers.Optional, " ")))
			}
			line = fmt.Sprintf("%s %s %s", style.SuccessIndicator, inputStyle.Render(res.Input), strings.Join(parts, "  "))
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderAliases(v *display.AliasTable) error {
	width := 0
	for _, e := range v.Aliases {
		width = max(width, lipgloss.Width(e.Alias))
	}
	aliasStyle := style.AliasStyle.Width(width + 2)

	if _, err := fmt.Fprintln(r.output, style.TitleStyle.Render("Modifier aliases")); err != nil {
		return err
	}
	for _, e := range v.Aliases {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			aliasStyle.Render(e.Alias),
			style.KindStyle(e.Kind).Width(13).Render(string(e.Kind)),
			style.NormalStyle.Render(e.Meaning),
		)
		if _, err := fmt.Fprintln(r.output, style.Indent(row, 1)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderProfiles(v *display.ProfileList) error {
	if _, err := fmt.Fprintln(r.output, style.PathStyle.Render(v.Path)); err != nil {
		return err
	}
	for _, name := range v.Profiles {
		line := style.Indent(style.NormalStyle.Render(name), 1)
		if name == v.Current {
			line = style.Indent(style.SuccessStyle.Render(name)+" "+style.MutedStyle.Render("(build target)"), 1)
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error with terminal styling
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "%s %s\n", style.ErrorIndicator, style.ErrorStyle.Render(err.Error()))
	return writeErr
}

// RenderMessage renders a simple message with terminal styling
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.NormalStyle.Render(msg))
	return err
}
