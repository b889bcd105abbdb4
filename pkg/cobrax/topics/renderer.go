package topics

import (
	"os"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/mattn/go-isatty"
)

// Renderer turns a topic file's content into terminal output. ext is the
// file extension, including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}

// MarkdownRenderer renders .md topics with glamour and passes anything else
// through. The glamour renderer is built on first use.
type MarkdownRenderer struct {
	Style string // glamour standard style name, or a path to a JSON style
	Width int    // word wrap column, 0 keeps glamour's default

	once     sync.Once
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer picks the style from the environment: "notty" when
// NO_COLOR is set or stdout is not a terminal, "auto" otherwise.
func NewMarkdownRenderer() *MarkdownRenderer {
	style := styles.AutoStyle
	if os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(os.Stdout.Fd()) {
		style = styles.NoTTYStyle
	}
	return &MarkdownRenderer{Style: style}
}

func (r *MarkdownRenderer) init() {
	var opts []glamour.TermRendererOption
	if _, known := styles.DefaultStyles[r.Style]; known || r.Style == styles.AutoStyle {
		opts = append(opts, glamour.WithStandardStyle(r.Style))
	} else if r.Style != "" {
		opts = append(opts, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err == nil {
		r.renderer = tr
	}
}

// Render renders markdown, falling back to the raw content on any glamour
// error.
func (r *MarkdownRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	r.once.Do(r.init)
	if r.renderer == nil {
		return content
	}

	rendered, err := r.renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
