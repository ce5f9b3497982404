package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown with glamour. Plain text content and
// any rendering failure pass through unchanged.
type GlamourRenderer struct {
	// Style is a glamour style name or a path to a style file. Empty or
	// "auto" picks light or dark from the terminal; NO_COLOR forces "notty".
	Style string
	// Width is the word wrap column, 0 for glamour's default
	Width int
}

// NewGlamourRenderer returns a renderer with automatic style detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) options() []glamour.TermRendererOption {
	var opts []glamour.TermRendererOption

	switch {
	case os.Getenv("NO_COLOR") != "":
		opts = append(opts, glamour.WithStandardStyle("notty"))
	case r.Style == "" || r.Style == "auto":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStylePath(r.Style))
	}

	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}
	return opts
}

// Render converts markdown content (format ".md") for terminal display
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	tr, err := glamour.NewTermRenderer(r.options()...)
	if err != nil {
		return content
	}

	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}
