package output

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/settingsguard/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks term or text from the output stream
	FormatAuto Format = iota
	// FormatTerminal renders rich terminal output with colors and styling
	FormatTerminal
	// FormatText renders plain text output without any styling
	FormatText
	// FormatJSON renders machine-readable JSON output
	FormatJSON
	// FormatMarkdown renders raw markdown
	FormatMarkdown
	// FormatJUnit renders a JUnit XML report
	FormatJUnit
)

// String returns the string representation of the format
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
	case FormatMarkdown:
		return "markdown"
	case FormatJUnit:
		return "junit"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "junit", "xml":
		return FormatJUnit, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrUnsupportedFormat,
			"unknown format: %s (want auto, term, text, json, markdown or junit)", s)
	}
}

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}

// Resolve turns FormatAuto into a concrete format for w. Writers that are
// not files are treated as pipes.
func Resolve(f Format, w io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if file, ok := w.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatText
}
