package output

import (
	"io"

	"github.com/arthur-debert/settingsguard/pkg/errors"
	"github.com/arthur-debert/settingsguard/pkg/logging"
	"github.com/arthur-debert/settingsguard/pkg/rules"
	"github.com/arthur-debert/settingsguard/pkg/types"
)

// Renderer writes command results in one output format
type Renderer interface {
	// Result renders a full validation result
	Result(res types.Result) error
	// Check renders the answer to a what-if query
	Check(check types.FieldCheck) error
	// Lint renders rule lint issues
	Lint(issues []rules.LintIssue) error
	// Rules renders the catalogue of an effective rule set
	Rules(rs rules.RuleSet, sources []string) error
}

// Options tune renderers
type Options struct {
	// MinSeverity is the lowest warning severity reported as a failure by
	// the JUnit renderer; lower warnings become passing test cases
	MinSeverity types.Severity
	// Width wraps markdown rendered for the terminal, 0 for the default
	Width int
}

// NewRenderer returns the renderer for format writing to w. FormatAuto is
// resolved against w first.
func NewRenderer(w io.Writer, format Format, opts Options) (Renderer, error) {
	logger := logging.GetLogger("output")

	if opts.MinSeverity == "" {
		opts.MinSeverity = types.SeverityMedium
	}

	resolved := Resolve(format, w)
	logger.Debug().
		Str("requested", format.String()).
		Str("resolved", resolved.String()).
		Msg("Selected output format")

	switch resolved {
	case FormatTerminal:
		return &TerminalRenderer{w: w, width: opts.Width}, nil
	case FormatText:
		return &TextRenderer{w: w}, nil
	case FormatJSON:
		return &JSONRenderer{w: w}, nil
	case FormatMarkdown:
		return &MarkdownRenderer{w: w}, nil
	case FormatJUnit:
		return &JUnitRenderer{w: w, minSeverity: opts.MinSeverity}, nil
	default:
		return nil, errors.Newf(errors.ErrUnsupportedFormat, "unsupported output format %s", resolved)
	}
}
