// Package output renders validation results, field checks, lint issues
// and rule catalogues for the command line.
//
// Every format implements Renderer:
//
//   - term: colored output with severity badges (pterm, lipgloss); rule
//     catalogues are rendered from markdown with glamour
//   - text: plain text, for pipes and NO_COLOR
//   - json: the result document {"conflicts": [...], "warnings": [...]}
//   - markdown: raw markdown
//   - junit: JUnit XML for CI systems, validation and lint only
//
// FormatAuto resolves to term or text depending on the output stream.
package output
