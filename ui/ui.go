package ui

import (
	"encoding/json"
	"io"
)

// Severity classifies the visual weight of a piece of inline text, mirroring
// the five output methods on UI. The print layer maps each value to the
// corresponding terminal style; data consumers (JSON, tests) see plain text.
type Severity uint8

const (
	SeverityInfo     Severity = iota // plain — no colour emphasis
	SeveritySuccess                  // green  — known / positive
	SeverityWarn                     // yellow — uncertain / needs attention
	SeverityError                    // red    — unknown / negative
	SeverityCritical                 // bold   — must-review before action
)

// StyledText pairs a plain string with a Severity annotation.
//
// JSON serialization: the struct marshals as just the plain Text string so
// consumers receive clean output with no ANSI codes and no extra structure.
//
// Terminal rendering: pass the value to [UI.Style] to obtain the
// appropriately coloured string for embedding in a format call:
//
//	u.Info("Target: %s", u.Style(d.Target))
type StyledText struct {
	Text     string
	Severity Severity
}

// MarshalJSON serializes StyledText as a plain JSON string (just Text).
func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI provides all terminal output for govscope commands.
//
// It abstracts output and indentation so that:
//   - Production code uses TerminalUI (writes to os.Stdout)
//   - Tests use RecordingUI (captures all output for assertions)
//
// # Indentation / nesting
//
// Use [UI.Indent] to get a child UI at one deeper indent level, e.g. when
// rendering the parameters of one transaction inside a proposal listing. The
// child shares the same underlying writer, so output ordering is preserved
// across scopes.
type UI interface {
	// Style returns the text from t coloured according to its Severity.
	// Use this to embed a styled value inside a larger Info/Critical/... line:
	//
	//	u.Info("Target: %s (%s)", u.Style(d.Target), d.ContractName)
	//
	// When colours are disabled (e.g. piped output, RecordingUI) the plain
	// text is returned unchanged.
	Style(t StyledText) string

	// Info writes a neutral status line (no prefix, no color).
	Info(format string, args ...any)

	// Success writes a positive outcome in green.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning in yellow.
	Warn(format string, args ...any)

	// Error writes a failure in red.
	// This does NOT exit or return an error — callers decide what to do next.
	Error(format string, args ...any)

	// Critical writes data the user must review before acting on a proposal —
	// irreversible operations, authority transfers, contract upgrades.
	// Rendered bold so it stands out from plain Info output.
	Critical(format string, args ...any)

	// Section writes a visual separator centred around a title.
	// Example: "===== Transaction 2 of 5 ====="
	Section(title string)

	// KeyValue renders an aligned 2-column block — label on the left,
	// value on the right — with all values left-aligned to the same column.
	// Use for compact metadata like Target/Function/Value/Severity.
	KeyValue(rows [][2]string)

	// Table renders a full bordered table with a header row followed by data
	// rows. Use when there are 3+ columns or the data is inherently tabular
	// (e.g. a decoded parameter list).
	Table(headers []string, rows [][]string)

	// TableWithGroups renders a bordered table where each group of rows is
	// visually separated from the next by a horizontal divider line. Use when
	// rows belong to distinct logical groups (e.g. one group per transaction).
	TableWithGroups(headers []string, groups [][][]string)

	// Spinner starts an animated spinner with the given message and returns a
	// stop function. Call the stop function (or defer it) to clear the spinner
	// once the work is done:
	//
	//	stop := u.Spinner("Building contract index...")
	//	defer stop()
	//
	// In RecordingUI and non-terminal contexts the stop function is a no-op.
	Spinner(msg string) func()

	// Indent returns a child UI with indent level increased by one,
	// sharing the same underlying writer as the parent.
	Indent() UI

	// Writer returns an io.Writer that prepends the current indentation
	// to every line. Use this when calling functions that take io.Writer
	// directly (e.g. a JSON encoder).
	Writer() io.Writer
}
