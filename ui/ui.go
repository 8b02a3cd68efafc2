package ui

import (
	"encoding/json"
	"io"
)

// Severity classifies the visual weight of a piece of inline text.
type Severity uint8

const (
	SeverityInfo     Severity = iota // plain
	SeveritySuccess                  // green, resolved
	SeverityWarn                     // yellow
	SeverityError                    // red, not deployed / unsupported
	SeverityCritical                 // bold
)

// StyledText pairs a plain string with a Severity. It marshals to JSON as the
// plain string.
type StyledText struct {
	Text     string
	Severity Severity
}

func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI is all terminal output of the safeaddrs commands. Production code uses
// TerminalUI, tests use RecordingUI.
type UI interface {
	// Style colours t by its severity. Colour-free implementations return
	// t.Text unchanged.
	Style(t StyledText) string

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	// Error does not exit, callers decide what to do next.
	Error(format string, args ...any)
	Critical(format string, args ...any)

	// Section writes a separator centred around title.
	Section(title string)

	// KeyValue renders label/value rows with the values aligned.
	KeyValue(rows [][2]string)

	// Table renders a bordered table. No header row is drawn when headers is
	// empty.
	Table(headers []string, rows [][]string)

	// Spinner shows msg while work is in progress. Call the returned func
	// to stop it.
	Spinner(msg string) func()

	// Indent returns a child UI one level deeper sharing the same output.
	Indent() UI

	// Writer prepends the current indentation to every written line.
	Writer() io.Writer
}
