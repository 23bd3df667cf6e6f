package scanner

import "fmt"

// Severity distinguishes hard lexical errors from advisory hints.
type Severity int

const (
	SeverityError Severity = iota
	SeverityInfo
)

// String returns a string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	default:
		return "error"
	}
}

// Diagnostic is a structured lexical diagnostic. The scanner collects these
// instead of aborting; the driver decides whether they are fatal.
type Diagnostic struct {
	Severity Severity
	Code     string // catalog code, e.g. "SYNTAX-0002"
	Message  string
	Line     int
	Column   int
}

// Position returns the line:column position string for the diagnostic.
func (d Diagnostic) Position() string {
	return fmt.Sprintf("%d:%d", d.Line, d.Column)
}

// String returns a formatted one-line representation of the diagnostic
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s [%s]", d.Severity, d.Message, d.Position())
}

// HasErrors reports whether any diagnostic in the slice is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
