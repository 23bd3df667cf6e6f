// Package loxerr provides structured error types for the Lox compiler.
//
// It defines LoxError, a unified error type used across compilation stages,
// plus the compile-error kind enumeration and a catalog of coded error
// definitions. The scanner emits diagnostics that reference catalog codes;
// later stages (parser, interpreter) reserve the rest of the taxonomy.
package loxerr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

// ErrorClass categorizes errors for filtering and templating.
type ErrorClass string

const (
	ClassCompile ErrorClass = "compile" // Scanner/parser errors
	ClassRuntime ErrorClass = "runtime" // Interpreter errors
)

// Kind is the fine-grained compile-error enumeration. The scanner only ever
// emits SyntaxError; the rest is reserved for later stages.
type Kind int

const (
	SyntaxError Kind = iota
	UnexpectedToken
	MissingToken
	UnterminatedString
	InvalidLiteral
	TypeMismatch
	UndefinedVariable
	Redeclaration
	InvalidAssignment
	MissingSemicolon
	InvalidFunctionCall
	ParameterCountMismatch
	DivisionByZero
	InvalidReturn
	UnexpectedEOF
	DuplicateLabel
	InvalidOperator
	ConstantReassignment
)

// String returns a string representation of the error kind
func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case UnexpectedToken:
		return "UnexpectedToken"
	case MissingToken:
		return "MissingToken"
	case UnterminatedString:
		return "UnterminatedString"
	case InvalidLiteral:
		return "InvalidLiteral"
	case TypeMismatch:
		return "TypeMismatch"
	case UndefinedVariable:
		return "UndefinedVariable"
	case Redeclaration:
		return "Redeclaration"
	case InvalidAssignment:
		return "InvalidAssignment"
	case MissingSemicolon:
		return "MissingSemicolon"
	case InvalidFunctionCall:
		return "InvalidFunctionCall"
	case ParameterCountMismatch:
		return "ParameterCountMismatch"
	case DivisionByZero:
		return "DivisionByZero"
	case InvalidReturn:
		return "InvalidReturn"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case DuplicateLabel:
		return "DuplicateLabel"
	case InvalidOperator:
		return "InvalidOperator"
	case ConstantReassignment:
		return "ConstantReassignment"
	default:
		return "UnknownError"
	}
}

// LoxError represents any error from scanning, parsing, or evaluation.
type LoxError struct {
	Class   ErrorClass `json:"class"`           // Error category
	Kind    Kind       `json:"-"`               // Fine-grained error kind
	Code    string     `json:"code"`            // Error code (e.g., "SYNTAX-0002")
	Message string     `json:"message"`         // Human-readable message
	Hints   []string   `json:"hints,omitempty"` // Suggestions for fixing
	Line    int        `json:"line"`            // 1-based line (0 if unknown)
	Column  int        `json:"column"`          // 1-based column (0 if unknown)
	File    string     `json:"file,omitempty"`  // File path (if known)
}

// Error implements the error interface.
func (e *LoxError) Error() string {
	return e.String()
}

// String returns a formatted string representation of the error.
func (e *LoxError) String() string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(e.File)
		sb.WriteString(": ")
	}
	if e.Line > 0 {
		fmt.Fprintf(&sb, "line %d, column %d: ", e.Line, e.Column)
	}

	sb.WriteString(e.Message)

	for _, hint := range e.Hints {
		sb.WriteString("\n  ")
		sb.WriteString(hint)
	}

	return sb.String()
}

// PrettyString returns a multi-line formatted string for display.
func (e *LoxError) PrettyString() string {
	var sb strings.Builder

	switch e.Class {
	case ClassCompile:
		sb.WriteString("Compile error")
	default:
		sb.WriteString("Runtime error")
	}

	if e.File != "" {
		sb.WriteString(":\n  in: ")
		sb.WriteString(e.File)
		if e.Line > 0 {
			fmt.Fprintf(&sb, "\n  at: line %d, column %d", e.Line, e.Column)
		}
		sb.WriteString("\n  ")
	} else if e.Line > 0 {
		fmt.Fprintf(&sb, ": line %d, column %d\n  ", e.Line, e.Column)
	} else {
		sb.WriteString(":\n  ")
	}

	sb.WriteString(e.Message)

	for i, hint := range e.Hints {
		sb.WriteString("\n  ")
		if i == 0 {
			sb.WriteString("Use: ")
		} else {
			sb.WriteString(" or: ")
		}
		sb.WriteString(hint)
	}

	return sb.String()
}

// ToJSON returns the error as JSON bytes.
func (e *LoxError) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// WithFile returns a copy of the error with the file path set.
func (e *LoxError) WithFile(file string) *LoxError {
	copy := *e
	copy.File = file
	return &copy
}

// WithPosition returns a copy of the error with line and column set.
func (e *LoxError) WithPosition(line, column int) *LoxError {
	copy := *e
	copy.Line = line
	copy.Column = column
	return &copy
}

// ErrorDef defines an error in the catalog.
type ErrorDef struct {
	Class    ErrorClass // Error category
	Kind     Kind       // Fine-grained kind
	Template string     // Message template with {{.placeholders}}
	Hints    []string   // Hint templates (may use {{.placeholders}})
}

// ErrorCatalog maps error codes to their definitions.
var ErrorCatalog = map[string]ErrorDef{
	// Scanner errors (SYNTAX-0xxx)
	"SYNTAX-0001": {
		Class:    ClassCompile,
		Kind:     SyntaxError,
		Template: "Unterminated multi-line comment",
		Hints:    []string{"close the comment with */"},
	},
	"SYNTAX-0002": {
		Class:    ClassCompile,
		Kind:     SyntaxError,
		Template: "Unterminated string: `{{.Quote}}` must be closed with a matching `{{.Quote}}`",
	},
	"SYNTAX-0003": {
		Class:    ClassCompile,
		Kind:     SyntaxError,
		Template: "Unexpected character: {{.Char}}",
	},
	"SYNTAX-0004": {
		Class:    ClassCompile,
		Kind:     SyntaxError,
		Template: "Expect ';' after expression. Found ';{{.Snippet}}' instead.",
		Hints:    []string{"end the expression with a single semicolon"},
	},

	// Parser errors, reserved for the next stage (COMPILE-0xxx)
	"COMPILE-0001": {
		Class:    ClassCompile,
		Kind:     UnexpectedToken,
		Template: "unexpected token '{{.Token}}'",
	},
	"COMPILE-0002": {
		Class:    ClassCompile,
		Kind:     MissingToken,
		Template: "expected {{.Expected}}, got '{{.Got}}'",
	},
	"COMPILE-0003": {
		Class:    ClassCompile,
		Kind:     MissingSemicolon,
		Template: "missing ';' after statement",
	},
	"COMPILE-0004": {
		Class:    ClassCompile,
		Kind:     UnexpectedEOF,
		Template: "unexpected end of input",
	},
	"COMPILE-0005": {
		Class:    ClassCompile,
		Kind:     InvalidLiteral,
		Template: "invalid literal: {{.Literal}}",
	},
}

// New creates a LoxError from the catalog.
// If the code is not found, creates a generic error with the message.
func New(code string, data map[string]any) *LoxError {
	def, ok := ErrorCatalog[code]
	if !ok {
		msg := code
		if data != nil {
			if m, ok := data["message"].(string); ok {
				msg = m
			}
		}
		return &LoxError{
			Class:   ClassCompile,
			Kind:    SyntaxError,
			Code:    code,
			Message: msg,
		}
	}

	msg := renderTemplate(def.Template, data)

	var hints []string
	for _, hintTmpl := range def.Hints {
		rendered := renderTemplate(hintTmpl, data)
		if rendered != "" {
			hints = append(hints, rendered)
		}
	}

	return &LoxError{
		Class:   def.Class,
		Kind:    def.Kind,
		Code:    code,
		Message: msg,
		Hints:   hints,
	}
}

// NewWithPosition creates a LoxError with position information.
func NewWithPosition(code string, line, column int, data map[string]any) *LoxError {
	err := New(code, data)
	err.Line = line
	err.Column = column
	return err
}

// NewSimple creates a simple error without using the catalog.
func NewSimple(class ErrorClass, kind Kind, message string) *LoxError {
	return &LoxError{
		Class:   class,
		Kind:    kind,
		Message: message,
	}
}

// renderTemplate renders a Go template with the given data.
func renderTemplate(tmplStr string, data map[string]any) string {
	if data == nil {
		return tmplStr
	}

	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return tmplStr
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return tmplStr
	}

	return buf.String()
}
