// Package lox is the compilation driver. It owns the diagnostic sink, the
// decision to continue or abort after lexical errors, and the rendering of
// scan results. The scanner itself stays pure: it returns tokens plus
// structured diagnostics, and the driver derives its error state from them.
package lox

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wildduck2/ducklox/pkg/lox/loxerr"
	"github.com/wildduck2/ducklox/pkg/lox/scanner"
)

// Output formats for tokens and diagnostics.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Lox is the driver threaded through a compilation run. HasError is set once
// any error-severity diagnostic has been reported; the caller decides whether
// to proceed to later stages.
type Lox struct {
	Out      io.Writer
	ErrOut   io.Writer
	Format   string
	HasError bool

	printer *message.Printer
}

// New creates a driver writing results to out and diagnostics to errOut.
func New(out, errOut io.Writer) *Lox {
	return &Lox{
		Out:     out,
		ErrOut:  errOut,
		Format:  FormatText,
		printer: message.NewPrinter(language.English),
	}
}

// Log writes a single diagnostic line to the error stream. This is the
// diagnostic sink: severity, message, and a line:column position string.
func (l *Lox) Log(severity scanner.Severity, msg string, position string) {
	fmt.Fprintf(l.ErrOut, "[%s] %s (%s)\n", severity, msg, position)
}

// Run scans source, reports every diagnostic through the sink, and returns
// the complete token sequence. The sequence is always returned, errors or
// not; HasError records whether any were found.
func (l *Lox) Run(source, filename string) []scanner.Token {
	s := scanner.NewWithFilename(source, filename)
	tokens, diags := s.ScanTokens()
	l.Report(filename, diags)
	return tokens
}

// RunFile loads a source file and scans it. An unreadable file is the one
// failure the driver cannot recover from.
func (l *Lox) RunFile(path string) ([]scanner.Token, error) {
	source, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return l.Run(source, path), nil
}

// ReadSource loads a UTF-8 source file.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read file %s: %w", path, err)
	}
	return string(data), nil
}

// Report sends each diagnostic through the sink and, if any were errors,
// sets the error flag and prints a summary line.
func (l *Lox) Report(filename string, diags []scanner.Diagnostic) {
	if l.Format == FormatJSON {
		l.reportJSON(filename, diags)
		return
	}

	errors := 0
	for _, d := range diags {
		l.Log(d.Severity, d.Message, d.Position())
		if d.Severity == scanner.SeverityError {
			errors++
		}
	}
	if errors > 0 {
		l.HasError = true
		l.printer.Fprintf(l.ErrOut, "%d syntax error(s) in %s\n", errors, filename)
	}
}

// reportJSON renders error diagnostics as a JSON array of structured errors.
func (l *Lox) reportJSON(filename string, diags []scanner.Diagnostic) {
	errs := make([]*loxerr.LoxError, 0, len(diags))
	for _, d := range diags {
		if d.Severity != scanner.SeverityError {
			continue
		}
		errs = append(errs, &loxerr.LoxError{
			Class:   loxerr.ClassCompile,
			Kind:    loxerr.SyntaxError,
			Code:    d.Code,
			Message: d.Message,
			Line:    d.Line,
			Column:  d.Column,
			File:    filename,
		})
	}
	if len(errs) == 0 {
		return
	}

	l.HasError = true
	out, err := json.MarshalIndent(errs, "", "  ")
	if err != nil {
		fmt.Fprintf(l.ErrOut, "failed to encode diagnostics: %v\n", err)
		return
	}
	fmt.Fprintln(l.ErrOut, string(out))
}

// tokenJSON is the wire shape of a token in --json output.
type tokenJSON struct {
	Type    string `json:"type"`
	Lexeme  string `json:"lexeme"`
	Literal string `json:"literal"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// PrintTokens renders the token sequence to the output stream in the
// configured format.
func (l *Lox) PrintTokens(tokens []scanner.Token) error {
	if l.Format == FormatJSON {
		out := make([]tokenJSON, 0, len(tokens))
		for _, t := range tokens {
			out = append(out, tokenJSON{
				Type:    t.Type.String(),
				Lexeme:  t.Lexeme,
				Literal: t.Literal.String(),
				Line:    t.Line,
				Column:  t.Column,
			})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(l.Out, string(data))
		return err
	}

	for _, t := range tokens {
		if _, err := fmt.Fprintln(l.Out, t.String()); err != nil {
			return err
		}
	}
	return nil
}
