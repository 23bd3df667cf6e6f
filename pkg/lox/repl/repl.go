// Package repl is an interactive token inspector: each completed input is
// scanned and its token stream printed, with lexical diagnostics reported the
// same way the file driver reports them.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/wildduck2/ducklox/pkg/lox"
	"github.com/wildduck2/ducklox/pkg/lox/loxerr"
	"github.com/wildduck2/ducklox/pkg/lox/scanner"
)

const PROMPT = ">> "
const CONTINUATION_PROMPT = ".. "

const LOGO = `
█▀▄ █░█ █▀▀ █▄▀ █░░ █▀█ ▀▄▀
█▄▀ █▄█ █▄▄ █░█ █▄▄ █▄█ █░█ `

// Start starts the REPL with line editing, history, and tab completion.
func Start(in io.Reader, out io.Writer, version, historyFile string) {
	line := liner.NewLiner()
	defer line.Close()

	// Enable Ctrl+C to abort current line
	line.SetCtrlCAborts(true)

	keywords := scanner.Keywords()
	line.SetCompleter(func(input string) []string {
		return filterCompletions(input, keywords)
	})

	if historyFile == "" {
		historyFile = filepath.Join(os.TempDir(), ".ducklox_history")
	}
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	// Save history on exit
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintf(out, "%s", LOGO)
	fmt.Fprintln(out, "v", version)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Type 'exit' or Ctrl+D to quit")
	fmt.Fprintln(out, "Use Tab for completion, ↑↓ for history")
	fmt.Fprintln(out, "")

	var inputBuffer strings.Builder

	for {
		prompt := PROMPT
		if inputBuffer.Len() > 0 {
			prompt = CONTINUATION_PROMPT
		}
		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				// Ctrl+C - clear any buffered input and return to main prompt
				if inputBuffer.Len() > 0 {
					fmt.Fprintln(out, "^C (cleared)")
				} else {
					fmt.Fprintln(out, "^C")
				}
				inputBuffer.Reset()
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(out, "Error reading input: %v\n", err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if inputBuffer.Len() == 0 && (trimmed == "exit" || trimmed == "quit") {
			fmt.Fprintln(out, "Goodbye!")
			return
		}
		if inputBuffer.Len() == 0 && trimmed == "" {
			continue
		}

		if inputBuffer.Len() > 0 {
			inputBuffer.WriteString("\n")
		}
		inputBuffer.WriteString(input)

		// An unterminated string or block comment, or an open brace, means
		// the input continues on the next line.
		fullInput := inputBuffer.String()
		if needsMoreInput(fullInput) {
			continue
		}

		if trimmed != "" {
			line.AppendHistory(fullInput)
		}

		driver := lox.New(out, out)
		tokens := driver.Run(fullInput, "<repl>")
		driver.PrintTokens(tokens)
		printKeywordHints(out, tokens, keywords)

		inputBuffer.Reset()
	}
}

// filterCompletions returns keywords completing the last word of the input.
func filterCompletions(input string, keywords []string) []string {
	words := strings.Fields(input)
	if len(words) == 0 {
		return keywords
	}

	last := words[len(words)-1]
	prefix := input[:len(input)-len(last)]

	var completions []string
	for _, word := range keywords {
		if strings.HasPrefix(word, last) {
			completions = append(completions, prefix+word)
		}
	}
	return completions
}

// needsMoreInput reports whether the buffered input is visibly incomplete:
// an unterminated string or block comment, or more opening than closing
// braces/parens.
func needsMoreInput(input string) bool {
	tokens, diags := scanner.New(input).ScanTokens()

	for _, d := range diags {
		if d.Code == scanner.CodeUnterminatedString || d.Code == scanner.CodeUnterminatedComment {
			return true
		}
	}

	depth := 0
	for _, t := range tokens {
		switch t.Type {
		case scanner.LBRACE, scanner.LPAREN:
			depth++
		case scanner.RBRACE, scanner.RPAREN:
			depth--
		}
	}
	return depth > 0
}

// printKeywordHints prints a "did you mean" hint for identifiers one typo
// away from a keyword ("whle" -> "while").
func printKeywordHints(out io.Writer, tokens []scanner.Token, keywords []string) {
	seen := map[string]bool{}
	for _, t := range tokens {
		if t.Type != scanner.IDENT || seen[t.Lexeme] {
			continue
		}
		seen[t.Lexeme] = true
		if match := loxerr.FindClosestMatch(t.Lexeme, keywords); match != "" {
			fmt.Fprintf(out, "hint: `%s` looks like the keyword `%s`\n", t.Lexeme, match)
		}
	}
}
