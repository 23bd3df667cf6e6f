// Package scanner turns raw source text into an ordered stream of tokens.
//
// The scanner makes a single left-to-right pass over the source with one or
// two characters of lookahead. It never aborts on a lexical error: it records
// a Diagnostic, skips the offending construct, and resumes at the next token
// boundary, so that one pass surfaces as many problems as possible. The
// returned token slice always ends with exactly one EOF token.
package scanner

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Catalog codes for the diagnostics the scanner emits. The full compile-error
// catalog lives in pkg/lox/loxerr; these are the entries reachable from the
// scanning stage.
const (
	CodeUnterminatedComment = "SYNTAX-0001"
	CodeUnterminatedString  = "SYNTAX-0002"
	CodeUnexpectedChar      = "SYNTAX-0003"
	CodeDuplicateTerminator = "SYNTAX-0004"
)

// Scanner represents the lexical analyzer. It owns an explicit cursor over
// the immutable source text: start marks the first byte of the token being
// scanned, current the next unread byte. Invariant: start <= current <= len(source).
type Scanner struct {
	filename string
	source   string
	start    int // first byte of the token currently being scanned
	current  int // next unread byte
	line     int // 1-based, incremented on every newline
	column   int // reset to 0 on every newline, +1 per consumed character
	tokens   []Token
	diags    []Diagnostic
}

// New creates a new scanner instance
func New(source string) *Scanner {
	return &Scanner{
		filename: "<input>",
		source:   source,
		line:     1,
		column:   0,
	}
}

// NewWithFilename creates a new scanner instance with a specific filename
func NewWithFilename(source string, filename string) *Scanner {
	s := New(source)
	s.filename = filename
	return s
}

// Filename returns the name the scanner was constructed with.
func (s *Scanner) Filename() string {
	return s.filename
}

// ScanTokens scans the entire source, producing the full token sequence and
// any lexical diagnostics found along the way. The scan runs to completion
// even in the presence of errors; the caller decides whether the diagnostics
// are fatal. A scanner is single use: rescanning requires a new instance.
func (s *Scanner) ScanTokens() ([]Token, []Diagnostic) {
	for !s.isAtEnd() {
		s.start = s.current
		c := s.advance()

		tt, emit := s.classify(c)
		if !emit {
			continue
		}

		// Post-classification transform: normalize the lexeme before it
		// reaches the parser. Comments never reach the output sequence.
		switch tt {
		case COMMENT:
		case STRING:
			lexeme := s.lexeme()
			s.addToken(STRING, lexeme[1:len(lexeme)-1])
		case NUMBER:
			s.addToken(NUMBER, normalizeNumber(s.lexeme()))
		default:
			s.addToken(tt, s.lexeme())
		}
	}

	s.addToken(EOF, "EOF")
	return s.tokens, s.diags
}

// classify consumes the remainder of the token that begins with c and returns
// its type. The second return value is false when no token should be emitted
// (whitespace, newlines, error recovery).
func (s *Scanner) classify(c rune) (TokenType, bool) {
	switch c {
	case '(':
		return LPAREN, true
	case ')':
		return RPAREN, true
	case '{':
		return LBRACE, true
	case '}':
		return RBRACE, true
	case ',':
		return COMMA, true

	case '.':
		// A dot followed by a digit starts a leading-dot decimal (".5").
		if isDigit(s.peek()) {
			for isDigit(s.peek()) {
				s.advance()
			}
			return NUMBER, true
		}
		return DOT, true

	case '-':
		return MINUS, true
	case '+':
		return PLUS, true
	case '*':
		return ASTERISK, true
	case '%':
		return PERCENT, true

	case '/':
		if s.match('/') {
			s.scanLineComment()
			return COMMENT, true
		}
		if s.match('*') {
			s.scanBlockComment()
			return COMMENT, true
		}
		return SLASH, true

	case ';':
		return s.scanSemicolon()

	case '!':
		if s.match('=') {
			s.advance()
			return NOT_EQ, true
		}
		return BANG, true
	case '=':
		if s.match('=') {
			s.advance()
			return EQ, true
		}
		return ASSIGN, true
	case '<':
		if s.match('=') {
			s.advance()
			return LTE, true
		}
		return LT, true
	case '>':
		if s.match('=') {
			s.advance()
			return GTE, true
		}
		return GT, true

	case ' ', '\r', '\t':
		return 0, false

	case '\n':
		s.line++
		s.column = 0
		return 0, false

	case '"', '\'', '`':
		return s.scanString(c)

	default:
		if isAlpha(c) {
			return s.scanIdentifier(), true
		}
		if isDigit(c) {
			return s.scanNumber(), true
		}

		s.errorf(CodeUnexpectedChar, "Unexpected character: %c", c)
		return 0, false
	}
}

// scanLineComment consumes a // comment up to, but not including, the
// trailing newline.
func (s *Scanner) scanLineComment() {
	for !s.isAtEnd() && s.peek() != '\n' {
		s.advance()
	}
}

// scanBlockComment consumes a /* ... */ comment, tracking embedded newlines.
// Reaching end of input before the terminator is a lexical error.
func (s *Scanner) scanBlockComment() {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance()
			s.advance()
			return
		}
		if s.advance() == '\n' {
			s.line++
			s.column = 0
		}
	}

	s.errorf(CodeUnterminatedComment, "Unterminated multi-line comment")
}

// scanSemicolon handles the statement terminator. A semicolon directly
// followed by a newline whose previous emitted token was also a semicolon is
// treated as a duplicate terminator: it is reported and suppressed rather
// than silently accepted.
func (s *Scanner) scanSemicolon() (TokenType, bool) {
	prev := len(s.tokens) - 1
	if s.match('\n') && prev >= 0 && s.tokens[prev].Type == SEMICOLON {
		snippet := restOfLine(s.source[s.current:])
		for !s.isAtEnd() && s.peek() != '\n' {
			s.advance()
		}

		s.errorf(CodeDuplicateTerminator,
			"Expect ';' after expression. Found ';%s' instead.", snippet)
		s.infof(CodeDuplicateTerminator,
			"Please make sure the end of your expression is followed by a single semicolon.")
		return 0, false
	}
	return SEMICOLON, true
}

// scanString consumes a string literal opened by quote, up to a closing quote
// of the same character. Embedded newlines are legal and tracked. If input
// ends first the partial token is discarded and an error recorded.
func (s *Scanner) scanString(quote rune) (TokenType, bool) {
	for !s.isAtEnd() {
		if s.peek() == quote {
			s.advance()
			return STRING, true
		}
		if s.advance() == '\n' {
			s.line++
			s.column = 0
		}
	}

	s.errorf(CodeUnterminatedString,
		"Unterminated string: `%c` must be closed with a matching `%c`", quote, quote)
	return 0, false
}

// scanIdentifier consumes the maximal run of alphanumeric/underscore
// characters, then matches it against the keyword table.
//
// This is maximal munch: when two lexical rules can both match, the one that
// matches the most characters wins. "or_not" is a single identifier, never
// the keyword "or" followed by "_not".
func (s *Scanner) scanIdentifier() TokenType {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	return LookupIdent(s.lexeme())
}

// scanNumber consumes the maximal run of digits, optionally followed by a
// single decimal point and more digits. A trailing point is consumed here and
// dropped by normalization ("3." scans as "3").
func (s *Scanner) scanNumber() TokenType {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	return NUMBER
}

// isAtEnd returns true once the cursor has consumed the whole source.
func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// advance consumes and returns the character at current, stepping the cursor
// forward by the character's encoded byte width. Column advances by one per
// character, not per byte.
func (s *Scanner) advance() rune {
	if s.isAtEnd() {
		return 0
	}

	// ASCII fast-path: single-byte characters (most common case)
	b := s.source[s.current]
	if b < utf8.RuneSelf {
		s.current++
		s.column++
		return rune(b)
	}

	r, size := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += size
	s.column++
	return r
}

// peek returns the character at current without consuming it. Returns NUL at
// end of input.
func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	b := s.source[s.current]
	if b < utf8.RuneSelf {
		return rune(b)
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current:])
	return r
}

// peekNext returns the character one past current without consuming anything.
// Returns NUL at end of input.
func (s *Scanner) peekNext() rune {
	if s.isAtEnd() {
		return 0
	}
	_, size := utf8.DecodeRuneInString(s.source[s.current:])
	if s.current+size >= len(s.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current+size:])
	return r
}

// match reports whether the not-yet-consumed character at current equals
// expected. It never advances; callers advance explicitly after a positive
// match. Because the dispatching advance has already consumed the token's
// first character, this is always a one-character lookahead past it.
func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() {
		return false
	}
	return s.peek() == expected
}

// lexeme returns the substring from start to current.
func (s *Scanner) lexeme() string {
	return s.source[s.start:s.current]
}

// addToken appends a token for the current lexeme. Column points one past the
// token's last consumed character.
func (s *Scanner) addToken(tt TokenType, lexeme string) {
	s.tokens = append(s.tokens, Token{
		Type:    tt,
		Lexeme:  lexeme,
		Literal: literalFor(tt),
		Line:    s.line,
		Column:  s.column + 1,
	})
}

func (s *Scanner) errorf(code string, format string, args ...any) {
	s.diags = append(s.diags, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Line:     s.line,
		Column:   s.column,
	})
}

func (s *Scanner) infof(code string, format string, args ...any) {
	s.diags = append(s.diags, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Line:     s.line,
		Column:   s.column,
	})
}

// normalizeNumber tidies a numeric lexeme: a trailing decimal point is
// dropped ("3." -> "3") and a missing leading digit is filled in
// (".5" -> "0.5").
func normalizeNumber(lexeme string) string {
	if strings.HasSuffix(lexeme, ".") {
		return strings.TrimSuffix(lexeme, ".")
	}
	if strings.HasPrefix(lexeme, ".") {
		return "0" + lexeme
	}
	return lexeme
}

// restOfLine returns the prefix of s up to, but not including, the first
// newline.
func restOfLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}
