package scanner

import (
	"strings"
	"testing"
)

func TestScanTokens(t *testing.T) {
	input := `var five = 5;
var ten = 10;

fun add(x, y) {
	return x + y;
}

if (five <= ten) {
	print five;
} else {
	print ten;
}

while (true) { break; }
for (;;) { continue; }

10 == 10;
10 != 9;
ten % five;
"foobar"
'foo bar'
// a line comment
/* a block
comment */
3.14
.5
3.
or_not
`

	tests := []struct {
		expectedType   TokenType
		expectedLexeme string
	}{
		{VAR, "var"},
		{IDENT, "five"},
		{ASSIGN, "="},
		{NUMBER, "5"},
		{SEMICOLON, ";"},
		{VAR, "var"},
		{IDENT, "ten"},
		{ASSIGN, "="},
		{NUMBER, "10"},
		{SEMICOLON, ";"},
		{FUN, "fun"},
		{IDENT, "add"},
		{LPAREN, "("},
		{IDENT, "x"},
		{COMMA, ","},
		{IDENT, "y"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RETURN, "return"},
		{IDENT, "x"},
		{PLUS, "+"},
		{IDENT, "y"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{IF, "if"},
		{LPAREN, "("},
		{IDENT, "five"},
		{LTE, "<="},
		{IDENT, "ten"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{PRINT, "print"},
		{IDENT, "five"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{ELSE, "else"},
		{LBRACE, "{"},
		{PRINT, "print"},
		{IDENT, "ten"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{WHILE, "while"},
		{LPAREN, "("},
		{TRUE, "true"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{BREAK, "break"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{FOR, "for"},
		{LPAREN, "("},
		{SEMICOLON, ";"},
		{SEMICOLON, ";"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{CONTINUE, "continue"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{NUMBER, "10"},
		{EQ, "=="},
		{NUMBER, "10"},
		{SEMICOLON, ";"},
		{NUMBER, "10"},
		{NOT_EQ, "!="},
		{NUMBER, "9"},
		{SEMICOLON, ";"},
		{IDENT, "ten"},
		{PERCENT, "%"},
		{IDENT, "five"},
		{SEMICOLON, ";"},
		{STRING, "foobar"},
		{STRING, "foo bar"},
		{NUMBER, "3.14"},
		{NUMBER, "0.5"},
		{NUMBER, "3"},
		{IDENT, "or_not"},
		{EOF, "EOF"},
	}

	tokens, diags := New(input).ScanTokens()

	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
	if len(tokens) != len(tests) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(tests), len(tokens))
	}

	for i, tt := range tests {
		tok := tokens[i]

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q",
				i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestVarDeclaration(t *testing.T) {
	tokens, diags := New(`var x = 10;`).ScanTokens()

	expected := []struct {
		tokenType TokenType
		lexeme    string
	}{
		{VAR, "var"},
		{IDENT, "x"},
		{ASSIGN, "="},
		{NUMBER, "10"},
		{SEMICOLON, ";"},
		{EOF, "EOF"},
	}

	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
	if len(tokens) != len(expected) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(expected), len(tokens))
	}
	for i, tt := range expected {
		if tokens[i].Type != tt.tokenType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.tokenType, tokens[i].Type)
		}
		if tokens[i].Lexeme != tt.lexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q",
				i, tt.lexeme, tokens[i].Lexeme)
		}
	}
}

func TestExactlyOneEOF(t *testing.T) {
	inputs := []string{
		"",
		"var x = 10;",
		"@",
		"/* unterminated",
		`"unterminated`,
		"a\nb\nc",
	}

	for _, input := range inputs {
		tokens, _ := New(input).ScanTokens()

		if len(tokens) == 0 {
			t.Fatalf("input %q - no tokens produced", input)
		}
		last := tokens[len(tokens)-1]
		if last.Type != EOF || last.Lexeme != "EOF" {
			t.Errorf("input %q - final token is not EOF: %v", input, last)
		}

		count := 0
		for _, tok := range tokens {
			if tok.Type == EOF {
				count++
			}
		}
		if count != 1 {
			t.Errorf("input %q - expected exactly one EOF, got %d", input, count)
		}
	}
}

func TestWhitespaceIsInsignificant(t *testing.T) {
	compact, _ := New("a b").ScanTokens()
	spread, _ := New("a  \t\n  b").ScanTokens()

	if len(compact) != 3 || len(spread) != 3 {
		t.Fatalf("expected 3 tokens each, got %d and %d", len(compact), len(spread))
	}
	for i := range compact {
		if compact[i].Type != spread[i].Type || compact[i].Lexeme != spread[i].Lexeme {
			t.Errorf("tokens[%d] differ: %v vs %v", i, compact[i], spread[i])
		}
	}
}

func TestMaximalMunch(t *testing.T) {
	tokens, _ := New("or_not").ScanTokens()

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Type != IDENT || tokens[0].Lexeme != "or_not" {
		t.Errorf("expected IDENT 'or_not', got %v", tokens[0])
	}
}

func TestTwoCharOperatorGreediness(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"!=", NOT_EQ},
		{"==", EQ},
		{"<=", LTE},
		{">=", GTE},
	}

	for _, tt := range tests {
		tokens, _ := New(tt.input).ScanTokens()
		if len(tokens) != 2 {
			t.Fatalf("input %q - expected 2 tokens, got %d: %v", tt.input, len(tokens), tokens)
		}
		if tokens[0].Type != tt.expected {
			t.Errorf("input %q - expected %s, got %s", tt.input, tt.expected, tokens[0].Type)
		}
		if tokens[0].Lexeme != tt.input {
			t.Errorf("input %q - lexeme wrong. expected=%q, got=%q", tt.input, tt.input, tokens[0].Lexeme)
		}
	}
}

func TestSingleCharOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"!", BANG},
		{"=", ASSIGN},
		{"<", LT},
		{">", GT},
		{"/", SLASH},
		{".", DOT},
		{"-", MINUS},
		{"+", PLUS},
		{"*", ASTERISK},
		{"%", PERCENT},
	}

	for _, tt := range tests {
		tokens, _ := New(tt.input).ScanTokens()
		if len(tokens) != 2 {
			t.Fatalf("input %q - expected 2 tokens, got %d", tt.input, len(tokens))
		}
		if tokens[0].Type != tt.expected {
			t.Errorf("input %q - expected %s, got %s", tt.input, tt.expected, tokens[0].Type)
		}
	}
}

func TestNumberNormalization(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"3.", "3"},
		{".5", "0.5"},
		{"3.14", "3.14"},
		{"10", "10"},
		{"0.0", "0.0"},
	}

	for _, tt := range tests {
		tokens, diags := New(tt.input).ScanTokens()
		if len(diags) != 0 {
			t.Fatalf("input %q - unexpected diagnostics: %v", tt.input, diags)
		}
		if len(tokens) != 2 {
			t.Fatalf("input %q - expected 2 tokens, got %d: %v", tt.input, len(tokens), tokens)
		}
		if tokens[0].Type != NUMBER {
			t.Fatalf("input %q - expected NUMBER, got %s", tt.input, tokens[0].Type)
		}
		if tokens[0].Lexeme != tt.expected {
			t.Errorf("input %q - lexeme wrong. expected=%q, got=%q", tt.input, tt.expected, tokens[0].Lexeme)
		}
	}
}

func TestNumberSingleDecimalPoint(t *testing.T) {
	// A number takes at most one decimal point; "1.2.3" is two numbers
	tokens, _ := New("1.2.3").ScanTokens()

	expected := []struct {
		tokenType TokenType
		lexeme    string
	}{
		{NUMBER, "1.2"},
		{NUMBER, "0.3"},
		{EOF, "EOF"},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, tt := range expected {
		if tokens[i].Type != tt.tokenType || tokens[i].Lexeme != tt.lexeme {
			t.Errorf("tokens[%d] - expected %s %q, got %s %q",
				i, tt.tokenType, tt.lexeme, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

func TestStringDequoting(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"abc"`, "abc"},
		{`'abc'`, "abc"},
		{"`abc`", "abc"},
		{`""`, ""},
		{`"a b c"`, "a b c"},
	}

	for _, tt := range tests {
		tokens, diags := New(tt.input).ScanTokens()
		if len(diags) != 0 {
			t.Fatalf("input %q - unexpected diagnostics: %v", tt.input, diags)
		}
		if len(tokens) != 2 {
			t.Fatalf("input %q - expected 2 tokens, got %d", tt.input, len(tokens))
		}
		if tokens[0].Type != STRING {
			t.Fatalf("input %q - expected STRING, got %s", tt.input, tokens[0].Type)
		}
		if tokens[0].Lexeme != tt.expected {
			t.Errorf("input %q - lexeme wrong. expected=%q, got=%q", tt.input, tt.expected, tokens[0].Lexeme)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	tokens, diags := New(`"abc`).ScanTokens()

	if len(tokens) != 1 || tokens[0].Type != EOF {
		t.Fatalf("expected only EOF, got %v", tokens)
	}
	if !HasErrors(diags) {
		t.Fatal("expected an error diagnostic")
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
	if diags[0].Code != CodeUnterminatedString {
		t.Errorf("code wrong. expected=%q, got=%q", CodeUnterminatedString, diags[0].Code)
	}
}

func TestStringClosedBySameQuoteOnly(t *testing.T) {
	// A double-quoted string is not closed by a single quote
	tokens, diags := New(`"ab'cd"`).ScanTokens()

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(tokens) != 2 || tokens[0].Type != STRING {
		t.Fatalf("expected one STRING token, got %v", tokens)
	}
	if tokens[0].Lexeme != "ab'cd" {
		t.Errorf("lexeme wrong. expected=%q, got=%q", "ab'cd", tokens[0].Lexeme)
	}
}

func TestMultiLineString(t *testing.T) {
	tokens, diags := New("`line one\nline two` x").ScanTokens()

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Type != STRING || tokens[0].Lexeme != "line one\nline two" {
		t.Errorf("string token wrong: %v", tokens[0])
	}
	// The string ends on line 2, and so does the identifier after it
	if tokens[0].Line != 2 {
		t.Errorf("string line wrong. expected=2, got=%d", tokens[0].Line)
	}
	if tokens[1].Type != IDENT || tokens[1].Line != 2 {
		t.Errorf("identifier after string wrong: %v", tokens[1])
	}
}

func TestCommentElision(t *testing.T) {
	tokens, diags := New("x // comment\ny").ScanTokens()

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Type != IDENT || tokens[0].Lexeme != "x" {
		t.Errorf("expected IDENT 'x', got %v", tokens[0])
	}
	if tokens[1].Type != IDENT || tokens[1].Lexeme != "y" {
		t.Errorf("expected IDENT 'y', got %v", tokens[1])
	}
	for _, tok := range tokens {
		if strings.Contains(tok.Lexeme, "comment") {
			t.Errorf("comment text leaked into output: %v", tok)
		}
	}
}

func TestBlockComment(t *testing.T) {
	tokens, diags := New("a /* one\ntwo\nthree */ b").ScanTokens()

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
	// Newlines inside the comment still advance the line counter
	if tokens[1].Lexeme != "b" || tokens[1].Line != 3 {
		t.Errorf("expected IDENT 'b' on line 3, got %v", tokens[1])
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	tokens, diags := New("/* unterminated").ScanTokens()

	if len(tokens) != 1 || tokens[0].Type != EOF {
		t.Fatalf("expected only EOF, got %v", tokens)
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
	if diags[0].Severity != SeverityError || diags[0].Code != CodeUnterminatedComment {
		t.Errorf("diagnostic wrong: %v", diags[0])
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	tokens, diags := New("@").ScanTokens()

	if len(tokens) != 1 || tokens[0].Type != EOF {
		t.Fatalf("expected only EOF, got %v", tokens)
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
	if diags[0].Code != CodeUnexpectedChar {
		t.Errorf("code wrong. expected=%q, got=%q", CodeUnexpectedChar, diags[0].Code)
	}
	if !strings.Contains(diags[0].Message, "@") {
		t.Errorf("message should reference the character, got %q", diags[0].Message)
	}
}

func TestScanContinuesAfterError(t *testing.T) {
	// An unexpected character is skipped; scanning resumes at the next token
	tokens, diags := New("var @ x").ScanTokens()

	expected := []TokenType{VAR, IDENT, EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Errorf("tokens[%d] - expected %s, got %s", i, tt, tokens[i].Type)
		}
	}
	if !HasErrors(diags) {
		t.Error("expected an error diagnostic")
	}
}

func TestDuplicateSemicolon(t *testing.T) {
	tokens, diags := New("a;;\nb").ScanTokens()

	expected := []TokenType{IDENT, SEMICOLON, IDENT, EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Errorf("tokens[%d] - expected %s, got %s", i, tt, tokens[i].Type)
		}
	}

	if len(diags) != 2 {
		t.Fatalf("expected error + hint diagnostics, got %d: %v", len(diags), diags)
	}
	if diags[0].Severity != SeverityError || diags[0].Code != CodeDuplicateTerminator {
		t.Errorf("first diagnostic should be the error: %v", diags[0])
	}
	if diags[1].Severity != SeverityInfo {
		t.Errorf("second diagnostic should be the info hint: %v", diags[1])
	}
}

func TestSemicolonNotDuplicated(t *testing.T) {
	// A lone semicolon before a newline is fine
	_, diags := New("a;\nb;\n").ScanTokens()
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	// Two semicolons not followed by a newline are two tokens
	tokens, diags := New("a;;b").ScanTokens()
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	expected := []TokenType{IDENT, SEMICOLON, SEMICOLON, IDENT, EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Errorf("tokens[%d] - expected %s, got %s", i, tt, tokens[i].Type)
		}
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	tokens, _ := New("a\nb").ScanTokens()

	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	a, b := tokens[0], tokens[1]

	if a.Line != 1 || a.Column != 2 {
		t.Errorf("token a position wrong. expected=1:2, got=%d:%d", a.Line, a.Column)
	}
	if b.Line != 2 || b.Column != 2 {
		t.Errorf("token b position wrong. expected=2:2, got=%d:%d", b.Line, b.Column)
	}
}

func TestColumnPointsPastToken(t *testing.T) {
	tokens, _ := New("var x").ScanTokens()

	// "var" occupies columns 1-3, so its column points at 4
	if tokens[0].Column != 4 {
		t.Errorf("var column wrong. expected=4, got=%d", tokens[0].Column)
	}
	// "x" is at column 5, so its column points at 6
	if tokens[1].Column != 6 {
		t.Errorf("x column wrong. expected=6, got=%d", tokens[1].Column)
	}
}

func TestLeadingDotDecimal(t *testing.T) {
	tokens, diags := New(".5 .x").ScanTokens()

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	expected := []struct {
		tokenType TokenType
		lexeme    string
	}{
		{NUMBER, "0.5"},
		{DOT, "."},
		{IDENT, "x"},
		{EOF, "EOF"},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, tt := range expected {
		if tokens[i].Type != tt.tokenType || tokens[i].Lexeme != tt.lexeme {
			t.Errorf("tokens[%d] - expected %s %q, got %s %q",
				i, tt.tokenType, tt.lexeme, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

func TestLiteralTags(t *testing.T) {
	tokens, _ := New(`1 "s" true false nil x`).ScanTokens()

	expected := []Literal{
		LIT_NUMBER,  // 1
		LIT_STRING,  // "s"
		LIT_BOOLEAN, // true
		LIT_BOOLEAN, // false
		LIT_NIL,     // nil
		LIT_NIL,     // x
		LIT_NIL,     // EOF
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, lit := range expected {
		if tokens[i].Literal != lit {
			t.Errorf("tokens[%d] - literal tag wrong. expected=%s, got=%s",
				i, lit, tokens[i].Literal)
		}
	}
}

func TestGreaterEqualScenario(t *testing.T) {
	tokens, diags := New("if (a >= b) { print a; }").ScanTokens()

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	expected := []TokenType{
		IF, LPAREN, IDENT, GTE, IDENT, RPAREN,
		LBRACE, PRINT, IDENT, SEMICOLON, RBRACE, EOF,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Errorf("tokens[%d] - expected %s, got %s", i, tt, tokens[i].Type)
		}
	}
}

func TestScannerNeverBacktracks(t *testing.T) {
	// A scan over adversarial input still terminates with EOF
	inputs := []string{
		strings.Repeat(";", 100),
		strings.Repeat("@", 100),
		strings.Repeat(`"`, 3),
		"/*/",
		"/",
		"!",
		".",
	}

	for _, input := range inputs {
		tokens, _ := New(input).ScanTokens()
		if tokens[len(tokens)-1].Type != EOF {
			t.Errorf("input %q - missing EOF terminator", input)
		}
	}
}
