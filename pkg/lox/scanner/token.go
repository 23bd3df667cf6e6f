package scanner

import "fmt"

// TokenType represents different types of tokens
type TokenType int

const (
	// Special tokens
	EOF TokenType = iota
	COMMENT // // single line or /* block */ comment, elided from output

	// Identifiers and literals
	IDENT  // x, foo, bar, ...
	NUMBER // 10, 3.14
	STRING // "hello"

	// Operators
	ASSIGN   // =
	PLUS     // +
	MINUS    // -
	BANG     // !
	ASTERISK // *
	SLASH    // /
	PERCENT  // %
	LT       // <
	GT       // >
	LTE      // <=
	GTE      // >=
	EQ       // ==
	NOT_EQ   // !=

	// Delimiters
	COMMA     // ,
	SEMICOLON // ;
	DOT       // .
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }

	// Keywords
	VAR      // "var"
	FUN      // "fun"
	RETURN   // "return"
	IF       // "if"
	ELSE     // "else"
	FOR      // "for"
	WHILE    // "while"
	PRINT    // "print"
	BREAK    // "break"
	CONTINUE // "continue"
	CLASS    // "class"
	THIS     // "this"
	TRUE     // "true"
	FALSE    // "false"
	NIL      // "nil"
	OR       // "or"
	AND      // "and"
	SUPER    // "super"
)

// Literal tags a token with the kind of literal value it will carry after
// parsing. It is a classification aid for the parser, not a parsed value.
type Literal int

const (
	LIT_NIL Literal = iota
	LIT_NUMBER
	LIT_STRING
	LIT_BOOLEAN
)

// Token represents a single token
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal Literal
	Line    int
	Column  int
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Lexeme: %s, Line: %d, Column: %d}",
		t.Type.String(), t.Lexeme, t.Line, t.Column)
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case EOF:
		return "EOF"
	case COMMENT:
		return "COMMENT"
	case IDENT:
		return "IDENT"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case ASSIGN:
		return "ASSIGN"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case BANG:
		return "BANG"
	case ASTERISK:
		return "ASTERISK"
	case SLASH:
		return "SLASH"
	case PERCENT:
		return "PERCENT"
	case LT:
		return "LT"
	case GT:
		return "GT"
	case LTE:
		return "LTE"
	case GTE:
		return "GTE"
	case EQ:
		return "EQ"
	case NOT_EQ:
		return "NOT_EQ"
	case COMMA:
		return "COMMA"
	case SEMICOLON:
		return "SEMICOLON"
	case DOT:
		return "DOT"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case VAR:
		return "VAR"
	case FUN:
		return "FUN"
	case RETURN:
		return "RETURN"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	case FOR:
		return "FOR"
	case WHILE:
		return "WHILE"
	case PRINT:
		return "PRINT"
	case BREAK:
		return "BREAK"
	case CONTINUE:
		return "CONTINUE"
	case CLASS:
		return "CLASS"
	case THIS:
		return "THIS"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case NIL:
		return "NIL"
	case OR:
		return "OR"
	case AND:
		return "AND"
	case SUPER:
		return "SUPER"
	default:
		return "UNKNOWN"
	}
}

// String returns a string representation of the literal tag
func (l Literal) String() string {
	switch l {
	case LIT_NUMBER:
		return "number"
	case LIT_STRING:
		return "string"
	case LIT_BOOLEAN:
		return "boolean"
	default:
		return "nil"
	}
}

// Keywords map for identifying language keywords
var keywords = map[string]TokenType{
	"var":      VAR,
	"fun":      FUN,
	"return":   RETURN,
	"if":       IF,
	"else":     ELSE,
	"for":      FOR,
	"while":    WHILE,
	"print":    PRINT,
	"break":    BREAK,
	"continue": CONTINUE,
	"class":    CLASS,
	"this":     THIS,
	"true":     TRUE,
	"false":    FALSE,
	"nil":      NIL,
	"or":       OR,
	"and":      AND,
	"super":    SUPER,
}

// LookupIdent checks if an identifier is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Keywords returns the reserved words of the language, for tab completion
// and fuzzy suggestions.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}
	return words
}

// literalFor derives the literal tag from a token type. NUMBER and STRING
// carry their own kinds, TRUE and FALSE are booleans, everything else is nil.
func literalFor(tt TokenType) Literal {
	switch tt {
	case NUMBER:
		return LIT_NUMBER
	case STRING:
		return LIT_STRING
	case TRUE, FALSE:
		return LIT_BOOLEAN
	default:
		return LIT_NIL
	}
}
