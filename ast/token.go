// Package ast defines the token types and the Token struct used by the Fern lexer and parser.
//
// Tokens are the smallest meaningful units of a Fern source file. Every token carries its
// type, the exact literal text it was scanned from, and its source position (byte offset,
// line, column). Line and Col are 1-based: the first character of a file is Line 1, Col 1.
// Offset is the 0-based byte offset of the token's first character.
package ast

// TokenType identifies the category of a scanned token.
// The zero value (0) is reserved and not a valid token.
type TokenType int

const (
	// ── Special ────────────────────────────────────────────────────────────────

	// ILLEGAL represents a byte the lexer could not recognise, such as '_' or
	// any non-ASCII character. The parser turns it into a lexical failure.
	ILLEGAL TokenType = iota
	// EOF marks the end of the input stream. The parser stops when it sees EOF.
	EOF
	// NEWLINE is a '\n' character. Newlines terminate statements, declarations
	// and case arms, so the lexer emits them as tokens rather than skipping
	// them with the rest of the whitespace.
	NEWLINE

	// ── Literals ───────────────────────────────────────────────────────────────

	// IDENT is an identifier: [A-Za-z][A-Za-z0-9]*
	// Underscores are not identifier characters in Fern. Identifiers that match
	// a keyword are re-classified to their keyword type by the lexer.
	IDENT
	// NUM is a numeric literal: digits, an optional fractional part whose
	// digits may be empty ("3." is valid), and an optional exponent marker
	// followed by an optionally-signed integer ("1.5e-3"). The sign of the
	// integer part is not part of the token; a leading '-' is handled by the
	// parser in term position.
	NUM

	// ── Keywords ───────────────────────────────────────────────────────────────

	// TYPE introduces an algebraic data type declaration: type List(T) { ... }
	TYPE
	// MUT introduces a mutable binding: mut count = 0
	MUT
	// CASE begins a pattern-matching construct: case x { ... }
	CASE

	// ── Binary operators ────────────────────────────────────────────────────────

	// PLUS is the addition operator: a + b
	PLUS
	// MINUS is the subtraction operator: a - b
	// A '-' directly before a numeric literal in term position is the
	// literal's sign, resolved by the parser.
	MINUS
	// ASTERISK is the multiplication operator: a * b
	ASTERISK
	// SLASH is the division operator: a / b
	SLASH
	// CARET is the power operator: a ^ b
	CARET
	// PERCENT is the remainder operator: n % 2
	PERCENT
	// EQ is the equality operator: a == b
	EQ
	// NEQ is the inequality operator: a != b
	NEQ
	// LTE is the less-than-or-equal operator: a <= b
	LTE
	// GTE is the greater-than-or-equal operator: a >= b
	GTE
	// LT is the less-than operator: a < b
	LT
	// GT is the greater-than operator: a > b
	GT

	// ── Other punctuation ───────────────────────────────────────────────────────

	// ASSIGN is the binding operator: x = 0  /  mut x = 0
	ASSIGN
	// COLON marks an update of an existing mutable binding: x: x + 1
	COLON
	// ARROW separates a case arm's pattern from its value: True -> 1
	ARROW
	// COMMA separates parameters, arguments and type arguments.
	COMMA

	// ── Delimiters ──────────────────────────────────────────────────────────────

	// LPAREN is the left parenthesis: (
	LPAREN
	// RPAREN is the right parenthesis: )
	RPAREN
	// LBRACE is the left curly brace: {
	LBRACE
	// RBRACE is the right curly brace: }
	RBRACE
)

// tokenNames maps each TokenType to a short human-readable name used in
// error messages ("expected one of {...}").
var tokenNames = map[TokenType]string{
	ILLEGAL:  "illegal character",
	EOF:      "end of input",
	NEWLINE:  "newline",
	IDENT:    "identifier",
	NUM:      "number",
	TYPE:     "'type'",
	MUT:      "'mut'",
	CASE:     "'case'",
	PLUS:     "'+'",
	MINUS:    "'-'",
	ASTERISK: "'*'",
	SLASH:    "'/'",
	CARET:    "'^'",
	PERCENT:  "'%'",
	EQ:       "'=='",
	NEQ:      "'!='",
	LTE:      "'<='",
	GTE:      "'>='",
	LT:       "'<'",
	GT:       "'>'",
	ASSIGN:   "'='",
	COLON:    "':'",
	ARROW:    "'->'",
	COMMA:    "','",
	LPAREN:   "'('",
	RPAREN:   "')'",
	LBRACE:   "'{'",
	RBRACE:   "'}'",
}

// String returns the human-readable name of the token type.
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "unknown token"
}

// keywords maps the literal text of every Fern keyword to its TokenType.
// The lexer consults this map when it finishes scanning an identifier.
var keywords = map[string]TokenType{
	"type": TYPE,
	"mut":  MUT,
	"case": CASE,
}

// LookupIdent checks whether ident is a reserved keyword and returns the
// corresponding TokenType. If ident is not a keyword, IDENT is returned.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

// Token is a single lexical unit produced by the Fern lexer.
//
// Fields:
//   - Type    — the category of this token (see TokenType constants)
//   - Literal — the exact source text that was scanned
//   - Offset  — 0-based byte offset of the first character of this token
//   - Line    — 1-based source line number
//   - Col     — 1-based column of the first character of this token
type Token struct {
	Type    TokenType
	Literal string
	Offset  int
	Line    int
	Col     int
}

// String returns a human-readable representation of the token, useful for
// debugging and error messages. It does not replicate the exact Fern source.
func (t Token) String() string {
	return t.Literal
}
