// Package lexer_test contains integration-style tests for the Fern lexer.
//
// Tests are organised by category:
//   - TestLexer_Keywords     — the three Fern keywords and keyword boundaries
//   - TestLexer_Operators    — every operator, longest-match-first pairs
//   - TestLexer_Numbers      — integers, fractions, exponents and their edges
//   - TestLexer_Identifiers  — the exact [A-Za-z][A-Za-z0-9]* rule
//   - TestLexer_Newlines     — newline significance and blank lines
//   - TestLexer_Illegal      — bytes outside the grammar's alphabet
//   - TestLexer_Position     — offset, line and column tracking
//   - TestLexer_Program      — end-to-end snippet with a type, a function and a case
package lexer_test

import (
	"testing"

	"github.com/fernlang/fern/ast"
	"github.com/fernlang/fern/lexer"
)

// tokenCase is a single (type, literal) expectation used in table-driven tests.
type tokenCase struct {
	expectedType    ast.TokenType
	expectedLiteral string
}

// runCases calls NextToken for each case in want and fails the test on mismatch.
func runCases(t *testing.T, input string, want []tokenCase) {
	t.Helper()
	l := lexer.New(input)
	for i, tc := range want {
		tok := l.NextToken()
		if tok.Type != tc.expectedType {
			t.Errorf("case %d: type mismatch — got %v, want %v (literal %q)", i, tok.Type, tc.expectedType, tok.Literal)
		}
		if tok.Literal != tc.expectedLiteral {
			t.Errorf("case %d: literal mismatch — got %q, want %q", i, tok.Literal, tc.expectedLiteral)
		}
	}
}

// ── Keywords ──────────────────────────────────────────────────────────────────

// TestLexer_Keywords verifies that every Fern keyword is recognised.
func TestLexer_Keywords(t *testing.T) {
	input := `type mut case`
	want := []tokenCase{
		{ast.TYPE, "type"},
		{ast.MUT, "mut"},
		{ast.CASE, "case"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// TestLexer_KeywordBoundary checks that keyword prefixes used as identifiers
// are not mis-classified. E.g. "mutate" must not be split into MUT + "ate".
func TestLexer_KeywordBoundary(t *testing.T) {
	input := `typeface mutate casement`
	want := []tokenCase{
		{ast.IDENT, "typeface"},
		{ast.IDENT, "mutate"},
		{ast.IDENT, "casement"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// ── Operators ────────────────────────────────────────────────────────────────

// TestLexer_Operators verifies every operator and delimiter, including the
// two-character comparison operators.
func TestLexer_Operators(t *testing.T) {
	input := `+ - * / ^ % == != <= >= < > = -> : , ( ) { }`
	want := []tokenCase{
		{ast.PLUS, "+"},
		{ast.MINUS, "-"},
		{ast.ASTERISK, "*"},
		{ast.SLASH, "/"},
		{ast.CARET, "^"},
		{ast.PERCENT, "%"},
		{ast.EQ, "=="},
		{ast.NEQ, "!="},
		{ast.LTE, "<="},
		{ast.GTE, ">="},
		{ast.LT, "<"},
		{ast.GT, ">"},
		{ast.ASSIGN, "="},
		{ast.ARROW, "->"},
		{ast.COLON, ":"},
		{ast.COMMA, ","},
		{ast.LPAREN, "("},
		{ast.RPAREN, ")"},
		{ast.LBRACE, "{"},
		{ast.RBRACE, "}"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// TestLexer_LongestMatch checks that the two-character operators win over
// their one-character prefixes even without separating whitespace.
func TestLexer_LongestMatch(t *testing.T) {
	input := `a<=b c>=d e==f g!=h i<j`
	want := []tokenCase{
		{ast.IDENT, "a"},
		{ast.LTE, "<="},
		{ast.IDENT, "b"},
		{ast.IDENT, "c"},
		{ast.GTE, ">="},
		{ast.IDENT, "d"},
		{ast.IDENT, "e"},
		{ast.EQ, "=="},
		{ast.IDENT, "f"},
		{ast.IDENT, "g"},
		{ast.NEQ, "!="},
		{ast.IDENT, "h"},
		{ast.IDENT, "i"},
		{ast.LT, "<"},
		{ast.IDENT, "j"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// TestLexer_ArrowVsMinus checks that "->" is one token while "- >" is two.
func TestLexer_ArrowVsMinus(t *testing.T) {
	input := `-> - >`
	want := []tokenCase{
		{ast.ARROW, "->"},
		{ast.MINUS, "-"},
		{ast.GT, ">"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// ── Numbers ───────────────────────────────────────────────────────────────────

// TestLexer_Numbers checks integer and fractional literal scanning, including
// the empty-fraction form "3." which is a complete literal.
func TestLexer_Numbers(t *testing.T) {
	input := `0 42 3.14 0.5 3.`
	want := []tokenCase{
		{ast.NUM, "0"},
		{ast.NUM, "42"},
		{ast.NUM, "3.14"},
		{ast.NUM, "0.5"},
		{ast.NUM, "3."},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// TestLexer_NumberExponents checks exponent scanning with and without signs,
// with both marker cases, and after an empty fraction.
func TestLexer_NumberExponents(t *testing.T) {
	input := `2e10 1.5e-3 7E+2 3.e2`
	want := []tokenCase{
		{ast.NUM, "2e10"},
		{ast.NUM, "1.5e-3"},
		{ast.NUM, "7E+2"},
		{ast.NUM, "3.e2"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// TestLexer_NumberExponentBoundary verifies that an 'e' not followed by a
// signed integer stays outside the literal: "2elephant" is NUM then IDENT,
// and "2e-" is NUM, IDENT, MINUS.
func TestLexer_NumberExponentBoundary(t *testing.T) {
	input := `2elephant 2e-`
	want := []tokenCase{
		{ast.NUM, "2"},
		{ast.IDENT, "elephant"},
		{ast.NUM, "2"},
		{ast.IDENT, "e"},
		{ast.MINUS, "-"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// TestLexer_NumberNoLeadingSign verifies that the lexer never folds a sign
// into a literal — "-5" is MINUS then NUM (the parser decides what the '-'
// means from context).
func TestLexer_NumberNoLeadingSign(t *testing.T) {
	input := `-5 a-5`
	want := []tokenCase{
		{ast.MINUS, "-"},
		{ast.NUM, "5"},
		{ast.IDENT, "a"},
		{ast.MINUS, "-"},
		{ast.NUM, "5"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// ── Identifiers ───────────────────────────────────────────────────────────────

// TestLexer_Identifiers checks the exact identifier rule: a letter followed
// by letters and digits. Every full string here must come back as a single
// IDENT token — nothing shorter, nothing longer.
func TestLexer_Identifiers(t *testing.T) {
	for _, ident := range []string{"x", "A", "foo", "CamelCase", "x1", "Ab3x", "z9"} {
		l := lexer.New(ident)
		tok := l.NextToken()
		if tok.Type != ast.IDENT {
			t.Errorf("%q: got type %v, want IDENT", ident, tok.Type)
		}
		if tok.Literal != ident {
			t.Errorf("%q: got literal %q, want the full string", ident, tok.Literal)
		}
		if next := l.NextToken(); next.Type != ast.EOF {
			t.Errorf("%q: trailing token %v (%q), want EOF", ident, next.Type, next.Literal)
		}
	}
}

// TestLexer_IdentifierNoUnderscore verifies that '_' is not an identifier
// character: "foo_bar" is IDENT, ILLEGAL, IDENT.
func TestLexer_IdentifierNoUnderscore(t *testing.T) {
	input := `foo_bar _x`
	want := []tokenCase{
		{ast.IDENT, "foo"},
		{ast.ILLEGAL, "_"},
		{ast.IDENT, "bar"},
		{ast.ILLEGAL, "_"},
		{ast.IDENT, "x"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// TestLexer_IdentifierNoLeadingDigit verifies that "9a" scans as a number
// followed by an identifier, never as one identifier.
func TestLexer_IdentifierNoLeadingDigit(t *testing.T) {
	runCases(t, `9a`, []tokenCase{
		{ast.NUM, "9"},
		{ast.IDENT, "a"},
		{ast.EOF, ""},
	})
}

// ── Newlines ──────────────────────────────────────────────────────────────────

// TestLexer_Newlines verifies that '\n' is a token, that blank lines produce
// consecutive NEWLINE tokens, and that tabs and '\r' are skipped silently.
func TestLexer_Newlines(t *testing.T) {
	input := "a\n\n\tb\r\nc"
	want := []tokenCase{
		{ast.IDENT, "a"},
		{ast.NEWLINE, "\n"},
		{ast.NEWLINE, "\n"},
		{ast.IDENT, "b"},
		{ast.NEWLINE, "\n"},
		{ast.IDENT, "c"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// ── Illegal bytes ─────────────────────────────────────────────────────────────

// TestLexer_Illegal checks that bytes outside the grammar's alphabet come
// back as ILLEGAL tokens carrying the offending byte.
func TestLexer_Illegal(t *testing.T) {
	input := `a & b $`
	want := []tokenCase{
		{ast.IDENT, "a"},
		{ast.ILLEGAL, "&"},
		{ast.IDENT, "b"},
		{ast.ILLEGAL, "$"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}

// TestLexer_IllegalBang checks that a lone '!' (not part of "!=") is ILLEGAL.
func TestLexer_IllegalBang(t *testing.T) {
	runCases(t, `a ! b`, []tokenCase{
		{ast.IDENT, "a"},
		{ast.ILLEGAL, "!"},
		{ast.IDENT, "b"},
		{ast.EOF, ""},
	})
}

// ── Position tracking ─────────────────────────────────────────────────────────

// TestLexer_Position verifies that tokens carry correct byte offsets, line
// and column numbers, including across newlines and for NEWLINE tokens
// themselves.
func TestLexer_Position(t *testing.T) {
	input := "mut x = 1\nf(x)"
	l := lexer.New(input)

	type posCase struct {
		lit    string
		offset int
		line   int
		col    int
	}
	cases := []posCase{
		{"mut", 0, 1, 1},
		{"x", 4, 1, 5},
		{"=", 6, 1, 7},
		{"1", 8, 1, 9},
		{"\n", 9, 1, 10},
		{"f", 10, 2, 1},
		{"(", 11, 2, 2},
		{"x", 12, 2, 3},
		{")", 13, 2, 4},
	}

	for i, c := range cases {
		tok := l.NextToken()
		if tok.Literal != c.lit {
			t.Errorf("case %d: literal — got %q, want %q", i, tok.Literal, c.lit)
		}
		if tok.Offset != c.offset {
			t.Errorf("case %d (%q): offset — got %d, want %d", i, c.lit, tok.Offset, c.offset)
		}
		if tok.Line != c.line {
			t.Errorf("case %d (%q): line — got %d, want %d", i, c.lit, tok.Line, c.line)
		}
		if tok.Col != c.col {
			t.Errorf("case %d (%q): col — got %d, want %d", i, c.lit, tok.Col, c.col)
		}
	}
}

// ── End-to-end program snippet ────────────────────────────────────────────────

// TestLexer_Program tokenises a snippet combining a type declaration, a
// function and a case construct, and verifies the complete token stream.
func TestLexer_Program(t *testing.T) {
	input := `type Bool {
True
False
}
not(b) {
case b {
True -> 0
False -> 1
}
}`

	want := []tokenCase{
		{ast.TYPE, "type"},
		{ast.IDENT, "Bool"},
		{ast.LBRACE, "{"},
		{ast.NEWLINE, "\n"},
		{ast.IDENT, "True"},
		{ast.NEWLINE, "\n"},
		{ast.IDENT, "False"},
		{ast.NEWLINE, "\n"},
		{ast.RBRACE, "}"},
		{ast.NEWLINE, "\n"},

		{ast.IDENT, "not"},
		{ast.LPAREN, "("},
		{ast.IDENT, "b"},
		{ast.RPAREN, ")"},
		{ast.LBRACE, "{"},
		{ast.NEWLINE, "\n"},

		{ast.CASE, "case"},
		{ast.IDENT, "b"},
		{ast.LBRACE, "{"},
		{ast.NEWLINE, "\n"},
		{ast.IDENT, "True"},
		{ast.ARROW, "->"},
		{ast.NUM, "0"},
		{ast.NEWLINE, "\n"},
		{ast.IDENT, "False"},
		{ast.ARROW, "->"},
		{ast.NUM, "1"},
		{ast.NEWLINE, "\n"},
		{ast.RBRACE, "}"},
		{ast.NEWLINE, "\n"},

		{ast.RBRACE, "}"},
		{ast.EOF, ""},
	}
	runCases(t, input, want)
}
