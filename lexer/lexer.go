// Package lexer implements the Fern language lexer (tokeniser).
//
// The lexer converts a Fern source string into a flat stream of [ast.Token] values.
// Call [New] to create a lexer and then call [Lexer.NextToken] repeatedly until
// you receive a token with Type == [ast.EOF].
//
// Design notes:
//   - Single-pass, character-by-character scanning using a read position cursor.
//   - No global state; every [Lexer] is independent.
//   - Byte offset, line and column are tracked for every token (offset 0-based,
//     line and column 1-based).
//   - Horizontal whitespace (space, tab) is insignificant and skipped, but a
//     newline is a significant terminator and is emitted as a NEWLINE token.
//     A '\r' immediately before '\n' is treated as horizontal whitespace.
//   - Identifiers are [A-Za-z][A-Za-z0-9]* — no underscores. Identifiers are
//     classified as keywords via [ast.LookupIdent].
//   - Multi-character operators (==, !=, <=, >=, ->) require one character of
//     look-ahead and are matched before their single-character prefixes.
//   - Any byte outside the grammar's alphabet yields an ILLEGAL token; the
//     parser converts it into a lexical failure.
package lexer

import (
	"github.com/fernlang/fern/ast"
)

// Lexer holds all state required to tokenise a single Fern source string.
// Create one with [New]; never copy a Lexer after first use.
type Lexer struct {
	input   string // the full source text
	pos     int    // current read position (index of ch)
	readPos int    // next read position (pos + 1)
	ch      byte   // current character under examination

	line int // 1-based line number of ch
	col  int // 1-based column of ch

	tokOff  int // byte offset at the start of the token being scanned
	tokLine int // line at the start of the token being scanned
	tokCol  int // column at the start of the token being scanned
}

// New creates a [Lexer] that tokenises the given input string.
// The lexer is positioned at the first character; call [Lexer.NextToken]
// immediately to begin scanning.
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar() // prime: set l.ch = input[0]
	return l
}

// NextToken returns the next token from the input.
//
// Horizontal whitespace is skipped before each token; newlines are not — they
// are returned as NEWLINE tokens. When the input is exhausted, NextToken
// returns a token with Type == [ast.EOF] on every subsequent call.
func (l *Lexer) NextToken() ast.Token {
	l.skipSpace()

	l.tokOff, l.tokLine, l.tokCol = l.pos, l.line, l.col

	var tok ast.Token
	switch l.ch {
	// ── End of input ────────────────────────────────────────────────────────
	case 0:
		return l.makeToken(ast.EOF, "")

	// ── Line terminator ─────────────────────────────────────────────────────
	case '\n':
		tok = l.makeToken(ast.NEWLINE, "\n")

	// ── Single-character delimiters ─────────────────────────────────────────
	case '{':
		tok = l.makeToken(ast.LBRACE, "{")
	case '}':
		tok = l.makeToken(ast.RBRACE, "}")
	case '(':
		tok = l.makeToken(ast.LPAREN, "(")
	case ')':
		tok = l.makeToken(ast.RPAREN, ")")
	case ',':
		tok = l.makeToken(ast.COMMA, ",")
	case ':':
		tok = l.makeToken(ast.COLON, ":")

	// ── Single-character operators ──────────────────────────────────────────
	case '+':
		tok = l.makeToken(ast.PLUS, "+")
	case '*':
		tok = l.makeToken(ast.ASTERISK, "*")
	case '/':
		tok = l.makeToken(ast.SLASH, "/")
	case '^':
		tok = l.makeToken(ast.CARET, "^")
	case '%':
		tok = l.makeToken(ast.PERCENT, "%")

	// ── Operators that may be one or two characters ─────────────────────────
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			tok = l.makeToken(ast.ARROW, "->")
		} else {
			tok = l.makeToken(ast.MINUS, "-")
		}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(ast.EQ, "==")
		} else {
			tok = l.makeToken(ast.ASSIGN, "=")
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(ast.NEQ, "!=")
		} else {
			tok = l.makeToken(ast.ILLEGAL, string(l.ch))
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(ast.LTE, "<=")
		} else {
			tok = l.makeToken(ast.LT, "<")
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(ast.GTE, ">=")
		} else {
			tok = l.makeToken(ast.GT, ">")
		}

	// ── Identifiers, keywords and numbers ──────────────────────────────────
	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		} else if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = l.makeToken(ast.ILLEGAL, string(l.ch))
	}

	l.readChar() // advance past the last character of this token
	return tok
}

// ── Internal helpers ──────────────────────────────────────────────────────────

// readChar advances the lexer by one character.
// When the input is exhausted l.ch is set to 0 (the null byte sentinel for EOF).
// Line and column counters are updated here; col is 1-based.
func (l *Lexer) readChar() {
	// Moving past a newline starts the next line.
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.col++
}

// peekChar returns the next character without consuming it.
// Returns 0 when the end of input has been reached.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// makeToken constructs a token at the start position captured by NextToken.
// It does NOT advance the cursor — the caller is responsible for calling
// readChar after constructing single- and double-character tokens.
func (l *Lexer) makeToken(tt ast.TokenType, literal string) ast.Token {
	return ast.Token{
		Type:    tt,
		Literal: literal,
		Offset:  l.tokOff,
		Line:    l.tokLine,
		Col:     l.tokCol,
	}
}

// skipSpace advances past horizontal whitespace before the next token.
// Newlines are never skipped here — they are significant.
func (l *Lexer) skipSpace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier scans an identifier or keyword starting at the current
// position. It returns early (before the trailing readChar in NextToken), so
// it must NOT call readChar at the end; the cursor is already positioned on
// the first non-identifier character.
func (l *Lexer) readIdentifier() ast.Token {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	literal := l.input[start:l.pos]
	return l.makeToken(ast.LookupIdent(literal), literal)
}

// readNumber scans a numeric literal starting at the current position:
// digits, an optional '.' with possibly-empty fractional digits, and an
// optional exponent ('e' or 'E', optional sign, digits). An 'e' that is not
// followed by a (signed) digit is left for the next token, so "2elephant"
// scans as NUM "2" followed by IDENT "elephant".
//
// Like readIdentifier, this returns early and does NOT call readChar at the
// end — the cursor is already on the first character past the literal.
func (l *Lexer) readNumber() ast.Token {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	// Fractional part. The digits after the '.' may be empty: "3." is a
	// complete literal.
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	// Exponent: only consumed when a signed integer actually follows.
	if (l.ch == 'e' || l.ch == 'E') && l.exponentFollows() {
		l.readChar() // consume 'e'
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	literal := l.input[start:l.pos]
	return l.makeToken(ast.NUM, literal)
}

// exponentFollows reports whether the characters after the current 'e'/'E'
// form the start of an exponent: an optional sign and at least one digit.
func (l *Lexer) exponentFollows() bool {
	j := l.readPos
	if j < len(l.input) && (l.input[j] == '+' || l.input[j] == '-') {
		j++
	}
	return j < len(l.input) && isDigit(l.input[j])
}

// isLetter reports whether b is a valid identifier-start or identifier-continue
// letter. Fern identifiers follow the pattern [A-Za-z][A-Za-z0-9]* — the
// underscore is not part of the alphabet.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// isDigit reports whether b is an ASCII decimal digit (0–9).
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
