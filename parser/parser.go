// Package parser implements the Fern recursive-descent parser.
//
// The parser reads the complete token stream from a [lexer.Lexer] up front and
// builds an [ast.Program]. Alternatives are resolved by ordered choice with
// explicit backtracking: each alternative is attempted in a fixed order, and on
// failure the cursor is rewound to a saved position before the next alternative
// runs. No backtracking state is shared between attempts beyond the cursor
// itself.
//
// Usage:
//
//	l := lexer.New(source)
//	p := parser.New(l)
//	prog, err := p.Parse()
//	if err != nil {
//	    pe := err.(*parser.ParseError)
//	    ...
//	}
//
// There is no error recovery and no partial tree: a parse either yields a
// complete Program or a single [*ParseError]. While alternatives are tried and
// rewound, the parser keeps the farthest position at which any token match
// failed together with every alternative that was still viable there; that
// pair becomes the "expected one of {...}" error surface.
//
// Fern expressions deliberately have no operator precedence. An expression is
// a flat left-to-right chain of terms and operators, kept as a sequence in the
// tree (see [ast.Expr]); this parser never re-associates it.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fernlang/fern/ast"
	"github.com/fernlang/fern/lexer"
)

// ── Errors ────────────────────────────────────────────────────────────────────

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// LexicalFailure: the input at the failure position is not a token of the
	// language at all (an ILLEGAL byte such as '_' or '&').
	LexicalFailure ErrorKind = iota
	// StructuralFailure: the tokens are lexically valid but a required element,
	// such as a closing brace or a mandatory newline, is missing.
	StructuralFailure
	// UnexpectedEnd: the input ended while a rule still expected more.
	UnexpectedEnd
)

// String returns the kind name, e.g. "structural failure".
func (k ErrorKind) String() string {
	switch k {
	case LexicalFailure:
		return "lexical failure"
	case StructuralFailure:
		return "structural failure"
	case UnexpectedEnd:
		return "unexpected end of input"
	}
	return "unknown failure"
}

// ParseError is the single failure result of an unsuccessful parse. It points
// at the farthest position any alternative reached and lists the grammar
// alternatives that were still viable there, in the order they were tried.
type ParseError struct {
	Offset   int    // 0-based byte offset of the failure
	Line     int    // 1-based line of the failure
	Col      int    // 1-based column of the failure
	Kind     ErrorKind
	Found    string   // human-readable description of what was found
	Expected []string // viable alternatives, e.g. ["identifier", "'mut'"]
}

// Error formats the failure as "line:col: expected one of {...}, found ...".
func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: expected one of {%s}, found %s",
		e.Line, e.Col, strings.Join(e.Expected, ", "), e.Found)
}

// ── Parser ────────────────────────────────────────────────────────────────────

// Parser holds all state needed to parse one Fern source text.
// Create one with [New] and call [Parser.Parse] once.
type Parser struct {
	toks []ast.Token // the complete token stream, ending in EOF
	pos  int         // index of the current token

	// Farthest-failure tracking. failPos is the largest token index at which
	// a match failed; expected collects the alternatives recorded there.
	failPos  int
	expected []string
}

// New creates a Parser over the token stream produced by l.
// The whole stream is read eagerly so that ordered-choice alternatives can
// rewind by index.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{failPos: -1}
	for {
		tok := l.NextToken()
		p.toks = append(p.toks, tok)
		if tok.Type == ast.EOF {
			return p
		}
	}
}

// Parse builds the complete AST for the input. On success it returns the
// Program and a nil error; on failure it returns a nil Program and a
// [*ParseError]. The input is one whole source text — parsing is atomic and
// synchronous, and the returned tree is freshly allocated and exclusively
// owned by the caller.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{}
	for {
		for p.at(ast.NEWLINE) {
			p.advance()
		}
		if p.at(ast.EOF) {
			return prog, nil
		}
		item := p.parseItem()
		if item == nil {
			return nil, p.parseError()
		}
		prog.Items = append(prog.Items, item)
		if !p.at(ast.EOF) && !p.expect(ast.NEWLINE) {
			return nil, p.parseError()
		}
	}
}

// ── Internal token management ─────────────────────────────────────────────────

// cur returns the current token.
func (p *Parser) cur() ast.Token { return p.toks[p.pos] }

// at reports whether the current token has the given type. It records nothing;
// use expect when the alternative should appear in the error surface.
func (p *Parser) at(tt ast.TokenType) bool { return p.cur().Type == tt }

// advance moves the cursor one token forward. It never moves past EOF.
func (p *Parser) advance() {
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
}

// expect consumes the current token if it has the given type and returns
// true. Otherwise it records tt as a viable alternative at the current
// position and returns false without advancing.
func (p *Parser) expect(tt ast.TokenType) bool {
	if p.at(tt) {
		p.advance()
		return true
	}
	p.fail(tt.String())
	return false
}

// expectIdent consumes an identifier token and returns its literal.
func (p *Parser) expectIdent() (string, bool) {
	if p.at(ast.IDENT) {
		name := p.cur().Literal
		p.advance()
		return name, true
	}
	p.fail(ast.IDENT.String())
	return "", false
}

// fail records want as a viable alternative at the current position. Failures
// behind the farthest one seen so far are superseded alternatives and are
// dropped; failures past it reset the expected set.
func (p *Parser) fail(want string) {
	if p.pos < p.failPos {
		return
	}
	if p.pos > p.failPos {
		p.failPos = p.pos
		p.expected = p.expected[:0]
	}
	for _, e := range p.expected {
		if e == want {
			return
		}
	}
	p.expected = append(p.expected, want)
}

// parseError builds the single ParseError for the farthest recorded failure.
func (p *Parser) parseError() *ParseError {
	tok := p.cur()
	if p.failPos >= 0 {
		tok = p.toks[p.failPos]
	}

	kind := StructuralFailure
	found := fmt.Sprintf("%q", tok.Literal)
	switch tok.Type {
	case ast.ILLEGAL:
		kind = LexicalFailure
	case ast.EOF:
		kind = UnexpectedEnd
		found = "end of input"
	}

	expected := make([]string, len(p.expected))
	copy(expected, p.expected)
	return &ParseError{
		Offset:   tok.Offset,
		Line:     tok.Line,
		Col:      tok.Col,
		Kind:     kind,
		Found:    found,
		Expected: expected,
	}
}

// ── Top-level items ───────────────────────────────────────────────────────────

// parseItem parses one top-level item. Ordered choice: type declaration,
// function declaration, assignment. Returns nil on failure with the cursor
// rewound to the item start.
func (p *Parser) parseItem() ast.Item {
	mark := p.pos
	if td := p.parseTypeDecl(); td != nil {
		return td
	}
	p.pos = mark
	if fd := p.parseFunctionDecl(); fd != nil {
		return fd
	}
	p.pos = mark
	if a := p.parseAssign(); a != nil {
		return a
	}
	p.pos = mark
	return nil
}

// parseFunctionDecl parses
//
//	name(param, ...) {
//	<body>
//	}
//
// The parameter list may be empty. The closing brace sits on its own line;
// the newline after it belongs to the caller.
func (p *Parser) parseFunctionDecl() *ast.FunctionDecl {
	tok := p.cur()
	name, ok := p.expectIdent()
	if !ok {
		return nil
	}
	if !p.expect(ast.LPAREN) {
		return nil
	}
	var params []string
	if p.at(ast.IDENT) {
		first, _ := p.expectIdent()
		params = append(params, first)
		for p.expect(ast.COMMA) {
			next, ok := p.expectIdent()
			if !ok {
				return nil
			}
			params = append(params, next)
		}
	}
	if !p.expect(ast.RPAREN) {
		return nil
	}
	if !p.expect(ast.LBRACE) {
		return nil
	}
	if !p.expect(ast.NEWLINE) {
		return nil
	}
	body := p.parseBody()
	if !p.expect(ast.RBRACE) {
		return nil
	}
	return &ast.FunctionDecl{Token: tok, Name: name, Params: params, Body: body}
}

// parseTypeDecl parses an algebraic data type declaration:
//
//	type Name(T, ...) {
//	Option
//	...
//	}
//
// The type-parameter list is optional; when absent the declaration has zero
// parameters. At least one option is required, each on its own line.
func (p *Parser) parseTypeDecl() *ast.TypeDecl {
	tok := p.cur()
	if !p.expect(ast.TYPE) {
		return nil
	}
	name, ok := p.expectIdent()
	if !ok {
		return nil
	}

	var params []string
	if p.at(ast.LPAREN) {
		p.advance()
		first, ok := p.expectIdent()
		if !ok {
			return nil
		}
		params = append(params, first)
		for p.expect(ast.COMMA) {
			next, ok := p.expectIdent()
			if !ok {
				return nil
			}
			params = append(params, next)
		}
		if !p.expect(ast.RPAREN) {
			return nil
		}
	}

	if !p.expect(ast.LBRACE) {
		return nil
	}
	if !p.expect(ast.NEWLINE) {
		return nil
	}

	var options []ast.TypeOption
	for {
		opt, ok := p.parseTypeOption()
		if !ok {
			return nil
		}
		options = append(options, opt)
		if !p.expect(ast.NEWLINE) {
			return nil
		}
		if p.at(ast.RBRACE) {
			break
		}
	}
	p.advance() // consume '}'
	return &ast.TypeDecl{Token: tok, Name: name, Params: params, Options: options}
}

// parseTypeOption parses one constructor of a type declaration: an identifier
// optionally followed by a parenthesised, non-empty list of type expressions.
func (p *Parser) parseTypeOption() (ast.TypeOption, bool) {
	tok := p.cur()
	name, ok := p.expectIdent()
	if !ok {
		return ast.TypeOption{}, false
	}
	var args []*ast.TypeExpr
	if p.at(ast.LPAREN) {
		p.advance()
		first := p.parseTypeExpr()
		if first == nil {
			return ast.TypeOption{}, false
		}
		args = append(args, first)
		for p.expect(ast.COMMA) {
			next := p.parseTypeExpr()
			if next == nil {
				return ast.TypeOption{}, false
			}
			args = append(args, next)
		}
		if !p.expect(ast.RPAREN) {
			return ast.TypeOption{}, false
		}
	}
	return ast.TypeOption{Token: tok, Name: name, Args: args}, true
}

// parseTypeExpr parses a type expression: an identifier optionally applied to
// a parenthesised list of further type expressions. Recurses to support
// nested parametric types such as List(Pair(T, U)).
func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	tok := p.cur()
	name, ok := p.expectIdent()
	if !ok {
		return nil
	}
	var args []*ast.TypeExpr
	if p.at(ast.LPAREN) {
		p.advance()
		first := p.parseTypeExpr()
		if first == nil {
			return nil
		}
		args = append(args, first)
		for p.expect(ast.COMMA) {
			next := p.parseTypeExpr()
			if next == nil {
				return nil
			}
			args = append(args, next)
		}
		if !p.expect(ast.RPAREN) {
			return nil
		}
	}
	return &ast.TypeExpr{Token: tok, Name: name, Args: args}
}

// ── Bodies and statements ─────────────────────────────────────────────────────

// parseBody parses the newline-separated content of a brace-delimited block,
// up to (but not including) the closing brace. Statements are tried first;
// when no further statement matches, one trailing valued node (the body's
// result) may close the sequence. Blank lines are permitted between entries.
//
// parseBody never returns nil: a body with no entries is valid. If the body
// ends early the caller's closing-brace expectation reports the failure.
func (p *Parser) parseBody() *ast.Body {
	body := &ast.Body{}
	for {
		for p.at(ast.NEWLINE) {
			p.advance()
		}
		if p.at(ast.RBRACE) || p.at(ast.EOF) {
			return body
		}

		mark := p.pos
		if s := p.parseStatement(); s != nil {
			if p.expect(ast.NEWLINE) {
				body.Statements = append(body.Statements, s)
				continue
			}
		}
		p.pos = mark

		// No further statement: at most one trailing valued node remains.
		if v := p.parseValued(); v != nil {
			if p.expect(ast.NEWLINE) {
				body.Result = v
				for p.at(ast.NEWLINE) {
					p.advance()
				}
				return body
			}
		}
		p.pos = mark
		return body
	}
}

// parseStatement parses one statement. Ordered choice: assignment, standalone
// function call, case construct. Returns nil on failure with the cursor
// rewound.
func (p *Parser) parseStatement() ast.Statement {
	mark := p.pos
	if a := p.parseAssign(); a != nil {
		return a
	}
	p.pos = mark
	if c := p.parseFnCall(); c != nil {
		return c
	}
	p.pos = mark
	if k := p.parseCase(); k != nil {
		return k
	}
	p.pos = mark
	return nil
}

// parseAssign parses one assignment. The three target forms are tried in
// fixed order so earlier forms take priority:
//
//	mut name = valued   → MutableBind ('mut' can never be a plain target)
//	name: valued        → Update
//	name = valued       → Bind
func (p *Parser) parseAssign() *ast.Assign {
	tok := p.cur()

	if p.expect(ast.MUT) {
		nameTok := p.cur()
		name, ok := p.expectIdent()
		if !ok {
			return nil
		}
		if !p.expect(ast.ASSIGN) {
			return nil
		}
		v := p.parseValued()
		if v == nil {
			return nil
		}
		return &ast.Assign{
			Token:  tok,
			Target: ast.Target{Token: nameTok, Kind: ast.MutableBind, Name: name},
			Value:  v,
		}
	}

	nameTok := p.cur()
	name, ok := p.expectIdent()
	if !ok {
		return nil
	}
	var kind ast.TargetKind
	switch {
	case p.expect(ast.COLON):
		kind = ast.Update
	case p.expect(ast.ASSIGN):
		kind = ast.Bind
	default:
		return nil
	}
	v := p.parseValued()
	if v == nil {
		return nil
	}
	return &ast.Assign{
		Token:  tok,
		Target: ast.Target{Token: nameTok, Kind: kind, Name: name},
		Value:  v,
	}
}

// parseValued parses the right-hand side of an assignment or a body result:
// a case construct or an expression, tried in that order.
func (p *Parser) parseValued() ast.Valued {
	mark := p.pos
	if c := p.parseCase(); c != nil {
		return c
	}
	p.pos = mark
	if e := p.parseExpr(); e != nil {
		return e
	}
	p.pos = mark
	return nil
}

// ── Case constructs ───────────────────────────────────────────────────────────

// parseCase parses
//
//	case <expr> {
//	<pattern> -> <expr or { body }>
//	...
//	}
//
// At least one arm is required; arm order is preserved.
func (p *Parser) parseCase() *ast.Case {
	tok := p.cur()
	if !p.expect(ast.CASE) {
		return nil
	}
	scrutinee := p.parseExpr()
	if scrutinee == nil {
		return nil
	}
	if !p.expect(ast.LBRACE) {
		return nil
	}
	if !p.expect(ast.NEWLINE) {
		return nil
	}

	var options []ast.CaseOption
	for {
		opt, ok := p.parseCaseOption()
		if !ok {
			return nil
		}
		options = append(options, opt)
		if !p.expect(ast.NEWLINE) {
			return nil
		}
		if p.at(ast.RBRACE) {
			break
		}
	}
	p.advance() // consume '}'
	return &ast.Case{Token: tok, Scrutinee: scrutinee, Options: options}
}

// parseCaseOption parses one arm: pattern, arrow, then either a single
// expression or a full brace-delimited body.
func (p *Parser) parseCaseOption() (ast.CaseOption, bool) {
	tok := p.cur()
	pattern, ok := p.parsePattern()
	if !ok {
		return ast.CaseOption{}, false
	}
	if !p.expect(ast.ARROW) {
		return ast.CaseOption{}, false
	}

	var value ast.ArmValue
	if p.at(ast.LBRACE) {
		p.advance()
		if !p.expect(ast.NEWLINE) {
			return ast.CaseOption{}, false
		}
		body := p.parseBody()
		if !p.expect(ast.RBRACE) {
			return ast.CaseOption{}, false
		}
		value = body
	} else {
		expr := p.parseExpr()
		if expr == nil {
			return ast.CaseOption{}, false
		}
		value = expr
	}
	return ast.CaseOption{Token: tok, Pattern: pattern, Value: value}, true
}

// parsePattern parses a case arm pattern: a constructor or binding name,
// optionally followed by a parenthesised, non-empty list of identifiers that
// destructure constructor arguments positionally. The parser does not check
// that the name resolves to a constructor or that the binding count matches
// an arity — both are binder concerns.
func (p *Parser) parsePattern() (ast.CasePattern, bool) {
	tok := p.cur()
	name, ok := p.expectIdent()
	if !ok {
		return ast.CasePattern{}, false
	}
	var binds []string
	if p.at(ast.LPAREN) {
		p.advance()
		first, ok := p.expectIdent()
		if !ok {
			return ast.CasePattern{}, false
		}
		binds = append(binds, first)
		for p.expect(ast.COMMA) {
			next, ok := p.expectIdent()
			if !ok {
				return ast.CasePattern{}, false
			}
			binds = append(binds, next)
		}
		if !p.expect(ast.RPAREN) {
			return ast.CasePattern{}, false
		}
	}
	return ast.CasePattern{Token: tok, Name: name, Binds: binds}, true
}

// ── Expressions ───────────────────────────────────────────────────────────────

// parseExpr parses a flat chain: term (operator term)*. All twelve binary
// operators occupy a single level; the chain ends at the first token that is
// not an operator, or when an operator is not followed by a term (the
// operator is then given back).
func (p *Parser) parseExpr() *ast.Expr {
	tok := p.cur()
	first := p.parseTerm()
	if first == nil {
		return nil
	}
	expr := &ast.Expr{Token: tok, Terms: []ast.Term{first}}
	for {
		mark := p.pos
		op, ok := p.acceptOperator()
		if !ok {
			break
		}
		term := p.parseTerm()
		if term == nil {
			p.pos = mark
			break
		}
		expr.Ops = append(expr.Ops, op)
		expr.Terms = append(expr.Terms, term)
	}
	return expr
}

// acceptOperator consumes one of the twelve binary operator tokens and
// returns its literal.
func (p *Parser) acceptOperator() (string, bool) {
	switch p.cur().Type {
	case ast.PLUS, ast.MINUS, ast.ASTERISK, ast.SLASH, ast.CARET, ast.PERCENT,
		ast.EQ, ast.NEQ, ast.LTE, ast.GTE, ast.LT, ast.GT:
		op := p.cur().Literal
		p.advance()
		return op, true
	}
	p.fail("operator")
	return "", false
}

// parseTerm parses one expression atom. Ordered choice: function call, bare
// identifier, numeric literal (optionally sign-prefixed), parenthesised
// sub-expression.
func (p *Parser) parseTerm() ast.Term {
	tok := p.cur()
	mark := p.pos

	if f := p.parseFnCall(); f != nil {
		return f
	}
	p.pos = mark

	if p.at(ast.IDENT) {
		name, _ := p.expectIdent()
		return &ast.Identifier{Token: tok, Name: name}
	}

	// A '-' directly before a number in term position is the literal's sign.
	// In operator position '-' never reaches here: the chain loop claims it
	// first, which is what gives "a - 5" its flat-chain reading.
	if p.expect(ast.MINUS) {
		if p.at(ast.NUM) {
			numTok := p.cur()
			p.advance()
			return p.numberLit(tok, "-"+numTok.Literal)
		}
		p.fail(ast.NUM.String())
		p.pos = mark
	} else if p.at(ast.NUM) {
		p.advance()
		return p.numberLit(tok, tok.Literal)
	}

	if p.expect(ast.LPAREN) {
		inner := p.parseExpr()
		if inner == nil {
			return nil
		}
		if !p.expect(ast.RPAREN) {
			return nil
		}
		return &ast.ParenExpr{Token: tok, Inner: inner}
	}

	return nil
}

// numberLit builds a NumberLit node from the literal text (sign included).
// The lexer only emits literals strconv accepts, so a parse failure here
// means a lexer bug; it is still surfaced as a regular failure.
func (p *Parser) numberLit(tok ast.Token, literal string) ast.Term {
	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		p.fail(ast.NUM.String())
		return nil
	}
	return &ast.NumberLit{Token: tok, Literal: literal, Value: value}
}

// parseFnCall parses a function call: an identifier applied to a
// parenthesised, comma-separated, possibly-empty argument list.
func (p *Parser) parseFnCall() *ast.FnCall {
	tok := p.cur()
	name, ok := p.expectIdent()
	if !ok {
		return nil
	}
	if !p.expect(ast.LPAREN) {
		return nil
	}
	var args []*ast.Expr
	if !p.at(ast.RPAREN) {
		first := p.parseExpr()
		if first == nil {
			return nil
		}
		args = append(args, first)
		for p.expect(ast.COMMA) {
			next := p.parseExpr()
			if next == nil {
				return nil
			}
			args = append(args, next)
		}
	}
	if !p.expect(ast.RPAREN) {
		return nil
	}
	return &ast.FnCall{Token: tok, Callee: name, Args: args}
}
