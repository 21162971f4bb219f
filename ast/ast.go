// Package ast defines the Abstract Syntax Tree (AST) node types for the Fern language.
//
// Every source construct has a corresponding node type. The hierarchy is:
//
//	Node (interface)
//	  Item (interface) — top-level entries of a Program
//	    FunctionDecl, TypeDecl, Assign
//	  Statement (interface) — entries of a Body's statement sequence
//	    Assign, FnCall, Case
//	  Valued (interface) — right-hand sides and body results
//	    Expr, Case
//	  ArmValue (interface) — the value of a case arm
//	    Expr, Body
//	  Term (interface) — the atoms of an expression chain
//	    FnCall, Identifier, NumberLit, ParenExpr
//
// An Expr is a flat left-to-right chain of Terms separated by binary operators.
// There are no precedence levels: the chain is kept as an ordered (Term, op)
// sequence so a later pass is free to re-associate it, and parenthesisation is
// the only grouping override (it survives as a ParenExpr node).
//
// Positional information (byte offset, line, column) is stored on the Token
// field present in every node. Nodes are never mutated after the parser
// returns; every node is owned by exactly one parent and the Program node is
// the sole root.
package ast

import (
	"fmt"
	"strings"
)

// ── Interfaces ────────────────────────────────────────────────────────────────

// Node is the root interface for every element in the Fern AST.
// Every node carries the token at which it starts (for error reporting).
type Node interface {
	// TokenLiteral returns the literal string of the token that began this node.
	TokenLiteral() string
	// String re-serialises the node to Fern source text. The output parses
	// back to a structurally identical node (modulo insignificant whitespace),
	// which makes it usable both for debugging and for round-trip tests.
	String() string
}

// Item is a Node that may appear at the top level of a Program:
// a function declaration, a type declaration, or an assignment.
type Item interface {
	Node
	itemNode()
}

// Statement is a Node that may appear in a Body's statement sequence:
// an assignment, a standalone function call, or a case construct used for
// its effect.
type Statement interface {
	Node
	statementNode()
}

// Valued is a Node that produces the value of an assignment's right-hand
// side or a body's result: an expression chain or a case construct.
type Valued interface {
	Node
	valuedNode()
}

// ArmValue is the value of one case arm: either a single expression or a
// full brace-delimited body.
type ArmValue interface {
	Node
	armValueNode()
}

// Term is one atom of an expression chain: a function call, an identifier,
// a numeric literal, or a parenthesised sub-expression.
type Term interface {
	Node
	termNode()
}

// ── Top-level program ─────────────────────────────────────────────────────────

// Program is the root AST node produced by the parser.
// A Fern source file is an ordered sequence of top-level items.
type Program struct {
	Items []Item
}

// TokenLiteral returns the literal of the first item's starting token,
// or "" for an empty program.
func (p *Program) TokenLiteral() string {
	if len(p.Items) > 0 {
		return p.Items[0].TokenLiteral()
	}
	return ""
}

// String returns all items in order, each terminated by a newline.
// The result is itself a valid Fern program.
func (p *Program) String() string {
	var b strings.Builder
	for _, it := range p.Items {
		b.WriteString(it.String())
		b.WriteString("\n")
	}
	return b.String()
}

// ── Declarations ──────────────────────────────────────────────────────────────

// FunctionDecl is a top-level function declaration.
//
//	add(a, b) {
//	a + b
//	}
//
// There is no return-type annotation; the body's trailing valued node (if
// any) is the function's result. Parameter names need not be unique here —
// that is a binder concern.
type FunctionDecl struct {
	Token  Token    // the function name token
	Name   string   // function name
	Params []string // ordered parameter names, may be empty
	Body   *Body
}

func (d *FunctionDecl) itemNode()            {}
func (d *FunctionDecl) TokenLiteral() string { return d.Token.Literal }
func (d *FunctionDecl) String() string {
	return fmt.Sprintf("%s(%s) {\n%s}", d.Name, strings.Join(d.Params, ", "), d.Body.String())
}

// TypeDecl declares an algebraic data type with one or more constructors.
//
//	type List(T) {
//	Cons(T, List(T))
//	Nil
//	}
//
// Params holds the type-parameter names; it is empty when the parenthesised
// list is absent. Options is never empty.
type TypeDecl struct {
	Token   Token    // the 'type' token
	Name    string   // type name
	Params  []string // ordered type-parameter names, may be empty
	Options []TypeOption
}

func (d *TypeDecl) itemNode()            {}
func (d *TypeDecl) TokenLiteral() string { return d.Token.Literal }
func (d *TypeDecl) String() string {
	var b strings.Builder
	b.WriteString("type ")
	b.WriteString(d.Name)
	if len(d.Params) > 0 {
		fmt.Fprintf(&b, "(%s)", strings.Join(d.Params, ", "))
	}
	b.WriteString(" {\n")
	for _, opt := range d.Options {
		b.WriteString(opt.String())
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// TypeOption is one constructor (variant) of a TypeDecl.
// Args holds the constructor's field types; a constructor written without
// parentheses is nullary (Args is empty).
//
//	Cons(T, List(T))  → Name="Cons", Args=[T, List(T)]
//	Nil               → Name="Nil",  Args=[]
type TypeOption struct {
	Token Token  // the constructor name token
	Name  string // constructor name
	Args  []*TypeExpr
}

// String returns the constructor in source form, e.g. "Cons(T, List(T))".
func (o TypeOption) String() string {
	if len(o.Args) == 0 {
		return o.Name
	}
	parts := make([]string, len(o.Args))
	for i, a := range o.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", o.Name, strings.Join(parts, ", "))
}

// TypeExpr is a type expression: an identifier optionally applied to nested
// type arguments. It recurses to support parametric types applied to other
// parametric types, e.g. List(Pair(T, U)).
type TypeExpr struct {
	Token Token  // the type name token
	Name  string // "Bool", "List", "T", ...
	Args  []*TypeExpr
}

// String returns the type in source form, e.g. "List(T)".
func (te *TypeExpr) String() string {
	if len(te.Args) == 0 {
		return te.Name
	}
	parts := make([]string, len(te.Args))
	for i, a := range te.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", te.Name, strings.Join(parts, ", "))
}

// ── Bodies and statements ─────────────────────────────────────────────────────

// Body is the newline-separated content of a function or case-arm block: an
// ordered statement sequence followed by an optional trailing valued node.
// Result is nil when the body has no result (unit-like).
type Body struct {
	Statements []Statement
	Result     Valued
}

func (b *Body) armValueNode() {}

// TokenLiteral returns the literal of the first statement's starting token,
// the result's token for a statement-less body, or "" for an empty body.
func (b *Body) TokenLiteral() string {
	if len(b.Statements) > 0 {
		return b.Statements[0].TokenLiteral()
	}
	if b.Result != nil {
		return b.Result.TokenLiteral()
	}
	return ""
}

// String returns the body as source lines, each terminated by a newline.
func (b *Body) String() string {
	var sb strings.Builder
	for _, s := range b.Statements {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	if b.Result != nil {
		sb.WriteString(b.Result.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// TargetKind discriminates the three assignment target forms.
// Dispatch on the tag in consumers; there is one payload (the name) for all
// three kinds.
type TargetKind int

const (
	// Bind establishes or shadows an ordinary immutable binding: x = 0
	Bind TargetKind = iota
	// MutableBind introduces a new mutable binding: mut x = 0
	MutableBind
	// Update mutates a binding assumed already mutable: x: x + 1
	// Whether the binding really is mutable is checked by the binder, not here.
	Update
)

// String returns the kind name, e.g. "Bind".
func (k TargetKind) String() string {
	switch k {
	case Bind:
		return "Bind"
	case MutableBind:
		return "MutableBind"
	case Update:
		return "Update"
	}
	return "unknown"
}

// Target is the left-hand side of an assignment: one of the three target
// kinds paired with the bound name.
type Target struct {
	Token Token // the name token ('mut' keyword excluded)
	Kind  TargetKind
	Name  string
}

// Assign pairs a Target with a right-hand side that is a Case or an Expr.
// It appears both at the top level of a Program and inside bodies.
type Assign struct {
	Token  Token // the first token of the statement ('mut' or the name)
	Target Target
	Value  Valued
}

func (a *Assign) itemNode()            {}
func (a *Assign) statementNode()       {}
func (a *Assign) TokenLiteral() string { return a.Token.Literal }
func (a *Assign) String() string {
	switch a.Target.Kind {
	case MutableBind:
		return fmt.Sprintf("mut %s = %s", a.Target.Name, a.Value.String())
	case Update:
		return fmt.Sprintf("%s: %s", a.Target.Name, a.Value.String())
	}
	return fmt.Sprintf("%s = %s", a.Target.Name, a.Value.String())
}

// ── Case constructs ───────────────────────────────────────────────────────────

// Case is a pattern-matching construct: a scrutinee expression and a
// non-empty ordered sequence of arms. Arm order is significant — the first
// matching arm wins downstream, so the parser preserves source order.
// A Case may appear as a statement (value discarded), as an assignment's
// right-hand side, or as a body's trailing result.
type Case struct {
	Token     Token // the 'case' token
	Scrutinee *Expr
	Options   []CaseOption
}

func (c *Case) statementNode()       {}
func (c *Case) valuedNode()          {}
func (c *Case) TokenLiteral() string { return c.Token.Literal }
func (c *Case) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "case %s {\n", c.Scrutinee.String())
	for _, opt := range c.Options {
		b.WriteString(opt.String())
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// CaseOption is one arm of a Case: a pattern and its value, which is either
// a single expression or a full brace-delimited body.
type CaseOption struct {
	Token   Token // the token at the start of the pattern
	Pattern CasePattern
	Value   ArmValue
}

// String returns the arm in source form, e.g. "Cons(h, t) -> h".
func (o CaseOption) String() string {
	if body, ok := o.Value.(*Body); ok {
		return fmt.Sprintf("%s -> {\n%s}", o.Pattern.String(), body.String())
	}
	return fmt.Sprintf("%s -> %s", o.Pattern.String(), o.Value.String())
}

// CasePattern is the left-hand side of a case arm: a constructor or binding
// name plus the identifiers bound to the constructor's positional arguments.
// Absence of parentheses means a nullary pattern (Binds is empty). The
// grammar has no dedicated wildcard token; whether a bare name is a
// constructor or a catch-all binding is resolved by the binder.
type CasePattern struct {
	Token Token
	Name  string
	Binds []string
}

// String returns the pattern in source form, e.g. "Cons(h, t)".
func (p CasePattern) String() string {
	if len(p.Binds) == 0 {
		return p.Name
	}
	return fmt.Sprintf("%s(%s)", p.Name, strings.Join(p.Binds, ", "))
}

// ── Expressions ───────────────────────────────────────────────────────────────

// Expr is a flat left-to-right chain of Terms separated by binary operators:
// Terms[0] Ops[0] Terms[1] Ops[1] ... Terms[n].
//
// Invariant: len(Terms) == len(Ops)+1 and len(Terms) >= 1. A chain of length
// one is semantically just its single Term. The chain is deliberately NOT
// folded into a binary tree: Fern has no operator precedence, and keeping the
// raw (term, operator) sequence leaves any later precedence-assignment pass
// free to re-associate it. Consumers that fold must do so in left-to-right
// source order.
type Expr struct {
	Token Token // the first token of the first term
	Terms []Term
	Ops   []string // each one of: + - * / ^ % == != <= >= < >
}

func (e *Expr) valuedNode()          {}
func (e *Expr) armValueNode()        {}
func (e *Expr) TokenLiteral() string { return e.Token.Literal }
func (e *Expr) String() string {
	var b strings.Builder
	b.WriteString(e.Terms[0].String())
	for i, op := range e.Ops {
		fmt.Fprintf(&b, " %s %s", op, e.Terms[i+1].String())
	}
	return b.String()
}

// Identifier is a reference to a named binding, parameter or constructor.
type Identifier struct {
	Token Token
	Name  string
}

func (e *Identifier) termNode()            {}
func (e *Identifier) TokenLiteral() string { return e.Token.Literal }
func (e *Identifier) String() string       { return e.Name }

// NumberLit is a numeric literal: a signed integer part, an optional
// fractional part (whose digits may be empty) and an optional exponent.
// Literal preserves the source text, including a leading '-' consumed by the
// parser in term position; Value is the parsed numeric value.
type NumberLit struct {
	Token   Token
	Literal string
	Value   float64
}

func (e *NumberLit) termNode()            {}
func (e *NumberLit) TokenLiteral() string { return e.Token.Literal }
func (e *NumberLit) String() string       { return e.Literal }

// FnCall is a function call: a callee identifier applied to zero or more
// comma-separated argument expressions. It is both a Term (inside expression
// chains) and a Statement (a standalone call kept for its effect, value
// discarded by the grammar).
type FnCall struct {
	Token  Token  // the callee token
	Callee string // callee identifier
	Args   []*Expr
}

func (e *FnCall) termNode()            {}
func (e *FnCall) statementNode()       {}
func (e *FnCall) TokenLiteral() string { return e.Token.Literal }
func (e *FnCall) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Callee, strings.Join(parts, ", "))
}

// ParenExpr is a parenthesised sub-expression used as a term. The node is
// kept in the tree (rather than splicing the inner chain) because
// parenthesisation is the only way to override the flat left-to-right
// grouping, and that grouping must survive for downstream passes.
type ParenExpr struct {
	Token Token // the '(' token
	Inner *Expr
}

func (e *ParenExpr) termNode()            {}
func (e *ParenExpr) TokenLiteral() string { return e.Token.Literal }
func (e *ParenExpr) String() string       { return fmt.Sprintf("(%s)", e.Inner.String()) }
