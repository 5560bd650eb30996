// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the resolver and interpreter (spec.md §3).
package ast

import (
	"fmt"
	"sync/atomic"

	"github.com/loxrun/loxrun/lang/token"
)

// ExprID is the stable identity of an expression node, assigned once by the
// parser at construction time. The resolver's side table is keyed by ExprID
// rather than by the node's structural value, since two distinct uses of the
// same variable name in the same scope must never collide (spec.md §9).
type ExprID int64

// Node is any node of the AST. Every Node knows its own source span and can
// format a short description of itself, in the teacher's style.
type Node interface {
	fmt.Stringer
	Span() (start, end token.Pos)
}

// Expr is any expression node.
type Expr interface {
	Node
	// ID returns this expression's stable identity (see ExprID).
	ID() ExprID
	expr()
}

// Stmt is any statement node.
type Stmt interface {
	Node
	stmt()
}

type exprBase struct {
	id ExprID
}

func (e exprBase) ID() ExprID { return e.id }
func (exprBase) expr()        {}

type stmtBase struct{}

func (stmtBase) stmt() {}

// IDGen hands out increasing ExprIDs to nodes built by a single parser run.
// Each parser.Parse call creates its own IDGen, and all IDGens draw from one
// process-wide counter so identities never collide across independently
// parsed programs sharing a process (e.g. REPL lines).
type IDGen struct{}

// lastExprID is the most recent ExprID handed out by any IDGen.
var lastExprID atomic.Int64

// NewIDGen returns a fresh identity generator for use while building a tree
// of expressions.
func NewIDGen() *IDGen { return &IDGen{} }

// Next returns the next unused ExprID.
func (g *IDGen) Next() ExprID {
	return ExprID(lastExprID.Add(1))
}
