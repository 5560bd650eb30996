package ast

import (
	"fmt"

	"github.com/loxrun/loxrun/lang/token"
)

type (
	// LiteralExpr is a number, string, true, false or nil literal.
	LiteralExpr struct {
		exprBase
		Kind  token.Kind // NUMBER, STRING, TRUE, FALSE or NIL
		Pos   token.Pos
		Raw   string
		Value any // float64 | string | bool | nil
	}

	// VariableExpr is a bare identifier used as an expression.
	VariableExpr struct {
		exprBase
		Name token.Token
	}

	// AssignExpr is `name = value`.
	AssignExpr struct {
		exprBase
		Name  token.Token
		Value Expr
	}

	// UnaryExpr is a prefix operator applied to a single operand.
	UnaryExpr struct {
		exprBase
		Op    token.Token // BANG or MINUS
		Right Expr
	}

	// BinaryExpr is an infix arithmetic, comparison or equality expression.
	BinaryExpr struct {
		exprBase
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// LogicalExpr is `and`/`or`, kept distinct from BinaryExpr because it
	// short-circuits (spec.md §4.3).
	LogicalExpr struct {
		exprBase
		Left  Expr
		Op    token.Token // AND or OR
		Right Expr
	}

	// GroupingExpr is a parenthesized expression.
	GroupingExpr struct {
		exprBase
		Lparen token.Pos
		Inner  Expr
		Rparen token.Pos
	}

	// CallExpr is a function call `callee(args...)`.
	CallExpr struct {
		exprBase
		Callee Expr
		Paren  token.Pos // position of the closing ')', for error reporting
		Args   []Expr
	}
)

// NewLiteralExpr constructs a LiteralExpr with a freshly allocated identity.
func NewLiteralExpr(gen *IDGen, kind token.Kind, pos token.Pos, raw string, value any) *LiteralExpr {
	return &LiteralExpr{exprBase: exprBase{id: gen.Next()}, Kind: kind, Pos: pos, Raw: raw, Value: value}
}

// NewVariableExpr constructs a VariableExpr with a freshly allocated identity.
func NewVariableExpr(gen *IDGen, name token.Token) *VariableExpr {
	return &VariableExpr{exprBase: exprBase{id: gen.Next()}, Name: name}
}

// NewAssignExpr constructs an AssignExpr with a freshly allocated identity.
func NewAssignExpr(gen *IDGen, name token.Token, value Expr) *AssignExpr {
	return &AssignExpr{exprBase: exprBase{id: gen.Next()}, Name: name, Value: value}
}

// NewUnaryExpr constructs a UnaryExpr with a freshly allocated identity.
func NewUnaryExpr(gen *IDGen, op token.Token, right Expr) *UnaryExpr {
	return &UnaryExpr{exprBase: exprBase{id: gen.Next()}, Op: op, Right: right}
}

// NewBinaryExpr constructs a BinaryExpr with a freshly allocated identity.
func NewBinaryExpr(gen *IDGen, left Expr, op token.Token, right Expr) *BinaryExpr {
	return &BinaryExpr{exprBase: exprBase{id: gen.Next()}, Left: left, Op: op, Right: right}
}

// NewLogicalExpr constructs a LogicalExpr with a freshly allocated identity.
func NewLogicalExpr(gen *IDGen, left Expr, op token.Token, right Expr) *LogicalExpr {
	return &LogicalExpr{exprBase: exprBase{id: gen.Next()}, Left: left, Op: op, Right: right}
}

// NewGroupingExpr constructs a GroupingExpr with a freshly allocated identity.
func NewGroupingExpr(gen *IDGen, lparen token.Pos, inner Expr, rparen token.Pos) *GroupingExpr {
	return &GroupingExpr{exprBase: exprBase{id: gen.Next()}, Lparen: lparen, Inner: inner, Rparen: rparen}
}

// NewCallExpr constructs a CallExpr with a freshly allocated identity.
func NewCallExpr(gen *IDGen, callee Expr, paren token.Pos, args []Expr) *CallExpr {
	return &CallExpr{exprBase: exprBase{id: gen.Next()}, Callee: callee, Paren: paren, Args: args}
}

func (n *LiteralExpr) String() string { return "literal " + n.Raw }
func (n *LiteralExpr) Span() (start, end token.Pos) {
	return n.Pos, n.Pos + token.Pos(len(n.Raw))
}

func (n *VariableExpr) String() string { return "var " + n.Name.Lexeme }
func (n *VariableExpr) Span() (start, end token.Pos) {
	return n.Name.Pos, n.Name.Pos + token.Pos(len(n.Name.Lexeme))
}

func (n *AssignExpr) String() string { return "assign " + n.Name.Lexeme }
func (n *AssignExpr) Span() (start, end token.Pos) {
	start = n.Name.Pos
	_, end = n.Value.Span()
	return start, end
}

func (n *UnaryExpr) String() string { return "unary " + n.Op.Kind.GoString() }
func (n *UnaryExpr) Span() (start, end token.Pos) {
	start = n.Op.Pos
	_, end = n.Right.Span()
	return start, end
}

func (n *BinaryExpr) String() string { return "binary " + n.Op.Kind.GoString() }
func (n *BinaryExpr) Span() (start, end token.Pos) {
	start, _ = n.Left.Span()
	_, end = n.Right.Span()
	return start, end
}

func (n *LogicalExpr) String() string { return "logical " + n.Op.Kind.GoString() }
func (n *LogicalExpr) Span() (start, end token.Pos) {
	start, _ = n.Left.Span()
	_, end = n.Right.Span()
	return start, end
}

func (n *GroupingExpr) String() string { return "group" }
func (n *GroupingExpr) Span() (start, end token.Pos) {
	return n.Lparen, n.Rparen + 1
}

func (n *CallExpr) String() string {
	return fmt.Sprintf("call (%d args)", len(n.Args))
}
func (n *CallExpr) Span() (start, end token.Pos) {
	start, _ = n.Callee.Span()
	return start, n.Paren + 1
}
