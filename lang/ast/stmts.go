package ast

import "github.com/loxrun/loxrun/lang/token"

type (
	// ExpressionStmt evaluates an expression and discards the result.
	ExpressionStmt struct {
		stmtBase
		Expr Expr
	}

	// PrintStmt evaluates an expression and writes its display form followed
	// by a newline.
	PrintStmt struct {
		stmtBase
		Keyword token.Pos
		Expr    Expr
	}

	// VarDecl introduces a new binding in the current scope, optionally
	// initialized.
	VarDecl struct {
		stmtBase
		Name        token.Token
		Initializer Expr // nil if omitted
	}

	// Block is a `{ ... }` sequence of statements, which run together in one
	// fresh environment scope (spec.md §4.3).
	Block struct {
		stmtBase
		Lbrace token.Pos
		Stmts  []Stmt
		Rbrace token.Pos
	}

	// IfStmt is `if (cond) then [else elseBranch]`.
	IfStmt struct {
		stmtBase
		Keyword    token.Pos
		Cond       Expr
		Then       Stmt
		Else       Stmt // nil if omitted
	}

	// WhileStmt is `while (cond) body`. `for` loops desugar into this node in
	// the parser (spec.md §4.1), so later passes never see a dedicated for-loop
	// node.
	WhileStmt struct {
		stmtBase
		Keyword token.Pos
		Cond    Expr
		Body    Stmt
	}

	// FunctionDecl declares a named function. Its identity is shared (not
	// copied) by every Function value created from it at runtime (spec.md §3).
	FunctionDecl struct {
		stmtBase
		Name   token.Token
		Params []token.Token
		Body   []Stmt
	}

	// ReturnStmt unwinds the enclosing call frame with Value (or nil/Nil if
	// Value is omitted).
	ReturnStmt struct {
		stmtBase
		Keyword token.Token
		Value   Expr // nil if omitted
	}
)

func (n *ExpressionStmt) String() string { return "expr stmt" }
func (n *ExpressionStmt) Span() (start, end token.Pos) { return n.Expr.Span() }

func (n *PrintStmt) String() string { return "print" }
func (n *PrintStmt) Span() (start, end token.Pos) {
	_, end = n.Expr.Span()
	return n.Keyword, end
}

func (n *VarDecl) String() string { return "var " + n.Name.Lexeme }
func (n *VarDecl) Span() (start, end token.Pos) {
	start = n.Name.Pos
	if n.Initializer != nil {
		_, end = n.Initializer.Span()
	} else {
		end = start + token.Pos(len(n.Name.Lexeme))
	}
	return start, end
}

func (n *Block) String() string { return "block" }
func (n *Block) Span() (start, end token.Pos) { return n.Lbrace, n.Rbrace + 1 }

func (n *IfStmt) String() string { return "if" }
func (n *IfStmt) Span() (start, end token.Pos) {
	start = n.Keyword
	if n.Else != nil {
		_, end = n.Else.Span()
	} else {
		_, end = n.Then.Span()
	}
	return start, end
}

func (n *WhileStmt) String() string { return "while" }
func (n *WhileStmt) Span() (start, end token.Pos) {
	_, end = n.Body.Span()
	return n.Keyword, end
}

func (n *FunctionDecl) String() string { return "fun " + n.Name.Lexeme }
func (n *FunctionDecl) Span() (start, end token.Pos) {
	start = n.Name.Pos
	if len(n.Body) > 0 {
		_, end = n.Body[len(n.Body)-1].Span()
	} else {
		end = start
	}
	return start, end
}

func (n *ReturnStmt) String() string { return "return" }
func (n *ReturnStmt) Span() (start, end token.Pos) {
	start = n.Keyword.Pos
	if n.Value != nil {
		_, end = n.Value.Span()
	} else {
		end = start + token.Pos(len(n.Keyword.Lexeme))
	}
	return start, end
}
