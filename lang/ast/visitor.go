package ast

// Visitor is implemented by callers that want to walk the tree without
// writing a type switch at every call site (teacher's lang/ast.Visitor).
type Visitor interface {
	VisitExpr(Expr) Visitor
	VisitStmt(Stmt) Visitor
}

// Walk traverses stmts/exprs depth-first, calling v.VisitStmt/v.VisitExpr for
// every node. If a Visit method returns nil, Walk does not descend into that
// node's children.
func Walk(v Visitor, n Node) {
	switch n := n.(type) {
	case Expr:
		walkExpr(v, n)
	case Stmt:
		walkStmt(v, n)
	}
}

func walkExpr(v Visitor, e Expr) {
	w := v.VisitExpr(e)
	if w == nil {
		return
	}
	switch e := e.(type) {
	case *LiteralExpr, *VariableExpr:
		// leaves
	case *AssignExpr:
		walkExpr(w, e.Value)
	case *UnaryExpr:
		walkExpr(w, e.Right)
	case *BinaryExpr:
		walkExpr(w, e.Left)
		walkExpr(w, e.Right)
	case *LogicalExpr:
		walkExpr(w, e.Left)
		walkExpr(w, e.Right)
	case *GroupingExpr:
		walkExpr(w, e.Inner)
	case *CallExpr:
		walkExpr(w, e.Callee)
		for _, a := range e.Args {
			walkExpr(w, a)
		}
	}
}

func walkStmt(v Visitor, s Stmt) {
	w := v.VisitStmt(s)
	if w == nil {
		return
	}
	switch s := s.(type) {
	case *ExpressionStmt:
		walkExpr(w, s.Expr)
	case *PrintStmt:
		walkExpr(w, s.Expr)
	case *VarDecl:
		if s.Initializer != nil {
			walkExpr(w, s.Initializer)
		}
	case *Block:
		for _, st := range s.Stmts {
			walkStmt(w, st)
		}
	case *IfStmt:
		walkExpr(w, s.Cond)
		walkStmt(w, s.Then)
		if s.Else != nil {
			walkStmt(w, s.Else)
		}
	case *WhileStmt:
		walkExpr(w, s.Cond)
		walkStmt(w, s.Body)
	case *FunctionDecl:
		for _, st := range s.Body {
			walkStmt(w, st)
		}
	case *ReturnStmt:
		if s.Value != nil {
			walkExpr(w, s.Value)
		}
	}
}
