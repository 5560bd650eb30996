// Package resolver implements the static pre-pass that determines, for
// every variable use, how many enclosing lexical scopes to climb to reach
// its declaration (spec.md §4.2).
package resolver

import (
	"fmt"

	"github.com/dolthub/swiss"
	"github.com/loxrun/loxrun/lang/ast"
	"github.com/loxrun/loxrun/lang/token"
)

// functionKind tracks what kind of function body is currently being walked,
// used to validate `return` placement (spec.md §4.2).
type functionKind int

const (
	kindNone functionKind = iota
	kindFunction
)

// scope is a single lexical scope: a map from identifier to whether its
// declaration has finished (spec.md §4.2's "declare"/"define").
type scope map[string]bool

// Table is the resolver's side table: for every Variable or Assign
// expression that resolves to a local scope, it records the number of
// enclosing scopes to climb to reach the declaration (spec.md §3's
// invariant I1). Backed by swiss.Map the way the teacher's runtime Map type
// is, since this is a write-once-at-resolve-time, read-many-times-at-eval
// table indexed by an opaque integer key.
type Table struct {
	distances *swiss.Map[ast.ExprID, int]
}

func newTable() *Table {
	return &Table{distances: swiss.NewMap[ast.ExprID, int](0)}
}

// Distance returns the recorded scope distance for expr, and whether one was
// recorded at all. No entry means "treat as global" (spec.md §3).
func (t *Table) Distance(id ast.ExprID) (int, bool) {
	if t == nil || t.distances == nil {
		return 0, false
	}
	return t.distances.Get(id)
}

func (t *Table) set(id ast.ExprID, distance int) {
	t.distances.Put(id, distance)
}

type resolver struct {
	scopes  []scope
	current functionKind
	table   *Table
	errors  token.ErrorList
	file    string
}

// Resolve statically walks program and returns the resolved side table plus
// any diagnostics. Resolve errors are logged but never abort the walk
// (spec.md §4.2, §7): the returned error, if non-nil, is a token.ErrorList,
// but the Table is always usable.
func Resolve(filename string, program []ast.Stmt) (*Table, error) {
	r := &resolver{table: newTable(), file: filename}
	r.resolveStmts(program)
	r.errors.Sort()
	return r.table, r.errors.Err()
}

func (r *resolver) errorf(pos token.Pos, format string, args ...any) {
	r.errors.Add(token.ToPosition(r.file, pos), fmt.Sprintf(format, args...))
}

func (r *resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	top := r.scopes[len(r.scopes)-1]
	if _, ok := top[name.Lexeme]; ok {
		r.errorf(name.Pos, "already a variable with this name in this scope")
	}
	top[name.Lexeme] = false
}

func (r *resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal scans the scope stack from innermost outward; on the first
// hit it records (expr identity -> distance from innermost) and stops. No
// hit leaves no entry, meaning "global" (spec.md §4.2).
func (r *resolver) resolveLocal(id ast.ExprID, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.table.set(id, len(r.scopes)-1-i)
			return
		}
	}
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()

	case *ast.VarDecl:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.FunctionDecl:
		// declare and define the name in the *current* scope first, so the
		// function can call itself recursively (spec.md §4.2).
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, kindFunction)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)

	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *ast.ReturnStmt:
		if r.current == kindNone {
			r.errorf(s.Keyword.Pos, "can't return from top-level code")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}

	default:
		panic(fmt.Sprintf("resolver: unhandled statement type %T", s))
	}
}

func (r *resolver) resolveFunction(decl *ast.FunctionDecl, kind functionKind) {
	enclosing := r.current
	r.current = kind

	r.beginScope()
	for _, param := range decl.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(decl.Body)
	r.endScope()

	r.current = enclosing
}

func (r *resolver) resolveExpr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.errorf(e.Name.Pos, "can't read local variable in its own initializer")
			}
		}
		r.resolveLocal(e.ID(), e.Name.Lexeme)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ID(), e.Name.Lexeme)

	case *ast.LiteralExpr:
		// nothing to resolve

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.GroupingExpr:
		r.resolveExpr(e.Inner)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	default:
		panic(fmt.Sprintf("resolver: unhandled expression type %T", e))
	}
}
