package resolver_test

import (
	"testing"

	"github.com/loxrun/loxrun/lang/ast"
	"github.com/loxrun/loxrun/lang/parser"
	"github.com/loxrun/loxrun/lang/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	stmts, err := parser.Parse("t.lox", []byte(src))
	require.NoError(t, err)
	return stmts
}

func TestBlockShadowingResolvesToDifferentDistances(t *testing.T) {
	// var a = "global"; { var a = "local"; print a; } print a;
	stmts := mustParse(t, `var a = "global"; { var a = "local"; print a; } print a;`)
	table, err := resolver.Resolve("t.lox", stmts)
	require.NoError(t, err)

	block := stmts[1].(*ast.Block)
	innerPrint := block.Stmts[1].(*ast.PrintStmt)
	innerVar := innerPrint.Expr.(*ast.VariableExpr)
	d, ok := table.Distance(innerVar.ID())
	require.True(t, ok)
	assert.Equal(t, 0, d, "inner print must resolve to the innermost block scope")

	outerPrint := stmts[2].(*ast.PrintStmt)
	outerVar := outerPrint.Expr.(*ast.VariableExpr)
	_, ok = table.Distance(outerVar.ID())
	assert.False(t, ok, "outer print refers to the global 'a', which has no table entry")
}

func TestSelfReferentialInitializerIsReported(t *testing.T) {
	stmts := mustParse(t, `{ var a = a; }`)
	_, err := resolver.Resolve("t.lox", stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't read local variable in its own initializer")
}

func TestReturnOutsideFunctionIsReported(t *testing.T) {
	stmts := mustParse(t, `return 1;`)
	_, err := resolver.Resolve("t.lox", stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't return from top-level code")
}

func TestDuplicateNameInSameScopeIsReported(t *testing.T) {
	stmts := mustParse(t, `{ var a = 1; var a = 2; }`)
	_, err := resolver.Resolve("t.lox", stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already a variable with this name in this scope")
}

func TestRecursiveFunctionResolvesSelfCall(t *testing.T) {
	stmts := mustParse(t, `fun f() { return f(); }`)
	_, err := resolver.Resolve("t.lox", stmts)
	require.NoError(t, err)
}

func TestClosureCapturesEnclosingLocal(t *testing.T) {
	stmts := mustParse(t, `fun make() { var i = 0; fun inc() { i = i + 1; } return inc; }`)
	table, err := resolver.Resolve("t.lox", stmts)
	require.NoError(t, err)

	outer := stmts[0].(*ast.FunctionDecl)
	inner := outer.Body[1].(*ast.FunctionDecl)
	assignStmt := inner.Body[0].(*ast.ExpressionStmt).Expr.(*ast.AssignExpr)

	d, ok := table.Distance(assignStmt.ID())
	require.True(t, ok)
	assert.Equal(t, 1, d, "assignment to 'i' from inc's body climbs one scope to make's body")
}
