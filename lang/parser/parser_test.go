package parser_test

import (
	"testing"

	"github.com/loxrun/loxrun/lang/ast"
	"github.com/loxrun/loxrun/lang/parser"
	"github.com/loxrun/loxrun/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidPrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int // number of top-level statements
	}{
		{"empty", "", 0},
		{"print", `print 1 + 2;`, 1},
		{"var decl", `var a = 1;`, 1},
		{"block", `{ var a = 1; print a; }`, 1},
		{"if else", `if (true) print 1; else print 2;`, 1},
		{"while", `while (false) print 1;`, 1},
		{"for desugars to block+while", `for (var i = 0; i < 3; i = i + 1) print i;`, 1},
		{"function decl", `fun f(a, b) { return a + b; }`, 1},
		{"call", `f(1, 2);`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := parser.Parse("t.lox", []byte(tt.src))
			require.NoError(t, err)
			assert.Len(t, stmts, tt.want)
		})
	}
}

func TestForDesugarsToBlockWhile(t *testing.T) {
	stmts, err := parser.Parse("t.lox", []byte(`for (var i = 0; i < 3; i = i + 1) print i;`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	block, ok := stmts[0].(*ast.Block)
	require.True(t, ok, "for-loop must desugar to a Block")
	require.Len(t, block.Stmts, 2)

	_, ok = block.Stmts[0].(*ast.VarDecl)
	assert.True(t, ok, "first statement must be the loop-variable declaration")

	while, ok := block.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok, "second statement must be the desugared while")

	body, ok := while.Body.(*ast.Block)
	require.True(t, ok, "while body must be a block containing the original body plus the increment")
	require.Len(t, body.Stmts, 2)
}

func TestForWithoutClausesDesugars(t *testing.T) {
	stmts, err := parser.Parse("t.lox", []byte(`for (;;) print 1;`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	while, ok := stmts[0].(*ast.WhileStmt)
	require.True(t, ok, "bare for with no init must desugar directly to a while, no wrapping block")

	lit, ok := while.Cond.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestInvalidAssignmentTargetReportsButContinues(t *testing.T) {
	stmts, err := parser.Parse("t.lox", []byte(`1 + 2 = 3; print "after";`))
	require.Error(t, err)
	// parsing still recovers and returns both statements' worth of work product
	require.Len(t, stmts, 2)
}

func TestMultipleErrorsRecovered(t *testing.T) {
	_, err := parser.Parse("t.lox", []byte(`
var = 1;
var b = ;
print b;
`))
	require.Error(t, err)
	el, ok := err.(token.ErrorList)
	require.True(t, ok)
	assert.Len(t, el, 2)
}

func TestDistinctExpressionsHaveDistinctIdentities(t *testing.T) {
	stmts, err := parser.Parse("t.lox", []byte(`var a = 1; a = a + 1;`))
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	assign := stmts[1].(*ast.ExpressionStmt).Expr.(*ast.AssignExpr)
	bin := assign.Value.(*ast.BinaryExpr)
	varExpr := bin.Left.(*ast.VariableExpr)

	assert.NotEqual(t, assign.ID(), varExpr.ID(), "distinct expression nodes must have distinct identities")
}
