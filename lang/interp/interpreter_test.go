package interp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxrun/loxrun/lang/interp"
	"github.com/loxrun/loxrun/lang/parser"
	"github.com/loxrun/loxrun/lang/resolver"
)

func run(t *testing.T, src string) string {
	t.Helper()
	stmts, err := parser.Parse("test.lox", []byte(src))
	require.NoError(t, err)
	table, err := resolver.Resolve("test.lox", stmts)
	require.NoError(t, err)
	var out bytes.Buffer
	it := interp.New(&out, "test.lox", table, func() float64 { return 0 })
	require.NoError(t, it.Interpret(stmts))
	return out.String()
}

func TestArithmeticAndPrint(t *testing.T) {
	got := run(t, `print 1 + 2 * 3;`)
	assert.Equal(t, "7\n", got)
}

func TestStringConcatenation(t *testing.T) {
	got := run(t, `print "hello, " + "world";`)
	assert.Equal(t, "hello, world\n", got)
}

func TestBlockShadowing(t *testing.T) {
	src := `
var a = "outer";
{
  var a = "inner";
  print a;
}
print a;
`
	assert.Equal(t, "inner\nouter\n", run(t, src))
}

func TestClosureCapturesDeclarationEnvironment(t *testing.T) {
	src := `
fun makeCounter() {
  var i = 0;
  fun inc() {
    i = i + 1;
    print i;
  }
  return inc;
}
var counter = makeCounter();
counter();
counter();
`
	assert.Equal(t, "1\n2\n", run(t, src))
}

func TestForLoopDesugaring(t *testing.T) {
	src := `
var total = 0;
for (var i = 0; i < 5; i = i + 1) {
  total = total + i;
}
print total;
`
	assert.Equal(t, "10\n", run(t, src))
}

func TestNestedEarlyReturn(t *testing.T) {
	src := `
fun find(n) {
  var i = 0;
  while (i < 10) {
    if (i == n) {
      return i;
    }
    i = i + 1;
  }
  return -1;
}
print find(3);
print find(99);
`
	assert.Equal(t, "3\n-1\n", run(t, src))
}

func TestLogicalOperatorsReturnOperandNotBoolean(t *testing.T) {
	got := run(t, `print nil or "fallback"; print 1 and 2;`)
	assert.Equal(t, "fallback\n2\n", got)
}

func TestIntegralNumberDisplayStripsTrailingZero(t *testing.T) {
	got := run(t, `print 6 / 2;`)
	assert.Equal(t, "3\n", got)
}

func TestUninitializedVariableReadIsRuntimeError(t *testing.T) {
	stmts, err := parser.Parse("test.lox", []byte(`var a; print a + 1;`))
	require.NoError(t, err)
	table, err := resolver.Resolve("test.lox", stmts)
	require.NoError(t, err)
	var out bytes.Buffer
	it := interp.New(&out, "test.lox", table, func() float64 { return 0 })
	err = it.Interpret(stmts)
	require.Error(t, err)
}

func TestClockNativeFunctionArity(t *testing.T) {
	stmts, err := parser.Parse("test.lox", []byte(`print clock();`))
	require.NoError(t, err)
	table, err := resolver.Resolve("test.lox", stmts)
	require.NoError(t, err)
	var out bytes.Buffer
	it := interp.New(&out, "test.lox", table, func() float64 { return 42 })
	require.NoError(t, it.Interpret(stmts))
	assert.Equal(t, "42\n", out.String())
}
