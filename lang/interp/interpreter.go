// Package interp implements the tree-walking evaluator: statement
// execution, expression evaluation, the environment chain, closure capture
// and non-local return unwinding (spec.md §4.3).
//
// Grounded on the teacher's lang/machine package for the shape of its
// runtime Value hierarchy, call-frame bookkeeping (frame.go) and built-in
// surface (universe.go) — adapted from a bytecode VM to a tree-walker, since
// that is what spec.md §4.3 specifies.
package interp

import (
	"fmt"
	"io"

	"github.com/loxrun/loxrun/lang/ast"
	"github.com/loxrun/loxrun/lang/resolver"
	"github.com/loxrun/loxrun/lang/token"
)

// Interpreter executes a resolved program. It maintains the globals
// environment, the current environment, the resolver's side table and the
// single pending-return slot used for spec.md §4.3's non-local return
// unwinding.
type Interpreter struct {
	Globals  *Environment
	env      *Environment
	table    *resolver.Table
	out      io.Writer
	filename string

	// pendingReturn is nil while no `return` is unwinding the current call
	// frame. Set by executing a ReturnStmt; read and cleared by the call
	// frame that owns it (spec.md §4.3 "Return unwinding").
	pendingReturn *Value

	// Clock backs the `clock()` native function; overridable for tests.
	Clock func() float64
}

// New constructs an Interpreter with the native-function surface installed
// in a fresh globals environment (spec.md §3 invariant I4).
func New(out io.Writer, filename string, table *resolver.Table, clock func() float64) *Interpreter {
	globals := NewEnvironment()
	it := &Interpreter{Globals: globals, env: globals, table: table, out: out, filename: filename, Clock: clock}
	installUniverse(globals, clock)
	return it
}

// Interpret executes stmts in order, stopping and propagating the first
// runtime error (spec.md §4.3 "interpret(stmts)").
func (it *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := it.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

// SetTable swaps the resolver side table consulted by variable lookups and
// assignments. The REPL resolves each line independently (a fresh Table per
// line) against one long-lived Interpreter, so it calls this before
// interpreting each line's statements.
func (it *Interpreter) SetTable(table *resolver.Table) {
	it.table = table
}

func (it *Interpreter) runtimeErrorf(pos token.Pos, format string, args ...any) *RuntimeError {
	return runtimeErrorf(it.filename, pos, format, args...)
}

func (it *Interpreter) execStmt(s ast.Stmt) error {
	if it.pendingReturn != nil {
		// A return is unwinding the current call frame; every statement
		// dispatch becomes a no-op until the call frame clears the slot
		// (spec.md §4.3 "Return unwinding").
		return nil
	}

	switch s := s.(type) {
	case *ast.ExpressionStmt:
		_, err := it.evalExpr(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := it.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.out, v.String())
		return nil

	case *ast.VarDecl:
		if s.Initializer == nil {
			it.env.DefineUninitialized(s.Name.Lexeme)
			return nil
		}
		v, err := it.evalExpr(s.Initializer)
		if err != nil {
			return err
		}
		it.env.Define(s.Name.Lexeme, v)
		return nil

	case *ast.Block:
		return it.execBlock(s.Stmts, NewChildEnvironment(it.env))

	case *ast.IfStmt:
		cond, err := it.evalExpr(s.Cond)
		if err != nil {
			return err
		}
		if Truthy(cond) {
			return it.execStmt(s.Then)
		}
		if s.Else != nil {
			return it.execStmt(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := it.evalExpr(s.Cond)
			if err != nil {
				return err
			}
			if !Truthy(cond) {
				return nil
			}
			if err := it.execStmt(s.Body); err != nil {
				return err
			}
			if it.pendingReturn != nil {
				return nil
			}
		}

	case *ast.FunctionDecl:
		fn := &Function{Decl: s, Closure: it.env}
		it.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		val := Value(Nil)
		if s.Value != nil {
			v, err := it.evalExpr(s.Value)
			if err != nil {
				return err
			}
			val = v
		}
		it.pendingReturn = &val
		return nil

	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", s))
	}
}

// execBlock runs stmts under env, restoring the previous current-environment
// reference on every exit path — success, error, or return-unwind — via a
// scoped-acquisition pattern rather than ad hoc epilogues (spec.md §5
// "Resource cleanup").
func (it *Interpreter) execBlock(stmts []ast.Stmt, env *Environment) (err error) {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, s := range stmts {
		if it.pendingReturn != nil {
			return nil
		}
		if err := it.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) evalExpr(e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		return literalValue(e), nil

	case *ast.VariableExpr:
		return it.lookupVariable(e.ID(), e.Name)

	case *ast.AssignExpr:
		v, err := it.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if err := it.assignVariable(e.ID(), e.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.GroupingExpr:
		return it.evalExpr(e.Inner)

	case *ast.UnaryExpr:
		return it.evalUnary(e)

	case *ast.BinaryExpr:
		return it.evalBinary(e)

	case *ast.LogicalExpr:
		return it.evalLogical(e)

	case *ast.CallExpr:
		return it.evalCall(e)

	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", e))
	}
}

func literalValue(e *ast.LiteralExpr) Value {
	switch e.Kind {
	case token.NUMBER:
		return Number(e.Value.(float64))
	case token.STRING:
		return String(e.Value.(string))
	case token.TRUE:
		return Boolean(true)
	case token.FALSE:
		return Boolean(false)
	default:
		return Nil
	}
}

func (it *Interpreter) lookupVariable(id ast.ExprID, name token.Token) (Value, error) {
	if distance, ok := it.table.Distance(id); ok {
		v, uninit, found := it.env.GetAt(distance, name.Lexeme)
		return it.finishLookup(name, v, uninit, found)
	}
	v, uninit, found := it.Globals.Get(name.Lexeme)
	return it.finishLookup(name, v, uninit, found)
}

func (it *Interpreter) finishLookup(name token.Token, v Value, uninitialized, found bool) (Value, error) {
	if !found {
		return nil, it.runtimeErrorf(name.Pos, "undefined variable '%s'", name.Lexeme)
	}
	if uninitialized {
		return nil, it.runtimeErrorf(name.Pos, "variable '%s' used before initialization", name.Lexeme)
	}
	return v, nil
}

func (it *Interpreter) assignVariable(id ast.ExprID, name token.Token, v Value) error {
	if distance, ok := it.table.Distance(id); ok {
		if it.env.AssignAt(distance, name.Lexeme, v) {
			return nil
		}
		return it.runtimeErrorf(name.Pos, "undefined variable '%s'", name.Lexeme)
	}
	if it.Globals.Assign(name.Lexeme, v) {
		return nil
	}
	return it.runtimeErrorf(name.Pos, "undefined variable '%s'", name.Lexeme)
}

func (it *Interpreter) evalUnary(e *ast.UnaryExpr) (Value, error) {
	right, err := it.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.MINUS:
		n, ok := right.(Number)
		if !ok {
			return nil, it.runtimeErrorf(e.Op.Pos, "operand must be a number")
		}
		return -n, nil
	case token.BANG:
		return Boolean(!Truthy(right)), nil
	default:
		panic(fmt.Sprintf("interp: unhandled unary operator %v", e.Op.Kind))
	}
}

func (it *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := it.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.PLUS:
		if ln, ok := left.(Number); ok {
			if rn, ok := right.(Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(String); ok {
			if rs, ok := right.(String); ok {
				return ls + rs, nil
			}
		}
		return nil, it.runtimeErrorf(e.Op.Pos, "operands must be two numbers or two strings")

	case token.MINUS, token.STAR, token.SLASH:
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if !lok || !rok {
			return nil, it.runtimeErrorf(e.Op.Pos, "operand must be a number")
		}
		switch e.Op.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		default:
			return ln / rn, nil // IEEE-754 Inf/NaN on division by zero, no explicit check
		}

	case token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if !lok || !rok {
			return nil, it.runtimeErrorf(e.Op.Pos, "operand must be a number")
		}
		switch e.Op.Kind {
		case token.GREATER:
			return Boolean(ln > rn), nil
		case token.GREATER_EQUAL:
			return Boolean(ln >= rn), nil
		case token.LESS:
			return Boolean(ln < rn), nil
		default:
			return Boolean(ln <= rn), nil
		}

	case token.EQUAL_EQUAL:
		return Boolean(Equal(left, right)), nil
	case token.BANG_EQUAL:
		return Boolean(!Equal(left, right)), nil

	default:
		panic(fmt.Sprintf("interp: unhandled binary operator %v", e.Op.Kind))
	}
}

// evalLogical short-circuits: `or` evaluates and returns its right operand
// only if the left is falsy, `and` only if the left is truthy. Either way,
// the result is the deciding operand itself, not coerced to Boolean
// (spec.md §4.3, P4).
func (it *Interpreter) evalLogical(e *ast.LogicalExpr) (Value, error) {
	left, err := it.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.OR {
		if Truthy(left) {
			return left, nil
		}
	} else {
		if !Truthy(left) {
			return left, nil
		}
	}
	return it.evalExpr(e.Right)
}

func (it *Interpreter) evalCall(e *ast.CallExpr) (Value, error) {
	callee, err := it.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := it.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, it.runtimeErrorf(e.Paren, "can only call functions and classes")
	}
	if len(args) != callable.Arity() {
		return nil, it.runtimeErrorf(e.Paren, "expected %d arguments but got %d", callable.Arity(), len(args))
	}

	switch fn := callable.(type) {
	case *Function:
		return it.callFunction(fn, args)
	case *NativeFunction:
		return fn.Fn(it, args)
	default:
		panic(fmt.Sprintf("interp: unhandled callable type %T", callable))
	}
}

// callFunction installs a fresh call frame: a new environment enclosing the
// function's closure (not the caller's environment, per spec.md §3
// invariant I3), parameters bound to the evaluated arguments, and a fresh
// pending-return slot that is consumed and cleared before control returns
// to the caller (spec.md §4.3 "Function call dispatch").
func (it *Interpreter) callFunction(fn *Function, args []Value) (Value, error) {
	callEnv := NewChildEnvironment(fn.Closure)
	for i, param := range fn.Decl.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	savedReturn := it.pendingReturn
	it.pendingReturn = nil

	err := it.execBlock(fn.Decl.Body, callEnv)

	result := Value(Nil)
	if it.pendingReturn != nil {
		result = *it.pendingReturn
	}
	it.pendingReturn = savedReturn

	if err != nil {
		return nil, err
	}
	return result, nil
}
