package interp

import (
	"fmt"

	"github.com/loxrun/loxrun/lang/ast"
)

// Function is a function value created by executing a FunctionDecl. Its
// closure is the environment that was current at the point the declaration
// executed, not the environment active at call time (spec.md §3 invariant
// I3, P2). Decl is held by reference, never copied, since FunctionDecl
// bodies are immutable after parsing (spec.md §9 "AST cloning").
type Function struct {
	Decl    *ast.FunctionDecl
	Closure *Environment
}

var _ Callable = (*Function)(nil)

func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.Decl.Name.Lexeme) }
func (f *Function) Type() string   { return "function" }
func (f *Function) Arity() int     { return len(f.Decl.Params) }
func (f *Function) Name() string   { return f.Decl.Name.Lexeme }

// NativeFunction is a built-in callable installed directly into globals at
// interpreter construction (spec.md §4.3 "Native-function surface").
type NativeFunction struct {
	FnName  string
	FnArity int
	Fn      func(it *Interpreter, args []Value) (Value, error)
}

var _ Callable = (*NativeFunction)(nil)

func (n *NativeFunction) String() string { return fmt.Sprintf("<native fn %s>", n.FnName) }
func (n *NativeFunction) Type() string   { return "native function" }
func (n *NativeFunction) Arity() int     { return n.FnArity }
func (n *NativeFunction) Name() string   { return n.FnName }
