package interp

import (
	"fmt"

	"github.com/loxrun/loxrun/lang/token"
)

// RuntimeError is a spec.md §7 "runtime error": a type mismatch, undefined
// or uninitialized variable read, non-callable call, or arity mismatch. It
// carries the position of the expression or statement that raised it so the
// driver can report it the way scan/parse/resolve diagnostics are reported.
type RuntimeError struct {
	Pos token.Position
	Msg string
}

func (e *RuntimeError) Error() string {
	if e.Pos.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func runtimeErrorf(filename string, pos token.Pos, format string, args ...any) *RuntimeError {
	return &RuntimeError{Pos: token.ToPosition(filename, pos), Msg: fmt.Sprintf(format, args...)}
}
