package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer dumps a parsed program as an indented tree, the way the teacher's
// `parse` and `resolve` CLI sub-commands render their ASTs.
type Printer struct {
	Output io.Writer
	// Resolved, if non-nil, is consulted so Variable/Assign nodes print their
	// resolved scope distance next to the node (used by the `resolve`
	// sub-command).
	Resolved func(id ExprID) (distance int, ok bool)
}

// Print writes the tree for every top-level statement in program.
func (p *Printer) Print(program []Stmt) error {
	pw := &printWalk{p: p}
	for _, s := range program {
		if err := pw.printStmt(s, 0); err != nil {
			return err
		}
	}
	return nil
}

type printWalk struct{ p *Printer }

func (pw *printWalk) line(depth int, format string, args ...any) error {
	_, err := fmt.Fprintf(pw.p.Output, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
	return err
}

func (pw *printWalk) printStmt(s Stmt, depth int) error {
	switch s := s.(type) {
	case *ExpressionStmt:
		if err := pw.line(depth, "%s", s); err != nil {
			return err
		}
		return pw.printExpr(s.Expr, depth+1)
	case *PrintStmt:
		if err := pw.line(depth, "%s", s); err != nil {
			return err
		}
		return pw.printExpr(s.Expr, depth+1)
	case *VarDecl:
		if err := pw.line(depth, "%s", s); err != nil {
			return err
		}
		if s.Initializer != nil {
			return pw.printExpr(s.Initializer, depth+1)
		}
		return nil
	case *Block:
		if err := pw.line(depth, "%s", s); err != nil {
			return err
		}
		for _, st := range s.Stmts {
			if err := pw.printStmt(st, depth+1); err != nil {
				return err
			}
		}
		return nil
	case *IfStmt:
		if err := pw.line(depth, "%s", s); err != nil {
			return err
		}
		if err := pw.printExpr(s.Cond, depth+1); err != nil {
			return err
		}
		if err := pw.printStmt(s.Then, depth+1); err != nil {
			return err
		}
		if s.Else != nil {
			return pw.printStmt(s.Else, depth+1)
		}
		return nil
	case *WhileStmt:
		if err := pw.line(depth, "%s", s); err != nil {
			return err
		}
		if err := pw.printExpr(s.Cond, depth+1); err != nil {
			return err
		}
		return pw.printStmt(s.Body, depth+1)
	case *FunctionDecl:
		params := make([]string, len(s.Params))
		for i, p := range s.Params {
			params[i] = p.Lexeme
		}
		if err := pw.line(depth, "%s(%s)", s, strings.Join(params, ", ")); err != nil {
			return err
		}
		for _, st := range s.Body {
			if err := pw.printStmt(st, depth+1); err != nil {
				return err
			}
		}
		return nil
	case *ReturnStmt:
		if err := pw.line(depth, "%s", s); err != nil {
			return err
		}
		if s.Value != nil {
			return pw.printExpr(s.Value, depth+1)
		}
		return nil
	default:
		return pw.line(depth, "<unknown stmt %T>", s)
	}
}

func (pw *printWalk) printExpr(e Expr, depth int) error {
	suffix := ""
	if pw.p.Resolved != nil {
		if d, ok := pw.p.Resolved(e.ID()); ok {
			suffix = fmt.Sprintf(" @%d", d)
		} else if isNameExpr(e) {
			suffix = " @global"
		}
	}
	switch e := e.(type) {
	case *LiteralExpr, *VariableExpr:
		return pw.line(depth, "%s%s", e, suffix)
	case *AssignExpr:
		if err := pw.line(depth, "%s%s", e, suffix); err != nil {
			return err
		}
		return pw.printExpr(e.Value, depth+1)
	case *UnaryExpr:
		if err := pw.line(depth, "%s", e); err != nil {
			return err
		}
		return pw.printExpr(e.Right, depth+1)
	case *BinaryExpr:
		if err := pw.line(depth, "%s", e); err != nil {
			return err
		}
		if err := pw.printExpr(e.Left, depth+1); err != nil {
			return err
		}
		return pw.printExpr(e.Right, depth+1)
	case *LogicalExpr:
		if err := pw.line(depth, "%s", e); err != nil {
			return err
		}
		if err := pw.printExpr(e.Left, depth+1); err != nil {
			return err
		}
		return pw.printExpr(e.Right, depth+1)
	case *GroupingExpr:
		if err := pw.line(depth, "%s", e); err != nil {
			return err
		}
		return pw.printExpr(e.Inner, depth+1)
	case *CallExpr:
		if err := pw.line(depth, "%s", e); err != nil {
			return err
		}
		if err := pw.printExpr(e.Callee, depth+1); err != nil {
			return err
		}
		for _, a := range e.Args {
			if err := pw.printExpr(a, depth+1); err != nil {
				return err
			}
		}
		return nil
	default:
		return pw.line(depth, "<unknown expr %T>", e)
	}
}

func isNameExpr(e Expr) bool {
	switch e.(type) {
	case *VariableExpr, *AssignExpr:
		return true
	default:
		return false
	}
}
