// Package parser implements the recursive-descent, Pratt-precedence parser
// that turns a token stream into a list of statements (spec.md §4.1).
package parser

import (
	"fmt"

	"github.com/loxrun/loxrun/lang/ast"
	"github.com/loxrun/loxrun/lang/scanner"
	"github.com/loxrun/loxrun/lang/token"
)

// errPanicMode is thrown by expect (and by primary on a token that cannot
// start an expression) to unwind to the nearest
// declaration-level recover, where the parser resynchronizes and resumes
// (spec.md §4.1 "Error recovery").
var errPanicMode = panicMode{}

type panicMode struct{}

func (panicMode) Error() string { return "parse error (panic mode)" }

// parser holds all state for a single parse.
type parser struct {
	filename string
	scanner  *scanner.Scanner
	errors   token.ErrorList
	gen      *ast.IDGen

	tok  token.Token // current token
	prev token.Token // token consumed by the most recent advance
}

// Parse tokenizes and parses src, returning the best-effort list of
// top-level statements and any accumulated diagnostics. The error, if
// non-nil, is a token.ErrorList; parsing still returns whatever statements
// it managed to recover (spec.md §4.1 "Failure semantics").
//
// An empty source (no tokens but EOF) parses to an empty, error-free program.
func Parse(filename string, src []byte) ([]ast.Stmt, error) {
	p := &parser{
		filename: filename,
		gen:      ast.NewIDGen(),
	}
	// route scanner errors into the parser's own error list so a single
	// ErrorList captures both scan and parse diagnostics, sorted together.
	p.scanner = scanner.New(filename, src, &p.errors)
	p.advance()

	var stmts []ast.Stmt
	for p.tok.Kind != token.EOF {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.errors.Sort()
	return stmts, p.errors.Err()
}

func (p *parser) advance() {
	p.prev = p.tok
	p.tok = p.scanner.Scan()
}

// check reports whether the current token has kind k, without consuming it.
func (p *parser) check(k token.Kind) bool { return p.tok.Kind == k }

// match consumes and returns true if the current token is one of kinds.
func (p *parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has kind k, otherwise records a
// diagnostic and unwinds via panic(errPanicMode) to the nearest recover
// point (spec.md §4.1).
func (p *parser) expect(k token.Kind, context string) token.Token {
	if p.check(k) {
		tok := p.tok
		p.advance()
		return tok
	}
	p.errorExpected(k, context)
	panic(errPanicMode)
}

func (p *parser) error(pos token.Pos, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.errors.Add(token.ToPosition(p.filename, pos), msg)
}

func (p *parser) errorExpected(k token.Kind, context string) {
	where := p.describeCurrent()
	msg := fmt.Sprintf("expected %s%s, got %s", k.GoString(), context, where)
	p.error(p.tok.Pos, "%s", msg)
}

func (p *parser) describeCurrent() string {
	if p.tok.Kind == token.EOF {
		return "end of file"
	}
	return "'" + p.tok.Lexeme + "'"
}

// synchronize discards tokens until it finds a probable statement boundary,
// per spec.md §4.1's panic-mode recovery rule.
func (p *parser) synchronize() {
	for p.tok.Kind != token.EOF {
		if p.prev.Kind == token.SEMICOLON {
			return
		}
		switch p.tok.Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

const maxArgs = 255

func argLimitMsg(what string) string {
	return fmt.Sprintf("can't have more than %d %s", maxArgs, what)
}
