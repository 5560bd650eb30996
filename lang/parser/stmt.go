package parser

import (
	"github.com/loxrun/loxrun/lang/ast"
	"github.com/loxrun/loxrun/lang/token"
)

// declaration recovers from a parse error at statement granularity: it
// catches errPanicMode, resynchronizes, and returns nil so the caller simply
// skips the bad statement (spec.md §4.1).
func (p *parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(panicMode); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch {
	case p.match(token.VAR):
		return p.varDecl()
	case p.match(token.FUN):
		return p.funDecl("function")
	default:
		return p.statement()
	}
}

func (p *parser) varDecl() ast.Stmt {
	name := p.expect(token.IDENT, " after 'var'")
	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.expression()
	}
	p.expect(token.SEMICOLON, " after variable declaration")
	return &ast.VarDecl{Name: name, Initializer: init}
}

func (p *parser) funDecl(kind string) ast.Stmt {
	name := p.expect(token.IDENT, " as "+kind+" name")
	p.expect(token.LPAREN, " after "+kind+" name")

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.error(p.tok.Pos, "%s", argLimitMsg("parameters"))
			}
			params = append(params, p.expect(token.IDENT, " as parameter name"))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN, " after parameters")
	p.expect(token.LBRACE, " before "+kind+" body")
	body := p.block()
	return &ast.FunctionDecl{Name: name, Params: params, Body: body}
}

func (p *parser) statement() ast.Stmt {
	switch {
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.LBRACE):
		lbrace := p.prev.Pos
		stmts := p.block()
		return &ast.Block{Lbrace: lbrace, Stmts: stmts, Rbrace: p.prev.Pos}
	default:
		return p.expressionStatement()
	}
}

// block parses declarations until the matching '}', which it consumes.
func (p *parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && p.tok.Kind != token.EOF {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RBRACE, " after block")
	return stmts
}

func (p *parser) ifStatement() ast.Stmt {
	keyword := p.prev.Pos
	p.expect(token.LPAREN, " after 'if'")
	cond := p.expression()
	p.expect(token.RPAREN, " after if condition")
	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.IfStmt{Keyword: keyword, Cond: cond, Then: then, Else: els}
}

func (p *parser) whileStatement() ast.Stmt {
	keyword := p.prev.Pos
	p.expect(token.LPAREN, " after 'while'")
	cond := p.expression()
	p.expect(token.RPAREN, " after while condition")
	body := p.statement()
	return &ast.WhileStmt{Keyword: keyword, Cond: cond, Body: body}
}

// forStatement desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }` in the parser, so that the
// resolver and interpreter never see a dedicated for-loop node (spec.md
// §4.1, §9).
func (p *parser) forStatement() ast.Stmt {
	keyword := p.prev.Pos
	p.expect(token.LPAREN, " after 'for'")

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		// no initializer
	case p.match(token.VAR):
		init = p.varDecl()
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.expect(token.SEMICOLON, " after loop condition")

	var incr ast.Expr
	if !p.check(token.RPAREN) {
		incr = p.expression()
	}
	rparen := p.expect(token.RPAREN, " after for clauses")

	body := p.statement()

	if incr != nil {
		body = &ast.Block{
			Lbrace: rparen.Pos,
			Stmts:  []ast.Stmt{body, &ast.ExpressionStmt{Expr: incr}},
			Rbrace: rparen.Pos,
		}
	}

	if cond == nil {
		cond = ast.NewLiteralExpr(p.gen, token.TRUE, keyword, "true", true)
	}
	loop := &ast.WhileStmt{Keyword: keyword, Cond: cond, Body: body}

	if init == nil {
		return loop
	}
	return &ast.Block{Lbrace: keyword, Stmts: []ast.Stmt{init, loop}, Rbrace: rparen.Pos}
}

func (p *parser) printStatement() ast.Stmt {
	keyword := p.prev.Pos
	val := p.expression()
	p.expect(token.SEMICOLON, " after value")
	return &ast.PrintStmt{Keyword: keyword, Expr: val}
}

func (p *parser) returnStatement() ast.Stmt {
	keyword := p.prev
	var val ast.Expr
	if !p.check(token.SEMICOLON) {
		val = p.expression()
	}
	p.expect(token.SEMICOLON, " after return value")
	return &ast.ReturnStmt{Keyword: keyword, Value: val}
}

func (p *parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.expect(token.SEMICOLON, " after expression")
	return &ast.ExpressionStmt{Expr: expr}
}
