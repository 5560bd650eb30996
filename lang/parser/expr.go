package parser

import (
	"github.com/loxrun/loxrun/lang/ast"
	"github.com/loxrun/loxrun/lang/token"
)

func (p *parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-associative: it parses the left side as an ordinary
// expression, then on '=' requires it to be a bare VariableExpr — the only
// bindable l-value (spec.md §4.1). Any other l-value is reported but parsing
// continues with the right-hand side so further errors can surface.
func (p *parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.prev.Pos
		value := p.assignment() // right-associative

		if v, ok := expr.(*ast.VariableExpr); ok {
			return ast.NewAssignExpr(p.gen, v.Name, value)
		}
		p.error(equals, "invalid assignment target")
		return expr
	}
	return expr
}

func (p *parser) or() ast.Expr {
	expr := p.and()
	for p.check(token.OR) {
		op := p.tok
		p.advance()
		right := p.and()
		expr = ast.NewLogicalExpr(p.gen, expr, op, right)
	}
	return expr
}

func (p *parser) and() ast.Expr {
	expr := p.equality()
	for p.check(token.AND) {
		op := p.tok
		p.advance()
		right := p.equality()
		expr = ast.NewLogicalExpr(p.gen, expr, op, right)
	}
	return expr
}

func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.check(token.BANG_EQUAL) || p.check(token.EQUAL_EQUAL) {
		op := p.tok
		p.advance()
		right := p.comparison()
		expr = ast.NewBinaryExpr(p.gen, expr, op, right)
	}
	return expr
}

func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.check(token.GREATER) || p.check(token.GREATER_EQUAL) || p.check(token.LESS) || p.check(token.LESS_EQUAL) {
		op := p.tok
		p.advance()
		right := p.term()
		expr = ast.NewBinaryExpr(p.gen, expr, op, right)
	}
	return expr
}

func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.check(token.MINUS) || p.check(token.PLUS) {
		op := p.tok
		p.advance()
		right := p.factor()
		expr = ast.NewBinaryExpr(p.gen, expr, op, right)
	}
	return expr
}

func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.check(token.SLASH) || p.check(token.STAR) {
		op := p.tok
		p.advance()
		right := p.unary()
		expr = ast.NewBinaryExpr(p.gen, expr, op, right)
	}
	return expr
}

func (p *parser) unary() ast.Expr {
	if p.check(token.BANG) || p.check(token.MINUS) {
		op := p.tok
		p.advance()
		right := p.unary()
		return ast.NewUnaryExpr(p.gen, op, right)
	}
	return p.call()
}

func (p *parser) call() ast.Expr {
	expr := p.primary()
	for p.check(token.LPAREN) {
		p.advance()
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.error(p.tok.Pos, "%s", argLimitMsg("arguments"))
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.expect(token.RPAREN, " after arguments")
	return ast.NewCallExpr(p.gen, callee, paren.Pos, args)
}

func (p *parser) primary() ast.Expr {
	tok := p.tok
	switch tok.Kind {
	case token.FALSE:
		p.advance()
		return ast.NewLiteralExpr(p.gen, token.FALSE, tok.Pos, "false", false)
	case token.TRUE:
		p.advance()
		return ast.NewLiteralExpr(p.gen, token.TRUE, tok.Pos, "true", true)
	case token.NIL:
		p.advance()
		return ast.NewLiteralExpr(p.gen, token.NIL, tok.Pos, "nil", nil)
	case token.NUMBER, token.STRING:
		p.advance()
		return ast.NewLiteralExpr(p.gen, tok.Kind, tok.Pos, tok.Lexeme, tok.Literal)
	case token.IDENT:
		p.advance()
		return ast.NewVariableExpr(p.gen, tok)
	case token.LPAREN:
		p.advance()
		inner := p.expression()
		rparen := p.expect(token.RPAREN, " after expression")
		return ast.NewGroupingExpr(p.gen, tok.Pos, inner, rparen.Pos)
	default:
		p.error(tok.Pos, "expected expression, got %s", p.describeCurrent())
		panic(errPanicMode)
	}
}
