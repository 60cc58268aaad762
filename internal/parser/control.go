package parser

import (
	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/token"
)

func (p *Parser) parseIf() ast.ExprID {
	start := p.advance().Span // 'if'
	cond := p.parseExprNoStruct()
	then := p.parseBlock()
	els := ast.NoExprID
	end := p.arena.GetExpr(then).Span
	if p.at(token.TagKwElse) {
		p.advance()
		if p.at(token.TagKwIf) {
			els = p.parseIf()
		} else {
			els = p.parseBlock()
		}
		end = p.arena.GetExpr(els).Span
	}
	return p.arena.AllocIf(start.Cover(end), cond, then, els)
}

func (p *Parser) parseLoop() ast.ExprID {
	start := p.advance().Span // 'loop'
	body := p.parseBlock()
	return p.arena.AllocLoop(start.Cover(p.arena.GetExpr(body).Span), body)
}

func (p *Parser) parseFor() ast.ExprID {
	start := p.advance().Span // 'for'
	pat := p.parsePattern()
	p.expectTag(token.TagKwIn, diag.ExpectedToken, "expected 'in' after for-loop pattern")
	iter := p.parseExprNoStruct()
	body := p.parseBlock()
	return p.arena.AllocFor(start.Cover(p.arena.GetExpr(body).Span), pat, iter, body)
}

func (p *Parser) parseBreak() ast.ExprID {
	start := p.advance().Span // 'break'
	value := ast.NoExprID
	if p.canStartExpr() {
		value = p.parseExpr()
	}
	span := start
	if value != ast.NoExprID {
		span = start.Cover(p.arena.GetExpr(value).Span)
	}
	return p.arena.AllocBreak(span, value)
}

// canStartExpr reports whether the current token can begin an expression,
// used to decide whether a bare `break` carries a value.
func (p *Parser) canStartExpr() bool {
	switch p.peekTag() {
	case token.TagSemicolon, token.TagRBrace, token.TagRParen, token.TagRBracket,
		token.TagComma, token.TagEOF:
		return false
	}
	return true
}

func (p *Parser) parseLet() ast.ExprID {
	start := p.advance().Span // 'let'
	name, _ := p.expectIdent()
	typeAnn := ast.NoTypeExprID
	if p.at(token.TagColon) {
		p.advance()
		typeAnn = p.parseTypeExpr()
	}
	p.expectTag(token.TagAssign, diag.ExpectedToken, "expected '=' in let binding")
	value := p.parseExpr()
	return p.arena.AllocLet(start.Cover(p.arena.GetExpr(value).Span), name, typeAnn, value)
}

func (p *Parser) parseBlock() ast.ExprID {
	start, ok := p.expectTag(token.TagLBrace, diag.ExpectedToken, "expected '{' to start a block")
	if !ok {
		return p.arena.AllocBlock(p.peek().Span, nil, ast.NoExprID)
	}
	var stmts []ast.Stmt
	result := ast.NoExprID
	for !p.at(token.TagRBrace) && !p.atEOF() {
		before := p.pos
		e := p.parseExpr()
		switch {
		case p.at(token.TagSemicolon):
			p.advance()
			stmts = append(stmts, ast.Stmt{Expr: e})
		case p.at(token.TagRBrace):
			result = e
		default:
			stmts = append(stmts, ast.Stmt{Expr: e})
		}
		if p.pos == before {
			p.advance()
		}
	}
	end := p.peek().Span
	p.expectTag(token.TagRBrace, diag.UnclosedDelimiter, "expected '}'")
	return p.arena.AllocBlock(start.Span.Cover(end), stmts, result)
}

func (p *Parser) parseMatch() ast.ExprID {
	start := p.advance().Span // 'match'
	scrutinee := p.parseExprNoStruct()
	p.expectTag(token.TagLBrace, diag.ExpectedToken, "expected '{' to start match arms")
	var arms []ast.Arm
	for !p.at(token.TagRBrace) && !p.atEOF() {
		before := p.pos
		pat := p.parsePattern()
		guard := ast.NoExprID
		if p.at(token.TagKwIf) {
			p.advance()
			guard = p.parseExprNoStruct()
		}
		p.expectTag(token.TagFatArrow, diag.ExpectedToken, "expected '=>' in match arm")
		body := p.parseExpr()
		arms = append(arms, ast.Arm{Pattern: pat, Guard: guard, Body: body})
		if p.at(token.TagComma) {
			p.advance()
		}
		if p.pos == before {
			p.advance()
		}
	}
	end := p.lastSpan()
	p.expectTag(token.TagRBrace, diag.UnclosedDelimiter, "expected '}'")
	return p.arena.AllocMatchExpr(start.Cover(end), scrutinee, arms)
}
