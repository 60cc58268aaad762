package parser

import (
	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/intern"
	"ori/internal/source"
	"ori/internal/token"
)

func (p *Parser) parsePrimary() ast.ExprID {
	tok := p.peek()
	switch tok.Kind.Tag {
	case token.TagIntLit:
		p.advance()
		return p.arena.AllocLiteral(ast.ExprLitInt, tok.Span, tok.Kind)
	case token.TagFloatLit:
		p.advance()
		return p.arena.AllocLiteral(ast.ExprLitFloat, tok.Span, tok.Kind)
	case token.TagCharLit:
		p.advance()
		return p.arena.AllocLiteral(ast.ExprLitChar, tok.Span, tok.Kind)
	case token.TagStringLit:
		p.advance()
		return p.arena.AllocLiteral(ast.ExprLitStr, tok.Span, tok.Kind)
	case token.TagDurationLit, token.TagSizeLit:
		p.advance()
		return p.arena.AllocLiteral(ast.ExprLitInt, tok.Span, tok.Kind)
	case token.TagKwTrue, token.TagKwFalse:
		p.advance()
		return p.arena.AllocLiteral(ast.ExprLitBool, tok.Span, tok.Kind)
	case token.TagTemplateHead, token.TagTemplateFull:
		return p.parseTemplate()
	case token.TagKwSome:
		return p.parseOptionOrResultCtor(ast.ExprOptionSome)
	case token.TagKwNone:
		p.advance()
		if p.at(token.TagLParen) {
			p.advance()
			p.expectTag(token.TagRParen, diag.UnclosedDelimiter, "expected ')'")
		}
		return p.arena.AllocOptionNone(tok.Span.Cover(p.lastSpan()))
	case token.TagKwOk:
		return p.parseOptionOrResultCtor(ast.ExprResultOk)
	case token.TagKwErr:
		return p.parseOptionOrResultCtor(ast.ExprResultErr)
	case token.TagKwIf:
		return p.parseIf()
	case token.TagKwLoop:
		return p.parseLoop()
	case token.TagKwFor:
		return p.parseFor()
	case token.TagKwMatch:
		return p.parseMatch()
	case token.TagKwLet:
		return p.parseLet()
	case token.TagKwBreak:
		return p.parseBreak()
	case token.TagKwContinue:
		p.advance()
		return p.arena.AllocContinue(tok.Span)
	case token.TagLBrace:
		return p.parseBlock()
	case token.TagLParen:
		return p.parseParenExpr()
	case token.TagKwRun:
		return p.parseSeq(ast.SeqRun)
	case token.TagKwTry:
		return p.parseSeq(ast.SeqTry)
	case token.TagIdent:
		if p.peekTagAt(1) == token.TagArrow {
			return p.parseBareLambda()
		}
		p.advance()
		name := tok.Kind.StrName()
		if p.at(token.TagLBrace) && p.structLitAllowed() {
			return p.parseStructLitBody(tok.Span, name)
		}
		return p.arena.AllocIdent(tok.Span, name)
	}

	if kind, ok := fnExpKinds[tok.Kind.Tag]; ok {
		return p.parseFnExp(kind)
	}

	p.err(diag.ExpectedExprOrLiteral, tok.Span, "expected an expression")
	p.advance()
	return p.arena.AllocLiteral(ast.ExprLitInt, tok.Span, token.Int(0))
}

func (p *Parser) parseOptionOrResultCtor(kind ast.ExprKind) ast.ExprID {
	start := p.advance().Span // Some/Ok/Err
	p.expectTag(token.TagLParen, diag.ExpectedToken, "expected '(' after constructor")
	val := p.parseExpr()
	end := p.lastSpan()
	p.expectTag(token.TagRParen, diag.UnclosedDelimiter, "expected ')'")
	span := start.Cover(end)
	switch kind {
	case ast.ExprOptionSome:
		return p.arena.AllocOptionSome(span, val)
	case ast.ExprResultOk:
		return p.arena.AllocResultOk(span, val)
	default:
		return p.arena.AllocResultErr(span, val)
	}
}

func (p *Parser) parseStructLitBody(nameSpan source.Span, name intern.Name) ast.ExprID {
	p.advance() // '{'
	var fields []ast.FieldInit
	for !p.at(token.TagRBrace) && !p.atEOF() {
		fname, ok := p.expectIdent()
		if !ok {
			break
		}
		p.expectTag(token.TagColon, diag.ExpectedToken, "expected ':' in struct literal field")
		val := p.parseExpr()
		fields = append(fields, ast.FieldInit{Name: fname, Value: val})
		if p.at(token.TagComma) {
			p.advance()
			continue
		}
		break
	}
	end := p.lastSpan()
	p.expectTag(token.TagRBrace, diag.UnclosedDelimiter, "expected '}'")
	return p.arena.AllocStructLit(nameSpan.Cover(end), name, fields)
}

// parseTemplate assembles a backtick template literal from the
// TemplateHead/Middle/Tail token sequence the lexer produces, parsing a
// full expression between each interpolation hole (see lexer.scan_template.go
// for the corresponding brace-depth-tracked scanning side).
func (p *Parser) parseTemplate() ast.ExprID {
	head := p.advance()
	startSpan := head.Span
	if head.Kind.Tag == token.TagTemplateFull {
		return p.arena.AllocTemplate(startSpan, []ast.TemplatePart{{Text: head.Kind.StrName()}})
	}
	parts := []ast.TemplatePart{{Text: head.Kind.StrName()}}
	for {
		val := p.parseExpr()
		var format intern.Name
		if p.at(token.TagFormatSpec) {
			format = p.advance().Kind.StrName()
		}
		parts[len(parts)-1].Value = val
		parts[len(parts)-1].Format = format

		if p.at(token.TagTemplateTail) {
			tail := p.advance()
			parts = append(parts, ast.TemplatePart{Text: tail.Kind.StrName()})
			return p.arena.AllocTemplate(startSpan.Cover(tail.Span), parts)
		}
		mid, ok := p.expectTag(token.TagTemplateMiddle, diag.UnclosedDelimiter, "expected continuation of template literal")
		if !ok {
			return p.arena.AllocTemplate(startSpan.Cover(p.lastSpan()), parts)
		}
		parts = append(parts, ast.TemplatePart{Text: mid.Kind.StrName()})
	}
}

// parseBareLambda parses the single-parameter, parenthesis-free lambda
// form `x -> body`.
func (p *Parser) parseBareLambda() ast.ExprID {
	nameTok := p.advance()
	name := nameTok.Kind.StrName()
	p.advance() // '->'
	body := p.parseExpr()
	span := nameTok.Span.Cover(p.arena.GetExpr(body).Span)
	return p.arena.AllocLambda(span, []ast.Param{{Name: name}}, body)
}

// looksLikeLambdaParams scans ahead from the current '(' to its matching
// ')' and reports whether '->' immediately follows - the bounded lookahead
// §4.5 calls for to disambiguate `(x, y) -> body` from a parenthesized
// tuple/grouping expression.
func (p *Parser) looksLikeLambdaParams() bool {
	depth := 0
	i := p.pos
	n := uint32(p.list.Len())
	for i < n {
		switch p.list.TagAt(i) {
		case token.TagLParen:
			depth++
		case token.TagRParen:
			depth--
			if depth == 0 {
				i++
				return i < n && p.list.TagAt(i) == token.TagArrow
			}
		case token.TagEOF:
			return false
		}
		i++
	}
	return false
}

func (p *Parser) parseParenExpr() ast.ExprID {
	if p.looksLikeLambdaParams() {
		return p.parseLambdaParenForm()
	}
	return p.parseParenGroupOrTuple()
}

func (p *Parser) parseParenGroupOrTuple() ast.ExprID {
	start := p.advance().Span // '('
	if p.at(token.TagRParen) {
		end := p.advance().Span
		span := start.Cover(end)
		if p.at(token.TagArrow) {
			p.advance()
			body := p.parseExpr()
			return p.arena.AllocLambda(span.Cover(p.arena.GetExpr(body).Span), nil, body)
		}
		return p.arena.AllocUnit(span)
	}
	var elems []ast.ExprID
	trailingComma := false
	for {
		elems = append(elems, p.parseExpr())
		if p.at(token.TagComma) {
			p.advance()
			trailingComma = true
			if p.at(token.TagRParen) {
				break
			}
			trailingComma = false
			continue
		}
		trailingComma = false
		break
	}
	end := p.lastSpan()
	p.expectTag(token.TagRParen, diag.UnclosedDelimiter, "expected ')'")
	span := start.Cover(end)
	if len(elems) == 1 && !trailingComma {
		return elems[0]
	}
	return p.arena.AllocTuple(span, elems)
}

func (p *Parser) parseLambdaParenForm() ast.ExprID {
	start := p.advance().Span // '('
	var params []ast.Param
	anyTyped := false
	for !p.at(token.TagRParen) && !p.atEOF() {
		name, ok := p.expectIdent()
		if !ok {
			break
		}
		param := ast.Param{Name: name}
		if p.at(token.TagColon) {
			p.advance()
			param.TypeAnn = p.parseTypeExpr()
			anyTyped = true
		}
		params = append(params, param)
		if p.at(token.TagComma) {
			p.advance()
			continue
		}
		break
	}
	p.expectTag(token.TagRParen, diag.InvalidLambdaForm, "expected ')' to close lambda parameters")
	p.expectTag(token.TagArrow, diag.InvalidLambdaForm, "expected '->' after lambda parameters")

	var body ast.ExprID
	if anyTyped {
		p.parseTypeExpr() // explicit return type annotation; the typer re-derives it
		p.expectTag(token.TagAssign, diag.InvalidLambdaForm, "expected '=' before typed lambda body")
		body = p.parseExpr()
	} else {
		body = p.parseExpr()
	}
	return p.arena.AllocLambda(start.Cover(p.arena.GetExpr(body).Span), params, body)
}
