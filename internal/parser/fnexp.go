package parser

import (
	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/token"
)

// fnExpKinds maps a named function-expression keyword tag to its AST kind.
// These are parsed as dedicated ExprFnExp variants, never desugared into
// plain calls (§4.5).
var fnExpKinds = map[token.Tag]ast.FnExpKind{
	token.TagKwMap:      ast.FnExpMap,
	token.TagKwFilter:   ast.FnExpFilter,
	token.TagKwFold:     ast.FnExpFold,
	token.TagKwRecurse:  ast.FnExpRecurse,
	token.TagKwParallel: ast.FnExpParallel,
	token.TagKwSpawn:    ast.FnExpSpawn,
	token.TagKwTimeout:  ast.FnExpTimeout,
	token.TagKwRetry:    ast.FnExpRetry,
	token.TagKwCache:    ast.FnExpCache,
	token.TagKwValidate: ast.FnExpValidate,
	token.TagKwWith:     ast.FnExpWith,
	token.TagKwPrint:    ast.FnExpPrint,
	token.TagKwPanic:    ast.FnExpPanic,
	token.TagKwLen:      ast.FnExpLen,
	token.TagKwMin:      ast.FnExpMin,
	token.TagKwMax:      ast.FnExpMax,
}

// parseSeq parses the two function-sequence forms, `run(...)` and
// `try(...)`: zero or more `name: expr` bindings evaluated in order,
// followed by a trailing result expression.
func (p *Parser) parseSeq(kind ast.SeqKind) ast.ExprID {
	start := p.advance().Span // 'run'/'try'
	p.expectTag(token.TagLParen, diag.ExpectedToken, "expected '(' after run/try")

	var bindings []ast.SeqBinding
	for p.at(token.TagIdent) && p.peekTagAt(1) == token.TagColon {
		name, _ := p.expectIdent()
		p.advance() // ':'
		val := p.parseExpr()
		bindings = append(bindings, ast.SeqBinding{Name: name, Value: val})
		if p.at(token.TagComma) {
			p.advance()
			continue
		}
		break
	}

	result := ast.NoExprID
	if !p.at(token.TagRParen) {
		result = p.parseExpr()
	}
	end := p.lastSpan()
	p.expectTag(token.TagRParen, diag.UnclosedDelimiter, "expected ')'")
	return p.arena.AllocSeq(start.Cover(end), kind, bindings, result)
}

// parseFnExp parses one of the named function-expression forms: a mix of
// `.name: value` named properties and, for forms like `len`/`print`, a
// single bare positional argument.
func (p *Parser) parseFnExp(kind ast.FnExpKind) ast.ExprID {
	start := p.advance().Span
	p.expectTag(token.TagLParen, diag.ExpectedToken, "expected '(' after function-exp name")

	var named []ast.NamedExpr
	positional := ast.NoExprID
	for !p.at(token.TagRParen) && !p.atEOF() {
		if p.at(token.TagDot) {
			p.advance()
			name, _ := p.expectIdent()
			p.expectTag(token.TagColon, diag.ExpectedToken, "expected ':' after named property")
			val := p.parseExpr()
			named = append(named, ast.NamedExpr{Name: name, Value: val})
		} else {
			positional = p.parseExpr()
		}
		if p.at(token.TagComma) {
			p.advance()
			continue
		}
		break
	}
	end := p.lastSpan()
	p.expectTag(token.TagRParen, diag.UnclosedDelimiter, "expected ')'")
	span := start.Cover(end)
	if len(named) == 0 && positional == ast.NoExprID {
		p.err(diag.NamedPropRequired, span, "function-exp form requires at least one argument")
	}
	return p.arena.AllocFnExp(span, kind, named, positional)
}
