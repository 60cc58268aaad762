package parser

import (
	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/token"
)

var primitiveTypeTags = []token.Tag{
	token.TagKwInt, token.TagKwFloat, token.TagKwBool, token.TagKwStr,
	token.TagKwChar, token.TagKwByte, token.TagKwUnit, token.TagKwNever,
	token.TagKwDuration, token.TagKwSize, token.TagKwOrdering,
}

// primitiveTypeSpelling maps a primitive type keyword tag back to its
// canonical spelling, since a Bare(tag) Kind carries no interned Name of
// its own (it is payload-free).
var primitiveTypeSpelling = map[token.Tag]string{
	token.TagKwInt:      "int",
	token.TagKwFloat:    "float",
	token.TagKwBool:     "bool",
	token.TagKwStr:      "str",
	token.TagKwChar:     "char",
	token.TagKwByte:     "byte",
	token.TagKwUnit:     "unit",
	token.TagKwNever:    "never",
	token.TagKwDuration: "duration",
	token.TagKwSize:     "size",
	token.TagKwOrdering: "ordering",
}

func (p *Parser) atPrimitiveType() bool {
	return p.atAny(primitiveTypeTags...)
}

// parseTypeExpr parses a syntactic type annotation: a primitive keyword, a
// named type optionally carrying generic arguments (`List[T]`), a tuple
// `(A, B)`, or a function type `(A, B) -> C`.
func (p *Parser) parseTypeExpr() ast.TypeExprID {
	switch {
	case p.atPrimitiveType():
		tok := p.advance()
		name := p.interner.Intern(primitiveTypeSpelling[tok.Kind.Tag])
		return p.arena.AllocTypeExpr(ast.TypeExpr{Span: tok.Span, Kind: ast.TyNamed, Name: name})
	case p.at(token.TagIdent):
		tok := p.advance()
		name := tok.Kind.StrName()
		span := tok.Span
		var args ast.TypeExprRange
		if p.at(token.TagLBracket) {
			p.advance()
			var elems []ast.TypeExprID
			for !p.at(token.TagRBracket) && !p.atEOF() {
				elems = append(elems, p.parseTypeExpr())
				if p.at(token.TagComma) {
					p.advance()
					continue
				}
				break
			}
			span = span.Cover(p.lastSpan())
			p.expectTag(token.TagRBracket, diag.UnclosedDelimiter, "expected ']'")
			args = p.collectTypeExprs(elems)
		}
		return p.arena.AllocTypeExpr(ast.TypeExpr{Span: span, Kind: ast.TyNamed, Name: name, Args: args})
	case p.at(token.TagLParen):
		return p.parseTupleOrFunctionType()
	}
	p.err(diag.ExpectedTypeAnnotation, p.peek().Span, "expected a type annotation")
	return ast.NoTypeExprID
}

func (p *Parser) parseTupleOrFunctionType() ast.TypeExprID {
	start := p.advance().Span // '('
	var elems []ast.TypeExprID
	for !p.at(token.TagRParen) && !p.atEOF() {
		elems = append(elems, p.parseTypeExpr())
		if p.at(token.TagComma) {
			p.advance()
			continue
		}
		break
	}
	end := p.lastSpan()
	p.expectTag(token.TagRParen, diag.UnclosedDelimiter, "expected ')'")

	if p.at(token.TagArrow) {
		p.advance()
		ret := p.parseTypeExpr()
		span := start.Cover(p.arena.GetTypeExpr(ret).Span)
		return p.arena.AllocTypeExpr(ast.TypeExpr{
			Span: span, Kind: ast.TyFunction, Args: p.collectTypeExprs(elems), Result: ret,
		})
	}
	if len(elems) == 1 {
		return elems[0]
	}
	return p.arena.AllocTypeExpr(ast.TypeExpr{Span: start.Cover(end), Kind: ast.TyTuple, Args: p.collectTypeExprs(elems)})
}

// collectTypeExprs materializes a batch of already-allocated TypeExprIDs
// into the contiguous TypeExprRange AllocTypeExprRange expects (it ranges
// over TypeExpr values, not IDs - see ExprArena.AllocTypeExprRange).
func (p *Parser) collectTypeExprs(ids []ast.TypeExprID) ast.TypeExprRange {
	if len(ids) == 0 {
		return ast.TypeExprRange{}
	}
	vals := make([]ast.TypeExpr, len(ids))
	for i, id := range ids {
		vals[i] = p.arena.GetTypeExpr(id)
	}
	return p.arena.AllocTypeExprRange(vals)
}
