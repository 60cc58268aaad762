package parser

import (
	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/token"
)

// parseTypeDef parses a top-level `struct`, `enum`, or `type` alias
// declaration. pub was already consumed by the caller when present.
func (p *Parser) parseTypeDef(pub bool) (ast.TypeDef, bool) {
	switch {
	case p.at(token.TagKwStruct):
		return p.parseStructDef(pub)
	case p.at(token.TagKwEnum):
		return p.parseEnumDef(pub)
	case p.at(token.TagKwType):
		return p.parseAliasDef(pub)
	}
	p.err(diag.ExpectedToken, p.peek().Span, "expected 'struct', 'enum', or 'type'")
	p.resyncTop()
	return ast.TypeDef{}, false
}

func (p *Parser) parseStructDef(pub bool) (ast.TypeDef, bool) {
	start := p.advance().Span // 'struct'
	name, ok := p.expectIdent()
	if !ok {
		p.resyncTop()
		return ast.TypeDef{}, false
	}
	p.expectTag(token.TagLBrace, diag.ExpectedToken, "expected '{' to start struct fields")
	var fields []ast.FieldDef
	for !p.at(token.TagRBrace) && !p.atEOF() {
		fname, ok := p.expectIdent()
		if !ok {
			break
		}
		p.expectTag(token.TagColon, diag.ExpectedTypeAnnotation, "expected ':' before field type")
		ty := p.parseTypeExpr()
		fields = append(fields, ast.FieldDef{Name: fname, TypeAnn: ty})
		if p.at(token.TagComma) {
			p.advance()
			continue
		}
		break
	}
	end := p.lastSpan()
	p.expectTag(token.TagRBrace, diag.UnclosedDelimiter, "expected '}'")
	return ast.TypeDef{
		Name:   name,
		Kind:   ast.TypeDefStruct,
		Fields: p.arena.AllocFieldDefs(fields),
		Pub:    pub,
		Span:   start.Cover(end),
	}, true
}

func (p *Parser) parseEnumDef(pub bool) (ast.TypeDef, bool) {
	start := p.advance().Span // 'enum'
	name, ok := p.expectIdent()
	if !ok {
		p.resyncTop()
		return ast.TypeDef{}, false
	}
	p.expectTag(token.TagLBrace, diag.ExpectedToken, "expected '{' to start enum variants")
	var variants []ast.VariantDef
	for !p.at(token.TagRBrace) && !p.atEOF() {
		vname, ok := p.expectIdent()
		if !ok {
			break
		}
		var fields []ast.FieldDef
		if p.at(token.TagLParen) {
			p.advance()
			for !p.at(token.TagRParen) && !p.atEOF() {
				fname, ok := p.expectIdent()
				if !ok {
					break
				}
				p.expectTag(token.TagColon, diag.ExpectedTypeAnnotation, "expected ':' before field type")
				ty := p.parseTypeExpr()
				fields = append(fields, ast.FieldDef{Name: fname, TypeAnn: ty})
				if p.at(token.TagComma) {
					p.advance()
					continue
				}
				break
			}
			p.expectTag(token.TagRParen, diag.UnclosedDelimiter, "expected ')'")
		}
		variants = append(variants, ast.VariantDef{Name: vname, Fields: p.arena.AllocFieldDefs(fields)})
		if p.at(token.TagComma) {
			p.advance()
			continue
		}
		break
	}
	end := p.lastSpan()
	p.expectTag(token.TagRBrace, diag.UnclosedDelimiter, "expected '}'")
	return ast.TypeDef{
		Name:     name,
		Kind:     ast.TypeDefEnum,
		Variants: p.arena.AllocVariantDefs(variants),
		Pub:      pub,
		Span:     start.Cover(end),
	}, true
}

func (p *Parser) parseAliasDef(pub bool) (ast.TypeDef, bool) {
	start := p.advance().Span // 'type'
	name, ok := p.expectIdent()
	if !ok {
		p.resyncTop()
		return ast.TypeDef{}, false
	}
	p.expectTag(token.TagAssign, diag.ExpectedToken, "expected '=' in type alias")
	ty := p.parseTypeExpr()
	end := p.lastSpan()
	if p.at(token.TagSemicolon) {
		end = p.advance().Span
	}
	return ast.TypeDef{
		Name:  name,
		Kind:  ast.TypeDefAlias,
		Alias: ty,
		Pub:   pub,
		Span:  start.Cover(end),
	}, true
}
