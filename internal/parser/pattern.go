package parser

import (
	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/source"
	"ori/internal/token"
)

// parsePattern parses a full pattern, including `|` alternation, which
// binds more loosely than any single pattern form.
func (p *Parser) parsePattern() ast.PatternID {
	first := p.parsePatternPrimary()
	if !p.at(token.TagPipe) {
		return first
	}
	cur := first
	for p.at(token.TagPipe) {
		p.advance()
		alt := p.parsePatternPrimary()
		span := p.arena.GetPattern(cur).Span.Cover(p.arena.GetPattern(alt).Span)
		cur = p.arena.AllocPattern(ast.Pattern{
			Kind: ast.PatternOr,
			Span: span,
			Sub:  p.arena.AllocPatternRange([]ast.PatternID{cur, alt}),
		})
	}
	return cur
}

func (p *Parser) parsePatternPrimary() ast.PatternID {
	tok := p.peek()
	switch tok.Kind.Tag {
	case token.TagUnderscore:
		p.advance()
		return p.arena.AllocPattern(ast.Pattern{Kind: ast.PatternWildcard, Span: tok.Span})

	case token.TagIntLit, token.TagFloatLit, token.TagCharLit, token.TagStringLit,
		token.TagKwTrue, token.TagKwFalse:
		p.advance()
		return p.arena.AllocPattern(ast.Pattern{Kind: ast.PatternLiteral, Span: tok.Span, Lit: tok.Kind})

	case token.TagKwSome, token.TagKwOk, token.TagKwErr:
		name := p.interner.Intern(variantCtorSpelling[tok.Kind.Tag])
		p.advance()
		sub, end := p.parseOptionalPatternArgs()
		return p.arena.AllocPattern(ast.Pattern{
			Kind: ast.PatternEnumVariant, Span: tok.Span.Cover(end), Name: name,
			Sub: p.arena.AllocPatternRange(sub),
		})

	case token.TagKwNone:
		p.advance()
		return p.arena.AllocPattern(ast.Pattern{
			Kind: ast.PatternEnumVariant, Span: tok.Span, Name: p.interner.Intern("None"),
		})

	case token.TagLParen:
		p.advance()
		var sub []ast.PatternID
		for !p.at(token.TagRParen) && !p.atEOF() {
			sub = append(sub, p.parsePattern())
			if p.at(token.TagComma) {
				p.advance()
				continue
			}
			break
		}
		end := p.lastSpan()
		p.expectTag(token.TagRParen, diag.UnclosedDelimiter, "expected ')'")
		return p.arena.AllocPattern(ast.Pattern{
			Kind: ast.PatternTuple, Span: tok.Span.Cover(end), Sub: p.arena.AllocPatternRange(sub),
		})

	case token.TagIdent:
		p.advance()
		name := tok.Kind.StrName()
		switch {
		case p.at(token.TagLBrace):
			p.advance()
			var sub []ast.PatternID
			for !p.at(token.TagRBrace) && !p.atEOF() {
				sub = append(sub, p.parsePattern())
				if p.at(token.TagComma) {
					p.advance()
					continue
				}
				break
			}
			end := p.lastSpan()
			p.expectTag(token.TagRBrace, diag.UnclosedDelimiter, "expected '}'")
			return p.arena.AllocPattern(ast.Pattern{
				Kind: ast.PatternStruct, Span: tok.Span.Cover(end), Name: name,
				Sub: p.arena.AllocPatternRange(sub),
			})
		case p.at(token.TagLParen):
			sub, end := p.parseOptionalPatternArgs()
			return p.arena.AllocPattern(ast.Pattern{
				Kind: ast.PatternEnumVariant, Span: tok.Span.Cover(end), Name: name,
				Sub: p.arena.AllocPatternRange(sub),
			})
		default:
			return p.arena.AllocPattern(ast.Pattern{Kind: ast.PatternBindIdent, Span: tok.Span, Name: name})
		}
	}

	p.err(diag.ExpectedToken, tok.Span, "expected a pattern")
	p.advance()
	return p.arena.AllocPattern(ast.Pattern{Kind: ast.PatternWildcard, Span: tok.Span})
}

var variantCtorSpelling = map[token.Tag]string{
	token.TagKwSome: "Some",
	token.TagKwOk:   "Ok",
	token.TagKwErr:  "Err",
}

// parseOptionalPatternArgs parses an optional `(pat, ...)` payload list,
// shared by the builtin Some/Ok/Err variant patterns and user-defined
// enum-variant patterns (`Circle(r)`).
func (p *Parser) parseOptionalPatternArgs() ([]ast.PatternID, source.Span) {
	if !p.at(token.TagLParen) {
		return nil, p.lastSpan()
	}
	p.advance()
	var sub []ast.PatternID
	for !p.at(token.TagRParen) && !p.atEOF() {
		sub = append(sub, p.parsePattern())
		if p.at(token.TagComma) {
			p.advance()
			continue
		}
		break
	}
	end := p.lastSpan()
	p.expectTag(token.TagRParen, diag.UnclosedDelimiter, "expected ')'")
	return sub, end
}
