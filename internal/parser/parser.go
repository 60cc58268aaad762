// Package parser implements the recursive-descent, Pratt-precedence
// parser (C5): it walks a pre-built *token.List and produces an ast.Module
// plus a populated ast.ExprArena. Its state/helper shape is grounded on the
// teacher's internal/parser/parser.go (Options, at/atOr, resyncTop,
// parseItems's progress-tracked top-level loop), adapted from the
// teacher's streaming lx.Peek()-based cursor to index-based access into a
// whole *token.List, since this compiler's lexer (unlike the teacher's)
// has no streaming Peek/advance API of its own.
package parser

import (
	"strings"

	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/intern"
	"ori/internal/source"
	"ori/internal/token"
)

// Options configures a parse run.
type Options struct {
	// MaxErrors caps how many diagnostics are reported before the parser
	// falls silent (parsing itself still runs to completion so the caller
	// always gets a full, if increasingly approximate, Module). Zero means
	// unlimited.
	MaxErrors int
	Reporter  diag.Reporter
}

// Result is everything one Parse call produces.
type Result struct {
	Module     ast.Module
	ErrorCount int
}

// Parser holds the mutable state of one parse over one token.List.
type Parser struct {
	list     *token.List
	interner *intern.Interner
	arena    *ast.ExprArena
	reporter diag.Reporter
	maxErrors int

	pos       uint32
	errCount  int
	suspendStructLit int
}

// New constructs a Parser over list. interner must be the same Interner
// the lexer used to produce list, so that Name handles parsed out of
// token.Kind.StrName() remain meaningful.
func New(list *token.List, interner *intern.Interner, arena *ast.ExprArena, opts Options) *Parser {
	return &Parser{
		list:      list,
		interner:  interner,
		arena:     arena,
		reporter:  opts.Reporter,
		maxErrors: opts.MaxErrors,
	}
}

// Parse runs a full parse and returns the resulting Module. Errors are
// reported through opts.Reporter (if any) as they are found; the returned
// Module is always complete enough to walk, even after errors (downstream
// passes must tolerate a syntactically incomplete arena, per §4.5).
func Parse(list *token.List, interner *intern.Interner, arena *ast.ExprArena, opts Options) Result {
	p := New(list, interner, arena, opts)
	mod := p.parseModule()
	return Result{Module: mod, ErrorCount: p.errCount}
}

// --- token-stream primitives ---

func (p *Parser) peek() token.Token {
	return p.list.Get(p.pos)
}

func (p *Parser) peekTag() token.Tag {
	return p.list.TagAt(p.pos)
}

func (p *Parser) peekTagAt(offset uint32) token.Tag {
	i := p.pos + offset
	if int(i) >= p.list.Len() {
		return token.TagEOF
	}
	return p.list.TagAt(i)
}

func (p *Parser) at(tag token.Tag) bool {
	return p.peekTag() == tag
}

func (p *Parser) atAny(tags ...token.Tag) bool {
	cur := p.peekTag()
	for _, t := range tags {
		if cur == t {
			return true
		}
	}
	return false
}

func (p *Parser) atEOF() bool {
	return p.at(token.TagEOF)
}

// advance returns the current token and moves the cursor forward, except
// at EOF where the cursor stays put (EOF is sticky, matching the teacher's
// own "never advance past the end" cursor discipline).
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if !p.atEOF() {
		p.pos++
	}
	return tok
}

func (p *Parser) lastSpan() source.Span {
	if p.pos == 0 {
		return p.peek().Span
	}
	return p.list.Get(p.pos - 1).Span
}

func (p *Parser) err(code diag.Code, span source.Span, msg string) {
	p.errCount++
	if p.reporter == nil {
		return
	}
	if p.maxErrors > 0 && p.errCount > p.maxErrors {
		return
	}
	p.reporter.Report(code, diag.SevError, span, msg, nil, nil)
}

func (p *Parser) expectTag(tag token.Tag, code diag.Code, msg string) (token.Token, bool) {
	if p.at(tag) {
		return p.advance(), true
	}
	p.err(code, p.peek().Span, msg)
	return token.Token{}, false
}

func (p *Parser) expectIdent() (intern.Name, bool) {
	if p.at(token.TagIdent) {
		tok := p.advance()
		return tok.Kind.StrName(), true
	}
	p.err(diag.ExpectedIdentifier, p.peek().Span, "expected identifier")
	return intern.NameEmpty, false
}

func (p *Parser) textOf(name intern.Name) string {
	s, _ := p.interner.Lookup(name)
	return s
}

func (p *Parser) structLitAllowed() bool {
	return p.suspendStructLit == 0
}

// parseExprNoStruct parses an expression with struct-literal syntax
// suspended, for condition/scrutinee positions where `Name {` would
// otherwise be ambiguous with the following block (`if cond { ... }`).
func (p *Parser) parseExprNoStruct() ast.ExprID {
	p.suspendStructLit++
	e := p.parseExpr()
	p.suspendStructLit--
	return e
}

// --- top-level grammar ---

var topLevelStarters = []token.Tag{token.TagAt, token.TagKwUse, token.TagHash, token.TagKwStruct, token.TagKwEnum, token.TagKwType}

func (p *Parser) isTopLevelStarter() bool {
	return p.atAny(topLevelStarters...) || p.at(token.TagKwPub)
}

func (p *Parser) parseModule() ast.Module {
	var mod ast.Module
	sawDecl := false

	for !p.atEOF() {
		before := p.pos

		switch {
		case p.at(token.TagKwUse):
			use, ok := p.parseUse()
			if ok {
				if sawDecl {
					p.err(diag.ImportAfterDecl, use.Span, "use import must precede all declarations")
				}
				mod.Uses = append(mod.Uses, use)
			}
		case p.at(token.TagKwStruct), p.at(token.TagKwEnum), p.at(token.TagKwType):
			if td, ok := p.parseTypeDef(false); ok {
				mod.TypeDefs = append(mod.TypeDefs, td)
				sawDecl = true
			}
		case p.at(token.TagKwPub):
			p.advance()
			pub := true
			switch {
			case p.at(token.TagKwStruct), p.at(token.TagKwEnum), p.at(token.TagKwType):
				if td, ok := p.parseTypeDef(pub); ok {
					mod.TypeDefs = append(mod.TypeDefs, td)
					sawDecl = true
				}
			case p.at(token.TagHash), p.at(token.TagAt):
				if p.parseAttributedItem(&mod, pub) {
					sawDecl = true
				}
			default:
				p.err(diag.ExpectedToken, p.peek().Span, "expected a declaration after 'pub'")
			}
		case p.at(token.TagHash), p.at(token.TagAt):
			if p.parseAttributedItem(&mod, false) {
				sawDecl = true
			}
		default:
			p.err(diag.ExpectedToken, p.peek().Span, "expected 'use', '@', or a type definition at top level")
			p.resyncTop()
		}

		if p.pos == before {
			p.advance()
		}
	}

	return mod
}

func (p *Parser) resyncTop() {
	before := p.pos
	for !p.atEOF() && !p.isTopLevelStarter() {
		p.advance()
	}
	if p.pos == before && !p.atEOF() {
		p.advance()
	}
}

func (p *Parser) parseAttributedItem(mod *ast.Module, pub bool) bool {
	attrs, attrSpan := p.parseAttributes()
	if !p.at(token.TagAt) {
		p.err(diag.ExpectedToken, p.peek().Span, "expected '@' to begin a function or test")
		p.resyncTop()
		return false
	}
	ok := p.parseAtItem(mod, attrs, attrSpan, pub)
	if p.at(token.TagSemicolon) {
		p.advance()
	}
	return ok
}

func (p *Parser) parseAttributes() ([]ast.Attr, source.Span) {
	var attrs []ast.Attr
	var span source.Span
	for p.at(token.TagHash) {
		start := p.advance().Span
		p.expectTag(token.TagLBracket, diag.MalformedAttribute, "expected '[' after '#'")
		name, _ := p.expectIdent()
		arg := intern.NameEmpty
		if p.at(token.TagLParen) {
			p.advance()
			if p.at(token.TagStringLit) {
				arg = p.advance().Kind.StrName()
			} else {
				p.err(diag.MalformedAttribute, p.peek().Span, "expected a string literal attribute argument")
			}
			p.expectTag(token.TagRParen, diag.MalformedAttribute, "expected ')'")
		}
		end := p.lastSpan()
		p.expectTag(token.TagRBracket, diag.MalformedAttribute, "expected ']'")
		full := start.Cover(end).Cover(p.lastSpan())
		attrs = append(attrs, ast.Attr{Name: name, Arg: arg, Span: full})
		if span.Empty() {
			span = full
		} else {
			span = span.Cover(full)
		}
	}
	return attrs, span
}

func (p *Parser) parseAtItem(mod *ast.Module, attrs []ast.Attr, attrSpan source.Span, pub bool) bool {
	atTok, ok := p.expectTag(token.TagAt, diag.ExpectedToken, "expected '@' to begin a declaration")
	if !ok {
		return false
	}
	name, ok := p.expectIdent()
	if !ok {
		p.resyncTop()
		return false
	}

	attrRange := p.arena.AllocAttrs(attrs)

	if p.at(token.TagKwTests) {
		p.advance()
		p.expectTag(token.TagAt, diag.ExpectedToken, "expected '@' before test target")
		target, _ := p.expectIdent()
		p.expectTag(token.TagAssign, diag.ExpectedToken, "expected '=' before test body")
		body := p.parseExpr()
		span := atTok.Span.Cover(p.arena.GetExpr(body).Span)
		if !attrSpan.Empty() {
			span = attrSpan.Cover(span)
		}
		mod.Tests = append(mod.Tests, ast.TestDef{Target: target, Name: name, Body: body, Attrs: attrRange, Span: span})
		return true
	}

	if strings.HasPrefix(p.textOf(name), "test_") {
		p.expectTag(token.TagAssign, diag.ExpectedToken, "expected '=' before test body")
		body := p.parseExpr()
		span := atTok.Span.Cover(p.arena.GetExpr(body).Span)
		if !attrSpan.Empty() {
			span = attrSpan.Cover(span)
		}
		mod.Tests = append(mod.Tests, ast.TestDef{Name: name, Body: body, Attrs: attrRange, Span: span})
		return true
	}

	p.expectTag(token.TagLParen, diag.ExpectedToken, "expected '(' after function name")
	params := p.parseParamList()
	p.expectTag(token.TagRParen, diag.UnclosedDelimiter, "expected ')'")

	ret := ast.NoTypeExprID
	if p.at(token.TagArrow) {
		p.advance()
		ret = p.parseTypeExpr()
	}
	p.expectTag(token.TagAssign, diag.ExpectedToken, "expected '=' before function body")
	body := p.parseExpr()

	span := atTok.Span.Cover(p.arena.GetExpr(body).Span)
	if !attrSpan.Empty() {
		span = attrSpan.Cover(span)
	}
	mod.Functions = append(mod.Functions, ast.Function{
		Name:    name,
		Params:  p.arena.AllocParams(params),
		RetType: ret,
		Body:    body,
		Attrs:   attrRange,
		Pub:     pub,
		Span:    span,
	})
	return true
}

func (p *Parser) parseParamList() []ast.Param {
	var params []ast.Param
	seen := make(map[intern.Name]bool)
	for !p.at(token.TagRParen) && !p.atEOF() {
		name, ok := p.expectIdent()
		if !ok {
			break
		}
		if seen[name] {
			p.err(diag.DuplicateParam, p.lastSpan(), "duplicate parameter name")
		}
		seen[name] = true
		param := ast.Param{Name: name}
		if p.at(token.TagColon) {
			p.advance()
			param.TypeAnn = p.parseTypeExpr()
		}
		if p.at(token.TagAssign) {
			p.advance()
			param.Default = p.parseExpr()
		}
		params = append(params, param)
		if p.at(token.TagComma) {
			p.advance()
			continue
		}
		break
	}
	return params
}

func (p *Parser) parseUse() (ast.UseDef, bool) {
	start := p.advance().Span // 'use'
	pathName, ok := p.parseUsePath()
	if !ok {
		p.resyncTop()
		return ast.UseDef{}, false
	}
	alias := intern.NameEmpty
	if p.at(token.TagKwAs) {
		p.advance()
		alias, _ = p.expectIdent()
	}
	end := p.lastSpan()
	if p.at(token.TagSemicolon) {
		end = p.advance().Span
	}
	return ast.UseDef{Path: pathName, Alias: alias, Span: start.Cover(end)}, true
}

func (p *Parser) parseUsePath() (intern.Name, bool) {
	first, ok := p.expectIdent()
	if !ok {
		return intern.NameEmpty, false
	}
	text := p.textOf(first)
	for p.at(token.TagColonColon) {
		p.advance()
		seg, ok := p.expectIdent()
		if !ok {
			break
		}
		text = text + "::" + p.textOf(seg)
	}
	return p.interner.Intern(text), true
}
