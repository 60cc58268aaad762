package parser

import (
	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/token"
)

type binaryOpInfo struct {
	op    ast.BinaryOp
	level int
}

// binaryOps maps an operator tag to its BinaryOp and precedence level,
// exactly mirroring §4.5's table (lowest to highest): or, and, bitwise
// or/xor/and, equality, comparison, range, shift, additive, multiplicative.
// Assignment and unary/postfix sit above and below this table respectively
// and are handled outside parseBinary.
var binaryOps = map[token.Tag]binaryOpInfo{
	token.TagOrOr:      {ast.OpOr, 1},
	token.TagAndAnd:    {ast.OpAnd, 2},
	token.TagPipe:      {ast.OpBitOr, 3},
	token.TagCaret:     {ast.OpBitXor, 4},
	token.TagAmp:       {ast.OpBitAnd, 5},
	token.TagEqEq:      {ast.OpEq, 6},
	token.TagBangEq:    {ast.OpNotEq, 6},
	token.TagLt:        {ast.OpLt, 7},
	token.TagLtEq:      {ast.OpLtEq, 7},
	token.TagGt:        {ast.OpGt, 7},
	token.TagGtEq:      {ast.OpGtEq, 7},
	token.TagDotDot:    {ast.OpRange, 8},
	token.TagDotDotEq:  {ast.OpRangeInclusive, 8},
	token.TagShl:       {ast.OpShl, 9},
	token.TagShr:       {ast.OpShr, 9},
	token.TagPlus:      {ast.OpAdd, 10},
	token.TagMinus:     {ast.OpSub, 10},
	token.TagStar:      {ast.OpMul, 11},
	token.TagSlash:     {ast.OpDiv, 11},
	token.TagPercent:   {ast.OpMod, 11},
}

// parseExpr parses assignment, the lowest-precedence form: `target = value`,
// right-associative, sitting above everything parseBinary climbs.
func (p *Parser) parseExpr() ast.ExprID {
	left := p.parseBinary(1)
	if p.at(token.TagAssign) {
		p.advance()
		value := p.parseExpr()
		span := p.arena.GetExpr(left).Span.Cover(p.arena.GetExpr(value).Span)
		return p.arena.AllocAssign(span, left, value)
	}
	return left
}

// parseBinary climbs binaryOps's precedence table starting at minLevel.
func (p *Parser) parseBinary(minLevel int) ast.ExprID {
	left := p.parseUnary()
	for {
		info, ok := binaryOps[p.peekTag()]
		if !ok || info.level < minLevel {
			return left
		}
		p.advance()
		right := p.parseBinary(info.level + 1)
		span := p.arena.GetExpr(left).Span.Cover(p.arena.GetExpr(right).Span)
		left = p.arena.AllocBinary(span, info.op, left, right)
	}
}

func (p *Parser) parseUnary() ast.ExprID {
	start := p.peek().Span
	var op ast.UnaryOp
	switch p.peekTag() {
	case token.TagMinus:
		op = ast.OpNeg
	case token.TagBang:
		op = ast.OpNot
	case token.TagTilde:
		op = ast.OpBitNot
	default:
		return p.parsePostfix()
	}
	p.advance()
	operand := p.parseUnary()
	return p.arena.AllocUnary(start.Cover(p.arena.GetExpr(operand).Span), op, operand)
}

// parsePostfix climbs call/field/index postfix operators over a primary
// expression, left-associatively.
func (p *Parser) parsePostfix() ast.ExprID {
	left := p.parsePrimary()
	for {
		switch {
		case p.at(token.TagLParen):
			left = p.parseCall(left)
		case p.at(token.TagDot):
			left = p.parseDotAccess(left)
		case p.at(token.TagLBracket):
			left = p.parseIndex(left)
		default:
			return left
		}
	}
}

func (p *Parser) parseCall(callee ast.ExprID) ast.ExprID {
	calleeSpan := p.arena.GetExpr(callee).Span
	p.advance() // '('
	var positional []ast.ExprID
	var named []ast.NamedExpr
	for !p.at(token.TagRParen) && !p.atEOF() {
		if p.at(token.TagDot) {
			p.advance()
			argName, _ := p.expectIdent()
			p.expectTag(token.TagColon, diag.ExpectedToken, "expected ':' after named argument")
			val := p.parseExpr()
			named = append(named, ast.NamedExpr{Name: argName, Value: val})
		} else {
			positional = append(positional, p.parseExpr())
		}
		if p.at(token.TagComma) {
			p.advance()
			continue
		}
		break
	}
	closeTok, _ := p.expectTag(token.TagRParen, diag.UnclosedDelimiter, "expected ')'")
	if len(positional) >= 2 {
		p.err(diag.MultiArgPositionalCall, calleeSpan.Cover(closeTok.Span),
			"calls with two or more arguments require .name: syntax")
	}
	return p.arena.AllocCall(calleeSpan.Cover(closeTok.Span), callee, positional, named)
}

func (p *Parser) parseDotAccess(recv ast.ExprID) ast.ExprID {
	recvSpan := p.arena.GetExpr(recv).Span
	p.advance() // '.'
	name, ok := p.expectIdent()
	if !ok {
		return recv
	}
	if !p.at(token.TagLParen) {
		return p.arena.AllocFieldAccess(recvSpan.Cover(p.lastSpan()), recv, name)
	}
	p.advance() // '('
	var positional []ast.ExprID
	var named []ast.NamedExpr
	for !p.at(token.TagRParen) && !p.atEOF() {
		if p.at(token.TagDot) {
			p.advance()
			argName, _ := p.expectIdent()
			p.expectTag(token.TagColon, diag.ExpectedToken, "expected ':' after named argument")
			val := p.parseExpr()
			named = append(named, ast.NamedExpr{Name: argName, Value: val})
		} else {
			positional = append(positional, p.parseExpr())
		}
		if p.at(token.TagComma) {
			p.advance()
			continue
		}
		break
	}
	closeTok, _ := p.expectTag(token.TagRParen, diag.UnclosedDelimiter, "expected ')'")
	if len(positional) >= 2 {
		p.err(diag.MultiArgPositionalCall, recvSpan.Cover(closeTok.Span),
			"calls with two or more arguments require .name: syntax")
	}
	return p.arena.AllocMethodCall(recvSpan.Cover(closeTok.Span), recv, name, positional, named)
}

func (p *Parser) parseIndex(base ast.ExprID) ast.ExprID {
	baseSpan := p.arena.GetExpr(base).Span
	p.advance() // '['
	idx := p.parseExpr()
	closeTok, _ := p.expectTag(token.TagRBracket, diag.UnclosedDelimiter, "expected ']'")
	return p.arena.AllocIndex(baseSpan.Cover(closeTok.Span), base, idx)
}
