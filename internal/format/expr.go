package format

import (
	"ori/internal/ast"
	"ori/internal/intern"
)

// binaryOpText and binaryOpPrec mirror parser.binaryOps's spelling/level
// table (§4.5) in reverse: given an already-parsed BinaryOp, recover the
// operator text and precedence level the parser climbed it at.
var binaryOpText = map[ast.BinaryOp]string{
	ast.OpOr: "||", ast.OpAnd: "&&",
	ast.OpBitOr: "|", ast.OpBitXor: "^", ast.OpBitAnd: "&",
	ast.OpEq: "==", ast.OpNotEq: "!=",
	ast.OpLt: "<", ast.OpLtEq: "<=", ast.OpGt: ">", ast.OpGtEq: ">=",
	ast.OpRange: "..", ast.OpRangeInclusive: "..=",
	ast.OpShl: "<<", ast.OpShr: ">>",
	ast.OpAdd: "+", ast.OpSub: "-",
	ast.OpMul: "*", ast.OpDiv: "/", ast.OpMod: "%",
}

var binaryOpPrec = map[ast.BinaryOp]int{
	ast.OpOr: 1, ast.OpAnd: 2,
	ast.OpBitOr: 3, ast.OpBitXor: 4, ast.OpBitAnd: 5,
	ast.OpEq: 6, ast.OpNotEq: 6,
	ast.OpLt: 7, ast.OpLtEq: 7, ast.OpGt: 7, ast.OpGtEq: 7,
	ast.OpRange: 8, ast.OpRangeInclusive: 8,
	ast.OpShl: 9, ast.OpShr: 9,
	ast.OpAdd: 10, ast.OpSub: 10,
	ast.OpMul: 11, ast.OpDiv: 11, ast.OpMod: 11,
}

var unaryOpText = map[ast.UnaryOp]string{
	ast.OpNeg: "-", ast.OpNot: "!", ast.OpBitNot: "~",
}

const (
	precAtom  = 100 // calls, field access, literals, parenthesized groups
	precUnary = 12
)

var fnExpText = map[ast.FnExpKind]string{
	ast.FnExpMap: "map", ast.FnExpFilter: "filter", ast.FnExpFold: "fold",
	ast.FnExpRecurse: "recurse", ast.FnExpParallel: "parallel", ast.FnExpSpawn: "spawn",
	ast.FnExpTimeout: "timeout", ast.FnExpRetry: "retry", ast.FnExpCache: "cache",
	ast.FnExpValidate: "validate", ast.FnExpWith: "with", ast.FnExpPrint: "print",
	ast.FnExpPanic: "panic", ast.FnExpLen: "len", ast.FnExpMin: "min", ast.FnExpMax: "max",
}

// exprPrec returns id's own operator precedence (for deciding whether a
// child needs parenthesizing against its parent), or precAtom for every
// non-operator expression form.
func (p *printer) exprPrec(id ast.ExprID) int {
	e := p.arena.GetExpr(id)
	switch e.Kind {
	case ast.ExprBinary:
		return binaryOpPrec[p.arena.Binary(id).Op]
	case ast.ExprUnary:
		return precUnary
	default:
		return precAtom
	}
}

// printExpr renders id, wrapping it in parentheses if needed is the
// caller's responsibility via printExprAt.
func (p *printer) printExpr(id ast.ExprID) {
	if !id.IsValid() {
		return
	}
	e := p.arena.GetExpr(id)
	switch e.Kind {
	case ast.ExprLitInt, ast.ExprLitFloat, ast.ExprLitBool, ast.ExprLitChar, ast.ExprLitStr:
		p.w.WriteString(renderLiteral(p.interner, p.arena.Literal(id).Lit))
	case ast.ExprLitTemplate:
		p.printTemplate(id)
	case ast.ExprLitUnit:
		p.w.WriteString("()")
	case ast.ExprIdent:
		p.w.WriteString(p.text(p.arena.Ident(id).Name))
	case ast.ExprBinary:
		p.printBinary(id)
	case ast.ExprUnary:
		u := p.arena.Unary(id)
		p.w.WriteString(unaryOpText[u.Op])
		p.printExprAt(u.Operand, precUnary)
	case ast.ExprCall:
		p.printCall(id)
	case ast.ExprMethodCall:
		p.printMethodCall(id)
	case ast.ExprLet:
		p.printLet(id)
	case ast.ExprAssign:
		a := p.arena.Assign(id)
		p.printExpr(a.Target)
		p.w.WriteString(" = ")
		p.printExpr(a.Value)
	case ast.ExprIf:
		p.printIf(id)
	case ast.ExprLoop:
		p.w.WriteString("loop ")
		p.printExpr(p.arena.Loop(id).Body)
	case ast.ExprBreak:
		p.w.WriteString("break")
		if v := p.arena.Break(id).Value; v.IsValid() {
			p.w.WriteString(" ")
			p.printExpr(v)
		}
	case ast.ExprContinue:
		p.w.WriteString("continue")
	case ast.ExprFor:
		p.printFor(id)
	case ast.ExprBlock:
		p.printBlock(id)
	case ast.ExprTuple:
		p.printTuple(id)
	case ast.ExprStructLit:
		p.printStructLit(id)
	case ast.ExprMapLit:
		p.printMapLit(id)
	case ast.ExprFieldAccess:
		fa := p.arena.FieldAccess(id)
		p.printExprAt(fa.Base, precAtom)
		p.w.WriteString(".")
		p.w.WriteString(p.text(fa.Field))
	case ast.ExprIndex:
		ix := p.arena.Index(id)
		p.printExprAt(ix.Base, precAtom)
		p.w.WriteString("[")
		p.printExpr(ix.Index)
		p.w.WriteString("]")
	case ast.ExprLambda:
		p.printLambda(id)
	case ast.ExprMatchExpr:
		p.printMatch(id)
	case ast.ExprOptionSome:
		p.w.WriteString("Some(")
		p.printExpr(p.arena.Option(id).Value)
		p.w.WriteString(")")
	case ast.ExprOptionNone:
		p.w.WriteString("None")
	case ast.ExprResultOk:
		p.w.WriteString("Ok(")
		p.printExpr(p.arena.Result(id).Value)
		p.w.WriteString(")")
	case ast.ExprResultErr:
		p.w.WriteString("Err(")
		p.printExpr(p.arena.Result(id).Value)
		p.w.WriteString(")")
	case ast.ExprSeq:
		p.printSeq(id)
	case ast.ExprFnExp:
		p.printFnExp(id)
	default:
		p.w.WriteString("<invalid>")
	}
}

// printExprAt renders id, parenthesizing it if its own precedence is
// lower than parentPrec (or equal and it sits in a position where
// left-associativity would otherwise be lost - handled by the caller
// passing parentPrec+1 for a right operand).
func (p *printer) printExprAt(id ast.ExprID, parentPrec int) {
	if p.exprPrec(id) < parentPrec {
		p.w.WriteString("(")
		p.printExpr(id)
		p.w.WriteString(")")
		return
	}
	p.printExpr(id)
}

func (p *printer) printBinary(id ast.ExprID) {
	b := p.arena.Binary(id)
	level := binaryOpPrec[b.Op]
	p.printExprAt(b.Left, level)
	p.w.Space()
	p.w.WriteString(binaryOpText[b.Op])
	p.w.Space()
	p.printExprAt(b.Right, level+1)
}

func (p *printer) printArgs(args ast.ExprRange, named ast.NamedExprRange) {
	p.w.WriteString("(")
	first := true
	for _, a := range p.arena.GetExprRange(args) {
		if !first {
			p.w.WriteString(", ")
		}
		first = false
		p.printExpr(a)
	}
	for _, n := range p.arena.NamedExprs(named) {
		if !first {
			p.w.WriteString(", ")
		}
		first = false
		p.w.WriteString(".")
		p.w.WriteString(p.text(n.Name))
		p.w.WriteString(": ")
		p.printExpr(n.Value)
	}
	p.w.WriteString(")")
}

func (p *printer) printCall(id ast.ExprID) {
	c := p.arena.Call(id)
	p.printExprAt(c.Callee, precAtom)
	p.printArgs(c.Args, c.Named)
}

func (p *printer) printMethodCall(id ast.ExprID) {
	m := p.arena.MethodCall(id)
	p.printExprAt(m.Receiver, precAtom)
	p.w.WriteString(".")
	p.w.WriteString(p.text(m.Method))
	p.printArgs(m.Args, m.Named)
}

func (p *printer) printLet(id ast.ExprID) {
	l := p.arena.Let(id)
	p.w.WriteString("let ")
	p.w.WriteString(p.text(l.Name))
	if l.TypeAnn.IsValid() {
		p.w.WriteString(": ")
		p.printTypeExpr(l.TypeAnn)
	}
	p.w.WriteString(" = ")
	p.printExpr(l.Value)
}

func (p *printer) printIf(id ast.ExprID) {
	f := p.arena.If(id)
	p.w.WriteString("if ")
	p.printExpr(f.Cond)
	p.w.WriteString(" ")
	p.printExpr(f.Then)
	if f.Else.IsValid() {
		p.w.WriteString(" else ")
		p.printExpr(f.Else)
	}
}

func (p *printer) printFor(id ast.ExprID) {
	f := p.arena.For(id)
	p.w.WriteString("for ")
	p.printPattern(f.Pattern)
	p.w.WriteString(" in ")
	p.printExpr(f.Iter)
	p.w.WriteString(" ")
	p.printExpr(f.Body)
}

func (p *printer) printBlock(id ast.ExprID) {
	b := p.arena.Block(id)
	stmts := p.arena.Stmts(b.Stmts)
	if len(stmts) == 0 && !b.Result.IsValid() {
		p.w.WriteString("{}")
		return
	}
	p.w.WriteString("{")
	p.w.Newline()
	p.w.IndentPush()
	for _, s := range stmts {
		p.printExpr(s.Expr)
		p.w.WriteString(";")
		p.w.Newline()
	}
	if b.Result.IsValid() {
		p.printExpr(b.Result)
		p.w.Newline()
	}
	p.w.IndentPop()
	p.w.WriteString("}")
}

func (p *printer) printTuple(id ast.ExprID) {
	elems := p.arena.GetExprRange(p.arena.Tuple(id).Elems)
	p.w.WriteString("(")
	for i, e := range elems {
		if i > 0 {
			p.w.WriteString(", ")
		}
		p.printExpr(e)
	}
	if len(elems) == 1 {
		// a single-element tuple must keep its trailing comma - without
		// it parseParenGroupOrTuple collapses back to a bare grouped
		// expression (see primary.go), which would break idempotence.
		p.w.WriteString(",")
	}
	p.w.WriteString(")")
}

func (p *printer) printStructLit(id ast.ExprID) {
	s := p.arena.StructLit(id)
	p.w.WriteString(p.text(s.TypeName))
	p.w.WriteString(" { ")
	for i, f := range p.arena.FieldInits(s.Fields) {
		if i > 0 {
			p.w.WriteString(", ")
		}
		p.w.WriteString(p.text(f.Name))
		p.w.WriteString(": ")
		p.printExpr(f.Value)
	}
	p.w.WriteString(" }")
}

func (p *printer) printMapLit(id ast.ExprID) {
	m := p.arena.MapLit(id)
	entries := p.arena.MapEntries(m.Entries)
	p.w.WriteString("{")
	for i, e := range entries {
		if i > 0 {
			p.w.WriteString(", ")
		}
		p.printExpr(e.Key)
		p.w.WriteString(": ")
		p.printExpr(e.Value)
	}
	p.w.WriteString("}")
}

func (p *printer) printLambda(id ast.ExprID) {
	l := p.arena.Lambda(id)
	params := p.arena.Params(l.Params)
	if len(params) == 1 {
		p.w.WriteString(p.text(params[0].Name))
		p.w.WriteString(" -> ")
		p.printExpr(l.Body)
		return
	}
	// parseLambdaParenForm discards a typed parameter list's return-type
	// annotation once the typer has re-derived it (see primary.go), so
	// there is nothing to print it back from; always emit the untyped
	// arrow form here, which keeps a second formatting pass stable.
	p.w.WriteString("(")
	for i, param := range params {
		if i > 0 {
			p.w.WriteString(", ")
		}
		p.w.WriteString(p.text(param.Name))
	}
	p.w.WriteString(") -> ")
	p.printExpr(l.Body)
}

func (p *printer) printParamList(params []ast.Param) {
	for i, param := range params {
		if i > 0 {
			p.w.WriteString(", ")
		}
		p.w.WriteString(p.text(param.Name))
		if param.TypeAnn.IsValid() {
			p.w.WriteString(": ")
			p.printTypeExpr(param.TypeAnn)
		}
		if param.Default.IsValid() {
			p.w.WriteString(" = ")
			p.printExpr(param.Default)
		}
	}
}

func (p *printer) printMatch(id ast.ExprID) {
	m := p.arena.MatchExpr(id)
	p.w.WriteString("match ")
	p.printExpr(m.Scrutinee)
	p.w.WriteString(" {")
	p.w.Newline()
	p.w.IndentPush()
	for _, arm := range p.arena.Arms(m.Arms) {
		p.printPattern(arm.Pattern)
		if arm.Guard.IsValid() {
			p.w.WriteString(" if ")
			p.printExpr(arm.Guard)
		}
		p.w.WriteString(" => ")
		p.printExpr(arm.Body)
		p.w.WriteString(",")
		p.w.Newline()
	}
	p.w.IndentPop()
	p.w.WriteString("}")
}

func (p *printer) printSeq(id ast.ExprID) {
	s := p.arena.Seq(id)
	if s.Kind == ast.SeqRun {
		p.w.WriteString("run(")
	} else {
		p.w.WriteString("try(")
	}
	bindings := p.arena.SeqBindings(s.Bindings)
	for _, b := range bindings {
		p.w.WriteString(p.text(b.Name))
		p.w.WriteString(": ")
		p.printExpr(b.Value)
		p.w.WriteString(", ")
	}
	if s.Result.IsValid() {
		p.printExpr(s.Result)
	}
	p.w.WriteString(")")
}

func (p *printer) printFnExp(id ast.ExprID) {
	f := p.arena.FnExp(id)
	p.w.WriteString(fnExpText[f.Kind])
	p.w.WriteString("(")
	first := true
	if f.Positional.IsValid() {
		p.printExpr(f.Positional)
		first = false
	}
	for _, n := range p.arena.NamedExprs(f.Named) {
		if !first {
			p.w.WriteString(", ")
		}
		first = false
		p.w.WriteString(".")
		p.w.WriteString(p.text(n.Name))
		p.w.WriteString(": ")
		p.printExpr(n.Value)
	}
	p.w.WriteString(")")
}

func (p *printer) printTemplate(id ast.ExprID) {
	parts := p.arena.TemplateParts(p.arena.Template(id))
	p.w.WriteString("`")
	for _, part := range parts {
		p.w.WriteString(p.text(part.Text))
		if part.Value.IsValid() {
			p.w.WriteString("{")
			p.printExpr(part.Value)
			if part.Format != intern.NameEmpty {
				p.w.WriteString(":")
				p.w.WriteString(p.text(part.Format))
			}
			p.w.WriteString("}")
		}
	}
	p.w.WriteString("`")
}
