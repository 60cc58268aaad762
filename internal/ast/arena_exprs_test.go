package ast

import (
	"testing"

	"ori/internal/intern"
	"ori/internal/source"
	"ori/internal/token"
)

func dummySpan() source.Span { return source.Span{} }

func TestExprArenaIdentRoundTrip(t *testing.T) {
	in := intern.New()
	a := NewExprArena()
	name := in.Intern("x")

	id := a.AllocIdent(dummySpan(), name)
	if !id.IsValid() {
		t.Fatalf("AllocIdent returned the zero handle")
	}
	if got := a.GetExpr(id).Kind; got != ExprIdent {
		t.Fatalf("Kind = %v, want ExprIdent", got)
	}
	if got := a.Ident(id).Name; got != name {
		t.Fatalf("Ident(id).Name = %d, want %d", got, name)
	}
}

func TestExprArenaLiteralReusesTokenKindEncoding(t *testing.T) {
	a := NewExprArena()
	lit := token.Int(42)

	id := a.AllocLiteral(ExprLitInt, dummySpan(), lit)
	got := a.Literal(id).Lit
	if got.IntValue() != 42 {
		t.Fatalf("literal round-trip lost its value: got %v", got)
	}
}

// TestExprArenaHandleStability is the P5 property: a handle returned by an
// earlier allocation still resolves to the same logical payload after many
// further, unrelated allocations into every arena it shares storage with.
func TestExprArenaHandleStability(t *testing.T) {
	in := intern.New()
	a := NewExprArena()

	first := a.AllocIdent(dummySpan(), in.Intern("first"))
	firstLit := a.AllocLiteral(ExprLitInt, dummySpan(), token.Int(1))

	for i := 0; i < 500; i++ {
		a.AllocIdent(dummySpan(), in.Intern("noise"))
		a.AllocLiteral(ExprLitInt, dummySpan(), token.Int(uint64(i)))
		a.AllocBinary(dummySpan(), OpAdd, firstLit, firstLit)
	}

	if got := a.Ident(first).Name; got != in.Intern("first") {
		t.Fatalf("handle `first` drifted after further allocations: got name %d", got)
	}
	if got := a.Literal(firstLit).Lit.IntValue(); got != 1 {
		t.Fatalf("handle `firstLit` drifted after further allocations: got %d", got)
	}
}

func TestExprArenaExprRangeSurvivesInterleavedAllocation(t *testing.T) {
	in := intern.New()
	a := NewExprArena()

	// Build a tuple whose second element is itself a binary expression, so
	// allocating it interleaves extra pushes into the shared exprs arena
	// between the tuple's own element roots.
	elemA := a.AllocIdent(dummySpan(), in.Intern("a"))
	left := a.AllocIdent(dummySpan(), in.Intern("b"))
	right := a.AllocIdent(dummySpan(), in.Intern("c"))
	elemB := a.AllocBinary(dummySpan(), OpAdd, left, right)

	tupleID := a.AllocTuple(dummySpan(), []ExprID{elemA, elemB})
	elems := a.GetExprRange(a.Tuple(tupleID).Elems)

	if len(elems) != 2 || elems[0] != elemA || elems[1] != elemB {
		t.Fatalf("tuple elements = %v, want [%d %d]", elems, elemA, elemB)
	}
}

func TestExprArenaCallArgsAndNamed(t *testing.T) {
	in := intern.New()
	a := NewExprArena()

	callee := a.AllocIdent(dummySpan(), in.Intern("f"))
	onlyArg := a.AllocIdent(dummySpan(), in.Intern("x"))
	namedVal := a.AllocIdent(dummySpan(), in.Intern("y"))

	callID := a.AllocCall(dummySpan(), callee, []ExprID{onlyArg}, []NamedExpr{
		{Name: in.Intern("opt"), Value: namedVal},
	})

	call := a.Call(callID)
	args := a.GetExprRange(call.Args)
	if len(args) != 1 || args[0] != onlyArg {
		t.Fatalf("Call.Args = %v, want [%d]", args, onlyArg)
	}
	named := a.NamedExprs(call.Named)
	if len(named) != 1 || named[0].Name != in.Intern("opt") || named[0].Value != namedVal {
		t.Fatalf("Call.Named = %+v", named)
	}
}

func TestExprArenaBlockStatements(t *testing.T) {
	in := intern.New()
	a := NewExprArena()

	s1 := a.AllocLet(dummySpan(), in.Intern("x"), NoTypeExprID, a.AllocLiteral(ExprLitInt, dummySpan(), token.Int(1)))
	s2 := a.AllocIdent(dummySpan(), in.Intern("x"))

	blockID := a.AllocBlock(dummySpan(), []Stmt{{Expr: s1}}, s2)
	block := a.Block(blockID)

	stmts := a.Stmts(block.Stmts)
	if len(stmts) != 1 || stmts[0].Expr != s1 {
		t.Fatalf("Block.Stmts = %+v", stmts)
	}
	if block.Result != s2 {
		t.Fatalf("Block.Result = %d, want %d", block.Result, s2)
	}
}

func TestExprArenaMatchArmsAndPatterns(t *testing.T) {
	in := intern.New()
	a := NewExprArena()

	scrutinee := a.AllocIdent(dummySpan(), in.Intern("v"))
	wildcard := a.AllocPattern(Pattern{Kind: PatternWildcard, Span: dummySpan()})
	body := a.AllocLiteral(ExprLitInt, dummySpan(), token.Int(0))

	matchID := a.AllocMatchExpr(dummySpan(), scrutinee, []Arm{
		{Pattern: wildcard, Guard: NoExprID, Body: body},
	})
	arms := a.Arms(a.MatchExpr(matchID).Arms)
	if len(arms) != 1 || arms[0].Pattern != wildcard || arms[0].Body != body {
		t.Fatalf("Arms = %+v", arms)
	}
	if got := a.GetPattern(wildcard).Kind; got != PatternWildcard {
		t.Fatalf("pattern kind = %v", got)
	}
}

func TestExprArenaSeqAndFnExp(t *testing.T) {
	in := intern.New()
	a := NewExprArena()

	bindVal := a.AllocLiteral(ExprLitInt, dummySpan(), token.Int(7))
	result := a.AllocIdent(dummySpan(), in.Intern("out"))
	seqID := a.AllocSeq(dummySpan(), SeqRun, []SeqBinding{
		{Name: in.Intern("out"), Value: bindVal},
	}, result)

	seq := a.Seq(seqID)
	if seq.Kind != SeqRun || seq.Result != result {
		t.Fatalf("Seq = %+v", seq)
	}
	bindings := a.SeqBindings(seq.Bindings)
	if len(bindings) != 1 || bindings[0].Name != in.Intern("out") {
		t.Fatalf("SeqBindings = %+v", bindings)
	}

	arg := a.AllocIdent(dummySpan(), in.Intern("xs"))
	fnExpID := a.AllocFnExp(dummySpan(), FnExpLen, nil, arg)
	fnExp := a.FnExp(fnExpID)
	if fnExp.Kind != FnExpLen || fnExp.Positional != arg {
		t.Fatalf("FnExp = %+v", fnExp)
	}
}

func TestExprArenaTemplateParts(t *testing.T) {
	in := intern.New()
	a := NewExprArena()

	hole := a.AllocIdent(dummySpan(), in.Intern("name"))
	tmplID := a.AllocTemplate(dummySpan(), []TemplatePart{
		{Text: in.Intern("hello "), Value: NoExprID},
		{Value: hole},
		{Text: in.Intern("!"), Value: NoExprID},
	})

	parts := a.TemplateParts(a.Template(tmplID))
	if len(parts) != 3 {
		t.Fatalf("len(parts) = %d, want 3", len(parts))
	}
	if parts[1].Value != hole {
		t.Fatalf("parts[1].Value = %d, want %d", parts[1].Value, hole)
	}
}

func TestExprArenaGetExprPanicsOnZeroHandle(t *testing.T) {
	a := NewExprArena()
	defer func() {
		if recover() == nil {
			t.Fatalf("GetExpr(NoExprID) did not panic")
		}
	}()
	a.GetExpr(NoExprID)
}
