package parser

import (
	"testing"

	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/intern"
	"ori/internal/source"
	"ori/internal/token"
)

// listBuilder assembles a *token.List by hand, the way a hand-written
// parser test must when it isn't driving the lexer end to end.
type listBuilder struct {
	list *token.List
}

func newListBuilder() *listBuilder {
	return &listBuilder{list: token.NewList(32)}
}

func (b *listBuilder) push(k token.Kind) *listBuilder {
	b.list.Push(k, source.Span{})
	return b
}

func (b *listBuilder) bare(tag token.Tag) *listBuilder { return b.push(token.Bare(tag)) }

func (b *listBuilder) ident(in *intern.Interner, s string) *listBuilder {
	return b.push(token.Str(token.TagIdent, in.Intern(s)))
}

func (b *listBuilder) eof() *token.List {
	b.list.Push(token.Bare(token.TagEOF), source.Span{})
	return b.list
}

// TestParseSimpleFunction exercises a full `@name(params) -> Ret = body`
// declaration end to end: named identity, param count, a typed return
// annotation, and a binary-expression body climbed through the
// precedence table.
func TestParseSimpleFunction(t *testing.T) {
	in := intern.New()
	b := newListBuilder()
	list := b.
		bare(token.TagAt).ident(in, "add").
		bare(token.TagLParen).
		ident(in, "x").bare(token.TagColon).bare(token.TagKwInt).
		bare(token.TagComma).
		ident(in, "y").bare(token.TagColon).bare(token.TagKwInt).
		bare(token.TagRParen).
		bare(token.TagArrow).bare(token.TagKwInt).
		bare(token.TagAssign).
		ident(in, "x").bare(token.TagPlus).ident(in, "y").
		eof()

	arena := ast.NewExprArena()
	res := Parse(list, in, arena, Options{})

	if res.ErrorCount != 0 {
		t.Fatalf("unexpected errors: %d", res.ErrorCount)
	}
	if len(res.Module.Functions) != 1 {
		t.Fatalf("Functions = %d, want 1", len(res.Module.Functions))
	}
	fn := res.Module.Functions[0]
	if s, _ := in.Lookup(fn.Name); s != "add" {
		t.Fatalf("Name = %q, want add", s)
	}
	params := arena.Params(fn.Params)
	if len(params) != 2 {
		t.Fatalf("Params = %d, want 2", len(params))
	}
	if !fn.RetType.IsValid() {
		t.Fatalf("RetType should be set")
	}
	body := arena.GetExpr(fn.Body)
	if body.Kind != ast.ExprBinary {
		t.Fatalf("Body.Kind = %v, want ExprBinary", body.Kind)
	}
	if arena.Binary(fn.Body).Op != ast.OpAdd {
		t.Fatalf("Body op = %v, want OpAdd", arena.Binary(fn.Body).Op)
	}
}

// TestParseCallMultiPositionalArgsReportsE1011 exercises the named-argument
// rule: a call with two or more positional arguments is an error, but the
// Call node is still produced so parsing continues.
func TestParseCallMultiPositionalArgsReportsE1011(t *testing.T) {
	in := intern.New()
	var got []diag.Code
	reporter := reporterFunc(func(code diag.Code, _ diag.Severity, _ source.Span, _ string, _ []diag.Note, _ []diag.Fix) {
		got = append(got, code)
	})

	b := newListBuilder()
	list := b.
		bare(token.TagAt).ident(in, "f").
		bare(token.TagLParen).bare(token.TagRParen).
		bare(token.TagAssign).
		ident(in, "g").
		bare(token.TagLParen).
		ident(in, "a").bare(token.TagComma).ident(in, "b").
		bare(token.TagRParen).
		eof()

	arena := ast.NewExprArena()
	res := Parse(list, in, arena, Options{Reporter: reporter})

	if len(res.Module.Functions) != 1 {
		t.Fatalf("Functions = %d, want 1", len(res.Module.Functions))
	}
	body := res.Module.Functions[0].Body
	if arena.GetExpr(body).Kind != ast.ExprCall {
		t.Fatalf("body should still be a Call despite the E1011 error")
	}
	call := arena.Call(body)
	if len(arena.GetExprRange(call.Args)) != 2 {
		t.Fatalf("call args = %d, want 2 (still recorded)", len(arena.GetExprRange(call.Args)))
	}
	foundE1011 := false
	for _, c := range got {
		if c == diag.MultiArgPositionalCall {
			foundE1011 = true
		}
	}
	if !foundE1011 {
		t.Fatalf("expected MultiArgPositionalCall to be reported, got %v", got)
	}
}

// TestParseNamedArgsCallIsClean exercises the arity>=2 escape hatch:
// `.name: value` named arguments never trip E1011.
func TestParseNamedArgsCallIsClean(t *testing.T) {
	in := intern.New()
	b := newListBuilder()
	list := b.
		bare(token.TagAt).ident(in, "f").
		bare(token.TagLParen).bare(token.TagRParen).
		bare(token.TagAssign).
		ident(in, "g").
		bare(token.TagLParen).
		bare(token.TagDot).ident(in, "a").bare(token.TagColon).ident(in, "x").
		bare(token.TagComma).
		bare(token.TagDot).ident(in, "b").bare(token.TagColon).ident(in, "y").
		bare(token.TagRParen).
		eof()

	arena := ast.NewExprArena()
	res := Parse(list, in, arena, Options{})
	if res.ErrorCount != 0 {
		t.Fatalf("unexpected errors: %d", res.ErrorCount)
	}
	call := arena.Call(res.Module.Functions[0].Body)
	if len(arena.NamedExprs(call.Named)) != 2 {
		t.Fatalf("named args = %d, want 2", len(arena.NamedExprs(call.Named)))
	}
}

// TestParseTopLevelErrorRecovers is the P6 property guard: a single
// malformed top-level token does not swallow the function that follows it,
// and yields exactly one recorded error.
func TestParseTopLevelErrorRecovers(t *testing.T) {
	in := intern.New()
	b := newListBuilder()
	list := b.
		bare(token.TagPlus). // garbage top-level token
		bare(token.TagAt).ident(in, "ok").
		bare(token.TagLParen).bare(token.TagRParen).
		bare(token.TagAssign).
		ident(in, "ok").
		eof()

	arena := ast.NewExprArena()
	res := Parse(list, in, arena, Options{})

	if res.ErrorCount != 1 {
		t.Fatalf("ErrorCount = %d, want 1", res.ErrorCount)
	}
	if len(res.Module.Functions) != 1 {
		t.Fatalf("Functions = %d, want 1 (recovery should still find it)", len(res.Module.Functions))
	}
}

// TestParseUseAfterDeclIsError exercises the import-ordering rule (E1008):
// a `use` after a function declaration is recorded as an error but the
// Uses list still gets the entry.
func TestParseUseAfterDeclIsError(t *testing.T) {
	in := intern.New()
	var got []diag.Code
	reporter := reporterFunc(func(code diag.Code, _ diag.Severity, _ source.Span, _ string, _ []diag.Note, _ []diag.Fix) {
		got = append(got, code)
	})

	b := newListBuilder()
	list := b.
		bare(token.TagAt).ident(in, "f").
		bare(token.TagLParen).bare(token.TagRParen).
		bare(token.TagAssign).
		ident(in, "f").
		bare(token.TagKwUse).ident(in, "pkg").bare(token.TagSemicolon).
		eof()

	arena := ast.NewExprArena()
	res := Parse(list, in, arena, Options{Reporter: reporter})

	if len(res.Module.Uses) != 1 {
		t.Fatalf("Uses = %d, want 1", len(res.Module.Uses))
	}
	found := false
	for _, c := range got {
		if c == diag.ImportAfterDecl {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ImportAfterDecl, got %v", got)
	}
}

// TestParseLambdaForms exercises the bare single-param and parenthesized
// multi-param lambda forms, disambiguated from a tuple/grouping expression
// by the bounded `->` lookahead.
func TestParseLambdaForms(t *testing.T) {
	in := intern.New()
	b := newListBuilder()
	list := b.
		bare(token.TagAt).ident(in, "f").
		bare(token.TagLParen).bare(token.TagRParen).
		bare(token.TagAssign).
		bare(token.TagLParen).ident(in, "x").bare(token.TagComma).ident(in, "y").bare(token.TagRParen).
		bare(token.TagArrow).
		ident(in, "x").bare(token.TagPlus).ident(in, "y").
		eof()

	arena := ast.NewExprArena()
	res := Parse(list, in, arena, Options{})
	if res.ErrorCount != 0 {
		t.Fatalf("unexpected errors: %d", res.ErrorCount)
	}
	body := res.Module.Functions[0].Body
	if arena.GetExpr(body).Kind != ast.ExprLambda {
		t.Fatalf("body = %v, want ExprLambda", arena.GetExpr(body).Kind)
	}
	if len(arena.Params(arena.Lambda(body).Params)) != 2 {
		t.Fatalf("lambda params = %d, want 2", len(arena.Params(arena.Lambda(body).Params)))
	}
}

// TestParseTupleVsGroup confirms a multi-element parenthesized list becomes
// a tuple; the single-expression group case is not checked here.
func TestParseTupleVsGroup(t *testing.T) {
	in := intern.New()
	b := newListBuilder()
	list := b.
		bare(token.TagAt).ident(in, "f").
		bare(token.TagLParen).bare(token.TagRParen).
		bare(token.TagAssign).
		bare(token.TagLParen).
		ident(in, "x").bare(token.TagComma).ident(in, "y").
		bare(token.TagRParen).
		eof()

	arena := ast.NewExprArena()
	res := Parse(list, in, arena, Options{})
	if res.ErrorCount != 0 {
		t.Fatalf("unexpected errors: %d", res.ErrorCount)
	}
	body := res.Module.Functions[0].Body
	if arena.GetExpr(body).Kind != ast.ExprTuple {
		t.Fatalf("body = %v, want ExprTuple", arena.GetExpr(body).Kind)
	}
}

type reporterFunc func(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix)

func (f reporterFunc) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	f(code, sev, primary, msg, notes, fixes)
}
