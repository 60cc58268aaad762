package typer

import (
	"testing"

	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/intern"
	"ori/internal/source"
	"ori/internal/token"
	"ori/internal/types"
)

// TestCheckAddFunctionIsClean builds `@add(x: int, y: int) -> int = x + y`
// directly against the arena/pool (bypassing the parser, which has its
// own test suite) and checks it type-checks with zero errors.
func TestCheckAddFunctionIsClean(t *testing.T) {
	in := intern.New()
	arena := ast.NewExprArena()
	pool := types.NewPool()

	x, y := in.Intern("x"), in.Intern("y")
	xExpr := arena.AllocIdent(source.Span{}, x)
	yExpr := arena.AllocIdent(source.Span{}, y)
	body := arena.AllocBinary(source.Span{}, ast.OpAdd, xExpr, yExpr)

	intType := arena.AllocTypeExpr(ast.TypeExpr{Kind: ast.TyNamed, Name: in.Intern("int")})
	retType := arena.AllocTypeExpr(ast.TypeExpr{Kind: ast.TyNamed, Name: in.Intern("int")})
	params := arena.AllocParams([]ast.Param{
		{Name: x, TypeAnn: intType},
		{Name: y, TypeAnn: retType},
	})

	mod := ast.Module{Functions: []ast.Function{
		{Name: in.Intern("add"), Params: params, RetType: retType, Body: body},
	}}

	res := Check(mod, arena, pool, in, Options{})
	if res.ErrorCount != 0 {
		t.Fatalf("ErrorCount = %d, want 0", res.ErrorCount)
	}
	if res.ExprTypes[body] != types.Int {
		t.Fatalf("body type = %v, want Int", res.ExprTypes[body])
	}
}

// TestCheckMismatchedReturnTypeReportsError builds a function declared to
// return bool but whose body is an int literal.
func TestCheckMismatchedReturnTypeReportsError(t *testing.T) {
	in := intern.New()
	arena := ast.NewExprArena()
	pool := types.NewPool()

	body := arena.AllocLiteral(ast.ExprLitInt, source.Span{}, token.Int(1))
	retType := arena.AllocTypeExpr(ast.TypeExpr{Kind: ast.TyNamed, Name: in.Intern("bool")})

	var got []diag.Code
	reporter := reporterFunc(func(code diag.Code, _ diag.Severity, _ source.Span, _ string, _ []diag.Note, _ []diag.Fix) {
		got = append(got, code)
	})

	mod := ast.Module{Functions: []ast.Function{
		{Name: in.Intern("f"), RetType: retType, Body: body},
	}}

	res := Check(mod, arena, pool, in, Options{Reporter: reporter})
	if res.ErrorCount == 0 {
		t.Fatalf("expected an error for int body vs. bool return type")
	}
	found := false
	for _, c := range got {
		if c == diag.TypeMismatch {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected TypeMismatch, got %v", got)
	}
}

// TestCheckUnboundNameReportsError confirms an unresolved identifier is
// reported and synthesizes to Error rather than panicking.
func TestCheckUnboundNameReportsError(t *testing.T) {
	in := intern.New()
	arena := ast.NewExprArena()
	pool := types.NewPool()

	body := arena.AllocIdent(source.Span{}, in.Intern("nope"))
	var got []diag.Code
	reporter := reporterFunc(func(code diag.Code, _ diag.Severity, _ source.Span, _ string, _ []diag.Note, _ []diag.Fix) {
		got = append(got, code)
	})

	mod := ast.Module{Functions: []ast.Function{
		{Name: in.Intern("f"), Body: body},
	}}
	res := Check(mod, arena, pool, in, Options{Reporter: reporter})
	if res.ExprTypes[body] != types.Error {
		t.Fatalf("unbound ident should synthesize to Error, got %v", res.ExprTypes[body])
	}
	found := false
	for _, c := range got {
		if c == diag.UnboundName {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected UnboundName, got %v", got)
	}
}

// TestCheckStructLitFieldTypes registers a struct type def and checks a
// struct literal's field values against their declared types.
func TestCheckStructLitFieldTypes(t *testing.T) {
	in := intern.New()
	arena := ast.NewExprArena()
	pool := types.NewPool()

	pointName := in.Intern("Point")
	xField := in.Intern("x")
	intType := arena.AllocTypeExpr(ast.TypeExpr{Kind: ast.TyNamed, Name: in.Intern("int")})
	fields := arena.AllocFieldDefs([]ast.FieldDef{{Name: xField, TypeAnn: intType}})

	litVal := arena.AllocLiteral(ast.ExprLitInt, source.Span{}, token.Int(1))
	lit := arena.AllocStructLit(source.Span{}, pointName, []ast.FieldInit{{Name: xField, Value: litVal}})

	mod := ast.Module{
		TypeDefs:  []ast.TypeDef{{Name: pointName, Kind: ast.TypeDefStruct, Fields: fields}},
		Functions: []ast.Function{{Name: in.Intern("f"), Body: lit}},
	}
	res := Check(mod, arena, pool, in, Options{})
	if res.ErrorCount != 0 {
		t.Fatalf("ErrorCount = %d, want 0", res.ErrorCount)
	}
}

type reporterFunc func(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix)

func (f reporterFunc) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	f(code, sev, primary, msg, notes, fixes)
}
