package arc

import (
	"testing"

	"ori/internal/ast"
	"ori/internal/intern"
	"ori/internal/source"
	"ori/internal/typeinfo"
	"ori/internal/typer"
	"ori/internal/types"
)

func TestAnalyzeFunctionSingleUseIsMove(t *testing.T) {
	in := intern.New()
	arena := ast.NewExprArena()
	pool := types.NewPool()
	info := typeinfo.NewStore(pool, nil)

	x := in.Intern("x")
	use := arena.AllocIdent(source.Span{}, x)
	res := typer.Result{ExprTypes: map[ast.ExprID]types.Idx{use: types.Str}}

	instrs := analyzeFunction(arena, info, res, use)
	if len(instrs) != 1 || instrs[0].Op != OpMove || instrs[0].Name != x {
		t.Fatalf("want a single OpMove for x, got %+v", instrs)
	}
}

func TestAnalyzeFunctionRepeatedUseRetainsAndReleases(t *testing.T) {
	in := intern.New()
	arena := ast.NewExprArena()
	pool := types.NewPool()
	info := typeinfo.NewStore(pool, nil)

	x := in.Intern("x")
	first := arena.AllocIdent(source.Span{}, x)
	second := arena.AllocIdent(source.Span{}, x)
	block := arena.AllocBlock(source.Span{}, []ast.Stmt{{Expr: first}}, second)

	res := typer.Result{ExprTypes: map[ast.ExprID]types.Idx{
		first:  types.Str,
		second: types.Str,
	}}

	instrs := analyzeFunction(arena, info, res, block)
	want := []OpKind{OpRetain, OpRelease, OpMove}
	if len(instrs) != len(want) {
		t.Fatalf("instrs = %+v, want %d ops", instrs, len(want))
	}
	for i, op := range want {
		if instrs[i].Op != op || instrs[i].Name != x {
			t.Fatalf("instr[%d] = %+v, want op %v for x", i, instrs[i], op)
		}
	}
	if instrs[0].Site != first || instrs[1].Site != first || instrs[2].Site != second {
		t.Fatalf("instrs sited wrong occurrences: %+v", instrs)
	}
}

func TestAnalyzeFunctionTrivialTypeProducesNoInstrs(t *testing.T) {
	in := intern.New()
	arena := ast.NewExprArena()
	pool := types.NewPool()
	info := typeinfo.NewStore(pool, nil)

	x := in.Intern("x")
	use := arena.AllocIdent(source.Span{}, x)
	res := typer.Result{ExprTypes: map[ast.ExprID]types.Idx{use: types.Int}}

	instrs := analyzeFunction(arena, info, res, use)
	if len(instrs) != 0 {
		t.Fatalf("trivial type should produce no ARC instructions, got %+v", instrs)
	}
}

func TestContentHashIsDeterministicAndSensitive(t *testing.T) {
	in := intern.New()
	name := in.Intern("f")
	x := in.Intern("x")

	a := []Instr{{Op: OpRetain, Name: x, Site: 1}, {Op: OpRelease, Name: x, Site: 1}, {Op: OpMove, Name: x, Site: 2}}
	b := []Instr{{Op: OpRetain, Name: x, Site: 1}, {Op: OpRelease, Name: x, Site: 1}, {Op: OpMove, Name: x, Site: 2}}
	c := []Instr{{Op: OpMove, Name: x, Site: 2}}

	if contentHash(name, a) != contentHash(name, b) {
		t.Fatalf("identical instruction lists must hash identically")
	}
	if contentHash(name, a) == contentHash(name, c) {
		t.Fatalf("different instruction lists must not collide")
	}
}

func TestBuildProducesOneFunctionPerDeclaration(t *testing.T) {
	in := intern.New()
	arena := ast.NewExprArena()
	pool := types.NewPool()
	info := typeinfo.NewStore(pool, nil)

	x := in.Intern("x")
	use := arena.AllocIdent(source.Span{}, x)
	res := typer.Result{ExprTypes: map[ast.ExprID]types.Idx{use: types.Str}}

	mod := ast.Module{Functions: []ast.Function{
		{Name: in.Intern("f"), Body: use},
	}}

	fns := Build(mod, arena, info, res)
	if len(fns) != 1 {
		t.Fatalf("len(fns) = %d, want 1", len(fns))
	}
	if fns[0].Name != in.Intern("f") {
		t.Fatalf("unexpected function name")
	}
	if len(fns[0].Instructions) != 1 || fns[0].Instructions[0].Op != OpMove {
		t.Fatalf("unexpected instructions: %+v", fns[0].Instructions)
	}
}
