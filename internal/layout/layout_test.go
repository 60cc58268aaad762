package layout

import (
	"fmt"
	"testing"

	"ori/internal/intern"
	"ori/internal/typeinfo"
	"ori/internal/types"
)

func newResolver() (*types.Pool, *Resolver) {
	pool := types.NewPool()
	infos := typeinfo.NewStore(pool, nil)
	return pool, NewResolver(pool, infos, nil)
}

func TestResolvePrimitives(t *testing.T) {
	_, r := newResolver()
	if got := r.Resolve(types.Int); got.Kind != KindI64 {
		t.Fatalf("Int = %+v, want i64", got)
	}
	if got := r.Resolve(types.Bool); got.Kind != KindI8 {
		t.Fatalf("Bool = %+v, want i8", got)
	}
	if got := r.Resolve(types.Str); got.Kind != KindPtr {
		t.Fatalf("Str = %+v, want ptr", got)
	}
}

func TestResolveOption(t *testing.T) {
	pool, r := newResolver()
	opt := pool.Option(types.Int)
	got := r.Resolve(opt)
	if got.Kind != KindComposite || len(got.Elems) != 2 || got.Elems[0].Kind != KindI8 || got.Elems[1].Kind != KindI64 {
		t.Fatalf("Option(Int) = %+v", got)
	}
}

func TestResolveResultPicksLargerPayload(t *testing.T) {
	in := intern.New()
	pool, r := newResolver()

	name := in.Intern("Big")
	big := pool.StructType(name, []types.StructField{
		{Name: in.Intern("a"), Type: types.Int},
		{Name: in.Intern("b"), Type: types.Int},
	})
	res := pool.Result(types.Bool, big)
	got := r.Resolve(res)
	if got.Kind != KindComposite || len(got.Elems) != 2 {
		t.Fatalf("Result = %+v", got)
	}
	if got.Elems[1].Kind != KindNamedStruct {
		t.Fatalf("Result should pick the bigger (struct) payload, got %+v", got.Elems[1])
	}
}

func TestResolveStructTwoPhase(t *testing.T) {
	in := intern.New()
	pool, r := newResolver()

	name := in.Intern("Point")
	st := pool.StructType(name, []types.StructField{
		{Name: in.Intern("x"), Type: types.Int},
		{Name: in.Intern("y"), Type: types.Int},
	})
	got := r.Resolve(st)
	if got.Kind != KindNamedStruct || len(got.Elems) != 2 {
		t.Fatalf("Point = %+v", got)
	}
	// Re-resolving must hand back the same cached name.
	again := r.Resolve(st)
	if again.Name != got.Name {
		t.Fatalf("struct handle not stable across calls: %q != %q", again.Name, got.Name)
	}
}

// TestResolveSelfReferentialStructDoesNotHang is the P9 property guard:
// a struct containing itself through a Named indirection must resolve
// without recursing forever, returning its own opaque handle in the cycle
// position.
func TestResolveSelfReferentialStructDoesNotHang(t *testing.T) {
	in := intern.New()
	pool, r := newResolver()

	name := in.Intern("Node")
	self := pool.Named(name)
	node := pool.StructType(name, []types.StructField{{Name: in.Intern("next"), Type: self}})
	pool.SetResolution(self, node)

	got := r.Resolve(node)
	if got.Kind != KindNamedStruct {
		t.Fatalf("Node = %+v, want named struct", got)
	}
	if len(got.Elems) != 1 || got.Elems[0].Kind != KindNamedStruct || got.Elems[0].Name != got.Name {
		t.Fatalf("self-referential field should resolve back to the same opaque handle, got %+v", got.Elems)
	}
}

func TestResolveEnumAllUnitOmitsPayload(t *testing.T) {
	in := intern.New()
	pool, r := newResolver()

	name := in.Intern("Color")
	en := pool.EnumType(name, []types.EnumVariant{
		{Name: in.Intern("Red")},
		{Name: in.Intern("Green")},
		{Name: in.Intern("Blue")},
	})
	got := r.Resolve(en)
	if len(got.Elems) != 1 || got.Elems[0].Kind != KindI8 {
		t.Fatalf("all-unit enum = %+v, want just {i8 tag}", got.Elems)
	}
}

func TestResolveEnumWithPayloadSizesArray(t *testing.T) {
	in := intern.New()
	pool, r := newResolver()

	name := in.Intern("Maybe")
	en := pool.EnumType(name, []types.EnumVariant{
		{Name: in.Intern("None")},
		{Name: in.Intern("Some"), Fields: []types.StructField{{Name: in.Intern("v"), Type: types.Int}}},
	})
	got := r.Resolve(en)
	if len(got.Elems) != 2 || got.Elems[1].Kind != KindArrayI64 || got.Elems[1].Count != 1 {
		t.Fatalf("Maybe enum = %+v, want {i8, [1 x i64]}", got.Elems)
	}
}

// TestResolveDepthGuardFallsBackToI64 exercises the recursion-depth guard
// with a long chain of nested single-field structs.
func TestResolveDepthGuardFallsBackToI64(t *testing.T) {
	in := intern.New()
	pool, r := newResolver()
	field := in.Intern("v")

	inner := types.Int
	for i := 0; i < maxDepth+4; i++ {
		name := in.Intern(fmt.Sprintf("Wrap%d", i))
		st := pool.StructType(name, []types.StructField{{Name: field, Type: inner}})
		inner = st
	}
	got := r.Resolve(inner)
	if got.Kind != KindNamedStruct {
		t.Fatalf("outermost wrap = %+v, want named struct", got)
	}
}
