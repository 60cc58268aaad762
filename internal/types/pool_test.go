package types

import (
	"testing"

	"ori/internal/intern"
)

func TestPoolPrimitivesArePreseeded(t *testing.T) {
	p := NewPool()
	if p.Tag(Int) != TagInt || p.Tag(Bool) != TagBool || p.Tag(Error) != TagError {
		t.Fatalf("primitive tags not seeded as expected")
	}
	if got := p.List(Int); got < reservedPadding {
		t.Fatalf("first user type landed at %d, want >= %d", got, reservedPadding)
	}
}

func TestPoolStructuralInterningDedupes(t *testing.T) {
	p := NewPool()
	a := p.List(Int)
	b := p.List(Int)
	if a != b {
		t.Fatalf("List(Int) interned twice: %d != %d", a, b)
	}
	c := p.List(Float)
	if a == c {
		t.Fatalf("structurally distinct lists shared an Idx")
	}
}

func TestPoolTupleAndFunctionInterning(t *testing.T) {
	p := NewPool()
	tup1 := p.Tuple([]Idx{Int, Bool})
	tup2 := p.Tuple([]Idx{Int, Bool})
	if tup1 != tup2 {
		t.Fatalf("structurally identical tuples got different Idx")
	}
	if got := p.TupleElems(tup1); len(got) != 2 || got[0] != Int || got[1] != Bool {
		t.Fatalf("TupleElems = %v", got)
	}

	fn := p.Function([]Idx{Int, Str}, Bool)
	if got := p.FunctionParams(fn); len(got) != 2 || got[0] != Int || got[1] != Str {
		t.Fatalf("FunctionParams = %v", got)
	}
	if got := p.FunctionRet(fn); got != Bool {
		t.Fatalf("FunctionRet = %d, want Bool", got)
	}
}

func TestPoolStructAndEnum(t *testing.T) {
	in := intern.New()
	p := NewPool()
	name := in.Intern("Point")
	fieldX := in.Intern("x")
	fieldY := in.Intern("y")

	st := p.StructType(name, []StructField{{Name: fieldX, Type: Int}, {Name: fieldY, Type: Int}})
	if got := p.StructFields(st); len(got) != 2 || got[0].Name != fieldX {
		t.Fatalf("StructFields = %+v", got)
	}
	// Same name interns to the same struct Idx regardless of field list.
	again := p.StructType(name, nil)
	if again != st {
		t.Fatalf("StructType(name) re-interned under the same nominal name")
	}

	enumName := in.Intern("Shape")
	someVariant := in.Intern("Circle")
	en := p.EnumType(enumName, []EnumVariant{{Name: someVariant, Fields: []StructField{{Name: fieldX, Type: Int}}}})
	variants := p.EnumVariants(en)
	if len(variants) != 1 || variants[0].Name != someVariant {
		t.Fatalf("EnumVariants = %+v", variants)
	}
}

// TestPoolResolveFullyTerminatesOnCycle is the P7 property guard: a
// resolution cycle must not hang ResolveFully.
func TestPoolResolveFullyTerminatesOnCycle(t *testing.T) {
	in := intern.New()
	p := NewPool()
	a := p.Named(in.Intern("A"))
	b := p.Named(in.Intern("B"))
	p.SetResolution(a, b)
	p.SetResolution(b, a)

	got := p.ResolveFully(a)
	if got != a && got != b {
		t.Fatalf("ResolveFully on a cycle returned an unexpected Idx: %d", got)
	}
}

func TestPoolResolveFullyChasesChain(t *testing.T) {
	in := intern.New()
	p := NewPool()
	named := p.Named(in.Intern("IntAlias"))
	p.SetResolution(named, Int)
	if got := p.ResolveFully(named); got != Int {
		t.Fatalf("ResolveFully(named) = %d, want Int", got)
	}
	if got := p.ResolveFully(Int); got != Int {
		t.Fatalf("ResolveFully(Int) = %d, want Int (no-op on a concrete type)", got)
	}
}
