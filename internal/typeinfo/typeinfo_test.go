package typeinfo

import (
	"testing"

	"ori/internal/intern"
	"ori/internal/types"
)

func TestStorePrimitivesAreTrivial(t *testing.T) {
	pool := types.NewPool()
	s := NewStore(pool, nil)

	for _, idx := range []types.Idx{types.Int, types.Float, types.Bool, types.Ordering} {
		if info := s.Get(idx); !info.Trivial || info.Shape != ShapePrimitive {
			t.Fatalf("primitive %d = %+v, want trivial primitive", idx, info)
		}
	}
}

func TestStoreStrIsNonTrivialHandle(t *testing.T) {
	pool := types.NewPool()
	s := NewStore(pool, nil)
	if info := s.Get(types.Str); info.Trivial {
		t.Fatalf("str classified trivial, want non-trivial heap-backed")
	}
}

func TestStoreOptionTrivialityFollowsInner(t *testing.T) {
	pool := types.NewPool()
	s := NewStore(pool, nil)

	trivialOpt := pool.Option(types.Int)
	if !s.IsTrivial(trivialOpt) {
		t.Fatalf("Option(Int) should be trivial")
	}
	nonTrivialOpt := pool.Option(types.Str)
	if s.IsTrivial(nonTrivialOpt) {
		t.Fatalf("Option(Str) should be non-trivial")
	}
}

func TestStoreResultTrivialRequiresBothSides(t *testing.T) {
	pool := types.NewPool()
	s := NewStore(pool, nil)

	if !s.IsTrivial(pool.Result(types.Int, types.Bool)) {
		t.Fatalf("Result(Int, Bool) should be trivial")
	}
	if s.IsTrivial(pool.Result(types.Int, types.Str)) {
		t.Fatalf("Result(Int, Str) should be non-trivial (Err side is a Str)")
	}
}

func TestStoreStructTupleEnumTriviality(t *testing.T) {
	in := intern.New()
	pool := types.NewPool()
	s := NewStore(pool, nil)

	tup := pool.Tuple([]types.Idx{types.Int, types.Bool})
	if !s.IsTrivial(tup) {
		t.Fatalf("Tuple(Int, Bool) should be trivial")
	}

	structName := in.Intern("Point")
	st := pool.StructType(structName, []types.StructField{
		{Name: in.Intern("x"), Type: types.Int},
		{Name: in.Intern("label"), Type: types.Str},
	})
	if s.IsTrivial(st) {
		t.Fatalf("struct with a Str field should be non-trivial")
	}

	enumName := in.Intern("Maybe")
	en := pool.EnumType(enumName, []types.EnumVariant{
		{Name: in.Intern("Empty")},
		{Name: in.Intern("Full"), Fields: []types.StructField{{Name: in.Intern("v"), Type: types.Int}}},
	})
	if !s.IsTrivial(en) {
		t.Fatalf("enum with only trivial variant fields should be trivial")
	}
}

// TestStoreRecursiveStructIsConservativelyNonTrivial exercises the
// classifyingTrivial reentrancy guard: a struct that (indirectly)
// contains itself must come back false, never hang.
func TestStoreRecursiveStructIsConservativelyNonTrivial(t *testing.T) {
	in := intern.New()
	pool := types.NewPool()
	s := NewStore(pool, nil)

	name := in.Intern("Node")
	self := pool.Named(name)
	node := pool.StructType(name, []types.StructField{{Name: in.Intern("next"), Type: self}})
	pool.SetResolution(self, node)

	if s.IsTrivial(node) {
		t.Fatalf("a self-referential struct must classify as non-trivial")
	}
}

func TestStoreGetReentrantCycleReturnsError(t *testing.T) {
	in := intern.New()
	pool := types.NewPool()
	s := NewStore(pool, nil)

	name := in.Intern("Cyclic")
	named := pool.Named(name)
	st := pool.StructType(name, []types.StructField{{Name: in.Intern("f"), Type: named}})
	pool.SetResolution(named, st)

	// Resolving st recurses into its own field (named -> st), tripping the
	// computing-set guard on the nested Get(named) -> Get(st) re-entry.
	// The call returning at all (rather than stack-overflowing) is the
	// property under test.
	_ = s.Get(st)
}
