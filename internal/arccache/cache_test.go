package arccache

import (
	"os"
	"testing"

	"ori/internal/arc"
	"ori/internal/intern"
)

func sampleFunction(in *intern.Interner) arc.Function {
	x := in.Intern("x")
	instrs := []arc.Instr{
		{Op: arc.OpRetain, Name: x, Site: 1},
		{Op: arc.OpRelease, Name: x, Site: 1},
		{Op: arc.OpMove, Name: x, Site: 2},
	}
	return arc.Function{Name: in.Intern("f"), ContentHash: [32]byte{1, 2, 3}, Instructions: instrs}
}

func TestCachePutThenGetRoundTrips(t *testing.T) {
	in := intern.New()
	cache, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	fn := sampleFunction(in)

	if err := cache.Put(in, fn); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok := cache.Get(in, fn.ContentHash)
	if !ok {
		t.Fatalf("expected a hit after Put")
	}
	if got.Name != fn.Name || got.ContentHash != fn.ContentHash {
		t.Fatalf("round-tripped function mismatch: %+v vs %+v", got, fn)
	}
	if len(got.Instructions) != len(fn.Instructions) {
		t.Fatalf("instruction count mismatch: got %d want %d", len(got.Instructions), len(fn.Instructions))
	}
	for i, instr := range fn.Instructions {
		if got.Instructions[i] != instr {
			t.Fatalf("instr[%d] = %+v, want %+v", i, got.Instructions[i], instr)
		}
	}
}

func TestCacheMissForUnknownKey(t *testing.T) {
	in := intern.New()
	cache, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := cache.Get(in, [32]byte{9, 9, 9}); ok {
		t.Fatalf("expected a miss for a key never Put")
	}
}

func TestCacheHas(t *testing.T) {
	in := intern.New()
	cache, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	fn := sampleFunction(in)
	if cache.Has(fn.ContentHash) {
		t.Fatalf("expected Has to be false before Put")
	}
	if err := cache.Put(in, fn); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !cache.Has(fn.ContentHash) {
		t.Fatalf("expected Has to be true after Put")
	}
}

func TestCacheCorruptedEntryIsMissNotError(t *testing.T) {
	in := intern.New()
	cache, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	fn := sampleFunction(in)
	if err := cache.Put(in, fn); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := os.WriteFile(cache.pathFor(fn.ContentHash), []byte("not msgpack at all"), 0o644); err != nil {
		t.Fatalf("corrupting entry: %v", err)
	}
	if _, ok := cache.Get(in, fn.ContentHash); ok {
		t.Fatalf("expected a corrupted entry to miss, not panic or error out")
	}
}

func TestCacheClearRemovesEntries(t *testing.T) {
	in := intern.New()
	cache, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	fn := sampleFunction(in)
	if err := cache.Put(in, fn); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := cache.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if cache.Has(fn.ContentHash) {
		t.Fatalf("expected no entries to survive Clear")
	}
}

func TestNilCacheIsInert(t *testing.T) {
	var cache *Cache
	in := intern.New()
	fn := sampleFunction(in)
	if err := cache.Put(in, fn); err != nil {
		t.Fatalf("Put on nil cache should be a no-op, got %v", err)
	}
	if _, ok := cache.Get(in, fn.ContentHash); ok {
		t.Fatalf("Get on nil cache should always miss")
	}
	if cache.Has(fn.ContentHash) {
		t.Fatalf("Has on nil cache should always be false")
	}
	if err := cache.Clear(); err != nil {
		t.Fatalf("Clear on nil cache should be a no-op, got %v", err)
	}
}
