package token

import "testing"

func TestFlagsSetHasClear(t *testing.T) {
	var f Flags
	f = f.Set(FlagSpaceBefore)
	f = f.Set(FlagLineStart)

	if !f.Has(FlagSpaceBefore) {
		t.Fatalf("expected FlagSpaceBefore to be set")
	}
	if !f.Has(FlagLineStart) {
		t.Fatalf("expected FlagLineStart to be set")
	}
	if f.Has(FlagHasError) {
		t.Fatalf("did not expect FlagHasError to be set")
	}
	if !f.Any(FlagHasError | FlagLineStart) {
		t.Fatalf("Any should report true when at least one bit matches")
	}

	f = f.Clear(FlagSpaceBefore)
	if f.Has(FlagSpaceBefore) {
		t.Fatalf("FlagSpaceBefore should be cleared")
	}
	if !f.Has(FlagLineStart) {
		t.Fatalf("clearing one flag must not disturb another")
	}
}

func TestFlagsZeroValueHasNothing(t *testing.T) {
	var f Flags
	all := []Flags{
		FlagSpaceBefore, FlagNewlineBefore, FlagTriviaBefore, FlagLineStart,
		FlagHasError, FlagIsDoc, FlagAdjacent, FlagContextualKw,
	}
	for _, bit := range all {
		if f.Has(bit) {
			t.Fatalf("zero Flags should not have bit %v set", bit)
		}
	}
}
