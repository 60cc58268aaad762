package token

import (
	"testing"

	"ori/internal/intern"
	"ori/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

func TestTagCompactness(t *testing.T) {
	// P1: every defined tag must be representable below 128. tagCount
	// itself is checked at compile time by the array-size assertion in
	// tag.go; this test just pins the observable bound for any Tag value
	// actually produced by the lexer/parser.
	if int(tagCount) >= 128 {
		t.Fatalf("tagCount = %d, want < 128", tagCount)
	}
	if int(TagError) >= 128 {
		t.Fatalf("TagError = %d, want < 128", TagError)
	}
}

func TestListParallelArraysStayInSync(t *testing.T) {
	l := NewList(4)
	l.Push(Bare(TagLParen), sp(0, 1))
	l.PushWithFlags(Int(42), sp(2, 4), FlagSpaceBefore)
	l.Push(Bare(TagRParen), sp(4, 5))

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	if len(l.tokens) != len(l.tags) || len(l.tags) != len(l.flags) {
		t.Fatalf("parallel arrays diverged: tokens=%d tags=%d flags=%d",
			len(l.tokens), len(l.tags), len(l.flags))
	}
	for i := 0; i < l.Len(); i++ {
		want := l.Get(uint32(i)).Kind.Tag
		if got := l.TagAt(uint32(i)); got != want {
			t.Fatalf("TagAt(%d) = %v, want discriminant(%v) = %v", i, got, l.Get(uint32(i)).Kind, want)
		}
	}
	if l.FlagsAt(1) != FlagSpaceBefore {
		t.Fatalf("FlagsAt(1) = %v, want FlagSpaceBefore", l.FlagsAt(1))
	}
}

func TestListPositionIndependentEquality(t *testing.T) {
	// Two lists built from sources differing only in whitespace between
	// tokens (same kinds, same flags) must compare and hash equal (P3),
	// even though their spans differ.
	a := NewList(2)
	a.Push(Bare(TagKwLet), sp(0, 3))
	a.Push(Int(7), sp(4, 5))

	b := NewList(2)
	b.Push(Bare(TagKwLet), sp(0, 3))
	b.Push(Int(7), sp(10, 11)) // same kind, shifted span

	if !a.Equal(b) {
		t.Fatalf("lists differing only in span should be Equal")
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("lists differing only in span should have equal Fingerprint")
	}

	c := NewList(2)
	c.Push(Bare(TagKwLet), sp(0, 3))
	c.Push(Int(8), sp(4, 5)) // different literal value

	if a.Equal(c) {
		t.Fatalf("lists with different literal payloads should not be Equal")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatalf("lists with different literal payloads should not collide (in this case)")
	}

	d := NewList(2)
	d.PushWithFlags(Bare(TagKwLet), sp(0, 3), FlagNewlineBefore)
	d.Push(Int(7), sp(4, 5))

	if a.Equal(d) {
		t.Fatalf("lists differing in flags should not be Equal")
	}
}

func TestGetRangePanicsOutOfBounds(t *testing.T) {
	l := NewList(1)
	l.Push(Bare(TagEOF), sp(0, 0))

	defer func() {
		if recover() == nil {
			t.Fatalf("GetRange should panic on an out-of-bounds capture")
		}
	}()
	_ = l.GetRange(NewCapture(0, 5))
}

func TestTryGetRangeReportsOutOfBounds(t *testing.T) {
	l := NewList(1)
	l.Push(Bare(TagEOF), sp(0, 0))

	if _, ok := l.TryGetRange(NewCapture(0, 5)); ok {
		t.Fatalf("TryGetRange should report false for an out-of-bounds capture")
	}
	toks, ok := l.TryGetRange(NewCapture(0, 1))
	if !ok || len(toks) != 1 {
		t.Fatalf("TryGetRange(0,1) = (%v, %v), want one token and true", toks, ok)
	}
}

func TestCaptureNormalizesEmptyToNone(t *testing.T) {
	if c := NewCapture(3, 3); !c.IsNone() {
		t.Fatalf("NewCapture(3,3) should normalize to None")
	}
	if c := NewCapture(5, 2); !c.IsNone() {
		t.Fatalf("NewCapture with start > end should normalize to None")
	}
	if !None.IsNone() {
		t.Fatalf("the zero Capture must be None")
	}
}

func TestKindRoundTripsLiteralPayloads(t *testing.T) {
	ii := intern.New()
	name := ii.Intern("frobnicate")

	k := Str(TagIdent, name)
	if k.StrName() != name {
		t.Fatalf("StrName() = %d, want %d", k.StrName(), name)
	}

	f := Float(3.5)
	if f.FloatValue() != 3.5 {
		t.Fatalf("FloatValue() = %v, want 3.5", f.FloatValue())
	}

	dur := Duration(90_000_000_000, DurationSeconds)
	if dur.DurationNanos() != 90_000_000_000 {
		t.Fatalf("DurationNanos() = %d, want 90s in ns", dur.DurationNanos())
	}
	if dur.DurationRawUnit() != DurationSeconds {
		t.Fatalf("DurationRawUnit() = %v, want DurationSeconds", dur.DurationRawUnit())
	}

	sz := Size(2048, SizeKilobytes)
	if sz.SizeBytesValue() != 2048 {
		t.Fatalf("SizeBytesValue() = %d, want 2048", sz.SizeBytesValue())
	}
}

func TestSoftKeywordsAreNotHardKeywords(t *testing.T) {
	for _, spelling := range []string{"len", "min", "max"} {
		if _, ok := LookupKeyword(spelling); ok {
			t.Fatalf("%q must not resolve as a hard keyword", spelling)
		}
		if _, ok := LookupSoftKeyword(spelling); !ok {
			t.Fatalf("%q should resolve as a soft keyword", spelling)
		}
	}
}
