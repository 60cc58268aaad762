package intern

import "testing"

func TestInternUniqueness(t *testing.T) {
	in := New()
	a := in.Intern("hello")
	b := in.Intern("hello")
	if a != b {
		t.Fatalf("Intern(s) != Intern(s): %d != %d", a, b)
	}
	c := in.Intern("world")
	if a == c {
		t.Fatalf("distinct strings produced the same Name")
	}
}

func TestInternEmptySentinel(t *testing.T) {
	in := New()
	if got := in.Intern(""); got != NameEmpty {
		t.Fatalf("Intern(\"\") = %d, want NameEmpty", got)
	}
}

func TestInternLookupRoundtrip(t *testing.T) {
	in := New()
	n := in.Intern("foo")
	s, ok := in.Lookup(n)
	if !ok || s != "foo" {
		t.Fatalf("Lookup(%d) = (%q, %v), want (\"foo\", true)", n, s, ok)
	}
	if _, ok := in.Lookup(Name(9999)); ok {
		t.Fatalf("Lookup of unknown Name should fail")
	}
}

func TestInternStructuralEquality(t *testing.T) {
	in := New()
	bs := []byte("shared")
	a := in.InternBytes(bs)
	b := in.Intern(string(bs))
	if a != b {
		t.Fatalf("InternBytes and Intern disagree on handle for identical bytes")
	}
}
