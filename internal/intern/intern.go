// Package intern implements the string interner (C1): the compiler's single
// source of truth for turning identifier and literal text into stable,
// comparable handles.
package intern

import "fmt"

// Name is an opaque handle into an Interner. Two Names are equal iff the
// interner that produced them considers the underlying byte strings equal.
type Name uint32

// NameEmpty is the reserved sentinel denoting the empty string. It is
// interned first by New so it is always handle 0.
const NameEmpty Name = 0

// Interner maps byte slices to stable Name handles. Lookups return the
// original bytes. Per §4.1, an Interner is single-owner per compilation
// session: callers sharing one across goroutines must synchronize
// externally (see internal/driver for the multi-session case, which gives
// each session its own Interner instead of sharing one).
type Interner struct {
	strings []string
	index   map[string]Name
}

// New constructs an Interner with NameEmpty already reserved for "".
func New() *Interner {
	in := &Interner{
		strings: make([]string, 0, 256),
		index:   make(map[string]Name, 256),
	}
	in.strings = append(in.strings, "")
	in.index[""] = NameEmpty
	return in
}

// Intern returns the stable handle for s, allocating one if this is the
// first time s has been seen. Intern(s) == Intern(s) always, and
// Intern(s) == Intern(t) iff the bytes of s and t are equal (P4).
func (in *Interner) Intern(s string) Name {
	if id, ok := in.index[s]; ok {
		return id
	}
	// Copy to avoid retaining the caller's backing array.
	cpy := string([]byte(s))
	id := Name(len(in.strings))
	in.strings = append(in.strings, cpy)
	in.index[cpy] = id
	return id
}

// InternBytes is a convenience wrapper around Intern for byte slices.
func (in *Interner) InternBytes(b []byte) Name {
	return in.Intern(string(b))
}

// Lookup returns the bytes originally interned for name, or false if name
// was never produced by this interner.
func (in *Interner) Lookup(name Name) (string, bool) {
	if int(name) >= len(in.strings) {
		return "", false
	}
	return in.strings[name], true
}

// MustLookup panics if name is not known to this interner.
func (in *Interner) MustLookup(name Name) string {
	s, ok := in.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("intern: unknown Name(%d)", name))
	}
	return s
}

// Len returns the number of distinct strings interned, including the
// reserved empty string.
func (in *Interner) Len() int {
	return len(in.strings)
}
