package token

import (
	"fortio.org/safecast"

	"ori/internal/source"
)

// List stores a whole file's tokens as three parallel dense arrays:
// tokens (kind+span), tags (one byte per token, derived from kind), and
// flags. §4.2 requires the three arrays to stay the same length and
// tags[i] to always equal the discriminant of tokens[i].kind (P2); Push
// and PushWithFlags below are the only way to grow a List, so that
// invariant holds by construction.
type List struct {
	tokens []Token
	tags   []Tag
	flags  []Flags
}

// NewList constructs an empty List with capacity pre-reserved for n tokens.
func NewList(n int) *List {
	return &List{
		tokens: make([]Token, 0, n),
		tags:   make([]Tag, 0, n),
		flags:  make([]Flags, 0, n),
	}
}

// Push appends a token with no flags set.
func (l *List) Push(k Kind, span source.Span) {
	l.PushWithFlags(k, span, 0)
}

// PushWithFlags appends a token carrying the given trivia flags, updating
// tokens, tags, and flags at the same index (P2).
func (l *List) PushWithFlags(k Kind, span source.Span, f Flags) {
	l.tokens = append(l.tokens, Token{Kind: k, Span: span})
	l.tags = append(l.tags, k.Tag)
	l.flags = append(l.flags, f)
}

// Len returns the number of tokens in the list.
func (l *List) Len() int {
	return len(l.tokens)
}

// Get returns the Token (kind+span) at index i.
func (l *List) Get(i uint32) Token {
	return l.tokens[i]
}

// TagAt returns the discriminant recorded for the token at index i.
// It always equals Get(i).Kind.Tag (P2).
func (l *List) TagAt(i uint32) Tag {
	return l.tags[i]
}

// FlagsAt returns the trivia flags recorded for the token at index i.
func (l *List) FlagsAt(i uint32) Flags {
	return l.flags[i]
}

// GetRange materializes every Token in the Capture as a slice. Per §4.2,
// this panics if the Capture runs past the end of the list; use
// TryGetRange when that is a possibility.
func (l *List) GetRange(c Capture) []Token {
	if c.IsNone() {
		return nil
	}
	out := make([]Token, c.Len())
	copy(out, l.tokens[c.Start():c.End()])
	return out
}

// TryGetRange is GetRange guarded against a Capture that runs past the end
// of the list (e.g. one computed against a since-truncated List), returning
// ok == false instead of panicking.
func (l *List) TryGetRange(c Capture) (tokens []Token, ok bool) {
	if c.IsNone() {
		return nil, true
	}
	if int(c.End()) > l.Len() {
		return nil, false
	}
	return l.GetRange(c), true
}

// CaptureFor builds a normalized Capture over token indices [s, e), using
// safecast to catch any accidental int overflow at the 32-bit boundary
// before it silently truncates.
func CaptureFor(s, e int) Capture {
	return NewCapture(safecast.MustConvert[uint32](s), safecast.MustConvert[uint32](e))
}

// Fingerprint is a position-independent digest of a List: it folds in
// every token's Kind (Tag and literal Payload) and its Flags, but never
// its Span or the derived tags array. Two Lists differing only in the
// width of whitespace between tokens produce the same Fingerprint (P3);
// adding or removing whitespace or a newline changes FlagSpaceBefore,
// FlagNewlineBefore or FlagAdjacent and so changes the Fingerprint.
func (l *List) Fingerprint() uint64 {
	var h uint64 = 1469598103934665603 // FNV-1a offset basis
	const prime uint64 = 1099511628211
	for i, tok := range l.tokens {
		h ^= uint64(tok.Kind.Tag)
		h *= prime
		h ^= tok.Kind.Payload
		h *= prime
		h ^= uint64(l.flags[i])
		h *= prime
	}
	return h
}

// Equal reports whether l and other carry the same sequence of token Kinds
// and Flags, ignoring Span and the derived tags array entirely (P3).
func (l *List) Equal(other *List) bool {
	if len(l.tokens) != len(other.tokens) {
		return false
	}
	for i := range l.tokens {
		if l.tokens[i].Kind != other.tokens[i].Kind {
			return false
		}
		if l.flags[i] != other.flags[i] {
			return false
		}
	}
	return true
}
