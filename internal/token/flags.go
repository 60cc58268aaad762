package token

// Flags is a bitmask of trivia and contextual facts attached to a token
// that do not participate in its grammatical identity. Per P3, two
// TokenLists are compared independent of position: Span is excluded from
// List.Equal and List.Fingerprint, while Kind and Flags both take part.
type Flags uint8

const (
	// FlagSpaceBefore records a single run of horizontal whitespace
	// immediately preceding this token on the same line.
	FlagSpaceBefore Flags = 1 << iota
	// FlagNewlineBefore records that at least one newline separates this
	// token from the previous one.
	FlagNewlineBefore
	// FlagTriviaBefore records that a comment sat between this token and
	// the previous one (the comment text itself lives in the lexer's
	// side-table comment stream, not in the token).
	FlagTriviaBefore
	// FlagLineStart records that this token is the first non-trivia token
	// on its source line.
	FlagLineStart
	// FlagHasError marks a token the lexer emitted while recovering from a
	// scan error (paired with Tag == TagError, or a malformed literal that
	// the lexer still chose to tokenize as best-effort).
	FlagHasError
	// FlagIsDoc marks a comment-derived token as a doc comment (a `//`
	// comment whose first character is one of the markers `#`, `*`, `!`
	// or `>`) rather than an ordinary comment.
	FlagIsDoc
	// FlagAdjacent records that this token is byte-adjacent to the
	// previous one (no whitespace or trivia at all), used to distinguish
	// e.g. `a.b` from `a . b` when reprinting.
	FlagAdjacent
	// FlagContextualKw marks a soft keyword (len, min, max) that the lexer
	// promoted to its keyword Tag via one-token lookahead, so consumers
	// can tell it apart from a keyword that is always reserved.
	FlagContextualKw
)

// Has reports whether all bits in want are set in f.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

// Any reports whether any bit in want is set in f.
func (f Flags) Any(want Flags) bool {
	return f&want != 0
}

// Set returns f with the bits in add set.
func (f Flags) Set(add Flags) Flags {
	return f | add
}

// Clear returns f with the bits in remove cleared.
func (f Flags) Clear(remove Flags) Flags {
	return f &^ remove
}
