package ast

import (
	"ori/internal/intern"
	"ori/internal/source"
	"ori/internal/token"
)

// PatternKind discriminates a match-arm or let/for-binding pattern.
type PatternKind uint8

const (
	PatternWildcard PatternKind = iota // `_`
	PatternBindIdent
	PatternLiteral
	PatternTuple
	PatternStruct       // `Name { field, ... }`
	PatternEnumVariant  // `Some(x)`, `Ok(x)`, `Err(e)`, `None`
	PatternOr           // `pat | pat`
)

// PatternRange is a Range over PatternID (used for tuple/struct sub-patterns).
type PatternRange = Range

// Pattern is the flat record every PatternID resolves to.
type Pattern struct {
	Kind PatternKind
	Span source.Span

	// Name carries the bound identifier (PatternBindIdent), the struct
	// type name (PatternStruct), or the variant name (PatternEnumVariant).
	Name intern.Name
	// Lit carries the literal payload for PatternLiteral.
	Lit token.Kind
	// Sub carries sub-patterns for PatternTuple, PatternStruct field
	// patterns, PatternEnumVariant payload patterns, and the two
	// alternatives of PatternOr (Sub.Len == 2).
	Sub PatternRange
}
