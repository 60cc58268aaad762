package token

import (
	"math"

	"ori/internal/intern"
)

// DurationUnit enumerates the SI duration suffixes the lexer accepts.
type DurationUnit uint8

const (
	DurationNanoseconds DurationUnit = iota
	DurationMicroseconds
	DurationMilliseconds
	DurationSeconds
	DurationMinutes
	DurationHours
)

// SizeUnit enumerates the decimal (never binary-power, per §9's Open
// Question) size suffixes the lexer accepts.
type SizeUnit uint8

const (
	SizeBytes SizeUnit = iota
	SizeKilobytes
	SizeMegabytes
	SizeGigabytes
	SizeTerabytes
)

// Multiplier returns the decimal (power-of-1000) multiplier for u.
func (u SizeUnit) Multiplier() uint64 {
	m := uint64(1)
	for i := SizeUnit(0); i < u; i++ {
		m *= 1000
	}
	return m
}

// Multiplier returns the nanosecond multiplier for u.
func (u DurationUnit) Multiplier() int64 {
	switch u {
	case DurationNanoseconds:
		return 1
	case DurationMicroseconds:
		return 1_000
	case DurationMilliseconds:
		return 1_000_000
	case DurationSeconds:
		return 1_000_000_000
	case DurationMinutes:
		return 60 * 1_000_000_000
	case DurationHours:
		return 3600 * 1_000_000_000
	default:
		return 1
	}
}

// Kind is the tagged union every Token carries. It is kept at or under 16
// bytes (Tag plus one uint64 payload word, aligned) so that Token itself
// stays compact (§4.2). Exactly one accessor below is meaningful for a
// given Tag; the others are zero.
//
// Float literals store their IEEE-754 bit pattern in Payload (via
// math.Float64bits) rather than a float64 field, so two Kinds compare and
// hash by total byte equality instead of float equality (NaN-safe, per §3).
type Kind struct {
	Tag     Tag
	Payload uint64
}

// Int constructs an integer literal Kind.
func Int(v uint64) Kind { return Kind{Tag: TagIntLit, Payload: v} }

// IntValue returns the literal's value; only meaningful when Tag == TagIntLit.
func (k Kind) IntValue() uint64 { return k.Payload }

// Float constructs a float literal Kind, storing the bit pattern of v.
func Float(v float64) Kind { return Kind{Tag: TagFloatLit, Payload: math.Float64bits(v)} }

// FloatBits returns the raw IEEE-754 bit pattern; only meaningful when
// Tag == TagFloatLit.
func (k Kind) FloatBits() uint64 { return k.Payload }

// FloatValue decodes the stored bit pattern back into a float64.
func (k Kind) FloatValue() float64 { return math.Float64frombits(k.Payload) }

// Char constructs a character literal Kind.
func Char(r rune) Kind { return Kind{Tag: TagCharLit, Payload: uint64(r)} }

// CharValue returns the literal rune; only meaningful when Tag == TagCharLit.
func (k Kind) CharValue() rune { return rune(k.Payload) }

// Str constructs a string-literal (or identifier) Kind from an interned Name.
func Str(tag Tag, name intern.Name) Kind { return Kind{Tag: tag, Payload: uint64(name)} }

// StrName returns the interned Name payload; meaningful for TagStringLit,
// TagIdent, and the template fragment tags.
func (k Kind) StrName() intern.Name { return intern.Name(k.Payload) }

// Duration packs a magnitude and unit into a single Kind. The magnitude is
// cast to signed 64-bit via bit-reinterpretation at the max range, per
// §4.3, then combined with the unit in the low byte.
func Duration(magnitudeNanos int64, unit DurationUnit) Kind {
	return Kind{Tag: TagDurationLit, Payload: uint64(magnitudeNanos)<<8 | uint64(unit)}
}

// DurationNanos returns the total nanosecond magnitude.
func (k Kind) DurationNanos() int64 { return int64(k.Payload >> 8) }

// DurationRawUnit returns the original suffix unit (for round-tripping the
// formatter's literal rendering).
func (k Kind) DurationRawUnit() DurationUnit { return DurationUnit(k.Payload & 0xFF) }

// Size packs a byte count and the originating unit into a single Kind.
func Size(bytes uint64, unit SizeUnit) Kind {
	return Kind{Tag: TagSizeLit, Payload: bytes<<8 | uint64(unit)}
}

// SizeBytesValue returns the total byte count.
func (k Kind) SizeBytesValue() uint64 { return k.Payload >> 8 }

// SizeRawUnit returns the originating suffix unit.
func (k Kind) SizeRawUnit() SizeUnit { return SizeUnit(k.Payload & 0xFF) }

// Bare constructs a Kind for tags that carry no payload (punctuation,
// operators, keywords, EOF, Error).
func Bare(tag Tag) Kind { return Kind{Tag: tag} }

// keywords maps the literal spelling of every keyword (general, type,
// constructor, and hard pattern keyword) to its Tag. Soft keywords (len,
// min, max) are intentionally absent: the lexer looks them up via
// softKeywords and only promotes them to a keyword tag after seeing `(`.
var keywords = map[string]Tag{
	"use":      TagKwUse,
	"as":       TagKwAs,
	"pub":      TagKwPub,
	"uses":     TagKwUses,
	"where":    TagKwWhere,
	"tests":    TagKwTests,
	"true":     TagKwTrue,
	"false":    TagKwFalse,
	"if":       TagKwIf,
	"else":     TagKwElse,
	"let":      TagKwLet,
	"for":      TagKwFor,
	"in":       TagKwIn,
	"loop":     TagKwLoop,
	"break":    TagKwBreak,
	"continue": TagKwContinue,
	"match":    TagKwMatch,
	"struct":   TagKwStruct,
	"enum":     TagKwEnum,
	"type":     TagKwType,

	"int":      TagKwInt,
	"float":    TagKwFloat,
	"bool":     TagKwBool,
	"str":      TagKwStr,
	"char":     TagKwChar,
	"byte":     TagKwByte,
	"unit":     TagKwUnit,
	"never":    TagKwNever,
	"duration": TagKwDuration,
	"size":     TagKwSize,
	"ordering": TagKwOrdering,

	"Some": TagKwSome,
	"None": TagKwNone,
	"Ok":   TagKwOk,
	"Err":  TagKwErr,

	"run":      TagKwRun,
	"try":      TagKwTry,
	"map":      TagKwMap,
	"filter":   TagKwFilter,
	"fold":     TagKwFold,
	"recurse":  TagKwRecurse,
	"parallel": TagKwParallel,
	"spawn":    TagKwSpawn,
	"timeout":  TagKwTimeout,
	"retry":    TagKwRetry,
	"cache":    TagKwCache,
	"validate": TagKwValidate,
	"with":     TagKwWith,
	"print":    TagKwPrint,
	"panic":    TagKwPanic,
}

// softKeywords lists identifiers that are only keywords when immediately
// followed by '(' (§4.3, §9 "Soft keywords").
var softKeywords = map[string]Tag{
	"len": TagKwLen,
	"min": TagKwMin,
	"max": TagKwMax,
}

// LookupKeyword returns the Tag for a hard keyword spelling, if any.
func LookupKeyword(ident string) (Tag, bool) {
	tg, ok := keywords[ident]
	return tg, ok
}

// LookupSoftKeyword returns the Tag a soft keyword spelling would resolve
// to if followed by '(', if any.
func LookupSoftKeyword(ident string) (Tag, bool) {
	tg, ok := softKeywords[ident]
	return tg, ok
}
