// Package types implements the type pool (C6): an append-only interning
// store for Ori's structural and nominal types, generalizing the
// teacher's internal/types Interner (structural-hashing TypeID) to the
// primitive set and constructors in SPEC_FULL §4.6.
package types

import "ori/internal/intern"

// Idx is a dense handle into a Pool.
type Idx uint32

// NoIdx is the "no type" sentinel (Idx::NONE in the spec).
const NoIdx Idx = ^Idx(0)

// Pre-interned primitive indices, 0-11 per §3's data model.
const (
	Int Idx = iota
	Float
	Bool
	Str
	Char
	Byte
	Unit
	Never
	Duration
	Size
	Ordering
	Error
)

// reservedPadding is the first Idx available to user-constructed types;
// 12-63 are reserved Error-tagged padding per §3.
const reservedPadding = 64

// Tag discriminates the variant of a Pool entry.
type Tag uint8

const (
	TagInt Tag = iota
	TagFloat
	TagBool
	TagStr
	TagChar
	TagByte
	TagUnit
	TagNever
	TagDuration
	TagSize
	TagOrdering
	TagError

	TagList
	TagSet
	TagOption
	TagRangeType
	TagChannel
	TagMap
	TagResult
	TagFunction
	TagTuple
	TagStruct
	TagEnum
	TagNamed
)

// StructField is one field of a struct type.
type StructField struct {
	Name intern.Name
	Type Idx
}

// EnumVariant is one variant of an enum type, with its own field list
// (empty for unit variants).
type EnumVariant struct {
	Name   intern.Name
	Fields []StructField
}
