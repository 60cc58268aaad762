package ast

import (
	"ori/internal/intern"
	"ori/internal/source"
)

// TypeDefKind discriminates a top-level user type definition.
type TypeDefKind uint8

const (
	TypeDefStruct TypeDefKind = iota
	TypeDefEnum
	TypeDefAlias
)

// FieldDef is one `name: Type` member of a struct definition or an enum
// variant's payload.
type FieldDef struct {
	Name    intern.Name
	TypeAnn TypeExprID
}

// FieldDefRange is a Range over FieldDef (a struct's fields, or one enum
// variant's payload fields).
type FieldDefRange = Range

// VariantDef is one `Name` or `Name(field: Type, ...)` enum variant.
type VariantDef struct {
	Name   intern.Name
	Fields FieldDefRange // zero-length for a unit variant
}

// VariantDefRange is a Range over VariantDef.
type VariantDefRange = Range

// TypeDef is a top-level `struct`, `enum`, or `type` alias declaration.
type TypeDef struct {
	Name     intern.Name
	Kind     TypeDefKind
	Fields   FieldDefRange    // TypeDefStruct
	Variants VariantDefRange  // TypeDefEnum
	Alias    TypeExprID       // TypeDefAlias
	Pub      bool
	Span     source.Span
}
