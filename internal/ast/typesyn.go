package ast

import (
	"ori/internal/intern"
	"ori/internal/source"
)

// TypeExprID identifies a syntactic type expression - the text the parser
// saw in a type annotation, before C6's TypePool resolves it to a
// structural Idx. Keeping these separate lets the parser run without any
// dependency on the type system.
type TypeExprID uint32

// NoTypeExprID marks an elided type annotation.
const NoTypeExprID TypeExprID = 0

func (id TypeExprID) IsValid() bool { return id != NoTypeExprID }

// TypeExprRange is a Range over TypeExprID (generic type arguments, tuple
// element types, function parameter types).
type TypeExprRange = Range

// TypeExprKind discriminates a syntactic type expression.
type TypeExprKind uint8

const (
	TyInvalid TypeExprKind = iota
	TyNamed                // `int`, `MyStruct`, or a generic `List[T]` (Args holds T)
	TyTuple
	TyFunction // `(A, B) -> C`
)

// TypeExpr is the flat record every TypeExprID resolves to.
type TypeExpr struct {
	Span source.Span
	Kind TypeExprKind
	// Name carries the base name for TyNamed (e.g. "List", "Option",
	// "MyStruct", or a primitive keyword's spelling).
	Name intern.Name
	// Args carries generic type arguments for TyNamed, element types for
	// TyTuple, and parameter types for TyFunction.
	Args TypeExprRange
	// Result carries the return type for TyFunction.
	Result TypeExprID
}
