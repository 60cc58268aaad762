package ast

import "ori/internal/source"

// ExprKind discriminates the variant of a node stored in the ExprArena's
// flat Expr table. Each variant's extra data, if any, lives in a
// dedicated per-kind side arena on ExprArena, addressed by Expr.Payload -
// the same "inline tag, indirected payload" shape §4.6 uses for TypePool.
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota

	ExprLitInt
	ExprLitFloat
	ExprLitBool
	ExprLitChar
	ExprLitStr
	ExprLitTemplate
	ExprLitUnit

	ExprIdent

	ExprBinary
	ExprUnary

	ExprCall
	ExprMethodCall

	ExprLet
	ExprAssign

	ExprIf
	ExprLoop
	ExprBreak
	ExprContinue
	ExprFor

	ExprBlock

	ExprTuple
	ExprStructLit
	ExprMapLit
	ExprFieldAccess
	ExprIndex

	ExprLambda

	ExprMatchExpr // the general `match scrutinee { pat => expr, ... }` expression

	ExprOptionSome
	ExprOptionNone
	ExprResultOk
	ExprResultErr

	// ExprSeq covers the function-seq forms run(...) and try(...): a
	// sequence of named bindings evaluated in order followed by a result
	// expression. These are parsed as dedicated variants, never desugared
	// (§4.5).
	ExprSeq

	// ExprFnExp covers the named function-expression forms: map, filter,
	// fold, recurse, parallel, spawn, timeout, retry, cache, validate,
	// with, print, panic, len, min, max.
	ExprFnExp
)

// PayloadID indexes one of ExprArena's per-kind side arrays.
type PayloadID uint32

// Expr is the flat, position-addressed node every ExprID resolves to.
// Children are referenced by ID only - never embedded - so the arena is
// a DAG-in-practice with no ownership cycles possible.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}
