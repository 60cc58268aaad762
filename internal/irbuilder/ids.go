// Package irbuilder implements the IrBuilder (C12): an identifier-based
// facade over LLVM IR construction. Callers see only opaque
// ValueID/BlockID/FunctionID/LLVMTypeID handles - every constructed
// fragment lives in an internal arena indexed by these IDs, so the
// underlying native-IR text buffer's lifetime never escapes the
// facade. Every fallible method follows the error-recording contract:
// log, increment an internal counter, return a typed fallback, never
// panic.
//
// Internally this reuses the teacher's internal/backend/llvm textual
// emission style (a strings.Builder accumulating LLVM assembly,
// register names minted as "%tN") as the "native IR library" the
// facade wraps - this package keeps that HOW and replaces its
// direct-emission WHAT with the ID-indirected, error-contained WHAT
// the spec's facade requires.
package irbuilder

// ValueID identifies a constructed LLVM value (constant, register, or
// a recorded error fallback).
type ValueID uint32

// BlockID identifies a basic block within the function currently being
// built.
type BlockID uint32

// FunctionID identifies a declared or defined function.
type FunctionID uint32

// LLVMTypeID identifies a registered LLVM type.
type LLVMTypeID uint32

const (
	NoValueID    ValueID    = 0
	NoBlockID    BlockID    = 0
	NoFunctionID FunctionID = 0
	NoLLVMTypeID LLVMTypeID = 0
)

func (id ValueID) IsValid() bool    { return id != NoValueID }
func (id BlockID) IsValid() bool    { return id != NoBlockID }
func (id FunctionID) IsValid() bool { return id != NoFunctionID }
func (id LLVMTypeID) IsValid() bool { return id != NoLLVMTypeID }
