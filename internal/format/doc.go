// Package format implements the idempotent pretty-printer (C13): it walks
// an ast.Module plus its backing ast.ExprArena and re-renders canonical
// source text, satisfying normalize(format(src)) == normalize(format(format(src)))
// for every input that parses.
//
// Grounded on the teacher's internal/format package: the same Writer-based
// accumulation style (printer.go/write.go's Space/Newline/Indent/CopyRange
// helpers) generalized from the teacher's copy-range-and-patch shape (copy
// original bytes between item spans, re-print only inside them) into full
// AST-driven regeneration of every item and the expressions nested inside
// it, since canonical regeneration - never falling back to a verbatim
// source copy - is what the idempotence property requires: a fallback copy
// would let a second formatting pass observe the exact same source bytes
// and therefore (trivially) match, even though the first pass's original
// *output* need not have been canonical. Blank lines between top-level
// items are canonicalized to exactly one, sidestepping any dependence on
// the original file's blank-line count; comment reattachment instead pulls
// straight from the lexer's lexer.Comment stream.
package format
