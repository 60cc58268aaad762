// Package typer implements the type checker (C9): a single-pass,
// synthesis-style checker over ast.Module/ast.ExprArena that resolves
// every expression to a types.Idx and reports diagnostics through
// diag.Reporter. It is grounded on the shape of the teacher's
// internal/sema typeChecker (type_checker_core.go): a struct carrying a
// scope stack, per-binding type maps, and a type cache, walking the tree
// once rather than running a separate unification pass - the teacher's
// own checker is synthesis/bidirectional in exactly this style, not a
// Hindley-Milner unifier with type variables, and types.Pool (C6) has no
// type-variable tag to support one, so this package follows the same
// architecture rather than inventing one.
package typer

import (
	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/intern"
	"ori/internal/source"
	"ori/internal/types"
)

// Options configures a Check run.
type Options struct {
	Reporter diag.Reporter
}

// Result is everything one Check call produces.
type Result struct {
	// ExprTypes maps every checked expression to its resolved type.
	ExprTypes map[ast.ExprID]types.Idx
	// Functions maps each top-level function's interned name to its
	// Function-tagged type in Pool.
	Functions map[intern.Name]types.Idx
	ErrorCount int
}

// checker holds one Check run's mutable state.
type checker struct {
	arena    *ast.ExprArena
	pool     *types.Pool
	interner *intern.Interner
	reporter diag.Reporter

	exprTypes map[ast.ExprID]types.Idx
	functions map[intern.Name]types.Idx
	typeNames map[intern.Name]types.Idx // struct/enum nominal name -> Named Idx

	scopes   []map[intern.Name]types.Idx
	errCount int
}

// Check type-checks an entire module: it registers user type
// declarations and function signatures first (so mutual/forward
// reference between functions and types needs no pre-declaration in
// source order), then checks every function body and test body.
func Check(mod ast.Module, arena *ast.ExprArena, pool *types.Pool, interner *intern.Interner, opts Options) Result {
	c := &checker{
		arena:     arena,
		pool:      pool,
		interner:  interner,
		reporter:  opts.Reporter,
		exprTypes: make(map[ast.ExprID]types.Idx),
		functions: make(map[intern.Name]types.Idx),
		typeNames: make(map[intern.Name]types.Idx),
	}

	c.registerTypeDefs(mod.TypeDefs)
	c.registerFunctionSignatures(mod.Functions)

	for _, fn := range mod.Functions {
		c.checkFunction(fn)
	}
	for _, t := range mod.Tests {
		c.pushScope()
		c.checkExpr(t.Body)
		c.popScope()
	}

	return Result{
		ExprTypes:  c.exprTypes,
		Functions:  c.functions,
		ErrorCount: c.errCount,
	}
}

func (c *checker) err(code diag.Code, span source.Span, msg string) {
	c.errCount++
	if c.reporter == nil {
		return
	}
	c.reporter.Report(code, diag.SevError, span, msg, nil, nil)
}

func (c *checker) pushScope() { c.scopes = append(c.scopes, make(map[intern.Name]types.Idx)) }
func (c *checker) popScope()  { c.scopes = c.scopes[:len(c.scopes)-1] }

func (c *checker) bind(name intern.Name, t types.Idx) {
	c.scopes[len(c.scopes)-1][name] = t
}

func (c *checker) lookup(name intern.Name) (types.Idx, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if t, ok := c.scopes[i][name]; ok {
			return t, true
		}
	}
	if t, ok := c.functions[name]; ok {
		return t, true
	}
	return types.NoIdx, false
}

// sameType compares two types nominally-resolved, since a Named idx and
// its bound concrete idx must compare equal for e.g. a struct literal's
// inferred type to satisfy a param annotated with the same struct name.
func (c *checker) sameType(a, b types.Idx) bool {
	return c.pool.ResolveFully(a) == c.pool.ResolveFully(b)
}

func (c *checker) setType(id ast.ExprID, t types.Idx) types.Idx {
	c.exprTypes[id] = t
	return t
}

func (c *checker) typeOf(id ast.ExprID) types.Idx {
	if t, ok := c.exprTypes[id]; ok {
		return t
	}
	return c.checkExpr(id)
}
