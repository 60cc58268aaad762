package typer

import (
	"ori/internal/ast"
	"ori/internal/types"
)

// checkFnExp resolves the handful of named function-expression forms
// whose result type doesn't depend on a callback's inferred return type
// (len/print/panic/min/max); the higher-order forms (map/filter/fold/
// recurse/parallel/spawn/timeout/retry/cache/validate/with) take a
// callback argument whose return type this synthesis-style checker has
// no generic/unification machinery to thread through, so their
// arguments are still checked for internal soundness but the form's own
// result resolves to Error - a documented scope limitation, not a typo
// (see DESIGN.md).
func (c *checker) checkFnExp(id ast.ExprID) types.Idx {
	d := c.arena.FnExp(id)
	for _, n := range c.arena.NamedExprs(d.Named) {
		c.checkExpr(n.Value)
	}
	var positional types.Idx
	if d.Positional.IsValid() {
		positional = c.checkExpr(d.Positional)
	}

	switch d.Kind {
	case ast.FnExpLen:
		return c.setType(id, types.Int)
	case ast.FnExpPrint:
		return c.setType(id, types.Unit)
	case ast.FnExpPanic:
		return c.setType(id, types.Never)
	case ast.FnExpMin, ast.FnExpMax:
		if d.Positional.IsValid() {
			return c.setType(id, positional)
		}
		return c.setType(id, types.Error)
	}
	return c.setType(id, types.Error)
}
