package typer

import (
	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/types"
)

// checkFunction type-checks one function body against its already
// -registered signature, binding each declared parameter into a fresh
// top-level scope.
func (c *checker) checkFunction(fn ast.Function) {
	c.pushScope()
	params := c.arena.Params(fn.Params)
	sig := c.functions[fn.Name]
	paramTypes := c.pool.FunctionParams(sig)
	for i, p := range params {
		t := types.Error
		if i < len(paramTypes) {
			t = paramTypes[i]
		}
		c.bind(p.Name, t)
	}

	bodyType := c.checkExpr(fn.Body)
	want := c.pool.FunctionRet(sig)
	if !c.sameType(bodyType, want) && bodyType != types.Error && want != types.Error {
		c.err(diag.TypeMismatch, c.arena.GetExpr(fn.Body).Span,
			"function body type does not match its declared return type")
	}
	c.popScope()
}
