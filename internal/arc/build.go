package arc

import (
	"ori/internal/ast"
	"ori/internal/typeinfo"
	"ori/internal/typer"
)

// Build runs the ARC transformer over every function body in mod,
// returning one Function record per function that has a body, in
// declaration order. Test bodies (mod.Tests) are not analyzed.
func Build(mod ast.Module, arena *ast.ExprArena, info *typeinfo.Store, res typer.Result) []Function {
	out := make([]Function, 0, len(mod.Functions))
	for _, fn := range mod.Functions {
		if !fn.Body.IsValid() {
			continue
		}
		instrs := analyzeFunction(arena, info, res, fn.Body)
		out = append(out, Function{
			Name:         fn.Name,
			ContentHash:  contentHash(fn.Name, instrs),
			Instructions: instrs,
		})
	}
	return out
}
