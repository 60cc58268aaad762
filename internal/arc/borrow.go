package arc

import (
	"ori/internal/ast"
	"ori/internal/intern"
	"ori/internal/typeinfo"
	"ori/internal/typer"
)

// use is one identifier-expression occurrence, in the order walk.go
// visits it (pre-order over the function body, which for the
// straight-line and branch-local code this spec targets approximates
// left-to-right execution order closely enough for borrow inference;
// see DESIGN.md for the scoping simplification this implies).
type use struct {
	name intern.Name
	id   ast.ExprID
}

// analyzeFunction walks fn's body and returns the ARC instruction list
// ARC's borrow-inference rule produces:
//
//   - a name used zero times is dead: no instructions.
//   - a name used exactly once is a straight move: no retain/release,
//     just the implicit ownership transfer at that use.
//   - a name used N >= 2 times is retained before, and released after,
//     every use except the last; the last use is the move.
//
// Only names whose type is non-trivial (heap-backed, per
// typeinfo.Store.IsTrivial) generate instructions - trivial values are
// copied, not reference-counted.
func analyzeFunction(arena *ast.ExprArena, info *typeinfo.Store, res typer.Result, body ast.ExprID) []Instr {
	var uses []use
	walk(arena, body, func(id ast.ExprID) {
		e := arena.GetExpr(id)
		if e.Kind != ast.ExprIdent {
			return
		}
		uses = append(uses, use{name: arena.Ident(id).Name, id: id})
	})

	byName := make(map[intern.Name][]use)
	var order []intern.Name
	for _, u := range uses {
		if _, seen := byName[u.name]; !seen {
			order = append(order, u.name)
		}
		byName[u.name] = append(byName[u.name], u)
	}

	var instrs []Instr
	for _, name := range order {
		occurrences := byName[name]
		if len(occurrences) == 0 {
			continue
		}
		t, ok := res.ExprTypes[occurrences[0].id]
		if !ok || info.IsTrivial(t) {
			continue
		}
		last := len(occurrences) - 1
		for i, o := range occurrences {
			if i == last {
				instrs = append(instrs, Instr{Op: OpMove, Name: name, Site: o.id})
				continue
			}
			instrs = append(instrs, Instr{Op: OpRetain, Name: name, Site: o.id})
			instrs = append(instrs, Instr{Op: OpRelease, Name: name, Site: o.id})
		}
	}
	return instrs
}
