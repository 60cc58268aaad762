package format

import (
	"ori/internal/ast"
)

// printTypeExpr renders a syntactic type annotation: a primitive/named
// type (optionally with generic arguments), a tuple, or a function type.
func (p *printer) printTypeExpr(id ast.TypeExprID) {
	if !id.IsValid() {
		return
	}
	t := p.arena.GetTypeExpr(id)
	switch t.Kind {
	case ast.TyNamed:
		p.w.WriteString(p.text(t.Name))
		if t.Args.Len > 0 {
			p.w.WriteString("[")
			p.printTypeExprList(p.arena.TypeExprs(t.Args))
			p.w.WriteString("]")
		}
	case ast.TyTuple:
		p.w.WriteString("(")
		p.printTypeExprList(p.arena.TypeExprs(t.Args))
		p.w.WriteString(")")
	case ast.TyFunction:
		p.w.WriteString("(")
		p.printTypeExprList(p.arena.TypeExprs(t.Args))
		p.w.WriteString(") -> ")
		p.printTypeExpr(t.Result)
	default:
		p.w.WriteString("_")
	}
}

// printTypeExprList renders already-dereferenced TypeExpr values (the
// shape AllocTypeExprRange's callers hold), each recursively re-resolved
// through a throwaway allocation-free walk of its own Kind.
func (p *printer) printTypeExprList(types []ast.TypeExpr) {
	for i, t := range types {
		if i > 0 {
			p.w.WriteString(", ")
		}
		p.printTypeExprValue(t)
	}
}

func (p *printer) printTypeExprValue(t ast.TypeExpr) {
	switch t.Kind {
	case ast.TyNamed:
		p.w.WriteString(p.text(t.Name))
		if t.Args.Len > 0 {
			p.w.WriteString("[")
			p.printTypeExprList(p.arena.TypeExprs(t.Args))
			p.w.WriteString("]")
		}
	case ast.TyTuple:
		p.w.WriteString("(")
		p.printTypeExprList(p.arena.TypeExprs(t.Args))
		p.w.WriteString(")")
	case ast.TyFunction:
		p.w.WriteString("(")
		p.printTypeExprList(p.arena.TypeExprs(t.Args))
		p.w.WriteString(") -> ")
		p.printTypeExpr(t.Result)
	default:
		p.w.WriteString("_")
	}
}
