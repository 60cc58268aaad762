package arc

import "ori/internal/ast"

// children returns id's immediate sub-expressions in evaluation order.
// This mirrors the teacher's internal/mir lowering passes, which also
// walk the arena expression-by-expression rather than through a
// separately-built MIR graph at this stage of the pipeline.
func children(arena *ast.ExprArena, id ast.ExprID) []ast.ExprID {
	e := arena.GetExpr(id)
	switch e.Kind {
	case ast.ExprLitTemplate:
		var out []ast.ExprID
		for _, part := range arena.TemplateParts(arena.Template(id)) {
			if part.Value.IsValid() {
				out = append(out, part.Value)
			}
		}
		return out
	case ast.ExprBinary:
		d := arena.Binary(id)
		return []ast.ExprID{d.Left, d.Right}
	case ast.ExprUnary:
		return []ast.ExprID{arena.Unary(id).Operand}
	case ast.ExprCall:
		d := arena.Call(id)
		out := append([]ast.ExprID{d.Callee}, arena.GetExprRange(d.Args)...)
		for _, n := range arena.NamedExprs(d.Named) {
			out = append(out, n.Value)
		}
		return out
	case ast.ExprMethodCall:
		d := arena.MethodCall(id)
		out := append([]ast.ExprID{d.Receiver}, arena.GetExprRange(d.Args)...)
		for _, n := range arena.NamedExprs(d.Named) {
			out = append(out, n.Value)
		}
		return out
	case ast.ExprLet:
		return []ast.ExprID{arena.Let(id).Value}
	case ast.ExprAssign:
		d := arena.Assign(id)
		return []ast.ExprID{d.Target, d.Value}
	case ast.ExprIf:
		d := arena.If(id)
		out := []ast.ExprID{d.Cond, d.Then}
		if d.Else.IsValid() {
			out = append(out, d.Else)
		}
		return out
	case ast.ExprLoop:
		return []ast.ExprID{arena.Loop(id).Body}
	case ast.ExprBreak:
		if v := arena.Break(id).Value; v.IsValid() {
			return []ast.ExprID{v}
		}
		return nil
	case ast.ExprFor:
		d := arena.For(id)
		return []ast.ExprID{d.Iter, d.Body}
	case ast.ExprBlock:
		d := arena.Block(id)
		var out []ast.ExprID
		for _, s := range arena.Stmts(d.Stmts) {
			out = append(out, s.Expr)
		}
		if d.Result.IsValid() {
			out = append(out, d.Result)
		}
		return out
	case ast.ExprTuple:
		return arena.GetExprRange(arena.Tuple(id).Elems)
	case ast.ExprStructLit:
		var out []ast.ExprID
		for _, f := range arena.FieldInits(arena.StructLit(id).Fields) {
			out = append(out, f.Value)
		}
		return out
	case ast.ExprMapLit:
		var out []ast.ExprID
		for _, m := range arena.MapEntries(arena.MapLit(id).Entries) {
			out = append(out, m.Key, m.Value)
		}
		return out
	case ast.ExprFieldAccess:
		return []ast.ExprID{arena.FieldAccess(id).Base}
	case ast.ExprIndex:
		d := arena.Index(id)
		return []ast.ExprID{d.Base, d.Index}
	case ast.ExprLambda:
		d := arena.Lambda(id)
		var out []ast.ExprID
		for _, p := range arena.Params(d.Params) {
			if p.Default.IsValid() {
				out = append(out, p.Default)
			}
		}
		return append(out, d.Body)
	case ast.ExprMatchExpr:
		d := arena.MatchExpr(id)
		out := []ast.ExprID{d.Scrutinee}
		for _, arm := range arena.Arms(d.Arms) {
			if arm.Guard.IsValid() {
				out = append(out, arm.Guard)
			}
			out = append(out, arm.Body)
		}
		return out
	case ast.ExprOptionSome:
		return []ast.ExprID{arena.Option(id).Value}
	case ast.ExprResultOk, ast.ExprResultErr:
		return []ast.ExprID{arena.Result(id).Value}
	case ast.ExprSeq:
		d := arena.Seq(id)
		var out []ast.ExprID
		for _, b := range arena.SeqBindings(d.Bindings) {
			out = append(out, b.Value)
		}
		if d.Result.IsValid() {
			out = append(out, d.Result)
		}
		return out
	case ast.ExprFnExp:
		d := arena.FnExp(id)
		var out []ast.ExprID
		for _, n := range arena.NamedExprs(d.Named) {
			out = append(out, n.Value)
		}
		if d.Positional.IsValid() {
			out = append(out, d.Positional)
		}
		return out
	}
	return nil
}

// walk visits id and every descendant in pre-order, depth first.
func walk(arena *ast.ExprArena, id ast.ExprID, visit func(ast.ExprID)) {
	if !id.IsValid() {
		return
	}
	visit(id)
	for _, child := range children(arena, id) {
		walk(arena, child, visit)
	}
}
