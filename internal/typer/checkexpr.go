package typer

import (
	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/token"
	"ori/internal/types"
)

// checkExpr synthesizes id's type, memoizing the result in c.exprTypes.
// It is a straight-line walk, not a unification pass: every position
// that genuinely needs an expected type propagated into it (a bare
// `None`, an unannotated lambda parameter) is a documented limitation
// of this synthesis style, not an oversight - see the package doc
// comment and DESIGN.md.
func (c *checker) checkExpr(id ast.ExprID) types.Idx {
	e := c.arena.GetExpr(id)
	switch e.Kind {
	case ast.ExprLitInt:
		lit := c.arena.Literal(id)
		switch lit.Lit.Tag {
		case token.TagDurationLit:
			return c.setType(id, types.Duration)
		case token.TagSizeLit:
			return c.setType(id, types.Size)
		default:
			return c.setType(id, types.Int)
		}
	case ast.ExprLitFloat:
		return c.setType(id, types.Float)
	case ast.ExprLitBool:
		return c.setType(id, types.Bool)
	case ast.ExprLitChar:
		return c.setType(id, types.Char)
	case ast.ExprLitStr:
		return c.setType(id, types.Str)
	case ast.ExprLitTemplate:
		for _, part := range c.arena.TemplateParts(c.arena.Template(id)) {
			if part.Value.IsValid() {
				c.checkExpr(part.Value)
			}
		}
		return c.setType(id, types.Str)
	case ast.ExprLitUnit:
		return c.setType(id, types.Unit)

	case ast.ExprIdent:
		name := c.arena.Ident(id).Name
		if t, ok := c.lookup(name); ok {
			return c.setType(id, t)
		}
		c.err(diag.UnboundName, e.Span, "unbound name")
		return c.setType(id, types.Error)

	case ast.ExprBinary:
		return c.checkBinary(id, e)
	case ast.ExprUnary:
		return c.checkUnary(id, e)
	case ast.ExprAssign:
		d := c.arena.Assign(id)
		target := c.checkExpr(d.Target)
		value := c.checkExpr(d.Value)
		if !c.sameType(target, value) && target != types.Error && value != types.Error {
			c.err(diag.TypeMismatch, e.Span, "assignment value does not match target type")
		}
		return c.setType(id, types.Unit)

	case ast.ExprLet:
		d := c.arena.Let(id)
		valueType := c.checkExpr(d.Value)
		bound := valueType
		if d.TypeAnn.IsValid() {
			bound = c.resolveTypeExpr(d.TypeAnn)
			if !c.sameType(bound, valueType) && bound != types.Error && valueType != types.Error {
				c.err(diag.TypeMismatch, e.Span, "let binding value does not match its annotation")
			}
		}
		c.bind(d.Name, bound)
		return c.setType(id, types.Unit)

	case ast.ExprIf:
		d := c.arena.If(id)
		cond := c.checkExpr(d.Cond)
		if cond != types.Bool && cond != types.Error {
			c.err(diag.TypeMismatch, e.Span, "if condition must be bool")
		}
		thenType := c.checkExpr(d.Then)
		if !d.Else.IsValid() {
			return c.setType(id, types.Unit)
		}
		elseType := c.checkExpr(d.Else)
		if !c.sameType(thenType, elseType) && thenType != types.Error && elseType != types.Error {
			c.err(diag.TypeMismatch, e.Span, "if/else branches have different types")
		}
		return c.setType(id, thenType)

	case ast.ExprLoop:
		c.checkExpr(c.arena.Loop(id).Body)
		return c.setType(id, types.Unit)

	case ast.ExprBreak:
		d := c.arena.Break(id)
		if d.Value.IsValid() {
			c.checkExpr(d.Value)
		}
		return c.setType(id, types.Never)

	case ast.ExprContinue:
		return c.setType(id, types.Never)

	case ast.ExprFor:
		d := c.arena.For(id)
		iterType := c.checkExpr(d.Iter)
		c.pushScope()
		c.bindPattern(d.Pattern, c.elemTypeOf(iterType))
		c.checkExpr(d.Body)
		c.popScope()
		return c.setType(id, types.Unit)

	case ast.ExprBlock:
		return c.checkBlock(id, e)

	case ast.ExprTuple:
		elems := c.arena.GetExprRange(c.arena.Tuple(id).Elems)
		idxs := make([]types.Idx, len(elems))
		for i, el := range elems {
			idxs[i] = c.checkExpr(el)
		}
		return c.setType(id, c.pool.Tuple(idxs))

	case ast.ExprStructLit:
		return c.checkStructLit(id, e)

	case ast.ExprMapLit:
		entries := c.arena.MapEntries(c.arena.MapLit(id).Entries)
		keyType, valType := types.Error, types.Error
		for i, entry := range entries {
			k := c.checkExpr(entry.Key)
			v := c.checkExpr(entry.Value)
			if i == 0 {
				keyType, valType = k, v
			}
		}
		return c.setType(id, c.pool.Map(keyType, valType))

	case ast.ExprFieldAccess:
		return c.checkFieldAccess(id, e)

	case ast.ExprIndex:
		d := c.arena.Index(id)
		base := c.checkExpr(d.Base)
		idxType := c.checkExpr(d.Index)
		if c.pool.Tag(c.pool.ResolveFully(base)) == types.TagMap {
			keyType, valType := c.pool.MapKV(c.pool.ResolveFully(base))
			if !c.sameType(idxType, keyType) && idxType != types.Error {
				c.err(diag.TypeMismatch, e.Span, "map index does not match key type")
			}
			return c.setType(id, valType)
		}
		return c.setType(id, c.elemTypeOf(base))

	case ast.ExprLambda:
		return c.checkLambda(id, e)

	case ast.ExprMatchExpr:
		return c.checkMatch(id, e)

	case ast.ExprOptionSome:
		d := c.arena.Option(id)
		return c.setType(id, c.pool.Option(c.checkExpr(d.Value)))
	case ast.ExprOptionNone:
		return c.setType(id, c.pool.Option(types.Error))
	case ast.ExprResultOk:
		d := c.arena.Result(id)
		return c.setType(id, c.pool.Result(c.checkExpr(d.Value), types.Error))
	case ast.ExprResultErr:
		d := c.arena.Result(id)
		return c.setType(id, c.pool.Result(types.Error, c.checkExpr(d.Value)))

	case ast.ExprCall:
		return c.checkCall(id, e)
	case ast.ExprMethodCall:
		return c.checkMethodCall(id, e)

	case ast.ExprSeq:
		return c.checkSeq(id)
	case ast.ExprFnExp:
		return c.checkFnExp(id)
	}

	return c.setType(id, types.Error)
}

func (c *checker) checkBinary(id ast.ExprID, e ast.Expr) types.Idx {
	d := c.arena.Binary(id)
	left := c.checkExpr(d.Left)
	right := c.checkExpr(d.Right)
	if left == types.Error || right == types.Error {
		return c.setType(id, types.Error)
	}
	switch binaryOpClass[d.Op] {
	case opArith:
		if !isNumeric(left) || !c.sameType(left, right) {
			c.err(diag.TypeMismatch, e.Span, "arithmetic requires matching numeric operands")
			return c.setType(id, types.Error)
		}
		return c.setType(id, left)
	case opBitwise:
		if left != types.Int || right != types.Int {
			c.err(diag.TypeMismatch, e.Span, "bitwise operator requires int operands")
		}
		return c.setType(id, types.Int)
	case opCompare:
		if !isNumeric(left) || !c.sameType(left, right) {
			c.err(diag.TypeMismatch, e.Span, "comparison requires matching numeric operands")
		}
		return c.setType(id, types.Bool)
	case opEquality:
		if !c.sameType(left, right) {
			c.err(diag.TypeMismatch, e.Span, "== / != requires operands of the same type")
		}
		return c.setType(id, types.Bool)
	case opLogical:
		if left != types.Bool || right != types.Bool {
			c.err(diag.TypeMismatch, e.Span, "&& / || requires bool operands")
		}
		return c.setType(id, types.Bool)
	case opRange:
		if left != types.Int || right != types.Int {
			c.err(diag.TypeMismatch, e.Span, "range bounds must be int")
		}
		return c.setType(id, c.pool.RangeType(types.Int))
	}
	return c.setType(id, types.Error)
}

func (c *checker) checkUnary(id ast.ExprID, e ast.Expr) types.Idx {
	d := c.arena.Unary(id)
	operand := c.checkExpr(d.Operand)
	switch d.Op {
	case ast.OpNeg:
		if !isNumeric(operand) && operand != types.Error {
			c.err(diag.TypeMismatch, e.Span, "unary - requires a numeric operand")
		}
		return c.setType(id, operand)
	case ast.OpNot:
		if operand != types.Bool && operand != types.Error {
			c.err(diag.TypeMismatch, e.Span, "unary ! requires a bool operand")
		}
		return c.setType(id, types.Bool)
	case ast.OpBitNot:
		if operand != types.Int && operand != types.Error {
			c.err(diag.TypeMismatch, e.Span, "unary ~ requires an int operand")
		}
		return c.setType(id, types.Int)
	}
	return c.setType(id, types.Error)
}

func isNumeric(t types.Idx) bool { return t == types.Int || t == types.Float }

// elemTypeOf returns a container's element type for `for`/index purposes,
// falling back to Error for anything not list/set/range-shaped.
func (c *checker) elemTypeOf(container types.Idx) types.Idx {
	resolved := c.pool.ResolveFully(container)
	switch c.pool.Tag(resolved) {
	case types.TagList, types.TagSet, types.TagRangeType, types.TagChannel:
		return c.pool.Elem(resolved)
	}
	return types.Error
}

func (c *checker) checkBlock(id ast.ExprID, e ast.Expr) types.Idx {
	d := c.arena.Block(id)
	c.pushScope()
	for _, stmt := range c.arena.Stmts(d.Stmts) {
		c.checkExpr(stmt.Expr)
	}
	result := types.Unit
	if d.Result.IsValid() {
		result = c.checkExpr(d.Result)
	}
	c.popScope()
	return c.setType(id, result)
}

func (c *checker) checkStructLit(id ast.ExprID, e ast.Expr) types.Idx {
	d := c.arena.StructLit(id)
	named, ok := c.typeNames[d.TypeName]
	if !ok {
		c.err(diag.UnboundName, e.Span, "unknown struct type")
		for _, f := range c.arena.FieldInits(d.Fields) {
			c.checkExpr(f.Value)
		}
		return c.setType(id, types.Error)
	}
	fieldTypes := make(map[string]types.Idx)
	for _, f := range c.pool.StructFields(c.pool.ResolveFully(named)) {
		fieldTypes[c.textOf(f.Name)] = f.Type
	}
	for _, f := range c.arena.FieldInits(d.Fields) {
		got := c.checkExpr(f.Value)
		want, ok := fieldTypes[c.textOf(f.Name)]
		if !ok {
			c.err(diag.UnboundName, e.Span, "unknown struct field "+c.textOf(f.Name))
			continue
		}
		if !c.sameType(got, want) && got != types.Error {
			c.err(diag.TypeMismatch, e.Span, "struct field value does not match its declared type")
		}
	}
	return c.setType(id, named)
}

func (c *checker) checkFieldAccess(id ast.ExprID, e ast.Expr) types.Idx {
	d := c.arena.FieldAccess(id)
	base := c.pool.ResolveFully(c.checkExpr(d.Base))
	if c.pool.Tag(base) != types.TagStruct {
		c.err(diag.TypeMismatch, e.Span, "field access on a non-struct type")
		return c.setType(id, types.Error)
	}
	for _, f := range c.pool.StructFields(base) {
		if f.Name == d.Field {
			return c.setType(id, f.Type)
		}
	}
	c.err(diag.UnboundName, e.Span, "unknown field "+c.textOf(d.Field))
	return c.setType(id, types.Error)
}

func (c *checker) checkLambda(id ast.ExprID, e ast.Expr) types.Idx {
	d := c.arena.Lambda(id)
	params := c.arena.Params(d.Params)
	c.pushScope()
	paramTypes := make([]types.Idx, len(params))
	for i, p := range params {
		t := types.Error
		if p.TypeAnn.IsValid() {
			t = c.resolveTypeExpr(p.TypeAnn)
		}
		paramTypes[i] = t
		c.bind(p.Name, t)
	}
	body := c.checkExpr(d.Body)
	c.popScope()
	return c.setType(id, c.pool.Function(paramTypes, body))
}

func (c *checker) checkMatch(id ast.ExprID, e ast.Expr) types.Idx {
	d := c.arena.MatchExpr(id)
	scrutinee := c.checkExpr(d.Scrutinee)
	var common types.Idx
	first := true
	for _, arm := range c.arena.Arms(d.Arms) {
		c.pushScope()
		c.bindPattern(arm.Pattern, scrutinee)
		if arm.Guard.IsValid() {
			guard := c.checkExpr(arm.Guard)
			if guard != types.Bool && guard != types.Error {
				c.err(diag.TypeMismatch, e.Span, "match guard must be bool")
			}
		}
		bodyType := c.checkExpr(arm.Body)
		c.popScope()
		if first {
			common, first = bodyType, false
			continue
		}
		if !c.sameType(common, bodyType) && common != types.Error && bodyType != types.Error {
			c.err(diag.TypeMismatch, e.Span, "match arms have different types")
		}
	}
	if first {
		return c.setType(id, types.Unit)
	}
	return c.setType(id, common)
}

func (c *checker) checkCall(id ast.ExprID, e ast.Expr) types.Idx {
	d := c.arena.Call(id)
	calleeType := c.checkExpr(d.Callee)
	args := c.arena.GetExprRange(d.Args)
	named := c.arena.NamedExprs(d.Named)
	argTypes := make([]types.Idx, 0, len(args)+len(named))
	for _, a := range args {
		argTypes = append(argTypes, c.checkExpr(a))
	}
	for _, n := range named {
		argTypes = append(argTypes, c.checkExpr(n.Value))
	}
	resolved := c.pool.ResolveFully(calleeType)
	if c.pool.Tag(resolved) != types.TagFunction {
		if calleeType != types.Error {
			c.err(diag.TypeMismatch, e.Span, "call target is not callable")
		}
		return c.setType(id, types.Error)
	}
	params := c.pool.FunctionParams(resolved)
	if len(params) != len(argTypes) {
		c.err(diag.ArityMismatch, e.Span, "call argument count does not match function arity")
	}
	for i := 0; i < len(params) && i < len(argTypes); i++ {
		if !c.sameType(params[i], argTypes[i]) && argTypes[i] != types.Error {
			c.err(diag.TypeMismatch, e.Span, "call argument does not match parameter type")
		}
	}
	return c.setType(id, c.pool.FunctionRet(resolved))
}

// checkMethodCall is a best-effort fallback: without a symbol table of
// methods-per-receiver-type (not part of this module's scope, see
// DESIGN.md), receiver and argument expressions are still checked for
// their own internal soundness but the call's own result type cannot be
// derived, so it resolves to Error rather than silently guessing.
func (c *checker) checkMethodCall(id ast.ExprID, e ast.Expr) types.Idx {
	d := c.arena.MethodCall(id)
	c.checkExpr(d.Receiver)
	for _, a := range c.arena.GetExprRange(d.Args) {
		c.checkExpr(a)
	}
	for _, n := range c.arena.NamedExprs(d.Named) {
		c.checkExpr(n.Value)
	}
	return c.setType(id, types.Error)
}

func (c *checker) checkSeq(id ast.ExprID) types.Idx {
	d := c.arena.Seq(id)
	c.pushScope()
	for _, b := range c.arena.SeqBindings(d.Bindings) {
		t := c.checkExpr(b.Value)
		c.bind(b.Name, t)
	}
	result := types.Unit
	if d.Result.IsValid() {
		result = c.checkExpr(d.Result)
	}
	c.popScope()
	return c.setType(id, result)
}
