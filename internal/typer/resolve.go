package typer

import (
	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/intern"
	"ori/internal/types"
)

// primitiveTypeNames maps a primitive type-annotation spelling to its
// pre-interned Pool index (§4.6's 0-11 primitive block).
var primitiveTypeNames = map[string]types.Idx{
	"int": types.Int, "float": types.Float, "bool": types.Bool,
	"str": types.Str, "char": types.Char, "byte": types.Byte,
	"unit": types.Unit, "never": types.Never, "duration": types.Duration,
	"size": types.Size, "ordering": types.Ordering,
}

// registerTypeDefs builds every struct/enum/alias declaration into Pool,
// Phase-1/2/3 the way internal/layout's resolveNamed does, but against
// source syntax instead of an already-built Idx: pool.Named(name) hands
// back the same placeholder Idx on every call for a given name (Pool
// interns it), so a field that refers back to its own enclosing type
// picks up the same not-yet-resolved handle without a separate
// reentrancy guard; SetResolution binds it to the concrete Idx once the
// body is built.
func (c *checker) registerTypeDefs(defs []ast.TypeDef) {
	for _, td := range defs {
		c.typeNames[td.Name] = c.pool.Named(td.Name)
	}
	for _, td := range defs {
		switch td.Kind {
		case ast.TypeDefStruct:
			fields := c.structFields(c.arena.FieldDefs(td.Fields))
			concrete := c.pool.StructType(td.Name, fields)
			c.pool.SetResolution(c.typeNames[td.Name], concrete)
		case ast.TypeDefEnum:
			variants := make([]types.EnumVariant, 0, len(c.arena.VariantDefs(td.Variants)))
			for _, v := range c.arena.VariantDefs(td.Variants) {
				variants = append(variants, types.EnumVariant{
					Name:   v.Name,
					Fields: c.structFields(c.arena.FieldDefs(v.Fields)),
				})
			}
			concrete := c.pool.EnumType(td.Name, variants)
			c.pool.SetResolution(c.typeNames[td.Name], concrete)
		case ast.TypeDefAlias:
			concrete := c.resolveTypeExpr(td.Alias)
			c.pool.SetResolution(c.typeNames[td.Name], concrete)
		}
	}
}

func (c *checker) structFields(defs []ast.FieldDef) []types.StructField {
	fields := make([]types.StructField, len(defs))
	for i, f := range defs {
		fields[i] = types.StructField{Name: f.Name, Type: c.resolveTypeExpr(f.TypeAnn)}
	}
	return fields
}

func (c *checker) registerFunctionSignatures(fns []ast.Function) {
	for _, fn := range fns {
		var params []types.Idx
		for _, p := range c.arena.Params(fn.Params) {
			params = append(params, c.resolveTypeExpr(p.TypeAnn))
		}
		ret := c.resolveTypeExpr(fn.RetType)
		c.functions[fn.Name] = c.pool.Function(params, ret)
	}
}

// resolveTypeExpr turns a syntactic type annotation into a Pool Idx.
// ast.NoTypeExprID (an unannotated parameter, return type or inferred
// lambda form)
// resolves to types.Error: full bidirectional propagation of an
// expected type into an annotation-free position is not implemented by
// this synthesis-style checker (see the package doc comment).
func (c *checker) resolveTypeExpr(id ast.TypeExprID) types.Idx {
	if !id.IsValid() {
		return types.Error
	}
	te := c.arena.GetTypeExpr(id)
	switch te.Kind {
	case ast.TyNamed:
		name := c.textOf(te.Name)
		if idx, ok := primitiveTypeNames[name]; ok {
			return idx
		}
		if idx, ok := c.typeNames[te.Name]; ok {
			return idx
		}
		c.err(diag.UnboundName, te.Span, "unknown type "+name)
		return types.Error
	case ast.TyTuple:
		elems := c.arena.TypeExprs(te.Args)
		idxs := make([]types.Idx, len(elems))
		for i, e := range elems {
			idxs[i] = c.resolveTypeExprValue(e)
		}
		return c.pool.Tuple(idxs)
	case ast.TyFunction:
		elems := c.arena.TypeExprs(te.Args)
		idxs := make([]types.Idx, len(elems))
		for i, e := range elems {
			idxs[i] = c.resolveTypeExprValue(e)
		}
		return c.pool.Function(idxs, c.resolveTypeExprValue(c.arena.GetTypeExpr(te.Result)))
	}
	return types.Error
}

// resolveTypeExprValue resolves an already-dereferenced TypeExpr value
// (as produced by ExprArena.TypeExprs over a TypeExprRange) rather than
// an ID, reallocating it to reuse resolveTypeExpr's dispatch.
func (c *checker) resolveTypeExprValue(te ast.TypeExpr) types.Idx {
	return c.resolveTypeExpr(c.arena.AllocTypeExpr(te))
}

func (c *checker) textOf(name intern.Name) string {
	s, _ := c.interner.Lookup(name)
	return s
}
