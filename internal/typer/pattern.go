package typer

import (
	"ori/internal/ast"
	"ori/internal/types"
)

// bindPattern binds every identifier a pattern introduces against an
// already-known scrutinee type, recursing into the pattern's structure
// loosely: a struct/enum-variant pattern's sub-patterns are bound one
// level of field-type precision when the scrutinee is a struct, and
// fall back to Error otherwise rather than rejecting the match outright
// - full exhaustiveness/shape checking against enum variants is left to
// a future pass (see DESIGN.md).
func (c *checker) bindPattern(id ast.PatternID, scrutinee types.Idx) {
	p := c.arena.GetPattern(id)
	switch p.Kind {
	case ast.PatternBindIdent:
		c.bind(p.Name, scrutinee)
	case ast.PatternTuple:
		elems := c.arena.GetPatternRange(p.Sub)
		resolved := c.pool.ResolveFully(scrutinee)
		var elemTypes []types.Idx
		if c.pool.Tag(resolved) == types.TagTuple {
			elemTypes = c.pool.TupleElems(resolved)
		}
		for i, sub := range elems {
			t := types.Error
			if i < len(elemTypes) {
				t = elemTypes[i]
			}
			c.bindPattern(sub, t)
		}
	case ast.PatternStruct:
		// Struct patterns are parsed positionally (parser.parsePatternPrimary
		// does not thread a `field: pattern` name alongside each
		// sub-pattern), so sub-patterns are matched against the struct's
		// field list by index rather than by name.
		resolved := c.pool.ResolveFully(scrutinee)
		var fields []types.StructField
		if c.pool.Tag(resolved) == types.TagStruct {
			fields = c.pool.StructFields(resolved)
		}
		for i, sub := range c.arena.GetPatternRange(p.Sub) {
			t := types.Error
			if i < len(fields) {
				t = fields[i].Type
			}
			c.bindPattern(sub, t)
		}
	case ast.PatternEnumVariant:
		for _, sub := range c.arena.GetPatternRange(p.Sub) {
			c.bindPattern(sub, types.Error)
		}
	case ast.PatternOr:
		for _, sub := range c.arena.GetPatternRange(p.Sub) {
			c.bindPattern(sub, scrutinee)
		}
	case ast.PatternWildcard, ast.PatternLiteral:
		// nothing to bind
	}
}
