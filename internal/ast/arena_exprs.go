package ast

import (
	"ori/internal/intern"
	"ori/internal/source"
	"ori/internal/token"
)

const defaultArenaCap = 1 << 8

// ExprArena is the append-only store for every AST node kind (C4). It
// holds the flat Expr table plus one side arena per payload-bearing kind,
// plus the typed side arrays (params, patterns, arms, field inits, map
// entries, named-argument lists, sequence bindings, statements, type
// expressions, attributes, template parts) addressed by the Range handles
// in ids.go. Handles are never invalidated - the arena only grows (P5).
//
// ExprRange and PatternRange range over dedicated ExprID/PatternID index
// arrays (exprIDs, patternIDs) rather than directly over the exprs/patterns
// arenas: a list's elements are themselves full subtrees that may interleave
// other allocations into those arenas while being parsed, so their resulting
// root handles are not guaranteed contiguous there. Every other side table
// (Param, FieldInit, MapEntry, NamedExpr, SeqBinding, Arm, Stmt, TypeExpr,
// Attr, TemplatePart) holds no nested range of its own kind, so a batch
// allocation call is always contiguous and can hand back a Range directly
// over that table.
type ExprArena struct {
	exprs *Arena[Expr]

	idents      *Arena[IdentData]
	literals    *Arena[LiteralData]
	templates   *Arena[TemplateData]
	binaries    *Arena[BinaryData]
	unaries     *Arena[UnaryData]
	calls       *Arena[CallData]
	methodCalls *Arena[MethodCallData]
	lets        *Arena[LetData]
	assigns     *Arena[AssignData]
	ifs         *Arena[IfData]
	loops       *Arena[LoopData]
	breaks      *Arena[BreakData]
	fors        *Arena[ForData]
	blocks      *Arena[BlockData]
	tuples      *Arena[TupleData]
	structLits  *Arena[StructLitData]
	mapLits     *Arena[MapLitData]
	fieldAccess *Arena[FieldAccessData]
	indices     *Arena[IndexData]
	lambdas     *Arena[LambdaData]
	matches     *Arena[MatchExprData]
	options     *Arena[OptionData]
	results     *Arena[ResultData]
	seqs        *Arena[SeqData]
	fnExps      *Arena[FnExpData]

	params       *Arena[Param]
	patterns     *Arena[Pattern]
	arms         *Arena[Arm]
	fieldInits   *Arena[FieldInit]
	mapEntries   *Arena[MapEntry]
	namedExprs   *Arena[NamedExpr]
	seqBindings  *Arena[SeqBinding]
	stmts        *Arena[Stmt]
	typeExprs    *Arena[TypeExpr]
	attrs        *Arena[Attr]
	templateParts *Arena[TemplatePart]
	fieldDefs    *Arena[FieldDef]
	variantDefs  *Arena[VariantDef]

	// exprIDs and patternIDs back ExprRange/PatternRange (see doc comment
	// above); index 0 is reserved, matching Arena's 1-based convention.
	exprIDs    []ExprID
	patternIDs []PatternID
}

// NewExprArena constructs an empty ExprArena.
func NewExprArena() *ExprArena {
	return &ExprArena{
		exprs:       NewArena[Expr](defaultArenaCap),
		idents:      NewArena[IdentData](defaultArenaCap),
		literals:    NewArena[LiteralData](defaultArenaCap),
		templates:   NewArena[TemplateData](defaultArenaCap),
		binaries:    NewArena[BinaryData](defaultArenaCap),
		unaries:     NewArena[UnaryData](defaultArenaCap),
		calls:       NewArena[CallData](defaultArenaCap),
		methodCalls: NewArena[MethodCallData](defaultArenaCap),
		lets:        NewArena[LetData](defaultArenaCap),
		assigns:     NewArena[AssignData](defaultArenaCap),
		ifs:         NewArena[IfData](defaultArenaCap),
		loops:       NewArena[LoopData](defaultArenaCap),
		breaks:      NewArena[BreakData](defaultArenaCap),
		fors:        NewArena[ForData](defaultArenaCap),
		blocks:      NewArena[BlockData](defaultArenaCap),
		tuples:      NewArena[TupleData](defaultArenaCap),
		structLits:  NewArena[StructLitData](defaultArenaCap),
		mapLits:     NewArena[MapLitData](defaultArenaCap),
		fieldAccess: NewArena[FieldAccessData](defaultArenaCap),
		indices:     NewArena[IndexData](defaultArenaCap),
		lambdas:     NewArena[LambdaData](defaultArenaCap),
		matches:     NewArena[MatchExprData](defaultArenaCap),
		options:     NewArena[OptionData](defaultArenaCap),
		results:     NewArena[ResultData](defaultArenaCap),
		seqs:        NewArena[SeqData](defaultArenaCap),
		fnExps:      NewArena[FnExpData](defaultArenaCap),

		params:        NewArena[Param](defaultArenaCap),
		patterns:      NewArena[Pattern](defaultArenaCap),
		arms:          NewArena[Arm](defaultArenaCap),
		fieldInits:    NewArena[FieldInit](defaultArenaCap),
		mapEntries:    NewArena[MapEntry](defaultArenaCap),
		namedExprs:    NewArena[NamedExpr](defaultArenaCap),
		seqBindings:   NewArena[SeqBinding](defaultArenaCap),
		stmts:         NewArena[Stmt](defaultArenaCap),
		typeExprs:     NewArena[TypeExpr](defaultArenaCap),
		attrs:         NewArena[Attr](defaultArenaCap),
		templateParts: NewArena[TemplatePart](defaultArenaCap),
		fieldDefs:     NewArena[FieldDef](defaultArenaCap),
		variantDefs:   NewArena[VariantDef](defaultArenaCap),

		exprIDs:    []ExprID{NoExprID},
		patternIDs: []PatternID{NoPatternID},
	}
}

func (a *ExprArena) push(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(a.exprs.Allocate(Expr{Kind: kind, Span: span, Payload: payload}))
}

// GetExpr dereferences an ExprID to its flat record (get_expr).
func (a *ExprArena) GetExpr(id ExprID) Expr {
	return a.exprs.Get(uint32(id))
}

// allocRange batch-allocates items into arena and returns the contiguous
// Range they now occupy. Safe whenever items carry no nested range of the
// same element type (see the ExprArena doc comment).
func allocRange[T any](arena *Arena[T], items []T) Range {
	start := arena.Len() + 1
	for _, item := range items {
		arena.Allocate(item)
	}
	return Range{Start: start, Len: uint32(len(items))}
}

func getRange[T any](arena *Arena[T], r Range) []T {
	if r.Len == 0 {
		return nil
	}
	out := make([]T, r.Len)
	for i := uint32(0); i < r.Len; i++ {
		out[i] = arena.Get(r.Start + i)
	}
	return out
}

// AllocExprRange records a list of already-allocated expression roots as a
// single contiguous ExprRange (get_expr_list / get_call_args).
func (a *ExprArena) AllocExprRange(ids []ExprID) ExprRange {
	start := uint32(len(a.exprIDs))
	a.exprIDs = append(a.exprIDs, ids...)
	return Range{Start: start, Len: uint32(len(ids))}
}

// GetExprRange resolves an ExprRange back to its expression handles.
func (a *ExprArena) GetExprRange(r ExprRange) []ExprID {
	if r.Len == 0 {
		return nil
	}
	out := make([]ExprID, r.Len)
	copy(out, a.exprIDs[r.Start:r.End()])
	return out
}

// AllocPatternRange records a list of already-allocated pattern roots.
func (a *ExprArena) AllocPatternRange(ids []PatternID) PatternRange {
	start := uint32(len(a.patternIDs))
	a.patternIDs = append(a.patternIDs, ids...)
	return Range{Start: start, Len: uint32(len(ids))}
}

// GetPatternRange resolves a PatternRange back to its pattern handles.
func (a *ExprArena) GetPatternRange(r PatternRange) []PatternID {
	if r.Len == 0 {
		return nil
	}
	out := make([]PatternID, r.Len)
	copy(out, a.patternIDs[r.Start:r.End()])
	return out
}

// --- literals & identifiers ---

func (a *ExprArena) AllocIdent(span source.Span, name intern.Name) ExprID {
	p := a.idents.Allocate(IdentData{Name: name})
	return a.push(ExprIdent, span, PayloadID(p))
}

func (a *ExprArena) Ident(id ExprID) IdentData {
	return a.idents.Get(uint32(a.GetExpr(id).Payload))
}

// AllocLiteral covers ExprLitInt, ExprLitFloat, ExprLitBool, ExprLitChar
// and ExprLitStr: kind selects the variant, lit carries the value using
// token.Kind's own payload encoding (see LiteralData).
func (a *ExprArena) AllocLiteral(kind ExprKind, span source.Span, lit token.Kind) ExprID {
	p := a.literals.Allocate(LiteralData{Lit: lit})
	return a.push(kind, span, PayloadID(p))
}

func (a *ExprArena) Literal(id ExprID) LiteralData {
	return a.literals.Get(uint32(a.GetExpr(id).Payload))
}

// AllocUnit allocates the zero-size `()` literal; it carries no payload.
func (a *ExprArena) AllocUnit(span source.Span) ExprID {
	return a.push(ExprLitUnit, span, 0)
}

func (a *ExprArena) AllocTemplate(span source.Span, parts []TemplatePart) ExprID {
	r := allocRange(a.templateParts, parts)
	p := a.templates.Allocate(TemplateData{Parts: r})
	return a.push(ExprLitTemplate, span, PayloadID(p))
}

func (a *ExprArena) Template(id ExprID) TemplateData {
	return a.templates.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) TemplateParts(d TemplateData) []TemplatePart {
	return getRange(a.templateParts, d.Parts)
}

// --- operators ---

func (a *ExprArena) AllocBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	p := a.binaries.Allocate(BinaryData{Op: op, Left: left, Right: right})
	return a.push(ExprBinary, span, PayloadID(p))
}

func (a *ExprArena) Binary(id ExprID) BinaryData {
	return a.binaries.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) AllocUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	p := a.unaries.Allocate(UnaryData{Op: op, Operand: operand})
	return a.push(ExprUnary, span, PayloadID(p))
}

func (a *ExprArena) Unary(id ExprID) UnaryData {
	return a.unaries.Get(uint32(a.GetExpr(id).Payload))
}

// --- calls ---

func (a *ExprArena) AllocCall(span source.Span, callee ExprID, args []ExprID, named []NamedExpr) ExprID {
	d := CallData{Callee: callee, Args: a.AllocExprRange(args), Named: allocRange(a.namedExprs, named)}
	p := a.calls.Allocate(d)
	return a.push(ExprCall, span, PayloadID(p))
}

func (a *ExprArena) Call(id ExprID) CallData {
	return a.calls.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) AllocMethodCall(span source.Span, recv ExprID, method intern.Name, args []ExprID, named []NamedExpr) ExprID {
	d := MethodCallData{
		Receiver: recv,
		Method:   method,
		Args:     a.AllocExprRange(args),
		Named:    allocRange(a.namedExprs, named),
	}
	p := a.methodCalls.Allocate(d)
	return a.push(ExprMethodCall, span, PayloadID(p))
}

func (a *ExprArena) MethodCall(id ExprID) MethodCallData {
	return a.methodCalls.Get(uint32(a.GetExpr(id).Payload))
}

// --- bindings & control flow ---

func (a *ExprArena) AllocLet(span source.Span, name intern.Name, typeAnn TypeExprID, value ExprID) ExprID {
	p := a.lets.Allocate(LetData{Name: name, TypeAnn: typeAnn, Value: value})
	return a.push(ExprLet, span, PayloadID(p))
}

func (a *ExprArena) Let(id ExprID) LetData {
	return a.lets.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) AllocAssign(span source.Span, target, value ExprID) ExprID {
	p := a.assigns.Allocate(AssignData{Target: target, Value: value})
	return a.push(ExprAssign, span, PayloadID(p))
}

func (a *ExprArena) Assign(id ExprID) AssignData {
	return a.assigns.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) AllocIf(span source.Span, cond, then, els ExprID) ExprID {
	p := a.ifs.Allocate(IfData{Cond: cond, Then: then, Else: els})
	return a.push(ExprIf, span, PayloadID(p))
}

func (a *ExprArena) If(id ExprID) IfData {
	return a.ifs.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) AllocLoop(span source.Span, body ExprID) ExprID {
	p := a.loops.Allocate(LoopData{Body: body})
	return a.push(ExprLoop, span, PayloadID(p))
}

func (a *ExprArena) Loop(id ExprID) LoopData {
	return a.loops.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) AllocBreak(span source.Span, value ExprID) ExprID {
	p := a.breaks.Allocate(BreakData{Value: value})
	return a.push(ExprBreak, span, PayloadID(p))
}

func (a *ExprArena) Break(id ExprID) BreakData {
	return a.breaks.Get(uint32(a.GetExpr(id).Payload))
}

// AllocContinue allocates a bare `continue`; it carries no payload.
func (a *ExprArena) AllocContinue(span source.Span) ExprID {
	return a.push(ExprContinue, span, 0)
}

func (a *ExprArena) AllocFor(span source.Span, pattern PatternID, iter, body ExprID) ExprID {
	p := a.fors.Allocate(ForData{Pattern: pattern, Iter: iter, Body: body})
	return a.push(ExprFor, span, PayloadID(p))
}

func (a *ExprArena) For(id ExprID) ForData {
	return a.fors.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) AllocBlock(span source.Span, stmts []Stmt, result ExprID) ExprID {
	d := BlockData{Stmts: allocRange(a.stmts, stmts), Result: result}
	p := a.blocks.Allocate(d)
	return a.push(ExprBlock, span, PayloadID(p))
}

func (a *ExprArena) Block(id ExprID) BlockData {
	return a.blocks.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) Stmts(r StmtRange) []Stmt {
	return getRange(a.stmts, r)
}

// --- composite values ---

func (a *ExprArena) AllocTuple(span source.Span, elems []ExprID) ExprID {
	d := TupleData{Elems: a.AllocExprRange(elems)}
	p := a.tuples.Allocate(d)
	return a.push(ExprTuple, span, PayloadID(p))
}

func (a *ExprArena) Tuple(id ExprID) TupleData {
	return a.tuples.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) AllocStructLit(span source.Span, typeName intern.Name, fields []FieldInit) ExprID {
	d := StructLitData{TypeName: typeName, Fields: allocRange(a.fieldInits, fields)}
	p := a.structLits.Allocate(d)
	return a.push(ExprStructLit, span, PayloadID(p))
}

func (a *ExprArena) StructLit(id ExprID) StructLitData {
	return a.structLits.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) FieldInits(r FieldInitRange) []FieldInit {
	return getRange(a.fieldInits, r)
}

func (a *ExprArena) MapEntries(r MapEntryRange) []MapEntry {
	return getRange(a.mapEntries, r)
}

// AllocMapEntries exposes the map-entry side table directly; AllocMapLit is
// the usual entry point, this is exported for callers that need the Range
// without wrapping it in an ExprMapLit node (e.g. a struct-literal helper
// that borrows the same entry table shape).
func (a *ExprArena) AllocMapEntries(entries []MapEntry) MapEntryRange {
	return allocRange(a.mapEntries, entries)
}

// AllocMapLit allocates a `{key: value, ...}` map literal.
func (a *ExprArena) AllocMapLit(span source.Span, entries []MapEntry) ExprID {
	d := MapLitData{Entries: a.AllocMapEntries(entries)}
	p := a.mapLits.Allocate(d)
	return a.push(ExprMapLit, span, PayloadID(p))
}

func (a *ExprArena) MapLit(id ExprID) MapLitData {
	return a.mapLits.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) AllocFieldAccess(span source.Span, base ExprID, field intern.Name) ExprID {
	p := a.fieldAccess.Allocate(FieldAccessData{Base: base, Field: field})
	return a.push(ExprFieldAccess, span, PayloadID(p))
}

func (a *ExprArena) FieldAccess(id ExprID) FieldAccessData {
	return a.fieldAccess.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) AllocIndex(span source.Span, base, index ExprID) ExprID {
	p := a.indices.Allocate(IndexData{Base: base, Index: index})
	return a.push(ExprIndex, span, PayloadID(p))
}

func (a *ExprArena) Index(id ExprID) IndexData {
	return a.indices.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) AllocLambda(span source.Span, params []Param, body ExprID) ExprID {
	d := LambdaData{Params: allocRange(a.params, params), Body: body}
	p := a.lambdas.Allocate(d)
	return a.push(ExprLambda, span, PayloadID(p))
}

func (a *ExprArena) Lambda(id ExprID) LambdaData {
	return a.lambdas.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) Params(r ParamRange) []Param {
	return getRange(a.params, r)
}

// AllocParams batch-allocates a top-level Function's parameter list.
// AllocLambda allocates its own params inline since a lambda's Params and
// Body are recorded together in one LambdaData record.
func (a *ExprArena) AllocParams(params []Param) ParamRange {
	return allocRange(a.params, params)
}

// --- pattern matching ---

func (a *ExprArena) AllocPattern(p Pattern) PatternID {
	return PatternID(a.patterns.Allocate(p))
}

func (a *ExprArena) GetPattern(id PatternID) Pattern {
	return a.patterns.Get(uint32(id))
}

func (a *ExprArena) AllocMatchExpr(span source.Span, scrutinee ExprID, arms []Arm) ExprID {
	d := MatchExprData{Scrutinee: scrutinee, Arms: allocRange(a.arms, arms)}
	p := a.matches.Allocate(d)
	return a.push(ExprMatchExpr, span, PayloadID(p))
}

func (a *ExprArena) MatchExpr(id ExprID) MatchExprData {
	return a.matches.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) Arms(r ArmRange) []Arm {
	return getRange(a.arms, r)
}

// --- option / result constructors ---

func (a *ExprArena) AllocOptionSome(span source.Span, value ExprID) ExprID {
	p := a.options.Allocate(OptionData{Value: value})
	return a.push(ExprOptionSome, span, PayloadID(p))
}

// AllocOptionNone allocates `None`; it carries no meaningful payload but
// still gets a zero-value OptionData record so OptionSome/OptionNone share
// one accessor shape.
func (a *ExprArena) AllocOptionNone(span source.Span) ExprID {
	p := a.options.Allocate(OptionData{Value: NoExprID})
	return a.push(ExprOptionNone, span, PayloadID(p))
}

func (a *ExprArena) Option(id ExprID) OptionData {
	return a.options.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) AllocResultOk(span source.Span, value ExprID) ExprID {
	p := a.results.Allocate(ResultData{Value: value})
	return a.push(ExprResultOk, span, PayloadID(p))
}

func (a *ExprArena) AllocResultErr(span source.Span, value ExprID) ExprID {
	p := a.results.Allocate(ResultData{Value: value})
	return a.push(ExprResultErr, span, PayloadID(p))
}

func (a *ExprArena) Result(id ExprID) ResultData {
	return a.results.Get(uint32(a.GetExpr(id).Payload))
}

// --- function-seq (run/try) and function-exp (map/filter/.../max) ---

func (a *ExprArena) AllocSeq(span source.Span, kind SeqKind, bindings []SeqBinding, result ExprID) ExprID {
	d := SeqData{Kind: kind, Bindings: allocRange(a.seqBindings, bindings), Result: result}
	p := a.seqs.Allocate(d)
	return a.push(ExprSeq, span, PayloadID(p))
}

func (a *ExprArena) Seq(id ExprID) SeqData {
	return a.seqs.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) SeqBindings(r SeqBindingRange) []SeqBinding {
	return getRange(a.seqBindings, r)
}

// AllocFnExp allocates one of the named function-expression forms.
// positional is NoExprID for forms invoked purely with named arguments.
func (a *ExprArena) AllocFnExp(span source.Span, kind FnExpKind, named []NamedExpr, positional ExprID) ExprID {
	d := FnExpData{Kind: kind, Named: allocRange(a.namedExprs, named), Positional: positional}
	p := a.fnExps.Allocate(d)
	return a.push(ExprFnExp, span, PayloadID(p))
}

func (a *ExprArena) FnExp(id ExprID) FnExpData {
	return a.fnExps.Get(uint32(a.GetExpr(id).Payload))
}

func (a *ExprArena) NamedExprs(r NamedExprRange) []NamedExpr {
	return getRange(a.namedExprs, r)
}

// --- type expressions & attributes (shared by Module's top-level decls) ---

func (a *ExprArena) AllocTypeExpr(t TypeExpr) TypeExprID {
	return TypeExprID(a.typeExprs.Allocate(t))
}

func (a *ExprArena) GetTypeExpr(id TypeExprID) TypeExpr {
	return a.typeExprs.Get(uint32(id))
}

func (a *ExprArena) TypeExprs(r TypeExprRange) []TypeExpr {
	return getRange(a.typeExprs, r)
}

func (a *ExprArena) AllocTypeExprRange(types []TypeExpr) TypeExprRange {
	return allocRange(a.typeExprs, types)
}

func (a *ExprArena) AllocAttrs(attrs []Attr) AttrRange {
	return allocRange(a.attrs, attrs)
}

func (a *ExprArena) Attrs(r AttrRange) []Attr {
	return getRange(a.attrs, r)
}

// --- user type definitions (struct/enum/type alias) ---

func (a *ExprArena) AllocFieldDefs(fields []FieldDef) FieldDefRange {
	return allocRange(a.fieldDefs, fields)
}

func (a *ExprArena) FieldDefs(r FieldDefRange) []FieldDef {
	return getRange(a.fieldDefs, r)
}

func (a *ExprArena) AllocVariantDefs(variants []VariantDef) VariantDefRange {
	return allocRange(a.variantDefs, variants)
}

func (a *ExprArena) VariantDefs(r VariantDefRange) []VariantDef {
	return getRange(a.variantDefs, r)
}
