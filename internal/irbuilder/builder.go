package irbuilder

import (
	"fmt"
	"strings"

	"ori/internal/diag"
	"ori/internal/source"
)

type valueRecord struct {
	ty      LLVMTypeID
	operand string // the bare operand text, e.g. "5", "%t3", or "null" - never type-prefixed
}

type blockRecord struct {
	fn     FunctionID
	label  string
	instrs []string
}

type funcRecord struct {
	name       string
	retType    LLVMTypeID
	paramTypes []LLVMTypeID
	blocks     []BlockID
	entry      BlockID
	entryAt    int // insertion index within the entry block for create_entry_alloca
	cc         string
	attrs      []string
	personality FunctionID
	declareOnly bool
}

type typeRecord struct{ llvm string }

type phiRecord struct {
	block    BlockID
	ty       LLVMTypeID
	incoming []phiIncoming
}

type phiIncoming struct {
	val   ValueID
	block BlockID
}

// Builder is the ID-indirected facade described in package doc. The
// native-library context it wraps (a strings.Builder accumulating LLVM
// assembly text, grounded on the teacher's internal/backend/llvm.Emitter)
// never escapes it: callers only ever hold IDs.
type Builder struct {
	reporter diag.Reporter

	values []valueRecord
	blocks []blockRecord
	funcs  []funcRecord
	types  []typeRecord

	typeIndex map[string]LLVMTypeID
	phis      map[ValueID]*phiRecord

	tmp int

	curFunc  FunctionID
	curBlock BlockID

	errorCount int

	// well-known type handles, pre-registered in NewBuilder.
	tI8, tI32, tI64, tF64, tBool, tPtr, tVoid, tClosure LLVMTypeID
}

// NewBuilder constructs an empty Builder with the primitive LLVM types
// pre-registered. reporter may be nil (diagnostics are dropped, never
// panicked on - the same convention internal/typeinfo.Store follows).
func NewBuilder(reporter diag.Reporter) *Builder {
	b := &Builder{
		reporter:  reporter,
		values:    make([]valueRecord, 1, 64), // index 0 = NoValueID, unused
		blocks:    make([]blockRecord, 1, 16),
		funcs:     make([]funcRecord, 1, 8),
		types:     make([]typeRecord, 1, 16),
		typeIndex: make(map[string]LLVMTypeID, 16),
		phis:      make(map[ValueID]*phiRecord),
	}
	b.tI8 = b.registerType("i8")
	b.tI32 = b.registerType("i32")
	b.tI64 = b.registerType("i64")
	b.tF64 = b.registerType("double")
	b.tBool = b.registerType("i1")
	b.tPtr = b.registerType("ptr")
	b.tVoid = b.registerType("void")
	b.tClosure = b.registerType("{ ptr, ptr }")
	return b
}

// CodegenErrorCount reports how many builder calls degraded to a
// recorded error instead of emitting well-typed IR. The evaluator MUST
// consult this after module construction and refuse to hand the module
// to a JIT when it is non-zero (§4.10/§7): the IR is known-malformed.
func (b *Builder) CodegenErrorCount() int { return b.errorCount }

func (b *Builder) recordError(code diag.Code, msg string) {
	b.errorCount++
	if b.reporter != nil {
		diag.ReportError(b.reporter, code, source.Span{}, msg).Emit()
	}
}

// --- type arena ---

func (b *Builder) registerType(llvm string) LLVMTypeID {
	if id, ok := b.typeIndex[llvm]; ok {
		return id
	}
	b.types = append(b.types, typeRecord{llvm: llvm})
	id := LLVMTypeID(len(b.types) - 1)
	b.typeIndex[llvm] = id
	return id
}

func (b *Builder) typeText(ty LLVMTypeID) string {
	if !ty.IsValid() || int(ty) >= len(b.types) {
		return "void"
	}
	return b.types[ty].llvm
}

// --- value arena ---

func (b *Builder) newValue(ty LLVMTypeID, operand string) ValueID {
	b.values = append(b.values, valueRecord{ty: ty, operand: operand})
	return ValueID(len(b.values) - 1)
}

// valueText renders id as a fully type-prefixed operand, the form LLVM
// instructions need for every operand but the first of a two-operand
// binary/compare (see operandOnly in arith.go).
func (b *Builder) valueText(id ValueID) string {
	if !id.IsValid() || int(id) >= len(b.values) {
		return "i64 0"
	}
	rec := b.values[id]
	if rec.ty == b.tVoid {
		return "void"
	}
	return b.typeText(rec.ty) + " " + rec.operand
}

// operandOnly renders id as a bare operand with no type prefix.
func (b *Builder) operandOnly(id ValueID) string {
	if !id.IsValid() || int(id) >= len(b.values) {
		return "0"
	}
	return b.values[id].operand
}

func (b *Builder) valueType(id ValueID) LLVMTypeID {
	if !id.IsValid() || int(id) >= len(b.values) {
		return b.tI64
	}
	return b.values[id].ty
}

func (b *Builder) nextTemp() string {
	b.tmp++
	return fmt.Sprintf("%%t%d", b.tmp)
}

// --- block/function arena ---

func (b *Builder) emit(line string) {
	if !b.curBlock.IsValid() {
		return
	}
	blk := &b.blocks[b.curBlock]
	blk.instrs = append(blk.instrs, line)
}

// DeclareFunction registers a function signature and its entry block,
// and positions the cursor at that entry block.
func (b *Builder) DeclareFunction(name string, retTy LLVMTypeID, paramTypes []LLVMTypeID) FunctionID {
	b.funcs = append(b.funcs, funcRecord{name: name, retType: retTy, paramTypes: paramTypes})
	fn := FunctionID(len(b.funcs) - 1)
	entry := b.newBlock(fn, "entry")
	b.funcs[fn].entry = entry
	b.funcs[fn].blocks = append(b.funcs[fn].blocks, entry)
	b.curFunc = fn
	b.curBlock = entry
	return fn
}

func (b *Builder) newBlock(fn FunctionID, label string) BlockID {
	b.blocks = append(b.blocks, blockRecord{fn: fn, label: label})
	return BlockID(len(b.blocks) - 1)
}

// NewBlock appends a fresh basic block to the current function and
// returns its ID without moving the cursor.
func (b *Builder) NewBlock(label string) BlockID {
	id := b.newBlock(b.curFunc, label)
	if b.curFunc.IsValid() {
		b.funcs[b.curFunc].blocks = append(b.funcs[b.curFunc].blocks, id)
	}
	return id
}

// SetInsertPoint moves the cursor to an existing block.
func (b *Builder) SetInsertPoint(blk BlockID) { b.curBlock = blk }

// CurrentBlock returns the cursor's current block.
func (b *Builder) CurrentBlock() BlockID { return b.curBlock }

// Module renders every declared function and block into LLVM assembly
// text, in declaration order.
func (b *Builder) Module() string {
	var out strings.Builder
	for fn := FunctionID(1); int(fn) < len(b.funcs); fn++ {
		f := &b.funcs[fn]
		params := make([]string, len(f.paramTypes))
		for i, pt := range f.paramTypes {
			params[i] = fmt.Sprintf("%s %%p%d", b.typeText(pt), i)
		}
		attrs := ""
		if len(f.attrs) > 0 {
			attrs = " " + strings.Join(f.attrs, " ")
		}
		cc := f.cc
		if cc != "" {
			cc += " "
		}
		kw := "define"
		if f.declareOnly {
			kw = "declare"
		}
		fmt.Fprintf(&out, "%s %s%s @%s(%s)%s", kw, cc, b.typeText(f.retType), f.name, strings.Join(params, ", "), attrs)
		if f.declareOnly {
			out.WriteString("\n")
			continue
		}
		if f.personality.IsValid() && int(f.personality) < len(b.funcs) {
			fmt.Fprintf(&out, " personality ptr @%s", b.funcs[f.personality].name)
		}
		out.WriteString(" {\n")
		for _, bid := range f.blocks {
			blk := &b.blocks[bid]
			fmt.Fprintf(&out, "%s:\n", blk.label)
			for _, instr := range blk.instrs {
				out.WriteString(instr)
				out.WriteString("\n")
			}
		}
		out.WriteString("}\n\n")
	}
	return out.String()
}
