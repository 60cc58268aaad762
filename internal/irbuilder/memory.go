package irbuilder

import (
	"fmt"

	"ori/internal/diag"
)

// Alloca emits a stack allocation at the current insertion point and
// returns a ptr-typed value for the slot.
func (b *Builder) Alloca(ty LLVMTypeID) ValueID {
	tmp := b.nextTemp()
	b.emit(fmt.Sprintf("  %s = alloca %s", tmp, b.typeText(ty)))
	return b.newValue(b.tPtr, tmp)
}

// CreateEntryAlloca always inserts the alloca at the current function's
// entry block, regardless of the cursor's current block, saving and
// restoring the cursor around the insertion - per §4.10, so that every
// stack slot a function ever needs lives at its entry and a single
// `mem2reg`-style pass can promote it.
func (b *Builder) CreateEntryAlloca(ty LLVMTypeID) ValueID {
	if !b.curFunc.IsValid() {
		return b.Alloca(ty)
	}
	savedBlock := b.curBlock
	entry := b.funcs[b.curFunc].entry
	tmp := b.nextTemp()
	line := fmt.Sprintf("  %s = alloca %s", tmp, b.typeText(ty))

	blk := &b.blocks[entry]
	at := b.funcs[b.curFunc].entryAt
	if at > len(blk.instrs) {
		at = len(blk.instrs)
	}
	blk.instrs = append(blk.instrs, "")
	copy(blk.instrs[at+1:], blk.instrs[at:])
	blk.instrs[at] = line
	b.funcs[b.curFunc].entryAt = at + 1

	b.curBlock = savedBlock
	return b.newValue(b.tPtr, tmp)
}

// Load reads pointee type ty through ptr. A non-pointer operand
// records CodegenOperandKindMismatch and returns ConstZero(ty).
func (b *Builder) Load(ptr ValueID, ty LLVMTypeID) ValueID {
	if b.kindOf(b.valueType(ptr)) != kindPtr {
		b.recordError(diag.CodegenOperandKindMismatch, "load requires a pointer operand")
		return b.ConstZero(ty)
	}
	tmp := b.nextTemp()
	b.emit(fmt.Sprintf("  %s = load %s, %s", tmp, b.typeText(ty), b.valueText(ptr)))
	return b.newValue(ty, tmp)
}

// Store writes val through ptr. A non-pointer ptr operand records
// CodegenOperandKindMismatch and the store is skipped - never panics,
// never emits malformed IR.
func (b *Builder) Store(ptr ValueID, val ValueID) {
	if b.kindOf(b.valueType(ptr)) != kindPtr {
		b.recordError(diag.CodegenOperandKindMismatch, "store requires a pointer operand")
		return
	}
	b.emit(fmt.Sprintf("  store %s, %s", b.valueText(val), b.valueText(ptr)))
}

// Gep computes a pointer offset from ptr over baseType using indices. A
// void baseType (no pointee to index into) records CodegenBadPointee
// rather than emitting a geometrically meaningless gep.
func (b *Builder) Gep(baseType LLVMTypeID, ptr ValueID, indices []ValueID) ValueID {
	if b.kindOf(b.valueType(ptr)) != kindPtr {
		b.recordError(diag.CodegenOperandKindMismatch, "gep requires a pointer base operand")
		return b.ConstNullPtr()
	}
	if baseType == b.tVoid {
		b.recordError(diag.CodegenBadPointee, "gep requires a non-void pointee type")
		return b.ConstNullPtr()
	}
	args := b.valueText(ptr)
	for _, idx := range indices {
		args += ", " + b.valueText(idx)
	}
	tmp := b.nextTemp()
	b.emit(fmt.Sprintf("  %s = getelementptr %s, %s", tmp, b.typeText(baseType), args))
	return b.newValue(b.tPtr, tmp)
}

// StructGep is Gep specialized to a single constant struct-field index,
// validated against fieldCount - an out-of-bounds index records
// CodegenIndexOutOfBounds and returns a null pointer instead of
// emitting a gep the native library would refuse.
func (b *Builder) StructGep(structType LLVMTypeID, ptr ValueID, index, fieldCount int) ValueID {
	if index < 0 || index >= fieldCount {
		b.recordError(diag.CodegenIndexOutOfBounds, "struct_gep index out of bounds")
		return b.ConstNullPtr()
	}
	return b.Gep(structType, ptr, []ValueID{b.ConstI32(0), b.ConstI32(int32(index))})
}
