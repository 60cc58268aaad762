package irbuilder

import (
	"fmt"

	"ori/internal/diag"
)

func (b *Builder) label(blk BlockID) string {
	if !blk.IsValid() || int(blk) >= len(b.blocks) {
		return "unreachable_block"
	}
	return b.blocks[blk].label
}

// Br emits an unconditional branch.
func (b *Builder) Br(target BlockID) {
	b.emit(fmt.Sprintf("  br label %%%s", b.label(target)))
}

// CondBr emits a conditional branch on cond. A non-bool cond operand
// degrades to an unconditional branch straight to elseB, per §4.10 -
// the safest fallback, since taking the "didn't happen" path can never
// be more wrong than crashing the native library with a malformed
// conditional branch.
func (b *Builder) CondBr(cond ValueID, thenB, elseB BlockID) {
	if b.kindOf(b.valueType(cond)) != kindBool {
		b.recordError(diag.CodegenOperandKindMismatch, "cond_br requires an i1 condition")
		b.Br(elseB)
		return
	}
	b.emit(fmt.Sprintf("  br %s, label %%%s, label %%%s", b.valueText(cond), b.label(thenB), b.label(elseB)))
}

// SwitchCase is one value/target pair of a Switch.
type SwitchCase struct {
	Value  int64
	Target BlockID
}

// Switch emits an integer switch over val.
func (b *Builder) Switch(val ValueID, defaultB BlockID, cases []SwitchCase) {
	if b.kindOf(b.valueType(val)) != kindInt {
		b.recordError(diag.CodegenOperandKindMismatch, "switch requires an integer operand")
		b.Br(defaultB)
		return
	}
	ty := b.typeText(b.valueType(val))
	line := fmt.Sprintf("  switch %s, label %%%s [", b.valueText(val), b.label(defaultB))
	b.emit(line)
	for _, c := range cases {
		b.emit(fmt.Sprintf("    %s %d, label %%%s", ty, c.Value, b.label(c.Target)))
	}
	b.emit("  ]")
}

// Select emits a ternary select between a and c on cond.
func (b *Builder) Select(cond, a, c ValueID) ValueID {
	resultTy := b.valueType(a)
	if b.kindOf(b.valueType(cond)) != kindBool || b.valueType(a) != b.valueType(c) {
		b.recordError(diag.CodegenOperandKindMismatch, "select requires a bool condition and matching arm types")
		return b.ConstZero(resultTy)
	}
	tmp := b.nextTemp()
	b.emit(fmt.Sprintf("  %s = select %s, %s, %s", tmp, b.valueText(cond), b.valueText(a), b.valueText(c)))
	return b.newValue(resultTy, tmp)
}

// Ret emits a value return.
func (b *Builder) Ret(val ValueID) {
	b.emit(fmt.Sprintf("  ret %s", b.valueText(val)))
}

// RetVoid emits a void return.
func (b *Builder) RetVoid() { b.emit("  ret void") }

// Unreachable marks the current point as unreachable.
func (b *Builder) Unreachable() { b.emit("  unreachable") }
