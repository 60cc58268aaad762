package irbuilder

import (
	"fmt"

	"ori/internal/diag"
)

// binary emits `%t = mnemonic ty lhs, rhs` after verifying both
// operands have kind want. On a mismatch it records
// CodegenOperandKindMismatch and returns ConstZero(resultTy) instead of
// emitting the (invalid) instruction - the error-recording contract
// every arithmetic/bitwise/comparison/float method follows.
func (b *Builder) binary(mnemonic string, want operandKind, lhs, rhs ValueID, resultTy LLVMTypeID) ValueID {
	lt, rt := b.valueType(lhs), b.valueType(rhs)
	if b.kindOf(lt) != want || b.kindOf(rt) != want || lt != rt {
		b.recordError(diag.CodegenOperandKindMismatch, fmt.Sprintf("%s requires matching %v operands", mnemonic, want))
		return b.ConstZero(resultTy)
	}
	tmp := b.nextTemp()
	b.emit(fmt.Sprintf("  %s = %s %s, %s", tmp, mnemonic, b.valueText(lhs), b.operandOnly(rhs)))
	return b.newValue(resultTy, tmp)
}

func (b *Builder) Add(lhs, rhs ValueID) ValueID  { return b.binary("add", kindInt, lhs, rhs, b.valueType(lhs)) }
func (b *Builder) Sub(lhs, rhs ValueID) ValueID  { return b.binary("sub", kindInt, lhs, rhs, b.valueType(lhs)) }
func (b *Builder) Mul(lhs, rhs ValueID) ValueID  { return b.binary("mul", kindInt, lhs, rhs, b.valueType(lhs)) }
func (b *Builder) SDiv(lhs, rhs ValueID) ValueID { return b.binary("sdiv", kindInt, lhs, rhs, b.valueType(lhs)) }
func (b *Builder) UDiv(lhs, rhs ValueID) ValueID { return b.binary("udiv", kindInt, lhs, rhs, b.valueType(lhs)) }
func (b *Builder) SRem(lhs, rhs ValueID) ValueID { return b.binary("srem", kindInt, lhs, rhs, b.valueType(lhs)) }
func (b *Builder) URem(lhs, rhs ValueID) ValueID { return b.binary("urem", kindInt, lhs, rhs, b.valueType(lhs)) }

func (b *Builder) And(lhs, rhs ValueID) ValueID  { return b.binary("and", kindInt, lhs, rhs, b.valueType(lhs)) }
func (b *Builder) Or(lhs, rhs ValueID) ValueID   { return b.binary("or", kindInt, lhs, rhs, b.valueType(lhs)) }
func (b *Builder) Xor(lhs, rhs ValueID) ValueID  { return b.binary("xor", kindInt, lhs, rhs, b.valueType(lhs)) }
func (b *Builder) Shl(lhs, rhs ValueID) ValueID  { return b.binary("shl", kindInt, lhs, rhs, b.valueType(lhs)) }
func (b *Builder) LShr(lhs, rhs ValueID) ValueID { return b.binary("lshr", kindInt, lhs, rhs, b.valueType(lhs)) }
func (b *Builder) AShr(lhs, rhs ValueID) ValueID { return b.binary("ashr", kindInt, lhs, rhs, b.valueType(lhs)) }

func (b *Builder) FAdd(lhs, rhs ValueID) ValueID { return b.binary("fadd", kindFloat, lhs, rhs, b.valueType(lhs)) }
func (b *Builder) FSub(lhs, rhs ValueID) ValueID { return b.binary("fsub", kindFloat, lhs, rhs, b.valueType(lhs)) }
func (b *Builder) FMul(lhs, rhs ValueID) ValueID { return b.binary("fmul", kindFloat, lhs, rhs, b.valueType(lhs)) }
func (b *Builder) FDiv(lhs, rhs ValueID) ValueID { return b.binary("fdiv", kindFloat, lhs, rhs, b.valueType(lhs)) }

func (b *Builder) cmp(mnemonic, pred string, want operandKind, lhs, rhs ValueID) ValueID {
	lt, rt := b.valueType(lhs), b.valueType(rhs)
	if b.kindOf(lt) != want || b.kindOf(rt) != want || lt != rt {
		b.recordError(diag.CodegenOperandKindMismatch, fmt.Sprintf("%s %s requires matching %v operands", mnemonic, pred, want))
		return b.ConstBool(false)
	}
	tmp := b.nextTemp()
	b.emit(fmt.Sprintf("  %s = %s %s %s, %s", tmp, mnemonic, pred, b.valueText(lhs), b.operandOnly(rhs)))
	return b.newValue(b.tBool, tmp)
}

func (b *Builder) ICmpEq(lhs, rhs ValueID) ValueID  { return b.cmp("icmp", "eq", kindInt, lhs, rhs) }
func (b *Builder) ICmpNe(lhs, rhs ValueID) ValueID  { return b.cmp("icmp", "ne", kindInt, lhs, rhs) }
func (b *Builder) ICmpSlt(lhs, rhs ValueID) ValueID { return b.cmp("icmp", "slt", kindInt, lhs, rhs) }
func (b *Builder) ICmpSle(lhs, rhs ValueID) ValueID { return b.cmp("icmp", "sle", kindInt, lhs, rhs) }
func (b *Builder) ICmpSgt(lhs, rhs ValueID) ValueID { return b.cmp("icmp", "sgt", kindInt, lhs, rhs) }
func (b *Builder) ICmpSge(lhs, rhs ValueID) ValueID { return b.cmp("icmp", "sge", kindInt, lhs, rhs) }

func (b *Builder) FCmpOEq(lhs, rhs ValueID) ValueID { return b.cmp("fcmp", "oeq", kindFloat, lhs, rhs) }
func (b *Builder) FCmpONe(lhs, rhs ValueID) ValueID { return b.cmp("fcmp", "one", kindFloat, lhs, rhs) }
func (b *Builder) FCmpOLt(lhs, rhs ValueID) ValueID { return b.cmp("fcmp", "olt", kindFloat, lhs, rhs) }
func (b *Builder) FCmpOGt(lhs, rhs ValueID) ValueID { return b.cmp("fcmp", "ogt", kindFloat, lhs, rhs) }
