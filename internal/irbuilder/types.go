package irbuilder

import "strconv"

// I8, I32, I64, F64, Bool, Ptr, and Void return the builder's
// pre-registered primitive LLVMTypeIDs.
func (b *Builder) I8() LLVMTypeID   { return b.tI8 }
func (b *Builder) I32() LLVMTypeID  { return b.tI32 }
func (b *Builder) I64() LLVMTypeID  { return b.tI64 }
func (b *Builder) F64() LLVMTypeID  { return b.tF64 }
func (b *Builder) Bool() LLVMTypeID { return b.tBool }
func (b *Builder) Ptr() LLVMTypeID  { return b.tPtr }
func (b *Builder) Void() LLVMTypeID { return b.tVoid }

// ClosureType returns the `{ ptr, ptr }` closure representation
// (function pointer, captured-environment pointer).
func (b *Builder) ClosureType() LLVMTypeID { return b.tClosure }

// StructLLVMType registers (or looks up) an LLVM literal struct type
// built from the given field types.
func (b *Builder) StructLLVMType(fields []LLVMTypeID) LLVMTypeID {
	texts := make([]string, len(fields))
	for i, f := range fields {
		texts[i] = b.typeText(f)
	}
	llvm := "{ "
	for i, t := range texts {
		if i > 0 {
			llvm += ", "
		}
		llvm += t
	}
	llvm += " }"
	return b.registerType(llvm)
}

func (b *Builder) ConstI8(v int8) ValueID   { return b.newValue(b.tI8, strconv.FormatInt(int64(v), 10)) }
func (b *Builder) ConstI32(v int32) ValueID { return b.newValue(b.tI32, strconv.FormatInt(int64(v), 10)) }
func (b *Builder) ConstI64(v int64) ValueID { return b.newValue(b.tI64, strconv.FormatInt(v, 10)) }
func (b *Builder) ConstF64(v float64) ValueID {
	return b.newValue(b.tF64, strconv.FormatFloat(v, 'g', -1, 64))
}
func (b *Builder) ConstBool(v bool) ValueID {
	if v {
		return b.newValue(b.tBool, "1")
	}
	return b.newValue(b.tBool, "0")
}
func (b *Builder) ConstNullPtr() ValueID { return b.newValue(b.tPtr, "null") }

// ConstZero returns the typed zero value for ty - int/float zero, false,
// null for ptr, or a zeroinitializer for an aggregate. This is also the
// typed-fallback value every error-recording method returns on a type
// mismatch, per the §4.10/§7 contract.
func (b *Builder) ConstZero(ty LLVMTypeID) ValueID {
	switch ty {
	case b.tI8, b.tI32, b.tI64:
		return b.newValue(ty, "0")
	case b.tF64:
		return b.newValue(ty, "0.0")
	case b.tBool:
		return b.newValue(ty, "0")
	case b.tPtr:
		return b.ConstNullPtr()
	case b.tVoid:
		return b.newValue(ty, "")
	}
	return b.newValue(ty, "zeroinitializer")
}

type operandKind uint8

const (
	kindOther operandKind = iota
	kindInt
	kindFloat
	kindBool
	kindPtr
)

func (b *Builder) kindOf(ty LLVMTypeID) operandKind {
	switch b.typeText(ty) {
	case "i1":
		return kindBool
	case "i8", "i16", "i32", "i64":
		return kindInt
	case "float", "double":
		return kindFloat
	case "ptr":
		return kindPtr
	}
	return kindOther
}
