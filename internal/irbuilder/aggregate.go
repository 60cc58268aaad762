package irbuilder

import (
	"fmt"

	"ori/internal/diag"
)

// ExtractValue reads field index out of an aggregate value. An
// out-of-bounds index records CodegenIndexOutOfBounds and returns
// ConstZero(resultTy).
func (b *Builder) ExtractValue(agg ValueID, index, fieldCount int, resultTy LLVMTypeID) ValueID {
	if index < 0 || index >= fieldCount {
		b.recordError(diag.CodegenIndexOutOfBounds, "extractvalue index out of bounds")
		return b.ConstZero(resultTy)
	}
	tmp := b.nextTemp()
	b.emit(fmt.Sprintf("  %s = extractvalue %s, %d", tmp, b.valueText(agg), index))
	return b.newValue(resultTy, tmp)
}

// InsertValue writes elem into field index of an aggregate value,
// returning the updated aggregate. An out-of-bounds index records
// CodegenIndexOutOfBounds and returns agg unchanged, per §4.10's
// "or the unchanged aggregate" fallback.
func (b *Builder) InsertValue(agg ValueID, elem ValueID, index, fieldCount int) ValueID {
	if index < 0 || index >= fieldCount {
		b.recordError(diag.CodegenIndexOutOfBounds, "insertvalue index out of bounds")
		return agg
	}
	tmp := b.nextTemp()
	b.emit(fmt.Sprintf("  %s = insertvalue %s, %s, %d", tmp, b.valueText(agg), b.valueText(elem), index))
	return b.newValue(b.valueType(agg), tmp)
}

// BuildStruct constructs a value of a literal struct type field by
// field, via a chain of InsertValue onto an undef seed.
func (b *Builder) BuildStruct(ty LLVMTypeID, fields []ValueID) ValueID {
	agg := b.newValue(ty, "undef")
	for i, f := range fields {
		agg = b.InsertValue(agg, f, i, len(fields))
	}
	return agg
}
