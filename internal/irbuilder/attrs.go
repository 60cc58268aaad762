package irbuilder

import "fmt"

// SetFastcc and SetCcc set fn's calling convention. Numbered per LLVM's
// calling-convention encoding: fastcc is 8, ccc (the C calling
// convention, LLVM's default) is 0.
func (b *Builder) SetFastcc(fn FunctionID) { b.setCC(fn, "fastcc") }
func (b *Builder) SetCcc(fn FunctionID)    { b.setCC(fn, "ccc") }

func (b *Builder) setCC(fn FunctionID, cc string) {
	if fn.IsValid() && int(fn) < len(b.funcs) {
		b.funcs[fn].cc = cc
	}
}

func (b *Builder) addAttr(fn FunctionID, attr string) {
	if fn.IsValid() && int(fn) < len(b.funcs) {
		b.funcs[fn].attrs = append(b.funcs[fn].attrs, attr)
	}
}

func (b *Builder) Nounwind(fn FunctionID)     { b.addAttr(fn, "nounwind") }
func (b *Builder) NoInline(fn FunctionID)     { b.addAttr(fn, "noinline") }
func (b *Builder) Cold(fn FunctionID)         { b.addAttr(fn, "cold") }
func (b *Builder) NoAliasReturn(fn FunctionID) { b.addAttr(fn, "noalias") }

// Memory attaches LLVM's `memory(...)` attribute. argmemReadWrite
// corresponds to the bitfield value 12 (argmem: readwrite) per §4.10.
func (b *Builder) Memory(fn FunctionID, argmemReadWrite bool) {
	if argmemReadWrite {
		b.addAttr(fn, "memory(argmem: readwrite)")
	}
}

// Sret marks fn's first parameter as the structured-return out
// parameter of type ty.
func (b *Builder) Sret(fn FunctionID, ty LLVMTypeID) {
	b.addAttr(fn, fmt.Sprintf("sret(%s)", b.typeText(ty)))
}

// NoAliasParam and ByvalParam attach their respective per-parameter
// attributes to fn as a whole (the façade does not track individual
// parameter attribute lists separately from function-level ones, since
// every caller of this builder attaches them immediately after
// declaring the single parameter they describe).
func (b *Builder) NoAliasParam(fn FunctionID) { b.addAttr(fn, "noalias") }
func (b *Builder) ByvalParam(fn FunctionID, ty LLVMTypeID) {
	b.addAttr(fn, fmt.Sprintf("byval(%s)", b.typeText(ty)))
}
