package irbuilder

import (
	"fmt"
	"strings"

	"ori/internal/diag"
)

func (b *Builder) argList(args []ValueID) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = b.valueText(a)
	}
	return strings.Join(parts, ", ")
}

// Call emits a direct call.
func (b *Builder) Call(fn FunctionID, args []ValueID) ValueID {
	return b.call(fn, args, "")
}

// CallTail emits a direct call with the tail flag set - combined with
// fastcc on the callee this enables full tail-call elimination.
func (b *Builder) CallTail(fn FunctionID, args []ValueID) ValueID {
	return b.call(fn, args, "musttail ")
}

func (b *Builder) call(fn FunctionID, args []ValueID, prefix string) ValueID {
	if !fn.IsValid() || int(fn) >= len(b.funcs) {
		b.recordError(diag.CodegenOperandKindMismatch, "call to an invalid function handle")
		return b.ConstZero(b.tI64)
	}
	f := b.funcs[fn]
	if f.retType == b.tVoid {
		b.emit(fmt.Sprintf("  %scall %s @%s(%s)", prefix, b.typeText(f.retType), f.name, b.argList(args)))
		return NoValueID
	}
	tmp := b.nextTemp()
	b.emit(fmt.Sprintf("  %s = %scall %s @%s(%s)", tmp, prefix, b.typeText(f.retType), f.name, b.argList(args)))
	return b.newValue(f.retType, tmp)
}

// CallIndirect calls through a function pointer with an explicit
// signature (the callee is not statically known, e.g. a closure or a
// vtable slot).
func (b *Builder) CallIndirect(calleePtr ValueID, retTy LLVMTypeID, paramTypes []LLVMTypeID, args []ValueID) ValueID {
	if b.kindOf(b.valueType(calleePtr)) != kindPtr {
		b.recordError(diag.CodegenOperandKindMismatch, "call_indirect requires a function-pointer operand")
		return b.ConstZero(retTy)
	}
	sig := b.funcPointerSig(retTy, paramTypes)
	if retTy == b.tVoid {
		b.emit(fmt.Sprintf("  call %s %s(%s)", sig, b.operandOnly(calleePtr), b.argList(args)))
		return NoValueID
	}
	tmp := b.nextTemp()
	b.emit(fmt.Sprintf("  %s = call %s %s(%s)", tmp, sig, b.operandOnly(calleePtr), b.argList(args)))
	return b.newValue(retTy, tmp)
}

func (b *Builder) funcPointerSig(retTy LLVMTypeID, paramTypes []LLVMTypeID) string {
	parts := make([]string, len(paramTypes))
	for i, p := range paramTypes {
		parts[i] = b.typeText(p)
	}
	return fmt.Sprintf("%s (%s)", b.typeText(retTy), strings.Join(parts, ", "))
}

// Invoke is an unwind-aware direct call: it automatically propagates
// the callee's calling convention, since the underlying native library
// does not do so by default (§4.10).
func (b *Builder) Invoke(fn FunctionID, args []ValueID, normalB, unwindB BlockID) ValueID {
	if !fn.IsValid() || int(fn) >= len(b.funcs) {
		b.recordError(diag.CodegenOperandKindMismatch, "invoke to an invalid function handle")
		return b.ConstZero(b.tI64)
	}
	f := b.funcs[fn]
	cc := f.cc
	if cc != "" {
		cc += " "
	}
	if f.retType == b.tVoid {
		b.emit(fmt.Sprintf("  invoke %s%s @%s(%s) to label %%%s unwind label %%%s",
			cc, b.typeText(f.retType), f.name, b.argList(args), b.label(normalB), b.label(unwindB)))
		return NoValueID
	}
	tmp := b.nextTemp()
	b.emit(fmt.Sprintf("  %s = invoke %s%s @%s(%s) to label %%%s unwind label %%%s",
		tmp, cc, b.typeText(f.retType), f.name, b.argList(args), b.label(normalB), b.label(unwindB)))
	return b.newValue(f.retType, tmp)
}

// InvokeIndirect is Invoke through a function pointer.
func (b *Builder) InvokeIndirect(calleePtr ValueID, retTy LLVMTypeID, paramTypes []LLVMTypeID, args []ValueID, normalB, unwindB BlockID) ValueID {
	if b.kindOf(b.valueType(calleePtr)) != kindPtr {
		b.recordError(diag.CodegenOperandKindMismatch, "invoke_indirect requires a function-pointer operand")
		return b.ConstZero(retTy)
	}
	sig := b.funcPointerSig(retTy, paramTypes)
	if retTy == b.tVoid {
		b.emit(fmt.Sprintf("  invoke %s %s(%s) to label %%%s unwind label %%%s",
			sig, b.operandOnly(calleePtr), b.argList(args), b.label(normalB), b.label(unwindB)))
		return NoValueID
	}
	tmp := b.nextTemp()
	b.emit(fmt.Sprintf("  %s = invoke %s %s(%s) to label %%%s unwind label %%%s",
		tmp, sig, b.operandOnly(calleePtr), b.argList(args), b.label(normalB), b.label(unwindB)))
	return b.newValue(retTy, tmp)
}

// CallWithSret hides the sret ABI detail from callers: it allocates an
// entry-block slot for the return value, prepends it as the sret
// argument, invokes the void-returning callee, and loads the result.
func (b *Builder) CallWithSret(callee FunctionID, args []ValueID, retTy LLVMTypeID) ValueID {
	slot := b.CreateEntryAlloca(retTy)
	fullArgs := append([]ValueID{slot}, args...)
	b.call(callee, fullArgs, "")
	return b.Load(slot, retTy)
}
