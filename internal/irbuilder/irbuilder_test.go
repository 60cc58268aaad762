package irbuilder

import (
	"strings"
	"testing"
)

func TestSimpleFunctionEmitsBalancedBraces(t *testing.T) {
	b := NewBuilder(nil)
	fn := b.DeclareFunction("add", b.I64(), []LLVMTypeID{b.I64(), b.I64()})
	sum := b.Add(b.ConstI64(1), b.ConstI64(2))
	b.Ret(sum)

	mod := b.Module()
	if !strings.Contains(mod, "define i64 @add(") {
		t.Fatalf("expected a define line for add, got:\n%s", mod)
	}
	if !strings.Contains(mod, "= add i64") {
		t.Fatalf("expected an add instruction, got:\n%s", mod)
	}
	if b.CodegenErrorCount() != 0 {
		t.Fatalf("expected no codegen errors, got %d", b.CodegenErrorCount())
	}
	_ = fn
}

func TestLoadOnNonPointerRecordsErrorAndReturnsFallback(t *testing.T) {
	b := NewBuilder(nil)
	b.DeclareFunction("f", b.Void(), nil)

	notAPtr := b.ConstI64(5)
	got := b.Load(notAPtr, b.I64())

	if b.CodegenErrorCount() != 1 {
		t.Fatalf("expected exactly one recorded error, got %d", b.CodegenErrorCount())
	}
	if got == NoValueID {
		t.Fatalf("expected a typed fallback value, not NoValueID")
	}
}

func TestCondBrOnNonBoolDegradesToElseBranch(t *testing.T) {
	b := NewBuilder(nil)
	b.DeclareFunction("f", b.Void(), nil)
	thenB := b.NewBlock("then")
	elseB := b.NewBlock("else")

	notBool := b.ConstI64(1)
	b.CondBr(notBool, thenB, elseB)

	mod := b.Module()
	if !strings.Contains(mod, "br label %else") {
		t.Fatalf("expected an unconditional branch to else, got:\n%s", mod)
	}
	if strings.Contains(mod, "%then") {
		t.Fatalf("should never reference the then block when cond is malformed:\n%s", mod)
	}
	if b.CodegenErrorCount() != 1 {
		t.Fatalf("expected one recorded error, got %d", b.CodegenErrorCount())
	}
}

func TestCreateEntryAllocaInsertsAtFunctionEntry(t *testing.T) {
	b := NewBuilder(nil)
	b.DeclareFunction("f", b.Void(), nil)
	other := b.NewBlock("other")
	b.SetInsertPoint(other)
	b.Add(b.ConstI64(1), b.ConstI64(1)) // instruction in a non-entry block first

	b.CreateEntryAlloca(b.I64())
	b.CreateEntryAlloca(b.I64())

	entryBlk := b.blocks[b.funcs[b.curFunc].entry]
	if len(entryBlk.instrs) != 2 {
		t.Fatalf("expected both entry allocas in the entry block, got %d instrs", len(entryBlk.instrs))
	}
	for _, instr := range entryBlk.instrs {
		if !strings.Contains(instr, "alloca i64") {
			t.Fatalf("expected an alloca instruction in the entry block, got %q", instr)
		}
	}
	if b.curBlock != other {
		t.Fatalf("expected the cursor restored to %v, got %v", other, b.curBlock)
	}
}

func TestPhiFromIncomingCollapsesSingleInput(t *testing.T) {
	b := NewBuilder(nil)
	b.DeclareFunction("f", b.I64(), nil)
	blk := b.NewBlock("pred")

	seven := b.ConstI64(7)
	val, ok := b.PhiFromIncoming(b.I64(), []PhiIncoming{{Value: seven, Block: blk}})
	if !ok {
		t.Fatalf("expected ok=true for a single incoming pair")
	}
	if val != seven {
		t.Fatalf("expected the single incoming value to be returned directly, got %q", b.valueText(val))
	}
}

func TestPhiFromIncomingReportsFalseForZeroInputs(t *testing.T) {
	b := NewBuilder(nil)
	b.DeclareFunction("f", b.I64(), nil)

	_, ok := b.PhiFromIncoming(b.I64(), nil)
	if ok {
		t.Fatalf("expected ok=false for zero incoming pairs")
	}
}

func TestCallWithSretLoadsTheReturnSlot(t *testing.T) {
	b := NewBuilder(nil)
	pointTy := b.StructLLVMType([]LLVMTypeID{b.I64(), b.I64()})
	callee := b.DeclareFunction("make_point", b.Void(), []LLVMTypeID{b.Ptr()})
	b.funcs[callee].declareOnly = true

	b.DeclareFunction("caller", pointTy, nil)
	result := b.CallWithSret(callee, nil, pointTy)

	mod := b.Module()
	if !strings.Contains(mod, "call void @make_point(") {
		t.Fatalf("expected a void sret call, got:\n%s", mod)
	}
	if b.valueType(result) != pointTy {
		t.Fatalf("expected the loaded result to have the point struct type")
	}
}

func TestStructGepOutOfBoundsRecordsErrorAndReturnsNull(t *testing.T) {
	b := NewBuilder(nil)
	b.DeclareFunction("f", b.Void(), nil)
	ptr := b.CreateEntryAlloca(b.I64())

	got := b.StructGep(b.I64(), ptr, 5, 2)
	if b.CodegenErrorCount() != 1 {
		t.Fatalf("expected one recorded error, got %d", b.CodegenErrorCount())
	}
	if b.valueText(got) != "ptr null" {
		t.Fatalf("expected a null-pointer fallback, got %q", b.valueText(got))
	}
}
