// Package layout implements the type layout resolver (C8): it produces a
// concrete target-IR type for every types.Idx, adapting the teacher's
// two-phase opaque/body struct construction (internal/layout,
// internal/backend/llvm/types.go) from a types.TypeID-keyed LayoutEngine
// to the Idx-keyed construction described in SPEC_FULL §4.8.
package layout

import (
	"fmt"

	"ori/internal/diag"
	"ori/internal/source"
	"ori/internal/typeinfo"
	"ori/internal/types"
)

// Kind discriminates the shape of a resolved target-IR type.
type Kind uint8

const (
	KindI8 Kind = iota
	KindI32
	KindI64
	KindF64
	KindPtr
	KindNamedStruct // opaque-then-finalized struct/enum handle
	KindComposite   // anonymous aggregate: Option/Result/Tuple bodies
	KindArrayI64    // [Count x i64], the enum payload word array
)

// LLVMType is the target-IR type SPEC_FULL's layout resolver hands back.
// It mirrors the shape of a real LLVM type handle closely enough to drive
// C12's IrBuilder without this package depending on an LLVM binding.
type LLVMType struct {
	Kind  Kind
	Name  string     // KindNamedStruct
	Count int        // KindArrayI64
	Elems []LLVMType // KindComposite, and the finalized body of KindNamedStruct
}

// maxDepth is the recursion-depth guard from §4.8 step 4: indirect cycles
// that thread through distinct Idx values (so the direct opaque-handle
// check never fires) degrade to an i64 fallback instead of overflowing
// the Go call stack.
const maxDepth = 32

// namedStruct is the Phase 1 opaque handle, filled in during Phase 2/3.
type namedStruct struct {
	llvm      LLVMType
	finalized bool
}

// Resolver resolves types.Idx values to LLVMType, caching named
// struct/enum handles across calls.
type Resolver struct {
	pool     *types.Pool
	infos    *typeinfo.Store
	reporter diag.Reporter

	named     map[types.Idx]*namedStruct
	resolving map[types.Idx]struct{}
	depth     int
}

// NewResolver constructs a Resolver over pool, using infos for the
// conservative store-size estimates Result's payload-picking rule needs.
// reporter may be nil.
func NewResolver(pool *types.Pool, infos *typeinfo.Store, reporter diag.Reporter) *Resolver {
	return &Resolver{
		pool:      pool,
		infos:     infos,
		reporter:  reporter,
		named:     make(map[types.Idx]*namedStruct),
		resolving: make(map[types.Idx]struct{}),
	}
}

// Resolve produces the LLVMType for idx, per §4.8's two-phase algorithm.
func (r *Resolver) Resolve(idx types.Idx) LLVMType {
	idx = r.pool.ResolveFully(idx)

	if r.depth >= maxDepth {
		r.warn(idx, "layout resolution exceeded the recursion-depth guard, falling back to i64")
		return LLVMType{Kind: KindI64}
	}

	switch r.pool.Tag(idx) {
	case types.TagInt, types.TagDuration, types.TagSize:
		return LLVMType{Kind: KindI64}
	case types.TagFloat:
		return LLVMType{Kind: KindF64}
	case types.TagBool, types.TagOrdering:
		return LLVMType{Kind: KindI8}
	case types.TagChar:
		return LLVMType{Kind: KindI32}
	case types.TagByte:
		return LLVMType{Kind: KindI8}
	case types.TagUnit, types.TagNever:
		return LLVMType{Kind: KindI8}
	case types.TagStr, types.TagList, types.TagSet, types.TagMap, types.TagChannel, types.TagFunction:
		return LLVMType{Kind: KindPtr}
	case types.TagOption:
		return r.resolveOption(idx)
	case types.TagResult:
		return r.resolveResult(idx)
	case types.TagTuple:
		return r.resolveTuple(idx)
	case types.TagStruct, types.TagEnum:
		return r.resolveNamed(idx)
	default: // TagNamed (unresolved), TagError, reserved padding
		return LLVMType{Kind: KindI64}
	}
}

func (r *Resolver) resolveOption(idx types.Idx) LLVMType {
	r.depth++
	inner := r.Resolve(r.pool.Elem(idx))
	r.depth--
	return LLVMType{Kind: KindComposite, Elems: []LLVMType{{Kind: KindI8}, inner}}
}

func (r *Resolver) resolveResult(idx types.Idx) LLVMType {
	ok, err := r.pool.ResultOkErr(idx)
	okSize, errSize := r.storeSizeOf(ok), r.storeSizeOf(err)
	larger := ok
	if errSize > okSize {
		larger = err
	}
	r.depth++
	payload := r.Resolve(larger)
	r.depth--
	return LLVMType{Kind: KindComposite, Elems: []LLVMType{{Kind: KindI8}, payload}}
}

func (r *Resolver) resolveTuple(idx types.Idx) LLVMType {
	elemIDs := r.pool.TupleElems(idx)
	elems := make([]LLVMType, len(elemIDs))
	r.depth++
	for i, e := range elemIDs {
		elems[i] = r.Resolve(e)
	}
	r.depth--
	return LLVMType{Kind: KindComposite, Elems: elems}
}

// resolveNamed implements the Phase 1/2/3 construction for Struct/Enum.
func (r *Resolver) resolveNamed(idx types.Idx) LLVMType {
	if _, inProgress := r.resolving[idx]; inProgress {
		// Cycle: the opaque handle already exists in `named`, hand it back
		// without re-entering field resolution.
		return r.named[idx].llvm
	}
	if ns, ok := r.named[idx]; ok {
		return ns.llvm
	}

	// Phase 1: opaque creation.
	name := fmt.Sprintf("%%struct.%d", idx)
	ns := &namedStruct{llvm: LLVMType{Kind: KindNamedStruct, Name: name}}
	r.named[idx] = ns

	// Phase 2: field/variant resolution, cycle-guarded by `resolving`.
	r.resolving[idx] = struct{}{}
	r.depth++
	var body []LLVMType
	if r.pool.Tag(idx) == types.TagStruct {
		for _, f := range r.pool.StructFields(idx) {
			body = append(body, r.Resolve(f.Type))
		}
	} else {
		body = r.enumBody(idx)
	}
	r.depth--
	delete(r.resolving, idx)

	// Phase 3: body finalization.
	ns.llvm.Elems = body
	ns.finalized = true
	return LLVMType{Kind: KindNamedStruct, Name: name, Elems: body}
}

// enumBody computes `{ i8 tag, [N x i64] payload }`, omitting the payload
// array entirely when every variant is unit (§4.8 step 3).
func (r *Resolver) enumBody(idx types.Idx) []LLVMType {
	var maxPayloadBytes uint64
	for _, v := range r.pool.EnumVariants(idx) {
		var sum uint64
		for _, f := range v.Fields {
			sum += r.storeSizeOf(f.Type)
		}
		if sum > maxPayloadBytes {
			maxPayloadBytes = sum
		}
	}
	if maxPayloadBytes == 0 {
		return []LLVMType{{Kind: KindI8}}
	}
	n := int((maxPayloadBytes + 7) / 8)
	return []LLVMType{{Kind: KindI8}, {Kind: KindArrayI64, Count: n}}
}

// storeSizeOf returns infos's conservative byte estimate for idx, falling
// back to pointer size for dynamically-sized or opaque types.
func (r *Resolver) storeSizeOf(idx types.Idx) uint64 {
	if r.infos == nil {
		return 8
	}
	info := r.infos.Get(idx)
	if info.DynamicSize {
		return 8
	}
	return info.StoreSize
}

func (r *Resolver) warn(idx types.Idx, msg string) {
	if r.reporter == nil {
		return
	}
	r.reporter.Report(diag.InternalLayoutCycleDepth, diag.SevWarning, source.DummySpan,
		fmt.Sprintf("%s (Idx=%d)", msg, idx), nil, nil)
}
