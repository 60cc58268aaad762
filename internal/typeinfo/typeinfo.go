// Package typeinfo implements the TypeInfo cache (C7): a lazy, cycle-safe
// classification of every types.Idx into its codegen-relevant shape and
// triviality, generalizing the teacher's internal/layout caching style
// (a pre-seeded slice indexed directly by handle, §4.7).
package typeinfo

import (
	"ori/internal/diag"
	"ori/internal/source"
	"ori/internal/types"
)

// Shape categorizes what a type IS at codegen time, per §3's TypeInfo
// variant list.
type Shape uint8

const (
	ShapePrimitive Shape = iota
	ShapeCollection  // List, Map, Set, Range
	ShapeTaggedUnion // Option, Result
	ShapeComposite   // Tuple, Struct, Enum
	ShapeHandle      // Channel, Function
	ShapeError
)

// TypeInfo is the variant every resolved Idx classifies to.
type TypeInfo struct {
	Shape       Shape
	StoreSize   uint64 // byte size; meaningless if DynamicSize
	Align       uint64
	DynamicSize bool
	Trivial     bool
}

var errorInfo = TypeInfo{Shape: ShapeError}

// Store owns the lazy, pre-seeded TypeInfo cache for one Pool.
type Store struct {
	pool     *types.Pool
	reporter diag.Reporter

	cache []*TypeInfo // indexed by types.Idx; nil means not yet computed

	computing          map[types.Idx]struct{}
	classifyingTrivial map[types.Idx]struct{}
	trivialCache       map[types.Idx]bool
}

// NewStore constructs a Store with primitives 0-63 pre-seeded, per §4.7.
// reporter may be nil (diagnostics are then dropped, never panicked on).
func NewStore(pool *types.Pool, reporter diag.Reporter) *Store {
	s := &Store{
		pool:               pool,
		reporter:           reporter,
		cache:              make([]*TypeInfo, 64, 256),
		computing:          make(map[types.Idx]struct{}),
		classifyingTrivial: make(map[types.Idx]struct{}),
		trivialCache:       make(map[types.Idx]bool, 64),
	}
	for idx := types.Idx(0); int(idx) < 64; idx++ {
		info := s.computePrimitiveOrPadding(idx)
		s.cache[idx] = &info
	}
	return s
}

func (s *Store) computePrimitiveOrPadding(idx types.Idx) TypeInfo {
	switch s.pool.Tag(idx) {
	case types.TagInt, types.TagByte:
		return TypeInfo{Shape: ShapePrimitive, StoreSize: 8, Align: 8, Trivial: true}
	case types.TagFloat:
		return TypeInfo{Shape: ShapePrimitive, StoreSize: 8, Align: 8, Trivial: true}
	case types.TagBool:
		return TypeInfo{Shape: ShapePrimitive, StoreSize: 1, Align: 1, Trivial: true}
	case types.TagChar:
		return TypeInfo{Shape: ShapePrimitive, StoreSize: 4, Align: 4, Trivial: true}
	case types.TagStr:
		return TypeInfo{Shape: ShapeHandle, StoreSize: 16, Align: 8, Trivial: false}
	case types.TagUnit:
		return TypeInfo{Shape: ShapePrimitive, StoreSize: 0, Align: 1, Trivial: true}
	case types.TagNever:
		return TypeInfo{Shape: ShapePrimitive, StoreSize: 0, Align: 1, Trivial: true}
	case types.TagDuration, types.TagSize:
		return TypeInfo{Shape: ShapePrimitive, StoreSize: 8, Align: 8, Trivial: true}
	case types.TagOrdering:
		return TypeInfo{Shape: ShapePrimitive, StoreSize: 1, Align: 1, Trivial: true}
	default: // TagError and reserved padding
		return errorInfo
	}
}

// Get returns the TypeInfo for idx, computing and caching it on first
// access. Returns the Error variant for NoIdx and for a type that could
// not be resolved (cycle, unresolved Named).
func (s *Store) Get(idx types.Idx) TypeInfo {
	if idx == types.NoIdx {
		return errorInfo
	}
	resolved := s.pool.ResolveFully(idx)
	if int(resolved) < len(s.cache) && s.cache[resolved] != nil {
		return *s.cache[resolved]
	}
	info := s.computeTypeInfo(resolved)
	s.ensureCapacity(resolved)
	s.cache[resolved] = &info
	return info
}

func (s *Store) ensureCapacity(idx types.Idx) {
	for types.Idx(len(s.cache)) <= idx {
		s.cache = append(s.cache, nil)
	}
}

// computeTypeInfo implements the reentrancy-guarded classification
// described in §4.7: a re-entry (Named -> Applied -> Named) returns the
// Error variant and reports a warning instead of recursing forever.
func (s *Store) computeTypeInfo(idx types.Idx) TypeInfo {
	if _, reentered := s.computing[idx]; reentered {
		s.warn(diag.InternalTypeInfoCycle, "type-info computation re-entered a cycle")
		return errorInfo
	}
	s.computing[idx] = struct{}{}
	defer delete(s.computing, idx)

	switch s.pool.Tag(idx) {
	case types.TagList, types.TagSet:
		return TypeInfo{Shape: ShapeCollection, StoreSize: 24, Align: 8, DynamicSize: true, Trivial: false}
	case types.TagMap:
		return TypeInfo{Shape: ShapeCollection, StoreSize: 24, Align: 8, DynamicSize: true, Trivial: false}
	case types.TagRangeType:
		return TypeInfo{Shape: ShapeCollection, StoreSize: 16, Align: 8, Trivial: true}
	case types.TagChannel, types.TagFunction:
		return TypeInfo{Shape: ShapeHandle, StoreSize: 16, Align: 8, Trivial: false}
	case types.TagOption:
		inner := s.Get(s.pool.Elem(idx))
		return TypeInfo{
			Shape:     ShapeTaggedUnion,
			StoreSize: 1 + inner.StoreSize,
			Align:     max64(1, inner.Align),
			Trivial:   inner.Trivial,
		}
	case types.TagResult:
		ok, err := s.pool.ResultOkErr(idx)
		okInfo, errInfo := s.Get(ok), s.Get(err)
		return TypeInfo{
			Shape:     ShapeTaggedUnion,
			StoreSize: 1 + max64(okInfo.StoreSize, errInfo.StoreSize),
			Align:     max64(1, max64(okInfo.Align, errInfo.Align)),
			Trivial:   okInfo.Trivial && errInfo.Trivial,
		}
	case types.TagTuple:
		elems := s.pool.TupleElems(idx)
		var total, align uint64 = 0, 1
		trivial := true
		for _, e := range elems {
			info := s.Get(e)
			total += info.StoreSize
			align = max64(align, info.Align)
			trivial = trivial && info.Trivial
		}
		return TypeInfo{Shape: ShapeComposite, StoreSize: total, Align: align, Trivial: trivial}
	case types.TagStruct:
		fields := s.pool.StructFields(idx)
		var total, align uint64 = 0, 1
		trivial := true
		for _, f := range fields {
			info := s.Get(f.Type)
			total += info.StoreSize
			align = max64(align, info.Align)
			trivial = trivial && info.Trivial
		}
		return TypeInfo{Shape: ShapeComposite, StoreSize: total, Align: align, Trivial: trivial}
	case types.TagEnum:
		variants := s.pool.EnumVariants(idx)
		var maxPayload, align uint64 = 0, 1
		trivial := true
		for _, v := range variants {
			var sum uint64
			for _, f := range v.Fields {
				info := s.Get(f.Type)
				sum += info.StoreSize
				align = max64(align, info.Align)
				trivial = trivial && info.Trivial
			}
			maxPayload = max64(maxPayload, sum)
		}
		return TypeInfo{Shape: ShapeComposite, StoreSize: 1 + maxPayload, Align: max64(1, align), Trivial: trivial}
	case types.TagNamed:
		// Unresolved named type: the caller should have resolved it via
		// ResolveFully before reaching here; treat it as non-materializable.
		return errorInfo
	default:
		return errorInfo
	}
}

// IsTrivial is the transitive triviality classification (§4.7). A type
// that recurses back into itself mid-classification is conservatively
// treated as non-trivial, since a recursive type requires heap
// indirection regardless of its leaf fields.
func (s *Store) IsTrivial(idx types.Idx) bool {
	resolved := s.pool.ResolveFully(idx)
	if trivial, ok := s.trivialCache[resolved]; ok {
		return trivial
	}
	trivial := s.classifyTrivial(resolved)
	s.trivialCache[resolved] = trivial
	return trivial
}

func (s *Store) classifyTrivial(idx types.Idx) bool {
	if _, reentered := s.classifyingTrivial[idx]; reentered {
		return false
	}
	s.classifyingTrivial[idx] = struct{}{}
	defer delete(s.classifyingTrivial, idx)

	switch s.pool.Tag(idx) {
	case types.TagInt, types.TagFloat, types.TagBool, types.TagChar, types.TagByte,
		types.TagUnit, types.TagNever, types.TagDuration, types.TagSize, types.TagOrdering,
		types.TagRangeType, types.TagError:
		return true
	case types.TagStr, types.TagList, types.TagMap, types.TagSet, types.TagChannel, types.TagFunction:
		return false
	case types.TagOption:
		return s.IsTrivial(s.pool.Elem(idx))
	case types.TagResult:
		ok, err := s.pool.ResultOkErr(idx)
		return s.IsTrivial(ok) && s.IsTrivial(err)
	case types.TagTuple:
		for _, e := range s.pool.TupleElems(idx) {
			if !s.IsTrivial(e) {
				return false
			}
		}
		return true
	case types.TagStruct:
		for _, f := range s.pool.StructFields(idx) {
			if !s.IsTrivial(f.Type) {
				return false
			}
		}
		return true
	case types.TagEnum:
		for _, v := range s.pool.EnumVariants(idx) {
			for _, f := range v.Fields {
				if !s.IsTrivial(f.Type) {
					return false
				}
			}
		}
		return true
	default:
		return false
	}
}

func (s *Store) warn(code diag.Code, msg string) {
	if s.reporter == nil {
		return
	}
	s.reporter.Report(code, diag.SevWarning, source.DummySpan, msg, nil, nil)
}

func max64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
