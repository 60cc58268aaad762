package types

import (
	"fmt"
	"strconv"
	"strings"

	"ori/internal/intern"
)

// Pool is the append-only structural-interning store described in §4.6.
// Every Idx is an index into the parallel tags/a/b/name arrays; variable
// length payloads (function params, tuple elements, struct fields, enum
// variants) are indirected through the extra* side arrays, addressed by a
// Range - the same "inline tag, indirected payload" shape ExprArena uses.
type Pool struct {
	tags []Tag
	a, b []Idx         // inline one/two-child payload (elem; key/value; ok/err)
	name []intern.Name // Named / Struct / Enum nominal name
	ret  []Idx         // Function return type
	rng  []Range        // Function params / Tuple elems / Struct fields / Enum variants

	extraIdx      []Idx
	extraFields   []StructField
	extraVariants []EnumVariant

	index map[string]Idx

	// resolution maps a Named Idx to the concrete Idx it
	// stands for. Populated by the typer as nominal types are bound.
	resolution map[Idx]Idx
}

// Range is a {Start, Len} span into one of Pool's extra* side arrays.
type Range struct {
	Start uint32
	Len   uint32
}

func (r Range) End() uint32 { return r.Start + r.Len }

// NewPool constructs a Pool pre-seeded with the primitive indices 0-11
// and reserved Error padding through index 63, so the first
// user-constructed type lands at Idx(64).
func NewPool() *Pool {
	p := &Pool{index: make(map[string]Idx, 256), resolution: make(map[Idx]Idx, 64)}
	seed := []Tag{
		TagInt, TagFloat, TagBool, TagStr, TagChar, TagByte,
		TagUnit, TagNever, TagDuration, TagSize, TagOrdering, TagError,
	}
	for _, tag := range seed {
		p.appendRaw(tag, NoIdx, NoIdx, intern.NameEmpty, NoIdx, Range{})
	}
	for Idx(len(p.tags)) < reservedPadding {
		p.appendRaw(TagError, NoIdx, NoIdx, intern.NameEmpty, NoIdx, Range{})
	}
	return p
}

func (p *Pool) appendRaw(tag Tag, a, b Idx, name intern.Name, ret Idx, rng Range) Idx {
	idx := Idx(len(p.tags))
	p.tags = append(p.tags, tag)
	p.a = append(p.a, a)
	p.b = append(p.b, b)
	p.name = append(p.name, name)
	p.ret = append(p.ret, ret)
	p.rng = append(p.rng, rng)
	return idx
}

// Tag returns the discriminant for idx.
func (p *Pool) Tag(idx Idx) Tag {
	if idx == NoIdx || int(idx) >= len(p.tags) {
		return TagError
	}
	return p.tags[idx]
}

func (p *Pool) intern(key string, build func() Idx) Idx {
	if id, ok := p.index[key]; ok {
		return id
	}
	id := build()
	p.index[key] = id
	return id
}

// --- one-child constructors ---

func (p *Pool) List(elem Idx) Idx {
	return p.intern(simpleKey(TagList, elem, NoIdx, intern.NameEmpty), func() Idx {
		return p.appendRaw(TagList, elem, NoIdx, intern.NameEmpty, NoIdx, Range{})
	})
}

func (p *Pool) Set(elem Idx) Idx {
	return p.intern(simpleKey(TagSet, elem, NoIdx, intern.NameEmpty), func() Idx {
		return p.appendRaw(TagSet, elem, NoIdx, intern.NameEmpty, NoIdx, Range{})
	})
}

func (p *Pool) Option(inner Idx) Idx {
	return p.intern(simpleKey(TagOption, inner, NoIdx, intern.NameEmpty), func() Idx {
		return p.appendRaw(TagOption, inner, NoIdx, intern.NameEmpty, NoIdx, Range{})
	})
}

// RangeType constructs the `Range{elem}` iterator type. Named RangeType
// rather than Range to avoid colliding with the side-table Range above.
func (p *Pool) RangeType(elem Idx) Idx {
	return p.intern(simpleKey(TagRangeType, elem, NoIdx, intern.NameEmpty), func() Idx {
		return p.appendRaw(TagRangeType, elem, NoIdx, intern.NameEmpty, NoIdx, Range{})
	})
}

func (p *Pool) Channel(elem Idx) Idx {
	return p.intern(simpleKey(TagChannel, elem, NoIdx, intern.NameEmpty), func() Idx {
		return p.appendRaw(TagChannel, elem, NoIdx, intern.NameEmpty, NoIdx, Range{})
	})
}

// Named constructs (or reuses) a forward-reference to a not-yet-resolved
// nominal type, later bound via SetResolution.
func (p *Pool) Named(name intern.Name) Idx {
	return p.intern(simpleKey(TagNamed, NoIdx, NoIdx, name), func() Idx {
		return p.appendRaw(TagNamed, NoIdx, NoIdx, name, NoIdx, Range{})
	})
}

func (p *Pool) Elem(idx Idx) Idx {
	switch p.Tag(idx) {
	case TagList, TagSet, TagOption, TagRangeType, TagChannel:
		return p.a[idx]
	default:
		return NoIdx
	}
}

// --- two-child constructors ---

func (p *Pool) Map(key, value Idx) Idx {
	return p.intern(simpleKey(TagMap, key, value, intern.NameEmpty), func() Idx {
		return p.appendRaw(TagMap, key, value, intern.NameEmpty, NoIdx, Range{})
	})
}

func (p *Pool) MapKV(idx Idx) (key, value Idx) {
	if p.Tag(idx) != TagMap {
		return NoIdx, NoIdx
	}
	return p.a[idx], p.b[idx]
}

func (p *Pool) Result(ok, err Idx) Idx {
	return p.intern(simpleKey(TagResult, ok, err, intern.NameEmpty), func() Idx {
		return p.appendRaw(TagResult, ok, err, intern.NameEmpty, NoIdx, Range{})
	})
}

func (p *Pool) ResultOkErr(idx Idx) (ok, err Idx) {
	if p.Tag(idx) != TagResult {
		return NoIdx, NoIdx
	}
	return p.a[idx], p.b[idx]
}

// --- variable-length constructors ---

func (p *Pool) Function(params []Idx, ret Idx) Idx {
	key := TagFunction.String() + ":" + idxListKey(params) + "->" + strconv.FormatUint(uint64(ret), 10)
	return p.intern(key, func() Idx {
		start := uint32(len(p.extraIdx))
		p.extraIdx = append(p.extraIdx, params...)
		rng := Range{Start: start, Len: uint32(len(params))}
		return p.appendRaw(TagFunction, NoIdx, NoIdx, intern.NameEmpty, ret, rng)
	})
}

func (p *Pool) FunctionParams(idx Idx) []Idx {
	if p.Tag(idx) != TagFunction {
		return nil
	}
	return p.idxSlice(p.rng[idx])
}

func (p *Pool) FunctionRet(idx Idx) Idx {
	if p.Tag(idx) != TagFunction {
		return NoIdx
	}
	return p.ret[idx]
}

func (p *Pool) Tuple(elems []Idx) Idx {
	key := TagTuple.String() + ":" + idxListKey(elems)
	return p.intern(key, func() Idx {
		start := uint32(len(p.extraIdx))
		p.extraIdx = append(p.extraIdx, elems...)
		rng := Range{Start: start, Len: uint32(len(elems))}
		return p.appendRaw(TagTuple, NoIdx, NoIdx, intern.NameEmpty, NoIdx, rng)
	})
}

func (p *Pool) TupleElems(idx Idx) []Idx {
	if p.Tag(idx) != TagTuple {
		return nil
	}
	return p.idxSlice(p.rng[idx])
}

// StructType interns a nominal struct by name: two StructType calls with
// the same name always return the same Idx, even if the field list
// differs between calls (the first writer wins) - names are the identity
// of a nominal type, matching how the teacher's Interner treats structs
// as name-addressed declarations rather than structurally-compared
// anonymous shapes.
func (p *Pool) StructType(name intern.Name, fields []StructField) Idx {
	key := TagStruct.String() + ":name:" + strconv.FormatUint(uint64(name), 10)
	return p.intern(key, func() Idx {
		start := uint32(len(p.extraFields))
		p.extraFields = append(p.extraFields, fields...)
		rng := Range{Start: start, Len: uint32(len(fields))}
		return p.appendRaw(TagStruct, NoIdx, NoIdx, name, NoIdx, rng)
	})
}

func (p *Pool) StructFields(idx Idx) []StructField {
	if p.Tag(idx) != TagStruct {
		return nil
	}
	r := p.rng[idx]
	if r.Len == 0 {
		return nil
	}
	return p.extraFields[r.Start:r.End()]
}

func (p *Pool) EnumType(name intern.Name, variants []EnumVariant) Idx {
	key := TagEnum.String() + ":name:" + strconv.FormatUint(uint64(name), 10)
	return p.intern(key, func() Idx {
		start := uint32(len(p.extraVariants))
		p.extraVariants = append(p.extraVariants, variants...)
		rng := Range{Start: start, Len: uint32(len(variants))}
		return p.appendRaw(TagEnum, NoIdx, NoIdx, name, NoIdx, rng)
	})
}

func (p *Pool) EnumVariants(idx Idx) []EnumVariant {
	if p.Tag(idx) != TagEnum {
		return nil
	}
	r := p.rng[idx]
	if r.Len == 0 {
		return nil
	}
	return p.extraVariants[r.Start:r.End()]
}

// Name returns the nominal name of a Named/Struct/Enum type.
func (p *Pool) Name(idx Idx) intern.Name {
	switch p.Tag(idx) {
	case TagNamed, TagStruct, TagEnum:
		return p.name[idx]
	default:
		return intern.NameEmpty
	}
}

func (p *Pool) idxSlice(r Range) []Idx {
	if r.Len == 0 {
		return nil
	}
	return p.extraIdx[r.Start:r.End()]
}

// --- resolution table (Named/Applied/Alias -> concrete) ---

// SetResolution records that named resolves (one hop) to concrete.
func (p *Pool) SetResolution(named, concrete Idx) {
	p.resolution[named] = concrete
}

// Resolve follows a single resolution hop, returning idx unchanged if it
// has none.
func (p *Pool) Resolve(idx Idx) Idx {
	if concrete, ok := p.resolution[idx]; ok {
		return concrete
	}
	return idx
}

// ResolveFully chases the resolution chain until it reaches a fixed
// point (P7), bounded by a visited set so a resolution cycle degrades to
// returning the last-seen Idx instead of looping forever.
func (p *Pool) ResolveFully(idx Idx) Idx {
	seen := make(map[Idx]struct{}, 8)
	cur := idx
	for {
		if _, looped := seen[cur]; looped {
			return cur
		}
		seen[cur] = struct{}{}
		next, ok := p.resolution[cur]
		if !ok || next == cur {
			return cur
		}
		cur = next
	}
}

func simpleKey(tag Tag, a, b Idx, name intern.Name) string {
	return fmt.Sprintf("%d:%d:%d:%d", tag, a, b, name)
}

func idxListKey(ids []Idx) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return sb.String()
}

func (t Tag) String() string {
	names := [...]string{
		"int", "float", "bool", "str", "char", "byte", "unit", "never",
		"duration", "size", "ordering", "error",
		"list", "set", "option", "range", "channel", "map", "result",
		"function", "tuple", "struct", "enum", "named",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}
