// Package arccache implements the ArcIrCache (C11): a content-addressed
// on-disk cache of internal/arc's []Function records, so a rebuild that
// re-parses and re-types a function whose ARC instruction list has not
// changed can skip borrow inference entirely. Generalizes the teacher's
// internal/driver.DiskCache (msgpack payload, schema-versioned,
// sha256-keyed, atomic temp-file-then-rename writes) from its
// module-metadata payload to an ARC-instruction-list payload, per
// SPEC_FULL's CachedArcIr / "functions/arc_ir/<hash>.bin" layout.
package arccache

import (
	"ori/internal/arc"
	"ori/internal/ast"
	"ori/internal/intern"
)

// payloadSchemaVersion is bumped whenever Payload's shape changes, so a
// cache built by an older compiler version degrades to a clean miss
// instead of a decode crash.
const payloadSchemaVersion uint16 = 1

// Payload is the on-disk (msgpack) representation of one arc.Function.
// intern.Name values are not stable across process runs, so the
// function name and every instruction's operand name are stored as
// plain strings and re-interned on load.
type Payload struct {
	Schema uint16
	Name   string
	Hash   [32]byte
	Instrs []instrRecord
}

type instrRecord struct {
	Op   uint8
	Name string
	Site uint32
}

func toPayload(in *intern.Interner, fn arc.Function) Payload {
	recs := make([]instrRecord, len(fn.Instructions))
	for i, instr := range fn.Instructions {
		recs[i] = instrRecord{Op: uint8(instr.Op), Name: in.MustLookup(instr.Name), Site: uint32(instr.Site)}
	}
	return Payload{
		Schema: payloadSchemaVersion,
		Name:   in.MustLookup(fn.Name),
		Hash:   fn.ContentHash,
		Instrs: recs,
	}
}

func fromPayload(in *intern.Interner, p Payload) arc.Function {
	instrs := make([]arc.Instr, len(p.Instrs))
	for i, r := range p.Instrs {
		instrs[i] = arc.Instr{Op: arc.OpKind(r.Op), Name: in.Intern(r.Name), Site: ast.ExprID(r.Site)}
	}
	return arc.Function{Name: in.Intern(p.Name), ContentHash: p.Hash, Instructions: instrs}
}
