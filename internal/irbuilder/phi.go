package irbuilder

import "fmt"

// Phi allocates a phi node of type ty in the current block, emitting a
// placeholder line. Its incoming pairs are supplied afterward via
// AddPhiIncoming, which rewrites that line in place, since LLVM phi
// syntax lists every incoming pair on the instruction itself and callers
// build those pairs across several preceding Br calls.
func (b *Builder) Phi(ty LLVMTypeID) ValueID {
	tmp := b.nextTemp()
	id := b.newValue(ty, tmp)
	rec := &phiRecord{block: b.curBlock, ty: ty}
	b.phis[id] = rec
	b.emit(fmt.Sprintf("  %s = phi %s %s", tmp, b.typeText(ty), "<pending>"))
	return id
}

// PhiIncoming is one (value, predecessor block) pair.
type PhiIncoming struct {
	Value ValueID
	Block BlockID
}

// AddPhiIncoming records pairs for a phi previously returned by Phi, and
// rewrites its pending instruction line in place.
func (b *Builder) AddPhiIncoming(phi ValueID, pairs []PhiIncoming) {
	rec, ok := b.phis[phi]
	if !ok {
		return
	}
	for _, p := range pairs {
		rec.incoming = append(rec.incoming, phiIncoming{val: p.Value, block: p.Block})
	}
	b.renderPhi(phi, rec)
}

func (b *Builder) renderPhi(phi ValueID, rec *phiRecord) {
	parts := make([]string, len(rec.incoming))
	for i, in := range rec.incoming {
		parts[i] = fmt.Sprintf("[ %s, %%%s ]", b.operandOnly(in.val), b.label(in.block))
	}
	joined := ""
	for i, p := range parts {
		if i > 0 {
			joined += ", "
		}
		joined += p
	}
	reg := b.operandOnly(phi)
	line := fmt.Sprintf("  %s = phi %s %s", reg, b.typeText(rec.ty), joined)

	blk := &b.blocks[rec.block]
	for i := range blk.instrs {
		if hasPhiPrefix(blk.instrs[i], reg) {
			blk.instrs[i] = line
			return
		}
	}
}

func hasPhiPrefix(instr, tempText string) bool {
	prefix := "  " + tempText + " = phi"
	return len(instr) >= len(prefix) && instr[:len(prefix)] == prefix
}

// PhiFromIncoming collapses to the single supplied value when there is
// exactly one incoming pair, and reports no value (ok=false) for zero
// inputs, per §4.10's stated optimization - avoiding an emitted phi
// with only one predecessor.
func (b *Builder) PhiFromIncoming(ty LLVMTypeID, pairs []PhiIncoming) (ValueID, bool) {
	switch len(pairs) {
	case 0:
		return NoValueID, false
	case 1:
		return pairs[0].Value, true
	}
	phi := b.Phi(ty)
	b.AddPhiIncoming(phi, pairs)
	return phi, true
}
