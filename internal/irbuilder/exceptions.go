package irbuilder

import "fmt"

// landingPadType is `{ ptr, i32 }`, the Itanium ABI's landing-pad
// result shape.
func (b *Builder) landingPadType() LLVMTypeID {
	return b.registerType("{ ptr, i32 }")
}

// LandingPad emits a landing pad clause for personality. isCleanup
// marks it as a cleanup (rather than catch) clause.
func (b *Builder) LandingPad(personality FunctionID, isCleanup bool) ValueID {
	ty := b.landingPadType()
	tmp := b.nextTemp()
	clause := "catch ptr null"
	if isCleanup {
		clause = "cleanup"
	}
	name := "unknown_personality"
	if personality.IsValid() && int(personality) < len(b.funcs) {
		name = b.funcs[personality].name
	}
	b.emit(fmt.Sprintf("  %s = landingpad %s\n          %s  ; personality @%s",
		tmp, b.typeText(ty), clause, name))
	return b.newValue(ty, tmp)
}

// Resume re-raises the in-flight exception carried by val.
func (b *Builder) Resume(val ValueID) {
	b.emit(fmt.Sprintf("  resume %s", b.valueText(val)))
}

// SetPersonality attaches a personality function to fn.
func (b *Builder) SetPersonality(fn, personality FunctionID) {
	if !fn.IsValid() || int(fn) >= len(b.funcs) {
		return
	}
	b.funcs[fn].personality = personality
}
