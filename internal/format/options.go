package format

// Options configures one formatting run, mirroring the teacher's
// format.Options shape (IndentWidth/UseTabs/KeepDoc/KeepLine/KeepBlock).
type Options struct {
	IndentWidth int
	UseTabs     bool

	// KeepDoc preserves doc comments (// followed by one of # * ! >)
	// immediately attached to a top-level item.
	KeepDoc bool
	// KeepLine preserves plain line comments attached the same way.
	KeepLine bool
}

// withDefaults fills in a 4-space indent when IndentWidth is zero and
// always sets KeepDoc and KeepLine to true, so a caller's false for
// either has no effect.

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	o.KeepDoc = true
	o.KeepLine = true
	return o
}
