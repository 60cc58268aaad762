package diagfmt

// PrettyOpts configures pretty-printing of diagnostics, grounded on the
// teacher's diagfmt.PrettyOpts (trimmed: this driver has no SARIF/preview
// surface, so only the fields cmd/ori actually threads through survive).
type PrettyOpts struct {
	Color   bool
	Context int
}
