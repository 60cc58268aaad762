// Package diagfmt renders compiler output - diagnostics and tokens - for
// the cmd/ori driver CLI. Grounded on the teacher's internal/diagfmt
// (pretty.go's colorized diagnostic frames, tokens.go's pretty/JSON token
// dumps), trimmed to the subset this driver's tokenize/parse/build
// subcommands actually exercise: this compiler's Token carries no Text or
// Leading fields (the lexer's comment stream is a separate side table,
// not attached per-token - see internal/lexer/comment.go), so token
// rendering here resolves text and flags through the TokenList/Interner
// directly rather than through per-token fields the teacher's Token has
// and this one doesn't.
package diagfmt
