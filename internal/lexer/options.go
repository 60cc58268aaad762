package lexer

import "ori/internal/diag"

// Options configures a Lexer. The zero Options value is valid: lexing
// proceeds with no diagnostic reporting and no comment stream.
type Options struct {
	// Reporter, if set, receives a diagnostic for every recoverable lex
	// error (unterminated string, malformed number, unknown byte, ...).
	// The lexer never halts on these; it emits TagError and keeps going.
	Reporter diag.Reporter
	// CollectComments requests that comments be appended to the Lexer's
	// Comments() stream as they are scanned, instead of being discarded
	// after their flag bits are folded onto the following token.
	CollectComments bool
}
