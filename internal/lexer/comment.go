package lexer

import "ori/internal/source"

// Comment is one entry in the lexer's side-channel comment stream: trivia
// that is dropped from the TokenList proper (only its flag bits survive
// on the following token) but that tools wanting the original text -
// the formatter reattaching comments, documentation generators - can
// still recover in source order.
type Comment struct {
	Span  source.Span
	Text  string
	IsDoc bool
}
