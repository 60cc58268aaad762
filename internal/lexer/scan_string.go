package lexer

import (
	"strings"

	"ori/internal/diag"
	"ori/internal/token"
)

// decodeEscape interprets the byte following a backslash inside a string
// or character literal. Per §4.3, the accepted escapes are \n \t \r \0 \\
// plus \" and \' for the two quote kinds and \` for the template form.
func decodeEscape(b byte) (rune, bool) {
	switch b {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '0':
		return 0, true
	case '\\':
		return '\\', true
	case '"':
		return '"', true
	case '\'':
		return '\'', true
	case '`':
		return '`', true
	default:
		return 0, false
	}
}

// scanString scans a `"..."` string literal, decoding escapes into the
// interner. An embedded raw newline or a missing closing quote is
// reported but still produces a best-effort token.
func (lx *Lexer) scanString(flags token.Flags) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var sb strings.Builder
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '"':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			name := lx.interner.Intern(sb.String())
			lx.emit(token.Str(token.TagStringLit, name), sp, flags)
			return
		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			esc := lx.cursor.Bump()
			if r, ok := decodeEscape(esc); ok {
				sb.WriteRune(r)
			}
			continue
		case b == '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			name := lx.interner.Intern(sb.String())
			lx.emit(token.Str(token.TagStringLit, name), sp, flags|token.FlagHasError)
			return
		default:
			sb.WriteByte(b)
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	name := lx.interner.Intern(sb.String())
	lx.emit(token.Str(token.TagStringLit, name), sp, flags|token.FlagHasError)
}

// scanChar scans a `'x'` character literal.
func (lx *Lexer) scanChar(flags token.Flags) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''

	var r rune
	switch {
	case lx.cursor.Peek() == '\\':
		lx.cursor.Bump()
		esc := lx.cursor.Bump()
		if decoded, ok := decodeEscape(esc); ok {
			r = decoded
		}
	case lx.cursor.Peek() >= utf8RuneSelf:
		rr, sz := lx.peekRune()
		r = rr
		for i := 0; i < sz; i++ {
			lx.cursor.Bump()
		}
	default:
		r = rune(lx.cursor.Bump())
	}

	if !lx.cursor.Eat('\'') {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedString, sp, "unterminated character literal")
		lx.emit(token.Char(r), sp, flags|token.FlagHasError)
		return
	}
	sp := lx.cursor.SpanFrom(start)
	lx.emit(token.Char(r), sp, flags)
}
