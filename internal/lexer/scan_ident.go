package lexer

import (
	"ori/internal/token"
)

// scanIdentOrKeyword scans [IdentStart IdentContinue*] and resolves it
// against the keyword table. Soft keywords (len, min, max) only resolve
// to their keyword Tag when immediately followed by '(' (§4.3); otherwise
// they lex as plain identifiers, and CONTEXTUAL_KW is set when the
// lookahead promotion happens.
func (lx *Lexer) scanIdentOrKeyword(flags token.Flags) {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		lx.emit(token.Bare(token.TagError), sp, flags|token.FlagHasError)
		return
	}
	if r < utf8RuneSelf {
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else {
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if tag, ok := token.LookupKeyword(text); ok {
		lx.emit(token.Bare(tag), sp, flags)
		return
	}
	if tag, ok := token.LookupSoftKeyword(text); ok && lx.cursor.Peek() == '(' {
		lx.emit(token.Bare(tag), sp, flags|token.FlagContextualKw)
		return
	}

	name := lx.interner.Intern(text)
	lx.emit(token.Str(token.TagIdent, name), sp, flags)
}

const utf8RuneSelf = 0x80
