package lexer

import (
	"strings"

	"ori/internal/diag"
	"ori/internal/token"
)

// scanTemplateOrString scans a backtick template string starting at the
// opening backtick: either a full non-interpolating `` `...` `` literal,
// or a `` `...{ `` head fragment that opens an interpolation hole (§4.3).
func (lx *Lexer) scanTemplateOrString(flags token.Flags) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '`'
	lx.scanTemplateFragment(start, flags, token.TagTemplateFull, token.TagTemplateHead)
}

// closeInterpolationHoleAndResumeTemplate is invoked when the cursor sits
// on the '}' that closes the innermost open interpolation hole. It pops
// that hole and resumes scanning template text, producing either a tail
// fragment (if a closing backtick follows) or another middle fragment
// (if a new '{' opens another hole).
func (lx *Lexer) closeInterpolationHoleAndResumeTemplate(flags token.Flags) {
	lx.interp = lx.interp[:len(lx.interp)-1]
	start := lx.cursor.Mark()
	lx.cursor.Bump() // closing '}'
	lx.scanTemplateFragment(start, flags, token.TagTemplateTail, token.TagTemplateMiddle)
}

// scanTemplateFragment scans template text until either a closing
// backtick (emitting closeTag) or an unescaped '{' that opens a new
// interpolation hole (emitting openTag and pushing an interpFrame).
func (lx *Lexer) scanTemplateFragment(start Mark, flags token.Flags, closeTag, openTag token.Tag) {
	var sb strings.Builder
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '`':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			name := lx.interner.Intern(sb.String())
			lx.emit(token.Str(closeTag, name), sp, flags)
			return
		case b == '{':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			name := lx.interner.Intern(sb.String())
			lx.interp = append(lx.interp, interpFrame{})
			lx.emit(token.Str(openTag, name), sp, flags)
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
		default:
			sb.WriteByte(b)
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated template string")
	name := lx.interner.Intern(sb.String())
	lx.emit(token.Str(closeTag, name), sp, flags|token.FlagHasError)
}

// scanFormatSpec scans the raw text of a `{expr:spec}` format specifier,
// from just after the ':' up to (but not including) the hole-closing '}'.
func (lx *Lexer) scanFormatSpec(flags token.Flags) {
	lx.cursor.Bump() // ':'
	specStart := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '}' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(specStart)
	name := lx.interner.Intern(string(lx.file.Content[sp.Start:sp.End]))
	lx.emit(token.Str(token.TagFormatSpec, name), sp, flags)
}
