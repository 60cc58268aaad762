package lexer

import (
	"ori/internal/diag"
	"ori/internal/token"
)

// collectLeadingTrivia consumes whitespace and comments preceding the next
// real token, folding what it saw into Flags and, when requested,
// appending comments to the Lexer's comment stream. Per §4.3, trivia
// itself never becomes a token; only its flag bits survive.
func (lx *Lexer) collectLeadingTrivia() token.Flags {
	var flags token.Flags
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			flags |= token.FlagSpaceBefore
			continue
		}

		if b == '\n' || b == '\r' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != '\n' && b2 != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			flags |= token.FlagNewlineBefore
			lx.atLineStart = true
			continue
		}

		if b == '/' {
			if b0, b1, ok := lx.cursor.Peek2(); ok && (b1 == '/' || b1 == '*') && b0 == '/' {
				isDoc := lx.scanComment(start)
				flags |= token.FlagTriviaBefore
				if isDoc {
					flags |= token.FlagIsDoc
				}
				continue
			}
		}

		break
	}
	return flags
}

// scanComment consumes one "//..." or "/*...*/" comment starting at
// start, records it to the comment stream if requested, and reports
// whether it was a doc comment - one of the marker bytes '#', '*', '!',
// '>' immediately following the comment opener (§4.3).
func (lx *Lexer) scanComment(start Mark) bool {
	lx.cursor.Bump() // first '/'
	switch lx.cursor.Peek() {
	case '/':
		lx.cursor.Bump() // second '/'
		isDoc := lx.consumeDocMarker()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.recordComment(start, isDoc)
		return isDoc
	case '*':
		lx.cursor.Bump() // '*'
		isDoc := lx.consumeDocMarker()
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if b0, b1, ok := lx.cursor.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		if depth > 0 {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedBlock, sp, "unterminated block comment")
		}
		lx.recordComment(start, isDoc)
		return isDoc
	default:
		return false
	}
}

// consumeDocMarker consumes one of the doc-comment prefix markers
// (# * ! >) if present immediately after the comment opener.
func (lx *Lexer) consumeDocMarker() bool {
	switch lx.cursor.Peek() {
	case '#', '*', '!', '>':
		lx.cursor.Bump()
		return true
	default:
		return false
	}
}

func (lx *Lexer) recordComment(start Mark, isDoc bool) {
	if !lx.opts.CollectComments {
		return
	}
	sp := lx.cursor.SpanFrom(start)
	lx.comments = append(lx.comments, Comment{
		Span:  sp,
		Text:  string(lx.file.Content[sp.Start:sp.End]),
		IsDoc: isDoc,
	})
}
