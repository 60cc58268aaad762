// Package lexer implements the lexer (C3): source bytes plus an interner
// in, a token.List plus an optional ordered comment stream out. It never
// halts on malformed input - unrecognized bytes become an Error token and
// lexing resumes on the next byte.
package lexer

import (
	"ori/internal/diag"
	"ori/internal/intern"
	"ori/internal/source"
	"ori/internal/token"
)

// interpFrame tracks one open `{...}` interpolation hole inside a template
// string literal, so the main dispatch loop can tell a user brace
// expression (`{a: 1}`) apart from the brace that closes the hole.
type interpFrame struct {
	braceDepth int
	sawColon   bool
}

// Lexer converts one source file into a token.List.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	interner *intern.Interner
	opts     Options

	list     *token.List
	comments []Comment

	prevEnd      uint32
	hasPrev      bool
	atLineStart  bool
	interp       []interpFrame
	pendingSpace bool
	pendingNL    bool
	pendingTriv  bool
	pendingDoc   bool
}

// New constructs a Lexer over file, interning identifier and literal text
// through interner.
func New(file *source.File, interner *intern.Interner, opts Options) *Lexer {
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		interner:    interner,
		opts:        opts,
		list:        token.NewList(len(file.Content) / 4),
		atLineStart: true,
	}
}

// Lex tokenizes file in full, discarding comment text (only the trivia
// flags it leaves on following tokens survive).
func Lex(file *source.File, interner *intern.Interner, opts Options) *token.List {
	lx := New(file, interner, opts)
	lx.run()
	return lx.list
}

// LexWithComments tokenizes file in full and additionally returns every
// comment encountered, in source order.
func LexWithComments(file *source.File, interner *intern.Interner, opts Options) (*token.List, []Comment) {
	opts.CollectComments = true
	lx := New(file, interner, opts)
	lx.run()
	return lx.list, lx.comments
}

// Comments returns the comment stream accumulated so far (populated only
// when Options.CollectComments is set).
func (lx *Lexer) Comments() []Comment {
	return lx.comments
}

// List returns the token.List built so far.
func (lx *Lexer) List() *token.List {
	return lx.list
}

func (lx *Lexer) run() {
	for {
		flags := lx.collectLeadingTrivia()
		if lx.cursor.EOF() {
			lx.emit(token.Bare(token.TagEOF), lx.cursor.SpanFrom(lx.cursor.Mark()), flags)
			return
		}
		lx.scanOne(flags)
	}
}

// scanOne dispatches on the current byte and emits exactly one token
// (possibly TagError for unrecognized input), folding in the trivia flags
// already collected by collectLeadingTrivia.
func (lx *Lexer) scanOne(flags token.Flags) {
	// Inside an open interpolation hole at its own brace depth, a ':' is
	// the start of a FormatSpec fragment, not the Colon operator (§4.3).
	if n := len(lx.interp); n > 0 && lx.interp[n-1].braceDepth == 0 && !lx.interp[n-1].sawColon && lx.cursor.Peek() == ':' {
		lx.interp[n-1].sawColon = true
		lx.scanFormatSpec(flags)
		return
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '`':
		lx.scanTemplateOrString(flags)
	case ch == '"':
		lx.scanString(flags)
	case ch == '\'':
		lx.scanChar(flags)
	case isIdentStartByte(ch):
		lx.scanIdentOrKeyword(flags)
	case ch >= utf8RuneSelf:
		lx.scanIdentOrKeyword(flags)
	case isDec(ch):
		lx.scanNumber(flags)
	case ch == '.' && lx.isNumberAfterDot():
		lx.scanNumber(flags)
	case ch == '}' && lx.closesInterpolationHole():
		lx.closeInterpolationHoleAndResumeTemplate(flags)
	default:
		lx.scanOperatorOrPunctTracked(flags)
	}
}

// closesInterpolationHole reports whether the '}' under the cursor closes
// the innermost open template interpolation hole rather than an ordinary
// block/struct-literal brace nested inside it.
func (lx *Lexer) closesInterpolationHole() bool {
	n := len(lx.interp)
	return n > 0 && lx.interp[n-1].braceDepth == 0
}

// scanOperatorOrPunctTracked wraps scanOperatorOrPunct with the brace
// bookkeeping interpolation holes need to tell their own closing '}' apart
// from a nested one.
func (lx *Lexer) scanOperatorOrPunctTracked(flags token.Flags) {
	if n := len(lx.interp); n > 0 {
		switch lx.cursor.Peek() {
		case '{':
			lx.interp[n-1].braceDepth++
		case '}':
			lx.interp[n-1].braceDepth--
		}
	}
	lx.scanOperatorOrPunct(flags)
}

// emit appends a token to the list, updates line-start/adjacency
// bookkeeping, and records the end offset for the next Adjacent check.
func (lx *Lexer) emit(k token.Kind, span source.Span, flags token.Flags) {
	if lx.hasPrev && lx.prevEnd == span.Start {
		flags |= token.FlagAdjacent
	}
	if lx.atLineStart {
		flags |= token.FlagLineStart
	}
	lx.list.PushWithFlags(k, span, flags)
	lx.prevEnd = span.End
	lx.hasPrev = true
	lx.atLineStart = false
}

func (lx *Lexer) errLex(code diag.Code, span source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, span, msg, nil, nil)
	}
}
