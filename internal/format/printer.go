package format

import (
	"sort"

	"ori/internal/ast"
	"ori/internal/intern"
	"ori/internal/lexer"
	"ori/internal/source"
)

// printer holds the mutable state of one FormatModule call, grounded on
// the teacher's format.printer (builder/file/writer/opt fields), adapted
// to this compiler's ExprArena-backed ast.Module rather than the
// teacher's ast.Builder/ast.File item tree.
type printer struct {
	interner *intern.Interner
	arena    *ast.ExprArena
	w        *Writer
	opt      Options
	content  []byte
	comments []lexer.Comment
}

func (p *printer) text(n intern.Name) string {
	if n == intern.NameEmpty {
		return ""
	}
	return p.interner.MustLookup(n)
}

// itemKind discriminates the four top-level declaration forms so they can
// be merged into one source-ordered sequence - Module keeps them in
// separate slices (see ast.Module), unlike the teacher's single
// File.Items list.
type itemKind uint8

const (
	kindUse itemKind = iota
	kindTypeDef
	kindFunction
	kindTest
)

type topItem struct {
	kind itemKind
	span source.Span
	idx  int
}

// FormatModule renders mod to canonical source text. content is the
// original source bytes (used only to decide comment attachment - see
// doc.go - never copied verbatim into the output) and comments is the
// lexer's side-channel trivia stream for the same file.
func FormatModule(content []byte, mod ast.Module, arena *ast.ExprArena, interner *intern.Interner, comments []lexer.Comment, opts Options) []byte {
	opts = opts.withDefaults()
	p := &printer{
		interner: interner,
		arena:    arena,
		w:        NewWriter(opts),
		opt:      opts,
		content:  content,
		comments: comments,
	}

	items := make([]topItem, 0, len(mod.Uses)+len(mod.TypeDefs)+len(mod.Functions)+len(mod.Tests))
	for i, u := range mod.Uses {
		items = append(items, topItem{kindUse, u.Span, i})
	}
	for i, t := range mod.TypeDefs {
		items = append(items, topItem{kindTypeDef, t.Span, i})
	}
	for i, f := range mod.Functions {
		items = append(items, topItem{kindFunction, f.Span, i})
	}
	for i, t := range mod.Tests {
		items = append(items, topItem{kindTest, t.Span, i})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].span.Start < items[j].span.Start })

	consumed := 0
	for i, it := range items {
		if i > 0 {
			p.w.BlankLine()
		}
		p.printAttachedComments(it.span.Start, &consumed)
		switch it.kind {
		case kindUse:
			p.printUse(mod.Uses[it.idx])
		case kindTypeDef:
			p.printTypeDef(mod.TypeDefs[it.idx])
		case kindFunction:
			p.printFunction(mod.Functions[it.idx])
		case kindTest:
			p.printTest(mod.Tests[it.idx])
		}
	}
	return p.w.Bytes()
}

// printAttachedComments prints the contiguous run of not-yet-consumed
// comments immediately preceding itemStart, advancing *consumed past them.
func (p *printer) printAttachedComments(itemStart uint32, consumed *int) {
	p.printAttachedRunBackward(itemStart, consumed)
}

// printAttachedRunBackward finds the contiguous run of not-yet-consumed
// comments immediately preceding itemStart (walking backward from it, no
// blank line between any two consecutive members of the run, nor between
// the run's last comment and itemStart) and prints them in source order.
func (p *printer) printAttachedRunBackward(itemStart uint32, consumed *int) {
	lo := *consumed
	hi := len(p.comments)
	for hi > 0 && uint32(p.comments[hi-1].Span.Start) >= itemStart {
		hi--
	}
	if hi <= lo {
		return
	}
	runStart := hi
	boundary := itemStart
	for runStart > lo {
		c := p.comments[runStart-1]
		if (!p.opt.KeepDoc && c.IsDoc) || (!p.opt.KeepLine && !c.IsDoc) {
			break
		}
		if !noBlankLineBetween(p.content, uint32(c.Span.End), boundary) {
			break
		}
		boundary = uint32(c.Span.Start)
		runStart--
	}
	for i := runStart; i < hi; i++ {
		p.w.WriteString(p.comments[i].Text)
		p.w.Newline()
	}
	*consumed = hi
}

// noBlankLineBetween reports whether content[start:end] contains nothing
// but whitespace with at most one newline - i.e. the two spans it
// separates sit on adjacent lines, not across a blank line.
func noBlankLineBetween(content []byte, start, end uint32) bool {
	if start > end || int(end) > len(content) {
		return true
	}
	newlines := 0
	for _, b := range content[start:end] {
		switch b {
		case '\n':
			newlines++
			if newlines > 1 {
				return false
			}
		case ' ', '\t', '\r':
		default:
			return false
		}
	}
	return true
}
