package lexer

import (
	"testing"

	"ori/internal/intern"
	"ori/internal/source"
	"ori/internal/token"
)

func lexString(t *testing.T, src string) *token.List {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ori", []byte(src))
	file := fs.Get(id)
	return Lex(file, intern.New(), Options{})
}

func tagsOf(t *testing.T, l *token.List) []token.Tag {
	t.Helper()
	out := make([]token.Tag, l.Len())
	for i := 0; i < l.Len(); i++ {
		out[i] = l.Get(uint32(i)).Kind.Tag
	}
	return out
}

func assertTags(t *testing.T, l *token.List, want ...token.Tag) {
	t.Helper()
	got := tagsOf(t, l)
	if len(got) != len(want) {
		t.Fatalf("tag count = %d, want %d (%v vs %v)", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tag[%d] = %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestLexIdentifiersAndKeywords(t *testing.T) {
	l := lexString(t, "let x = foo")
	assertTags(t, l, token.TagKwLet, token.TagIdent, token.TagAssign, token.TagIdent, token.TagEOF)
}

func TestLexSoftKeywordPromotion(t *testing.T) {
	l := lexString(t, "len(x)")
	assertTags(t, l, token.TagKwLen, token.TagLParen, token.TagIdent, token.TagRParen, token.TagEOF)
	if !l.FlagsAt(0).Has(token.FlagContextualKw) {
		t.Fatalf("len( should set FlagContextualKw")
	}

	l2 := lexString(t, "len + 1")
	assertTags(t, l2, token.TagIdent, token.TagPlus, token.TagIntLit, token.TagEOF)
	if l2.FlagsAt(0).Has(token.FlagContextualKw) {
		t.Fatalf("bare len should not be promoted to a keyword")
	}
}

func TestLexIntAndFloatLiterals(t *testing.T) {
	l := lexString(t, "42 3.5 1_000 0xFF 1e10")
	assertTags(t, l, token.TagIntLit, token.TagFloatLit, token.TagIntLit, token.TagIntLit, token.TagFloatLit, token.TagEOF)

	if l.Get(0).Kind.IntValue() != 42 {
		t.Fatalf("42 decoded as %d", l.Get(0).Kind.IntValue())
	}
	if l.Get(1).Kind.FloatValue() != 3.5 {
		t.Fatalf("3.5 decoded as %v", l.Get(1).Kind.FloatValue())
	}
	if l.Get(2).Kind.IntValue() != 1000 {
		t.Fatalf("1_000 decoded as %d", l.Get(2).Kind.IntValue())
	}
	if l.Get(3).Kind.IntValue() != 255 {
		t.Fatalf("0xFF decoded as %d", l.Get(3).Kind.IntValue())
	}
}

func TestLexDurationAndSizeSuffixes(t *testing.T) {
	l := lexString(t, "30s 5kb")
	assertTags(t, l, token.TagDurationLit, token.TagSizeLit, token.TagEOF)
	if got := l.Get(0).Kind.DurationNanos(); got != 30_000_000_000 {
		t.Fatalf("30s decoded as %d ns", got)
	}
	if got := l.Get(1).Kind.SizeBytesValue(); got != 5000 {
		t.Fatalf("5kb decoded as %d bytes", got)
	}
}

func TestLexStringAndCharLiterals(t *testing.T) {
	in := intern.New()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ori", []byte(`"hi\n" 'a' '\n'`))
	l := Lex(fs.Get(id), in, Options{})
	assertTags(t, l, token.TagStringLit, token.TagCharLit, token.TagCharLit, token.TagEOF)

	s, _ := in.Lookup(l.Get(0).Kind.StrName())
	if s != "hi\n" {
		t.Fatalf("string literal decoded as %q", s)
	}
	if l.Get(1).Kind.CharValue() != 'a' {
		t.Fatalf("char literal decoded as %q", l.Get(1).Kind.CharValue())
	}
	if l.Get(2).Kind.CharValue() != '\n' {
		t.Fatalf("escaped char literal decoded as %q", l.Get(2).Kind.CharValue())
	}
}

func TestLexTemplateStringWithoutInterpolation(t *testing.T) {
	l := lexString(t, "`hello world`")
	assertTags(t, l, token.TagTemplateFull, token.TagEOF)
}

func TestLexTemplateStringWithInterpolation(t *testing.T) {
	in := intern.New()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ori", []byte("`a={x}b`"))
	l := Lex(fs.Get(id), in, Options{})
	assertTags(t, l,
		token.TagTemplateHead, token.TagIdent, token.TagTemplateTail, token.TagEOF)

	head, _ := in.Lookup(l.Get(0).Kind.StrName())
	if head != "a=" {
		t.Fatalf("template head decoded as %q", head)
	}
	tail, _ := in.Lookup(l.Get(2).Kind.StrName())
	if tail != "b" {
		t.Fatalf("template tail decoded as %q", tail)
	}
}

func TestLexTemplateFormatSpec(t *testing.T) {
	l := lexString(t, "`v={x:.2}`")
	assertTags(t, l,
		token.TagTemplateHead, token.TagIdent, token.TagFormatSpec, token.TagTemplateTail, token.TagEOF)
}

func TestLexOperatorsGreedyMatch(t *testing.T) {
	l := lexString(t, "..= .. :: -> => && || == != <= >= << >>")
	assertTags(t, l,
		token.TagDotDotEq, token.TagDotDot, token.TagColonColon, token.TagArrow, token.TagFatArrow,
		token.TagAndAnd, token.TagOrOr, token.TagEqEq, token.TagBangEq, token.TagLtEq, token.TagGtEq,
		token.TagShl, token.TagShr, token.TagEOF)
}

func TestLexTriviaFlagsAndLineStart(t *testing.T) {
	l := lexString(t, "a\n  b")
	assertTags(t, l, token.TagIdent, token.TagIdent, token.TagEOF)
	if !l.FlagsAt(0).Has(token.FlagLineStart) {
		t.Fatalf("first token of the file should have FlagLineStart")
	}
	if !l.FlagsAt(1).Has(token.FlagLineStart) {
		t.Fatalf("token after a newline should have FlagLineStart")
	}
	if !l.FlagsAt(1).Has(token.FlagNewlineBefore) {
		t.Fatalf("token after a newline should have FlagNewlineBefore")
	}
	if !l.FlagsAt(1).Has(token.FlagSpaceBefore) {
		t.Fatalf("token after indentation should have FlagSpaceBefore")
	}
}

func TestLexDocCommentFlag(t *testing.T) {
	l := lexString(t, "//!doc\nlet x = 1")
	if !l.FlagsAt(0).Has(token.FlagIsDoc) {
		t.Fatalf("token following a //! comment should have FlagIsDoc")
	}
	if !l.FlagsAt(0).Has(token.FlagTriviaBefore) {
		t.Fatalf("token following any comment should have FlagTriviaBefore")
	}
}

func TestLexUnknownByteNeverHalts(t *testing.T) {
	l := lexString(t, "a $ b")
	// The lexer must keep producing tokens across the unrecognized byte.
	tags := tagsOf(t, l)
	if tags[len(tags)-1] != token.TagEOF {
		t.Fatalf("lexer should still reach EOF after an unknown byte, got %v", tags)
	}
	foundError := false
	for _, tg := range tags {
		if tg == token.TagError {
			foundError = true
		}
	}
	if !foundError {
		t.Fatalf("expected an Error token for the unrecognized byte, got %v", tags)
	}
}

func TestLexWithCommentsCollectsStream(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ori", []byte("// hi\nlet x = 1"))
	_, comments := LexWithComments(fs.Get(id), intern.New(), Options{})
	if len(comments) != 1 {
		t.Fatalf("expected one comment, got %d", len(comments))
	}
	if comments[0].Text != "// hi" {
		t.Fatalf("comment text = %q, want %q", comments[0].Text, "// hi")
	}
}
