package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"ori/internal/intern"
	"ori/internal/source"
	"ori/internal/token"
)

// TokenOutput is one token's JSON rendering.
type TokenOutput struct {
	Tag  string      `json:"tag"`
	Text string      `json:"text,omitempty"`
	Span source.Span `json:"span"`
}

func tokenText(in *intern.Interner, k token.Kind) string {
	switch k.Tag {
	case token.TagIdent, token.TagStringLit:
		return in.MustLookup(k.StrName())
	case token.TagIntLit:
		return fmt.Sprintf("%d", k.IntValue())
	case token.TagFloatLit:
		return fmt.Sprintf("%g", k.FloatValue())
	case token.TagCharLit:
		return string(k.CharValue())
	default:
		return ""
	}
}

// FormatTokensPretty renders every token in list as one line each:
// "  1: Ident           "foo" at 1:1-1:4". Grounded on the teacher's
// diagfmt.FormatTokensPretty, adapted to resolve token text through the
// Interner (this Token carries no Text field of its own) and to stop
// rendering at TagEOF.
func FormatTokensPretty(w io.Writer, list *token.List, fs *source.FileSet, in *intern.Interner) error {
	for i := uint32(0); i < uint32(list.Len()); i++ {
		tok := list.Get(i)
		start, end := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%3d: %-14s", i+1, tok.Kind.Tag.String()); err != nil {
			return err
		}
		if text := tokenText(in, tok.Kind); text != "" {
			if _, err := fmt.Fprintf(w, " %q", text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %d:%d-%d:%d\n", start.Line, start.Col, end.Line, end.Col); err != nil {
			return err
		}
		if tok.Kind.Tag == token.TagEOF {
			break
		}
	}
	return nil
}

// TokenOutputsJSON materializes list's tokens (up to and including EOF)
// as TokenOutput values for JSON serialization.
func TokenOutputsJSON(list *token.List, in *intern.Interner) []TokenOutput {
	out := make([]TokenOutput, 0, list.Len())
	for i := uint32(0); i < uint32(list.Len()); i++ {
		tok := list.Get(i)
		out = append(out, TokenOutput{
			Tag:  tok.Kind.Tag.String(),
			Text: tokenText(in, tok.Kind),
			Span: tok.Span,
		})
		if tok.Kind.Tag == token.TagEOF {
			break
		}
	}
	return out
}

// FormatTokensJSON writes list's tokens to w as an indented JSON array.
func FormatTokensJSON(w io.Writer, list *token.List, in *intern.Interner) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(TokenOutputsJSON(list, in))
}
