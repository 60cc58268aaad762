package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"ori/internal/ast"
	"ori/internal/intern"
	"ori/internal/source"
)

// ItemSummary is one top-level declaration's rendering for the parse
// subcommand. Grounded on the teacher's AST-dump surface
// (FormatASTPretty/FormatASTJSON/FormatASTTree over ast.Builder/ast.File)
// but deliberately narrowed: this compiler's ast.Module/ast.ExprArena has
// no analogous Builder-wide node table to walk generically, so the dump
// is a declaration-level summary (kind, name, span, member names) rather
// than a full expression-tree print - a body's expressions are better
// inspected through internal/format's printer (the `format` subcommand)
// than re-invented here.
type ItemSummary struct {
	Kind    string   `json:"kind"`
	Name    string   `json:"name"`
	Pub     bool     `json:"pub,omitempty"`
	Members []string `json:"members,omitempty"`
	Span    source.Span `json:"span"`
}

// SummarizeModule walks mod's four declaration lists into one slice of
// ItemSummary, sorted by source position.
func SummarizeModule(mod ast.Module, arena *ast.ExprArena, in *intern.Interner) []ItemSummary {
	text := func(n intern.Name) string {
		if n == intern.NameEmpty {
			return ""
		}
		return in.MustLookup(n)
	}

	var out []ItemSummary
	for _, u := range mod.Uses {
		name := text(u.Path)
		if u.Alias != intern.NameEmpty {
			name += " as " + text(u.Alias)
		}
		out = append(out, ItemSummary{Kind: "use", Name: name, Span: u.Span})
	}
	for _, td := range mod.TypeDefs {
		s := ItemSummary{Kind: typeDefKindName(td.Kind), Name: text(td.Name), Pub: td.Pub, Span: td.Span}
		switch td.Kind {
		case ast.TypeDefStruct:
			for _, f := range arena.FieldDefs(td.Fields) {
				s.Members = append(s.Members, text(f.Name))
			}
		case ast.TypeDefEnum:
			for _, v := range arena.VariantDefs(td.Variants) {
				s.Members = append(s.Members, text(v.Name))
			}
		}
		out = append(out, s)
	}
	for _, fn := range mod.Functions {
		s := ItemSummary{Kind: "function", Name: text(fn.Name), Pub: fn.Pub, Span: fn.Span}
		for _, p := range arena.Params(fn.Params) {
			s.Members = append(s.Members, text(p.Name))
		}
		out = append(out, s)
	}
	for _, t := range mod.Tests {
		name := text(t.Name)
		if t.Target != intern.NameEmpty {
			name = "tests " + text(t.Target)
		}
		out = append(out, ItemSummary{Kind: "test", Name: name, Span: t.Span})
	}

	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Span.Start < out[j-1].Span.Start; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func typeDefKindName(k ast.TypeDefKind) string {
	switch k {
	case ast.TypeDefStruct:
		return "struct"
	case ast.TypeDefEnum:
		return "enum"
	case ast.TypeDefAlias:
		return "alias"
	default:
		return "type"
	}
}

// FormatASTPretty renders one line per top-level item.
func FormatASTPretty(w io.Writer, items []ItemSummary) error {
	for _, it := range items {
		vis := ""
		if it.Pub {
			vis = "pub "
		}
		if _, err := fmt.Fprintf(w, "%s%s %s", vis, it.Kind, it.Name); err != nil {
			return err
		}
		if len(it.Members) > 0 {
			if _, err := fmt.Fprintf(w, " (%v)", it.Members); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatASTTree renders the same items indented with their members as
// children, e.g.:
//
//	function foo
//	  x
//	  y
func FormatASTTree(w io.Writer, items []ItemSummary) error {
	for _, it := range items {
		vis := ""
		if it.Pub {
			vis = "pub "
		}
		if _, err := fmt.Fprintf(w, "%s%s %s\n", vis, it.Kind, it.Name); err != nil {
			return err
		}
		for _, m := range it.Members {
			if _, err := fmt.Fprintf(w, "  %s\n", m); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatASTJSON writes items as an indented JSON array.
func FormatASTJSON(w io.Writer, items []ItemSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
