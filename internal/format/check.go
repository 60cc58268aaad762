package format

import (
	"bytes"

	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/intern"
	"ori/internal/lexer"
	"ori/internal/parser"
	"ori/internal/source"
)

// Format lexes, parses, and prints content in one step - the entry point
// most callers (the CLI's fmt subcommand, tests) want.
func Format(content []byte, opts Options) ([]byte, error) {
	interner := intern.New()
	fset := source.NewFileSet()
	id := fset.AddVirtual("<format>", content)
	file := fset.Get(id)

	// Bag.Add treats a zero capacity as "reject everything", not
	// "unlimited" (see teacher's driver.formatSingleFile's maxDiag <= 0
	// fallback), so Format needs its own generous default here since it
	// takes no caller-supplied limit.
	bag := diag.NewBag(256)
	reporter := diag.BagReporter{Bag: bag}

	tokens, comments := lexer.LexWithComments(file, interner, lexer.Options{Reporter: reporter, CollectComments: true})
	arena := ast.NewExprArena()
	result := parser.Parse(tokens, interner, arena, parser.Options{Reporter: reporter})
	if bag.HasErrors() {
		return nil, &ParseError{Diagnostics: bag.Items()}
	}

	out := FormatModule(file.Content, result.Module, arena, interner, comments, opts)
	return out, nil
}

// ParseError wraps the diagnostics collected while parsing source that
// Format or CheckIdempotent was asked to render.
type ParseError struct {
	Diagnostics []*diag.Diagnostic
}

func (e *ParseError) Error() string {
	if len(e.Diagnostics) == 0 {
		return "format: parse failed"
	}
	return "format: parse failed: " + e.Diagnostics[0].Message
}

// Normalize strips trailing whitespace per line, collapses runs of blank
// lines to one, and trims leading/trailing blank lines - the comparison
// used to judge two formatted outputs equivalent regardless of
// differences a reformat is permitted to make (see doc.go, P12).
func Normalize(src []byte) []byte {
	lines := bytes.Split(src, []byte("\n"))
	var out [][]byte
	blank := false
	for _, line := range lines {
		trimmed := bytes.TrimRight(line, " \t\r")
		if len(trimmed) == 0 {
			if blank {
				continue
			}
			blank = true
			out = append(out, trimmed)
			continue
		}
		blank = false
		out = append(out, trimmed)
	}
	for len(out) > 0 && len(out[0]) == 0 {
		out = out[1:]
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return bytes.Join(out, []byte("\n"))
}

// CheckIdempotent formats content, reformats the result, and reports
// whether the two outputs are equivalent under Normalize - the flagship
// property (P12) required of every construct the parser accepts.
// Grounded on the teacher's format.CheckRoundTrip/parseOnce, which
// compares re-parsed top-level item kinds rather than normalized text;
// this adaptation compares rendered text directly since our formatter
// never falls back to copying source spans (see doc.go).
func CheckIdempotent(content []byte, opts Options) (ok bool, out1, out2 []byte, err error) {
	out1, err = Format(content, opts)
	if err != nil {
		return false, nil, nil, err
	}
	out2, err = Format(out1, opts)
	if err != nil {
		return false, out1, nil, err
	}
	return bytes.Equal(Normalize(out1), Normalize(out2)), out1, out2, nil
}
