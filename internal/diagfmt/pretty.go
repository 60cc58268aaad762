package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ori/internal/diag"
	"ori/internal/source"
)

// Pretty renders every diagnostic in bag (expected already bag.Sort()ed)
// as a colorized frame: "<path>:<line>:<col>: SEVERITY E####: message",
// followed by one line of source context and a caret underline spanning
// the diagnostic's primary span, then one "note: <message>" line per note
// (notes are printed without a location or source context).
// Grounded on the teacher's diagfmt.Pretty, trimmed of PathMode/fix/SARIF
// machinery this driver does not expose.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	errorColor := color.New(color.FgRed, color.Bold)
	warningColor := color.New(color.FgYellow, color.Bold)
	infoColor := color.New(color.FgCyan, color.Bold)
	pathColor := color.New(color.FgWhite, color.Bold)
	codeColor := color.New(color.FgMagenta)
	underlineColor := color.New(color.FgRed, color.Bold)
	noteColor := color.New(color.FgCyan)

	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !opts.Color

	for idx, d := range bag.Items() {
		if idx > 0 {
			fmt.Fprintln(w)
		}
		printOne(w, d.Severity, d.Code, d.Message, d.Primary, fs,
			errorColor, warningColor, infoColor, pathColor, codeColor, underlineColor)
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s\n", noteColor.Sprint("note:"), n.Msg)
		}
	}
}

func printOne(w io.Writer, sev diag.Severity, code diag.Code, msg string, span source.Span, fs *source.FileSet,
	errorColor, warningColor, infoColor, pathColor, codeColor, underlineColor *color.Color,
) {
	start, end := fs.Resolve(span)
	f := fs.Get(span.File)
	path := f.FormatPath("auto", fs.BaseDir())

	var sevColored string
	switch sev {
	case diag.SevError:
		sevColored = errorColor.Sprint(sev.String())
	case diag.SevWarning:
		sevColored = warningColor.Sprint(sev.String())
	default:
		sevColored = infoColor.Sprint(sev.String())
	}

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		pathColor.Sprint(path), start.Line, start.Col, sevColored, codeColor.Sprint(code.String()), msg)

	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	col := int(start.Col)
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	}
	lead := visualWidth(line, col)
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", lead), underlineColor.Sprint(strings.Repeat("^", max(1, width))))
}

// visualWidth returns the on-screen column width of line up to byteCol
// (1-based), accounting for East-Asian wide runes the same way the
// teacher's visualWidthUpTo does.
func visualWidth(line string, byteCol int) int {
	if byteCol <= 1 {
		return 0
	}
	bytePos, visual := 0, 0
	for _, r := range line {
		if bytePos >= byteCol-1 {
			break
		}
		visual += runewidth.RuneWidth(r)
		bytePos += len(string(r))
	}
	return visual
}
