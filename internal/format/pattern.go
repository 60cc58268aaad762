package format

import "ori/internal/ast"

// printPattern renders a match-arm or let/for-binding pattern.
func (p *printer) printPattern(id ast.PatternID) {
	if !id.IsValid() {
		p.w.WriteString("_")
		return
	}
	pat := p.arena.GetPattern(id)
	switch pat.Kind {
	case ast.PatternWildcard:
		p.w.WriteString("_")
	case ast.PatternBindIdent:
		p.w.WriteString(p.text(pat.Name))
	case ast.PatternLiteral:
		p.w.WriteString(renderLiteral(p.interner, pat.Lit))
	case ast.PatternTuple:
		p.w.WriteString("(")
		p.printPatternList(pat.Sub)
		p.w.WriteString(")")
	case ast.PatternStruct:
		p.w.WriteString(p.text(pat.Name))
		p.w.WriteString(" { ")
		p.printPatternList(pat.Sub)
		p.w.WriteString(" }")
	case ast.PatternEnumVariant:
		p.w.WriteString(p.text(pat.Name))
		if pat.Sub.Len > 0 {
			p.w.WriteString("(")
			p.printPatternList(pat.Sub)
			p.w.WriteString(")")
		}
	case ast.PatternOr:
		subs := p.arena.GetPatternRange(pat.Sub)
		for i, s := range subs {
			if i > 0 {
				p.w.WriteString(" | ")
			}
			p.printPattern(s)
		}
	default:
		p.w.WriteString("_")
	}
}

func (p *printer) printPatternList(r ast.PatternRange) {
	subs := p.arena.GetPatternRange(r)
	for i, s := range subs {
		if i > 0 {
			p.w.WriteString(", ")
		}
		p.printPattern(s)
	}
}
