package format

import "ori/internal/ast"

func (p *printer) printAttrs(r ast.AttrRange) {
	for _, a := range p.arena.Attrs(r) {
		p.w.WriteString("#[")
		p.w.WriteString(p.text(a.Name))
		if a.Arg != 0 {
			p.w.WriteString("(\"")
			p.w.WriteString(p.text(a.Arg))
			p.w.WriteString("\")")
		}
		p.w.WriteString("]")
		p.w.Newline()
	}
}

func (p *printer) printUse(u ast.UseDef) {
	p.w.WriteString("use ")
	p.w.WriteString(p.text(u.Path))
	if u.Alias != 0 {
		p.w.WriteString(" as ")
		p.w.WriteString(p.text(u.Alias))
	}
	p.w.WriteString(";")
	p.w.Newline()
}

func (p *printer) printFunction(fn ast.Function) {
	p.printAttrs(fn.Attrs)
	if fn.Pub {
		p.w.WriteString("pub ")
	}
	p.w.WriteString("@")
	p.w.WriteString(p.text(fn.Name))
	p.w.WriteString("(")
	p.printParamList(p.arena.Params(fn.Params))
	p.w.WriteString(")")
	if fn.RetType.IsValid() {
		p.w.WriteString(" -> ")
		p.printTypeExpr(fn.RetType)
	}
	p.w.WriteString(" = ")
	p.printExpr(fn.Body)
	p.w.WriteString(";")
	p.w.Newline()
}

func (p *printer) printTest(t ast.TestDef) {
	p.printAttrs(t.Attrs)
	p.w.WriteString("@")
	p.w.WriteString(p.text(t.Name))
	if t.Target != 0 {
		p.w.WriteString(" tests @")
		p.w.WriteString(p.text(t.Target))
	}
	p.w.WriteString(" = ")
	p.printExpr(t.Body)
	p.w.WriteString(";")
	p.w.Newline()
}

func (p *printer) printTypeDef(td ast.TypeDef) {
	if td.Pub {
		p.w.WriteString("pub ")
	}
	switch td.Kind {
	case ast.TypeDefStruct:
		p.w.WriteString("struct ")
		p.w.WriteString(p.text(td.Name))
		p.w.WriteString(" {")
		fields := p.arena.FieldDefs(td.Fields)
		if len(fields) == 0 {
			p.w.WriteString("}")
			p.w.Newline()
			return
		}
		p.w.Newline()
		p.w.IndentPush()
		for _, f := range fields {
			p.w.WriteString(p.text(f.Name))
			p.w.WriteString(": ")
			p.printTypeExpr(f.TypeAnn)
			p.w.WriteString(",")
			p.w.Newline()
		}
		p.w.IndentPop()
		p.w.WriteString("}")
		p.w.Newline()
	case ast.TypeDefEnum:
		p.w.WriteString("enum ")
		p.w.WriteString(p.text(td.Name))
		p.w.WriteString(" {")
		variants := p.arena.VariantDefs(td.Variants)
		if len(variants) == 0 {
			p.w.WriteString("}")
			p.w.Newline()
			return
		}
		p.w.Newline()
		p.w.IndentPush()
		for _, v := range variants {
			p.w.WriteString(p.text(v.Name))
			if v.Fields.Len > 0 {
				p.w.WriteString("(")
				for i, f := range p.arena.FieldDefs(v.Fields) {
					if i > 0 {
						p.w.WriteString(", ")
					}
					p.w.WriteString(p.text(f.Name))
					p.w.WriteString(": ")
					p.printTypeExpr(f.TypeAnn)
				}
				p.w.WriteString(")")
			}
			p.w.WriteString(",")
			p.w.Newline()
		}
		p.w.IndentPop()
		p.w.WriteString("}")
		p.w.Newline()
	case ast.TypeDefAlias:
		p.w.WriteString("type ")
		p.w.WriteString(p.text(td.Name))
		p.w.WriteString(" = ")
		p.printTypeExpr(td.Alias)
		p.w.WriteString(";")
		p.w.Newline()
	}
}
