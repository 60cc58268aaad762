package token

import "strconv"

var tagNames = [tagCount]string{
	TagInvalid: "Invalid",
	TagIntLit: "IntLit",
	TagFloatLit: "FloatLit",
	TagCharLit: "CharLit",
	TagStringLit: "StringLit",
	TagTemplateHead: "TemplateHead",
	TagTemplateMiddle: "TemplateMiddle",
	TagTemplateTail: "TemplateTail",
	TagTemplateFull: "TemplateFull",
	TagDurationLit: "DurationLit",
	TagSizeLit: "SizeLit",
	TagFormatSpec: "FormatSpec",
	TagIdent: "Ident",
	TagKwUse: "KwUse",
	TagKwAs: "KwAs",
	TagKwPub: "KwPub",
	TagKwUses: "KwUses",
	TagKwWhere: "KwWhere",
	TagKwTests: "KwTests",
	TagKwTrue: "KwTrue",
	TagKwFalse: "KwFalse",
	TagKwIf: "KwIf",
	TagKwElse: "KwElse",
	TagKwLet: "KwLet",
	TagKwFor: "KwFor",
	TagKwIn: "KwIn",
	TagKwLoop: "KwLoop",
	TagKwBreak: "KwBreak",
	TagKwContinue: "KwContinue",
	TagKwMatch: "KwMatch",
	TagKwStruct: "KwStruct",
	TagKwEnum: "KwEnum",
	TagKwType: "KwType",
	TagKwInt: "KwInt",
	TagKwFloat: "KwFloat",
	TagKwBool: "KwBool",
	TagKwStr: "KwStr",
	TagKwChar: "KwChar",
	TagKwByte: "KwByte",
	TagKwUnit: "KwUnit",
	TagKwNever: "KwNever",
	TagKwDuration: "KwDuration",
	TagKwSize: "KwSize",
	TagKwOrdering: "KwOrdering",
	TagKwSome: "KwSome",
	TagKwNone: "KwNone",
	TagKwOk: "KwOk",
	TagKwErr: "KwErr",
	TagKwRun: "KwRun",
	TagKwTry: "KwTry",
	TagKwMap: "KwMap",
	TagKwFilter: "KwFilter",
	TagKwFold: "KwFold",
	TagKwRecurse: "KwRecurse",
	TagKwParallel: "KwParallel",
	TagKwSpawn: "KwSpawn",
	TagKwTimeout: "KwTimeout",
	TagKwRetry: "KwRetry",
	TagKwCache: "KwCache",
	TagKwValidate: "KwValidate",
	TagKwWith: "KwWith",
	TagKwPrint: "KwPrint",
	TagKwPanic: "KwPanic",
	TagKwLen: "KwLen",
	TagKwMin: "KwMin",
	TagKwMax: "KwMax",
	TagLParen: "LParen",
	TagRParen: "RParen",
	TagLBrace: "LBrace",
	TagRBrace: "RBrace",
	TagLBracket: "LBracket",
	TagRBracket: "RBracket",
	TagComma: "Comma",
	TagDot: "Dot",
	TagColon: "Colon",
	TagColonColon: "ColonColon",
	TagArrow: "Arrow",
	TagFatArrow: "FatArrow",
	TagAt: "At",
	TagHash: "Hash",
	TagUnderscore: "Underscore",
	TagQuestion: "Question",
	TagSemicolon: "Semicolon",
	TagAssign: "Assign",
	TagEqEq: "EqEq",
	TagBangEq: "BangEq",
	TagBang: "Bang",
	TagLt: "Lt",
	TagLtEq: "LtEq",
	TagGt: "Gt",
	TagGtEq: "GtEq",
	TagAndAnd: "AndAnd",
	TagOrOr: "OrOr",
	TagAmp: "Amp",
	TagPipe: "Pipe",
	TagCaret: "Caret",
	TagTilde: "Tilde",
	TagShl: "Shl",
	TagShr: "Shr",
	TagPlus: "Plus",
	TagMinus: "Minus",
	TagStar: "Star",
	TagSlash: "Slash",
	TagPercent: "Percent",
	TagDotDot: "DotDot",
	TagDotDotEq: "DotDotEq",
	TagEOF: "EOF",
	TagError: "Error",
}

// String renders a human-readable tag name for diagnostics and the
// tokenize CLI subcommand's pretty output; unmapped tags (there should be
// none below tagCount) fall back to a numeric form.
func (t Tag) String() string {
	if int(t) < len(tagNames) && tagNames[t] != "" {
		return tagNames[t]
	}
	return "Tag(" + strconv.Itoa(int(t)) + ")"
}
