package token

// Tag is the compact 7-bit discriminant assigned to every TokenKind variant.
// Tags are arranged in contiguous ranges (literals, keywords, type keywords,
// constructors, pattern keywords, punctuation, operators, special) so that
// downstream bitset representations (the parser's first-set tables) can index
// directly by tag. P1 requires every tag to stay below 128; tagCount is
// checked by a compile-time assertion below.
type Tag uint8

const (
	// Literals (0-10).
	TagInvalid Tag = iota
	TagIntLit
	TagFloatLit
	TagCharLit
	TagStringLit
	TagTemplateHead
	TagTemplateMiddle
	TagTemplateTail
	TagTemplateFull
	TagDurationLit
	TagSizeLit

	TagFormatSpec // format specifier fragment inside `{expr:spec}`
	TagIdent

	// Keywords (contiguous range starting here; 20 general-purpose keywords).
	TagKwUse
	TagKwAs
	TagKwPub
	TagKwUses
	TagKwWhere
	TagKwTests
	TagKwTrue
	TagKwFalse
	TagKwIf
	TagKwElse
	TagKwLet
	TagKwFor
	TagKwIn
	TagKwLoop
	TagKwBreak
	TagKwContinue
	TagKwMatch
	TagKwStruct
	TagKwEnum
	TagKwType

	// Type keywords (primitive type names; mirrors the 11 pre-interned
	// primitive TypePool indices).
	TagKwInt
	TagKwFloat
	TagKwBool
	TagKwStr
	TagKwChar
	TagKwByte
	TagKwUnit
	TagKwNever
	TagKwDuration
	TagKwSize
	TagKwOrdering

	// Constructors.
	TagKwSome
	TagKwNone
	TagKwOk
	TagKwErr

	// Pattern keywords: function-seq forms and function-exp forms. Soft
	// keywords among these (len, min, max) are lexed as plain identifiers
	// unless resolved to this tag by one-token lookahead (see
	// lexer.scanIdentOrKeyword); FlagContextualKw records that.
	TagKwRun
	TagKwTry
	TagKwMap
	TagKwFilter
	TagKwFold
	TagKwRecurse
	TagKwParallel
	TagKwSpawn
	TagKwTimeout
	TagKwRetry
	TagKwCache
	TagKwValidate
	TagKwWith
	TagKwPrint
	TagKwPanic
	TagKwLen
	TagKwMin
	TagKwMax

	// Punctuation.
	TagLParen
	TagRParen
	TagLBrace
	TagRBrace
	TagLBracket
	TagRBracket
	TagComma
	TagDot
	TagColon
	TagColonColon
	TagArrow
	TagFatArrow
	TagAt
	TagHash
	TagUnderscore
	TagQuestion
	TagSemicolon

	// Operators.
	TagAssign
	TagEqEq
	TagBangEq
	TagBang
	TagLt
	TagLtEq
	TagGt
	TagGtEq
	TagAndAnd
	TagOrOr
	TagAmp
	TagPipe
	TagCaret
	TagTilde
	TagShl
	TagShr
	TagPlus
	TagMinus
	TagStar
	TagSlash
	TagPercent
	TagDotDot
	TagDotDotEq

	// Special.
	TagEOF
	TagError

	tagCount // sentinel: number of defined tags, must stay below 128 (P1)
)

// Ensure tagCount < 128 at compile time (P1). This expression only typechecks
// when tagCount <= 128; a violation fails the build with an array-size error.
var _ [128 - int(tagCount)]struct{}

// IsKeyword reports whether the tag falls in a keyword range (general,
// type, constructor, or pattern keyword).
func (t Tag) IsKeyword() bool {
	return t >= TagKwUse && t <= TagKwMax
}

// IsLiteral reports whether the tag is a literal kind.
func (t Tag) IsLiteral() bool {
	return t >= TagIntLit && t <= TagSizeLit
}

// IsPunctOrOp reports whether the tag is punctuation or an operator.
func (t Tag) IsPunctOrOp() bool {
	return t >= TagLParen && t <= TagDotDotEq
}
