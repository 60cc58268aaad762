package diag

import "fmt"

// Code is a stable numeric diagnostic identifier, rendered in the bit-exact
// "E####" form the external diagnostic surface and the attribute-driven
// test harness (#[compile_fail("...")], #[fail("...")]) depend on.
type Code uint16

const (
	// UnknownCode marks a diagnostic built without an assigned code.
	UnknownCode Code = 0

	// Parse errors, bit-exact per the external error-code table.
	ExpectedToken          Code = 1001 // expected token
	ExpectedExprOrLiteral  Code = 1002 // expected expression/literal
	ExpectedStatement      Code = 1003 // expected a statement boundary
	ExpectedIdentifier     Code = 1004 // expected identifier
	ExpectedTypeAnnotation Code = 1005 // expected a type annotation
	MalformedAttribute     Code = 1006 // malformed attribute
	UnclosedDelimiter      Code = 1007 // unclosed paren/brace/bracket
	ImportAfterDecl        Code = 1008 // use import after a declaration
	DuplicateParam         Code = 1009 // duplicate parameter name
	InvalidLambdaForm      Code = 1010 // malformed lambda parameter list
	MultiArgPositionalCall Code = 1011 // >=2 positional args without .name: syntax
	UnknownFunctionExp     Code = 1012 // unrecognized function-exp name
	NamedPropRequired      Code = 1013 // named-prop required on function_exp

	// Lex errors (never halt the lexer; recorded for completeness).
	LexUnknownByte        Code = 1100
	LexUnterminatedString Code = 1101
	LexUnterminatedBlock  Code = 1102
	LexMalformedNumber    Code = 1103

	// Type errors, produced by the typer (C9 collaborator).
	TypeMismatch     Code = 2001
	UnboundName      Code = 2002
	UnificationCycle Code = 2003
	ArityMismatch    Code = 2004

	// Internal invariant violations: degraded-but-alive conditions.
	InternalTypeInfoCycle    Code = 3000
	InternalLayoutCycleDepth Code = 3001

	// Codegen errors recorded by the IR builder's counter (not normally
	// placed in a Bag - see irbuilder.Builder.CodegenErrorCount - but kept
	// here so the driver can render them with the same stable prefix).
	CodegenOperandKindMismatch Code = 4000
	CodegenBadPointee          Code = 4001
	CodegenIndexOutOfBounds    Code = 4002
)

var codeTitle = map[Code]string{
	UnknownCode:                "unknown error",
	ExpectedToken:              "expected token",
	ExpectedExprOrLiteral:      "expected expression or literal",
	ExpectedStatement:          "expected statement",
	ExpectedIdentifier:         "expected identifier",
	ExpectedTypeAnnotation:     "expected type annotation",
	MalformedAttribute:         "malformed attribute",
	UnclosedDelimiter:          "unclosed delimiter",
	ImportAfterDecl:            "use import must precede all declarations",
	DuplicateParam:             "duplicate parameter name",
	InvalidLambdaForm:          "invalid lambda parameter list",
	MultiArgPositionalCall:     "calls with two or more arguments require .name: syntax",
	UnknownFunctionExp:         "unknown function-exp form",
	NamedPropRequired:          "named property required on function_exp",
	LexUnknownByte:             "unrecognized byte",
	LexUnterminatedString:      "unterminated string literal",
	LexUnterminatedBlock:       "unterminated block comment",
	LexMalformedNumber:         "malformed numeric literal",
	TypeMismatch:               "type mismatch",
	UnboundName:                "unbound name",
	UnificationCycle:           "unification occurs-check failure",
	ArityMismatch:              "arity mismatch",
	InternalTypeInfoCycle:      "type-info computation re-entered a cycle",
	InternalLayoutCycleDepth:   "layout resolution exceeded the recursion-depth guard",
	CodegenOperandKindMismatch: "codegen operand kind mismatch",
	CodegenBadPointee:          "codegen pointee type mismatch",
	CodegenIndexOutOfBounds:    "codegen aggregate index out of bounds",
}

// Title returns a short human-readable description of the code.
func (c Code) Title() string {
	if t, ok := codeTitle[c]; ok {
		return t
	}
	return codeTitle[UnknownCode]
}

// String renders the code in the stable "E####" form.
func (c Code) String() string {
	return fmt.Sprintf("E%04d", uint16(c))
}
