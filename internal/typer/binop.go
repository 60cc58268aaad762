package typer

import "ori/internal/ast"

type opClass uint8

const (
	opArith opClass = iota // + - * / %, result = operand type, operands numeric
	opBitwise              // & | ^ << >>, result = Int, operands Int
	opCompare              // < <= > >=, result = Bool, operands numeric
	opEquality             // == !=, result = Bool, operands same type
	opLogical              // && ||, result = Bool, operands Bool
	opRange                // .. ..=, result = RangeType(Int), operands Int
)

var binaryOpClass = map[ast.BinaryOp]opClass{
	ast.OpAdd: opArith, ast.OpSub: opArith, ast.OpMul: opArith,
	ast.OpDiv: opArith, ast.OpMod: opArith,
	ast.OpBitAnd: opBitwise, ast.OpBitOr: opBitwise, ast.OpBitXor: opBitwise,
	ast.OpShl: opBitwise, ast.OpShr: opBitwise,
	ast.OpLt: opCompare, ast.OpLtEq: opCompare, ast.OpGt: opCompare, ast.OpGtEq: opCompare,
	ast.OpEq: opEquality, ast.OpNotEq: opEquality,
	ast.OpAnd: opLogical, ast.OpOr: opLogical,
	ast.OpRange: opRange, ast.OpRangeInclusive: opRange,
}
