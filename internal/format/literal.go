package format

import (
	"strconv"

	"ori/internal/intern"
	"ori/internal/token"
)

// renderLiteral renders the token.Kind payload of an ExprLitInt/Float/
// Bool/Char/Str node back to canonical source text. Duration and size
// literals are parsed into ExprLitInt (see parser.parsePrimary) but keep
// their original Tag, so they are recovered here rather than in a
// separate literal kind.
func renderLiteral(in *intern.Interner, lit token.Kind) string {
	switch lit.Tag {
	case token.TagIntLit:
		return strconv.FormatUint(lit.IntValue(), 10)
	case token.TagFloatLit:
		return renderFloat(lit.FloatValue())
	case token.TagDurationLit:
		u := lit.DurationRawUnit()
		return strconv.FormatInt(lit.DurationNanos()/u.Multiplier(), 10) + durationSuffix(u)
	case token.TagSizeLit:
		u := lit.SizeRawUnit()
		return strconv.FormatUint(lit.SizeBytesValue()/u.Multiplier(), 10) + sizeSuffix(u)
	case token.TagCharLit:
		return strconv.QuoteRune(lit.CharValue())
	case token.TagStringLit:
		return strconv.Quote(in.MustLookup(lit.StrName()))
	case token.TagKwTrue:
		return "true"
	case token.TagKwFalse:
		return "false"
	default:
		return "0"
	}
}

// renderFloat formats v so it always keeps a visible decimal point or
// exponent, so re-lexing the output always produces TagFloatLit rather
// than TagIntLit.
func renderFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return s
		}
	}
	return s + ".0"
}

func durationSuffix(u token.DurationUnit) string {
	switch u {
	case token.DurationNanoseconds:
		return "ns"
	case token.DurationMicroseconds:
		return "us"
	case token.DurationMilliseconds:
		return "ms"
	case token.DurationSeconds:
		return "s"
	case token.DurationMinutes:
		return "m"
	case token.DurationHours:
		return "h"
	default:
		return "ns"
	}
}

func sizeSuffix(u token.SizeUnit) string {
	switch u {
	case token.SizeBytes:
		return "b"
	case token.SizeKilobytes:
		return "kb"
	case token.SizeMegabytes:
		return "mb"
	case token.SizeGigabytes:
		return "gb"
	case token.SizeTerabytes:
		return "tb"
	default:
		return "b"
	}
}
