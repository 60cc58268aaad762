package lexer

import (
	"strconv"
	"strings"

	"ori/internal/diag"
	"ori/internal/token"
)

// scanNumber scans an integer or float literal: decimal, 0b/0o/0x bases,
// underscore separators, a fractional part, a scientific exponent, and an
// optional attached duration or size suffix (§4.3). Malformed forms still
// produce a best-effort token so the lexer never halts; they are reported
// through Options.Reporter.
func (lx *Lexer) scanNumber(flags token.Flags) {
	start := lx.cursor.Mark()
	isFloat := false

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
		isFloat = true
		lx.scanExponent(&isFloat)
		lx.finishNumber(start, isFloat, flags)
		return
	}

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			for lx.cursor.Peek() == '0' || lx.cursor.Peek() == '1' || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			lx.finishNumber(start, false, flags)
			return
		case 'o', 'O':
			lx.cursor.Bump()
			for (lx.cursor.Peek() >= '0' && lx.cursor.Peek() <= '7') || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			lx.finishNumber(start, false, flags)
			return
		case 'x', 'X':
			lx.cursor.Bump()
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			lx.finishNumber(start, false, flags)
			return
		}
	}

	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	if lx.cursor.Peek() == '.' {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && (b1 == '.' || b1 == '=') {
			// `..` or `..=` follows; not part of this number.
		} else {
			lx.cursor.Bump()
			isFloat = true
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		}
	}

	lx.scanExponent(&isFloat)
	lx.finishNumber(start, isFloat, flags)
}

func (lx *Lexer) scanExponent(isFloat *bool) {
	if lx.cursor.Peek() != 'e' && lx.cursor.Peek() != 'E' {
		return
	}
	*isFloat = true
	lx.cursor.Bump()
	if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
		lx.cursor.Bump()
	}
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

// durationSuffixes and sizeSuffixes are checked longest-spelling-first so
// that e.g. "ms" is not mistaken for an "m" followed by a stray "s".
var durationSuffixes = []struct {
	spelling string
	unit     token.DurationUnit
}{
	{"ns", token.DurationNanoseconds},
	{"us", token.DurationMicroseconds},
	{"ms", token.DurationMilliseconds},
	{"h", token.DurationHours},
	{"m", token.DurationMinutes},
	{"s", token.DurationSeconds},
}

var sizeSuffixes = []struct {
	spelling string
	unit     token.SizeUnit
}{
	{"tb", token.SizeTerabytes},
	{"gb", token.SizeGigabytes},
	{"mb", token.SizeMegabytes},
	{"kb", token.SizeKilobytes},
	{"b", token.SizeBytes},
}

// matchSuffix reports the duration or size suffix starting at the cursor,
// provided it is not itself followed by another identifier-continuation
// byte (so "ms2" is not mistaken for the "ms" suffix).
func (lx *Lexer) matchSuffix() (text string, isSize bool, durUnit token.DurationUnit, sizeUnit token.SizeUnit, ok bool) {
	rest := lx.file.Content[lx.cursor.Off:lx.limitOff()]
	for _, d := range durationSuffixes {
		if strings.HasPrefix(string(rest), d.spelling) {
			after := lx.cursor.Off + uint32(len(d.spelling))
			if after >= lx.limitOff() || !isIdentContinueByte(lx.file.Content[after]) {
				return d.spelling, false, d.unit, 0, true
			}
		}
	}
	for _, s := range sizeSuffixes {
		if strings.HasPrefix(string(rest), s.spelling) {
			after := lx.cursor.Off + uint32(len(s.spelling))
			if after >= lx.limitOff() || !isIdentContinueByte(lx.file.Content[after]) {
				return s.spelling, true, 0, s.unit, true
			}
		}
	}
	return "", false, 0, 0, false
}

func (lx *Lexer) limitOff() uint32 {
	return lx.cursor.limit()
}

func (lx *Lexer) finishNumber(start Mark, isFloat bool, flags token.Flags) {
	digitsSpan := lx.cursor.SpanFrom(start)
	digitsText := strings.ReplaceAll(string(lx.file.Content[digitsSpan.Start:digitsSpan.End]), "_", "")

	if suffix, isSize, durUnit, sizeUnit, ok := lx.matchSuffix(); ok {
		for range suffix {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		magnitude, err := strconv.ParseInt(digitsText, 10, 64)
		if err != nil || isFloat {
			lx.errLex(diag.LexMalformedNumber, sp, "duration/size literal magnitude must be an integer")
			lx.emit(token.Bare(token.TagError), sp, flags|token.FlagHasError)
			return
		}
		if isSize {
			bytesVal, err := strconv.ParseUint(digitsText, 10, 64)
			if err != nil {
				lx.errLex(diag.LexMalformedNumber, sp, "malformed size literal")
				lx.emit(token.Bare(token.TagError), sp, flags|token.FlagHasError)
				return
			}
			lx.emit(token.Size(bytesVal*sizeUnit.Multiplier(), sizeUnit), sp, flags)
			return
		}
		lx.emit(token.Duration(magnitude*durUnit.Multiplier(), durUnit), sp, flags)
		return
	}

	sp := lx.cursor.SpanFrom(start)
	if isFloat {
		v, err := strconv.ParseFloat(digitsText, 64)
		if err != nil {
			lx.errLex(diag.LexMalformedNumber, sp, "malformed float literal")
			lx.emit(token.Bare(token.TagError), sp, flags|token.FlagHasError)
			return
		}
		lx.emit(token.Float(v), sp, flags)
		return
	}

	base := 10
	text := digitsText
	switch {
	case strings.HasPrefix(text, "0b") || strings.HasPrefix(text, "0B"):
		base, text = 2, text[2:]
	case strings.HasPrefix(text, "0o") || strings.HasPrefix(text, "0O"):
		base, text = 8, text[2:]
	case strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X"):
		base, text = 16, text[2:]
	}
	v, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		lx.errLex(diag.LexMalformedNumber, sp, "malformed integer literal")
		lx.emit(token.Bare(token.TagError), sp, flags|token.FlagHasError)
		return
	}
	lx.emit(token.Int(v), sp, flags)
}
