package accounting

import (
	"strings"

	"github.com/SscSPs/mma_web/internal/core/domain"
)

// SanitizeKeystroke cleans an amount while it is being typed: only digits and the
// first '.' survive, digits after any later '.' are appended ("1.2.3" -> "1.23").
func SanitizeKeystroke(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	seenDot := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeOnBlur normalises an amount when its field loses focus.
// "" and "." become "" (zero). Digits past the second decimal are cut, not rounded.
// Redundant leading zeros go, but "0" and "0.xx" keep theirs. A dangling '.' is dropped
// and a leading '.' gets a "0" in front.
func SanitizeOnBlur(raw string) string {
	s := SanitizeKeystroke(raw)
	if s == "" || s == "." {
		return ""
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if len(fracPart) > int(centsPrecision) {
		fracPart = fracPart[:centsPrecision]
	}
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	if fracPart == "" {
		return intPart
	}
	return intPart + "." + fracPart
}

// BlurLine applies blur-time sanitising to one side of a line. A positive value on
// that side clears the opposite side, so a line only ever carries one side.
func BlurLine(line domain.JournalLine, side domain.Side) domain.JournalLine {
	value := SanitizeOnBlur(line.Amount(side))
	line.SetAmount(side, value)
	if ParseAmount(value).IsPositive() {
		line.SetAmount(side.Opposite(), "")
	}
	return line
}
