package core

import (
	"strings"
	"unicode/utf8"
)

// Digits strips everything but ASCII digits from s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// mask re-inserts separators into the digits of s at the given group widths,
// dropping digits beyond the total width. It is incremental: partial input masks
// to a partial result, so it can run on every keystroke. Re-applying it to its
// own output (separators stripped first) is a no-op.
func mask(s string, groups ...int) string {
	digits := Digits(s)
	var total int
	for _, g := range groups {
		total += g
	}
	if len(digits) > total {
		digits = digits[:total]
	}
	var b strings.Builder
	var off int
	for _, g := range groups {
		if off >= len(digits) {
			break
		}
		if off > 0 {
			b.WriteByte('-')
		}
		end := off + g
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(digits[off:end])
		off = end
	}
	return b.String()
}

// MaskCNIC formats raw input into the NNNNN-NNNNNNN-N identity-number shape.
func MaskCNIC(s string) string { return mask(s, 5, 7, 1) }

// MaskPhone formats raw input into the NNNN-NNNNNNN phone shape.
func MaskPhone(s string) string { return mask(s, 4, 7) }

// OrNA substitutes the display placeholder for empty optional fields.
// Display-only; never feed the result back into a write request.
func OrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// Truncate shortens s to max runes for list display, appending an ellipsis
// when cut. Display-only; never feed the result back into a write request.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
