package ucd

import "unicode/utf16"

// UTF-16 surrogate ranges and code point limits.
const (
	MinHighSurrogate = 0xD800
	MaxHighSurrogate = 0xDBFF
	MinLowSurrogate  = 0xDC00
	MaxLowSurrogate  = 0xDFFF

	MinSupplementaryCodePoint = 0x10000
	MaxCodePoint              = 0x10FFFF
)

// IsHighSurrogate reports whether u is a leading surrogate.
func IsHighSurrogate(u uint16) bool {
	return u >= MinHighSurrogate && u <= MaxHighSurrogate
}

// IsLowSurrogate reports whether u is a trailing surrogate.
func IsLowSurrogate(u uint16) bool {
	return u >= MinLowSurrogate && u <= MaxLowSurrogate
}

// IsSurrogate reports whether u is either half of a surrogate pair.
func IsSurrogate(u uint16) bool {
	return u >= MinHighSurrogate && u <= MaxLowSurrogate
}

// IsValidCodePoint reports whether cp lies in [0, MaxCodePoint].
func IsValidCodePoint(cp rune) bool {
	return cp >= 0 && cp <= MaxCodePoint
}

// IsBMP reports whether cp fits in a single unit.
func IsBMP(cp rune) bool {
	return cp >= 0 && cp < MinSupplementaryCodePoint
}

// IsSupplementary reports whether cp needs a surrogate pair.
func IsSupplementary(cp rune) bool {
	return cp >= MinSupplementaryCodePoint && cp <= MaxCodePoint
}

// CharCount returns the number of units needed to store cp: 1 or 2.
func CharCount(cp rune) int {
	if cp >= MinSupplementaryCodePoint {
		return 2
	}

	return 1
}

// ToCodePoint combines a surrogate pair. The pair must be valid.
func ToCodePoint(hi, lo uint16) rune {
	return utf16.DecodeRune(rune(hi), rune(lo))
}

// HighSurrogate returns the leading unit of supplementary code point cp.
func HighSurrogate(cp rune) uint16 {
	hi, _ := utf16.EncodeRune(cp)
	return uint16(hi) //nolint:gosec
}

// LowSurrogate returns the trailing unit of supplementary code point cp.
func LowSurrogate(cp rune) uint16 {
	_, lo := utf16.EncodeRune(cp)
	return uint16(lo) //nolint:gosec
}
