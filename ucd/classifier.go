package ucd

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Classifier answers the per code point questions text operations need.
//
// Implementations must be safe for concurrent use and must be pure: the same
// code point always yields the same answer.
type Classifier interface {
	// Category returns the general category of cp.
	Category(cp rune) GeneralCategory
	// IsWhitespace reports whether cp is whitespace for strip and blank checks.
	IsWhitespace(cp rune) bool
	// IsLetter reports whether cp is a letter.
	IsLetter(cp rune) bool
	// IsDigit reports whether cp is a decimal digit.
	IsDigit(cp rune) bool
	// ToLower maps cp to its lowercase code point, or returns cp unchanged.
	ToLower(cp rune) rune
	// ToUpper maps cp to its uppercase code point, or returns cp unchanged.
	ToUpper(cp rune) rune
}

var (
	// controlSpaces are the C0 controls treated as whitespace.
	controlSpaces = rangetable.New('\t', '\n', '\v', '\f', '\r', 0x1C, 0x1D, 0x1E, 0x1F)

	// separators merges the space, line and paragraph separator categories.
	separators = rangetable.Merge(unicode.Zs, unicode.Zl, unicode.Zp)

	// nonBreakingSpaces are separators that do not count as whitespace.
	nonBreakingSpaces = rangetable.New(0x00A0, 0x2007, 0x202F)
)

// IsWhitespace reports whether cp is a separator other than a non-breaking
// space, or one of the C0 controls TAB, LF, VT, FF, CR and FS through US.
func IsWhitespace(cp rune) bool {
	if cp == ' ' || cp == '\t' {
		return true
	}
	if cp < 0x80 {
		return unicode.Is(controlSpaces, cp)
	}

	return unicode.Is(separators, cp) && !unicode.Is(nonBreakingSpaces, cp)
}

type standardClassifier struct{}

var defaultClassifier Classifier = standardClassifier{}

// Default returns the classifier backed by the standard Unicode tables.
func Default() Classifier {
	return defaultClassifier
}

func (standardClassifier) Category(cp rune) GeneralCategory { return lookupCategory(cp) }
func (standardClassifier) IsWhitespace(cp rune) bool        { return IsWhitespace(cp) }
func (standardClassifier) IsLetter(cp rune) bool            { return unicode.IsLetter(cp) }
func (standardClassifier) IsDigit(cp rune) bool             { return unicode.IsDigit(cp) }
func (standardClassifier) ToLower(cp rune) rune             { return unicode.ToLower(cp) }
func (standardClassifier) ToUpper(cp rune) rune             { return unicode.ToUpper(cp) }

// SpecialCase is a classifier whose case mapping is tailored by a
// unicode.SpecialCase table. Other answers come from the standard tables.
type SpecialCase struct {
	standardClassifier
	special unicode.SpecialCase
}

var _ Classifier = SpecialCase{}

// NewSpecialCase returns a classifier using sc for case mapping.
func NewSpecialCase(sc unicode.SpecialCase) SpecialCase {
	return SpecialCase{special: sc}
}

// ToLower maps cp using the tailored table.
func (c SpecialCase) ToLower(cp rune) rune { return c.special.ToLower(cp) }

// ToUpper maps cp using the tailored table.
func (c SpecialCase) ToUpper(cp rune) rune { return c.special.ToUpper(cp) }
