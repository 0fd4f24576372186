package ucd

import "unicode"

// GeneralCategory is a Unicode general category value.
type GeneralCategory uint8

// General categories. Unassigned is returned for code points not in any table.
const (
	Unassigned GeneralCategory = iota
	UppercaseLetter
	LowercaseLetter
	TitlecaseLetter
	ModifierLetter
	OtherLetter
	NonSpacingMark
	EnclosingMark
	SpacingMark
	DecimalDigitNumber
	LetterNumber
	OtherNumber
	SpaceSeparator
	LineSeparator
	ParagraphSeparator
	Control
	Format
	PrivateUse
	Surrogate
	DashPunctuation
	OpenPunctuation
	ClosePunctuation
	ConnectorPunctuation
	OtherPunctuation
	MathSymbol
	CurrencySymbol
	ModifierSymbol
	OtherSymbol
	InitialQuotePunctuation
	FinalQuotePunctuation
)

var categoryNames = [...]string{
	Unassigned:              "Cn",
	UppercaseLetter:         "Lu",
	LowercaseLetter:         "Ll",
	TitlecaseLetter:         "Lt",
	ModifierLetter:          "Lm",
	OtherLetter:             "Lo",
	NonSpacingMark:          "Mn",
	EnclosingMark:           "Me",
	SpacingMark:             "Mc",
	DecimalDigitNumber:      "Nd",
	LetterNumber:            "Nl",
	OtherNumber:             "No",
	SpaceSeparator:          "Zs",
	LineSeparator:           "Zl",
	ParagraphSeparator:      "Zp",
	Control:                 "Cc",
	Format:                  "Cf",
	PrivateUse:              "Co",
	Surrogate:               "Cs",
	DashPunctuation:         "Pd",
	OpenPunctuation:         "Ps",
	ClosePunctuation:        "Pe",
	ConnectorPunctuation:    "Pc",
	OtherPunctuation:        "Po",
	MathSymbol:              "Sm",
	CurrencySymbol:          "Sc",
	ModifierSymbol:          "Sk",
	OtherSymbol:             "So",
	InitialQuotePunctuation: "Pi",
	FinalQuotePunctuation:   "Pf",
}

// String returns the two-letter Unicode abbreviation, e.g. "Lu".
func (g GeneralCategory) String() string {
	if int(g) < len(categoryNames) {
		return categoryNames[g]
	}

	return "Unknown"
}

// categoryTables is ordered by how often text hits each category.
var categoryTables = []struct {
	cat   GeneralCategory
	table *unicode.RangeTable
}{
	{LowercaseLetter, unicode.Ll},
	{UppercaseLetter, unicode.Lu},
	{SpaceSeparator, unicode.Zs},
	{OtherPunctuation, unicode.Po},
	{DecimalDigitNumber, unicode.Nd},
	{Control, unicode.Cc},
	{OtherLetter, unicode.Lo},
	{TitlecaseLetter, unicode.Lt},
	{ModifierLetter, unicode.Lm},
	{NonSpacingMark, unicode.Mn},
	{EnclosingMark, unicode.Me},
	{SpacingMark, unicode.Mc},
	{LetterNumber, unicode.Nl},
	{OtherNumber, unicode.No},
	{LineSeparator, unicode.Zl},
	{ParagraphSeparator, unicode.Zp},
	{Format, unicode.Cf},
	{PrivateUse, unicode.Co},
	{Surrogate, unicode.Cs},
	{DashPunctuation, unicode.Pd},
	{OpenPunctuation, unicode.Ps},
	{ClosePunctuation, unicode.Pe},
	{ConnectorPunctuation, unicode.Pc},
	{MathSymbol, unicode.Sm},
	{CurrencySymbol, unicode.Sc},
	{ModifierSymbol, unicode.Sk},
	{OtherSymbol, unicode.So},
	{InitialQuotePunctuation, unicode.Pi},
	{FinalQuotePunctuation, unicode.Pf},
}

func lookupCategory(cp rune) GeneralCategory {
	for _, ct := range categoryTables {
		if unicode.Is(ct.table, cp) {
			return ct.cat
		}
	}

	return Unassigned
}
