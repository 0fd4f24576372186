// Package ucd provides the Unicode character data consulted by ctext:
// general categories, whitespace, letters, digits, per code point case mapping
// and UTF-16 surrogate helpers.
//
// Text operations reach this data only through the Classifier interface, so
// callers can substitute tailored tables, for example Turkic case mapping:
//
//	cfg, _ := text.NewConfig(text.WithClassifier(ucd.NewSpecialCase(unicode.TurkishCase)))
package ucd
