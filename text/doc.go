// Package text implements an immutable text value and its mutable builder,
// both stored as sequences of 16-bit units in one of two encodings.
//
// A Text whose units all fit in a byte is stored narrow, one byte per unit;
// any other Text is stored wide, two bytes per unit. Under the default
// compact mode the encoding is always the minimal one for the content, so
// Equals is a plain byte comparison. A Config created with
// encoding.ModeWideOnly stores everything wide.
//
// Builder trades that guarantee for cheap edits: it promotes itself to wide
// on the first unit above 0xFF and never narrows in place. ToText narrows the
// snapshot when the content allows.
//
// Indices are unit indices throughout. Code points above U+FFFF occupy two
// units as a surrogate pair; operations reading code points treat an unpaired
// surrogate as a code point of its own.
//
// Errors wrap the sentinels in package errs:
//
//	_, err := txt.SubText(4, 2)
//	if errors.Is(err, errs.ErrOutOfRange) {
//		...
//	}
package text
