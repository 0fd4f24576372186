package text

import "github.com/arloliu/ctext/ucd"

// Trim returns t without leading and trailing units <= U+0020.
func (t *Text) Trim() *Text {
	v := t.view()
	begin, end := 0, v.n
	for begin < end && v.at(begin) <= ' ' {
		begin++
	}
	for begin < end && v.at(end-1) <= ' ' {
		end--
	}

	return t.region(begin, end)
}

// Strip returns t without leading and trailing white space as reported by the
// configured classifier.
func (t *Text) Strip() *Text {
	v := t.view()
	cls := t.config().classifier
	begin := leadingSpace(v, cls)
	if begin == v.n {
		return t.config().empty
	}

	return t.region(begin, trailingSpace(v, cls))
}

// StripLeading returns t without leading white space.
func (t *Text) StripLeading() *Text {
	v := t.view()
	return t.region(leadingSpace(v, t.config().classifier), v.n)
}

// StripTrailing returns t without trailing white space.
func (t *Text) StripTrailing() *Text {
	v := t.view()
	return t.region(0, trailingSpace(v, t.config().classifier))
}

// IsBlank reports whether t is empty or holds only white space.
func (t *Text) IsBlank() bool {
	v := t.view()
	return leadingSpace(v, t.config().classifier) == v.n
}

func (t *Text) region(begin, end int) *Text {
	if begin == 0 && end == t.Len() {
		return t
	}

	return t.config().fromRegion(t.value, t.coder, begin, end-begin)
}

func isSpace(cls ucd.Classifier, cp rune) bool {
	return cp == ' ' || cp == '\t' || cls.IsWhitespace(cp)
}

// leadingSpace returns the index of the first non-white-space code point.
func leadingSpace(v view, cls ucd.Classifier) int {
	i := 0
	for i < v.n {
		cp, w := v.codePointAt(i)
		if !isSpace(cls, cp) {
			break
		}
		i += w
	}

	return i
}

// trailingSpace returns the index just past the last non-white-space code point.
func trailingSpace(v view, cls ucd.Classifier) int {
	i := v.n
	for i > 0 {
		cp, w := v.codePointBefore(i)
		if !isSpace(cls, cp) {
			break
		}
		i -= w
	}

	return i
}
