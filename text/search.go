package text

import (
	"bytes"

	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/ucd"
)

// indexOfUnit returns the first index >= from holding u, or -1.
func indexOfUnit(v view, u uint16, from int) int {
	from = max(from, 0)
	if from >= v.n {
		return -1
	}

	if v.coder == encoding.Narrow {
		if !encoding.Narrow.Fits(u) {
			return -1
		}
		if i := bytes.IndexByte(v.b[from:v.n], byte(u)); i >= 0 {
			return from + i
		}

		return -1
	}

	for i := from; i < v.n; i++ {
		if encoding.GetWide(v.b, i) == u {
			return i
		}
	}

	return -1
}

// lastIndexOfUnit returns the last index <= from holding u, or -1.
func lastIndexOfUnit(v view, u uint16, from int) int {
	from = min(from, v.n-1)
	if from < 0 || !v.coder.Fits(u) {
		return -1
	}

	if v.coder == encoding.Narrow {
		return bytes.LastIndexByte(v.b[:from+1], byte(u))
	}

	for i := from; i >= 0; i-- {
		if encoding.GetWide(v.b, i) == u {
			return i
		}
	}

	return -1
}

func indexOfCodePoint(v view, cp rune, from int) int {
	if ucd.IsBMP(cp) {
		return indexOfUnit(v, uint16(cp), from) //nolint:gosec
	}
	if !ucd.IsValidCodePoint(cp) || v.coder == encoding.Narrow {
		return -1
	}

	hi, lo := ucd.HighSurrogate(cp), ucd.LowSurrogate(cp)
	for i := max(from, 0); i < v.n-1; i++ {
		if v.at(i) == hi && v.at(i+1) == lo {
			return i
		}
	}

	return -1
}

func lastIndexOfCodePoint(v view, cp rune, from int) int {
	if ucd.IsBMP(cp) {
		return lastIndexOfUnit(v, uint16(cp), from) //nolint:gosec
	}
	if !ucd.IsValidCodePoint(cp) || v.coder == encoding.Narrow {
		return -1
	}

	hi, lo := ucd.HighSurrogate(cp), ucd.LowSurrogate(cp)
	for i := min(from, v.n-2); i >= 0; i-- {
		if v.at(i) == hi && v.at(i+1) == lo {
			return i
		}
	}

	return -1
}

// regionMatches compares n units of a at aOff with b at bOff, reading each side
// through its own encoding.
func regionMatches(a view, aOff int, b view, bOff, n int) bool {
	switch {
	case a.coder == b.coder:
		return bytes.Equal(a.bytes(aOff, aOff+n), b.bytes(bOff, bOff+n))
	case a.coder == encoding.Narrow:
		for i := range n {
			if uint16(a.b[aOff+i]) != encoding.GetWide(b.b, bOff+i) {
				return false
			}
		}
	default:
		for i := range n {
			if encoding.GetWide(a.b, aOff+i) != uint16(b.b[bOff+i]) {
				return false
			}
		}
	}

	return true
}

// indexOf returns the first index >= from where needle occurs in hay, or -1.
// An empty needle matches at from, clamped to the haystack bounds.
func indexOf(hay, needle view, from int) int {
	from = max(from, 0)
	if from >= hay.n {
		if needle.n == 0 {
			return hay.n
		}

		return -1
	}
	if needle.n == 0 {
		return from
	}

	first := needle.at(0)
	if !hay.coder.Fits(first) {
		return -1
	}

	last := hay.n - needle.n
	for i := from; i <= last; i++ {
		i = indexOfUnit(hay, first, i)
		if i < 0 || i > last {
			return -1
		}
		if regionMatches(hay, i+1, needle, 1, needle.n-1) {
			return i
		}
	}

	return -1
}

// lastIndexOf returns the last index <= from where needle occurs in hay, or -1.
func lastIndexOf(hay, needle view, from int) int {
	from = min(from, hay.n-needle.n)
	if from < 0 {
		return -1
	}
	if needle.n == 0 {
		return from
	}

	first := needle.at(0)
	if !hay.coder.Fits(first) {
		return -1
	}

	for i := from; i >= 0; i-- {
		i = lastIndexOfUnit(hay, first, i)
		if i < 0 {
			return -1
		}
		if regionMatches(hay, i+1, needle, 1, needle.n-1) {
			return i
		}
	}

	return -1
}

// IndexOfUnit returns the index of the first occurrence of u, or -1.
func (t *Text) IndexOfUnit(u uint16) int {
	return indexOfUnit(t.view(), u, 0)
}

// LastIndexOfUnit returns the index of the last occurrence of u, or -1.
func (t *Text) LastIndexOfUnit(u uint16) int {
	v := t.view()
	return lastIndexOfUnit(v, u, v.n-1)
}

// IndexOfCodePoint returns the index of the first occurrence of cp, or -1.
// Supplementary code points match only as a surrogate pair.
func (t *Text) IndexOfCodePoint(cp rune) int {
	return indexOfCodePoint(t.view(), cp, 0)
}

// LastIndexOfCodePoint returns the index of the last occurrence of cp, or -1.
func (t *Text) LastIndexOfCodePoint(cp rune) int {
	v := t.view()
	return lastIndexOfCodePoint(v, cp, v.n-1)
}

// IndexOf returns the index of the first occurrence of sub, or -1.
func (t *Text) IndexOf(sub *Text) int {
	return indexOf(t.view(), sub.view(), 0)
}

// IndexOfFrom returns the index of the first occurrence of sub at or after
// from, or -1.
func (t *Text) IndexOfFrom(sub *Text, from int) int {
	return indexOf(t.view(), sub.view(), from)
}

// LastIndexOf returns the index of the last occurrence of sub, or -1.
func (t *Text) LastIndexOf(sub *Text) int {
	return lastIndexOf(t.view(), sub.view(), t.Len())
}

// LastIndexOfFrom returns the index of the last occurrence of sub at or before
// from, or -1.
func (t *Text) LastIndexOfFrom(sub *Text, from int) int {
	return lastIndexOf(t.view(), sub.view(), from)
}

// Contains reports whether sub occurs in t.
func (t *Text) Contains(sub *Text) bool {
	return t.IndexOf(sub) >= 0
}

// HasPrefix reports whether t begins with prefix.
func (t *Text) HasPrefix(prefix *Text) bool {
	return t.StartsWithAt(prefix, 0)
}

// HasSuffix reports whether t ends with suffix.
func (t *Text) HasSuffix(suffix *Text) bool {
	return t.StartsWithAt(suffix, t.Len()-suffix.Len())
}

// StartsWithAt reports whether prefix occurs in t at offset.
func (t *Text) StartsWithAt(prefix *Text, offset int) bool {
	v, p := t.view(), prefix.view()
	if offset < 0 || offset > v.n-p.n {
		return false
	}

	return regionMatches(v, offset, p, 0, p.n)
}
