package text

import (
	"bytes"

	"github.com/arloliu/ctext/encoding"
)

// Equals reports whether t and other hold the same units in the same
// encoding. Texts of one configuration mode with equal content always share
// an encoding.
func (t *Text) Equals(other *Text) bool {
	if t == other {
		return true
	}
	if other == nil {
		return false
	}

	return t.coder == other.coder && bytes.Equal(t.value, other.value)
}

// Compare orders t and other unit by unit. It returns zero only when both hold
// the same units, a negative value when t sorts first and a positive value
// otherwise.
func (t *Text) Compare(other *Text) int {
	return compareViews(t.view(), other.view())
}

func compareViews(a, b view) int {
	n := min(a.n, b.n)
	if a.coder == encoding.Narrow && b.coder == encoding.Narrow {
		if c := bytes.Compare(a.b[:n], b.b[:n]); c != 0 {
			return firstDiff(a, b, n)
		}
	} else {
		for i := 0; i < n; i++ {
			if ua, ub := a.at(i), b.at(i); ua != ub {
				return int(ua) - int(ub)
			}
		}
	}

	switch {
	case a.n > n:
		return surplus(a.at(n))
	case b.n > n:
		return -surplus(b.at(n))
	default:
		return 0
	}
}

func firstDiff(a, b view, n int) int {
	for i := 0; i < n; i++ {
		if a.b[i] != b.b[i] {
			return int(a.b[i]) - int(b.b[i])
		}
	}

	return 0
}

// surplus keeps a trailing NUL unit from reading as a tie.
func surplus(u uint16) int {
	if u == 0 {
		return 1
	}

	return int(u)
}

// EqualFold reports whether t and other are equal under simple per-unit case
// folding, comparing upper-cased then lower-cased forms of each unit pair.
func (t *Text) EqualFold(other *Text) bool {
	if other == nil || t.Len() != other.Len() {
		return false
	}
	if t.Equals(other) {
		return true
	}

	cls := t.config().classifier
	a, b := t.view(), other.view()
	for i := 0; i < a.n; i++ {
		ua, ub := a.at(i), b.at(i)
		if ua == ub {
			continue
		}
		ra, rb := cls.ToUpper(rune(ua)), cls.ToUpper(rune(ub))
		if ra == rb {
			continue
		}
		if cls.ToLower(ra) != cls.ToLower(rb) {
			return false
		}
	}

	return true
}
