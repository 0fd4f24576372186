package text

import "github.com/arloliu/ctext/ucd"

// ToLower returns t with every code point mapped by the configured
// classifier's ToLower.
func (t *Text) ToLower() (*Text, error) {
	return t.mapCase(t.config().classifier.ToLower)
}

// ToUpper returns t with every code point mapped by the configured
// classifier's ToUpper.
func (t *Text) ToUpper() (*Text, error) {
	return t.mapCase(t.config().classifier.ToUpper)
}

// mapCase maps t code point by code point. The text is returned as-is until a
// code point changes; from there the result is written through a builder, so
// its encoding follows the mapped content and a BMP code point may map to a
// surrogate pair.
func (t *Text) mapCase(mapping func(rune) rune) (*Text, error) {
	v := t.view()

	i, w := 0, 0
	for ; i < v.n; i += w {
		var cp rune
		cp, w = v.codePointAt(i)
		if mapping(cp) != cp {
			break
		}
	}
	if i == v.n {
		return t, nil
	}

	b, err := t.config().NewBuilderCap(v.n)
	if err != nil {
		return nil, err
	}
	if err := b.splice(0, 0, bufSpan(v.b, v.coder, 0, i)); err != nil {
		return nil, err
	}

	for ; i < v.n; i += w {
		var cp rune
		cp, w = v.codePointAt(i)
		cp = mapping(cp)
		if ucd.IsBMP(cp) {
			err = b.AppendUnit(uint16(cp)) //nolint:gosec
		} else {
			err = b.AppendCodePoint(cp)
		}
		if err != nil {
			return nil, err
		}
	}

	return b.detach(), nil
}
