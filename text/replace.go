package text

import (
	"github.com/arloliu/ctext/encoding"
)

// Replace returns t with every non-overlapping occurrence of target, scanning
// left to right, replaced by replacement. An empty target inserts replacement
// before every unit and at the end.
func (t *Text) Replace(target, replacement *Text) (*Text, error) {
	cfg := t.config()
	v, tv, rv := t.view(), target.view(), replacement.view()

	matches, release := collectMatches(v, tv)
	defer release()

	m := len(*matches)
	if m == 0 {
		return t, nil
	}

	coder := v.coder.Union(tv.coder).Union(rv.coder)
	n, err := replacedLength(v.n, tv.n, rv.n, m, coder)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return cfg.empty, nil
	}

	buf := make([]byte, coder.Bytes(n))
	pos, out := 0, 0
	for _, i := range *matches {
		encoding.Copy(v.b, v.coder, pos, buf, coder, out, i-pos)
		out += i - pos
		encoding.Copy(rv.b, rv.coder, 0, buf, coder, out, rv.n)
		out += rv.n
		pos = i + tv.n
	}
	encoding.Copy(v.b, v.coder, pos, buf, coder, out, v.n-pos)

	if coder == encoding.Wide && cfg.mode.Compact() {
		if nb, ok := encoding.TryNarrow(buf, 0, n); ok {
			return newText(cfg, nb, encoding.Narrow), nil
		}
	}

	return newText(cfg, buf, coder), nil
}

// replacedLength computes n + matches*(rLen-tLen) without overflow.
func replacedLength(n, tLen, rLen, matches int, coder encoding.Coder) (int, error) {
	if rLen <= tLen {
		return n - matches*(tLen-rLen), nil
	}

	grow, err := encoding.MulLength(matches, rLen-tLen, coder)
	if err != nil {
		return 0, err
	}

	return encoding.AddLength(n, grow, coder)
}
