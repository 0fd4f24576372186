package text

import (
	"fmt"

	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/errs"
)

// TranslateEscapes returns t with escape sequences replaced by the units they
// denote:
//
//	\b \t \n \f \r \s  backspace, tab, line feed, form feed, carriage return, space
//	\' \" \\           the quoted character
//	\0 .. \377         octal unit value
//	\<line-terminator> removed; \r\n counts as one terminator
//
// Any other sequence, including a trailing backslash, is an error.
func (t *Text) TranslateEscapes() (*Text, error) {
	v := t.view()
	first := indexOfUnit(v, '\\', 0)
	if first < 0 {
		return t, nil
	}

	// Escapes only shrink the content, so the source encoding always fits.
	out := make([]byte, len(t.value))
	encoding.Copy(v.b, v.coder, 0, out, v.coder, 0, first)
	o := first

	for i := first; i < v.n; {
		u := v.at(i)
		i++
		if u != '\\' {
			putUnit(out, v.coder, o, u)
			o++

			continue
		}

		if i >= v.n {
			return nil, fmt.Errorf("%w: invalid escape sequence: \\<end>", errs.ErrInvalidArgument)
		}
		ch := v.at(i)
		i++

		switch ch {
		case 'b':
			u = '\b'
		case 'f':
			u = '\f'
		case 'n':
			u = '\n'
		case 'r':
			u = '\r'
		case 's':
			u = ' '
		case 't':
			u = '\t'
		case '\'', '"', '\\':
			u = ch
		case '0', '1', '2', '3', '4', '5', '6', '7':
			limit := i + 1
			if ch <= '3' {
				limit = i + 2
			}
			limit = min(limit, v.n)
			u = ch - '0'
			for i < limit {
				d := v.at(i)
				if d < '0' || d > '7' {
					break
				}
				i++
				u = u<<3 | (d - '0')
			}
		case '\n':
			continue
		case '\r':
			if i < v.n && v.at(i) == '\n' {
				i++
			}

			continue
		default:
			return nil, fmt.Errorf("%w: invalid escape sequence: \\%c \\\\u%04X",
				errs.ErrInvalidArgument, rune(ch), ch)
		}

		putUnit(out, v.coder, o, u)
		o++
	}

	return t.config().fromRegion(out, v.coder, 0, o), nil
}

func putUnit(b []byte, coder encoding.Coder, i int, u uint16) {
	if coder == encoding.Narrow {
		b[i] = byte(u)
		return
	}
	encoding.PutWide(b, i, u)
}
