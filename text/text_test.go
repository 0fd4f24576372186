package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/errs"
)

func wideOnly(t *testing.T) *Config {
	t.Helper()

	cfg, err := NewConfig(WithMode(encoding.ModeWideOnly))
	require.NoError(t, err)

	return cfg
}

func mustSub(t *testing.T, txt *Text, begin, end int) *Text {
	t.Helper()

	sub, err := txt.SubText(begin, end)
	require.NoError(t, err)

	return sub
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		units []uint16
		coder encoding.Coder
	}{
		{"empty", "", []uint16{}, encoding.Narrow},
		{"ascii", "hello", []uint16{'h', 'e', 'l', 'l', 'o'}, encoding.Narrow},
		{"latin1", "café", []uint16{'c', 'a', 'f', 0xE9}, encoding.Narrow},
		{"bmp", "a€", []uint16{'a', 0x20AC}, encoding.Wide},
		{"supplementary", "x😀", []uint16{'x', 0xD83D, 0xDE00}, encoding.Wide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := FromString(tt.input)
			require.Equal(t, len(tt.units), txt.Len())
			require.Equal(t, tt.coder, txt.Coder())
			require.Equal(t, tt.units, txt.Units())
			require.Equal(t, tt.input, txt.String())
		})
	}
}

func TestFromUnits_RoundTrip(t *testing.T) {
	inputs := [][]uint16{
		{},
		{0},
		{'a', 'b', 0xFF},
		{0x100},
		{'a', 0xD800, 'b'},
		{0xFFFF, 0, 0xFF, 0x7F},
	}

	for _, units := range inputs {
		txt := FromUnits(units)
		require.Equal(t, units, txt.Units())

		narrow := true
		for _, u := range units {
			if u > 0xFF {
				narrow = false
			}
		}
		if narrow {
			require.Equal(t, encoding.Narrow, txt.Coder(), "units %v", units)
		} else {
			require.Equal(t, encoding.Wide, txt.Coder(), "units %v", units)
		}
	}
}

func TestFromUnitsRange(t *testing.T) {
	units := []uint16{'a', 0x263A, 'b', 'c'}

	txt, err := FromUnitsRange(units, 2, 2)
	require.NoError(t, err)
	require.Equal(t, "bc", txt.String())
	require.Equal(t, encoding.Narrow, txt.Coder())

	_, err = FromUnitsRange(units, 3, 2)
	require.ErrorIs(t, err, errs.ErrOutOfRange)

	_, err = FromUnitsRange(units, -1, 1)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestFromCodePoints(t *testing.T) {
	txt, err := FromCodePoints([]rune{'a', 0x1F600, 'b'}, 0, 3)
	require.NoError(t, err)
	require.Equal(t, []uint16{'a', 0xD83D, 0xDE00, 'b'}, txt.Units())
	require.Equal(t, encoding.Wide, txt.Coder())

	txt, err = FromCodePoints([]rune{'x', 'y', 0xE9}, 1, 2)
	require.NoError(t, err)
	require.Equal(t, "yé", txt.String())
	require.Equal(t, encoding.Narrow, txt.Coder())

	_, err = FromCodePoints([]rune{'a', 0x110000}, 0, 2)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = FromCodePoints([]rune{-1}, 0, 1)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = FromCodePoints([]rune{'a'}, 0, 2)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestFromLatin1(t *testing.T) {
	src := []byte{'a', 0xE9, 0xFF}
	txt := FromLatin1(src)
	src[0] = 'z'

	require.Equal(t, []uint16{'a', 0xE9, 0xFF}, txt.Units())
	require.Equal(t, encoding.Narrow, txt.Coder())

	latin1, ok := txt.Latin1()
	require.True(t, ok)
	require.Equal(t, []byte{'a', 0xE9, 0xFF}, latin1)

	_, ok = FromString("€").Latin1()
	require.False(t, ok)
}

func TestFromHiByte(t *testing.T) {
	txt, err := FromHiByte([]byte("abc"), 0x26, 0, 3)
	require.NoError(t, err)
	require.Equal(t, []uint16{0x2661, 0x2662, 0x2663}, txt.Units())
	require.Equal(t, encoding.Wide, txt.Coder())

	txt, err = FromHiByte([]byte("abc"), 0, 1, 2)
	require.NoError(t, err)
	require.Equal(t, "bc", txt.String())
	require.Equal(t, encoding.Narrow, txt.Coder())

	_, err = FromHiByte([]byte("abc"), 0, 2, 2)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestCharAtAndCodePoints(t *testing.T) {
	txt := FromUnits([]uint16{'a', 0xD83D, 0xDE00, 0xD800, 'z', 0xDC00})

	u, err := txt.CharAt(1)
	require.NoError(t, err)
	require.Equal(t, uint16(0xD83D), u)

	_, err = txt.CharAt(6)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
	_, err = txt.CharAt(-1)
	require.ErrorIs(t, err, errs.ErrOutOfRange)

	cp, err := txt.CodePointAt(1)
	require.NoError(t, err)
	require.Equal(t, rune(0x1F600), cp)

	cp, err = txt.CodePointAt(2)
	require.NoError(t, err)
	require.Equal(t, rune(0xDE00), cp, "low half on its own")

	cp, err = txt.CodePointAt(3)
	require.NoError(t, err)
	require.Equal(t, rune(0xD800), cp, "high surrogate without a low surrogate")

	cp, err = txt.CodePointBefore(3)
	require.NoError(t, err)
	require.Equal(t, rune(0x1F600), cp)

	_, err = txt.CodePointBefore(0)
	require.ErrorIs(t, err, errs.ErrOutOfRange)

	n, err := txt.CodePointCount(0, txt.Len())
	require.NoError(t, err)
	require.Equal(t, 5, n)

	n, err = txt.CodePointCount(0, 2)
	require.NoError(t, err)
	require.Equal(t, 2, n, "pair split by the range end counts its high half")

	_, err = txt.CodePointCount(2, 1)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestCodePointAt_HighSurrogateAtEnd(t *testing.T) {
	txt := FromUnits([]uint16{'a', 0xD83D})

	cp, err := txt.CodePointAt(1)
	require.NoError(t, err)
	require.Equal(t, rune(0xD83D), cp)
}

func TestString_LoneSurrogate(t *testing.T) {
	txt := FromUnits([]uint16{'a', 0xD800, 'b'})
	require.Equal(t, "a�b", txt.String())
}

func TestCursor(t *testing.T) {
	txt := FromString("a😀é")
	cur := txt.CodePoints()

	var got []rune
	var pos []int
	for cur.Remaining() {
		pos = append(pos, cur.Pos())
		cp, ok := cur.Next()
		require.True(t, ok)
		got = append(got, cp)
	}
	require.Equal(t, []rune{'a', 0x1F600, 0xE9}, got)
	require.Equal(t, []int{0, 1, 3}, pos)

	_, ok := cur.Next()
	require.False(t, ok)

	cur.Reset()
	cp, ok := cur.Next()
	require.True(t, ok)
	require.Equal(t, 'a', cp)
}

func TestAll(t *testing.T) {
	txt := FromString("h😀i")

	var idx []int
	var cps []rune
	for i, cp := range txt.All() {
		idx = append(idx, i)
		cps = append(cps, cp)
	}
	require.Equal(t, []int{0, 1, 3}, idx)
	require.Equal(t, []rune{'h', 0x1F600, 'i'}, cps)

	for i := range txt.All() {
		require.Equal(t, 0, i)
		break
	}
}

func TestClone(t *testing.T) {
	txt := FromString("clone€")
	c := txt.Clone()

	require.NotSame(t, txt, c)
	require.True(t, txt.Equals(c))
	require.Equal(t, txt.Hash(), c.Hash())
}

func TestZeroValueText(t *testing.T) {
	var txt Text

	assert.True(t, txt.IsEmpty())
	assert.Equal(t, 0, txt.Len())
	assert.Equal(t, "", txt.String())
	assert.Equal(t, int32(0), txt.Hash())
	assert.Same(t, DefaultConfig(), txt.Config())
	assert.True(t, txt.Equals(Empty()))
}

func TestWideOnlyMode(t *testing.T) {
	cfg := wideOnly(t)

	txt := cfg.FromString("plain")
	require.Equal(t, encoding.Wide, txt.Coder())
	require.Equal(t, "plain", txt.String())

	require.Equal(t, encoding.Wide, cfg.FromLatin1([]byte("abc")).Coder())
	require.Equal(t, encoding.Wide, cfg.FromUnits([]uint16{'a'}).Coder())
	require.Equal(t, encoding.Wide, cfg.Empty().Coder())
	require.Equal(t, encoding.Wide, cfg.FormatInt(42).Coder())

	sub := mustSub(t, cfg.FromString("a€b"), 2, 3)
	require.Equal(t, encoding.Wide, sub.Coder())

	_, ok := txt.Latin1()
	require.False(t, ok)

	// The same content under different modes compares equal but is not Equals.
	other := FromString("plain")
	require.Equal(t, 0, txt.Compare(other))
	require.False(t, txt.Equals(other))
	require.Equal(t, txt.Hash(), other.Hash())
}

func TestFormat(t *testing.T) {
	require.Equal(t, "-42", FormatInt(-42).String())
	require.Equal(t, "18446744073709551615", FormatUint(^uint64(0)).String())
	require.Equal(t, "1.5", FormatFloat(1.5, 64).String())
	require.Equal(t, "0.1", FormatFloat(float64(float32(0.1)), 32).String())
	require.Equal(t, "true", FormatBool(true).String())
	require.Equal(t, encoding.Narrow, FormatInt(7).Coder())
}
