package text

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ctext/encoding"
)

func TestReplace(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		target      string
		replacement string
		want        string
		coder       encoding.Coder
	}{
		{"grow", "aXbXc", "X", "YY", "aYYbYYc", encoding.Narrow},
		{"shrink", "aXXbXXc", "XX", "-", "a-b-c", encoding.Narrow},
		{"delete", "a--b--", "--", "", "ab", encoding.Narrow},
		{"no match", "abc", "z", "y", "abc", encoding.Narrow},
		{"non-overlapping", "aaaa", "aa", "b", "bb", encoding.Narrow},
		{"narrow source wide replacement", "a-b", "-", "→", "a→b", encoding.Wide},
		{"wide source narrowed", "1€2€", "€", "E", "1E2E", encoding.Narrow},
		{"wide source stays wide", "€☺€", "€", "E", "E☺E", encoding.Wide},
		{"empty target", "ab", "", "-", "-a-b-", encoding.Narrow},
		{"empty input empty target", "", "", "x", "x", encoding.Narrow},
		{"everything removed", "€€", "€", "", "", encoding.Narrow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromString(tt.input).Replace(FromString(tt.target), FromString(tt.replacement))
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
			require.Equal(t, tt.coder, got.Coder())
			require.True(t, got.Equals(FromString(tt.want)))
		})
	}
}

func TestReplace_NoMatchReturnsReceiver(t *testing.T) {
	txt := FromString("unchanged")
	got, err := txt.Replace(FromString("zz"), FromString("y"))
	require.NoError(t, err)
	require.Same(t, txt, got)
}

func TestReplace_ManyMatches(t *testing.T) {
	// More matches than the initial index capacity.
	b := NewBuilder()
	for range 100 {
		require.NoError(t, b.AppendString("ab"))
	}

	got, err := b.ToText().Replace(FromString("b"), FromString("€"))
	require.NoError(t, err)
	require.Equal(t, 200, got.Len())
	require.Equal(t, 100, countUnit(got, 0x20AC))
}

func TestReplacedLength(t *testing.T) {
	n, err := replacedLength(5, 1, 2, 2, encoding.Narrow)
	require.NoError(t, err)
	require.Equal(t, 7, n)

	n, err = replacedLength(7, 2, 1, 2, encoding.Narrow)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	_, err = replacedLength(encoding.MaxLength(encoding.Wide), 1, 2, 1, encoding.Wide)
	require.Error(t, err)

	_, err = replacedLength(10, 1, encoding.MaxBytes, 10, encoding.Narrow)
	require.Error(t, err)
}

func TestAppendMatch_Growth(t *testing.T) {
	idx := make([]int, 0, 16)
	for i := range 16 {
		idx = appendMatch(idx, i)
	}
	require.Equal(t, 16, cap(idx))

	idx = appendMatch(idx, 16)
	require.Equal(t, 17, len(idx))
	require.Equal(t, 25, cap(idx))
}

func countUnit(t *Text, u uint16) int {
	n := 0
	for _, x := range t.Units() {
		if x == u {
			n++
		}
	}

	return n
}
