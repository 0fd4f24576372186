package text

import (
	"sync"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ctext/ucd"
)

func polyReference(units []uint16) int32 {
	var h int32
	for _, u := range units {
		h = 31*h + int32(u)
	}

	return h
}

func TestEquals(t *testing.T) {
	a := FromString("same€")
	b := FromUnits(a.Units())

	require.True(t, a.Equals(b))
	require.True(t, a.Equals(a))
	require.False(t, a.Equals(nil))
	require.False(t, a.Equals(FromString("same")))
	require.False(t, FromString("abc").Equals(FromString("abd")))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Text
		sign int
	}{
		{"equal narrow", FromString("abc"), FromString("abc"), 0},
		{"equal wide", FromString("a€"), FromString("a€"), 0},
		{"narrow less", FromString("abc"), FromString("abd"), -1},
		{"mixed encodings", FromString("ab"), FromString("a€"), -1},
		{"wide vs narrow greater", FromString("€"), FromString("z"), 1},
		{"prefix shorter", FromString("ab"), FromString("abc"), -1},
		{"prefix longer", FromString("abc"), FromString("ab"), 1},
		{"empty", Empty(), FromString("a"), -1},
		{"trailing nul", FromUnits([]uint16{'a', 0}), FromString("a"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Compare(tt.b)
			switch tt.sign {
			case 0:
				require.Zero(t, got)
			case -1:
				require.Negative(t, got)
			default:
				require.Positive(t, got)
			}
			require.Equal(t, got == 0, tt.a.Equals(tt.b))
		})
	}
}

func TestCompare_SurplusMagnitude(t *testing.T) {
	require.Equal(t, int('c'), FromString("abc").Compare(FromString("ab")))
	require.Equal(t, -int('c'), FromString("ab").Compare(FromString("abc")))
	require.Equal(t, 0x20AC, FromString("a€").Compare(FromString("a")))
	require.Equal(t, int('b')-0x20AC, FromString("ab").Compare(FromString("a€")))
}

func TestEqualFold(t *testing.T) {
	require.True(t, FromString("Hello").EqualFold(FromString("hELLO")))
	require.True(t, FromString("ÉTÉ").EqualFold(FromString("été")))
	require.True(t, FromString("ΣΑΣ").EqualFold(FromString("σας")))
	require.False(t, FromString("abc").EqualFold(FromString("abd")))
	require.False(t, FromString("abc").EqualFold(FromString("ab")))
	require.False(t, FromString("abc").EqualFold(nil))
}

func TestHash(t *testing.T) {
	inputs := []string{"", "a", "hello world", "café", "a€b", "x😀y"}
	for _, s := range inputs {
		txt := FromString(s)
		h := txt.Hash()
		require.Equal(t, polyReference(txt.Units()), h, "input %q", s)
		require.Equal(t, h, txt.Hash())
	}

	// Same content, different storage.
	require.Equal(t, FromString("plain").Hash(), wideOnly(t).FromString("plain").Hash())
}

func TestHash_Concurrent(t *testing.T) {
	txt := FromString("concurrent hash €")
	want := polyReference(txt.Units())

	var wg sync.WaitGroup
	results := make([]int32, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = txt.Hash()
		}(i)
	}
	wg.Wait()

	for _, h := range results {
		require.Equal(t, want, h)
	}
}

func TestFingerprint(t *testing.T) {
	a := FromString("finger€")
	require.Equal(t, a.Fingerprint(), FromUnits(a.Units()).Fingerprint())
	require.NotEqual(t, a.Fingerprint(), FromString("finger").Fingerprint())

	// Storage participates: narrow and wide copies of the same units differ.
	require.NotEqual(t, FromString("ab").Fingerprint(), wideOnly(t).FromString("ab").Fingerprint())
}

func TestToUpper_SpecialCaseClassifier(t *testing.T) {
	cfg, err := NewConfig(WithClassifier(ucd.NewSpecialCase(unicode.TurkishCase)))
	require.NoError(t, err)

	upper, err := cfg.FromString("i").ToUpper()
	require.NoError(t, err)
	require.Equal(t, "İ", upper.String())
}
