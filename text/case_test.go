package text

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ctext/encoding"
)

func TestToLowerToUpper(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lower string
		upper string
	}{
		{"ascii", "Hello World", "hello world", "HELLO WORLD"},
		{"latin1", "Café", "café", "CAFÉ"},
		{"greek", "\u03a3\u03bf\u03c6\u03b9\u03b1", "\u03c3\u03bf\u03c6\u03b9\u03b1", "\u03a3\u039f\u03a6\u0399\u0391"},
		{"supplementary", "\U00010400\U00010428", "\U00010428\U00010428", "\U00010400\U00010400"},
		{"mixed", "a€B", "a€b", "A€B"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lower, err := FromString(tt.input).ToLower()
			require.NoError(t, err)
			require.Equal(t, tt.lower, lower.String())
			require.True(t, lower.Equals(FromString(tt.lower)))

			upper, err := FromString(tt.input).ToUpper()
			require.NoError(t, err)
			require.Equal(t, tt.upper, upper.String())
			require.True(t, upper.Equals(FromString(tt.upper)))
		})
	}
}

func TestToUpper_PromotesNarrow(t *testing.T) {
	// ÿ and µ are narrow but their upper-case forms are not.
	txt := FromUnits([]uint16{'a', 0xFF, 0xB5})
	require.Equal(t, encoding.Narrow, txt.Coder())

	upper, err := txt.ToUpper()
	require.NoError(t, err)
	require.Equal(t, []uint16{'A', 0x178, 0x39C}, upper.Units())
	require.Equal(t, encoding.Wide, upper.Coder())
}

func TestToLower_NarrowsWide(t *testing.T) {
	// Kelvin sign lowers to ASCII k.
	txt := FromUnits([]uint16{0x212A, 'e', 'l', 'v', 'i', 'n'})
	require.Equal(t, encoding.Wide, txt.Coder())

	lower, err := txt.ToLower()
	require.NoError(t, err)
	require.Equal(t, "kelvin", lower.String())
	require.Equal(t, encoding.Narrow, lower.Coder())
}

func TestCase_UnchangedReturnsReceiver(t *testing.T) {
	txt := FromString("already lower €")
	lower, err := txt.ToLower()
	require.NoError(t, err)
	require.Same(t, txt, lower)
}

func TestCase_LoneSurrogateKept(t *testing.T) {
	txt := FromUnits([]uint16{'a', 0xD800, 'b'})

	upper, err := txt.ToUpper()
	require.NoError(t, err)
	require.Equal(t, []uint16{'A', 0xD800, 'B'}, upper.Units())
}
