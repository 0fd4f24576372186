package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ctext/errs"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		cType    CompressionType
		expected string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionType(0), "Unknown"},
		{CompressionType(0x9), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.cType.String())
			require.Equal(t, tt.expected != "Unknown", tt.cType.Valid())
		})
	}
}

func TestParseCompression(t *testing.T) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		got, err := ParseCompression(c.String())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}

	got, err := ParseCompression("")
	require.NoError(t, err)
	require.Equal(t, CompressionNone, got)

	_, err = ParseCompression("brotli")
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}
