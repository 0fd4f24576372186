package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ctext/errs"
	"github.com/arloliu/ctext/format"
)

func TestNewFlag(t *testing.T) {
	flag := NewFlag()

	require.False(t, flag.IsWide())
	require.True(t, flag.IsLittleEndian())
	require.False(t, flag.IsBigEndian())
	require.Equal(t, uint16(MagicTextV1Opt), flag.GetMagicNumber())
	require.Equal(t, format.CompressionZstd, flag.GetCompression())
	require.NoError(t, flag.Validate())
}

func TestFlag_Bits(t *testing.T) {
	flag := NewFlag()

	flag.SetWide(true)
	flag.WithBigEndian()
	require.True(t, flag.IsWide())
	require.True(t, flag.IsBigEndian())
	require.Equal(t, uint16(MagicTextV1Opt), flag.GetMagicNumber())

	flag.SetWide(false)
	flag.WithLittleEndian()
	require.False(t, flag.IsWide())
	require.True(t, flag.IsLittleEndian())
	require.Equal(t, uint16(MagicTextV1Opt), flag.Options)
}

func TestFlag_Validate(t *testing.T) {
	tests := []struct {
		name    string
		flag    Flag
		wantErr error
	}{
		{"bad magic", Flag{Options: 0xEB10, Compression: uint8(format.CompressionNone)}, errs.ErrInvalidMagic},
		{"reserved bit", Flag{Options: MagicTextV1Opt | 0x0004, Compression: uint8(format.CompressionNone)}, errs.ErrInvalidHeaderFlags},
		{"unknown compression", Flag{Options: MagicTextV1Opt, Compression: 0x9}, errs.ErrUnsupportedCompression},
		{"zero compression", Flag{Options: MagicTextV1Opt}, errs.ErrUnsupportedCompression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.flag.Validate(), tt.wantErr)
		})
	}
}
