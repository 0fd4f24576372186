package ctext

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ctext/blob"
	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/errs"
	"github.com/arloliu/ctext/format"
	"github.com/arloliu/ctext/text"
)

func TestNew(t *testing.T) {
	txt := New("café")
	require.Equal(t, 4, txt.Len())
	require.Equal(t, encoding.Narrow, txt.Coder())

	upper, err := txt.ToUpper()
	require.NoError(t, err)
	require.Equal(t, "CAFÉ", upper.String())
}

func TestNewWithConfig(t *testing.T) {
	txt, err := NewWithConfig("abc", text.WithMode(encoding.ModeWideOnly))
	require.NoError(t, err)
	require.Equal(t, encoding.Wide, txt.Coder())

	_, err = NewWithConfig("abc", text.WithMode(encoding.Mode(9)))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestNewBuilder(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AppendString("total: "))
	require.NoError(t, b.AppendInt(42))
	require.NoError(t, b.AppendCodePoint('€'))

	require.Equal(t, "total: 42€", b.ToText().String())
	require.Equal(t, encoding.Wide, b.Coder())
}

func TestMarshalUnmarshal(t *testing.T) {
	in := New("round trip ✓")

	data, err := Marshal(in, blob.WithCompression(format.CompressionLZ4))
	require.NoError(t, err)

	out, err := Unmarshal(data)
	require.NoError(t, err)
	require.True(t, in.Equals(out))
}

func TestNewInternPool(t *testing.T) {
	pool, err := NewInternPool()
	require.NoError(t, err)

	a := pool.Intern(New("shared"))
	require.Same(t, a, pool.InternString("shared"))
}

func TestFingerprint(t *testing.T) {
	require.Equal(t, New("abc").Fingerprint(), Fingerprint("abc"))
	require.NotEqual(t, Fingerprint("abc"), Fingerprint("abd"))
}
