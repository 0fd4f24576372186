package text

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/errs"
	"github.com/arloliu/ctext/ucd"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, encoding.ModeCompact, cfg.Mode())
	require.NotNil(t, cfg.Classifier())
	require.NotNil(t, cfg.Logger())
	require.True(t, cfg.Empty().IsEmpty())
	require.Equal(t, encoding.Narrow, cfg.Empty().Coder())
	require.Same(t, cfg, cfg.Empty().Config())
}

func TestNewConfig_Options(t *testing.T) {
	logger := zap.NewExample()
	cls := ucd.NewSpecialCase(unicode.TurkishCase)

	cfg, err := NewConfig(
		WithCompact(false),
		WithClassifier(cls),
		WithLogger(logger),
	)
	require.NoError(t, err)
	require.Equal(t, encoding.ModeWideOnly, cfg.Mode())
	require.Equal(t, cls, cfg.Classifier())
	require.Same(t, logger, cfg.Logger())
	require.Equal(t, encoding.Wide, cfg.Empty().Coder())

	cfg, err = NewConfig(WithCompact(false), WithCompact(true), WithLogger(nil))
	require.NoError(t, err)
	require.Equal(t, encoding.ModeCompact, cfg.Mode())
	require.NotNil(t, cfg.Logger())
}

func TestNewConfig_Invalid(t *testing.T) {
	_, err := NewConfig(WithMode(encoding.Mode(9)))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = NewConfig(WithClassifier(nil))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestDefaultConfig(t *testing.T) {
	require.Same(t, DefaultConfig(), FromString("x").Config())
	require.Same(t, DefaultConfig().Empty(), Empty())
	require.Same(t, Empty(), FromString(""))
}
