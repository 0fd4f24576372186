package blob

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/ctext/errs"
	"github.com/arloliu/ctext/format"
	"github.com/arloliu/ctext/internal/options"
	"github.com/arloliu/ctext/text"
)

// endianness represents the byte order configuration option.
type endianness uint8

const (
	littleEndianOpt endianness = iota
	bigEndianOpt
)

// Options holds the settings shared by Marshal and Unmarshal.
type Options struct {
	compression format.CompressionType
	endianness  endianness
	cfg         *text.Config
	logger      *zap.Logger
}

// Option is a functional option for Marshal and Unmarshal.
type Option = options.Option[*Options]

func newOptions(opts ...Option) (*Options, error) {
	o := &Options{
		compression: format.CompressionZstd,
		endianness:  littleEndianOpt,
		cfg:         text.DefaultConfig(),
	}

	if err := options.Apply(o, opts...); err != nil {
		return nil, err
	}

	if o.logger == nil {
		o.logger = o.cfg.Logger()
	}

	return o, nil
}

// WithCompression sets the payload codec used by Marshal. Default is Zstd.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(o *Options) error {
		if !compression.Valid() {
			return fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compression)
		}
		o.compression = compression

		return nil
	})
}

// WithLittleEndian stores wide units little-endian. It is the default option.
func WithLittleEndian() Option {
	return options.NoError(func(o *Options) {
		o.endianness = littleEndianOpt
	})
}

// WithBigEndian stores wide units big-endian.
func WithBigEndian() Option {
	return options.NoError(func(o *Options) {
		o.endianness = bigEndianOpt
	})
}

// WithConfig sets the configuration of texts produced by Unmarshal.
// Default is text.DefaultConfig().
func WithConfig(cfg *text.Config) Option {
	return options.New(func(o *Options) error {
		if cfg == nil {
			return fmt.Errorf("%w: nil text config", errs.ErrInvalidArgument)
		}
		o.cfg = cfg

		return nil
	})
}

// WithLogger sets the logger for codec debug events. Defaults to the logger
// of the text configuration.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(o *Options) {
		o.logger = logger
	})
}
