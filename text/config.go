package text

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/errs"
	"github.com/arloliu/ctext/internal/options"
	"github.com/arloliu/ctext/ucd"
)

// Config carries the settings shared by every text and builder created from it:
// the encoding mode, the Unicode classifier and the logger.
//
// A Config is immutable after NewConfig returns and safe for concurrent use.
type Config struct {
	mode       encoding.Mode
	classifier ucd.Classifier
	logger     *zap.Logger
	empty      *Text
}

// Option is a functional option for NewConfig.
type Option = options.Option[*Config]

// WithMode sets the encoding mode. Default is encoding.ModeCompact.
func WithMode(mode encoding.Mode) Option {
	return options.New(func(c *Config) error {
		switch mode {
		case encoding.ModeCompact, encoding.ModeWideOnly:
			c.mode = mode
			return nil
		default:
			return fmt.Errorf("%w: encoding mode %d", errs.ErrInvalidArgument, mode)
		}
	})
}

// WithCompact enables or disables the narrow encoding.
// WithCompact(false) is equivalent to WithMode(encoding.ModeWideOnly).
func WithCompact(enabled bool) Option {
	return options.NoError(func(c *Config) {
		if enabled {
			c.mode = encoding.ModeCompact
		} else {
			c.mode = encoding.ModeWideOnly
		}
	})
}

// WithClassifier sets the Unicode classifier used by case mapping and
// whitespace stripping. Default is ucd.Default().
func WithClassifier(classifier ucd.Classifier) Option {
	return options.New(func(c *Config) error {
		if classifier == nil {
			return fmt.Errorf("%w: nil classifier", errs.ErrInvalidArgument)
		}
		c.classifier = classifier

		return nil
	})
}

// WithLogger sets the logger for debug events such as builder reallocation.
// A nil logger disables logging. Default is zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}

// NewConfig creates a Config from the given options.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		mode:       encoding.ModeCompact,
		classifier: ucd.Default(),
		logger:     zap.NewNop(),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	cfg.empty = &Text{value: []byte{}, coder: cfg.mode.Initial(), cfg: cfg}

	return cfg, nil
}

var defaultConfig = mustConfig()

func mustConfig() *Config {
	cfg, err := NewConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to create default text config: %v", err))
	}

	return cfg
}

// DefaultConfig returns the compact-mode configuration used by the
// package-level constructors.
func DefaultConfig() *Config {
	return defaultConfig
}

// Mode returns the encoding mode.
func (c *Config) Mode() encoding.Mode {
	return c.mode
}

// Classifier returns the Unicode classifier.
func (c *Config) Classifier() ucd.Classifier {
	return c.classifier
}

// Logger returns the logger.
func (c *Config) Logger() *zap.Logger {
	return c.logger
}

// Empty returns the empty text of this configuration.
func (c *Config) Empty() *Text {
	return c.empty
}

// Empty returns the empty text of the default configuration.
func Empty() *Text {
	return defaultConfig.empty
}
