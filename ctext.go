// Package ctext provides compact, immutable 16-bit unit texts and a mutable
// builder that stores content in the narrowest encoding that can hold it.
//
// A text whose units all fit in one byte is stored narrow (one byte per unit);
// anything else is stored wide (two bytes per unit). Editing a narrow builder
// with a wide unit promotes it in place, and texts produced from wide content
// are narrowed again when possible. Lengths are bounded by math.MaxInt32 bytes
// and every length computation is overflow-checked.
//
// # Basic Usage
//
//	t := ctext.New("café")
//	upper, _ := t.ToUpper()
//
//	b := ctext.NewBuilder()
//	_ = b.AppendString("total: ")
//	_ = b.AppendFloat(9.5, 64)
//	_ = b.AppendCodePoint('€')
//	s := b.ToText()
//
// Serializing a text:
//
//	data, _ := ctext.Marshal(s, blob.WithCompression(format.CompressionS2))
//	back, _ := ctext.Unmarshal(data)
//
// # Package Structure
//
// This package wraps the most common entry points. Use package text for the
// full operation set and text.Config for wide-only mode, custom Unicode
// classifiers or logging. Package blob handles serialization, and package
// intern canonicalizes repeated texts.
package ctext

import (
	"github.com/arloliu/ctext/blob"
	"github.com/arloliu/ctext/intern"
	"github.com/arloliu/ctext/text"
)

// New creates a text from a UTF-8 string using the default configuration.
// Invalid UTF-8 bytes become U+FFFD.
func New(s string) *text.Text {
	return text.FromString(s)
}

// NewWithConfig creates a text from a UTF-8 string using a configuration built
// from opts.
//
// Example:
//
//	t, err := ctext.NewWithConfig("abc", text.WithMode(encoding.ModeWideOnly))
func NewWithConfig(s string, opts ...text.Option) (*text.Text, error) {
	cfg, err := text.NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return cfg.FromString(s), nil
}

// NewBuilder creates an empty builder with the default capacity.
func NewBuilder() *text.Builder {
	return text.NewBuilder()
}

// Marshal encodes t into a blob.
//
// Available options:
//   - blob.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - blob.WithLittleEndian() / blob.WithBigEndian()
//   - blob.WithLogger(logger)
func Marshal(t *text.Text, opts ...blob.Option) ([]byte, error) {
	return blob.Marshal(t, opts...)
}

// Unmarshal decodes a blob produced by Marshal. Use blob.WithConfig to decode
// into a specific text configuration.
func Unmarshal(data []byte, opts ...blob.Option) (*text.Text, error) {
	return blob.Unmarshal(data, opts...)
}

// NewInternPool creates a pool that canonicalizes equal texts.
func NewInternPool(opts ...intern.Option) (*intern.Pool, error) {
	return intern.NewPool(opts...)
}

// Fingerprint returns the 64-bit content fingerprint of s as a text would
// report it from Fingerprint.
func Fingerprint(s string) uint64 {
	return text.FromString(s).Fingerprint()
}
