package text

import "strconv"

// FormatInt returns the decimal form of v.
func (c *Config) FormatInt(v int64) *Text {
	return c.fromNarrow(strconv.AppendInt(nil, v, 10))
}

// FormatUint returns the decimal form of v.
func (c *Config) FormatUint(v uint64) *Text {
	return c.fromNarrow(strconv.AppendUint(nil, v, 10))
}

// FormatFloat returns the shortest decimal form of v that round-trips at the
// given bit size (32 or 64).
func (c *Config) FormatFloat(v float64, bitSize int) *Text {
	return c.fromNarrow(strconv.AppendFloat(nil, v, 'g', -1, bitSize))
}

// FormatBool returns "true" or "false".
func (c *Config) FormatBool(v bool) *Text {
	return c.fromNarrow(strconv.AppendBool(nil, v))
}

// FormatInt returns the decimal form of v under the default configuration.
func FormatInt(v int64) *Text { return defaultConfig.FormatInt(v) }

// FormatUint returns the decimal form of v under the default configuration.
func FormatUint(v uint64) *Text { return defaultConfig.FormatUint(v) }

// FormatFloat returns the shortest decimal form of v under the default configuration.
func FormatFloat(v float64, bitSize int) *Text { return defaultConfig.FormatFloat(v, bitSize) }

// FormatBool returns "true" or "false" under the default configuration.
func FormatBool(v bool) *Text { return defaultConfig.FormatBool(v) }
