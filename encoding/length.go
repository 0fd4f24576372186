package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/ctext/errs"
)

const (
	// MaxBytes is the largest buffer, in bytes, any text or builder may own.
	MaxBytes = math.MaxInt32
	// SoftMaxBytes leaves headroom below MaxBytes for allocator headers.
	// Capacity growth is clamped here unless the caller needs more.
	SoftMaxBytes = MaxBytes - 8

	// growthSlackBytes is added on top of doubling when a builder grows, so
	// a narrow buffer gains more units than a wide one.
	growthSlackBytes = 4
)

// MaxLength returns the largest unit count a buffer of coder c may hold.
func MaxLength(c Coder) int {
	return MaxBytes >> c.Shift()
}

// CheckLength returns ErrLengthOverflow when n units do not fit coder c.
func CheckLength(n int, c Coder) error {
	if n < 0 || n > MaxLength(c) {
		return fmt.Errorf("%w: %d units (%s)", errs.ErrLengthOverflow, n, c)
	}

	return nil
}

// AddLength returns a+b, or ErrLengthOverflow when the sum overflows or does
// not fit coder c. Both operands must be non-negative.
func AddLength(a, b int, c Coder) (int, error) {
	limit := MaxLength(c)
	if a < 0 || b < 0 || a > limit || b > limit-a {
		return 0, fmt.Errorf("%w: %d + %d units (%s)", errs.ErrLengthOverflow, a, b, c)
	}

	return a + b, nil
}

// MulLength returns a*n, or ErrLengthOverflow when the product overflows or
// does not fit coder c. Both operands must be non-negative.
func MulLength(a, n int, c Coder) (int, error) {
	if a < 0 || n < 0 {
		return 0, fmt.Errorf("%w: %d * %d units (%s)", errs.ErrLengthOverflow, a, n, c)
	}
	if a == 0 || n == 0 {
		return 0, nil
	}
	if a > MaxLength(c)/n {
		return 0, fmt.Errorf("%w: %d * %d units (%s)", errs.ErrLengthOverflow, a, n, c)
	}

	return a * n, nil
}

// NewCapacity returns the capacity, in units, that a buffer of coder c
// currently holding oldCap units should grow to in order to hold minCap units.
//
// The preferred growth doubles the byte size plus a small slack. The result is
// clamped to SoftMaxBytes, and only exceeds it when minCap itself requires more.
func NewCapacity(oldCap, minCap int, c Coder) (int, error) {
	if err := CheckLength(minCap, c); err != nil {
		return 0, err
	}

	oldBytes := c.Bytes(oldCap)
	minGrowth := c.Bytes(minCap) - oldBytes
	prefGrowth := oldBytes + growthSlackBytes

	n, err := newLength(oldBytes, minGrowth, prefGrowth)
	if err != nil {
		return 0, err
	}

	return c.Units(n), nil
}

func newLength(oldLen, minGrowth, prefGrowth int) (int, error) {
	prefLen := oldLen + max(minGrowth, prefGrowth)
	if prefLen > 0 && prefLen <= SoftMaxBytes {
		return prefLen, nil
	}

	minLen := oldLen + minGrowth
	if minLen < 0 || minLen > MaxBytes {
		return 0, fmt.Errorf("%w: %d + %d bytes", errs.ErrLengthOverflow, oldLen, minGrowth)
	}
	if minLen <= SoftMaxBytes {
		return SoftMaxBytes, nil
	}

	return minLen, nil
}
