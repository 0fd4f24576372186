package text

import (
	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/internal/hash"
)

// Hash returns the 31-multiplier polynomial hash of the units,
// h = h*31 + unit, with 32-bit wraparound. The value is computed once and
// cached; concurrent first calls compute the same value.
func (t *Text) Hash() int32 {
	if t.hashDone.Load() {
		return t.hash.Load()
	}

	h := polyHash(t.value, t.coder)
	t.hash.Store(h)
	t.hashDone.Store(true)

	return h
}

func polyHash(b []byte, coder encoding.Coder) int32 {
	var h int32
	if coder == encoding.Narrow {
		for _, c := range b {
			h = 31*h + int32(c)
		}

		return h
	}

	for i := range len(b) >> 1 {
		h = 31*h + int32(encoding.GetWide(b, i))
	}

	return h
}

// Fingerprint returns a 64-bit xxhash of the encoding tag and stored units.
// Unlike Hash it is not cached and is intended for interning and checksums.
func (t *Text) Fingerprint() uint64 {
	return hash.Fingerprint(uint8(t.coder), t.value)
}
