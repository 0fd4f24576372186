package encoding

import "encoding/binary"

// GetWide returns the unit at index i of a wide buffer.
func GetWide(b []byte, i int) uint16 {
	return binary.LittleEndian.Uint16(b[i<<1:])
}

// PutWide stores unit u at index i of a wide buffer.
func PutWide(b []byte, i int, u uint16) {
	binary.LittleEndian.PutUint16(b[i<<1:], u)
}

// GetUnit returns the unit at index i of a buffer stored with coder c.
func GetUnit(b []byte, c Coder, i int) uint16 {
	if c == Narrow {
		return uint16(b[i])
	}

	return GetWide(b, i)
}

// PutUnits stores units into the wide buffer dst starting at unit index dstOff.
func PutUnits(dst []byte, dstOff int, units []uint16) {
	for i, u := range units {
		PutWide(dst, dstOff+i, u)
	}
}

// CanNarrow reports whether every unit in wide[off:off+count] fits the narrow encoding.
func CanNarrow(wide []byte, off, count int) bool {
	for i := off; i < off+count; i++ {
		if GetWide(wide, i) > MaxNarrowUnit {
			return false
		}
	}

	return true
}

// Compress copies n wide units of src, starting at unit srcOff, into the narrow
// buffer dst at dstOff. It stops at the first unit above MaxNarrowUnit and
// returns the number of units copied.
func Compress(src []byte, srcOff int, dst []byte, dstOff int, n int) int {
	for i := 0; i < n; i++ {
		u := GetWide(src, srcOff+i)
		if u > MaxNarrowUnit {
			return i
		}
		dst[dstOff+i] = byte(u)
	}

	return n
}

// CompressUnits is Compress for a unit slice source.
func CompressUnits(src []uint16, dst []byte, dstOff int) int {
	for i, u := range src {
		if u > MaxNarrowUnit {
			return i
		}
		dst[dstOff+i] = byte(u)
	}

	return len(src)
}

// Inflate widens n narrow units of src starting at srcOff into the wide buffer
// dst at unit index dstOff.
func Inflate(src []byte, srcOff int, dst []byte, dstOff int, n int) {
	for i := 0; i < n; i++ {
		PutWide(dst, dstOff+i, uint16(src[srcOff+i]))
	}
}

// Copy copies n units between two buffers of the given coders. A wide source
// copied into a narrow destination must have been checked with CanNarrow.
func Copy(src []byte, srcCoder Coder, srcOff int, dst []byte, dstCoder Coder, dstOff int, n int) {
	switch {
	case srcCoder == dstCoder:
		s := srcCoder.Shift()
		copy(dst[dstOff<<s:(dstOff+n)<<s], src[srcOff<<s:(srcOff+n)<<s])
	case srcCoder == Narrow:
		Inflate(src, srcOff, dst, dstOff, n)
	default:
		Compress(src, srcOff, dst, dstOff, n)
	}
}

// TryNarrow returns a narrow copy of wide[off:off+count] when every unit fits,
// and false otherwise. Partial work is discarded on failure.
func TryNarrow(wide []byte, off, count int) ([]byte, bool) {
	buf := make([]byte, count)
	if Compress(wide, off, buf, 0, count) != count {
		return nil, false
	}

	return buf, true
}

// Widen returns a wide copy of narrow[off:off+count].
func Widen(narrow []byte, off, count int) []byte {
	buf := make([]byte, count<<1)
	Inflate(narrow, off, buf, 0, count)

	return buf
}

// TryBuildNarrow stores units in a fresh narrow buffer. On success it returns
// the buffer and -1. Otherwise it returns the buffer holding the narrow prefix
// and the index of the first unit that does not fit; callers continue from
// there with PromotePrefix.
func TryBuildNarrow(units []uint16) ([]byte, int) {
	buf := make([]byte, len(units))
	if n := CompressUnits(units, buf, 0); n != len(units) {
		return buf, n
	}

	return buf, -1
}

// PromotePrefix allocates a wide buffer for total units and widens the first
// n units of narrow into it.
func PromotePrefix(narrow []byte, n, total int) []byte {
	buf := make([]byte, total<<1)
	Inflate(narrow, 0, buf, 0, n)

	return buf
}

// FromUnits encodes units with the minimal coder allowed by mode.
func FromUnits(units []uint16, mode Mode) ([]byte, Coder) {
	if mode.Compact() {
		buf, failAt := TryBuildNarrow(units)
		if failAt < 0 {
			return buf, Narrow
		}
		wide := PromotePrefix(buf, failAt, len(units))
		PutUnits(wide, failAt, units[failAt:])

		return wide, Wide
	}

	wide := make([]byte, len(units)<<1)
	PutUnits(wide, 0, units)

	return wide, Wide
}

// ToUnits decodes count units starting at off from a buffer with coder c.
func ToUnits(b []byte, c Coder, off, count int) []uint16 {
	units := make([]uint16, count)
	if c == Narrow {
		for i := range units {
			units[i] = uint16(b[off+i])
		}

		return units
	}

	for i := range units {
		units[i] = GetWide(b, off+i)
	}

	return units
}
