package encoding

// Coder identifies the physical storage encoding of a unit sequence.
type Coder uint8

const (
	// Narrow stores one byte per unit. Valid only when every unit is <= MaxNarrowUnit.
	Narrow Coder = 0
	// Wide stores two bytes per unit, little-endian in memory.
	Wide Coder = 1
)

// MaxNarrowUnit is the largest unit value representable in the narrow encoding.
const MaxNarrowUnit = 0xFF

// Shift returns the left shift that converts a unit index into a byte offset.
func (c Coder) Shift() int {
	return int(c)
}

// Bytes returns the number of bytes needed to store n units.
func (c Coder) Bytes(n int) int {
	return n << c.Shift()
}

// Units returns the number of units stored in n bytes.
func (c Coder) Units(n int) int {
	return n >> c.Shift()
}

// Union returns the wider of the two coders.
func (c Coder) Union(other Coder) Coder {
	if c == Wide || other == Wide {
		return Wide
	}

	return Narrow
}

// Fits reports whether unit u can be stored in coder c.
func (c Coder) Fits(u uint16) bool {
	return c == Wide || u <= MaxNarrowUnit
}

func (c Coder) String() string {
	switch c {
	case Narrow:
		return "Narrow"
	case Wide:
		return "Wide"
	default:
		return "Unknown"
	}
}

// Mode selects whether freshly produced content may use the narrow encoding.
type Mode uint8

const (
	// ModeCompact stores content in the minimal encoding that can represent it.
	ModeCompact Mode = iota
	// ModeWideOnly disables compact storage; every buffer is wide.
	ModeWideOnly
)

// Compact reports whether the narrow encoding may be chosen.
func (m Mode) Compact() bool {
	return m == ModeCompact
}

// Coder returns the coder to use for content whose widest unit needs coder c.
func (m Mode) Coder(c Coder) Coder {
	if m.Compact() {
		return c
	}

	return Wide
}

// Initial returns the coder an empty buffer starts with.
func (m Mode) Initial() Coder {
	return m.Coder(Narrow)
}

func (m Mode) String() string {
	switch m {
	case ModeCompact:
		return "Compact"
	case ModeWideOnly:
		return "WideOnly"
	default:
		return "Unknown"
	}
}
