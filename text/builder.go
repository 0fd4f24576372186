package text

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/errs"
)

// DefaultBuilderCap is the capacity, in units, of a builder created without
// an explicit capacity. Seeded builders reserve the same slack past the seed.
const DefaultBuilderCap = 16

// narrowState tracks whether a wide builder may hold content that fits the
// narrow encoding.
type narrowState uint8

const (
	// narrowExact: the coder is the minimal one for the content.
	narrowExact narrowState = iota
	// narrowMaybe: a removal or overwrite may have dropped the last wide unit.
	narrowMaybe
	// narrowUnknown: content was resized without being inspected.
	narrowUnknown
)

// Builder is a growable, mutable sequence of 16-bit units.
//
// A Builder starts in the narrow encoding and promotes itself to wide the
// first time a unit above 0xFF is written. Removals never narrow it again;
// ToText re-narrows the snapshot when the content allows. A Builder is not
// safe for concurrent use.
type Builder struct {
	cfg   *Config
	value []byte
	count int
	coder encoding.Coder
	state narrowState
}

func newBuilder(cfg *Config, coder encoding.Coder, capacity int) *Builder {
	return &Builder{
		cfg:   cfg,
		value: make([]byte, coder.Bytes(capacity)),
		coder: coder,
	}
}

// NewBuilder returns an empty builder with the default capacity.
func (c *Config) NewBuilder() *Builder {
	return newBuilder(c, c.mode.Initial(), DefaultBuilderCap)
}

// NewBuilderCap returns an empty builder that holds capacity units before
// growing.
func (c *Config) NewBuilderCap(capacity int) (*Builder, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", errs.ErrInvalidArgument, capacity)
	}

	coder := c.mode.Initial()
	if err := encoding.CheckLength(capacity, coder); err != nil {
		return nil, err
	}

	return newBuilder(c, coder, capacity), nil
}

// NewBuilderFrom returns a builder seeded with the units of t.
func (c *Config) NewBuilderFrom(t *Text) (*Builder, error) {
	if t == nil {
		t = c.empty
	}

	coder := c.mode.Coder(t.coder)
	capacity, err := encoding.AddLength(t.Len(), DefaultBuilderCap, coder)
	if err != nil {
		return nil, err
	}

	b := newBuilder(c, coder, capacity)
	encoding.Copy(t.value, t.coder, 0, b.value, coder, 0, t.Len())
	b.count = t.Len()
	if coder == encoding.Wide && t.coder == encoding.Wide && !t.config().mode.Compact() {
		b.state = narrowUnknown
	}

	return b, nil
}

// NewBuilderString returns a builder seeded with the UTF-16 units of s.
func (c *Config) NewBuilderString(s string) (*Builder, error) {
	return c.NewBuilderFrom(c.FromString(s))
}

// NewBuilder returns an empty builder of the default configuration.
func NewBuilder() *Builder { return defaultConfig.NewBuilder() }

// NewBuilderCap returns an empty builder of the default configuration with
// the given capacity.
func NewBuilderCap(capacity int) (*Builder, error) { return defaultConfig.NewBuilderCap(capacity) }

// NewBuilderFrom returns a builder of the default configuration seeded with t.
func NewBuilderFrom(t *Text) (*Builder, error) { return defaultConfig.NewBuilderFrom(t) }

// NewBuilderString returns a builder of the default configuration seeded with s.
func NewBuilderString(s string) (*Builder, error) { return defaultConfig.NewBuilderString(s) }

func (b *Builder) view() view {
	return view{b: b.value, coder: b.coder, n: b.count}
}

func (b *Builder) config() *Config {
	if b.cfg == nil {
		b.cfg = defaultConfig
	}

	return b.cfg
}

func (b *Builder) logger() *zap.Logger {
	return b.config().logger
}

// Len returns the number of units.
func (b *Builder) Len() int {
	return b.count
}

// Cap returns the number of units the builder holds before growing.
func (b *Builder) Cap() int {
	return b.coder.Units(len(b.value))
}

// Coder returns the current storage encoding.
func (b *Builder) Coder() encoding.Coder {
	return b.coder
}

// EnsureCapacity grows the builder so it holds at least minCap units.
// Non-positive values are ignored.
func (b *Builder) EnsureCapacity(minCap int) error {
	if minCap <= 0 {
		return nil
	}

	return b.ensureCapacity(minCap)
}

func (b *Builder) ensureCapacity(minCap int) error {
	oldCap := b.Cap()
	if minCap <= oldCap {
		return nil
	}

	newCap, err := encoding.NewCapacity(oldCap, minCap, b.coder)
	if err != nil {
		return err
	}
	b.realloc(newCap)

	return nil
}

// realloc moves the content into a fresh buffer of capacity units.
func (b *Builder) realloc(capacity int) {
	buf := make([]byte, b.coder.Bytes(capacity))
	copy(buf, b.value[:b.coder.Bytes(b.count)])

	b.logRealloc(capacity)
	b.value = buf
}

// logRealloc must run before b.value is replaced.
func (b *Builder) logRealloc(newCap int) {
	if ce := b.logger().Check(zap.DebugLevel, "text builder buffer reallocated"); ce != nil {
		ce.Write(
			zap.Stringer("coder", b.coder),
			zap.Int("old_cap", b.Cap()),
			zap.Int("new_cap", newCap),
			zap.Int("len", b.count),
		)
	}
}

// TrimToSize shrinks the capacity to the current length.
func (b *Builder) TrimToSize() {
	if b.Cap() > b.count {
		b.realloc(b.count)
	}
}

// SetLength truncates the builder or pads it with NUL units up to n.
func (b *Builder) SetLength(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: length %d", errs.ErrOutOfRange, n)
	}
	if err := b.ensureCapacity(n); err != nil {
		return err
	}

	if n > b.count {
		clear(b.value[b.coder.Bytes(b.count):b.coder.Bytes(n)])
	} else if n < b.count && b.coder == encoding.Wide {
		b.state = narrowUnknown
	}
	b.count = n

	return nil
}

// splice replaces units [start, end) with s. Every length and capacity check
// runs before the builder is touched, so a failure leaves it unchanged.
// Callers validate start and end.
func (b *Builder) splice(start, end int, s span) error {
	if b.coder == encoding.Narrow && s.coder == encoding.Wide {
		return b.spliceWide(start, end, s)
	}

	return b.spliceFit(start, end, s)
}

// spliceFit splices a span whose units all fit the current coder.
func (b *Builder) spliceFit(start, end int, s span) error {
	remain := b.count - (end - start)
	n, err := encoding.AddLength(remain, s.n, b.coder)
	if err != nil {
		return err
	}

	if n > b.Cap() {
		newCap, err := encoding.NewCapacity(b.Cap(), n, b.coder)
		if err != nil {
			return err
		}
		buf := make([]byte, b.coder.Bytes(newCap))
		b.logRealloc(newCap)
		encoding.Copy(b.value, b.coder, 0, buf, b.coder, 0, start)
		encoding.Copy(b.value, b.coder, end, buf, b.coder, start+s.n, b.count-end)
		b.value = buf
	} else if end != start+s.n {
		encoding.Copy(b.value, b.coder, end, b.value, b.coder, start+s.n, b.count-end)
	}

	if b.coder == encoding.Narrow {
		s.compressTo(b.value, start)
	} else {
		s.widenTo(b.value, start, 0)
		if end > start && b.state == narrowExact {
			b.state = narrowMaybe
		}
	}
	b.count = n

	return nil
}

// spliceWide handles a possibly-wide span written into a narrow builder. An
// append with room in the buffer is written narrow optimistically and
// promoted at the first wide unit, keeping the prefix already written.
func (b *Builder) spliceWide(start, end int, s span) error {
	if start == b.count && b.count+s.n <= b.Cap() {
		k := s.compressTo(b.value, start)
		if k == s.n {
			b.count += s.n
			return nil
		}

		return b.promote(start, end, s, k)
	}

	if s.firstWide() < 0 {
		return b.spliceFit(start, end, s)
	}

	return b.promote(start, end, s, 0)
}

// promote converts the builder to wide while splicing s over [start, end).
// The first written units of s are already stored narrow after start.
func (b *Builder) promote(start, end int, s span, written int) error {
	remain := b.count - (end - start)
	n, err := encoding.AddLength(remain, s.n, encoding.Wide)
	if err != nil {
		return err
	}

	capacity := b.Cap()
	if n > capacity {
		if capacity, err = encoding.NewCapacity(capacity, n, encoding.Wide); err != nil {
			return err
		}
	} else if err = encoding.CheckLength(capacity, encoding.Wide); err != nil {
		return err
	}

	buf := make([]byte, encoding.Wide.Bytes(capacity))
	encoding.Inflate(b.value, 0, buf, 0, start+written)
	encoding.Inflate(b.value, end, buf, start+s.n, b.count-end)
	s.widenTo(buf, start, written)

	if ce := b.logger().Check(zap.DebugLevel, "text builder promoted to wide"); ce != nil {
		ce.Write(
			zap.Int("len", n),
			zap.Int("cap", capacity),
			zap.Int("at", start+written),
		)
	}
	b.value = buf
	b.coder = encoding.Wide
	b.count = n
	b.state = narrowExact

	return nil
}

// firstWide returns the index of the first unit above 0xFF, or -1.
func (s span) firstWide() int {
	switch {
	case s.units != nil:
		for i, u := range s.units[:s.n] {
			if u > encoding.MaxNarrowUnit {
				return i
			}
		}
	case s.coder == encoding.Wide:
		for i := range s.n {
			if encoding.GetWide(s.b, s.off+i) > encoding.MaxNarrowUnit {
				return i
			}
		}
	}

	return -1
}

// ToText returns an immutable snapshot of the content in its minimal
// encoding. This is where a wide builder that lost its wide units is narrowed.
func (b *Builder) ToText() *Text {
	return b.snapshot(false)
}

// String returns the UTF-8 form of the content.
func (b *Builder) String() string {
	return b.ToText().String()
}

// detach hands the buffer to a new text without copying and resets the builder.
func (b *Builder) detach() *Text {
	t := b.snapshot(true)
	b.Reset()

	return t
}

func (b *Builder) snapshot(own bool) *Text {
	cfg := b.config()
	if b.count == 0 {
		return cfg.empty
	}

	if b.coder == encoding.Wide && cfg.mode.Compact() && b.state != narrowExact {
		if nb, ok := encoding.TryNarrow(b.value, 0, b.count); ok {
			return newText(cfg, nb, encoding.Narrow)
		}
		b.state = narrowExact
	}

	buf := b.value[:b.coder.Bytes(b.count)]
	if own {
		buf = slices.Clip(buf)
	} else {
		buf = slices.Clone(buf)
	}

	return newText(cfg, buf, b.coder)
}

// Reset empties the builder, returning it to the narrow encoding with a fresh
// default-capacity buffer.
func (b *Builder) Reset() {
	coder := b.config().mode.Initial()
	b.value = make([]byte, coder.Bytes(DefaultBuilderCap))
	b.coder = coder
	b.count = 0
	b.state = narrowExact
}

// Move transfers the content to a new builder and leaves b empty, narrow and
// without capacity.
func (b *Builder) Move() *Builder {
	moved := &Builder{
		cfg:   b.config(),
		value: b.value,
		count: b.count,
		coder: b.coder,
		state: b.state,
	}

	b.value = []byte{}
	b.coder = b.cfg.mode.Initial()
	b.count = 0
	b.state = narrowExact

	return moved
}

// Clone returns a deep copy of b.
func (b *Builder) Clone() *Builder {
	return &Builder{
		cfg:   b.config(),
		value: slices.Clone(b.value),
		count: b.count,
		coder: b.coder,
		state: b.state,
	}
}
