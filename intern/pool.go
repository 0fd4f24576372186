package intern

import (
	"fmt"
	"sync"

	"github.com/arloliu/ctext/errs"
	"github.com/arloliu/ctext/internal/options"
	"github.com/arloliu/ctext/text"
)

// Pool holds canonical texts keyed by fingerprint. It is safe for concurrent use.
type Pool struct {
	mu          sync.RWMutex
	buckets     map[uint64][]*text.Text
	count       int
	collisions  int
	cfg         *text.Config
	fingerprint func(*text.Text) uint64
}

// Option is a functional option for NewPool.
type Option = options.Option[*Pool]

// WithConfig sets the configuration used by InternString. Default is
// text.DefaultConfig().
func WithConfig(cfg *text.Config) Option {
	return options.New(func(p *Pool) error {
		if cfg == nil {
			return fmt.Errorf("%w: nil text config", errs.ErrInvalidArgument)
		}
		p.cfg = cfg

		return nil
	})
}

// WithFingerprint replaces the bucket key function. Default is
// (*text.Text).Fingerprint.
func WithFingerprint(fn func(*text.Text) uint64) Option {
	return options.New(func(p *Pool) error {
		if fn == nil {
			return fmt.Errorf("%w: nil fingerprint function", errs.ErrInvalidArgument)
		}
		p.fingerprint = fn

		return nil
	})
}

// NewPool creates an empty pool.
func NewPool(opts ...Option) (*Pool, error) {
	p := &Pool{
		buckets:     make(map[uint64][]*text.Text),
		cfg:         text.DefaultConfig(),
		fingerprint: (*text.Text).Fingerprint,
	}

	if err := options.Apply(p, opts...); err != nil {
		return nil, err
	}

	return p, nil
}

// Intern returns the canonical text equal to t, adding t when none exists.
// Equality follows Equals, so equal content stored with different coders is
// kept apart. A nil t returns nil.
func (p *Pool) Intern(t *text.Text) *text.Text {
	if t == nil {
		return nil
	}

	key := p.fingerprint(t)

	p.mu.RLock()
	canonical := find(p.buckets[key], t)
	p.mu.RUnlock()
	if canonical != nil {
		return canonical
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if canonical := find(bucket, t); canonical != nil {
		return canonical
	}
	if len(bucket) > 0 {
		p.collisions++
	}
	p.buckets[key] = append(bucket, t)
	p.count++

	return t
}

// InternString interns the text form of s built with the pool configuration.
func (p *Pool) InternString(s string) *text.Text {
	return p.Intern(p.cfg.FromString(s))
}

// Lookup returns the canonical text equal to t without adding it.
func (p *Pool) Lookup(t *text.Text) (*text.Text, bool) {
	if t == nil {
		return nil, false
	}

	key := p.fingerprint(t)

	p.mu.RLock()
	defer p.mu.RUnlock()

	canonical := find(p.buckets[key], t)

	return canonical, canonical != nil
}

// Len returns the number of canonical texts.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.count
}

// Collisions returns how many canonical texts were added to a bucket that
// already held different content.
func (p *Pool) Collisions() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.collisions
}

// HasCollision reports whether any fingerprint collision has occurred.
func (p *Pool) HasCollision() bool {
	return p.Collisions() > 0
}

// Reset removes all texts and clears the collision count.
func (p *Pool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	clear(p.buckets)
	p.count = 0
	p.collisions = 0
}

func find(bucket []*text.Text, t *text.Text) *text.Text {
	for _, c := range bucket {
		if c.Equals(t) {
			return c
		}
	}

	return nil
}
