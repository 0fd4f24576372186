package intern

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/errs"
	"github.com/arloliu/ctext/text"
)

func newTestPool(t *testing.T, opts ...Option) *Pool {
	t.Helper()

	p, err := NewPool(opts...)
	require.NoError(t, err)

	return p
}

func TestNewPool(t *testing.T) {
	p := newTestPool(t)

	require.Equal(t, 0, p.Len())
	require.Equal(t, 0, p.Collisions())
	require.False(t, p.HasCollision())
}

func TestNewPool_InvalidOptions(t *testing.T) {
	_, err := NewPool(WithConfig(nil))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = NewPool(WithFingerprint(nil))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestPool_Intern(t *testing.T) {
	p := newTestPool(t)

	a := text.FromString("status=ok")
	b := text.FromString("status=ok")
	require.NotSame(t, a, b)

	require.Same(t, a, p.Intern(a))
	require.Same(t, a, p.Intern(b))
	require.Same(t, a, p.InternString("status=ok"))
	require.Equal(t, 1, p.Len())

	c := p.InternString("status=fail")
	require.NotSame(t, a, c)
	require.Equal(t, 2, p.Len())
	require.False(t, p.HasCollision())

	require.Nil(t, p.Intern(nil))
}

func TestPool_Lookup(t *testing.T) {
	p := newTestPool(t)
	a := p.InternString("€uro")

	got, ok := p.Lookup(text.FromString("€uro"))
	require.True(t, ok)
	require.Same(t, a, got)

	_, ok = p.Lookup(text.FromString("euro"))
	require.False(t, ok)
	require.Equal(t, 1, p.Len())

	_, ok = p.Lookup(nil)
	require.False(t, ok)
}

func TestPool_Collisions(t *testing.T) {
	p := newTestPool(t, WithFingerprint(func(*text.Text) uint64 { return 42 }))

	a := p.InternString("alpha")
	b := p.InternString("beta")
	require.NotSame(t, a, b)
	require.Equal(t, 2, p.Len())
	require.Equal(t, 1, p.Collisions())
	require.True(t, p.HasCollision())

	require.Same(t, b, p.InternString("beta"))
	require.Equal(t, 1, p.Collisions())

	p.Reset()
	require.Equal(t, 0, p.Len())
	require.False(t, p.HasCollision())
}

func TestPool_CoderDistinguishes(t *testing.T) {
	wideCfg, err := text.NewConfig(text.WithMode(encoding.ModeWideOnly))
	require.NoError(t, err)

	p := newTestPool(t, WithConfig(wideCfg))
	wide := p.InternString("abc")
	require.Equal(t, encoding.Wide, wide.Coder())

	narrow := p.Intern(text.FromString("abc"))
	require.NotSame(t, wide, narrow)
	require.Equal(t, 2, p.Len())
	require.False(t, p.HasCollision())
}

func TestPool_Concurrent(t *testing.T) {
	p := newTestPool(t)

	const workers = 8
	results := make([][]*text.Text, workers)

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				results[w] = append(results[w], p.InternString(fmt.Sprintf("key-%d", i)))
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 100, p.Len())
	for w := 1; w < workers; w++ {
		for i := range 100 {
			require.Same(t, results[0][i], results[w][i])
		}
	}
}
