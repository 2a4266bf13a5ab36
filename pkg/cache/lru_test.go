package cache_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramcheck/pkg/cache"
)

func TestLRU_Basic(t *testing.T) {
	t.Parallel()

	t.Run("put and get", func(t *testing.T) {
		c := cache.New[string, int](3)
		c.Put("a", 1)
		c.Put("b", 2)

		v, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("miss returns zero value", func(t *testing.T) {
		c := cache.New[string, int](3)
		v, ok := c.Get("missing")
		assert.False(t, ok)
		assert.Zero(t, v)
	})

	t.Run("put overwrites", func(t *testing.T) {
		c := cache.New[string, int](3)
		c.Put("a", 1)
		c.Put("a", 2)

		v, _ := c.Get("a")
		assert.Equal(t, 2, v)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("non-positive capacity panics", func(t *testing.T) {
		assert.Panics(t, func() { cache.New[string, int](0) })
	})
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()

	c := cache.New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	_, _ = c.Get("a") // a becomes most recent
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_GetOrLoad(t *testing.T) {
	t.Parallel()

	c := cache.New[string, int](4)
	calls := 0
	load := func(k string) int {
		calls++
		n, _ := strconv.Atoi(k)
		return n * 2
	}

	assert.Equal(t, 42, c.GetOrLoad("21", load))
	assert.Equal(t, 42, c.GetOrLoad("21", load))
	assert.Equal(t, 1, calls, "second lookup should be served from the memo")

	c.Purge()
	assert.Zero(t, c.Len())
	assert.Equal(t, 42, c.GetOrLoad("21", load))
	assert.Equal(t, 2, calls)
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	c := cache.New[int, int](16)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				c.GetOrLoad((n+j)%32, func(k int) int { return k * k })
			}
		}(i)
	}
	wg.Wait()

	require.LessOrEqual(t, c.Len(), 16)
	for k := range 32 {
		if v, ok := c.Get(k); ok {
			assert.Equal(t, k*k, v)
		}
	}
}
