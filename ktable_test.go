package captree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceKtableGet(t *testing.T) {
	kt := SliceKtable{String("a"), String("b")}

	v, ok := kt.Get(1)
	require.True(t, ok)
	assert.Equal(t, String("b"), v)

	_, ok = kt.Get(5)
	require.False(t, ok)

	_, ok = kt.Get(-1)
	require.False(t, ok)
}

func TestKtableCacheMemoizes(t *testing.T) {
	calls := 0
	kt := countingKtable{SliceKtable{String("x"), String("y")}, &calls}
	cache := newKtableCache(kt)

	v, ok := cache.get(0)
	require.True(t, ok)
	assert.Equal(t, String("x"), v)

	v, ok = cache.get(0)
	require.True(t, ok)
	assert.Equal(t, String("x"), v)
	assert.Equal(t, 1, calls, "second lookup of the same idx must hit the memo slot")

	_, _ = cache.get(1)
	assert.Equal(t, 2, calls)

	cache.reset()
	_, _ = cache.get(0)
	assert.Equal(t, 3, calls, "reset must invalidate the memo slot")
}

type countingKtable struct {
	SliceKtable
	calls *int
}

func (k countingKtable) Get(idx int) (Value, bool) {
	*k.calls++
	return k.SliceKtable.Get(idx)
}
