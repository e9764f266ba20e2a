package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{PoolSize: 0})
	assert.Error(t, err)

	_, err = New(&Config{PoolSize: -3})
	assert.Error(t, err)
}

func TestNext_DealsFullPermutation(t *testing.T) {
	for _, poolSize := range []int{1, 2, 7, 32, 100} {
		deck, err := New(&Config{PoolSize: poolSize})
		require.NoError(t, err)

		seen := make(map[int]bool, poolSize)
		for i := 0; i < poolSize; i++ {
			idx, err := deck.Next()
			require.NoError(t, err)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, poolSize)
			require.False(t, seen[idx], "index %d dealt twice", idx)
			seen[idx] = true
		}

		assert.Len(t, seen, poolSize)
		assert.Equal(t, 0, deck.Remaining())
	}
}

func TestNext_Exhausted(t *testing.T) {
	deck, err := New(&Config{PoolSize: 2})
	require.NoError(t, err)

	_, err = deck.Next()
	require.NoError(t, err)
	_, err = deck.Next()
	require.NoError(t, err)

	_, err = deck.Next()
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestNext_SeededDecksAreDeterministic(t *testing.T) {
	first, err := New(&Config{PoolSize: 10, Seed: 42})
	require.NoError(t, err)

	second, err := New(&Config{PoolSize: 10, Seed: 42})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		a, err := first.Next()
		require.NoError(t, err)
		b, err := second.Next()
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestRemaining(t *testing.T) {
	deck, err := New(&Config{PoolSize: 5})
	require.NoError(t, err)

	assert.Equal(t, 5, deck.Remaining())

	_, err = deck.Next()
	require.NoError(t, err)
	assert.Equal(t, 4, deck.Remaining())
}
