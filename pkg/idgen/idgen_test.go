package idgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterAllocatorIsMonotonic(t *testing.T) {
	a := NewCounterAllocator(0)
	assert.Equal(t, uint64(1), a.Next())
	assert.Equal(t, uint64(2), a.Next())
	assert.Equal(t, uint64(3), a.Next())
}

func TestCounterAllocatorConcurrentUnique(t *testing.T) {
	a := NewCounterAllocator(100)
	const workers, perWorker = 8, 200

	var mu sync.Mutex
	seen := make(map[uint64]bool)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := a.Next()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
	assert.True(t, seen[101])
	assert.True(t, seen[100+workers*perWorker])
}

func TestPublicIDRoundTrip(t *testing.T) {
	for _, seed := range []string{"", "0123456789abcdef"} {
		require.NoError(t, InitSqidsEncoderWithSeed(seed))

		for _, id := range []uint64{1, 2, 42, 1 << 20} {
			publicID, err := GeneratePublicID(id, EntityTypePost)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(publicID), 4)

			gotID, gotType, err := DecodePublicID(publicID)
			require.NoError(t, err)
			assert.Equal(t, id, gotID)
			assert.Equal(t, EntityTypePost, gotType)
		}
	}
}

func TestDecodePublicIDRejectsGarbage(t *testing.T) {
	require.NoError(t, InitSqidsEncoder())

	_, _, err := DecodePublicID("!!!")
	assert.Error(t, err)
}

func TestGenerateRandomSeed(t *testing.T) {
	a, err := GenerateRandomSeed()
	require.NoError(t, err)
	b, err := GenerateRandomSeed()
	require.NoError(t, err)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
