package impl

import (
	"sync"
	"testing"

	"connkeeper/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestZoneStateStore_UnseenPairIsOutside(t *testing.T) {
	store := NewZoneStateStore()

	key := entity.ZoneKey{MemberID: uuid.New(), PlaceID: uuid.New()}

	assert.False(t, store.Get(key))
}

func TestZoneStateStore_SetAndGet(t *testing.T) {
	store := NewZoneStateStore()
	key := entity.ZoneKey{MemberID: uuid.New(), PlaceID: uuid.New()}

	store.Set(key, true)
	assert.True(t, store.Get(key))

	store.Set(key, false)
	assert.False(t, store.Get(key))
}

func TestZoneStateStore_KeysAreIndependent(t *testing.T) {
	store := NewZoneStateStore()
	memberID := uuid.New()
	keyA := entity.ZoneKey{MemberID: memberID, PlaceID: uuid.New()}
	keyB := entity.ZoneKey{MemberID: memberID, PlaceID: uuid.New()}

	store.Set(keyA, true)

	assert.True(t, store.Get(keyA))
	assert.False(t, store.Get(keyB))
}

func TestZoneStateStore_SwapReturnsPrevious(t *testing.T) {
	store := NewZoneStateStore()
	key := entity.ZoneKey{MemberID: uuid.New(), PlaceID: uuid.New()}

	assert.False(t, store.Swap(key, true))
	assert.True(t, store.Swap(key, true))
	assert.True(t, store.Swap(key, false))
	assert.False(t, store.Get(key))
}

func TestZoneStateStore_ConcurrentSwaps(t *testing.T) {
	store := NewZoneStateStore()
	key := entity.ZoneKey{MemberID: uuid.New(), PlaceID: uuid.New()}

	const goroutines = 32

	// Every goroutine swaps the key to true. Exactly one of them must observe
	// the initial false, no matter how the swaps interleave.
	var wg sync.WaitGroup
	var mu sync.Mutex
	sawFalse := 0

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !store.Swap(key, true) {
				mu.Lock()
				sawFalse++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, sawFalse)
	assert.True(t, store.Get(key))
}
