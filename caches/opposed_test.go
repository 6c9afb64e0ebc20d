package caches

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dicebot/models"
)

func TestOpposedRollCacheSetGet(t *testing.T) {
	cache, err := NewOpposedRollCache()
	require.NoError(t, err)

	record := &models.RollRecord{ID: "roll_1", UserID: "alice", Total: 42}
	cache.Set("msg1", record)

	got := cache.Get("msg1")
	require.True(t, got.IsPresent())
	assert.Same(t, record, got.MustGet())

	assert.False(t, cache.Get("msg2").IsPresent())
}

func TestOpposedRollCacheOverwrite(t *testing.T) {
	cache, err := NewOpposedRollCache()
	require.NoError(t, err)

	cache.Set("msg1", &models.RollRecord{ID: "roll_1"})
	cache.Set("msg1", &models.RollRecord{ID: "roll_2"})

	got := cache.Get("msg1")
	require.True(t, got.IsPresent())
	assert.Equal(t, "roll_2", got.MustGet().ID)
	assert.Equal(t, 1, cache.Len())
}

func TestOpposedRollCacheEviction(t *testing.T) {
	cache, err := NewOpposedRollCache()
	require.NoError(t, err)

	for i := 0; i < opposedCacheCapacity+10; i++ {
		cache.Set(fmt.Sprintf("msg%d", i), &models.RollRecord{ID: fmt.Sprintf("roll_%d", i)})
	}

	assert.Equal(t, opposedCacheCapacity, cache.Len())
	// the oldest entries were evicted; the lookup degrades to a miss
	assert.False(t, cache.Get("msg0").IsPresent())
	assert.True(t, cache.Get(fmt.Sprintf("msg%d", opposedCacheCapacity+9)).IsPresent())
}
