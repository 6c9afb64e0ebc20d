package caches

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/samber/mo"

	"dicebot/models"
)

// opposedCacheCapacity bounds the process-global opposed-roll cache.
const opposedCacheCapacity = 50

// OpposedRollCache retains eligible roll records keyed by the message ID
// their result was posted under, until LRU eviction. A missing entry just
// degrades the referencing command to a fresh, non-opposed roll.
type OpposedRollCache struct {
	records *lru.Cache[string, *models.RollRecord]
}

func NewOpposedRollCache() (*OpposedRollCache, error) {
	records, err := lru.New[string, *models.RollRecord](opposedCacheCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create opposed-roll cache store: %w", err)
	}
	return &OpposedRollCache{records: records}, nil
}

func (c *OpposedRollCache) Get(messageID string) mo.Option[*models.RollRecord] {
	if record, ok := c.records.Get(messageID); ok {
		return mo.Some(record)
	}
	return mo.None[*models.RollRecord]()
}

func (c *OpposedRollCache) Set(messageID string, record *models.RollRecord) {
	c.records.Add(messageID, record)
}

func (c *OpposedRollCache) Len() int {
	return c.records.Len()
}
