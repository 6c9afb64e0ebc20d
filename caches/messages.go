package caches

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/samber/mo"

	"dicebot/rules"
)

// messageCacheCapacity bounds the process-global instruction cache.
const messageCacheCapacity = 50

// MessageFetcher loads the original text of a message from the transport.
// None means the message exists but is not a text message.
type MessageFetcher func(ctx context.Context, channelID, messageID string) (mo.Option[string], error)

// InstructionScanner extracts an embedded skill instruction from message text.
type InstructionScanner func(text string) mo.Option[rules.Instruction]

// messageEntry is tri-state on the instruction side: not yet scanned,
// scanned with no instruction found, or scanned with an instruction.
type messageEntry struct {
	text        mo.Option[string]
	scanned     bool
	instruction mo.Option[rules.Instruction]
}

type fetchCall struct {
	done chan struct{}
	text mo.Option[string]
	err  error
}

// InstructionCache memoizes message text and the instruction embedded in
// it, keyed by "{channelID}-{messageID}", with LRU eviction. Cache misses
// fetch from the transport with at most one concurrent fetch per key, so
// near-simultaneous reactions to the same message share one network call.
type InstructionCache struct {
	fetcher MessageFetcher
	scanner InstructionScanner

	mu       sync.Mutex
	entries  *lru.Cache[string, *messageEntry]
	inflight map[string]*fetchCall
}

func NewInstructionCache(fetcher MessageFetcher, scanner InstructionScanner) (*InstructionCache, error) {
	entries, err := lru.New[string, *messageEntry](messageCacheCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create instruction cache store: %w", err)
	}
	return &InstructionCache{
		fetcher:  fetcher,
		scanner:  scanner,
		entries:  entries,
		inflight: make(map[string]*fetchCall),
	}, nil
}

// Instruction returns the skill instruction embedded in the given message,
// fetching and scanning its text at most once. None means the message is
// non-text or carries no instruction.
func (c *InstructionCache) Instruction(
	ctx context.Context,
	channelID, messageID string,
) (mo.Option[rules.Instruction], error) {
	key := channelID + "-" + messageID

	c.mu.Lock()
	if entry, ok := c.entries.Get(key); ok {
		defer c.mu.Unlock()
		return c.scanLocked(entry), nil
	}

	call, joined := c.inflight[key]
	if joined {
		c.mu.Unlock()
		<-call.done
	} else {
		call = &fetchCall{done: make(chan struct{})}
		c.inflight[key] = call
		c.mu.Unlock()

		call.text, call.err = c.fetcher(ctx, channelID, messageID)

		c.mu.Lock()
		delete(c.inflight, key)
		if call.err == nil {
			c.entries.Add(key, &messageEntry{text: call.text})
		}
		c.mu.Unlock()
		close(call.done)
	}

	if call.err != nil {
		return mo.None[rules.Instruction](), fmt.Errorf("failed to fetch message %s: %w", key, call.err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries.Get(key)
	if !ok {
		// evicted between the fetch and this use: repopulate from the call
		entry = &messageEntry{text: call.text}
		c.entries.Add(key, entry)
	}
	return c.scanLocked(entry), nil
}

// scanLocked runs the scanner once per entry and memoizes the result.
// Non-text messages scan to None without invoking the scanner.
func (c *InstructionCache) scanLocked(entry *messageEntry) mo.Option[rules.Instruction] {
	if !entry.scanned {
		entry.scanned = true
		if text, ok := entry.text.Get(); ok {
			entry.instruction = c.scanner(text)
		}
	}
	return entry.instruction
}

// Len reports the number of cached message entries.
func (c *InstructionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}
