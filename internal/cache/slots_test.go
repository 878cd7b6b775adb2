package cache

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestSlotCacheNilSafe(t *testing.T) {
	ctx := context.Background()

	var c *SlotCache
	if _, ok := c.Get(ctx, "doc-1"); ok {
		t.Fatal("nil cache must read as a miss")
	}
	c.Set(ctx, "doc-1", nil)
	c.Invalidate(ctx, "doc-1")

	// A cache built without a client behaves the same way.
	c = NewSlotCache(nil, zerolog.Nop())
	if _, ok := c.Get(ctx, "doc-1"); ok {
		t.Fatal("clientless cache must read as a miss")
	}
	c.Set(ctx, "doc-1", nil)
	c.Invalidate(ctx, "doc-1")
}
