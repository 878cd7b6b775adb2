package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/medibookhq/medibook-api/internal/domain/schedule"
)

const slotTTL = 30 * time.Second

// SlotCache keeps recently generated slot pages per doctor so the booking
// wizard does not regenerate on every poll. Entries are invalidated on every
// appointment write for the doctor, and carry a short TTL anyway since "now"
// moves. A nil client or any redis error degrades to a miss.
type SlotCache struct {
	rdb *redis.Client
	log zerolog.Logger
}

func NewSlotCache(rdb *redis.Client, log zerolog.Logger) *SlotCache {
	return &SlotCache{rdb: rdb, log: log}
}

func slotKey(doctorID string) string {
	return "slots:" + doctorID
}

func (c *SlotCache) Get(ctx context.Context, doctorID string) ([]schedule.Slot, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotKey(doctorID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("slot cache read failed")
		}
		return nil, false
	}

	var slots []schedule.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, doctorID string, slots []schedule.Slot) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, slotKey(doctorID), raw, slotTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("slot cache write failed")
	}
}

func (c *SlotCache) Invalidate(ctx context.Context, doctorID string) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, slotKey(doctorID)).Err(); err != nil {
		c.log.Warn().Err(err).Msg("slot cache invalidation failed")
	}
}
