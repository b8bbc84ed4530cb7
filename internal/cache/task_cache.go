package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "taskpalette:view:"

const (
	kindVisible  = "visible"
	kindUpcoming = "upcoming"
	kindStats    = "stats"
)

// TaskCache caches derived task views in Redis. Keys carry the snapshot
// version they were computed from, so an entry never outlives its snapshot.
type TaskCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTaskCache returns a new TaskCache.
func NewTaskCache(rdb *redis.Client, ttl time.Duration) *TaskCache {
	return &TaskCache{rdb: rdb, ttl: ttl}
}

// GetVisible returns the cached list view or nil if miss.
func (c *TaskCache) GetVisible(ctx context.Context, version uint64, filterKey string) ([]dom.Task, error) {
	var list []dom.Task
	ok, err := c.get(ctx, key(kindVisible, version, filterKey), &list)
	if err != nil || !ok {
		return nil, err
	}
	return nonNil(list), nil
}

// SetVisible stores the list view.
func (c *TaskCache) SetVisible(ctx context.Context, version uint64, filterKey string, list []dom.Task) error {
	return c.set(ctx, key(kindVisible, version, filterKey), nonNil(list))
}

// GetUpcoming returns the cached upcoming view for the given day or nil if miss.
func (c *TaskCache) GetUpcoming(ctx context.Context, version uint64, day dom.Date) ([]dom.Task, error) {
	var list []dom.Task
	ok, err := c.get(ctx, key(kindUpcoming, version, day.String()), &list)
	if err != nil || !ok {
		return nil, err
	}
	return nonNil(list), nil
}

// SetUpcoming stores the upcoming view.
func (c *TaskCache) SetUpcoming(ctx context.Context, version uint64, day dom.Date, list []dom.Task) error {
	return c.set(ctx, key(kindUpcoming, version, day.String()), nonNil(list))
}

// GetStats returns cached stats; ok is false on miss.
func (c *TaskCache) GetStats(ctx context.Context, version uint64) (dom.Stats, bool, error) {
	var s dom.Stats
	ok, err := c.get(ctx, key(kindStats, version, ""), &s)
	return s, ok, err
}

// SetStats stores stats.
func (c *TaskCache) SetStats(ctx context.Context, version uint64, s dom.Stats) error {
	return c.set(ctx, key(kindStats, version, ""), s)
}

// InvalidateAll removes every cached view (cache invalidation on write).
func (c *TaskCache) InvalidateAll(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *TaskCache) get(ctx context.Context, k string, dst any) (bool, error) {
	b, err := c.rdb.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *TaskCache) set(ctx context.Context, k string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, k, b, c.ttl).Err()
}

func key(kind string, version uint64, suffix string) string {
	return keyPrefix + kind + ":v" + strconv.FormatUint(version, 10) + ":" + suffix
}

// nonNil keeps an empty hit distinguishable from a miss.
func nonNil(list []dom.Task) []dom.Task {
	if list == nil {
		return []dom.Task{}
	}
	return list
}
