package service

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Rishit-Ranjan/Task-Pallete/internal/cache"
	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/query"
)

// QueryService serves the derived views of the store's current snapshot.
// With a cache, results are shared per snapshot version.
type QueryService struct {
	store *TaskService
	cache *cache.TaskCache
	sf    singleflight.Group
	now   func() time.Time
	loc   *time.Location
}

// NewQueryService creates a QueryService. If c is nil, caching is disabled.
func NewQueryService(store *TaskService, c *cache.TaskCache, clock func() time.Time, loc *time.Location) *QueryService {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &QueryService{store: store, cache: c, now: clock, loc: loc}
}

// Today is the current time in the configured location.
func (q *QueryService) Today() time.Time {
	return q.now().In(q.loc)
}

func (q *QueryService) Visible(ctx context.Context, f query.Filter) ([]dom.Task, error) {
	tasks, version := q.store.Snapshot()
	if q.cache == nil {
		return query.VisibleTasks(tasks, f), nil
	}
	filterKey := f.Key()
	key := "visible:" + strconv.FormatUint(version, 10) + ":" + filterKey
	v, err, _ := q.sf.Do(key, func() (interface{}, error) {
		if list, err := q.cache.GetVisible(ctx, version, filterKey); err == nil && list != nil {
			return list, nil
		}
		list := query.VisibleTasks(tasks, f)
		_ = q.cache.SetVisible(ctx, version, filterKey, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Task), nil
}

func (q *QueryService) Upcoming(ctx context.Context) ([]dom.Task, error) {
	tasks, version := q.store.Snapshot()
	today := q.Today()
	if q.cache == nil {
		return query.Upcoming(tasks, today), nil
	}
	day := dom.DateOf(today)
	key := "upcoming:" + strconv.FormatUint(version, 10) + ":" + day.String()
	v, err, _ := q.sf.Do(key, func() (interface{}, error) {
		if list, err := q.cache.GetUpcoming(ctx, version, day); err == nil && list != nil {
			return list, nil
		}
		list := query.Upcoming(tasks, today)
		_ = q.cache.SetUpcoming(ctx, version, day, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Task), nil
}

func (q *QueryService) Stats(ctx context.Context) (dom.Stats, error) {
	tasks, version := q.store.Snapshot()
	if q.cache == nil {
		return query.ComputeStats(tasks), nil
	}
	key := "stats:" + strconv.FormatUint(version, 10)
	v, err, _ := q.sf.Do(key, func() (interface{}, error) {
		if s, ok, err := q.cache.GetStats(ctx, version); err == nil && ok {
			return s, nil
		}
		s := query.ComputeStats(tasks)
		_ = q.cache.SetStats(ctx, version, s)
		return s, nil
	})
	if err != nil {
		return dom.Stats{}, err
	}
	return v.(dom.Stats), nil
}

// DueStatus classifies a task's due date against today.
func (q *QueryService) DueStatus(t dom.Task) dom.DueStatus {
	return query.ClassifyDueDate(t.DueDate, q.Today(), t.Completed)
}
