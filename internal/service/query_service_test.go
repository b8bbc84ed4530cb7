package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/query"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/repo"
)

func TestQueryService_Uncached(t *testing.T) {
	store := NewTaskService(repo.NewKVRepo(repo.NewMemoryKV()), nil, stepClock(), seqIDs("id-"))
	ctx := context.Background()
	today := dom.DateOf(t0)
	soon := today.AddDays(2)
	later := today.AddDays(7)

	a, err := store.Add(ctx, dom.Draft{Title: "soon", Priority: dom.PriorityLow, DueDate: &soon})
	require.NoError(t, err)
	_, err = store.Add(ctx, dom.Draft{Title: "later", Priority: dom.PriorityHigh, DueDate: &later})
	require.NoError(t, err)
	done, err := store.Add(ctx, dom.Draft{Title: "done", Priority: dom.PriorityHigh})
	require.NoError(t, err)
	_, err = store.ToggleCompleted(ctx, done.ID)
	require.NoError(t, err)

	q := NewQueryService(store, nil, func() time.Time { return t0 }, time.UTC)

	visible, err := q.Visible(ctx, query.Filter{Priority: query.PriorityAll})
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, "later", visible[0].Title)

	up, err := q.Upcoming(ctx)
	require.NoError(t, err)
	require.Len(t, up, 1)
	assert.Equal(t, a.ID, up[0].ID)

	stats, err := q.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, dom.Stats{Total: 3, Completed: 1, Pending: 2, HighPriorityPending: 1}, stats)

	assert.Equal(t, dom.DueUpcoming, q.DueStatus(a))
}

func TestQueryService_SeesEachNewSnapshot(t *testing.T) {
	store := NewTaskService(repo.NewKVRepo(repo.NewMemoryKV()), nil, stepClock(), seqIDs("id-"))
	ctx := context.Background()
	q := NewQueryService(store, nil, nil, nil)

	s, err := q.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Total)

	_, err = store.Add(ctx, dom.Draft{Title: "x", Priority: dom.PriorityLow})
	require.NoError(t, err)
	s, err = q.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Total)
}
