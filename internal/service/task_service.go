package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Rishit-Ranjan/Task-Pallete/internal/cache"
	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/repo"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/utils"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidPriority = errors.New("priority must be low, medium or high")
)

// snapshot is an immutable view of the collection. Tasks inside are never
// modified after the snapshot is installed.
type snapshot struct {
	version uint64
	tasks   []dom.Task
}

// TaskService owns the task collection. Every mutation builds a new
// snapshot, persists it, and only then installs it.
type TaskService struct {
	repo  repo.TaskRepo
	cache *cache.TaskCache
	now   func() time.Time
	newID func() string

	mu   sync.Mutex // serializes writers
	snap atomic.Pointer[snapshot]
}

// NewTaskService creates a TaskService with an empty collection; call Load
// to read the persisted one. nil cache disables caching, nil clock and
// newID fall back to time.Now and UUIDs.
func NewTaskService(r repo.TaskRepo, c *cache.TaskCache, clock func() time.Time, newID func() string) *TaskService {
	if clock == nil {
		clock = time.Now
	}
	if newID == nil {
		newID = utils.NewID
	}
	s := &TaskService{repo: r, cache: c, now: clock, newID: newID}
	s.snap.Store(&snapshot{tasks: []dom.Task{}})
	return s
}

// Load replaces the in-memory collection with the persisted one.
func (s *TaskService) Load(ctx context.Context) error {
	tasks, err := s.repo.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	out := make([]dom.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Priority.Valid() {
			t.Priority = dom.PriorityLow
		}
		t.Checklist = s.normalizeChecklist(t.Checklist)
		out = append(out, t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Store(&snapshot{version: s.snap.Load().version + 1, tasks: out})
	s.invalidateCache(ctx)
	return nil
}

// Snapshot returns the current collection and its version.
// The slice is shared and must not be modified.
func (s *TaskService) Snapshot() ([]dom.Task, uint64) {
	cur := s.snap.Load()
	return cur.tasks, cur.version
}

// Get returns a copy of the task with the given id.
func (s *TaskService) Get(_ context.Context, id string) (dom.Task, error) {
	tasks, _ := s.Snapshot()
	if i := indexOf(tasks, id); i >= 0 {
		return tasks[i].Clone(), nil
	}
	return dom.Task{}, ErrNotFound
}

// Add creates a task from the draft and prepends it.
func (s *TaskService) Add(ctx context.Context, d dom.Draft) (dom.Task, error) {
	created, err := s.AddMany(ctx, []dom.Draft{d})
	if err != nil {
		return dom.Task{}, err
	}
	return created[0], nil
}

// AddMany creates tasks from the drafts and prepends them as one block,
// in the given order.
func (s *TaskService) AddMany(ctx context.Context, drafts []dom.Draft) ([]dom.Task, error) {
	if len(drafts) == 0 {
		return []dom.Task{}, nil
	}
	for _, d := range drafts {
		if !d.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
	}
	var created []dom.Task
	err := s.mutate(ctx, func(cur []dom.Task) ([]dom.Task, error) {
		now := s.now()
		created = make([]dom.Task, 0, len(drafts))
		for _, d := range drafts {
			created = append(created, s.build(d, now))
		}
		next := make([]dom.Task, 0, len(created)+len(cur))
		next = append(next, created...)
		return append(next, cur...), nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]dom.Task, len(created))
	for i := range created {
		out[i] = created[i].Clone()
	}
	return out, nil
}

func (s *TaskService) build(d dom.Draft, now time.Time) dom.Task {
	t := dom.Task{
		ID:          s.newID(),
		Title:       d.Title,
		Description: d.Description,
		Priority:    d.Priority,
		CreatedAt:   now,
		Checklist:   s.normalizeChecklist(d.Checklist),
	}
	if d.DueDate != nil {
		due := *d.DueDate
		t.DueDate = &due
	}
	return t
}

// Update merges the patch into the task. id and createdAt never change.
func (s *TaskService) Update(ctx context.Context, id string, p dom.Patch) (dom.Task, error) {
	if p.Priority != nil && !p.Priority.Valid() {
		return dom.Task{}, ErrInvalidPriority
	}
	return s.modify(ctx, id, func(t *dom.Task) error {
		if p.Title != nil {
			t.Title = *p.Title
		}
		if p.Description != nil {
			t.Description = *p.Description
		}
		if p.Priority != nil {
			t.Priority = *p.Priority
		}
		if p.ClearDueDate {
			t.DueDate = nil
		} else if p.DueDate != nil {
			due := *p.DueDate
			t.DueDate = &due
		}
		if p.Checklist != nil {
			t.Checklist = s.normalizeChecklist(*p.Checklist)
		}
		if p.Completed != nil {
			t.Completed = *p.Completed
		}
		if p.Important != nil {
			t.Important = *p.Important
		}
		return nil
	})
}

// Remove deletes the task permanently.
func (s *TaskService) Remove(ctx context.Context, id string) error {
	return s.mutate(ctx, func(cur []dom.Task) ([]dom.Task, error) {
		i := indexOf(cur, id)
		if i < 0 {
			return nil, ErrNotFound
		}
		next := make([]dom.Task, 0, len(cur)-1)
		next = append(next, cur[:i]...)
		return append(next, cur[i+1:]...), nil
	})
}

func (s *TaskService) ToggleCompleted(ctx context.Context, id string) (dom.Task, error) {
	return s.modify(ctx, id, func(t *dom.Task) error {
		t.Completed = !t.Completed
		return nil
	})
}

func (s *TaskService) ToggleImportant(ctx context.Context, id string) (dom.Task, error) {
	return s.modify(ctx, id, func(t *dom.Task) error {
		t.Important = !t.Important
		return nil
	})
}

// ToggleChecklistItem flips one checklist item of a task.
func (s *TaskService) ToggleChecklistItem(ctx context.Context, taskID, itemID string) (dom.Task, error) {
	return s.modify(ctx, taskID, func(t *dom.Task) error {
		i := t.ChecklistIndex(itemID)
		if i < 0 {
			return ErrNotFound
		}
		t.Checklist[i].Completed = !t.Checklist[i].Completed
		return nil
	})
}

// modify applies fn to a private copy of the task and installs it.
func (s *TaskService) modify(ctx context.Context, id string, fn func(t *dom.Task) error) (dom.Task, error) {
	var updated dom.Task
	err := s.mutate(ctx, func(cur []dom.Task) ([]dom.Task, error) {
		i := indexOf(cur, id)
		if i < 0 {
			return nil, ErrNotFound
		}
		t := cur[i].Clone()
		if err := fn(&t); err != nil {
			return nil, err
		}
		next := make([]dom.Task, len(cur))
		copy(next, cur)
		next[i] = t
		updated = t
		return next, nil
	})
	if err != nil {
		return dom.Task{}, err
	}
	return updated.Clone(), nil
}

func (s *TaskService) mutate(ctx context.Context, fn func(cur []dom.Task) ([]dom.Task, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.snap.Load()
	next, err := fn(cur.tasks)
	if err != nil {
		return err
	}
	if err := s.repo.SaveTasks(ctx, next); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	s.snap.Store(&snapshot{version: cur.version + 1, tasks: next})
	s.invalidateCache(ctx)
	return nil
}

// normalizeChecklist copies items, assigning ids that are missing or
// already used within the task.
func (s *TaskService) normalizeChecklist(items []dom.ChecklistItem) []dom.ChecklistItem {
	out := make([]dom.ChecklistItem, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item.ID = strings.TrimSpace(item.ID)
		for item.ID == "" || seen[item.ID] {
			item.ID = s.newID()
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	return out
}

func (s *TaskService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx)
	}
}

func indexOf(tasks []dom.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
