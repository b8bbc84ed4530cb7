package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
)

// Record keys. Kept stable so existing stores keep loading.
const (
	keyTasks        = "todos-v2"
	keySettings     = "app-settings"
	keyShowUpcoming = "show-upcoming-tasks"
)

// TaskRepo persists the whole task collection as one record.
type TaskRepo interface {
	LoadTasks(ctx context.Context) ([]dom.Task, error)
	SaveTasks(ctx context.Context, tasks []dom.Task) error
}

// SettingsRepo persists process-wide settings. ok is false when nothing is stored yet.
type SettingsRepo interface {
	LoadSettings(ctx context.Context) (s dom.Settings, ok bool, err error)
	SaveSettings(ctx context.Context, s dom.Settings) error
	LoadShowUpcoming(ctx context.Context) (show bool, ok bool, err error)
	SaveShowUpcoming(ctx context.Context, show bool) error
}

// KVRepo implements TaskRepo and SettingsRepo on any KV.
type KVRepo struct {
	kv KV
}

func NewKVRepo(kv KV) *KVRepo {
	return &KVRepo{kv: kv}
}

func (r *KVRepo) LoadTasks(ctx context.Context) ([]dom.Task, error) {
	var tasks []dom.Task
	ok, err := r.load(ctx, keyTasks, &tasks)
	if err != nil || !ok {
		return nil, err
	}
	return tasks, nil
}

func (r *KVRepo) SaveTasks(ctx context.Context, tasks []dom.Task) error {
	if tasks == nil {
		tasks = []dom.Task{}
	}
	return r.save(ctx, keyTasks, tasks)
}

func (r *KVRepo) LoadSettings(ctx context.Context) (dom.Settings, bool, error) {
	var s dom.Settings
	ok, err := r.load(ctx, keySettings, &s)
	return s, ok, err
}

func (r *KVRepo) SaveSettings(ctx context.Context, s dom.Settings) error {
	return r.save(ctx, keySettings, s)
}

func (r *KVRepo) LoadShowUpcoming(ctx context.Context) (bool, bool, error) {
	var show bool
	ok, err := r.load(ctx, keyShowUpcoming, &show)
	return show, ok, err
}

func (r *KVRepo) SaveShowUpcoming(ctx context.Context, show bool) error {
	return r.save(ctx, keyShowUpcoming, show)
}

func (r *KVRepo) load(ctx context.Context, key string, dst any) (bool, error) {
	b, err := r.kv.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (r *KVRepo) save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.kv.Put(ctx, key, b); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}
