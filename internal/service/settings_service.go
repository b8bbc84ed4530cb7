package service

import (
	"context"
	"fmt"
	"sync"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/repo"
)

// SettingsService holds appearance settings and the upcoming-panel flag.
// Both are created with defaults on first use.
type SettingsService struct {
	repo repo.SettingsRepo
	mu   sync.Mutex
}

func NewSettingsService(r repo.SettingsRepo) *SettingsService {
	return &SettingsService{repo: r}
}

func (s *SettingsService) Get(ctx context.Context) (dom.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(ctx)
}

func (s *SettingsService) getLocked(ctx context.Context) (dom.Settings, error) {
	cur, ok, err := s.repo.LoadSettings(ctx)
	if err != nil {
		return dom.Settings{}, err
	}
	if ok {
		return cur, nil
	}
	cur = dom.DefaultSettings()
	if err := s.repo.SaveSettings(ctx, cur); err != nil {
		return dom.Settings{}, fmt.Errorf("init settings: %w", err)
	}
	return cur, nil
}

// Update validates and stores the merged settings.
func (s *SettingsService) Update(ctx context.Context, p dom.SettingsPatch) (dom.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, err := s.getLocked(ctx)
	if err != nil {
		return dom.Settings{}, err
	}
	next := cur.Apply(p)
	if err := next.Validate(); err != nil {
		return dom.Settings{}, err
	}
	if err := s.repo.SaveSettings(ctx, next); err != nil {
		return dom.Settings{}, err
	}
	return next, nil
}

// ShowUpcoming reports whether the upcoming-deadlines panel is enabled.
func (s *SettingsService) ShowUpcoming(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	show, ok, err := s.repo.LoadShowUpcoming(ctx)
	if err != nil {
		return false, err
	}
	if ok {
		return show, nil
	}
	if err := s.repo.SaveShowUpcoming(ctx, true); err != nil {
		return false, fmt.Errorf("init upcoming flag: %w", err)
	}
	return true, nil
}

func (s *SettingsService) SetShowUpcoming(ctx context.Context, show bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.SaveShowUpcoming(ctx, show)
}
