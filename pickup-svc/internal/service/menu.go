package service

import (
	"context"
	"log"
	"strings"

	"github.com/dotku/ai-restaurant/pickup-svc/internal/domain"
)

type MenuService struct {
	repo  MenuRepository
	cache MenuCache
}

// NewMenuService accepts a nil cache, in which case every read hits the store.
func NewMenuService(repo MenuRepository, cache MenuCache) *MenuService {
	return &MenuService{repo: repo, cache: cache}
}

func (s *MenuService) Snapshot(ctx context.Context) (*domain.MenuSnapshot, error) {
	if s.cache != nil {
		snapshot, err := s.cache.GetSnapshot(ctx)
		if err == nil && snapshot != nil {
			return snapshot, nil
		}
	}

	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListMenuItems(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.MenuSnapshot{Restaurants: restaurants, MenuItems: items}
	if s.cache != nil {
		if err := s.cache.SetSnapshot(ctx, snapshot); err != nil {
			log.Printf("[pickup-svc] menu cache write failed: %v", err)
		}
	}
	return snapshot, nil
}

func (s *MenuService) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Restaurants, nil
}

func (s *MenuService) Restaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(ctx, id)
}

func (s *MenuService) MenuItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return FilterMenuItems(snapshot.MenuItems, filter), nil
}

// FilterMenuItems keeps items matching the category ("all" or empty matches
// any), the owning restaurant when set, and a case-insensitive substring of
// the query in name or description.
func FilterMenuItems(items []domain.MenuItem, filter domain.MenuFilter) []domain.MenuItem {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	filtered := []domain.MenuItem{}
	for _, item := range items {
		if filter.Category != "" && filter.Category != domain.CategoryAll && item.Category != filter.Category {
			continue
		}
		if filter.RestaurantID != "" && item.RestaurantID != filter.RestaurantID {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
