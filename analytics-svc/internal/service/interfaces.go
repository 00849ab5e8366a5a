package service

import (
	"context"

	"github.com/dotku/ai-restaurant/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	PopularItems(ctx context.Context, limit int) ([]domain.ItemAnalytics, error)
	TodayForRestaurant(ctx context.Context, restaurantID string) (*domain.RestaurantToday, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
