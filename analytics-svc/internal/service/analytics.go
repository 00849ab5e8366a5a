package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/dotku/ai-restaurant/analytics-svc/internal/domain"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

const (
	allTimeItemsKey = "analytics:items:alltime"
	todayTopLimit   = 10
)

type AnalyticsService struct {
	db       *sql.DB
	rdb      *redis.Client
	location *time.Location
	now      func() time.Time
}

// NewAnalyticsService reads the counters agg-svc maintains. rdb may be nil,
// in which case every read is answered from Postgres.
func NewAnalyticsService(db *sql.DB, rdb *redis.Client, location *time.Location) *AnalyticsService {
	if location == nil {
		location = time.UTC
	}
	return &AnalyticsService{
		db:       db,
		rdb:      rdb,
		location: location,
		now:      time.Now,
	}
}

func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

func (s *AnalyticsService) today() string {
	return s.now().In(s.location).Format("2006-01-02")
}

func (s *AnalyticsService) PopularItems(ctx context.Context, limit int) ([]domain.ItemAnalytics, error) {
	if s.rdb != nil {
		ranked, err := s.rdb.ZRevRangeWithScores(ctx, allTimeItemsKey, 0, int64(limit-1)).Result()
		if err != nil {
			log.Printf("[analytics-svc] redis popular items: %v", err)
		}
		if len(ranked) > 0 {
			items, err := s.hydrate(ctx, ranked)
			if err != nil {
				return nil, err
			}
			if len(items) > 0 {
				return items, nil
			}
		}
	}
	return s.popularItemsFromDB(ctx, limit)
}

func (s *AnalyticsService) popularItemsFromDB(ctx context.Context, limit int) ([]domain.ItemAnalytics, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT mi.id, mi.name, mi.restaurant_id, SUM(oi.quantity) AS quantity
		FROM menu_items mi
		JOIN order_items oi ON oi.menu_item_id = mi.id
		GROUP BY mi.id, mi.name, mi.restaurant_id
		ORDER BY quantity DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.ItemAnalytics{}
	for rows.Next() {
		var item domain.ItemAnalytics
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.RestaurantID, &item.Quantity); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *AnalyticsService) TodayForRestaurant(ctx context.Context, restaurantID string) (*domain.RestaurantToday, error) {
	date := s.today()
	result := &domain.RestaurantToday{
		RestaurantID: restaurantID,
		Date:         date,
		TopItems:     []domain.ItemAnalytics{},
	}
	if s.rdb == nil {
		return s.todayFromDB(ctx, result)
	}

	dailyKey := "analytics:daily:" + date + ":" + restaurantID
	ranked, err := s.rdb.ZRevRangeWithScores(ctx, dailyKey, 0, todayTopLimit-1).Result()
	if err != nil {
		log.Printf("[analytics-svc] redis daily items: %v", err)
		return s.todayFromDB(ctx, result)
	}
	if len(ranked) == 0 {
		return s.todayFromDB(ctx, result)
	}

	items, err := s.hydrate(ctx, ranked)
	if err != nil {
		return nil, err
	}
	result.TopItems = items

	revenue, err := s.rdb.HGet(ctx, "analytics:revenue:"+date, restaurantID).Float64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	result.Revenue = revenue
	return result, nil
}

// todayFromDB aggregates order_items created today in the service location.
func (s *AnalyticsService) todayFromDB(ctx context.Context, result *domain.RestaurantToday) (*domain.RestaurantToday, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT mi.id, mi.name, mi.restaurant_id, SUM(oi.quantity) AS quantity, SUM(oi.quantity * oi.price) AS revenue
		FROM menu_items mi
		JOIN order_items oi ON oi.menu_item_id = mi.id
		WHERE mi.restaurant_id = $1 AND (oi.created_at AT TIME ZONE $2)::date = $3::date
		GROUP BY mi.id, mi.name, mi.restaurant_id
		ORDER BY quantity DESC
		LIMIT $4`, result.RestaurantID, s.location.String(), result.Date, todayTopLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.ItemAnalytics
		var revenue float64
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.RestaurantID, &item.Quantity, &revenue); err != nil {
			continue
		}
		result.TopItems = append(result.TopItems, item)
		result.Revenue += revenue
	}
	return result, rows.Err()
}

// hydrate keeps the ranking order and drops members whose menu item no
// longer exists.
func (s *AnalyticsService) hydrate(ctx context.Context, ranked []redis.Z) ([]domain.ItemAnalytics, error) {
	ids := make([]string, 0, len(ranked))
	for _, z := range ranked {
		if id, ok := z.Member.(string); ok {
			ids = append(ids, id)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, restaurant_id
		FROM menu_items
		WHERE id::text = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type meta struct{ name, restaurantID string }
	byID := make(map[string]meta, len(ids))
	for rows.Next() {
		var id string
		var m meta
		if err := rows.Scan(&id, &m.name, &m.restaurantID); err != nil {
			continue
		}
		byID[id] = m
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items := make([]domain.ItemAnalytics, 0, len(ranked))
	for _, z := range ranked {
		id, _ := z.Member.(string)
		m, ok := byID[id]
		if !ok {
			continue
		}
		items = append(items, domain.ItemAnalytics{
			MenuItemID:   id,
			Name:         m.name,
			RestaurantID: m.restaurantID,
			Quantity:     z.Score,
		})
	}
	return items, nil
}

// ParseLimit clamps a ?limit= value to [1, 50], defaulting to 10.
func ParseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 10
	}
	if limit > 50 {
		return 50
	}
	return limit
}
