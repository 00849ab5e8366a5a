package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dotku/ai-restaurant/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	AllTimeItemsKey = "analytics:items:alltime"
	dailyRetention  = 7 * 24 * time.Hour
)

func DailyItemsKey(date, restaurantID string) string {
	return fmt.Sprintf("analytics:daily:%s:%s", date, restaurantID)
}

func RevenueKey(date string) string {
	return "analytics:revenue:" + date
}

type Store struct {
	db       *sql.DB
	rdb      *redis.Client
	location *time.Location
}

// NewStore buckets daily keys by the event time in location (UTC when nil).
func NewStore(db *sql.DB, rdb *redis.Client, location *time.Location) *Store {
	if location == nil {
		location = time.UTC
	}
	return &Store{
		db:       db,
		rdb:      rdb,
		location: location,
	}
}

func (s *Store) day(event domain.OrderEvent) string {
	at := event.Timestamp
	if at.IsZero() {
		at = time.Now()
	}
	return at.In(s.location).Format("2006-01-02")
}

func (s *Store) RecordItemSales(ctx context.Context, event domain.OrderEvent) (float64, error) {
	dailyKey := DailyItemsKey(s.day(event), event.RestaurantID)
	qty := float64(event.Quantity)

	var allTime *redis.FloatCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		allTime = pipe.ZIncrBy(ctx, AllTimeItemsKey, qty, event.MenuItemID)
		pipe.ZIncrBy(ctx, dailyKey, qty, event.MenuItemID)
		pipe.Expire(ctx, dailyKey, dailyRetention)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return allTime.Val(), nil
}

func (s *Store) RecordRevenue(ctx context.Context, event domain.OrderEvent) error {
	key := RevenueKey(s.day(event))
	if err := s.rdb.HIncrByFloat(ctx, key, event.RestaurantID, event.TotalAmount).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, dailyRetention).Err()
}

func (s *Store) MarkPopular(ctx context.Context, menuItemID string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE menu_items SET popular = TRUE WHERE id = $1`, menuItemID)
	return err
}
