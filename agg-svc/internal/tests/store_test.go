package tests

import (
	"context"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/dotku/ai-restaurant/agg-svc/internal/domain"
	"github.com/dotku/ai-restaurant/agg-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*storage.Store, *miniredis.Miniredis, sqlmock.Sqlmock) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewStore(db, rdb, time.UTC), mr, mock
}

func TestStore_RecordItemSales(t *testing.T) {
	store, mr, _ := newStore(t)
	ctx := context.Background()
	event := orderEvent(3)
	event.Timestamp = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	total, err := store.RecordItemSales(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)

	total, err = store.RecordItemSales(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 6.0, total)

	daily := storage.DailyItemsKey("2026-03-14", "r1")
	assert.Equal(t, "analytics:daily:2026-03-14:r1", daily)
	score, err := mr.ZScore(daily, "m1")
	require.NoError(t, err)
	assert.Equal(t, 6.0, score)
	assert.Equal(t, 7*24*time.Hour, mr.TTL(daily))

	allTime, err := mr.ZScore(storage.AllTimeItemsKey, "m1")
	require.NoError(t, err)
	assert.Equal(t, 6.0, allTime)
}

func TestStore_RecordRevenue(t *testing.T) {
	store, mr, _ := newStore(t)
	event := domain.OrderEvent{RestaurantID: "r1", TotalAmount: 23.97, Timestamp: time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)}

	require.NoError(t, store.RecordRevenue(context.Background(), event))
	require.NoError(t, store.RecordRevenue(context.Background(), event))

	revenue, err := strconv.ParseFloat(mr.HGet("analytics:revenue:2026-03-14", "r1"), 64)
	require.NoError(t, err)
	assert.InDelta(t, 47.94, revenue, 0.0001)
}

func TestStore_DayFollowsLocation(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	store := storage.NewStore(nil, rdb, tokyo)

	event := orderEvent(1)
	event.Timestamp = time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	_, err = store.RecordItemSales(context.Background(), event)
	require.NoError(t, err)

	assert.True(t, mr.Exists(storage.DailyItemsKey("2026-03-15", "r1")))
}

func TestStore_MarkPopular(t *testing.T) {
	store, _, mock := newStore(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE menu_items SET popular = TRUE WHERE id = $1")).
		WithArgs("m1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.MarkPopular(context.Background(), "m1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
