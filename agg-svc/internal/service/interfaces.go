package service

import (
	"context"

	"github.com/dotku/ai-restaurant/agg-svc/internal/domain"
	"github.com/dotku/ai-restaurant/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	// RecordItemSales returns the item's all-time quantity after the increment.
	RecordItemSales(ctx context.Context, event domain.OrderEvent) (float64, error)
	RecordRevenue(ctx context.Context, event domain.OrderEvent) error
	MarkPopular(ctx context.Context, menuItemID string) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	ProcessOrder(ctx context.Context, event domain.OrderEvent)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
