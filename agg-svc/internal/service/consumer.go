package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/dotku/ai-restaurant/agg-svc/internal/domain"
)

// DefaultPopularThreshold is the all-time quantity at which a menu item is
// flagged popular.
const DefaultPopularThreshold = 20

type Consumer struct {
	Reader           MessageReader
	Store            StoreInterface
	PopularThreshold float64
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader:           reader,
		Store:            store,
		PopularThreshold: DefaultPopularThreshold,
	}
}

// Start reads until ctx is cancelled. Undecodable messages are skipped.
func (c *Consumer) Start(ctx context.Context) error {
	log.Println("[agg-svc] starting order consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Printf("[agg-svc] error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[agg-svc] error unmarshaling message at offset %d: %v", message.Offset, err)
			continue
		}

		c.ProcessOrder(ctx, event)
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventOrderPlaced {
		return
	}
	if event.MenuItemID == "" || event.Quantity < 1 {
		log.Printf("[agg-svc] skipping malformed order event %q", event.OrderID)
		return
	}
	log.Printf("[agg-svc] processing order %s: item=%s restaurant=%s qty=%d",
		event.OrderID, event.MenuItemID, event.RestaurantID, event.Quantity)

	total, err := c.Store.RecordItemSales(ctx, event)
	if err != nil {
		log.Printf("[agg-svc] error recording item sales: %v", err)
		return
	}

	if err := c.Store.RecordRevenue(ctx, event); err != nil {
		log.Printf("[agg-svc] error recording revenue: %v", err)
		return
	}

	// only the order that crosses the threshold flips the flag
	before := total - float64(event.Quantity)
	if total >= c.PopularThreshold && before < c.PopularThreshold {
		if err := c.Store.MarkPopular(ctx, event.MenuItemID); err != nil {
			log.Printf("[agg-svc] error marking %s popular: %v", event.MenuItemID, err)
			return
		}
		log.Printf("[agg-svc] menu item %s is now popular (%.0f ordered)", event.MenuItemID, total)
	}
}
