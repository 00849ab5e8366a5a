package domain

import "time"

const EventOrderPlaced = "order_placed"

// OrderEvent is published by pickup-svc for every submitted order.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	MenuItemID   string    `json:"menu_item_id"`
	RestaurantID string    `json:"restaurant_id"`
	Quantity     int       `json:"quantity"`
	TotalAmount  float64   `json:"total_amount"`
	Timestamp    time.Time `json:"timestamp"`
}
