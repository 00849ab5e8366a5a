package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

const (
	CategoryAll = "all"

	OrderStatusPending = "pending"

	DeliveryStatusPending  = "pending"
	DeliveryStatusAccepted = "accepted"

	RoleCustomer = "customer"
	RoleDriver   = "driver"

	PreparationOffset = 10 * time.Minute
	PickupHorizon     = 48 * time.Hour
)

type Restaurant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Cuisine   string    `json:"cuisine"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuItem struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	Popular      bool      `json:"popular"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

type MenuSnapshot struct {
	Restaurants []Restaurant `json:"restaurants"`
	MenuItems   []MenuItem   `json:"menu_items"`
}

type MenuFilter struct {
	Category     string
	Query        string
	RestaurantID string
}

type Order struct {
	ID          string      `json:"id"`
	UserName    string      `json:"user_name"`
	Phone       string      `json:"phone"`
	PickupTime  time.Time   `json:"pickup_time"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	MenuItemID string    `json:"menu_item_id"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderRequest is the pickup form as submitted by the client. PickupTime is
// either RFC 3339 or the browser's datetime-local value.
type OrderRequest struct {
	MenuItemID         string `json:"menu_item_id" validate:"required"`
	RestaurantID       string `json:"restaurant_id" validate:"required"`
	Quantity           int    `json:"quantity"`
	UserName           string `json:"user_name" validate:"required"`
	Phone              string `json:"phone"`
	PickupTime         string `json:"pickup_time"`
	PickupTimeModified bool   `json:"pickup_time_modified"`
}

type OrderConfirmation struct {
	Order            *Order `json:"order"`
	NotificationSent bool   `json:"notification_sent"`
	Notification     string `json:"notification,omitempty"`
	QRCode           string `json:"qr_code,omitempty"`
}

type OrderNotification struct {
	Phone          string
	UserName       string
	RestaurantName string
	ItemName       string
	Quantity       int
	PickupTime     time.Time
}

type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	MenuItemID   string    `json:"menu_item_id"`
	RestaurantID string    `json:"restaurant_id"`
	Quantity     int       `json:"quantity"`
	TotalAmount  float64   `json:"total_amount"`
	Timestamp    time.Time `json:"timestamp"`
}

type SuggestionRequest struct {
	Category    string       `json:"category"`
	Preference  string       `json:"preference"`
	MenuItems   []MenuItem   `json:"menuItems"`
	Restaurants []Restaurant `json:"restaurants"`
}

type Suggestion struct {
	Text          string     `json:"suggestion"`
	FeaturedItems []MenuItem `json:"featuredItems"`
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type Delivery struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customerId"`
	DriverID        string    `json:"driverId,omitempty"`
	PickupLocation  string    `json:"pickupLocation"`
	DropoffLocation string    `json:"dropoffLocation"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// ClampQuantity keeps a quantity at or above one.
func ClampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	return quantity
}

// LineTotal multiplies in decimal so 7.99 x 3 is 23.97, not 23.970000000000002.
func LineTotal(unitPrice float64, quantity int) float64 {
	return decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		InexactFloat64()
}

type PickupWindow struct {
	Earliest time.Time
	Latest   time.Time
}

func NewPickupWindow(now time.Time) PickupWindow {
	return PickupWindow{
		Earliest: now.Add(PreparationOffset),
		Latest:   now.Add(PickupHorizon),
	}
}
