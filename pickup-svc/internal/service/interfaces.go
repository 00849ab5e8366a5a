package service

import (
	"context"

	"github.com/dotku/ai-restaurant/pickup-svc/internal/domain"
)

type MenuRepository interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
}

type MenuCache interface {
	GetSnapshot(ctx context.Context) (*domain.MenuSnapshot, error)
	SetSnapshot(ctx context.Context, snapshot *domain.MenuSnapshot) error
}

type OrderRepository interface {
	InsertOrder(ctx context.Context, order *domain.Order) error
	InsertOrderItem(ctx context.Context, item *domain.OrderItem) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error)
	SaveQRCode(ctx context.Context, orderID string, qr []byte) error
	GetQRCode(ctx context.Context, orderID string) ([]byte, error)
}

type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
}

type DeliveryRepository interface {
	CreateDelivery(ctx context.Context, delivery *domain.Delivery) error
	GetDelivery(ctx context.Context, id string) (*domain.Delivery, error)
	AcceptDelivery(ctx context.Context, id, driverID string) (*domain.Delivery, error)
}

// TextGenerator runs a single-turn completion and returns the raw model text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event domain.OrderEvent) error
}

type Notifier interface {
	SendOrderConfirmation(ctx context.Context, note domain.OrderNotification) error
}

type MenuServiceInterface interface {
	Snapshot(ctx context.Context) (*domain.MenuSnapshot, error)
	Restaurants(ctx context.Context) ([]domain.Restaurant, error)
	Restaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	MenuItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error)
}

type SuggestionServiceInterface interface {
	Suggest(ctx context.Context, req domain.SuggestionRequest) (*domain.Suggestion, error)
}

type OrderServiceInterface interface {
	Submit(ctx context.Context, req domain.OrderRequest) (*domain.OrderConfirmation, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	GetQRCode(ctx context.Context, orderID string) ([]byte, error)
	QRLink(orderID string) string
}

type NotificationServiceInterface interface {
	Notifier
	SendRaw(ctx context.Context, to string, note domain.OrderNotification) error
}

type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password, role string) (string, error)
	ParseToken(token string) (*Claims, error)
}

type DeliveryServiceInterface interface {
	Create(ctx context.Context, claims *Claims, pickupLocation, dropoffLocation string) (*domain.Delivery, error)
	Accept(ctx context.Context, claims *Claims, deliveryID string) (*domain.Delivery, error)
}

var (
	_ MenuServiceInterface         = (*MenuService)(nil)
	_ SuggestionServiceInterface   = (*SuggestionService)(nil)
	_ OrderServiceInterface        = (*OrderService)(nil)
	_ NotificationServiceInterface = (*NotificationService)(nil)
	_ AuthServiceInterface         = (*AuthService)(nil)
	_ DeliveryServiceInterface     = (*DeliveryService)(nil)
)
