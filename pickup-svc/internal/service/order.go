package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/dotku/ai-restaurant/pickup-svc/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const datetimeLocalLayout = "2006-01-02T15:04"

var (
	validate     = newValidator()
	phonePattern = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)

	requiredMessages = map[string]string{
		"menu_item_id":  "Please choose a menu item",
		"restaurant_id": "Please choose a restaurant",
		"user_name":     "Please enter your name",
	}
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type OrderService struct {
	menu      MenuRepository
	repo      OrderRepository
	notifier  Notifier
	publisher OrderPublisher
	qr        QRGenerator
	location  *time.Location
	now       func() time.Time
}

// NewOrderService wires the submission workflow. publisher and qr may be nil.
func NewOrderService(menu MenuRepository, repo OrderRepository, notifier Notifier, publisher OrderPublisher, qr QRGenerator, location *time.Location) *OrderService {
	if location == nil {
		location = time.UTC
	}
	return &OrderService{
		menu:      menu,
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
		qr:        qr,
		location:  location,
		now:       time.Now,
	}
}

func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

// Submit validates the pickup form, persists the order and its line item and
// then tries to text a confirmation. Nothing is written when validation fails.
// A failed text never fails the submission; it is reported as an advisory.
func (s *OrderService) Submit(ctx context.Context, req domain.OrderRequest) (*domain.OrderConfirmation, error) {
	window := domain.NewPickupWindow(s.now())
	quantity := domain.ClampQuantity(req.Quantity)
	req.UserName = strings.TrimSpace(req.UserName)

	pickupTime, err := s.pickupTime(req, window)
	if err != nil {
		return nil, err
	}
	if !phonePattern.MatchString(req.Phone) {
		return nil, invalid("Please enter a valid phone number")
	}
	if err := validate.Struct(req); err != nil {
		return nil, requiredFieldError(err)
	}

	item, err := s.menu.GetMenuItem(ctx, req.MenuItemID)
	if err != nil {
		return nil, fmt.Errorf("menu item %s: %w", req.MenuItemID, err)
	}
	restaurant, err := s.menu.GetRestaurant(ctx, req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("restaurant %s: %w", req.RestaurantID, err)
	}
	if item.RestaurantID != restaurant.ID {
		return nil, invalid(fmt.Sprintf("%s is not on the menu at %s", item.Name, restaurant.Name))
	}

	order := &domain.Order{
		ID:          uuid.NewString(),
		UserName:    req.UserName,
		Phone:       req.Phone,
		PickupTime:  pickupTime,
		TotalAmount: domain.LineTotal(item.Price, quantity),
		Status:      domain.OrderStatusPending,
	}
	if err := s.repo.InsertOrder(ctx, order); err != nil {
		return nil, err
	}

	orderItem := &domain.OrderItem{
		ID:         uuid.NewString(),
		OrderID:    order.ID,
		MenuItemID: item.ID,
		Quantity:   quantity,
		Price:      item.Price,
	}
	if err := s.repo.InsertOrderItem(ctx, orderItem); err != nil {
		// no rollback: the orders row stays behind without a line item
		log.Printf("[pickup-svc] order %s left without line item: %v", order.ID, err)
		return nil, err
	}
	order.Items = []domain.OrderItem{*orderItem}

	confirmation := &domain.OrderConfirmation{Order: order}
	if s.qr != nil {
		s.storeQRCode(ctx, order.ID)
		confirmation.QRCode = s.QRLink(order.ID)
	}
	s.publish(ctx, order, orderItem, restaurant.ID)

	err = s.notifier.SendOrderConfirmation(ctx, domain.OrderNotification{
		Phone:          req.Phone,
		UserName:       req.UserName,
		RestaurantName: restaurant.Name,
		ItemName:       item.Name,
		Quantity:       quantity,
		PickupTime:     pickupTime,
	})
	if err != nil {
		log.Printf("[pickup-svc] order %s notification failed: %v", order.ID, err)
		confirmation.Notification = AdvisoryMessage(err)
	} else {
		confirmation.NotificationSent = true
	}

	return confirmation, nil
}

// pickupTime trusts the default when the customer left the field untouched.
func (s *OrderService) pickupTime(req domain.OrderRequest, window domain.PickupWindow) (time.Time, error) {
	if !req.PickupTimeModified {
		return window.Earliest, nil
	}

	selected, err := ParsePickupTime(req.PickupTime, s.location)
	if err != nil {
		return time.Time{}, invalid("Please select a valid pickup time")
	}
	if selected.Before(window.Earliest) {
		return time.Time{}, invalid("Please select a pickup time after " + FormatPickupTime(window.Earliest, s.location))
	}
	if selected.After(window.Latest) {
		return time.Time{}, invalid("Please select a pickup time before " + window.Latest.In(s.location).Format("Jan 2, 3:04 PM"))
	}
	return selected, nil
}

// ParsePickupTime accepts RFC 3339 or a zone-less datetime-local value, the
// latter read in location.
func ParsePickupTime(value string, location *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if location == nil {
		location = time.UTC
	}
	return time.ParseInLocation(datetimeLocalLayout, value, location)
}

func requiredFieldError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := fieldErrs[0].Field()
		if msg, ok := requiredMessages[field]; ok {
			return invalid(msg)
		}
		return invalid(field + " is invalid")
	}
	return invalid(err.Error())
}

func (s *OrderService) storeQRCode(ctx context.Context, orderID string) {
	qr, err := s.qr.Generate(orderID)
	if err != nil {
		log.Printf("[pickup-svc] order %s qr generation failed: %v", orderID, err)
		return
	}
	if err := s.repo.SaveQRCode(ctx, orderID, qr); err != nil {
		log.Printf("[pickup-svc] order %s qr save failed: %v", orderID, err)
	}
}

func (s *OrderService) publish(ctx context.Context, order *domain.Order, item *domain.OrderItem, restaurantID string) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishOrderPlaced(ctx, domain.OrderEvent{
		Type:         "order_placed",
		OrderID:      order.ID,
		MenuItemID:   item.MenuItemID,
		RestaurantID: restaurantID,
		Quantity:     item.Quantity,
		TotalAmount:  order.TotalAmount,
		Timestamp:    s.now(),
	})
	if err != nil {
		log.Printf("[pickup-svc] order %s event publish failed: %v", order.ID, err)
	}
}

// Order ids are UUIDs; anything else cannot match a row.
func validOrderID(orderID string) bool {
	_, err := uuid.Parse(orderID)
	return err == nil
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	if !validOrderID(orderID) {
		return nil, domain.ErrNotFound
	}
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (s *OrderService) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	if !validOrderID(orderID) {
		return nil, domain.ErrNotFound
	}
	qr, err := s.repo.GetQRCode(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qr != nil {
		if regenerated, err := s.qr.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(ctx, orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID string) string {
	return "/api/orders/" + orderID + "/qrcode"
}
