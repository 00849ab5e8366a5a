package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dotku/ai-restaurant/pickup-svc/internal/domain"
)

const (
	AdvisoryNotConfigured = "SMS service is not configured. Your order was placed successfully, but you will not receive an SMS confirmation."
	AdvisoryInvalidPhone  = "Invalid phone number format. Please check your phone number."
)

var nonDigits = regexp.MustCompile(`\D`)

type NotificationService struct {
	sender   SMSSender
	location *time.Location
}

func NewNotificationService(sender SMSSender, location *time.Location) *NotificationService {
	if location == nil {
		location = time.UTC
	}
	return &NotificationService{sender: sender, location: location}
}

// SendOrderConfirmation normalizes the customer's phone and texts the
// confirmation to it.
func (s *NotificationService) SendOrderConfirmation(ctx context.Context, note domain.OrderNotification) error {
	return s.SendRaw(ctx, NormalizePhone(note.Phone), note)
}

// SendRaw texts the confirmation to an already formatted number.
func (s *NotificationService) SendRaw(ctx context.Context, to string, note domain.OrderNotification) error {
	if s.sender == nil {
		return ErrSMSNotConfigured
	}
	return s.sender.Send(ctx, to, ConfirmationMessage(note, s.location))
}

// NormalizePhone assumes a single digit "1" country code: digits not already
// starting with 1 get it prepended. Numbers from other regions come out wrong.
func NormalizePhone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if !strings.HasPrefix(digits, "1") {
		digits = "1" + digits
	}
	return "+" + digits
}

func ConfirmationMessage(note domain.OrderNotification, location *time.Location) string {
	return fmt.Sprintf(
		"🍽️ Order Confirmation\n\nHi %s!\n\nYour order details:\n- %dx %s\n- From: %s\n- Pickup: %s\n\nWe'll notify you when your order is ready. Thank you!",
		note.UserName, note.Quantity, note.ItemName, note.RestaurantName, FormatPickupTime(note.PickupTime, location),
	)
}

// FormatPickupTime renders e.g. "3:04 PM" in the pickup location.
func FormatPickupTime(t time.Time, location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return t.In(location).Format("3:04 PM")
}

// AdvisoryMessage turns a notification failure into the note shown next to a
// successfully placed order.
func AdvisoryMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSMSNotConfigured):
		return AdvisoryNotConfigured
	case errors.Is(err, ErrInvalidPhoneNumber):
		return AdvisoryInvalidPhone
	default:
		return "SMS notification failed: " + err.Error()
	}
}
