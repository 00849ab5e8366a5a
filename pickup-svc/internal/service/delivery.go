package service

import (
	"context"
	"errors"
	"strings"

	"github.com/dotku/ai-restaurant/pickup-svc/internal/domain"

	"github.com/google/uuid"
)

type DeliveryService struct {
	repo DeliveryRepository
}

func NewDeliveryService(repo DeliveryRepository) *DeliveryService {
	return &DeliveryService{repo: repo}
}

func (s *DeliveryService) Create(ctx context.Context, claims *Claims, pickupLocation, dropoffLocation string) (*domain.Delivery, error) {
	if claims == nil || claims.Role != domain.RoleCustomer {
		return nil, &ForbiddenError{Message: "Only customers can create deliveries"}
	}
	pickupLocation = strings.TrimSpace(pickupLocation)
	dropoffLocation = strings.TrimSpace(dropoffLocation)
	if pickupLocation == "" || dropoffLocation == "" {
		return nil, invalid("pickupLocation and dropoffLocation are required")
	}

	delivery := &domain.Delivery{
		ID:              uuid.NewString(),
		CustomerID:      claims.ID,
		PickupLocation:  pickupLocation,
		DropoffLocation: dropoffLocation,
		Status:          domain.DeliveryStatusPending,
	}
	if err := s.repo.CreateDelivery(ctx, delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}

// Accept assigns a pending delivery to the calling driver. The store update
// is conditional on the delivery still being pending.
func (s *DeliveryService) Accept(ctx context.Context, claims *Claims, deliveryID string) (*domain.Delivery, error) {
	if claims == nil || claims.Role != domain.RoleDriver {
		return nil, &ForbiddenError{Message: "Only drivers can accept deliveries"}
	}

	delivery, err := s.repo.GetDelivery(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrDeliveryUnavailable
		}
		return nil, err
	}
	if delivery.Status != domain.DeliveryStatusPending {
		return nil, ErrDeliveryUnavailable
	}

	accepted, err := s.repo.AcceptDelivery(ctx, deliveryID, claims.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrDeliveryUnavailable
		}
		return nil, err
	}
	return accepted, nil
}
